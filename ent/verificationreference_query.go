// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/fact"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/verificationreference"
)

// VerificationReferenceQuery is the builder for querying VerificationReference entities.
type VerificationReferenceQuery struct {
	config
	ctx        *QueryContext
	order      []verificationreference.OrderOption
	inters     []Interceptor
	predicates []predicate.VerificationReference
	withFact   *FactQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the VerificationReferenceQuery builder.
func (_q *VerificationReferenceQuery) Where(ps ...predicate.VerificationReference) *VerificationReferenceQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *VerificationReferenceQuery) Limit(limit int) *VerificationReferenceQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *VerificationReferenceQuery) Offset(offset int) *VerificationReferenceQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *VerificationReferenceQuery) Unique(unique bool) *VerificationReferenceQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *VerificationReferenceQuery) Order(o ...verificationreference.OrderOption) *VerificationReferenceQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryFact chains the current query on the "fact" edge.
func (_q *VerificationReferenceQuery) QueryFact() *FactQuery {
	query := (&FactClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(verificationreference.Table, verificationreference.FieldID, selector),
			sqlgraph.To(fact.Table, fact.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, verificationreference.FactTable, verificationreference.FactColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first VerificationReference entity from the query.
// Returns a *NotFoundError when no VerificationReference was found.
func (_q *VerificationReferenceQuery) First(ctx context.Context) (*VerificationReference, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{verificationreference.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *VerificationReferenceQuery) FirstX(ctx context.Context) *VerificationReference {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first VerificationReference ID from the query.
// Returns a *NotFoundError when no VerificationReference ID was found.
func (_q *VerificationReferenceQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{verificationreference.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *VerificationReferenceQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single VerificationReference entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one VerificationReference entity is found.
// Returns a *NotFoundError when no VerificationReference entities are found.
func (_q *VerificationReferenceQuery) Only(ctx context.Context) (*VerificationReference, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{verificationreference.Label}
	default:
		return nil, &NotSingularError{verificationreference.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *VerificationReferenceQuery) OnlyX(ctx context.Context) *VerificationReference {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only VerificationReference ID in the query.
// Returns a *NotSingularError when more than one VerificationReference ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *VerificationReferenceQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{verificationreference.Label}
	default:
		err = &NotSingularError{verificationreference.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *VerificationReferenceQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of VerificationReferences.
func (_q *VerificationReferenceQuery) All(ctx context.Context) ([]*VerificationReference, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*VerificationReference, *VerificationReferenceQuery]()
	return withInterceptors[[]*VerificationReference](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *VerificationReferenceQuery) AllX(ctx context.Context) []*VerificationReference {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of VerificationReference IDs.
func (_q *VerificationReferenceQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(verificationreference.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *VerificationReferenceQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *VerificationReferenceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*VerificationReferenceQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *VerificationReferenceQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *VerificationReferenceQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *VerificationReferenceQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the VerificationReferenceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *VerificationReferenceQuery) Clone() *VerificationReferenceQuery {
	if _q == nil {
		return nil
	}
	return &VerificationReferenceQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]verificationreference.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.VerificationReference{}, _q.predicates...),
		withFact:   _q.withFact.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithFact tells the query-builder to eager-load the nodes that are connected to
// the "fact" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *VerificationReferenceQuery) WithFact(opts ...func(*FactQuery)) *VerificationReferenceQuery {
	query := (&FactClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFact = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		FactID int `json:"fact_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.VerificationReference.Query().
//		GroupBy(verificationreference.FieldFactID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *VerificationReferenceQuery) GroupBy(field string, fields ...string) *VerificationReferenceGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &VerificationReferenceGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = verificationreference.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		FactID int `json:"fact_id,omitempty"`
//	}
//
//	client.VerificationReference.Query().
//		Select(verificationreference.FieldFactID).
//		Scan(ctx, &v)
func (_q *VerificationReferenceQuery) Select(fields ...string) *VerificationReferenceSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &VerificationReferenceSelect{VerificationReferenceQuery: _q}
	sbuild.label = verificationreference.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a VerificationReferenceSelect configured with the given aggregations.
func (_q *VerificationReferenceQuery) Aggregate(fns ...AggregateFunc) *VerificationReferenceSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *VerificationReferenceQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !verificationreference.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *VerificationReferenceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*VerificationReference, error) {
	var (
		nodes       = []*VerificationReference{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withFact != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*VerificationReference).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &VerificationReference{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withFact; query != nil {
		if err := _q.loadFact(ctx, query, nodes, nil,
			func(n *VerificationReference, e *Fact) { n.Edges.Fact = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *VerificationReferenceQuery) loadFact(ctx context.Context, query *FactQuery, nodes []*VerificationReference, init func(*VerificationReference), assign func(*VerificationReference, *Fact)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*VerificationReference)
	for i := range nodes {
		fk := nodes[i].FactID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(fact.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "fact_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *VerificationReferenceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *VerificationReferenceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(verificationreference.Table, verificationreference.Columns, sqlgraph.NewFieldSpec(verificationreference.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationreference.FieldID)
		for i := range fields {
			if fields[i] != verificationreference.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withFact != nil {
			_spec.Node.AddColumnOnce(verificationreference.FieldFactID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *VerificationReferenceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(verificationreference.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = verificationreference.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// VerificationReferenceGroupBy is the group-by builder for VerificationReference entities.
type VerificationReferenceGroupBy struct {
	selector
	build *VerificationReferenceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *VerificationReferenceGroupBy) Aggregate(fns ...AggregateFunc) *VerificationReferenceGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *VerificationReferenceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VerificationReferenceQuery, *VerificationReferenceGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *VerificationReferenceGroupBy) sqlScan(ctx context.Context, root *VerificationReferenceQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// VerificationReferenceSelect is the builder for selecting fields of VerificationReference entities.
type VerificationReferenceSelect struct {
	*VerificationReferenceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *VerificationReferenceSelect) Aggregate(fns ...AggregateFunc) *VerificationReferenceSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *VerificationReferenceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VerificationReferenceQuery, *VerificationReferenceSelect](ctx, _s.VerificationReferenceQuery, _s, _s.inters, v)
}

func (_s *VerificationReferenceSelect) sqlScan(ctx context.Context, root *VerificationReferenceQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
