// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/fact"
	"github.com/credlens/pundit/ent/factevaluation"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/rawpost"
	"github.com/credlens/pundit/ent/verificationreference"
)

// FactQuery is the builder for querying Fact entities.
type FactQuery struct {
	config
	ctx             *QueryContext
	order           []fact.OrderOption
	inters          []Interceptor
	predicates      []predicate.Fact
	withRawPost     *RawPostQuery
	withReferences  *VerificationReferenceQuery
	withEvaluations *FactEvaluationQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the FactQuery builder.
func (_q *FactQuery) Where(ps ...predicate.Fact) *FactQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *FactQuery) Limit(limit int) *FactQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *FactQuery) Offset(offset int) *FactQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *FactQuery) Unique(unique bool) *FactQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *FactQuery) Order(o ...fact.OrderOption) *FactQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRawPost chains the current query on the "raw_post" edge.
func (_q *FactQuery) QueryRawPost() *RawPostQuery {
	query := (&RawPostClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(fact.Table, fact.FieldID, selector),
			sqlgraph.To(rawpost.Table, rawpost.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fact.RawPostTable, fact.RawPostColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryReferences chains the current query on the "references" edge.
func (_q *FactQuery) QueryReferences() *VerificationReferenceQuery {
	query := (&VerificationReferenceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(fact.Table, fact.FieldID, selector),
			sqlgraph.To(verificationreference.Table, verificationreference.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, fact.ReferencesTable, fact.ReferencesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvaluations chains the current query on the "evaluations" edge.
func (_q *FactQuery) QueryEvaluations() *FactEvaluationQuery {
	query := (&FactEvaluationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(fact.Table, fact.FieldID, selector),
			sqlgraph.To(factevaluation.Table, factevaluation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, fact.EvaluationsTable, fact.EvaluationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Fact entity from the query.
// Returns a *NotFoundError when no Fact was found.
func (_q *FactQuery) First(ctx context.Context) (*Fact, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{fact.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *FactQuery) FirstX(ctx context.Context) *Fact {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Fact ID from the query.
// Returns a *NotFoundError when no Fact ID was found.
func (_q *FactQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{fact.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *FactQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Fact entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Fact entity is found.
// Returns a *NotFoundError when no Fact entities are found.
func (_q *FactQuery) Only(ctx context.Context) (*Fact, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{fact.Label}
	default:
		return nil, &NotSingularError{fact.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *FactQuery) OnlyX(ctx context.Context) *Fact {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Fact ID in the query.
// Returns a *NotSingularError when more than one Fact ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *FactQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{fact.Label}
	default:
		err = &NotSingularError{fact.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *FactQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Facts.
func (_q *FactQuery) All(ctx context.Context) ([]*Fact, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Fact, *FactQuery]()
	return withInterceptors[[]*Fact](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *FactQuery) AllX(ctx context.Context) []*Fact {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Fact IDs.
func (_q *FactQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(fact.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *FactQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *FactQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*FactQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *FactQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *FactQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *FactQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the FactQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *FactQuery) Clone() *FactQuery {
	if _q == nil {
		return nil
	}
	return &FactQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]fact.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.Fact{}, _q.predicates...),
		withRawPost:     _q.withRawPost.Clone(),
		withReferences:  _q.withReferences.Clone(),
		withEvaluations: _q.withEvaluations.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRawPost tells the query-builder to eager-load the nodes that are connected to
// the "raw_post" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FactQuery) WithRawPost(opts ...func(*RawPostQuery)) *FactQuery {
	query := (&RawPostClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRawPost = query
	return _q
}

// WithReferences tells the query-builder to eager-load the nodes that are connected to
// the "references" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FactQuery) WithReferences(opts ...func(*VerificationReferenceQuery)) *FactQuery {
	query := (&VerificationReferenceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withReferences = query
	return _q
}

// WithEvaluations tells the query-builder to eager-load the nodes that are connected to
// the "evaluations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FactQuery) WithEvaluations(opts ...func(*FactEvaluationQuery)) *FactQuery {
	query := (&FactEvaluationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvaluations = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Claim string `json:"claim,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Fact.Query().
//		GroupBy(fact.FieldClaim).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *FactQuery) GroupBy(field string, fields ...string) *FactGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &FactGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = fact.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Claim string `json:"claim,omitempty"`
//	}
//
//	client.Fact.Query().
//		Select(fact.FieldClaim).
//		Scan(ctx, &v)
func (_q *FactQuery) Select(fields ...string) *FactSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &FactSelect{FactQuery: _q}
	sbuild.label = fact.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a FactSelect configured with the given aggregations.
func (_q *FactQuery) Aggregate(fns ...AggregateFunc) *FactSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *FactQuery) prepareQuery(ctx context.Context) error {
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
		if !fact.ValidColumn(f) {
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

func (_q *FactQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Fact, error) {
	var (
		nodes       = []*Fact{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withRawPost != nil,
			_q.withReferences != nil,
			_q.withEvaluations != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Fact).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Fact{config: _q.config}
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
	if query := _q.withRawPost; query != nil {
		if err := _q.loadRawPost(ctx, query, nodes, nil,
			func(n *Fact, e *RawPost) { n.Edges.RawPost = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withReferences; query != nil {
		if err := _q.loadReferences(ctx, query, nodes,
			func(n *Fact) { n.Edges.References = []*VerificationReference{} },
			func(n *Fact, e *VerificationReference) { n.Edges.References = append(n.Edges.References, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvaluations; query != nil {
		if err := _q.loadEvaluations(ctx, query, nodes,
			func(n *Fact) { n.Edges.Evaluations = []*FactEvaluation{} },
			func(n *Fact, e *FactEvaluation) { n.Edges.Evaluations = append(n.Edges.Evaluations, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *FactQuery) loadRawPost(ctx context.Context, query *RawPostQuery, nodes []*Fact, init func(*Fact), assign func(*Fact, *RawPost)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Fact)
	for i := range nodes {
		if nodes[i].RawPostID == nil {
			continue
		}
		fk := *nodes[i].RawPostID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(rawpost.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "raw_post_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *FactQuery) loadReferences(ctx context.Context, query *VerificationReferenceQuery, nodes []*Fact, init func(*Fact), assign func(*Fact, *VerificationReference)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Fact)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(verificationreference.FieldFactID)
	}
	query.Where(predicate.VerificationReference(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(fact.ReferencesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FactID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "fact_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *FactQuery) loadEvaluations(ctx context.Context, query *FactEvaluationQuery, nodes []*Fact, init func(*Fact), assign func(*Fact, *FactEvaluation)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Fact)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(factevaluation.FieldFactID)
	}
	query.Where(predicate.FactEvaluation(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(fact.EvaluationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FactID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "fact_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *FactQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *FactQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(fact.Table, fact.Columns, sqlgraph.NewFieldSpec(fact.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fact.FieldID)
		for i := range fields {
			if fields[i] != fact.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withRawPost != nil {
			_spec.Node.AddColumnOnce(fact.FieldRawPostID)
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

func (_q *FactQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(fact.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = fact.Columns
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

// FactGroupBy is the group-by builder for Fact entities.
type FactGroupBy struct {
	selector
	build *FactQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *FactGroupBy) Aggregate(fns ...AggregateFunc) *FactGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *FactGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FactQuery, *FactGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *FactGroupBy) sqlScan(ctx context.Context, root *FactQuery, v any) error {
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

// FactSelect is the builder for selecting fields of Fact entities.
type FactSelect struct {
	*FactQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *FactSelect) Aggregate(fns ...AggregateFunc) *FactSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *FactSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FactQuery, *FactSelect](ctx, _s.FactQuery, _s, _s.inters, v)
}

func (_s *FactSelect) sqlScan(ctx context.Context, root *FactQuery, v any) error {
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
