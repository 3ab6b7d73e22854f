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
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/solution"
	"github.com/credlens/pundit/ent/solutionassessment"
)

// SolutionAssessmentQuery is the builder for querying SolutionAssessment entities.
type SolutionAssessmentQuery struct {
	config
	ctx          *QueryContext
	order        []solutionassessment.OrderOption
	inters       []Interceptor
	predicates   []predicate.SolutionAssessment
	withSolution *SolutionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SolutionAssessmentQuery builder.
func (_q *SolutionAssessmentQuery) Where(ps ...predicate.SolutionAssessment) *SolutionAssessmentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SolutionAssessmentQuery) Limit(limit int) *SolutionAssessmentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SolutionAssessmentQuery) Offset(offset int) *SolutionAssessmentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SolutionAssessmentQuery) Unique(unique bool) *SolutionAssessmentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SolutionAssessmentQuery) Order(o ...solutionassessment.OrderOption) *SolutionAssessmentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySolution chains the current query on the "solution" edge.
func (_q *SolutionAssessmentQuery) QuerySolution() *SolutionQuery {
	query := (&SolutionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(solutionassessment.Table, solutionassessment.FieldID, selector),
			sqlgraph.To(solution.Table, solution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, solutionassessment.SolutionTable, solutionassessment.SolutionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SolutionAssessment entity from the query.
// Returns a *NotFoundError when no SolutionAssessment was found.
func (_q *SolutionAssessmentQuery) First(ctx context.Context) (*SolutionAssessment, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{solutionassessment.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SolutionAssessmentQuery) FirstX(ctx context.Context) *SolutionAssessment {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SolutionAssessment ID from the query.
// Returns a *NotFoundError when no SolutionAssessment ID was found.
func (_q *SolutionAssessmentQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{solutionassessment.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SolutionAssessmentQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SolutionAssessment entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SolutionAssessment entity is found.
// Returns a *NotFoundError when no SolutionAssessment entities are found.
func (_q *SolutionAssessmentQuery) Only(ctx context.Context) (*SolutionAssessment, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{solutionassessment.Label}
	default:
		return nil, &NotSingularError{solutionassessment.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SolutionAssessmentQuery) OnlyX(ctx context.Context) *SolutionAssessment {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SolutionAssessment ID in the query.
// Returns a *NotSingularError when more than one SolutionAssessment ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SolutionAssessmentQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{solutionassessment.Label}
	default:
		err = &NotSingularError{solutionassessment.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SolutionAssessmentQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SolutionAssessments.
func (_q *SolutionAssessmentQuery) All(ctx context.Context) ([]*SolutionAssessment, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SolutionAssessment, *SolutionAssessmentQuery]()
	return withInterceptors[[]*SolutionAssessment](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SolutionAssessmentQuery) AllX(ctx context.Context) []*SolutionAssessment {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SolutionAssessment IDs.
func (_q *SolutionAssessmentQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(solutionassessment.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SolutionAssessmentQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SolutionAssessmentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SolutionAssessmentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SolutionAssessmentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SolutionAssessmentQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *SolutionAssessmentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SolutionAssessmentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SolutionAssessmentQuery) Clone() *SolutionAssessmentQuery {
	if _q == nil {
		return nil
	}
	return &SolutionAssessmentQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]solutionassessment.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.SolutionAssessment{}, _q.predicates...),
		withSolution: _q.withSolution.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSolution tells the query-builder to eager-load the nodes that are connected to
// the "solution" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SolutionAssessmentQuery) WithSolution(opts ...func(*SolutionQuery)) *SolutionAssessmentQuery {
	query := (&SolutionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSolution = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SolutionID int `json:"solution_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SolutionAssessment.Query().
//		GroupBy(solutionassessment.FieldSolutionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SolutionAssessmentQuery) GroupBy(field string, fields ...string) *SolutionAssessmentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SolutionAssessmentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = solutionassessment.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SolutionID int `json:"solution_id,omitempty"`
//	}
//
//	client.SolutionAssessment.Query().
//		Select(solutionassessment.FieldSolutionID).
//		Scan(ctx, &v)
func (_q *SolutionAssessmentQuery) Select(fields ...string) *SolutionAssessmentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SolutionAssessmentSelect{SolutionAssessmentQuery: _q}
	sbuild.label = solutionassessment.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SolutionAssessmentSelect configured with the given aggregations.
func (_q *SolutionAssessmentQuery) Aggregate(fns ...AggregateFunc) *SolutionAssessmentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SolutionAssessmentQuery) prepareQuery(ctx context.Context) error {
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
		if !solutionassessment.ValidColumn(f) {
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

func (_q *SolutionAssessmentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SolutionAssessment, error) {
	var (
		nodes       = []*SolutionAssessment{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withSolution != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SolutionAssessment).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SolutionAssessment{config: _q.config}
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
	if query := _q.withSolution; query != nil {
		if err := _q.loadSolution(ctx, query, nodes, nil,
			func(n *SolutionAssessment, e *Solution) { n.Edges.Solution = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SolutionAssessmentQuery) loadSolution(ctx context.Context, query *SolutionQuery, nodes []*SolutionAssessment, init func(*SolutionAssessment), assign func(*SolutionAssessment, *Solution)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*SolutionAssessment)
	for i := range nodes {
		fk := nodes[i].SolutionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(solution.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "solution_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *SolutionAssessmentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SolutionAssessmentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(solutionassessment.Table, solutionassessment.Columns, sqlgraph.NewFieldSpec(solutionassessment.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, solutionassessment.FieldID)
		for i := range fields {
			if fields[i] != solutionassessment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSolution != nil {
			_spec.Node.AddColumnOnce(solutionassessment.FieldSolutionID)
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

func (_q *SolutionAssessmentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(solutionassessment.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = solutionassessment.Columns
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

// SolutionAssessmentGroupBy is the group-by builder for SolutionAssessment entities.
type SolutionAssessmentGroupBy struct {
	selector
	build *SolutionAssessmentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SolutionAssessmentGroupBy) Aggregate(fns ...AggregateFunc) *SolutionAssessmentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SolutionAssessmentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SolutionAssessmentQuery, *SolutionAssessmentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SolutionAssessmentGroupBy) sqlScan(ctx context.Context, root *SolutionAssessmentQuery, v any) error {
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

// SolutionAssessmentSelect is the builder for selecting fields of SolutionAssessment entities.
type SolutionAssessmentSelect struct {
	*SolutionAssessmentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SolutionAssessmentSelect) Aggregate(fns ...AggregateFunc) *SolutionAssessmentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SolutionAssessmentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SolutionAssessmentQuery, *SolutionAssessmentSelect](ctx, _s.SolutionAssessmentQuery, _s, _s.inters, v)
}

func (_s *SolutionAssessmentSelect) sqlScan(ctx context.Context, root *SolutionAssessmentQuery, v any) error {
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
