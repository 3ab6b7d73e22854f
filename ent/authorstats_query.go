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
	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/ent/authorstats"
	"github.com/credlens/pundit/ent/predicate"
)

// AuthorStatsQuery is the builder for querying AuthorStats entities.
type AuthorStatsQuery struct {
	config
	ctx        *QueryContext
	order      []authorstats.OrderOption
	inters     []Interceptor
	predicates []predicate.AuthorStats
	withAuthor *AuthorQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AuthorStatsQuery builder.
func (_q *AuthorStatsQuery) Where(ps ...predicate.AuthorStats) *AuthorStatsQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AuthorStatsQuery) Limit(limit int) *AuthorStatsQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AuthorStatsQuery) Offset(offset int) *AuthorStatsQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AuthorStatsQuery) Unique(unique bool) *AuthorStatsQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AuthorStatsQuery) Order(o ...authorstats.OrderOption) *AuthorStatsQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAuthor chains the current query on the "author" edge.
func (_q *AuthorStatsQuery) QueryAuthor() *AuthorQuery {
	query := (&AuthorClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(authorstats.Table, authorstats.FieldID, selector),
			sqlgraph.To(author.Table, author.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, authorstats.AuthorTable, authorstats.AuthorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AuthorStats entity from the query.
// Returns a *NotFoundError when no AuthorStats was found.
func (_q *AuthorStatsQuery) First(ctx context.Context) (*AuthorStats, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{authorstats.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AuthorStatsQuery) FirstX(ctx context.Context) *AuthorStats {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AuthorStats ID from the query.
// Returns a *NotFoundError when no AuthorStats ID was found.
func (_q *AuthorStatsQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{authorstats.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AuthorStatsQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AuthorStats entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AuthorStats entity is found.
// Returns a *NotFoundError when no AuthorStats entities are found.
func (_q *AuthorStatsQuery) Only(ctx context.Context) (*AuthorStats, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{authorstats.Label}
	default:
		return nil, &NotSingularError{authorstats.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AuthorStatsQuery) OnlyX(ctx context.Context) *AuthorStats {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AuthorStats ID in the query.
// Returns a *NotSingularError when more than one AuthorStats ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AuthorStatsQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{authorstats.Label}
	default:
		err = &NotSingularError{authorstats.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AuthorStatsQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AuthorStatsSlice.
func (_q *AuthorStatsQuery) All(ctx context.Context) ([]*AuthorStats, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AuthorStats, *AuthorStatsQuery]()
	return withInterceptors[[]*AuthorStats](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AuthorStatsQuery) AllX(ctx context.Context) []*AuthorStats {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AuthorStats IDs.
func (_q *AuthorStatsQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(authorstats.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AuthorStatsQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AuthorStatsQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AuthorStatsQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AuthorStatsQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AuthorStatsQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *AuthorStatsQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AuthorStatsQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AuthorStatsQuery) Clone() *AuthorStatsQuery {
	if _q == nil {
		return nil
	}
	return &AuthorStatsQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]authorstats.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.AuthorStats{}, _q.predicates...),
		withAuthor: _q.withAuthor.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAuthor tells the query-builder to eager-load the nodes that are connected to
// the "author" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AuthorStatsQuery) WithAuthor(opts ...func(*AuthorQuery)) *AuthorStatsQuery {
	query := (&AuthorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAuthor = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AuthorID int `json:"author_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AuthorStats.Query().
//		GroupBy(authorstats.FieldAuthorID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AuthorStatsQuery) GroupBy(field string, fields ...string) *AuthorStatsGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AuthorStatsGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = authorstats.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AuthorID int `json:"author_id,omitempty"`
//	}
//
//	client.AuthorStats.Query().
//		Select(authorstats.FieldAuthorID).
//		Scan(ctx, &v)
func (_q *AuthorStatsQuery) Select(fields ...string) *AuthorStatsSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AuthorStatsSelect{AuthorStatsQuery: _q}
	sbuild.label = authorstats.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AuthorStatsSelect configured with the given aggregations.
func (_q *AuthorStatsQuery) Aggregate(fns ...AggregateFunc) *AuthorStatsSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AuthorStatsQuery) prepareQuery(ctx context.Context) error {
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
		if !authorstats.ValidColumn(f) {
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

func (_q *AuthorStatsQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AuthorStats, error) {
	var (
		nodes       = []*AuthorStats{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withAuthor != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AuthorStats).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AuthorStats{config: _q.config}
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
	if query := _q.withAuthor; query != nil {
		if err := _q.loadAuthor(ctx, query, nodes, nil,
			func(n *AuthorStats, e *Author) { n.Edges.Author = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AuthorStatsQuery) loadAuthor(ctx context.Context, query *AuthorQuery, nodes []*AuthorStats, init func(*AuthorStats), assign func(*AuthorStats, *Author)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*AuthorStats)
	for i := range nodes {
		fk := nodes[i].AuthorID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(author.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "author_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *AuthorStatsQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AuthorStatsQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(authorstats.Table, authorstats.Columns, sqlgraph.NewFieldSpec(authorstats.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, authorstats.FieldID)
		for i := range fields {
			if fields[i] != authorstats.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withAuthor != nil {
			_spec.Node.AddColumnOnce(authorstats.FieldAuthorID)
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

func (_q *AuthorStatsQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(authorstats.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = authorstats.Columns
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

// AuthorStatsGroupBy is the group-by builder for AuthorStats entities.
type AuthorStatsGroupBy struct {
	selector
	build *AuthorStatsQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AuthorStatsGroupBy) Aggregate(fns ...AggregateFunc) *AuthorStatsGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AuthorStatsGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AuthorStatsQuery, *AuthorStatsGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AuthorStatsGroupBy) sqlScan(ctx context.Context, root *AuthorStatsQuery, v any) error {
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

// AuthorStatsSelect is the builder for selecting fields of AuthorStats entities.
type AuthorStatsSelect struct {
	*AuthorStatsQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AuthorStatsSelect) Aggregate(fns ...AggregateFunc) *AuthorStatsSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AuthorStatsSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AuthorStatsQuery, *AuthorStatsSelect](ctx, _s.AuthorStatsQuery, _s, _s.inters, v)
}

func (_s *AuthorStatsSelect) sqlScan(ctx context.Context, root *AuthorStatsQuery, v any) error {
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
