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
	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/ent/monitoredsource"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/rawpost"
)

// MonitoredSourceQuery is the builder for querying MonitoredSource entities.
type MonitoredSourceQuery struct {
	config
	ctx          *QueryContext
	order        []monitoredsource.OrderOption
	inters       []Interceptor
	predicates   []predicate.MonitoredSource
	withAuthor   *AuthorQuery
	withRawPosts *RawPostQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MonitoredSourceQuery builder.
func (_q *MonitoredSourceQuery) Where(ps ...predicate.MonitoredSource) *MonitoredSourceQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MonitoredSourceQuery) Limit(limit int) *MonitoredSourceQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MonitoredSourceQuery) Offset(offset int) *MonitoredSourceQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MonitoredSourceQuery) Unique(unique bool) *MonitoredSourceQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MonitoredSourceQuery) Order(o ...monitoredsource.OrderOption) *MonitoredSourceQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAuthor chains the current query on the "author" edge.
func (_q *MonitoredSourceQuery) QueryAuthor() *AuthorQuery {
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
			sqlgraph.From(monitoredsource.Table, monitoredsource.FieldID, selector),
			sqlgraph.To(author.Table, author.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, monitoredsource.AuthorTable, monitoredsource.AuthorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRawPosts chains the current query on the "raw_posts" edge.
func (_q *MonitoredSourceQuery) QueryRawPosts() *RawPostQuery {
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
			sqlgraph.From(monitoredsource.Table, monitoredsource.FieldID, selector),
			sqlgraph.To(rawpost.Table, rawpost.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, monitoredsource.RawPostsTable, monitoredsource.RawPostsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first MonitoredSource entity from the query.
// Returns a *NotFoundError when no MonitoredSource was found.
func (_q *MonitoredSourceQuery) First(ctx context.Context) (*MonitoredSource, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{monitoredsource.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MonitoredSourceQuery) FirstX(ctx context.Context) *MonitoredSource {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MonitoredSource ID from the query.
// Returns a *NotFoundError when no MonitoredSource ID was found.
func (_q *MonitoredSourceQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{monitoredsource.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MonitoredSourceQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MonitoredSource entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MonitoredSource entity is found.
// Returns a *NotFoundError when no MonitoredSource entities are found.
func (_q *MonitoredSourceQuery) Only(ctx context.Context) (*MonitoredSource, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{monitoredsource.Label}
	default:
		return nil, &NotSingularError{monitoredsource.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MonitoredSourceQuery) OnlyX(ctx context.Context) *MonitoredSource {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MonitoredSource ID in the query.
// Returns a *NotSingularError when more than one MonitoredSource ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MonitoredSourceQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{monitoredsource.Label}
	default:
		err = &NotSingularError{monitoredsource.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MonitoredSourceQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MonitoredSources.
func (_q *MonitoredSourceQuery) All(ctx context.Context) ([]*MonitoredSource, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MonitoredSource, *MonitoredSourceQuery]()
	return withInterceptors[[]*MonitoredSource](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MonitoredSourceQuery) AllX(ctx context.Context) []*MonitoredSource {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MonitoredSource IDs.
func (_q *MonitoredSourceQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(monitoredsource.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MonitoredSourceQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MonitoredSourceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MonitoredSourceQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MonitoredSourceQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MonitoredSourceQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *MonitoredSourceQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MonitoredSourceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MonitoredSourceQuery) Clone() *MonitoredSourceQuery {
	if _q == nil {
		return nil
	}
	return &MonitoredSourceQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]monitoredsource.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.MonitoredSource{}, _q.predicates...),
		withAuthor:   _q.withAuthor.Clone(),
		withRawPosts: _q.withRawPosts.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAuthor tells the query-builder to eager-load the nodes that are connected to
// the "author" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MonitoredSourceQuery) WithAuthor(opts ...func(*AuthorQuery)) *MonitoredSourceQuery {
	query := (&AuthorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAuthor = query
	return _q
}

// WithRawPosts tells the query-builder to eager-load the nodes that are connected to
// the "raw_posts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MonitoredSourceQuery) WithRawPosts(opts ...func(*RawPostQuery)) *MonitoredSourceQuery {
	query := (&RawPostClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRawPosts = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		URL string `json:"url,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.MonitoredSource.Query().
//		GroupBy(monitoredsource.FieldURL).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *MonitoredSourceQuery) GroupBy(field string, fields ...string) *MonitoredSourceGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MonitoredSourceGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = monitoredsource.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		URL string `json:"url,omitempty"`
//	}
//
//	client.MonitoredSource.Query().
//		Select(monitoredsource.FieldURL).
//		Scan(ctx, &v)
func (_q *MonitoredSourceQuery) Select(fields ...string) *MonitoredSourceSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MonitoredSourceSelect{MonitoredSourceQuery: _q}
	sbuild.label = monitoredsource.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MonitoredSourceSelect configured with the given aggregations.
func (_q *MonitoredSourceQuery) Aggregate(fns ...AggregateFunc) *MonitoredSourceSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MonitoredSourceQuery) prepareQuery(ctx context.Context) error {
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
		if !monitoredsource.ValidColumn(f) {
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

func (_q *MonitoredSourceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MonitoredSource, error) {
	var (
		nodes       = []*MonitoredSource{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withAuthor != nil,
			_q.withRawPosts != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MonitoredSource).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MonitoredSource{config: _q.config}
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
			func(n *MonitoredSource, e *Author) { n.Edges.Author = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRawPosts; query != nil {
		if err := _q.loadRawPosts(ctx, query, nodes,
			func(n *MonitoredSource) { n.Edges.RawPosts = []*RawPost{} },
			func(n *MonitoredSource, e *RawPost) { n.Edges.RawPosts = append(n.Edges.RawPosts, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MonitoredSourceQuery) loadAuthor(ctx context.Context, query *AuthorQuery, nodes []*MonitoredSource, init func(*MonitoredSource), assign func(*MonitoredSource, *Author)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*MonitoredSource)
	for i := range nodes {
		if nodes[i].AuthorID == nil {
			continue
		}
		fk := *nodes[i].AuthorID
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
func (_q *MonitoredSourceQuery) loadRawPosts(ctx context.Context, query *RawPostQuery, nodes []*MonitoredSource, init func(*MonitoredSource), assign func(*MonitoredSource, *RawPost)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*MonitoredSource)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(rawpost.FieldMonitoredSourceID)
	}
	query.Where(predicate.RawPost(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(monitoredsource.RawPostsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MonitoredSourceID
		if fk == nil {
			return fmt.Errorf(`foreign-key "monitored_source_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "monitored_source_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *MonitoredSourceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MonitoredSourceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(monitoredsource.Table, monitoredsource.Columns, sqlgraph.NewFieldSpec(monitoredsource.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, monitoredsource.FieldID)
		for i := range fields {
			if fields[i] != monitoredsource.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withAuthor != nil {
			_spec.Node.AddColumnOnce(monitoredsource.FieldAuthorID)
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

func (_q *MonitoredSourceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(monitoredsource.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = monitoredsource.Columns
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

// MonitoredSourceGroupBy is the group-by builder for MonitoredSource entities.
type MonitoredSourceGroupBy struct {
	selector
	build *MonitoredSourceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MonitoredSourceGroupBy) Aggregate(fns ...AggregateFunc) *MonitoredSourceGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MonitoredSourceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MonitoredSourceQuery, *MonitoredSourceGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MonitoredSourceGroupBy) sqlScan(ctx context.Context, root *MonitoredSourceQuery, v any) error {
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

// MonitoredSourceSelect is the builder for selecting fields of MonitoredSource entities.
type MonitoredSourceSelect struct {
	*MonitoredSourceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MonitoredSourceSelect) Aggregate(fns ...AggregateFunc) *MonitoredSourceSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MonitoredSourceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MonitoredSourceQuery, *MonitoredSourceSelect](ctx, _s.MonitoredSourceQuery, _s, _s.inters, v)
}

func (_s *MonitoredSourceSelect) sqlScan(ctx context.Context, root *MonitoredSourceQuery, v any) error {
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
