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
	"github.com/credlens/pundit/ent/postqualityassessment"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/rawpost"
)

// PostQualityAssessmentQuery is the builder for querying PostQualityAssessment entities.
type PostQualityAssessmentQuery struct {
	config
	ctx         *QueryContext
	order       []postqualityassessment.OrderOption
	inters      []Interceptor
	predicates  []predicate.PostQualityAssessment
	withRawPost *RawPostQuery
	withAuthor  *AuthorQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PostQualityAssessmentQuery builder.
func (_q *PostQualityAssessmentQuery) Where(ps ...predicate.PostQualityAssessment) *PostQualityAssessmentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PostQualityAssessmentQuery) Limit(limit int) *PostQualityAssessmentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PostQualityAssessmentQuery) Offset(offset int) *PostQualityAssessmentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PostQualityAssessmentQuery) Unique(unique bool) *PostQualityAssessmentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PostQualityAssessmentQuery) Order(o ...postqualityassessment.OrderOption) *PostQualityAssessmentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRawPost chains the current query on the "raw_post" edge.
func (_q *PostQualityAssessmentQuery) QueryRawPost() *RawPostQuery {
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
			sqlgraph.From(postqualityassessment.Table, postqualityassessment.FieldID, selector),
			sqlgraph.To(rawpost.Table, rawpost.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, postqualityassessment.RawPostTable, postqualityassessment.RawPostColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAuthor chains the current query on the "author" edge.
func (_q *PostQualityAssessmentQuery) QueryAuthor() *AuthorQuery {
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
			sqlgraph.From(postqualityassessment.Table, postqualityassessment.FieldID, selector),
			sqlgraph.To(author.Table, author.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, postqualityassessment.AuthorTable, postqualityassessment.AuthorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PostQualityAssessment entity from the query.
// Returns a *NotFoundError when no PostQualityAssessment was found.
func (_q *PostQualityAssessmentQuery) First(ctx context.Context) (*PostQualityAssessment, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{postqualityassessment.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PostQualityAssessmentQuery) FirstX(ctx context.Context) *PostQualityAssessment {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PostQualityAssessment ID from the query.
// Returns a *NotFoundError when no PostQualityAssessment ID was found.
func (_q *PostQualityAssessmentQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{postqualityassessment.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PostQualityAssessmentQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PostQualityAssessment entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PostQualityAssessment entity is found.
// Returns a *NotFoundError when no PostQualityAssessment entities are found.
func (_q *PostQualityAssessmentQuery) Only(ctx context.Context) (*PostQualityAssessment, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{postqualityassessment.Label}
	default:
		return nil, &NotSingularError{postqualityassessment.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PostQualityAssessmentQuery) OnlyX(ctx context.Context) *PostQualityAssessment {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PostQualityAssessment ID in the query.
// Returns a *NotSingularError when more than one PostQualityAssessment ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PostQualityAssessmentQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{postqualityassessment.Label}
	default:
		err = &NotSingularError{postqualityassessment.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PostQualityAssessmentQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PostQualityAssessments.
func (_q *PostQualityAssessmentQuery) All(ctx context.Context) ([]*PostQualityAssessment, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PostQualityAssessment, *PostQualityAssessmentQuery]()
	return withInterceptors[[]*PostQualityAssessment](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PostQualityAssessmentQuery) AllX(ctx context.Context) []*PostQualityAssessment {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PostQualityAssessment IDs.
func (_q *PostQualityAssessmentQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(postqualityassessment.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PostQualityAssessmentQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PostQualityAssessmentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PostQualityAssessmentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PostQualityAssessmentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PostQualityAssessmentQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PostQualityAssessmentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PostQualityAssessmentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PostQualityAssessmentQuery) Clone() *PostQualityAssessmentQuery {
	if _q == nil {
		return nil
	}
	return &PostQualityAssessmentQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]postqualityassessment.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.PostQualityAssessment{}, _q.predicates...),
		withRawPost: _q.withRawPost.Clone(),
		withAuthor:  _q.withAuthor.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRawPost tells the query-builder to eager-load the nodes that are connected to
// the "raw_post" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PostQualityAssessmentQuery) WithRawPost(opts ...func(*RawPostQuery)) *PostQualityAssessmentQuery {
	query := (&RawPostClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRawPost = query
	return _q
}

// WithAuthor tells the query-builder to eager-load the nodes that are connected to
// the "author" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PostQualityAssessmentQuery) WithAuthor(opts ...func(*AuthorQuery)) *PostQualityAssessmentQuery {
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
//		RawPostID int `json:"raw_post_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PostQualityAssessment.Query().
//		GroupBy(postqualityassessment.FieldRawPostID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PostQualityAssessmentQuery) GroupBy(field string, fields ...string) *PostQualityAssessmentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PostQualityAssessmentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = postqualityassessment.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		RawPostID int `json:"raw_post_id,omitempty"`
//	}
//
//	client.PostQualityAssessment.Query().
//		Select(postqualityassessment.FieldRawPostID).
//		Scan(ctx, &v)
func (_q *PostQualityAssessmentQuery) Select(fields ...string) *PostQualityAssessmentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PostQualityAssessmentSelect{PostQualityAssessmentQuery: _q}
	sbuild.label = postqualityassessment.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PostQualityAssessmentSelect configured with the given aggregations.
func (_q *PostQualityAssessmentQuery) Aggregate(fns ...AggregateFunc) *PostQualityAssessmentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PostQualityAssessmentQuery) prepareQuery(ctx context.Context) error {
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
		if !postqualityassessment.ValidColumn(f) {
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

func (_q *PostQualityAssessmentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PostQualityAssessment, error) {
	var (
		nodes       = []*PostQualityAssessment{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withRawPost != nil,
			_q.withAuthor != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PostQualityAssessment).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PostQualityAssessment{config: _q.config}
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
			func(n *PostQualityAssessment, e *RawPost) { n.Edges.RawPost = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAuthor; query != nil {
		if err := _q.loadAuthor(ctx, query, nodes, nil,
			func(n *PostQualityAssessment, e *Author) { n.Edges.Author = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PostQualityAssessmentQuery) loadRawPost(ctx context.Context, query *RawPostQuery, nodes []*PostQualityAssessment, init func(*PostQualityAssessment), assign func(*PostQualityAssessment, *RawPost)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*PostQualityAssessment)
	for i := range nodes {
		fk := nodes[i].RawPostID
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
func (_q *PostQualityAssessmentQuery) loadAuthor(ctx context.Context, query *AuthorQuery, nodes []*PostQualityAssessment, init func(*PostQualityAssessment), assign func(*PostQualityAssessment, *Author)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*PostQualityAssessment)
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

func (_q *PostQualityAssessmentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PostQualityAssessmentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(postqualityassessment.Table, postqualityassessment.Columns, sqlgraph.NewFieldSpec(postqualityassessment.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, postqualityassessment.FieldID)
		for i := range fields {
			if fields[i] != postqualityassessment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withRawPost != nil {
			_spec.Node.AddColumnOnce(postqualityassessment.FieldRawPostID)
		}
		if _q.withAuthor != nil {
			_spec.Node.AddColumnOnce(postqualityassessment.FieldAuthorID)
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

func (_q *PostQualityAssessmentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(postqualityassessment.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = postqualityassessment.Columns
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

// PostQualityAssessmentGroupBy is the group-by builder for PostQualityAssessment entities.
type PostQualityAssessmentGroupBy struct {
	selector
	build *PostQualityAssessmentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PostQualityAssessmentGroupBy) Aggregate(fns ...AggregateFunc) *PostQualityAssessmentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PostQualityAssessmentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PostQualityAssessmentQuery, *PostQualityAssessmentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PostQualityAssessmentGroupBy) sqlScan(ctx context.Context, root *PostQualityAssessmentQuery, v any) error {
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

// PostQualityAssessmentSelect is the builder for selecting fields of PostQualityAssessment entities.
type PostQualityAssessmentSelect struct {
	*PostQualityAssessmentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PostQualityAssessmentSelect) Aggregate(fns ...AggregateFunc) *PostQualityAssessmentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PostQualityAssessmentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PostQualityAssessmentQuery, *PostQualityAssessmentSelect](ctx, _s.PostQualityAssessmentQuery, _s, _s.inters, v)
}

func (_s *PostQualityAssessmentSelect) sqlScan(ctx context.Context, root *PostQualityAssessmentQuery, v any) error {
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
