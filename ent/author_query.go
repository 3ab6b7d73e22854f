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
	"github.com/credlens/pundit/ent/authorstats"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/monitoredsource"
	"github.com/credlens/pundit/ent/postqualityassessment"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/solution"
)

// AuthorQuery is the builder for querying Author entities.
type AuthorQuery struct {
	config
	ctx                    *QueryContext
	order                  []author.OrderOption
	inters                 []Interceptor
	predicates             []predicate.Author
	withConclusions        *ConclusionQuery
	withSolutions          *SolutionQuery
	withMonitoredSources   *MonitoredSourceQuery
	withQualityAssessments *PostQualityAssessmentQuery
	withStats              *AuthorStatsQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AuthorQuery builder.
func (_q *AuthorQuery) Where(ps ...predicate.Author) *AuthorQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AuthorQuery) Limit(limit int) *AuthorQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AuthorQuery) Offset(offset int) *AuthorQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AuthorQuery) Unique(unique bool) *AuthorQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AuthorQuery) Order(o ...author.OrderOption) *AuthorQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryConclusions chains the current query on the "conclusions" edge.
func (_q *AuthorQuery) QueryConclusions() *ConclusionQuery {
	query := (&ConclusionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(author.Table, author.FieldID, selector),
			sqlgraph.To(conclusion.Table, conclusion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, author.ConclusionsTable, author.ConclusionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySolutions chains the current query on the "solutions" edge.
func (_q *AuthorQuery) QuerySolutions() *SolutionQuery {
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
			sqlgraph.From(author.Table, author.FieldID, selector),
			sqlgraph.To(solution.Table, solution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, author.SolutionsTable, author.SolutionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMonitoredSources chains the current query on the "monitored_sources" edge.
func (_q *AuthorQuery) QueryMonitoredSources() *MonitoredSourceQuery {
	query := (&MonitoredSourceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(author.Table, author.FieldID, selector),
			sqlgraph.To(monitoredsource.Table, monitoredsource.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, author.MonitoredSourcesTable, author.MonitoredSourcesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryQualityAssessments chains the current query on the "quality_assessments" edge.
func (_q *AuthorQuery) QueryQualityAssessments() *PostQualityAssessmentQuery {
	query := (&PostQualityAssessmentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(author.Table, author.FieldID, selector),
			sqlgraph.To(postqualityassessment.Table, postqualityassessment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, author.QualityAssessmentsTable, author.QualityAssessmentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStats chains the current query on the "stats" edge.
func (_q *AuthorQuery) QueryStats() *AuthorStatsQuery {
	query := (&AuthorStatsClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(author.Table, author.FieldID, selector),
			sqlgraph.To(authorstats.Table, authorstats.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, author.StatsTable, author.StatsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Author entity from the query.
// Returns a *NotFoundError when no Author was found.
func (_q *AuthorQuery) First(ctx context.Context) (*Author, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{author.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AuthorQuery) FirstX(ctx context.Context) *Author {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Author ID from the query.
// Returns a *NotFoundError when no Author ID was found.
func (_q *AuthorQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{author.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AuthorQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Author entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Author entity is found.
// Returns a *NotFoundError when no Author entities are found.
func (_q *AuthorQuery) Only(ctx context.Context) (*Author, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{author.Label}
	default:
		return nil, &NotSingularError{author.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AuthorQuery) OnlyX(ctx context.Context) *Author {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Author ID in the query.
// Returns a *NotSingularError when more than one Author ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AuthorQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{author.Label}
	default:
		err = &NotSingularError{author.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AuthorQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Authors.
func (_q *AuthorQuery) All(ctx context.Context) ([]*Author, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Author, *AuthorQuery]()
	return withInterceptors[[]*Author](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AuthorQuery) AllX(ctx context.Context) []*Author {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Author IDs.
func (_q *AuthorQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(author.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AuthorQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AuthorQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AuthorQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AuthorQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AuthorQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *AuthorQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AuthorQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AuthorQuery) Clone() *AuthorQuery {
	if _q == nil {
		return nil
	}
	return &AuthorQuery{
		config:                 _q.config,
		ctx:                    _q.ctx.Clone(),
		order:                  append([]author.OrderOption{}, _q.order...),
		inters:                 append([]Interceptor{}, _q.inters...),
		predicates:             append([]predicate.Author{}, _q.predicates...),
		withConclusions:        _q.withConclusions.Clone(),
		withSolutions:          _q.withSolutions.Clone(),
		withMonitoredSources:   _q.withMonitoredSources.Clone(),
		withQualityAssessments: _q.withQualityAssessments.Clone(),
		withStats:              _q.withStats.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithConclusions tells the query-builder to eager-load the nodes that are connected to
// the "conclusions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AuthorQuery) WithConclusions(opts ...func(*ConclusionQuery)) *AuthorQuery {
	query := (&ConclusionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withConclusions = query
	return _q
}

// WithSolutions tells the query-builder to eager-load the nodes that are connected to
// the "solutions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AuthorQuery) WithSolutions(opts ...func(*SolutionQuery)) *AuthorQuery {
	query := (&SolutionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSolutions = query
	return _q
}

// WithMonitoredSources tells the query-builder to eager-load the nodes that are connected to
// the "monitored_sources" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AuthorQuery) WithMonitoredSources(opts ...func(*MonitoredSourceQuery)) *AuthorQuery {
	query := (&MonitoredSourceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMonitoredSources = query
	return _q
}

// WithQualityAssessments tells the query-builder to eager-load the nodes that are connected to
// the "quality_assessments" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AuthorQuery) WithQualityAssessments(opts ...func(*PostQualityAssessmentQuery)) *AuthorQuery {
	query := (&PostQualityAssessmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQualityAssessments = query
	return _q
}

// WithStats tells the query-builder to eager-load the nodes that are connected to
// the "stats" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AuthorQuery) WithStats(opts ...func(*AuthorStatsQuery)) *AuthorQuery {
	query := (&AuthorStatsClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStats = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Author.Query().
//		GroupBy(author.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AuthorQuery) GroupBy(field string, fields ...string) *AuthorGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AuthorGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = author.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Author.Query().
//		Select(author.FieldName).
//		Scan(ctx, &v)
func (_q *AuthorQuery) Select(fields ...string) *AuthorSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AuthorSelect{AuthorQuery: _q}
	sbuild.label = author.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AuthorSelect configured with the given aggregations.
func (_q *AuthorQuery) Aggregate(fns ...AggregateFunc) *AuthorSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AuthorQuery) prepareQuery(ctx context.Context) error {
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
		if !author.ValidColumn(f) {
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

func (_q *AuthorQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Author, error) {
	var (
		nodes       = []*Author{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withConclusions != nil,
			_q.withSolutions != nil,
			_q.withMonitoredSources != nil,
			_q.withQualityAssessments != nil,
			_q.withStats != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Author).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Author{config: _q.config}
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
	if query := _q.withConclusions; query != nil {
		if err := _q.loadConclusions(ctx, query, nodes,
			func(n *Author) { n.Edges.Conclusions = []*Conclusion{} },
			func(n *Author, e *Conclusion) { n.Edges.Conclusions = append(n.Edges.Conclusions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSolutions; query != nil {
		if err := _q.loadSolutions(ctx, query, nodes,
			func(n *Author) { n.Edges.Solutions = []*Solution{} },
			func(n *Author, e *Solution) { n.Edges.Solutions = append(n.Edges.Solutions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMonitoredSources; query != nil {
		if err := _q.loadMonitoredSources(ctx, query, nodes,
			func(n *Author) { n.Edges.MonitoredSources = []*MonitoredSource{} },
			func(n *Author, e *MonitoredSource) { n.Edges.MonitoredSources = append(n.Edges.MonitoredSources, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withQualityAssessments; query != nil {
		if err := _q.loadQualityAssessments(ctx, query, nodes,
			func(n *Author) { n.Edges.QualityAssessments = []*PostQualityAssessment{} },
			func(n *Author, e *PostQualityAssessment) {
				n.Edges.QualityAssessments = append(n.Edges.QualityAssessments, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withStats; query != nil {
		if err := _q.loadStats(ctx, query, nodes, nil,
			func(n *Author, e *AuthorStats) { n.Edges.Stats = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AuthorQuery) loadConclusions(ctx context.Context, query *ConclusionQuery, nodes []*Author, init func(*Author), assign func(*Author, *Conclusion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Author)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(conclusion.FieldAuthorID)
	}
	query.Where(predicate.Conclusion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(author.ConclusionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AuthorID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "author_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AuthorQuery) loadSolutions(ctx context.Context, query *SolutionQuery, nodes []*Author, init func(*Author), assign func(*Author, *Solution)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Author)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(solution.FieldAuthorID)
	}
	query.Where(predicate.Solution(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(author.SolutionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AuthorID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "author_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AuthorQuery) loadMonitoredSources(ctx context.Context, query *MonitoredSourceQuery, nodes []*Author, init func(*Author), assign func(*Author, *MonitoredSource)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Author)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(monitoredsource.FieldAuthorID)
	}
	query.Where(predicate.MonitoredSource(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(author.MonitoredSourcesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AuthorID
		if fk == nil {
			return fmt.Errorf(`foreign-key "author_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "author_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AuthorQuery) loadQualityAssessments(ctx context.Context, query *PostQualityAssessmentQuery, nodes []*Author, init func(*Author), assign func(*Author, *PostQualityAssessment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Author)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(postqualityassessment.FieldAuthorID)
	}
	query.Where(predicate.PostQualityAssessment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(author.QualityAssessmentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AuthorID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "author_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AuthorQuery) loadStats(ctx context.Context, query *AuthorStatsQuery, nodes []*Author, init func(*Author), assign func(*Author, *AuthorStats)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Author)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(authorstats.FieldAuthorID)
	}
	query.Where(predicate.AuthorStats(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(author.StatsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AuthorID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "author_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AuthorQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AuthorQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(author.Table, author.Columns, sqlgraph.NewFieldSpec(author.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, author.FieldID)
		for i := range fields {
			if fields[i] != author.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *AuthorQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(author.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = author.Columns
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

// AuthorGroupBy is the group-by builder for Author entities.
type AuthorGroupBy struct {
	selector
	build *AuthorQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AuthorGroupBy) Aggregate(fns ...AggregateFunc) *AuthorGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AuthorGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AuthorQuery, *AuthorGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AuthorGroupBy) sqlScan(ctx context.Context, root *AuthorQuery, v any) error {
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

// AuthorSelect is the builder for selecting fields of Author entities.
type AuthorSelect struct {
	*AuthorQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AuthorSelect) Aggregate(fns ...AggregateFunc) *AuthorSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AuthorSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AuthorQuery, *AuthorSelect](ctx, _s.AuthorQuery, _s, _s.inters, v)
}

func (_s *AuthorSelect) sqlScan(ctx context.Context, root *AuthorQuery, v any) error {
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
