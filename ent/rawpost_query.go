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
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/monitoredsource"
	"github.com/credlens/pundit/ent/postqualityassessment"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/rawpost"
)

// RawPostQuery is the builder for querying RawPost entities.
type RawPostQuery struct {
	config
	ctx                   *QueryContext
	order                 []rawpost.OrderOption
	inters                []Interceptor
	predicates            []predicate.RawPost
	withMonitoredSource   *MonitoredSourceQuery
	withFacts             *FactQuery
	withLogics            *LogicQuery
	withQualityAssessment *PostQualityAssessmentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RawPostQuery builder.
func (_q *RawPostQuery) Where(ps ...predicate.RawPost) *RawPostQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RawPostQuery) Limit(limit int) *RawPostQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RawPostQuery) Offset(offset int) *RawPostQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RawPostQuery) Unique(unique bool) *RawPostQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RawPostQuery) Order(o ...rawpost.OrderOption) *RawPostQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryMonitoredSource chains the current query on the "monitored_source" edge.
func (_q *RawPostQuery) QueryMonitoredSource() *MonitoredSourceQuery {
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
			sqlgraph.From(rawpost.Table, rawpost.FieldID, selector),
			sqlgraph.To(monitoredsource.Table, monitoredsource.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, rawpost.MonitoredSourceTable, rawpost.MonitoredSourceColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFacts chains the current query on the "facts" edge.
func (_q *RawPostQuery) QueryFacts() *FactQuery {
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
			sqlgraph.From(rawpost.Table, rawpost.FieldID, selector),
			sqlgraph.To(fact.Table, fact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, rawpost.FactsTable, rawpost.FactsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLogics chains the current query on the "logics" edge.
func (_q *RawPostQuery) QueryLogics() *LogicQuery {
	query := (&LogicClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(rawpost.Table, rawpost.FieldID, selector),
			sqlgraph.To(logic.Table, logic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, rawpost.LogicsTable, rawpost.LogicsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryQualityAssessment chains the current query on the "quality_assessment" edge.
func (_q *RawPostQuery) QueryQualityAssessment() *PostQualityAssessmentQuery {
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
			sqlgraph.From(rawpost.Table, rawpost.FieldID, selector),
			sqlgraph.To(postqualityassessment.Table, postqualityassessment.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, rawpost.QualityAssessmentTable, rawpost.QualityAssessmentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first RawPost entity from the query.
// Returns a *NotFoundError when no RawPost was found.
func (_q *RawPostQuery) First(ctx context.Context) (*RawPost, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{rawpost.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RawPostQuery) FirstX(ctx context.Context) *RawPost {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RawPost ID from the query.
// Returns a *NotFoundError when no RawPost ID was found.
func (_q *RawPostQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{rawpost.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RawPostQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RawPost entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RawPost entity is found.
// Returns a *NotFoundError when no RawPost entities are found.
func (_q *RawPostQuery) Only(ctx context.Context) (*RawPost, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{rawpost.Label}
	default:
		return nil, &NotSingularError{rawpost.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RawPostQuery) OnlyX(ctx context.Context) *RawPost {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RawPost ID in the query.
// Returns a *NotSingularError when more than one RawPost ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RawPostQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{rawpost.Label}
	default:
		err = &NotSingularError{rawpost.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RawPostQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RawPosts.
func (_q *RawPostQuery) All(ctx context.Context) ([]*RawPost, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RawPost, *RawPostQuery]()
	return withInterceptors[[]*RawPost](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RawPostQuery) AllX(ctx context.Context) []*RawPost {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RawPost IDs.
func (_q *RawPostQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(rawpost.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RawPostQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RawPostQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RawPostQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RawPostQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RawPostQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *RawPostQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RawPostQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RawPostQuery) Clone() *RawPostQuery {
	if _q == nil {
		return nil
	}
	return &RawPostQuery{
		config:                _q.config,
		ctx:                   _q.ctx.Clone(),
		order:                 append([]rawpost.OrderOption{}, _q.order...),
		inters:                append([]Interceptor{}, _q.inters...),
		predicates:            append([]predicate.RawPost{}, _q.predicates...),
		withMonitoredSource:   _q.withMonitoredSource.Clone(),
		withFacts:             _q.withFacts.Clone(),
		withLogics:            _q.withLogics.Clone(),
		withQualityAssessment: _q.withQualityAssessment.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithMonitoredSource tells the query-builder to eager-load the nodes that are connected to
// the "monitored_source" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RawPostQuery) WithMonitoredSource(opts ...func(*MonitoredSourceQuery)) *RawPostQuery {
	query := (&MonitoredSourceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMonitoredSource = query
	return _q
}

// WithFacts tells the query-builder to eager-load the nodes that are connected to
// the "facts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RawPostQuery) WithFacts(opts ...func(*FactQuery)) *RawPostQuery {
	query := (&FactClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFacts = query
	return _q
}

// WithLogics tells the query-builder to eager-load the nodes that are connected to
// the "logics" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RawPostQuery) WithLogics(opts ...func(*LogicQuery)) *RawPostQuery {
	query := (&LogicClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLogics = query
	return _q
}

// WithQualityAssessment tells the query-builder to eager-load the nodes that are connected to
// the "quality_assessment" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RawPostQuery) WithQualityAssessment(opts ...func(*PostQualityAssessmentQuery)) *RawPostQuery {
	query := (&PostQualityAssessmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQualityAssessment = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Source string `json:"source,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.RawPost.Query().
//		GroupBy(rawpost.FieldSource).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *RawPostQuery) GroupBy(field string, fields ...string) *RawPostGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RawPostGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = rawpost.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Source string `json:"source,omitempty"`
//	}
//
//	client.RawPost.Query().
//		Select(rawpost.FieldSource).
//		Scan(ctx, &v)
func (_q *RawPostQuery) Select(fields ...string) *RawPostSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RawPostSelect{RawPostQuery: _q}
	sbuild.label = rawpost.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RawPostSelect configured with the given aggregations.
func (_q *RawPostQuery) Aggregate(fns ...AggregateFunc) *RawPostSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RawPostQuery) prepareQuery(ctx context.Context) error {
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
		if !rawpost.ValidColumn(f) {
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

func (_q *RawPostQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RawPost, error) {
	var (
		nodes       = []*RawPost{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withMonitoredSource != nil,
			_q.withFacts != nil,
			_q.withLogics != nil,
			_q.withQualityAssessment != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RawPost).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RawPost{config: _q.config}
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
	if query := _q.withMonitoredSource; query != nil {
		if err := _q.loadMonitoredSource(ctx, query, nodes, nil,
			func(n *RawPost, e *MonitoredSource) { n.Edges.MonitoredSource = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFacts; query != nil {
		if err := _q.loadFacts(ctx, query, nodes,
			func(n *RawPost) { n.Edges.Facts = []*Fact{} },
			func(n *RawPost, e *Fact) { n.Edges.Facts = append(n.Edges.Facts, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLogics; query != nil {
		if err := _q.loadLogics(ctx, query, nodes,
			func(n *RawPost) { n.Edges.Logics = []*Logic{} },
			func(n *RawPost, e *Logic) { n.Edges.Logics = append(n.Edges.Logics, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withQualityAssessment; query != nil {
		if err := _q.loadQualityAssessment(ctx, query, nodes, nil,
			func(n *RawPost, e *PostQualityAssessment) { n.Edges.QualityAssessment = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RawPostQuery) loadMonitoredSource(ctx context.Context, query *MonitoredSourceQuery, nodes []*RawPost, init func(*RawPost), assign func(*RawPost, *MonitoredSource)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*RawPost)
	for i := range nodes {
		if nodes[i].MonitoredSourceID == nil {
			continue
		}
		fk := *nodes[i].MonitoredSourceID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(monitoredsource.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "monitored_source_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *RawPostQuery) loadFacts(ctx context.Context, query *FactQuery, nodes []*RawPost, init func(*RawPost), assign func(*RawPost, *Fact)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*RawPost)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(fact.FieldRawPostID)
	}
	query.Where(predicate.Fact(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(rawpost.FactsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RawPostID
		if fk == nil {
			return fmt.Errorf(`foreign-key "raw_post_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "raw_post_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *RawPostQuery) loadLogics(ctx context.Context, query *LogicQuery, nodes []*RawPost, init func(*RawPost), assign func(*RawPost, *Logic)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*RawPost)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(logic.FieldRawPostID)
	}
	query.Where(predicate.Logic(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(rawpost.LogicsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RawPostID
		if fk == nil {
			return fmt.Errorf(`foreign-key "raw_post_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "raw_post_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *RawPostQuery) loadQualityAssessment(ctx context.Context, query *PostQualityAssessmentQuery, nodes []*RawPost, init func(*RawPost), assign func(*RawPost, *PostQualityAssessment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*RawPost)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(postqualityassessment.FieldRawPostID)
	}
	query.Where(predicate.PostQualityAssessment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(rawpost.QualityAssessmentColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RawPostID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "raw_post_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *RawPostQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RawPostQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(rawpost.Table, rawpost.Columns, sqlgraph.NewFieldSpec(rawpost.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rawpost.FieldID)
		for i := range fields {
			if fields[i] != rawpost.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withMonitoredSource != nil {
			_spec.Node.AddColumnOnce(rawpost.FieldMonitoredSourceID)
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

func (_q *RawPostQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(rawpost.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = rawpost.Columns
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

// RawPostGroupBy is the group-by builder for RawPost entities.
type RawPostGroupBy struct {
	selector
	build *RawPostQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RawPostGroupBy) Aggregate(fns ...AggregateFunc) *RawPostGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RawPostGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RawPostQuery, *RawPostGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RawPostGroupBy) sqlScan(ctx context.Context, root *RawPostQuery, v any) error {
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

// RawPostSelect is the builder for selecting fields of RawPost entities.
type RawPostSelect struct {
	*RawPostQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RawPostSelect) Aggregate(fns ...AggregateFunc) *RawPostSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RawPostSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RawPostQuery, *RawPostSelect](ctx, _s.RawPostQuery, _s, _s.inters, v)
}

func (_s *RawPostSelect) sqlScan(ctx context.Context, root *RawPostQuery, v any) error {
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
