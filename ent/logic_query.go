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
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/logicrelation"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/rawpost"
	"github.com/credlens/pundit/ent/solution"
)

// LogicQuery is the builder for querying Logic entities.
type LogicQuery struct {
	config
	ctx                   *QueryContext
	order                 []logic.OrderOption
	inters                []Interceptor
	predicates            []predicate.Logic
	withConclusion        *ConclusionQuery
	withSolution          *SolutionQuery
	withRawPost           *RawPostQuery
	withOutgoingRelations *LogicRelationQuery
	withIncomingRelations *LogicRelationQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LogicQuery builder.
func (_q *LogicQuery) Where(ps ...predicate.Logic) *LogicQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *LogicQuery) Limit(limit int) *LogicQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *LogicQuery) Offset(offset int) *LogicQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *LogicQuery) Unique(unique bool) *LogicQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *LogicQuery) Order(o ...logic.OrderOption) *LogicQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryConclusion chains the current query on the "conclusion" edge.
func (_q *LogicQuery) QueryConclusion() *ConclusionQuery {
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
			sqlgraph.From(logic.Table, logic.FieldID, selector),
			sqlgraph.To(conclusion.Table, conclusion.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, logic.ConclusionTable, logic.ConclusionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySolution chains the current query on the "solution" edge.
func (_q *LogicQuery) QuerySolution() *SolutionQuery {
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
			sqlgraph.From(logic.Table, logic.FieldID, selector),
			sqlgraph.To(solution.Table, solution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, logic.SolutionTable, logic.SolutionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRawPost chains the current query on the "raw_post" edge.
func (_q *LogicQuery) QueryRawPost() *RawPostQuery {
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
			sqlgraph.From(logic.Table, logic.FieldID, selector),
			sqlgraph.To(rawpost.Table, rawpost.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, logic.RawPostTable, logic.RawPostColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOutgoingRelations chains the current query on the "outgoing_relations" edge.
func (_q *LogicQuery) QueryOutgoingRelations() *LogicRelationQuery {
	query := (&LogicRelationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(logic.Table, logic.FieldID, selector),
			sqlgraph.To(logicrelation.Table, logicrelation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, logic.OutgoingRelationsTable, logic.OutgoingRelationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryIncomingRelations chains the current query on the "incoming_relations" edge.
func (_q *LogicQuery) QueryIncomingRelations() *LogicRelationQuery {
	query := (&LogicRelationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(logic.Table, logic.FieldID, selector),
			sqlgraph.To(logicrelation.Table, logicrelation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, logic.IncomingRelationsTable, logic.IncomingRelationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Logic entity from the query.
// Returns a *NotFoundError when no Logic was found.
func (_q *LogicQuery) First(ctx context.Context) (*Logic, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{logic.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *LogicQuery) FirstX(ctx context.Context) *Logic {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Logic ID from the query.
// Returns a *NotFoundError when no Logic ID was found.
func (_q *LogicQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{logic.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *LogicQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Logic entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Logic entity is found.
// Returns a *NotFoundError when no Logic entities are found.
func (_q *LogicQuery) Only(ctx context.Context) (*Logic, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{logic.Label}
	default:
		return nil, &NotSingularError{logic.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *LogicQuery) OnlyX(ctx context.Context) *Logic {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Logic ID in the query.
// Returns a *NotSingularError when more than one Logic ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *LogicQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{logic.Label}
	default:
		err = &NotSingularError{logic.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *LogicQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Logics.
func (_q *LogicQuery) All(ctx context.Context) ([]*Logic, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Logic, *LogicQuery]()
	return withInterceptors[[]*Logic](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *LogicQuery) AllX(ctx context.Context) []*Logic {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Logic IDs.
func (_q *LogicQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(logic.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *LogicQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *LogicQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*LogicQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *LogicQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *LogicQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *LogicQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LogicQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *LogicQuery) Clone() *LogicQuery {
	if _q == nil {
		return nil
	}
	return &LogicQuery{
		config:                _q.config,
		ctx:                   _q.ctx.Clone(),
		order:                 append([]logic.OrderOption{}, _q.order...),
		inters:                append([]Interceptor{}, _q.inters...),
		predicates:            append([]predicate.Logic{}, _q.predicates...),
		withConclusion:        _q.withConclusion.Clone(),
		withSolution:          _q.withSolution.Clone(),
		withRawPost:           _q.withRawPost.Clone(),
		withOutgoingRelations: _q.withOutgoingRelations.Clone(),
		withIncomingRelations: _q.withIncomingRelations.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithConclusion tells the query-builder to eager-load the nodes that are connected to
// the "conclusion" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LogicQuery) WithConclusion(opts ...func(*ConclusionQuery)) *LogicQuery {
	query := (&ConclusionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withConclusion = query
	return _q
}

// WithSolution tells the query-builder to eager-load the nodes that are connected to
// the "solution" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LogicQuery) WithSolution(opts ...func(*SolutionQuery)) *LogicQuery {
	query := (&SolutionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSolution = query
	return _q
}

// WithRawPost tells the query-builder to eager-load the nodes that are connected to
// the "raw_post" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LogicQuery) WithRawPost(opts ...func(*RawPostQuery)) *LogicQuery {
	query := (&RawPostClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRawPost = query
	return _q
}

// WithOutgoingRelations tells the query-builder to eager-load the nodes that are connected to
// the "outgoing_relations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LogicQuery) WithOutgoingRelations(opts ...func(*LogicRelationQuery)) *LogicQuery {
	query := (&LogicRelationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOutgoingRelations = query
	return _q
}

// WithIncomingRelations tells the query-builder to eager-load the nodes that are connected to
// the "incoming_relations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LogicQuery) WithIncomingRelations(opts ...func(*LogicRelationQuery)) *LogicQuery {
	query := (&LogicRelationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withIncomingRelations = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		LogicType logic.LogicType `json:"logic_type,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Logic.Query().
//		GroupBy(logic.FieldLogicType).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *LogicQuery) GroupBy(field string, fields ...string) *LogicGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LogicGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = logic.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		LogicType logic.LogicType `json:"logic_type,omitempty"`
//	}
//
//	client.Logic.Query().
//		Select(logic.FieldLogicType).
//		Scan(ctx, &v)
func (_q *LogicQuery) Select(fields ...string) *LogicSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &LogicSelect{LogicQuery: _q}
	sbuild.label = logic.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LogicSelect configured with the given aggregations.
func (_q *LogicQuery) Aggregate(fns ...AggregateFunc) *LogicSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *LogicQuery) prepareQuery(ctx context.Context) error {
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
		if !logic.ValidColumn(f) {
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

func (_q *LogicQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Logic, error) {
	var (
		nodes       = []*Logic{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withConclusion != nil,
			_q.withSolution != nil,
			_q.withRawPost != nil,
			_q.withOutgoingRelations != nil,
			_q.withIncomingRelations != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Logic).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Logic{config: _q.config}
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
	if query := _q.withConclusion; query != nil {
		if err := _q.loadConclusion(ctx, query, nodes, nil,
			func(n *Logic, e *Conclusion) { n.Edges.Conclusion = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSolution; query != nil {
		if err := _q.loadSolution(ctx, query, nodes, nil,
			func(n *Logic, e *Solution) { n.Edges.Solution = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRawPost; query != nil {
		if err := _q.loadRawPost(ctx, query, nodes, nil,
			func(n *Logic, e *RawPost) { n.Edges.RawPost = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOutgoingRelations; query != nil {
		if err := _q.loadOutgoingRelations(ctx, query, nodes,
			func(n *Logic) { n.Edges.OutgoingRelations = []*LogicRelation{} },
			func(n *Logic, e *LogicRelation) { n.Edges.OutgoingRelations = append(n.Edges.OutgoingRelations, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withIncomingRelations; query != nil {
		if err := _q.loadIncomingRelations(ctx, query, nodes,
			func(n *Logic) { n.Edges.IncomingRelations = []*LogicRelation{} },
			func(n *Logic, e *LogicRelation) { n.Edges.IncomingRelations = append(n.Edges.IncomingRelations, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *LogicQuery) loadConclusion(ctx context.Context, query *ConclusionQuery, nodes []*Logic, init func(*Logic), assign func(*Logic, *Conclusion)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Logic)
	for i := range nodes {
		if nodes[i].ConclusionID == nil {
			continue
		}
		fk := *nodes[i].ConclusionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(conclusion.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "conclusion_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *LogicQuery) loadSolution(ctx context.Context, query *SolutionQuery, nodes []*Logic, init func(*Logic), assign func(*Logic, *Solution)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Logic)
	for i := range nodes {
		if nodes[i].SolutionID == nil {
			continue
		}
		fk := *nodes[i].SolutionID
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
func (_q *LogicQuery) loadRawPost(ctx context.Context, query *RawPostQuery, nodes []*Logic, init func(*Logic), assign func(*Logic, *RawPost)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Logic)
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
func (_q *LogicQuery) loadOutgoingRelations(ctx context.Context, query *LogicRelationQuery, nodes []*Logic, init func(*Logic), assign func(*Logic, *LogicRelation)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Logic)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(logicrelation.FieldFromLogicID)
	}
	query.Where(predicate.LogicRelation(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(logic.OutgoingRelationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FromLogicID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "from_logic_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *LogicQuery) loadIncomingRelations(ctx context.Context, query *LogicRelationQuery, nodes []*Logic, init func(*Logic), assign func(*Logic, *LogicRelation)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Logic)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(logicrelation.FieldToLogicID)
	}
	query.Where(predicate.LogicRelation(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(logic.IncomingRelationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ToLogicID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "to_logic_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *LogicQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *LogicQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(logic.Table, logic.Columns, sqlgraph.NewFieldSpec(logic.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, logic.FieldID)
		for i := range fields {
			if fields[i] != logic.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withConclusion != nil {
			_spec.Node.AddColumnOnce(logic.FieldConclusionID)
		}
		if _q.withSolution != nil {
			_spec.Node.AddColumnOnce(logic.FieldSolutionID)
		}
		if _q.withRawPost != nil {
			_spec.Node.AddColumnOnce(logic.FieldRawPostID)
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

func (_q *LogicQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(logic.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = logic.Columns
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

// LogicGroupBy is the group-by builder for Logic entities.
type LogicGroupBy struct {
	selector
	build *LogicQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *LogicGroupBy) Aggregate(fns ...AggregateFunc) *LogicGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *LogicGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LogicQuery, *LogicGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *LogicGroupBy) sqlScan(ctx context.Context, root *LogicQuery, v any) error {
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

// LogicSelect is the builder for selecting fields of Logic entities.
type LogicSelect struct {
	*LogicQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *LogicSelect) Aggregate(fns ...AggregateFunc) *LogicSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *LogicSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LogicQuery, *LogicSelect](ctx, _s.LogicQuery, _s, _s.inters, v)
}

func (_s *LogicSelect) sqlScan(ctx context.Context, root *LogicQuery, v any) error {
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
