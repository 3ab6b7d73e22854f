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
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/conclusionverdict"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/topic"
)

// ConclusionQuery is the builder for querying Conclusion entities.
type ConclusionQuery struct {
	config
	ctx          *QueryContext
	order        []conclusion.OrderOption
	inters       []Interceptor
	predicates   []predicate.Conclusion
	withTopic    *TopicQuery
	withAuthor   *AuthorQuery
	withLogics   *LogicQuery
	withVerdicts *ConclusionVerdictQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ConclusionQuery builder.
func (_q *ConclusionQuery) Where(ps ...predicate.Conclusion) *ConclusionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ConclusionQuery) Limit(limit int) *ConclusionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ConclusionQuery) Offset(offset int) *ConclusionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ConclusionQuery) Unique(unique bool) *ConclusionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ConclusionQuery) Order(o ...conclusion.OrderOption) *ConclusionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTopic chains the current query on the "topic" edge.
func (_q *ConclusionQuery) QueryTopic() *TopicQuery {
	query := (&TopicClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(conclusion.Table, conclusion.FieldID, selector),
			sqlgraph.To(topic.Table, topic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conclusion.TopicTable, conclusion.TopicColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAuthor chains the current query on the "author" edge.
func (_q *ConclusionQuery) QueryAuthor() *AuthorQuery {
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
			sqlgraph.From(conclusion.Table, conclusion.FieldID, selector),
			sqlgraph.To(author.Table, author.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conclusion.AuthorTable, conclusion.AuthorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLogics chains the current query on the "logics" edge.
func (_q *ConclusionQuery) QueryLogics() *LogicQuery {
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
			sqlgraph.From(conclusion.Table, conclusion.FieldID, selector),
			sqlgraph.To(logic.Table, logic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conclusion.LogicsTable, conclusion.LogicsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryVerdicts chains the current query on the "verdicts" edge.
func (_q *ConclusionQuery) QueryVerdicts() *ConclusionVerdictQuery {
	query := (&ConclusionVerdictClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(conclusion.Table, conclusion.FieldID, selector),
			sqlgraph.To(conclusionverdict.Table, conclusionverdict.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conclusion.VerdictsTable, conclusion.VerdictsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Conclusion entity from the query.
// Returns a *NotFoundError when no Conclusion was found.
func (_q *ConclusionQuery) First(ctx context.Context) (*Conclusion, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{conclusion.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ConclusionQuery) FirstX(ctx context.Context) *Conclusion {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Conclusion ID from the query.
// Returns a *NotFoundError when no Conclusion ID was found.
func (_q *ConclusionQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{conclusion.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ConclusionQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Conclusion entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Conclusion entity is found.
// Returns a *NotFoundError when no Conclusion entities are found.
func (_q *ConclusionQuery) Only(ctx context.Context) (*Conclusion, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{conclusion.Label}
	default:
		return nil, &NotSingularError{conclusion.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ConclusionQuery) OnlyX(ctx context.Context) *Conclusion {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Conclusion ID in the query.
// Returns a *NotSingularError when more than one Conclusion ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ConclusionQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{conclusion.Label}
	default:
		err = &NotSingularError{conclusion.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ConclusionQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Conclusions.
func (_q *ConclusionQuery) All(ctx context.Context) ([]*Conclusion, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Conclusion, *ConclusionQuery]()
	return withInterceptors[[]*Conclusion](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ConclusionQuery) AllX(ctx context.Context) []*Conclusion {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Conclusion IDs.
func (_q *ConclusionQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(conclusion.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ConclusionQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ConclusionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ConclusionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ConclusionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ConclusionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ConclusionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ConclusionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ConclusionQuery) Clone() *ConclusionQuery {
	if _q == nil {
		return nil
	}
	return &ConclusionQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]conclusion.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.Conclusion{}, _q.predicates...),
		withTopic:    _q.withTopic.Clone(),
		withAuthor:   _q.withAuthor.Clone(),
		withLogics:   _q.withLogics.Clone(),
		withVerdicts: _q.withVerdicts.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTopic tells the query-builder to eager-load the nodes that are connected to
// the "topic" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ConclusionQuery) WithTopic(opts ...func(*TopicQuery)) *ConclusionQuery {
	query := (&TopicClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTopic = query
	return _q
}

// WithAuthor tells the query-builder to eager-load the nodes that are connected to
// the "author" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ConclusionQuery) WithAuthor(opts ...func(*AuthorQuery)) *ConclusionQuery {
	query := (&AuthorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAuthor = query
	return _q
}

// WithLogics tells the query-builder to eager-load the nodes that are connected to
// the "logics" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ConclusionQuery) WithLogics(opts ...func(*LogicQuery)) *ConclusionQuery {
	query := (&LogicClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLogics = query
	return _q
}

// WithVerdicts tells the query-builder to eager-load the nodes that are connected to
// the "verdicts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ConclusionQuery) WithVerdicts(opts ...func(*ConclusionVerdictQuery)) *ConclusionQuery {
	query := (&ConclusionVerdictClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVerdicts = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TopicID int `json:"topic_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Conclusion.Query().
//		GroupBy(conclusion.FieldTopicID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ConclusionQuery) GroupBy(field string, fields ...string) *ConclusionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ConclusionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = conclusion.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TopicID int `json:"topic_id,omitempty"`
//	}
//
//	client.Conclusion.Query().
//		Select(conclusion.FieldTopicID).
//		Scan(ctx, &v)
func (_q *ConclusionQuery) Select(fields ...string) *ConclusionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ConclusionSelect{ConclusionQuery: _q}
	sbuild.label = conclusion.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ConclusionSelect configured with the given aggregations.
func (_q *ConclusionQuery) Aggregate(fns ...AggregateFunc) *ConclusionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ConclusionQuery) prepareQuery(ctx context.Context) error {
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
		if !conclusion.ValidColumn(f) {
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

func (_q *ConclusionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Conclusion, error) {
	var (
		nodes       = []*Conclusion{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withTopic != nil,
			_q.withAuthor != nil,
			_q.withLogics != nil,
			_q.withVerdicts != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Conclusion).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Conclusion{config: _q.config}
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
	if query := _q.withTopic; query != nil {
		if err := _q.loadTopic(ctx, query, nodes, nil,
			func(n *Conclusion, e *Topic) { n.Edges.Topic = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAuthor; query != nil {
		if err := _q.loadAuthor(ctx, query, nodes, nil,
			func(n *Conclusion, e *Author) { n.Edges.Author = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLogics; query != nil {
		if err := _q.loadLogics(ctx, query, nodes,
			func(n *Conclusion) { n.Edges.Logics = []*Logic{} },
			func(n *Conclusion, e *Logic) { n.Edges.Logics = append(n.Edges.Logics, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withVerdicts; query != nil {
		if err := _q.loadVerdicts(ctx, query, nodes,
			func(n *Conclusion) { n.Edges.Verdicts = []*ConclusionVerdict{} },
			func(n *Conclusion, e *ConclusionVerdict) { n.Edges.Verdicts = append(n.Edges.Verdicts, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ConclusionQuery) loadTopic(ctx context.Context, query *TopicQuery, nodes []*Conclusion, init func(*Conclusion), assign func(*Conclusion, *Topic)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Conclusion)
	for i := range nodes {
		fk := nodes[i].TopicID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(topic.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "topic_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ConclusionQuery) loadAuthor(ctx context.Context, query *AuthorQuery, nodes []*Conclusion, init func(*Conclusion), assign func(*Conclusion, *Author)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Conclusion)
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
func (_q *ConclusionQuery) loadLogics(ctx context.Context, query *LogicQuery, nodes []*Conclusion, init func(*Conclusion), assign func(*Conclusion, *Logic)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Conclusion)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(logic.FieldConclusionID)
	}
	query.Where(predicate.Logic(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(conclusion.LogicsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ConclusionID
		if fk == nil {
			return fmt.Errorf(`foreign-key "conclusion_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "conclusion_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ConclusionQuery) loadVerdicts(ctx context.Context, query *ConclusionVerdictQuery, nodes []*Conclusion, init func(*Conclusion), assign func(*Conclusion, *ConclusionVerdict)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Conclusion)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(conclusionverdict.FieldConclusionID)
	}
	query.Where(predicate.ConclusionVerdict(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(conclusion.VerdictsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ConclusionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "conclusion_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ConclusionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ConclusionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(conclusion.Table, conclusion.Columns, sqlgraph.NewFieldSpec(conclusion.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conclusion.FieldID)
		for i := range fields {
			if fields[i] != conclusion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withTopic != nil {
			_spec.Node.AddColumnOnce(conclusion.FieldTopicID)
		}
		if _q.withAuthor != nil {
			_spec.Node.AddColumnOnce(conclusion.FieldAuthorID)
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

func (_q *ConclusionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(conclusion.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = conclusion.Columns
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

// ConclusionGroupBy is the group-by builder for Conclusion entities.
type ConclusionGroupBy struct {
	selector
	build *ConclusionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ConclusionGroupBy) Aggregate(fns ...AggregateFunc) *ConclusionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ConclusionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ConclusionQuery, *ConclusionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ConclusionGroupBy) sqlScan(ctx context.Context, root *ConclusionQuery, v any) error {
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

// ConclusionSelect is the builder for selecting fields of Conclusion entities.
type ConclusionSelect struct {
	*ConclusionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ConclusionSelect) Aggregate(fns ...AggregateFunc) *ConclusionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ConclusionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ConclusionQuery, *ConclusionSelect](ctx, _s.ConclusionQuery, _s, _s.inters, v)
}

func (_s *ConclusionSelect) sqlScan(ctx context.Context, root *ConclusionQuery, v any) error {
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
