// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/credlens/pundit/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/ent/authorstats"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/conclusionverdict"
	"github.com/credlens/pundit/ent/fact"
	"github.com/credlens/pundit/ent/factevaluation"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/logicrelation"
	"github.com/credlens/pundit/ent/monitoredsource"
	"github.com/credlens/pundit/ent/postqualityassessment"
	"github.com/credlens/pundit/ent/rawpost"
	"github.com/credlens/pundit/ent/solution"
	"github.com/credlens/pundit/ent/solutionassessment"
	"github.com/credlens/pundit/ent/topic"
	"github.com/credlens/pundit/ent/verificationreference"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Author is the client for interacting with the Author builders.
	Author *AuthorClient
	// AuthorStats is the client for interacting with the AuthorStats builders.
	AuthorStats *AuthorStatsClient
	// Conclusion is the client for interacting with the Conclusion builders.
	Conclusion *ConclusionClient
	// ConclusionVerdict is the client for interacting with the ConclusionVerdict builders.
	ConclusionVerdict *ConclusionVerdictClient
	// Fact is the client for interacting with the Fact builders.
	Fact *FactClient
	// FactEvaluation is the client for interacting with the FactEvaluation builders.
	FactEvaluation *FactEvaluationClient
	// Logic is the client for interacting with the Logic builders.
	Logic *LogicClient
	// LogicRelation is the client for interacting with the LogicRelation builders.
	LogicRelation *LogicRelationClient
	// MonitoredSource is the client for interacting with the MonitoredSource builders.
	MonitoredSource *MonitoredSourceClient
	// PostQualityAssessment is the client for interacting with the PostQualityAssessment builders.
	PostQualityAssessment *PostQualityAssessmentClient
	// RawPost is the client for interacting with the RawPost builders.
	RawPost *RawPostClient
	// Solution is the client for interacting with the Solution builders.
	Solution *SolutionClient
	// SolutionAssessment is the client for interacting with the SolutionAssessment builders.
	SolutionAssessment *SolutionAssessmentClient
	// Topic is the client for interacting with the Topic builders.
	Topic *TopicClient
	// VerificationReference is the client for interacting with the VerificationReference builders.
	VerificationReference *VerificationReferenceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Author = NewAuthorClient(c.config)
	c.AuthorStats = NewAuthorStatsClient(c.config)
	c.Conclusion = NewConclusionClient(c.config)
	c.ConclusionVerdict = NewConclusionVerdictClient(c.config)
	c.Fact = NewFactClient(c.config)
	c.FactEvaluation = NewFactEvaluationClient(c.config)
	c.Logic = NewLogicClient(c.config)
	c.LogicRelation = NewLogicRelationClient(c.config)
	c.MonitoredSource = NewMonitoredSourceClient(c.config)
	c.PostQualityAssessment = NewPostQualityAssessmentClient(c.config)
	c.RawPost = NewRawPostClient(c.config)
	c.Solution = NewSolutionClient(c.config)
	c.SolutionAssessment = NewSolutionAssessmentClient(c.config)
	c.Topic = NewTopicClient(c.config)
	c.VerificationReference = NewVerificationReferenceClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                   ctx,
		config:                cfg,
		Author:                NewAuthorClient(cfg),
		AuthorStats:           NewAuthorStatsClient(cfg),
		Conclusion:            NewConclusionClient(cfg),
		ConclusionVerdict:     NewConclusionVerdictClient(cfg),
		Fact:                  NewFactClient(cfg),
		FactEvaluation:        NewFactEvaluationClient(cfg),
		Logic:                 NewLogicClient(cfg),
		LogicRelation:         NewLogicRelationClient(cfg),
		MonitoredSource:       NewMonitoredSourceClient(cfg),
		PostQualityAssessment: NewPostQualityAssessmentClient(cfg),
		RawPost:               NewRawPostClient(cfg),
		Solution:              NewSolutionClient(cfg),
		SolutionAssessment:    NewSolutionAssessmentClient(cfg),
		Topic:                 NewTopicClient(cfg),
		VerificationReference: NewVerificationReferenceClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                   ctx,
		config:                cfg,
		Author:                NewAuthorClient(cfg),
		AuthorStats:           NewAuthorStatsClient(cfg),
		Conclusion:            NewConclusionClient(cfg),
		ConclusionVerdict:     NewConclusionVerdictClient(cfg),
		Fact:                  NewFactClient(cfg),
		FactEvaluation:        NewFactEvaluationClient(cfg),
		Logic:                 NewLogicClient(cfg),
		LogicRelation:         NewLogicRelationClient(cfg),
		MonitoredSource:       NewMonitoredSourceClient(cfg),
		PostQualityAssessment: NewPostQualityAssessmentClient(cfg),
		RawPost:               NewRawPostClient(cfg),
		Solution:              NewSolutionClient(cfg),
		SolutionAssessment:    NewSolutionAssessmentClient(cfg),
		Topic:                 NewTopicClient(cfg),
		VerificationReference: NewVerificationReferenceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Author.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Author, c.AuthorStats, c.Conclusion, c.ConclusionVerdict, c.Fact,
		c.FactEvaluation, c.Logic, c.LogicRelation, c.MonitoredSource,
		c.PostQualityAssessment, c.RawPost, c.Solution, c.SolutionAssessment, c.Topic,
		c.VerificationReference,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Author, c.AuthorStats, c.Conclusion, c.ConclusionVerdict, c.Fact,
		c.FactEvaluation, c.Logic, c.LogicRelation, c.MonitoredSource,
		c.PostQualityAssessment, c.RawPost, c.Solution, c.SolutionAssessment, c.Topic,
		c.VerificationReference,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuthorMutation:
		return c.Author.mutate(ctx, m)
	case *AuthorStatsMutation:
		return c.AuthorStats.mutate(ctx, m)
	case *ConclusionMutation:
		return c.Conclusion.mutate(ctx, m)
	case *ConclusionVerdictMutation:
		return c.ConclusionVerdict.mutate(ctx, m)
	case *FactMutation:
		return c.Fact.mutate(ctx, m)
	case *FactEvaluationMutation:
		return c.FactEvaluation.mutate(ctx, m)
	case *LogicMutation:
		return c.Logic.mutate(ctx, m)
	case *LogicRelationMutation:
		return c.LogicRelation.mutate(ctx, m)
	case *MonitoredSourceMutation:
		return c.MonitoredSource.mutate(ctx, m)
	case *PostQualityAssessmentMutation:
		return c.PostQualityAssessment.mutate(ctx, m)
	case *RawPostMutation:
		return c.RawPost.mutate(ctx, m)
	case *SolutionMutation:
		return c.Solution.mutate(ctx, m)
	case *SolutionAssessmentMutation:
		return c.SolutionAssessment.mutate(ctx, m)
	case *TopicMutation:
		return c.Topic.mutate(ctx, m)
	case *VerificationReferenceMutation:
		return c.VerificationReference.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuthorClient is a client for the Author schema.
type AuthorClient struct {
	config
}

// NewAuthorClient returns a client for the Author from the given config.
func NewAuthorClient(c config) *AuthorClient {
	return &AuthorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `author.Hooks(f(g(h())))`.
func (c *AuthorClient) Use(hooks ...Hook) {
	c.hooks.Author = append(c.hooks.Author, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `author.Intercept(f(g(h())))`.
func (c *AuthorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Author = append(c.inters.Author, interceptors...)
}

// Create returns a builder for creating a Author entity.
func (c *AuthorClient) Create() *AuthorCreate {
	mutation := newAuthorMutation(c.config, OpCreate)
	return &AuthorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Author entities.
func (c *AuthorClient) CreateBulk(builders ...*AuthorCreate) *AuthorCreateBulk {
	return &AuthorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuthorClient) MapCreateBulk(slice any, setFunc func(*AuthorCreate, int)) *AuthorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuthorCreateBulk{err: fmt.Errorf("calling to AuthorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuthorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuthorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Author.
func (c *AuthorClient) Update() *AuthorUpdate {
	mutation := newAuthorMutation(c.config, OpUpdate)
	return &AuthorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuthorClient) UpdateOne(_m *Author) *AuthorUpdateOne {
	mutation := newAuthorMutation(c.config, OpUpdateOne, withAuthor(_m))
	return &AuthorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuthorClient) UpdateOneID(id int) *AuthorUpdateOne {
	mutation := newAuthorMutation(c.config, OpUpdateOne, withAuthorID(id))
	return &AuthorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Author.
func (c *AuthorClient) Delete() *AuthorDelete {
	mutation := newAuthorMutation(c.config, OpDelete)
	return &AuthorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuthorClient) DeleteOne(_m *Author) *AuthorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuthorClient) DeleteOneID(id int) *AuthorDeleteOne {
	builder := c.Delete().Where(author.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuthorDeleteOne{builder}
}

// Query returns a query builder for Author.
func (c *AuthorClient) Query() *AuthorQuery {
	return &AuthorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuthor},
		inters: c.Interceptors(),
	}
}

// Get returns a Author entity by its id.
func (c *AuthorClient) Get(ctx context.Context, id int) (*Author, error) {
	return c.Query().Where(author.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuthorClient) GetX(ctx context.Context, id int) *Author {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConclusions queries the conclusions edge of a Author.
func (c *AuthorClient) QueryConclusions(_m *Author) *ConclusionQuery {
	query := (&ConclusionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(author.Table, author.FieldID, id),
			sqlgraph.To(conclusion.Table, conclusion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, author.ConclusionsTable, author.ConclusionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySolutions queries the solutions edge of a Author.
func (c *AuthorClient) QuerySolutions(_m *Author) *SolutionQuery {
	query := (&SolutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(author.Table, author.FieldID, id),
			sqlgraph.To(solution.Table, solution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, author.SolutionsTable, author.SolutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMonitoredSources queries the monitored_sources edge of a Author.
func (c *AuthorClient) QueryMonitoredSources(_m *Author) *MonitoredSourceQuery {
	query := (&MonitoredSourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(author.Table, author.FieldID, id),
			sqlgraph.To(monitoredsource.Table, monitoredsource.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, author.MonitoredSourcesTable, author.MonitoredSourcesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQualityAssessments queries the quality_assessments edge of a Author.
func (c *AuthorClient) QueryQualityAssessments(_m *Author) *PostQualityAssessmentQuery {
	query := (&PostQualityAssessmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(author.Table, author.FieldID, id),
			sqlgraph.To(postqualityassessment.Table, postqualityassessment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, author.QualityAssessmentsTable, author.QualityAssessmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStats queries the stats edge of a Author.
func (c *AuthorClient) QueryStats(_m *Author) *AuthorStatsQuery {
	query := (&AuthorStatsClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(author.Table, author.FieldID, id),
			sqlgraph.To(authorstats.Table, authorstats.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, author.StatsTable, author.StatsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuthorClient) Hooks() []Hook {
	return c.hooks.Author
}

// Interceptors returns the client interceptors.
func (c *AuthorClient) Interceptors() []Interceptor {
	return c.inters.Author
}

func (c *AuthorClient) mutate(ctx context.Context, m *AuthorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuthorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuthorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuthorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuthorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Author mutation op: %q", m.Op())
	}
}

// AuthorStatsClient is a client for the AuthorStats schema.
type AuthorStatsClient struct {
	config
}

// NewAuthorStatsClient returns a client for the AuthorStats from the given config.
func NewAuthorStatsClient(c config) *AuthorStatsClient {
	return &AuthorStatsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `authorstats.Hooks(f(g(h())))`.
func (c *AuthorStatsClient) Use(hooks ...Hook) {
	c.hooks.AuthorStats = append(c.hooks.AuthorStats, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `authorstats.Intercept(f(g(h())))`.
func (c *AuthorStatsClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuthorStats = append(c.inters.AuthorStats, interceptors...)
}

// Create returns a builder for creating a AuthorStats entity.
func (c *AuthorStatsClient) Create() *AuthorStatsCreate {
	mutation := newAuthorStatsMutation(c.config, OpCreate)
	return &AuthorStatsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuthorStats entities.
func (c *AuthorStatsClient) CreateBulk(builders ...*AuthorStatsCreate) *AuthorStatsCreateBulk {
	return &AuthorStatsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuthorStatsClient) MapCreateBulk(slice any, setFunc func(*AuthorStatsCreate, int)) *AuthorStatsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuthorStatsCreateBulk{err: fmt.Errorf("calling to AuthorStatsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuthorStatsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuthorStatsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuthorStats.
func (c *AuthorStatsClient) Update() *AuthorStatsUpdate {
	mutation := newAuthorStatsMutation(c.config, OpUpdate)
	return &AuthorStatsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuthorStatsClient) UpdateOne(_m *AuthorStats) *AuthorStatsUpdateOne {
	mutation := newAuthorStatsMutation(c.config, OpUpdateOne, withAuthorStats(_m))
	return &AuthorStatsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuthorStatsClient) UpdateOneID(id int) *AuthorStatsUpdateOne {
	mutation := newAuthorStatsMutation(c.config, OpUpdateOne, withAuthorStatsID(id))
	return &AuthorStatsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuthorStats.
func (c *AuthorStatsClient) Delete() *AuthorStatsDelete {
	mutation := newAuthorStatsMutation(c.config, OpDelete)
	return &AuthorStatsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuthorStatsClient) DeleteOne(_m *AuthorStats) *AuthorStatsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuthorStatsClient) DeleteOneID(id int) *AuthorStatsDeleteOne {
	builder := c.Delete().Where(authorstats.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuthorStatsDeleteOne{builder}
}

// Query returns a query builder for AuthorStats.
func (c *AuthorStatsClient) Query() *AuthorStatsQuery {
	return &AuthorStatsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuthorStats},
		inters: c.Interceptors(),
	}
}

// Get returns a AuthorStats entity by its id.
func (c *AuthorStatsClient) Get(ctx context.Context, id int) (*AuthorStats, error) {
	return c.Query().Where(authorstats.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuthorStatsClient) GetX(ctx context.Context, id int) *AuthorStats {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAuthor queries the author edge of a AuthorStats.
func (c *AuthorStatsClient) QueryAuthor(_m *AuthorStats) *AuthorQuery {
	query := (&AuthorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(authorstats.Table, authorstats.FieldID, id),
			sqlgraph.To(author.Table, author.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, authorstats.AuthorTable, authorstats.AuthorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuthorStatsClient) Hooks() []Hook {
	return c.hooks.AuthorStats
}

// Interceptors returns the client interceptors.
func (c *AuthorStatsClient) Interceptors() []Interceptor {
	return c.inters.AuthorStats
}

func (c *AuthorStatsClient) mutate(ctx context.Context, m *AuthorStatsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuthorStatsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuthorStatsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuthorStatsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuthorStatsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuthorStats mutation op: %q", m.Op())
	}
}

// ConclusionClient is a client for the Conclusion schema.
type ConclusionClient struct {
	config
}

// NewConclusionClient returns a client for the Conclusion from the given config.
func NewConclusionClient(c config) *ConclusionClient {
	return &ConclusionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conclusion.Hooks(f(g(h())))`.
func (c *ConclusionClient) Use(hooks ...Hook) {
	c.hooks.Conclusion = append(c.hooks.Conclusion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conclusion.Intercept(f(g(h())))`.
func (c *ConclusionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Conclusion = append(c.inters.Conclusion, interceptors...)
}

// Create returns a builder for creating a Conclusion entity.
func (c *ConclusionClient) Create() *ConclusionCreate {
	mutation := newConclusionMutation(c.config, OpCreate)
	return &ConclusionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Conclusion entities.
func (c *ConclusionClient) CreateBulk(builders ...*ConclusionCreate) *ConclusionCreateBulk {
	return &ConclusionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConclusionClient) MapCreateBulk(slice any, setFunc func(*ConclusionCreate, int)) *ConclusionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConclusionCreateBulk{err: fmt.Errorf("calling to ConclusionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConclusionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConclusionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Conclusion.
func (c *ConclusionClient) Update() *ConclusionUpdate {
	mutation := newConclusionMutation(c.config, OpUpdate)
	return &ConclusionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConclusionClient) UpdateOne(_m *Conclusion) *ConclusionUpdateOne {
	mutation := newConclusionMutation(c.config, OpUpdateOne, withConclusion(_m))
	return &ConclusionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConclusionClient) UpdateOneID(id int) *ConclusionUpdateOne {
	mutation := newConclusionMutation(c.config, OpUpdateOne, withConclusionID(id))
	return &ConclusionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Conclusion.
func (c *ConclusionClient) Delete() *ConclusionDelete {
	mutation := newConclusionMutation(c.config, OpDelete)
	return &ConclusionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConclusionClient) DeleteOne(_m *Conclusion) *ConclusionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConclusionClient) DeleteOneID(id int) *ConclusionDeleteOne {
	builder := c.Delete().Where(conclusion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConclusionDeleteOne{builder}
}

// Query returns a query builder for Conclusion.
func (c *ConclusionClient) Query() *ConclusionQuery {
	return &ConclusionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConclusion},
		inters: c.Interceptors(),
	}
}

// Get returns a Conclusion entity by its id.
func (c *ConclusionClient) Get(ctx context.Context, id int) (*Conclusion, error) {
	return c.Query().Where(conclusion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConclusionClient) GetX(ctx context.Context, id int) *Conclusion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTopic queries the topic edge of a Conclusion.
func (c *ConclusionClient) QueryTopic(_m *Conclusion) *TopicQuery {
	query := (&TopicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conclusion.Table, conclusion.FieldID, id),
			sqlgraph.To(topic.Table, topic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conclusion.TopicTable, conclusion.TopicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuthor queries the author edge of a Conclusion.
func (c *ConclusionClient) QueryAuthor(_m *Conclusion) *AuthorQuery {
	query := (&AuthorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conclusion.Table, conclusion.FieldID, id),
			sqlgraph.To(author.Table, author.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conclusion.AuthorTable, conclusion.AuthorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLogics queries the logics edge of a Conclusion.
func (c *ConclusionClient) QueryLogics(_m *Conclusion) *LogicQuery {
	query := (&LogicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conclusion.Table, conclusion.FieldID, id),
			sqlgraph.To(logic.Table, logic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conclusion.LogicsTable, conclusion.LogicsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVerdicts queries the verdicts edge of a Conclusion.
func (c *ConclusionClient) QueryVerdicts(_m *Conclusion) *ConclusionVerdictQuery {
	query := (&ConclusionVerdictClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conclusion.Table, conclusion.FieldID, id),
			sqlgraph.To(conclusionverdict.Table, conclusionverdict.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conclusion.VerdictsTable, conclusion.VerdictsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConclusionClient) Hooks() []Hook {
	return c.hooks.Conclusion
}

// Interceptors returns the client interceptors.
func (c *ConclusionClient) Interceptors() []Interceptor {
	return c.inters.Conclusion
}

func (c *ConclusionClient) mutate(ctx context.Context, m *ConclusionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConclusionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConclusionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConclusionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConclusionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Conclusion mutation op: %q", m.Op())
	}
}

// ConclusionVerdictClient is a client for the ConclusionVerdict schema.
type ConclusionVerdictClient struct {
	config
}

// NewConclusionVerdictClient returns a client for the ConclusionVerdict from the given config.
func NewConclusionVerdictClient(c config) *ConclusionVerdictClient {
	return &ConclusionVerdictClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conclusionverdict.Hooks(f(g(h())))`.
func (c *ConclusionVerdictClient) Use(hooks ...Hook) {
	c.hooks.ConclusionVerdict = append(c.hooks.ConclusionVerdict, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conclusionverdict.Intercept(f(g(h())))`.
func (c *ConclusionVerdictClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConclusionVerdict = append(c.inters.ConclusionVerdict, interceptors...)
}

// Create returns a builder for creating a ConclusionVerdict entity.
func (c *ConclusionVerdictClient) Create() *ConclusionVerdictCreate {
	mutation := newConclusionVerdictMutation(c.config, OpCreate)
	return &ConclusionVerdictCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConclusionVerdict entities.
func (c *ConclusionVerdictClient) CreateBulk(builders ...*ConclusionVerdictCreate) *ConclusionVerdictCreateBulk {
	return &ConclusionVerdictCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConclusionVerdictClient) MapCreateBulk(slice any, setFunc func(*ConclusionVerdictCreate, int)) *ConclusionVerdictCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConclusionVerdictCreateBulk{err: fmt.Errorf("calling to ConclusionVerdictClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConclusionVerdictCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConclusionVerdictCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConclusionVerdict.
func (c *ConclusionVerdictClient) Update() *ConclusionVerdictUpdate {
	mutation := newConclusionVerdictMutation(c.config, OpUpdate)
	return &ConclusionVerdictUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConclusionVerdictClient) UpdateOne(_m *ConclusionVerdict) *ConclusionVerdictUpdateOne {
	mutation := newConclusionVerdictMutation(c.config, OpUpdateOne, withConclusionVerdict(_m))
	return &ConclusionVerdictUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConclusionVerdictClient) UpdateOneID(id int) *ConclusionVerdictUpdateOne {
	mutation := newConclusionVerdictMutation(c.config, OpUpdateOne, withConclusionVerdictID(id))
	return &ConclusionVerdictUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConclusionVerdict.
func (c *ConclusionVerdictClient) Delete() *ConclusionVerdictDelete {
	mutation := newConclusionVerdictMutation(c.config, OpDelete)
	return &ConclusionVerdictDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConclusionVerdictClient) DeleteOne(_m *ConclusionVerdict) *ConclusionVerdictDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConclusionVerdictClient) DeleteOneID(id int) *ConclusionVerdictDeleteOne {
	builder := c.Delete().Where(conclusionverdict.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConclusionVerdictDeleteOne{builder}
}

// Query returns a query builder for ConclusionVerdict.
func (c *ConclusionVerdictClient) Query() *ConclusionVerdictQuery {
	return &ConclusionVerdictQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConclusionVerdict},
		inters: c.Interceptors(),
	}
}

// Get returns a ConclusionVerdict entity by its id.
func (c *ConclusionVerdictClient) Get(ctx context.Context, id int) (*ConclusionVerdict, error) {
	return c.Query().Where(conclusionverdict.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConclusionVerdictClient) GetX(ctx context.Context, id int) *ConclusionVerdict {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConclusion queries the conclusion edge of a ConclusionVerdict.
func (c *ConclusionVerdictClient) QueryConclusion(_m *ConclusionVerdict) *ConclusionQuery {
	query := (&ConclusionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conclusionverdict.Table, conclusionverdict.FieldID, id),
			sqlgraph.To(conclusion.Table, conclusion.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conclusionverdict.ConclusionTable, conclusionverdict.ConclusionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConclusionVerdictClient) Hooks() []Hook {
	return c.hooks.ConclusionVerdict
}

// Interceptors returns the client interceptors.
func (c *ConclusionVerdictClient) Interceptors() []Interceptor {
	return c.inters.ConclusionVerdict
}

func (c *ConclusionVerdictClient) mutate(ctx context.Context, m *ConclusionVerdictMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConclusionVerdictCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConclusionVerdictUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConclusionVerdictUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConclusionVerdictDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConclusionVerdict mutation op: %q", m.Op())
	}
}

// FactClient is a client for the Fact schema.
type FactClient struct {
	config
}

// NewFactClient returns a client for the Fact from the given config.
func NewFactClient(c config) *FactClient {
	return &FactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fact.Hooks(f(g(h())))`.
func (c *FactClient) Use(hooks ...Hook) {
	c.hooks.Fact = append(c.hooks.Fact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fact.Intercept(f(g(h())))`.
func (c *FactClient) Intercept(interceptors ...Interceptor) {
	c.inters.Fact = append(c.inters.Fact, interceptors...)
}

// Create returns a builder for creating a Fact entity.
func (c *FactClient) Create() *FactCreate {
	mutation := newFactMutation(c.config, OpCreate)
	return &FactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Fact entities.
func (c *FactClient) CreateBulk(builders ...*FactCreate) *FactCreateBulk {
	return &FactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FactClient) MapCreateBulk(slice any, setFunc func(*FactCreate, int)) *FactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FactCreateBulk{err: fmt.Errorf("calling to FactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Fact.
func (c *FactClient) Update() *FactUpdate {
	mutation := newFactMutation(c.config, OpUpdate)
	return &FactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FactClient) UpdateOne(_m *Fact) *FactUpdateOne {
	mutation := newFactMutation(c.config, OpUpdateOne, withFact(_m))
	return &FactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FactClient) UpdateOneID(id int) *FactUpdateOne {
	mutation := newFactMutation(c.config, OpUpdateOne, withFactID(id))
	return &FactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Fact.
func (c *FactClient) Delete() *FactDelete {
	mutation := newFactMutation(c.config, OpDelete)
	return &FactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FactClient) DeleteOne(_m *Fact) *FactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FactClient) DeleteOneID(id int) *FactDeleteOne {
	builder := c.Delete().Where(fact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FactDeleteOne{builder}
}

// Query returns a query builder for Fact.
func (c *FactClient) Query() *FactQuery {
	return &FactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFact},
		inters: c.Interceptors(),
	}
}

// Get returns a Fact entity by its id.
func (c *FactClient) Get(ctx context.Context, id int) (*Fact, error) {
	return c.Query().Where(fact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FactClient) GetX(ctx context.Context, id int) *Fact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRawPost queries the raw_post edge of a Fact.
func (c *FactClient) QueryRawPost(_m *Fact) *RawPostQuery {
	query := (&RawPostClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fact.Table, fact.FieldID, id),
			sqlgraph.To(rawpost.Table, rawpost.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fact.RawPostTable, fact.RawPostColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReferences queries the references edge of a Fact.
func (c *FactClient) QueryReferences(_m *Fact) *VerificationReferenceQuery {
	query := (&VerificationReferenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fact.Table, fact.FieldID, id),
			sqlgraph.To(verificationreference.Table, verificationreference.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, fact.ReferencesTable, fact.ReferencesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvaluations queries the evaluations edge of a Fact.
func (c *FactClient) QueryEvaluations(_m *Fact) *FactEvaluationQuery {
	query := (&FactEvaluationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fact.Table, fact.FieldID, id),
			sqlgraph.To(factevaluation.Table, factevaluation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, fact.EvaluationsTable, fact.EvaluationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FactClient) Hooks() []Hook {
	return c.hooks.Fact
}

// Interceptors returns the client interceptors.
func (c *FactClient) Interceptors() []Interceptor {
	return c.inters.Fact
}

func (c *FactClient) mutate(ctx context.Context, m *FactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Fact mutation op: %q", m.Op())
	}
}

// FactEvaluationClient is a client for the FactEvaluation schema.
type FactEvaluationClient struct {
	config
}

// NewFactEvaluationClient returns a client for the FactEvaluation from the given config.
func NewFactEvaluationClient(c config) *FactEvaluationClient {
	return &FactEvaluationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `factevaluation.Hooks(f(g(h())))`.
func (c *FactEvaluationClient) Use(hooks ...Hook) {
	c.hooks.FactEvaluation = append(c.hooks.FactEvaluation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `factevaluation.Intercept(f(g(h())))`.
func (c *FactEvaluationClient) Intercept(interceptors ...Interceptor) {
	c.inters.FactEvaluation = append(c.inters.FactEvaluation, interceptors...)
}

// Create returns a builder for creating a FactEvaluation entity.
func (c *FactEvaluationClient) Create() *FactEvaluationCreate {
	mutation := newFactEvaluationMutation(c.config, OpCreate)
	return &FactEvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FactEvaluation entities.
func (c *FactEvaluationClient) CreateBulk(builders ...*FactEvaluationCreate) *FactEvaluationCreateBulk {
	return &FactEvaluationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FactEvaluationClient) MapCreateBulk(slice any, setFunc func(*FactEvaluationCreate, int)) *FactEvaluationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FactEvaluationCreateBulk{err: fmt.Errorf("calling to FactEvaluationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FactEvaluationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FactEvaluationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FactEvaluation.
func (c *FactEvaluationClient) Update() *FactEvaluationUpdate {
	mutation := newFactEvaluationMutation(c.config, OpUpdate)
	return &FactEvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FactEvaluationClient) UpdateOne(_m *FactEvaluation) *FactEvaluationUpdateOne {
	mutation := newFactEvaluationMutation(c.config, OpUpdateOne, withFactEvaluation(_m))
	return &FactEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FactEvaluationClient) UpdateOneID(id int) *FactEvaluationUpdateOne {
	mutation := newFactEvaluationMutation(c.config, OpUpdateOne, withFactEvaluationID(id))
	return &FactEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FactEvaluation.
func (c *FactEvaluationClient) Delete() *FactEvaluationDelete {
	mutation := newFactEvaluationMutation(c.config, OpDelete)
	return &FactEvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FactEvaluationClient) DeleteOne(_m *FactEvaluation) *FactEvaluationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FactEvaluationClient) DeleteOneID(id int) *FactEvaluationDeleteOne {
	builder := c.Delete().Where(factevaluation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FactEvaluationDeleteOne{builder}
}

// Query returns a query builder for FactEvaluation.
func (c *FactEvaluationClient) Query() *FactEvaluationQuery {
	return &FactEvaluationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFactEvaluation},
		inters: c.Interceptors(),
	}
}

// Get returns a FactEvaluation entity by its id.
func (c *FactEvaluationClient) Get(ctx context.Context, id int) (*FactEvaluation, error) {
	return c.Query().Where(factevaluation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FactEvaluationClient) GetX(ctx context.Context, id int) *FactEvaluation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFact queries the fact edge of a FactEvaluation.
func (c *FactEvaluationClient) QueryFact(_m *FactEvaluation) *FactQuery {
	query := (&FactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(factevaluation.Table, factevaluation.FieldID, id),
			sqlgraph.To(fact.Table, fact.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, factevaluation.FactTable, factevaluation.FactColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FactEvaluationClient) Hooks() []Hook {
	return c.hooks.FactEvaluation
}

// Interceptors returns the client interceptors.
func (c *FactEvaluationClient) Interceptors() []Interceptor {
	return c.inters.FactEvaluation
}

func (c *FactEvaluationClient) mutate(ctx context.Context, m *FactEvaluationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FactEvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FactEvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FactEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FactEvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FactEvaluation mutation op: %q", m.Op())
	}
}

// LogicClient is a client for the Logic schema.
type LogicClient struct {
	config
}

// NewLogicClient returns a client for the Logic from the given config.
func NewLogicClient(c config) *LogicClient {
	return &LogicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `logic.Hooks(f(g(h())))`.
func (c *LogicClient) Use(hooks ...Hook) {
	c.hooks.Logic = append(c.hooks.Logic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `logic.Intercept(f(g(h())))`.
func (c *LogicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Logic = append(c.inters.Logic, interceptors...)
}

// Create returns a builder for creating a Logic entity.
func (c *LogicClient) Create() *LogicCreate {
	mutation := newLogicMutation(c.config, OpCreate)
	return &LogicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Logic entities.
func (c *LogicClient) CreateBulk(builders ...*LogicCreate) *LogicCreateBulk {
	return &LogicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LogicClient) MapCreateBulk(slice any, setFunc func(*LogicCreate, int)) *LogicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LogicCreateBulk{err: fmt.Errorf("calling to LogicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LogicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LogicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Logic.
func (c *LogicClient) Update() *LogicUpdate {
	mutation := newLogicMutation(c.config, OpUpdate)
	return &LogicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LogicClient) UpdateOne(_m *Logic) *LogicUpdateOne {
	mutation := newLogicMutation(c.config, OpUpdateOne, withLogic(_m))
	return &LogicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LogicClient) UpdateOneID(id int) *LogicUpdateOne {
	mutation := newLogicMutation(c.config, OpUpdateOne, withLogicID(id))
	return &LogicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Logic.
func (c *LogicClient) Delete() *LogicDelete {
	mutation := newLogicMutation(c.config, OpDelete)
	return &LogicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LogicClient) DeleteOne(_m *Logic) *LogicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LogicClient) DeleteOneID(id int) *LogicDeleteOne {
	builder := c.Delete().Where(logic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LogicDeleteOne{builder}
}

// Query returns a query builder for Logic.
func (c *LogicClient) Query() *LogicQuery {
	return &LogicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLogic},
		inters: c.Interceptors(),
	}
}

// Get returns a Logic entity by its id.
func (c *LogicClient) Get(ctx context.Context, id int) (*Logic, error) {
	return c.Query().Where(logic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LogicClient) GetX(ctx context.Context, id int) *Logic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConclusion queries the conclusion edge of a Logic.
func (c *LogicClient) QueryConclusion(_m *Logic) *ConclusionQuery {
	query := (&ConclusionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(logic.Table, logic.FieldID, id),
			sqlgraph.To(conclusion.Table, conclusion.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, logic.ConclusionTable, logic.ConclusionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySolution queries the solution edge of a Logic.
func (c *LogicClient) QuerySolution(_m *Logic) *SolutionQuery {
	query := (&SolutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(logic.Table, logic.FieldID, id),
			sqlgraph.To(solution.Table, solution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, logic.SolutionTable, logic.SolutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRawPost queries the raw_post edge of a Logic.
func (c *LogicClient) QueryRawPost(_m *Logic) *RawPostQuery {
	query := (&RawPostClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(logic.Table, logic.FieldID, id),
			sqlgraph.To(rawpost.Table, rawpost.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, logic.RawPostTable, logic.RawPostColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOutgoingRelations queries the outgoing_relations edge of a Logic.
func (c *LogicClient) QueryOutgoingRelations(_m *Logic) *LogicRelationQuery {
	query := (&LogicRelationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(logic.Table, logic.FieldID, id),
			sqlgraph.To(logicrelation.Table, logicrelation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, logic.OutgoingRelationsTable, logic.OutgoingRelationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryIncomingRelations queries the incoming_relations edge of a Logic.
func (c *LogicClient) QueryIncomingRelations(_m *Logic) *LogicRelationQuery {
	query := (&LogicRelationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(logic.Table, logic.FieldID, id),
			sqlgraph.To(logicrelation.Table, logicrelation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, logic.IncomingRelationsTable, logic.IncomingRelationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LogicClient) Hooks() []Hook {
	return c.hooks.Logic
}

// Interceptors returns the client interceptors.
func (c *LogicClient) Interceptors() []Interceptor {
	return c.inters.Logic
}

func (c *LogicClient) mutate(ctx context.Context, m *LogicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LogicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LogicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LogicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LogicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Logic mutation op: %q", m.Op())
	}
}

// LogicRelationClient is a client for the LogicRelation schema.
type LogicRelationClient struct {
	config
}

// NewLogicRelationClient returns a client for the LogicRelation from the given config.
func NewLogicRelationClient(c config) *LogicRelationClient {
	return &LogicRelationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `logicrelation.Hooks(f(g(h())))`.
func (c *LogicRelationClient) Use(hooks ...Hook) {
	c.hooks.LogicRelation = append(c.hooks.LogicRelation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `logicrelation.Intercept(f(g(h())))`.
func (c *LogicRelationClient) Intercept(interceptors ...Interceptor) {
	c.inters.LogicRelation = append(c.inters.LogicRelation, interceptors...)
}

// Create returns a builder for creating a LogicRelation entity.
func (c *LogicRelationClient) Create() *LogicRelationCreate {
	mutation := newLogicRelationMutation(c.config, OpCreate)
	return &LogicRelationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LogicRelation entities.
func (c *LogicRelationClient) CreateBulk(builders ...*LogicRelationCreate) *LogicRelationCreateBulk {
	return &LogicRelationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LogicRelationClient) MapCreateBulk(slice any, setFunc func(*LogicRelationCreate, int)) *LogicRelationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LogicRelationCreateBulk{err: fmt.Errorf("calling to LogicRelationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LogicRelationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LogicRelationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LogicRelation.
func (c *LogicRelationClient) Update() *LogicRelationUpdate {
	mutation := newLogicRelationMutation(c.config, OpUpdate)
	return &LogicRelationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LogicRelationClient) UpdateOne(_m *LogicRelation) *LogicRelationUpdateOne {
	mutation := newLogicRelationMutation(c.config, OpUpdateOne, withLogicRelation(_m))
	return &LogicRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LogicRelationClient) UpdateOneID(id int) *LogicRelationUpdateOne {
	mutation := newLogicRelationMutation(c.config, OpUpdateOne, withLogicRelationID(id))
	return &LogicRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LogicRelation.
func (c *LogicRelationClient) Delete() *LogicRelationDelete {
	mutation := newLogicRelationMutation(c.config, OpDelete)
	return &LogicRelationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LogicRelationClient) DeleteOne(_m *LogicRelation) *LogicRelationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LogicRelationClient) DeleteOneID(id int) *LogicRelationDeleteOne {
	builder := c.Delete().Where(logicrelation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LogicRelationDeleteOne{builder}
}

// Query returns a query builder for LogicRelation.
func (c *LogicRelationClient) Query() *LogicRelationQuery {
	return &LogicRelationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLogicRelation},
		inters: c.Interceptors(),
	}
}

// Get returns a LogicRelation entity by its id.
func (c *LogicRelationClient) Get(ctx context.Context, id int) (*LogicRelation, error) {
	return c.Query().Where(logicrelation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LogicRelationClient) GetX(ctx context.Context, id int) *LogicRelation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFromLogic queries the from_logic edge of a LogicRelation.
func (c *LogicRelationClient) QueryFromLogic(_m *LogicRelation) *LogicQuery {
	query := (&LogicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(logicrelation.Table, logicrelation.FieldID, id),
			sqlgraph.To(logic.Table, logic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, logicrelation.FromLogicTable, logicrelation.FromLogicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryToLogic queries the to_logic edge of a LogicRelation.
func (c *LogicRelationClient) QueryToLogic(_m *LogicRelation) *LogicQuery {
	query := (&LogicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(logicrelation.Table, logicrelation.FieldID, id),
			sqlgraph.To(logic.Table, logic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, logicrelation.ToLogicTable, logicrelation.ToLogicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LogicRelationClient) Hooks() []Hook {
	return c.hooks.LogicRelation
}

// Interceptors returns the client interceptors.
func (c *LogicRelationClient) Interceptors() []Interceptor {
	return c.inters.LogicRelation
}

func (c *LogicRelationClient) mutate(ctx context.Context, m *LogicRelationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LogicRelationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LogicRelationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LogicRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LogicRelationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LogicRelation mutation op: %q", m.Op())
	}
}

// MonitoredSourceClient is a client for the MonitoredSource schema.
type MonitoredSourceClient struct {
	config
}

// NewMonitoredSourceClient returns a client for the MonitoredSource from the given config.
func NewMonitoredSourceClient(c config) *MonitoredSourceClient {
	return &MonitoredSourceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `monitoredsource.Hooks(f(g(h())))`.
func (c *MonitoredSourceClient) Use(hooks ...Hook) {
	c.hooks.MonitoredSource = append(c.hooks.MonitoredSource, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `monitoredsource.Intercept(f(g(h())))`.
func (c *MonitoredSourceClient) Intercept(interceptors ...Interceptor) {
	c.inters.MonitoredSource = append(c.inters.MonitoredSource, interceptors...)
}

// Create returns a builder for creating a MonitoredSource entity.
func (c *MonitoredSourceClient) Create() *MonitoredSourceCreate {
	mutation := newMonitoredSourceMutation(c.config, OpCreate)
	return &MonitoredSourceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MonitoredSource entities.
func (c *MonitoredSourceClient) CreateBulk(builders ...*MonitoredSourceCreate) *MonitoredSourceCreateBulk {
	return &MonitoredSourceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MonitoredSourceClient) MapCreateBulk(slice any, setFunc func(*MonitoredSourceCreate, int)) *MonitoredSourceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MonitoredSourceCreateBulk{err: fmt.Errorf("calling to MonitoredSourceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MonitoredSourceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MonitoredSourceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MonitoredSource.
func (c *MonitoredSourceClient) Update() *MonitoredSourceUpdate {
	mutation := newMonitoredSourceMutation(c.config, OpUpdate)
	return &MonitoredSourceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MonitoredSourceClient) UpdateOne(_m *MonitoredSource) *MonitoredSourceUpdateOne {
	mutation := newMonitoredSourceMutation(c.config, OpUpdateOne, withMonitoredSource(_m))
	return &MonitoredSourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MonitoredSourceClient) UpdateOneID(id int) *MonitoredSourceUpdateOne {
	mutation := newMonitoredSourceMutation(c.config, OpUpdateOne, withMonitoredSourceID(id))
	return &MonitoredSourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MonitoredSource.
func (c *MonitoredSourceClient) Delete() *MonitoredSourceDelete {
	mutation := newMonitoredSourceMutation(c.config, OpDelete)
	return &MonitoredSourceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MonitoredSourceClient) DeleteOne(_m *MonitoredSource) *MonitoredSourceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MonitoredSourceClient) DeleteOneID(id int) *MonitoredSourceDeleteOne {
	builder := c.Delete().Where(monitoredsource.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MonitoredSourceDeleteOne{builder}
}

// Query returns a query builder for MonitoredSource.
func (c *MonitoredSourceClient) Query() *MonitoredSourceQuery {
	return &MonitoredSourceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMonitoredSource},
		inters: c.Interceptors(),
	}
}

// Get returns a MonitoredSource entity by its id.
func (c *MonitoredSourceClient) Get(ctx context.Context, id int) (*MonitoredSource, error) {
	return c.Query().Where(monitoredsource.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MonitoredSourceClient) GetX(ctx context.Context, id int) *MonitoredSource {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAuthor queries the author edge of a MonitoredSource.
func (c *MonitoredSourceClient) QueryAuthor(_m *MonitoredSource) *AuthorQuery {
	query := (&AuthorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(monitoredsource.Table, monitoredsource.FieldID, id),
			sqlgraph.To(author.Table, author.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, monitoredsource.AuthorTable, monitoredsource.AuthorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRawPosts queries the raw_posts edge of a MonitoredSource.
func (c *MonitoredSourceClient) QueryRawPosts(_m *MonitoredSource) *RawPostQuery {
	query := (&RawPostClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(monitoredsource.Table, monitoredsource.FieldID, id),
			sqlgraph.To(rawpost.Table, rawpost.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, monitoredsource.RawPostsTable, monitoredsource.RawPostsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MonitoredSourceClient) Hooks() []Hook {
	return c.hooks.MonitoredSource
}

// Interceptors returns the client interceptors.
func (c *MonitoredSourceClient) Interceptors() []Interceptor {
	return c.inters.MonitoredSource
}

func (c *MonitoredSourceClient) mutate(ctx context.Context, m *MonitoredSourceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MonitoredSourceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MonitoredSourceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MonitoredSourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MonitoredSourceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MonitoredSource mutation op: %q", m.Op())
	}
}

// PostQualityAssessmentClient is a client for the PostQualityAssessment schema.
type PostQualityAssessmentClient struct {
	config
}

// NewPostQualityAssessmentClient returns a client for the PostQualityAssessment from the given config.
func NewPostQualityAssessmentClient(c config) *PostQualityAssessmentClient {
	return &PostQualityAssessmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `postqualityassessment.Hooks(f(g(h())))`.
func (c *PostQualityAssessmentClient) Use(hooks ...Hook) {
	c.hooks.PostQualityAssessment = append(c.hooks.PostQualityAssessment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `postqualityassessment.Intercept(f(g(h())))`.
func (c *PostQualityAssessmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.PostQualityAssessment = append(c.inters.PostQualityAssessment, interceptors...)
}

// Create returns a builder for creating a PostQualityAssessment entity.
func (c *PostQualityAssessmentClient) Create() *PostQualityAssessmentCreate {
	mutation := newPostQualityAssessmentMutation(c.config, OpCreate)
	return &PostQualityAssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PostQualityAssessment entities.
func (c *PostQualityAssessmentClient) CreateBulk(builders ...*PostQualityAssessmentCreate) *PostQualityAssessmentCreateBulk {
	return &PostQualityAssessmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PostQualityAssessmentClient) MapCreateBulk(slice any, setFunc func(*PostQualityAssessmentCreate, int)) *PostQualityAssessmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PostQualityAssessmentCreateBulk{err: fmt.Errorf("calling to PostQualityAssessmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PostQualityAssessmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PostQualityAssessmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PostQualityAssessment.
func (c *PostQualityAssessmentClient) Update() *PostQualityAssessmentUpdate {
	mutation := newPostQualityAssessmentMutation(c.config, OpUpdate)
	return &PostQualityAssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PostQualityAssessmentClient) UpdateOne(_m *PostQualityAssessment) *PostQualityAssessmentUpdateOne {
	mutation := newPostQualityAssessmentMutation(c.config, OpUpdateOne, withPostQualityAssessment(_m))
	return &PostQualityAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PostQualityAssessmentClient) UpdateOneID(id int) *PostQualityAssessmentUpdateOne {
	mutation := newPostQualityAssessmentMutation(c.config, OpUpdateOne, withPostQualityAssessmentID(id))
	return &PostQualityAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PostQualityAssessment.
func (c *PostQualityAssessmentClient) Delete() *PostQualityAssessmentDelete {
	mutation := newPostQualityAssessmentMutation(c.config, OpDelete)
	return &PostQualityAssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PostQualityAssessmentClient) DeleteOne(_m *PostQualityAssessment) *PostQualityAssessmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PostQualityAssessmentClient) DeleteOneID(id int) *PostQualityAssessmentDeleteOne {
	builder := c.Delete().Where(postqualityassessment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PostQualityAssessmentDeleteOne{builder}
}

// Query returns a query builder for PostQualityAssessment.
func (c *PostQualityAssessmentClient) Query() *PostQualityAssessmentQuery {
	return &PostQualityAssessmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePostQualityAssessment},
		inters: c.Interceptors(),
	}
}

// Get returns a PostQualityAssessment entity by its id.
func (c *PostQualityAssessmentClient) Get(ctx context.Context, id int) (*PostQualityAssessment, error) {
	return c.Query().Where(postqualityassessment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PostQualityAssessmentClient) GetX(ctx context.Context, id int) *PostQualityAssessment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRawPost queries the raw_post edge of a PostQualityAssessment.
func (c *PostQualityAssessmentClient) QueryRawPost(_m *PostQualityAssessment) *RawPostQuery {
	query := (&RawPostClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(postqualityassessment.Table, postqualityassessment.FieldID, id),
			sqlgraph.To(rawpost.Table, rawpost.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, postqualityassessment.RawPostTable, postqualityassessment.RawPostColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuthor queries the author edge of a PostQualityAssessment.
func (c *PostQualityAssessmentClient) QueryAuthor(_m *PostQualityAssessment) *AuthorQuery {
	query := (&AuthorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(postqualityassessment.Table, postqualityassessment.FieldID, id),
			sqlgraph.To(author.Table, author.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, postqualityassessment.AuthorTable, postqualityassessment.AuthorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PostQualityAssessmentClient) Hooks() []Hook {
	return c.hooks.PostQualityAssessment
}

// Interceptors returns the client interceptors.
func (c *PostQualityAssessmentClient) Interceptors() []Interceptor {
	return c.inters.PostQualityAssessment
}

func (c *PostQualityAssessmentClient) mutate(ctx context.Context, m *PostQualityAssessmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PostQualityAssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PostQualityAssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PostQualityAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PostQualityAssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PostQualityAssessment mutation op: %q", m.Op())
	}
}

// RawPostClient is a client for the RawPost schema.
type RawPostClient struct {
	config
}

// NewRawPostClient returns a client for the RawPost from the given config.
func NewRawPostClient(c config) *RawPostClient {
	return &RawPostClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rawpost.Hooks(f(g(h())))`.
func (c *RawPostClient) Use(hooks ...Hook) {
	c.hooks.RawPost = append(c.hooks.RawPost, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rawpost.Intercept(f(g(h())))`.
func (c *RawPostClient) Intercept(interceptors ...Interceptor) {
	c.inters.RawPost = append(c.inters.RawPost, interceptors...)
}

// Create returns a builder for creating a RawPost entity.
func (c *RawPostClient) Create() *RawPostCreate {
	mutation := newRawPostMutation(c.config, OpCreate)
	return &RawPostCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RawPost entities.
func (c *RawPostClient) CreateBulk(builders ...*RawPostCreate) *RawPostCreateBulk {
	return &RawPostCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RawPostClient) MapCreateBulk(slice any, setFunc func(*RawPostCreate, int)) *RawPostCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RawPostCreateBulk{err: fmt.Errorf("calling to RawPostClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RawPostCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RawPostCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RawPost.
func (c *RawPostClient) Update() *RawPostUpdate {
	mutation := newRawPostMutation(c.config, OpUpdate)
	return &RawPostUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RawPostClient) UpdateOne(_m *RawPost) *RawPostUpdateOne {
	mutation := newRawPostMutation(c.config, OpUpdateOne, withRawPost(_m))
	return &RawPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RawPostClient) UpdateOneID(id int) *RawPostUpdateOne {
	mutation := newRawPostMutation(c.config, OpUpdateOne, withRawPostID(id))
	return &RawPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RawPost.
func (c *RawPostClient) Delete() *RawPostDelete {
	mutation := newRawPostMutation(c.config, OpDelete)
	return &RawPostDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RawPostClient) DeleteOne(_m *RawPost) *RawPostDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RawPostClient) DeleteOneID(id int) *RawPostDeleteOne {
	builder := c.Delete().Where(rawpost.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RawPostDeleteOne{builder}
}

// Query returns a query builder for RawPost.
func (c *RawPostClient) Query() *RawPostQuery {
	return &RawPostQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRawPost},
		inters: c.Interceptors(),
	}
}

// Get returns a RawPost entity by its id.
func (c *RawPostClient) Get(ctx context.Context, id int) (*RawPost, error) {
	return c.Query().Where(rawpost.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RawPostClient) GetX(ctx context.Context, id int) *RawPost {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMonitoredSource queries the monitored_source edge of a RawPost.
func (c *RawPostClient) QueryMonitoredSource(_m *RawPost) *MonitoredSourceQuery {
	query := (&MonitoredSourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rawpost.Table, rawpost.FieldID, id),
			sqlgraph.To(monitoredsource.Table, monitoredsource.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, rawpost.MonitoredSourceTable, rawpost.MonitoredSourceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFacts queries the facts edge of a RawPost.
func (c *RawPostClient) QueryFacts(_m *RawPost) *FactQuery {
	query := (&FactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rawpost.Table, rawpost.FieldID, id),
			sqlgraph.To(fact.Table, fact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, rawpost.FactsTable, rawpost.FactsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLogics queries the logics edge of a RawPost.
func (c *RawPostClient) QueryLogics(_m *RawPost) *LogicQuery {
	query := (&LogicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rawpost.Table, rawpost.FieldID, id),
			sqlgraph.To(logic.Table, logic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, rawpost.LogicsTable, rawpost.LogicsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQualityAssessment queries the quality_assessment edge of a RawPost.
func (c *RawPostClient) QueryQualityAssessment(_m *RawPost) *PostQualityAssessmentQuery {
	query := (&PostQualityAssessmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rawpost.Table, rawpost.FieldID, id),
			sqlgraph.To(postqualityassessment.Table, postqualityassessment.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, rawpost.QualityAssessmentTable, rawpost.QualityAssessmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RawPostClient) Hooks() []Hook {
	return c.hooks.RawPost
}

// Interceptors returns the client interceptors.
func (c *RawPostClient) Interceptors() []Interceptor {
	return c.inters.RawPost
}

func (c *RawPostClient) mutate(ctx context.Context, m *RawPostMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RawPostCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RawPostUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RawPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RawPostDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RawPost mutation op: %q", m.Op())
	}
}

// SolutionClient is a client for the Solution schema.
type SolutionClient struct {
	config
}

// NewSolutionClient returns a client for the Solution from the given config.
func NewSolutionClient(c config) *SolutionClient {
	return &SolutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `solution.Hooks(f(g(h())))`.
func (c *SolutionClient) Use(hooks ...Hook) {
	c.hooks.Solution = append(c.hooks.Solution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `solution.Intercept(f(g(h())))`.
func (c *SolutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Solution = append(c.inters.Solution, interceptors...)
}

// Create returns a builder for creating a Solution entity.
func (c *SolutionClient) Create() *SolutionCreate {
	mutation := newSolutionMutation(c.config, OpCreate)
	return &SolutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Solution entities.
func (c *SolutionClient) CreateBulk(builders ...*SolutionCreate) *SolutionCreateBulk {
	return &SolutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SolutionClient) MapCreateBulk(slice any, setFunc func(*SolutionCreate, int)) *SolutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SolutionCreateBulk{err: fmt.Errorf("calling to SolutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SolutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SolutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Solution.
func (c *SolutionClient) Update() *SolutionUpdate {
	mutation := newSolutionMutation(c.config, OpUpdate)
	return &SolutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SolutionClient) UpdateOne(_m *Solution) *SolutionUpdateOne {
	mutation := newSolutionMutation(c.config, OpUpdateOne, withSolution(_m))
	return &SolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SolutionClient) UpdateOneID(id int) *SolutionUpdateOne {
	mutation := newSolutionMutation(c.config, OpUpdateOne, withSolutionID(id))
	return &SolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Solution.
func (c *SolutionClient) Delete() *SolutionDelete {
	mutation := newSolutionMutation(c.config, OpDelete)
	return &SolutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SolutionClient) DeleteOne(_m *Solution) *SolutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SolutionClient) DeleteOneID(id int) *SolutionDeleteOne {
	builder := c.Delete().Where(solution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SolutionDeleteOne{builder}
}

// Query returns a query builder for Solution.
func (c *SolutionClient) Query() *SolutionQuery {
	return &SolutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSolution},
		inters: c.Interceptors(),
	}
}

// Get returns a Solution entity by its id.
func (c *SolutionClient) Get(ctx context.Context, id int) (*Solution, error) {
	return c.Query().Where(solution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SolutionClient) GetX(ctx context.Context, id int) *Solution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTopic queries the topic edge of a Solution.
func (c *SolutionClient) QueryTopic(_m *Solution) *TopicQuery {
	query := (&TopicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(solution.Table, solution.FieldID, id),
			sqlgraph.To(topic.Table, topic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, solution.TopicTable, solution.TopicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuthor queries the author edge of a Solution.
func (c *SolutionClient) QueryAuthor(_m *Solution) *AuthorQuery {
	query := (&AuthorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(solution.Table, solution.FieldID, id),
			sqlgraph.To(author.Table, author.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, solution.AuthorTable, solution.AuthorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLogics queries the logics edge of a Solution.
func (c *SolutionClient) QueryLogics(_m *Solution) *LogicQuery {
	query := (&LogicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(solution.Table, solution.FieldID, id),
			sqlgraph.To(logic.Table, logic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, solution.LogicsTable, solution.LogicsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssessments queries the assessments edge of a Solution.
func (c *SolutionClient) QueryAssessments(_m *Solution) *SolutionAssessmentQuery {
	query := (&SolutionAssessmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(solution.Table, solution.FieldID, id),
			sqlgraph.To(solutionassessment.Table, solutionassessment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, solution.AssessmentsTable, solution.AssessmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SolutionClient) Hooks() []Hook {
	return c.hooks.Solution
}

// Interceptors returns the client interceptors.
func (c *SolutionClient) Interceptors() []Interceptor {
	return c.inters.Solution
}

func (c *SolutionClient) mutate(ctx context.Context, m *SolutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SolutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SolutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SolutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Solution mutation op: %q", m.Op())
	}
}

// SolutionAssessmentClient is a client for the SolutionAssessment schema.
type SolutionAssessmentClient struct {
	config
}

// NewSolutionAssessmentClient returns a client for the SolutionAssessment from the given config.
func NewSolutionAssessmentClient(c config) *SolutionAssessmentClient {
	return &SolutionAssessmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `solutionassessment.Hooks(f(g(h())))`.
func (c *SolutionAssessmentClient) Use(hooks ...Hook) {
	c.hooks.SolutionAssessment = append(c.hooks.SolutionAssessment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `solutionassessment.Intercept(f(g(h())))`.
func (c *SolutionAssessmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.SolutionAssessment = append(c.inters.SolutionAssessment, interceptors...)
}

// Create returns a builder for creating a SolutionAssessment entity.
func (c *SolutionAssessmentClient) Create() *SolutionAssessmentCreate {
	mutation := newSolutionAssessmentMutation(c.config, OpCreate)
	return &SolutionAssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SolutionAssessment entities.
func (c *SolutionAssessmentClient) CreateBulk(builders ...*SolutionAssessmentCreate) *SolutionAssessmentCreateBulk {
	return &SolutionAssessmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SolutionAssessmentClient) MapCreateBulk(slice any, setFunc func(*SolutionAssessmentCreate, int)) *SolutionAssessmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SolutionAssessmentCreateBulk{err: fmt.Errorf("calling to SolutionAssessmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SolutionAssessmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SolutionAssessmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SolutionAssessment.
func (c *SolutionAssessmentClient) Update() *SolutionAssessmentUpdate {
	mutation := newSolutionAssessmentMutation(c.config, OpUpdate)
	return &SolutionAssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SolutionAssessmentClient) UpdateOne(_m *SolutionAssessment) *SolutionAssessmentUpdateOne {
	mutation := newSolutionAssessmentMutation(c.config, OpUpdateOne, withSolutionAssessment(_m))
	return &SolutionAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SolutionAssessmentClient) UpdateOneID(id int) *SolutionAssessmentUpdateOne {
	mutation := newSolutionAssessmentMutation(c.config, OpUpdateOne, withSolutionAssessmentID(id))
	return &SolutionAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SolutionAssessment.
func (c *SolutionAssessmentClient) Delete() *SolutionAssessmentDelete {
	mutation := newSolutionAssessmentMutation(c.config, OpDelete)
	return &SolutionAssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SolutionAssessmentClient) DeleteOne(_m *SolutionAssessment) *SolutionAssessmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SolutionAssessmentClient) DeleteOneID(id int) *SolutionAssessmentDeleteOne {
	builder := c.Delete().Where(solutionassessment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SolutionAssessmentDeleteOne{builder}
}

// Query returns a query builder for SolutionAssessment.
func (c *SolutionAssessmentClient) Query() *SolutionAssessmentQuery {
	return &SolutionAssessmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSolutionAssessment},
		inters: c.Interceptors(),
	}
}

// Get returns a SolutionAssessment entity by its id.
func (c *SolutionAssessmentClient) Get(ctx context.Context, id int) (*SolutionAssessment, error) {
	return c.Query().Where(solutionassessment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SolutionAssessmentClient) GetX(ctx context.Context, id int) *SolutionAssessment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySolution queries the solution edge of a SolutionAssessment.
func (c *SolutionAssessmentClient) QuerySolution(_m *SolutionAssessment) *SolutionQuery {
	query := (&SolutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(solutionassessment.Table, solutionassessment.FieldID, id),
			sqlgraph.To(solution.Table, solution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, solutionassessment.SolutionTable, solutionassessment.SolutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SolutionAssessmentClient) Hooks() []Hook {
	return c.hooks.SolutionAssessment
}

// Interceptors returns the client interceptors.
func (c *SolutionAssessmentClient) Interceptors() []Interceptor {
	return c.inters.SolutionAssessment
}

func (c *SolutionAssessmentClient) mutate(ctx context.Context, m *SolutionAssessmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SolutionAssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SolutionAssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SolutionAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SolutionAssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SolutionAssessment mutation op: %q", m.Op())
	}
}

// TopicClient is a client for the Topic schema.
type TopicClient struct {
	config
}

// NewTopicClient returns a client for the Topic from the given config.
func NewTopicClient(c config) *TopicClient {
	return &TopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topic.Hooks(f(g(h())))`.
func (c *TopicClient) Use(hooks ...Hook) {
	c.hooks.Topic = append(c.hooks.Topic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topic.Intercept(f(g(h())))`.
func (c *TopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Topic = append(c.inters.Topic, interceptors...)
}

// Create returns a builder for creating a Topic entity.
func (c *TopicClient) Create() *TopicCreate {
	mutation := newTopicMutation(c.config, OpCreate)
	return &TopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Topic entities.
func (c *TopicClient) CreateBulk(builders ...*TopicCreate) *TopicCreateBulk {
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicClient) MapCreateBulk(slice any, setFunc func(*TopicCreate, int)) *TopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicCreateBulk{err: fmt.Errorf("calling to TopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Topic.
func (c *TopicClient) Update() *TopicUpdate {
	mutation := newTopicMutation(c.config, OpUpdate)
	return &TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicClient) UpdateOne(_m *Topic) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopic(_m))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicClient) UpdateOneID(id int) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopicID(id))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Topic.
func (c *TopicClient) Delete() *TopicDelete {
	mutation := newTopicMutation(c.config, OpDelete)
	return &TopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicClient) DeleteOne(_m *Topic) *TopicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicClient) DeleteOneID(id int) *TopicDeleteOne {
	builder := c.Delete().Where(topic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicDeleteOne{builder}
}

// Query returns a query builder for Topic.
func (c *TopicClient) Query() *TopicQuery {
	return &TopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopic},
		inters: c.Interceptors(),
	}
}

// Get returns a Topic entity by its id.
func (c *TopicClient) Get(ctx context.Context, id int) (*Topic, error) {
	return c.Query().Where(topic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicClient) GetX(ctx context.Context, id int) *Topic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConclusions queries the conclusions edge of a Topic.
func (c *TopicClient) QueryConclusions(_m *Topic) *ConclusionQuery {
	query := (&ConclusionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topic.Table, topic.FieldID, id),
			sqlgraph.To(conclusion.Table, conclusion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topic.ConclusionsTable, topic.ConclusionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySolutions queries the solutions edge of a Topic.
func (c *TopicClient) QuerySolutions(_m *Topic) *SolutionQuery {
	query := (&SolutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topic.Table, topic.FieldID, id),
			sqlgraph.To(solution.Table, solution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topic.SolutionsTable, topic.SolutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TopicClient) Hooks() []Hook {
	return c.hooks.Topic
}

// Interceptors returns the client interceptors.
func (c *TopicClient) Interceptors() []Interceptor {
	return c.inters.Topic
}

func (c *TopicClient) mutate(ctx context.Context, m *TopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Topic mutation op: %q", m.Op())
	}
}

// VerificationReferenceClient is a client for the VerificationReference schema.
type VerificationReferenceClient struct {
	config
}

// NewVerificationReferenceClient returns a client for the VerificationReference from the given config.
func NewVerificationReferenceClient(c config) *VerificationReferenceClient {
	return &VerificationReferenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verificationreference.Hooks(f(g(h())))`.
func (c *VerificationReferenceClient) Use(hooks ...Hook) {
	c.hooks.VerificationReference = append(c.hooks.VerificationReference, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verificationreference.Intercept(f(g(h())))`.
func (c *VerificationReferenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.VerificationReference = append(c.inters.VerificationReference, interceptors...)
}

// Create returns a builder for creating a VerificationReference entity.
func (c *VerificationReferenceClient) Create() *VerificationReferenceCreate {
	mutation := newVerificationReferenceMutation(c.config, OpCreate)
	return &VerificationReferenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VerificationReference entities.
func (c *VerificationReferenceClient) CreateBulk(builders ...*VerificationReferenceCreate) *VerificationReferenceCreateBulk {
	return &VerificationReferenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerificationReferenceClient) MapCreateBulk(slice any, setFunc func(*VerificationReferenceCreate, int)) *VerificationReferenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerificationReferenceCreateBulk{err: fmt.Errorf("calling to VerificationReferenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerificationReferenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerificationReferenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VerificationReference.
func (c *VerificationReferenceClient) Update() *VerificationReferenceUpdate {
	mutation := newVerificationReferenceMutation(c.config, OpUpdate)
	return &VerificationReferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerificationReferenceClient) UpdateOne(_m *VerificationReference) *VerificationReferenceUpdateOne {
	mutation := newVerificationReferenceMutation(c.config, OpUpdateOne, withVerificationReference(_m))
	return &VerificationReferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerificationReferenceClient) UpdateOneID(id int) *VerificationReferenceUpdateOne {
	mutation := newVerificationReferenceMutation(c.config, OpUpdateOne, withVerificationReferenceID(id))
	return &VerificationReferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VerificationReference.
func (c *VerificationReferenceClient) Delete() *VerificationReferenceDelete {
	mutation := newVerificationReferenceMutation(c.config, OpDelete)
	return &VerificationReferenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerificationReferenceClient) DeleteOne(_m *VerificationReference) *VerificationReferenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerificationReferenceClient) DeleteOneID(id int) *VerificationReferenceDeleteOne {
	builder := c.Delete().Where(verificationreference.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerificationReferenceDeleteOne{builder}
}

// Query returns a query builder for VerificationReference.
func (c *VerificationReferenceClient) Query() *VerificationReferenceQuery {
	return &VerificationReferenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerificationReference},
		inters: c.Interceptors(),
	}
}

// Get returns a VerificationReference entity by its id.
func (c *VerificationReferenceClient) Get(ctx context.Context, id int) (*VerificationReference, error) {
	return c.Query().Where(verificationreference.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerificationReferenceClient) GetX(ctx context.Context, id int) *VerificationReference {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFact queries the fact edge of a VerificationReference.
func (c *VerificationReferenceClient) QueryFact(_m *VerificationReference) *FactQuery {
	query := (&FactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(verificationreference.Table, verificationreference.FieldID, id),
			sqlgraph.To(fact.Table, fact.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, verificationreference.FactTable, verificationreference.FactColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VerificationReferenceClient) Hooks() []Hook {
	return c.hooks.VerificationReference
}

// Interceptors returns the client interceptors.
func (c *VerificationReferenceClient) Interceptors() []Interceptor {
	return c.inters.VerificationReference
}

func (c *VerificationReferenceClient) mutate(ctx context.Context, m *VerificationReferenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerificationReferenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerificationReferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerificationReferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerificationReferenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VerificationReference mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Author, AuthorStats, Conclusion, ConclusionVerdict, Fact, FactEvaluation, Logic,
		LogicRelation, MonitoredSource, PostQualityAssessment, RawPost, Solution,
		SolutionAssessment, Topic, VerificationReference []ent.Hook
	}
	inters struct {
		Author, AuthorStats, Conclusion, ConclusionVerdict, Fact, FactEvaluation, Logic,
		LogicRelation, MonitoredSource, PostQualityAssessment, RawPost, Solution,
		SolutionAssessment, Topic, VerificationReference []ent.Interceptor
	}
)
