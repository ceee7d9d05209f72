// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/smehra/traitlab/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/smehra/traitlab/ent/evidenceevent"
	"github.com/smehra/traitlab/ent/llmrequestevent"
	"github.com/smehra/traitlab/ent/traitprofile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// EvidenceEvent is the client for interacting with the EvidenceEvent builders.
	EvidenceEvent *EvidenceEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// TraitProfile is the client for interacting with the TraitProfile builders.
	TraitProfile *TraitProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.EvidenceEvent = NewEvidenceEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.TraitProfile = NewTraitProfileClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		EvidenceEvent:   NewEvidenceEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		TraitProfile:    NewTraitProfileClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		EvidenceEvent:   NewEvidenceEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		TraitProfile:    NewTraitProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		EvidenceEvent.
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
	c.EvidenceEvent.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.TraitProfile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.EvidenceEvent.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.TraitProfile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EvidenceEventMutation:
		return c.EvidenceEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *TraitProfileMutation:
		return c.TraitProfile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EvidenceEventClient is a client for the EvidenceEvent schema.
type EvidenceEventClient struct {
	config
}

// NewEvidenceEventClient returns a client for the EvidenceEvent from the given config.
func NewEvidenceEventClient(c config) *EvidenceEventClient {
	return &EvidenceEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evidenceevent.Hooks(f(g(h())))`.
func (c *EvidenceEventClient) Use(hooks ...Hook) {
	c.hooks.EvidenceEvent = append(c.hooks.EvidenceEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evidenceevent.Intercept(f(g(h())))`.
func (c *EvidenceEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvidenceEvent = append(c.inters.EvidenceEvent, interceptors...)
}

// Create returns a builder for creating a EvidenceEvent entity.
func (c *EvidenceEventClient) Create() *EvidenceEventCreate {
	mutation := newEvidenceEventMutation(c.config, OpCreate)
	return &EvidenceEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvidenceEvent entities.
func (c *EvidenceEventClient) CreateBulk(builders ...*EvidenceEventCreate) *EvidenceEventCreateBulk {
	return &EvidenceEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvidenceEventClient) MapCreateBulk(slice any, setFunc func(*EvidenceEventCreate, int)) *EvidenceEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvidenceEventCreateBulk{err: fmt.Errorf("calling to EvidenceEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvidenceEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvidenceEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvidenceEvent.
func (c *EvidenceEventClient) Update() *EvidenceEventUpdate {
	mutation := newEvidenceEventMutation(c.config, OpUpdate)
	return &EvidenceEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvidenceEventClient) UpdateOne(_m *EvidenceEvent) *EvidenceEventUpdateOne {
	mutation := newEvidenceEventMutation(c.config, OpUpdateOne, withEvidenceEvent(_m))
	return &EvidenceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvidenceEventClient) UpdateOneID(id int) *EvidenceEventUpdateOne {
	mutation := newEvidenceEventMutation(c.config, OpUpdateOne, withEvidenceEventID(id))
	return &EvidenceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvidenceEvent.
func (c *EvidenceEventClient) Delete() *EvidenceEventDelete {
	mutation := newEvidenceEventMutation(c.config, OpDelete)
	return &EvidenceEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvidenceEventClient) DeleteOne(_m *EvidenceEvent) *EvidenceEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvidenceEventClient) DeleteOneID(id int) *EvidenceEventDeleteOne {
	builder := c.Delete().Where(evidenceevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvidenceEventDeleteOne{builder}
}

// Query returns a query builder for EvidenceEvent.
func (c *EvidenceEventClient) Query() *EvidenceEventQuery {
	return &EvidenceEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvidenceEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a EvidenceEvent entity by its id.
func (c *EvidenceEventClient) Get(ctx context.Context, id int) (*EvidenceEvent, error) {
	return c.Query().Where(evidenceevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvidenceEventClient) GetX(ctx context.Context, id int) *EvidenceEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EvidenceEventClient) Hooks() []Hook {
	return c.hooks.EvidenceEvent
}

// Interceptors returns the client interceptors.
func (c *EvidenceEventClient) Interceptors() []Interceptor {
	return c.inters.EvidenceEvent
}

func (c *EvidenceEventClient) mutate(ctx context.Context, m *EvidenceEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvidenceEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvidenceEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvidenceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvidenceEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvidenceEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// TraitProfileClient is a client for the TraitProfile schema.
type TraitProfileClient struct {
	config
}

// NewTraitProfileClient returns a client for the TraitProfile from the given config.
func NewTraitProfileClient(c config) *TraitProfileClient {
	return &TraitProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `traitprofile.Hooks(f(g(h())))`.
func (c *TraitProfileClient) Use(hooks ...Hook) {
	c.hooks.TraitProfile = append(c.hooks.TraitProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `traitprofile.Intercept(f(g(h())))`.
func (c *TraitProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.TraitProfile = append(c.inters.TraitProfile, interceptors...)
}

// Create returns a builder for creating a TraitProfile entity.
func (c *TraitProfileClient) Create() *TraitProfileCreate {
	mutation := newTraitProfileMutation(c.config, OpCreate)
	return &TraitProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TraitProfile entities.
func (c *TraitProfileClient) CreateBulk(builders ...*TraitProfileCreate) *TraitProfileCreateBulk {
	return &TraitProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TraitProfileClient) MapCreateBulk(slice any, setFunc func(*TraitProfileCreate, int)) *TraitProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TraitProfileCreateBulk{err: fmt.Errorf("calling to TraitProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TraitProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TraitProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TraitProfile.
func (c *TraitProfileClient) Update() *TraitProfileUpdate {
	mutation := newTraitProfileMutation(c.config, OpUpdate)
	return &TraitProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TraitProfileClient) UpdateOne(_m *TraitProfile) *TraitProfileUpdateOne {
	mutation := newTraitProfileMutation(c.config, OpUpdateOne, withTraitProfile(_m))
	return &TraitProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TraitProfileClient) UpdateOneID(id int) *TraitProfileUpdateOne {
	mutation := newTraitProfileMutation(c.config, OpUpdateOne, withTraitProfileID(id))
	return &TraitProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TraitProfile.
func (c *TraitProfileClient) Delete() *TraitProfileDelete {
	mutation := newTraitProfileMutation(c.config, OpDelete)
	return &TraitProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TraitProfileClient) DeleteOne(_m *TraitProfile) *TraitProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TraitProfileClient) DeleteOneID(id int) *TraitProfileDeleteOne {
	builder := c.Delete().Where(traitprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TraitProfileDeleteOne{builder}
}

// Query returns a query builder for TraitProfile.
func (c *TraitProfileClient) Query() *TraitProfileQuery {
	return &TraitProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTraitProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a TraitProfile entity by its id.
func (c *TraitProfileClient) Get(ctx context.Context, id int) (*TraitProfile, error) {
	return c.Query().Where(traitprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TraitProfileClient) GetX(ctx context.Context, id int) *TraitProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TraitProfileClient) Hooks() []Hook {
	return c.hooks.TraitProfile
}

// Interceptors returns the client interceptors.
func (c *TraitProfileClient) Interceptors() []Interceptor {
	return c.inters.TraitProfile
}

func (c *TraitProfileClient) mutate(ctx context.Context, m *TraitProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TraitProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TraitProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TraitProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TraitProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TraitProfile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		EvidenceEvent, LLMRequestEvent, TraitProfile []ent.Hook
	}
	inters struct {
		EvidenceEvent, LLMRequestEvent, TraitProfile []ent.Interceptor
	}
)
