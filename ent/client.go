// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/questline-dev/questline/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/questline-dev/questline/ent/badgeevent"
	"github.com/questline-dev/questline/ent/progressevent"
	"github.com/questline-dev/questline/ent/snapshot"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BadgeEvent is the client for interacting with the BadgeEvent builders.
	BadgeEvent *BadgeEventClient
	// ProgressEvent is the client for interacting with the ProgressEvent builders.
	ProgressEvent *ProgressEventClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BadgeEvent = NewBadgeEventClient(c.config)
	c.ProgressEvent = NewProgressEventClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		BadgeEvent:    NewBadgeEventClient(cfg),
		ProgressEvent: NewProgressEventClient(cfg),
		Snapshot:      NewSnapshotClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		BadgeEvent:    NewBadgeEventClient(cfg),
		ProgressEvent: NewProgressEventClient(cfg),
		Snapshot:      NewSnapshotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BadgeEvent.
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
	c.BadgeEvent.Use(hooks...)
	c.ProgressEvent.Use(hooks...)
	c.Snapshot.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BadgeEvent.Intercept(interceptors...)
	c.ProgressEvent.Intercept(interceptors...)
	c.Snapshot.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BadgeEventMutation:
		return c.BadgeEvent.mutate(ctx, m)
	case *ProgressEventMutation:
		return c.ProgressEvent.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BadgeEventClient is a client for the BadgeEvent schema.
type BadgeEventClient struct {
	config
}

// NewBadgeEventClient returns a client for the BadgeEvent from the given config.
func NewBadgeEventClient(c config) *BadgeEventClient {
	return &BadgeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `badgeevent.Hooks(f(g(h())))`.
func (c *BadgeEventClient) Use(hooks ...Hook) {
	c.hooks.BadgeEvent = append(c.hooks.BadgeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `badgeevent.Intercept(f(g(h())))`.
func (c *BadgeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.BadgeEvent = append(c.inters.BadgeEvent, interceptors...)
}

// Create returns a builder for creating a BadgeEvent entity.
func (c *BadgeEventClient) Create() *BadgeEventCreate {
	mutation := newBadgeEventMutation(c.config, OpCreate)
	return &BadgeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BadgeEvent entities.
func (c *BadgeEventClient) CreateBulk(builders ...*BadgeEventCreate) *BadgeEventCreateBulk {
	return &BadgeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BadgeEventClient) MapCreateBulk(slice any, setFunc func(*BadgeEventCreate, int)) *BadgeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BadgeEventCreateBulk{err: fmt.Errorf("calling to BadgeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BadgeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BadgeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BadgeEvent.
func (c *BadgeEventClient) Update() *BadgeEventUpdate {
	mutation := newBadgeEventMutation(c.config, OpUpdate)
	return &BadgeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BadgeEventClient) UpdateOne(_m *BadgeEvent) *BadgeEventUpdateOne {
	mutation := newBadgeEventMutation(c.config, OpUpdateOne, withBadgeEvent(_m))
	return &BadgeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BadgeEventClient) UpdateOneID(id int) *BadgeEventUpdateOne {
	mutation := newBadgeEventMutation(c.config, OpUpdateOne, withBadgeEventID(id))
	return &BadgeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BadgeEvent.
func (c *BadgeEventClient) Delete() *BadgeEventDelete {
	mutation := newBadgeEventMutation(c.config, OpDelete)
	return &BadgeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BadgeEventClient) DeleteOne(_m *BadgeEvent) *BadgeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BadgeEventClient) DeleteOneID(id int) *BadgeEventDeleteOne {
	builder := c.Delete().Where(badgeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BadgeEventDeleteOne{builder}
}

// Query returns a query builder for BadgeEvent.
func (c *BadgeEventClient) Query() *BadgeEventQuery {
	return &BadgeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBadgeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a BadgeEvent entity by its id.
func (c *BadgeEventClient) Get(ctx context.Context, id int) (*BadgeEvent, error) {
	return c.Query().Where(badgeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BadgeEventClient) GetX(ctx context.Context, id int) *BadgeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BadgeEventClient) Hooks() []Hook {
	return c.hooks.BadgeEvent
}

// Interceptors returns the client interceptors.
func (c *BadgeEventClient) Interceptors() []Interceptor {
	return c.inters.BadgeEvent
}

func (c *BadgeEventClient) mutate(ctx context.Context, m *BadgeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BadgeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BadgeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BadgeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BadgeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BadgeEvent mutation op: %q", m.Op())
	}
}

// ProgressEventClient is a client for the ProgressEvent schema.
type ProgressEventClient struct {
	config
}

// NewProgressEventClient returns a client for the ProgressEvent from the given config.
func NewProgressEventClient(c config) *ProgressEventClient {
	return &ProgressEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `progressevent.Hooks(f(g(h())))`.
func (c *ProgressEventClient) Use(hooks ...Hook) {
	c.hooks.ProgressEvent = append(c.hooks.ProgressEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `progressevent.Intercept(f(g(h())))`.
func (c *ProgressEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProgressEvent = append(c.inters.ProgressEvent, interceptors...)
}

// Create returns a builder for creating a ProgressEvent entity.
func (c *ProgressEventClient) Create() *ProgressEventCreate {
	mutation := newProgressEventMutation(c.config, OpCreate)
	return &ProgressEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProgressEvent entities.
func (c *ProgressEventClient) CreateBulk(builders ...*ProgressEventCreate) *ProgressEventCreateBulk {
	return &ProgressEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProgressEventClient) MapCreateBulk(slice any, setFunc func(*ProgressEventCreate, int)) *ProgressEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProgressEventCreateBulk{err: fmt.Errorf("calling to ProgressEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProgressEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProgressEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProgressEvent.
func (c *ProgressEventClient) Update() *ProgressEventUpdate {
	mutation := newProgressEventMutation(c.config, OpUpdate)
	return &ProgressEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProgressEventClient) UpdateOne(_m *ProgressEvent) *ProgressEventUpdateOne {
	mutation := newProgressEventMutation(c.config, OpUpdateOne, withProgressEvent(_m))
	return &ProgressEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProgressEventClient) UpdateOneID(id int) *ProgressEventUpdateOne {
	mutation := newProgressEventMutation(c.config, OpUpdateOne, withProgressEventID(id))
	return &ProgressEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProgressEvent.
func (c *ProgressEventClient) Delete() *ProgressEventDelete {
	mutation := newProgressEventMutation(c.config, OpDelete)
	return &ProgressEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProgressEventClient) DeleteOne(_m *ProgressEvent) *ProgressEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProgressEventClient) DeleteOneID(id int) *ProgressEventDeleteOne {
	builder := c.Delete().Where(progressevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProgressEventDeleteOne{builder}
}

// Query returns a query builder for ProgressEvent.
func (c *ProgressEventClient) Query() *ProgressEventQuery {
	return &ProgressEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProgressEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ProgressEvent entity by its id.
func (c *ProgressEventClient) Get(ctx context.Context, id int) (*ProgressEvent, error) {
	return c.Query().Where(progressevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProgressEventClient) GetX(ctx context.Context, id int) *ProgressEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProgressEventClient) Hooks() []Hook {
	return c.hooks.ProgressEvent
}

// Interceptors returns the client interceptors.
func (c *ProgressEventClient) Interceptors() []Interceptor {
	return c.inters.ProgressEvent
}

func (c *ProgressEventClient) mutate(ctx context.Context, m *ProgressEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProgressEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProgressEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProgressEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProgressEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProgressEvent mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(_m *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(_m))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(_m *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BadgeEvent, ProgressEvent, Snapshot []ent.Hook
	}
	inters struct {
		BadgeEvent, ProgressEvent, Snapshot []ent.Interceptor
	}
)
