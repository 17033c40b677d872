// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/docufield/docufield/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docufield/docufield/gen/ent/auditlog"
	"github.com/docufield/docufield/gen/ent/document"
	"github.com/docufield/docufield/gen/ent/documentpage"
	"github.com/docufield/docufield/gen/ent/extractionresult"
	"github.com/docufield/docufield/gen/ent/fielddefinition"
	"github.com/docufield/docufield/gen/ent/prompttemplate"
	"github.com/docufield/docufield/gen/ent/systemlog"
	"github.com/docufield/docufield/gen/ent/verificationrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// DocumentPage is the client for interacting with the DocumentPage builders.
	DocumentPage *DocumentPageClient
	// ExtractionResult is the client for interacting with the ExtractionResult builders.
	ExtractionResult *ExtractionResultClient
	// FieldDefinition is the client for interacting with the FieldDefinition builders.
	FieldDefinition *FieldDefinitionClient
	// PromptTemplate is the client for interacting with the PromptTemplate builders.
	PromptTemplate *PromptTemplateClient
	// SystemLog is the client for interacting with the SystemLog builders.
	SystemLog *SystemLogClient
	// VerificationRecord is the client for interacting with the VerificationRecord builders.
	VerificationRecord *VerificationRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditLog = NewAuditLogClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.DocumentPage = NewDocumentPageClient(c.config)
	c.ExtractionResult = NewExtractionResultClient(c.config)
	c.FieldDefinition = NewFieldDefinitionClient(c.config)
	c.PromptTemplate = NewPromptTemplateClient(c.config)
	c.SystemLog = NewSystemLogClient(c.config)
	c.VerificationRecord = NewVerificationRecordClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		AuditLog:           NewAuditLogClient(cfg),
		Document:           NewDocumentClient(cfg),
		DocumentPage:       NewDocumentPageClient(cfg),
		ExtractionResult:   NewExtractionResultClient(cfg),
		FieldDefinition:    NewFieldDefinitionClient(cfg),
		PromptTemplate:     NewPromptTemplateClient(cfg),
		SystemLog:          NewSystemLogClient(cfg),
		VerificationRecord: NewVerificationRecordClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		AuditLog:           NewAuditLogClient(cfg),
		Document:           NewDocumentClient(cfg),
		DocumentPage:       NewDocumentPageClient(cfg),
		ExtractionResult:   NewExtractionResultClient(cfg),
		FieldDefinition:    NewFieldDefinitionClient(cfg),
		PromptTemplate:     NewPromptTemplateClient(cfg),
		SystemLog:          NewSystemLogClient(cfg),
		VerificationRecord: NewVerificationRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditLog.
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
		c.AuditLog, c.Document, c.DocumentPage, c.ExtractionResult, c.FieldDefinition,
		c.PromptTemplate, c.SystemLog, c.VerificationRecord,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AuditLog, c.Document, c.DocumentPage, c.ExtractionResult, c.FieldDefinition,
		c.PromptTemplate, c.SystemLog, c.VerificationRecord,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *DocumentPageMutation:
		return c.DocumentPage.mutate(ctx, m)
	case *ExtractionResultMutation:
		return c.ExtractionResult.mutate(ctx, m)
	case *FieldDefinitionMutation:
		return c.FieldDefinition.mutate(ctx, m)
	case *PromptTemplateMutation:
		return c.PromptTemplate.mutate(ctx, m)
	case *SystemLogMutation:
		return c.SystemLog.mutate(ctx, m)
	case *VerificationRecordMutation:
		return c.VerificationRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id int) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id int) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id int) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id int) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPages queries the pages edge of a Document.
func (c *DocumentClient) QueryPages(_m *Document) *DocumentPageQuery {
	query := (&DocumentPageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(documentpage.Table, documentpage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.PagesTable, document.PagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResults queries the results edge of a Document.
func (c *DocumentClient) QueryResults(_m *Document) *ExtractionResultQuery {
	query := (&ExtractionResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(extractionresult.Table, extractionresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.ResultsTable, document.ResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// DocumentPageClient is a client for the DocumentPage schema.
type DocumentPageClient struct {
	config
}

// NewDocumentPageClient returns a client for the DocumentPage from the given config.
func NewDocumentPageClient(c config) *DocumentPageClient {
	return &DocumentPageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentpage.Hooks(f(g(h())))`.
func (c *DocumentPageClient) Use(hooks ...Hook) {
	c.hooks.DocumentPage = append(c.hooks.DocumentPage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentpage.Intercept(f(g(h())))`.
func (c *DocumentPageClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentPage = append(c.inters.DocumentPage, interceptors...)
}

// Create returns a builder for creating a DocumentPage entity.
func (c *DocumentPageClient) Create() *DocumentPageCreate {
	mutation := newDocumentPageMutation(c.config, OpCreate)
	return &DocumentPageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentPage entities.
func (c *DocumentPageClient) CreateBulk(builders ...*DocumentPageCreate) *DocumentPageCreateBulk {
	return &DocumentPageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentPageClient) MapCreateBulk(slice any, setFunc func(*DocumentPageCreate, int)) *DocumentPageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentPageCreateBulk{err: fmt.Errorf("calling to DocumentPageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentPageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentPageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentPage.
func (c *DocumentPageClient) Update() *DocumentPageUpdate {
	mutation := newDocumentPageMutation(c.config, OpUpdate)
	return &DocumentPageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentPageClient) UpdateOne(_m *DocumentPage) *DocumentPageUpdateOne {
	mutation := newDocumentPageMutation(c.config, OpUpdateOne, withDocumentPage(_m))
	return &DocumentPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentPageClient) UpdateOneID(id int) *DocumentPageUpdateOne {
	mutation := newDocumentPageMutation(c.config, OpUpdateOne, withDocumentPageID(id))
	return &DocumentPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentPage.
func (c *DocumentPageClient) Delete() *DocumentPageDelete {
	mutation := newDocumentPageMutation(c.config, OpDelete)
	return &DocumentPageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentPageClient) DeleteOne(_m *DocumentPage) *DocumentPageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentPageClient) DeleteOneID(id int) *DocumentPageDeleteOne {
	builder := c.Delete().Where(documentpage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentPageDeleteOne{builder}
}

// Query returns a query builder for DocumentPage.
func (c *DocumentPageClient) Query() *DocumentPageQuery {
	return &DocumentPageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentPage},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentPage entity by its id.
func (c *DocumentPageClient) Get(ctx context.Context, id int) (*DocumentPage, error) {
	return c.Query().Where(documentpage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentPageClient) GetX(ctx context.Context, id int) *DocumentPage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a DocumentPage.
func (c *DocumentPageClient) QueryDocument(_m *DocumentPage) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentpage.Table, documentpage.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, documentpage.DocumentTable, documentpage.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentPageClient) Hooks() []Hook {
	return c.hooks.DocumentPage
}

// Interceptors returns the client interceptors.
func (c *DocumentPageClient) Interceptors() []Interceptor {
	return c.inters.DocumentPage
}

func (c *DocumentPageClient) mutate(ctx context.Context, m *DocumentPageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentPageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentPageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentPageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentPage mutation op: %q", m.Op())
	}
}

// ExtractionResultClient is a client for the ExtractionResult schema.
type ExtractionResultClient struct {
	config
}

// NewExtractionResultClient returns a client for the ExtractionResult from the given config.
func NewExtractionResultClient(c config) *ExtractionResultClient {
	return &ExtractionResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionresult.Hooks(f(g(h())))`.
func (c *ExtractionResultClient) Use(hooks ...Hook) {
	c.hooks.ExtractionResult = append(c.hooks.ExtractionResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionresult.Intercept(f(g(h())))`.
func (c *ExtractionResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionResult = append(c.inters.ExtractionResult, interceptors...)
}

// Create returns a builder for creating a ExtractionResult entity.
func (c *ExtractionResultClient) Create() *ExtractionResultCreate {
	mutation := newExtractionResultMutation(c.config, OpCreate)
	return &ExtractionResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionResult entities.
func (c *ExtractionResultClient) CreateBulk(builders ...*ExtractionResultCreate) *ExtractionResultCreateBulk {
	return &ExtractionResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionResultClient) MapCreateBulk(slice any, setFunc func(*ExtractionResultCreate, int)) *ExtractionResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionResultCreateBulk{err: fmt.Errorf("calling to ExtractionResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionResult.
func (c *ExtractionResultClient) Update() *ExtractionResultUpdate {
	mutation := newExtractionResultMutation(c.config, OpUpdate)
	return &ExtractionResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionResultClient) UpdateOne(_m *ExtractionResult) *ExtractionResultUpdateOne {
	mutation := newExtractionResultMutation(c.config, OpUpdateOne, withExtractionResult(_m))
	return &ExtractionResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionResultClient) UpdateOneID(id uuid.UUID) *ExtractionResultUpdateOne {
	mutation := newExtractionResultMutation(c.config, OpUpdateOne, withExtractionResultID(id))
	return &ExtractionResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionResult.
func (c *ExtractionResultClient) Delete() *ExtractionResultDelete {
	mutation := newExtractionResultMutation(c.config, OpDelete)
	return &ExtractionResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionResultClient) DeleteOne(_m *ExtractionResult) *ExtractionResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionResultClient) DeleteOneID(id uuid.UUID) *ExtractionResultDeleteOne {
	builder := c.Delete().Where(extractionresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionResultDeleteOne{builder}
}

// Query returns a query builder for ExtractionResult.
func (c *ExtractionResultClient) Query() *ExtractionResultQuery {
	return &ExtractionResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionResult},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionResult entity by its id.
func (c *ExtractionResultClient) Get(ctx context.Context, id uuid.UUID) (*ExtractionResult, error) {
	return c.Query().Where(extractionresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionResultClient) GetX(ctx context.Context, id uuid.UUID) *ExtractionResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ExtractionResult.
func (c *ExtractionResultClient) QueryDocument(_m *ExtractionResult) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionresult.Table, extractionresult.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionresult.DocumentTable, extractionresult.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFieldDef queries the field_def edge of a ExtractionResult.
func (c *ExtractionResultClient) QueryFieldDef(_m *ExtractionResult) *FieldDefinitionQuery {
	query := (&FieldDefinitionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionresult.Table, extractionresult.FieldID, id),
			sqlgraph.To(fielddefinition.Table, fielddefinition.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionresult.FieldDefTable, extractionresult.FieldDefColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVerifications queries the verifications edge of a ExtractionResult.
func (c *ExtractionResultClient) QueryVerifications(_m *ExtractionResult) *VerificationRecordQuery {
	query := (&VerificationRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionresult.Table, extractionresult.FieldID, id),
			sqlgraph.To(verificationrecord.Table, verificationrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extractionresult.VerificationsTable, extractionresult.VerificationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionResultClient) Hooks() []Hook {
	return c.hooks.ExtractionResult
}

// Interceptors returns the client interceptors.
func (c *ExtractionResultClient) Interceptors() []Interceptor {
	return c.inters.ExtractionResult
}

func (c *ExtractionResultClient) mutate(ctx context.Context, m *ExtractionResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionResult mutation op: %q", m.Op())
	}
}

// FieldDefinitionClient is a client for the FieldDefinition schema.
type FieldDefinitionClient struct {
	config
}

// NewFieldDefinitionClient returns a client for the FieldDefinition from the given config.
func NewFieldDefinitionClient(c config) *FieldDefinitionClient {
	return &FieldDefinitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fielddefinition.Hooks(f(g(h())))`.
func (c *FieldDefinitionClient) Use(hooks ...Hook) {
	c.hooks.FieldDefinition = append(c.hooks.FieldDefinition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fielddefinition.Intercept(f(g(h())))`.
func (c *FieldDefinitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.FieldDefinition = append(c.inters.FieldDefinition, interceptors...)
}

// Create returns a builder for creating a FieldDefinition entity.
func (c *FieldDefinitionClient) Create() *FieldDefinitionCreate {
	mutation := newFieldDefinitionMutation(c.config, OpCreate)
	return &FieldDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FieldDefinition entities.
func (c *FieldDefinitionClient) CreateBulk(builders ...*FieldDefinitionCreate) *FieldDefinitionCreateBulk {
	return &FieldDefinitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FieldDefinitionClient) MapCreateBulk(slice any, setFunc func(*FieldDefinitionCreate, int)) *FieldDefinitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FieldDefinitionCreateBulk{err: fmt.Errorf("calling to FieldDefinitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FieldDefinitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FieldDefinitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FieldDefinition.
func (c *FieldDefinitionClient) Update() *FieldDefinitionUpdate {
	mutation := newFieldDefinitionMutation(c.config, OpUpdate)
	return &FieldDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FieldDefinitionClient) UpdateOne(_m *FieldDefinition) *FieldDefinitionUpdateOne {
	mutation := newFieldDefinitionMutation(c.config, OpUpdateOne, withFieldDefinition(_m))
	return &FieldDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FieldDefinitionClient) UpdateOneID(id int) *FieldDefinitionUpdateOne {
	mutation := newFieldDefinitionMutation(c.config, OpUpdateOne, withFieldDefinitionID(id))
	return &FieldDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FieldDefinition.
func (c *FieldDefinitionClient) Delete() *FieldDefinitionDelete {
	mutation := newFieldDefinitionMutation(c.config, OpDelete)
	return &FieldDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FieldDefinitionClient) DeleteOne(_m *FieldDefinition) *FieldDefinitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FieldDefinitionClient) DeleteOneID(id int) *FieldDefinitionDeleteOne {
	builder := c.Delete().Where(fielddefinition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FieldDefinitionDeleteOne{builder}
}

// Query returns a query builder for FieldDefinition.
func (c *FieldDefinitionClient) Query() *FieldDefinitionQuery {
	return &FieldDefinitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFieldDefinition},
		inters: c.Interceptors(),
	}
}

// Get returns a FieldDefinition entity by its id.
func (c *FieldDefinitionClient) Get(ctx context.Context, id int) (*FieldDefinition, error) {
	return c.Query().Where(fielddefinition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FieldDefinitionClient) GetX(ctx context.Context, id int) *FieldDefinition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryResults queries the results edge of a FieldDefinition.
func (c *FieldDefinitionClient) QueryResults(_m *FieldDefinition) *ExtractionResultQuery {
	query := (&ExtractionResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fielddefinition.Table, fielddefinition.FieldID, id),
			sqlgraph.To(extractionresult.Table, extractionresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, fielddefinition.ResultsTable, fielddefinition.ResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FieldDefinitionClient) Hooks() []Hook {
	return c.hooks.FieldDefinition
}

// Interceptors returns the client interceptors.
func (c *FieldDefinitionClient) Interceptors() []Interceptor {
	return c.inters.FieldDefinition
}

func (c *FieldDefinitionClient) mutate(ctx context.Context, m *FieldDefinitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FieldDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FieldDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FieldDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FieldDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FieldDefinition mutation op: %q", m.Op())
	}
}

// PromptTemplateClient is a client for the PromptTemplate schema.
type PromptTemplateClient struct {
	config
}

// NewPromptTemplateClient returns a client for the PromptTemplate from the given config.
func NewPromptTemplateClient(c config) *PromptTemplateClient {
	return &PromptTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prompttemplate.Hooks(f(g(h())))`.
func (c *PromptTemplateClient) Use(hooks ...Hook) {
	c.hooks.PromptTemplate = append(c.hooks.PromptTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prompttemplate.Intercept(f(g(h())))`.
func (c *PromptTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptTemplate = append(c.inters.PromptTemplate, interceptors...)
}

// Create returns a builder for creating a PromptTemplate entity.
func (c *PromptTemplateClient) Create() *PromptTemplateCreate {
	mutation := newPromptTemplateMutation(c.config, OpCreate)
	return &PromptTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptTemplate entities.
func (c *PromptTemplateClient) CreateBulk(builders ...*PromptTemplateCreate) *PromptTemplateCreateBulk {
	return &PromptTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptTemplateClient) MapCreateBulk(slice any, setFunc func(*PromptTemplateCreate, int)) *PromptTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptTemplateCreateBulk{err: fmt.Errorf("calling to PromptTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptTemplate.
func (c *PromptTemplateClient) Update() *PromptTemplateUpdate {
	mutation := newPromptTemplateMutation(c.config, OpUpdate)
	return &PromptTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptTemplateClient) UpdateOne(_m *PromptTemplate) *PromptTemplateUpdateOne {
	mutation := newPromptTemplateMutation(c.config, OpUpdateOne, withPromptTemplate(_m))
	return &PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptTemplateClient) UpdateOneID(id uuid.UUID) *PromptTemplateUpdateOne {
	mutation := newPromptTemplateMutation(c.config, OpUpdateOne, withPromptTemplateID(id))
	return &PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptTemplate.
func (c *PromptTemplateClient) Delete() *PromptTemplateDelete {
	mutation := newPromptTemplateMutation(c.config, OpDelete)
	return &PromptTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptTemplateClient) DeleteOne(_m *PromptTemplate) *PromptTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptTemplateClient) DeleteOneID(id uuid.UUID) *PromptTemplateDeleteOne {
	builder := c.Delete().Where(prompttemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptTemplateDeleteOne{builder}
}

// Query returns a query builder for PromptTemplate.
func (c *PromptTemplateClient) Query() *PromptTemplateQuery {
	return &PromptTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptTemplate entity by its id.
func (c *PromptTemplateClient) Get(ctx context.Context, id uuid.UUID) (*PromptTemplate, error) {
	return c.Query().Where(prompttemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptTemplateClient) GetX(ctx context.Context, id uuid.UUID) *PromptTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PromptTemplateClient) Hooks() []Hook {
	return c.hooks.PromptTemplate
}

// Interceptors returns the client interceptors.
func (c *PromptTemplateClient) Interceptors() []Interceptor {
	return c.inters.PromptTemplate
}

func (c *PromptTemplateClient) mutate(ctx context.Context, m *PromptTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptTemplate mutation op: %q", m.Op())
	}
}

// SystemLogClient is a client for the SystemLog schema.
type SystemLogClient struct {
	config
}

// NewSystemLogClient returns a client for the SystemLog from the given config.
func NewSystemLogClient(c config) *SystemLogClient {
	return &SystemLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `systemlog.Hooks(f(g(h())))`.
func (c *SystemLogClient) Use(hooks ...Hook) {
	c.hooks.SystemLog = append(c.hooks.SystemLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `systemlog.Intercept(f(g(h())))`.
func (c *SystemLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.SystemLog = append(c.inters.SystemLog, interceptors...)
}

// Create returns a builder for creating a SystemLog entity.
func (c *SystemLogClient) Create() *SystemLogCreate {
	mutation := newSystemLogMutation(c.config, OpCreate)
	return &SystemLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SystemLog entities.
func (c *SystemLogClient) CreateBulk(builders ...*SystemLogCreate) *SystemLogCreateBulk {
	return &SystemLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SystemLogClient) MapCreateBulk(slice any, setFunc func(*SystemLogCreate, int)) *SystemLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SystemLogCreateBulk{err: fmt.Errorf("calling to SystemLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SystemLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SystemLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SystemLog.
func (c *SystemLogClient) Update() *SystemLogUpdate {
	mutation := newSystemLogMutation(c.config, OpUpdate)
	return &SystemLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SystemLogClient) UpdateOne(_m *SystemLog) *SystemLogUpdateOne {
	mutation := newSystemLogMutation(c.config, OpUpdateOne, withSystemLog(_m))
	return &SystemLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SystemLogClient) UpdateOneID(id int) *SystemLogUpdateOne {
	mutation := newSystemLogMutation(c.config, OpUpdateOne, withSystemLogID(id))
	return &SystemLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SystemLog.
func (c *SystemLogClient) Delete() *SystemLogDelete {
	mutation := newSystemLogMutation(c.config, OpDelete)
	return &SystemLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SystemLogClient) DeleteOne(_m *SystemLog) *SystemLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SystemLogClient) DeleteOneID(id int) *SystemLogDeleteOne {
	builder := c.Delete().Where(systemlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SystemLogDeleteOne{builder}
}

// Query returns a query builder for SystemLog.
func (c *SystemLogClient) Query() *SystemLogQuery {
	return &SystemLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSystemLog},
		inters: c.Interceptors(),
	}
}

// Get returns a SystemLog entity by its id.
func (c *SystemLogClient) Get(ctx context.Context, id int) (*SystemLog, error) {
	return c.Query().Where(systemlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SystemLogClient) GetX(ctx context.Context, id int) *SystemLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SystemLogClient) Hooks() []Hook {
	return c.hooks.SystemLog
}

// Interceptors returns the client interceptors.
func (c *SystemLogClient) Interceptors() []Interceptor {
	return c.inters.SystemLog
}

func (c *SystemLogClient) mutate(ctx context.Context, m *SystemLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SystemLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SystemLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SystemLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SystemLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SystemLog mutation op: %q", m.Op())
	}
}

// VerificationRecordClient is a client for the VerificationRecord schema.
type VerificationRecordClient struct {
	config
}

// NewVerificationRecordClient returns a client for the VerificationRecord from the given config.
func NewVerificationRecordClient(c config) *VerificationRecordClient {
	return &VerificationRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verificationrecord.Hooks(f(g(h())))`.
func (c *VerificationRecordClient) Use(hooks ...Hook) {
	c.hooks.VerificationRecord = append(c.hooks.VerificationRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verificationrecord.Intercept(f(g(h())))`.
func (c *VerificationRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.VerificationRecord = append(c.inters.VerificationRecord, interceptors...)
}

// Create returns a builder for creating a VerificationRecord entity.
func (c *VerificationRecordClient) Create() *VerificationRecordCreate {
	mutation := newVerificationRecordMutation(c.config, OpCreate)
	return &VerificationRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VerificationRecord entities.
func (c *VerificationRecordClient) CreateBulk(builders ...*VerificationRecordCreate) *VerificationRecordCreateBulk {
	return &VerificationRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerificationRecordClient) MapCreateBulk(slice any, setFunc func(*VerificationRecordCreate, int)) *VerificationRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerificationRecordCreateBulk{err: fmt.Errorf("calling to VerificationRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerificationRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerificationRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VerificationRecord.
func (c *VerificationRecordClient) Update() *VerificationRecordUpdate {
	mutation := newVerificationRecordMutation(c.config, OpUpdate)
	return &VerificationRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerificationRecordClient) UpdateOne(_m *VerificationRecord) *VerificationRecordUpdateOne {
	mutation := newVerificationRecordMutation(c.config, OpUpdateOne, withVerificationRecord(_m))
	return &VerificationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerificationRecordClient) UpdateOneID(id uuid.UUID) *VerificationRecordUpdateOne {
	mutation := newVerificationRecordMutation(c.config, OpUpdateOne, withVerificationRecordID(id))
	return &VerificationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VerificationRecord.
func (c *VerificationRecordClient) Delete() *VerificationRecordDelete {
	mutation := newVerificationRecordMutation(c.config, OpDelete)
	return &VerificationRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerificationRecordClient) DeleteOne(_m *VerificationRecord) *VerificationRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerificationRecordClient) DeleteOneID(id uuid.UUID) *VerificationRecordDeleteOne {
	builder := c.Delete().Where(verificationrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerificationRecordDeleteOne{builder}
}

// Query returns a query builder for VerificationRecord.
func (c *VerificationRecordClient) Query() *VerificationRecordQuery {
	return &VerificationRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerificationRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a VerificationRecord entity by its id.
func (c *VerificationRecordClient) Get(ctx context.Context, id uuid.UUID) (*VerificationRecord, error) {
	return c.Query().Where(verificationrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerificationRecordClient) GetX(ctx context.Context, id uuid.UUID) *VerificationRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryResult queries the result edge of a VerificationRecord.
func (c *VerificationRecordClient) QueryResult(_m *VerificationRecord) *ExtractionResultQuery {
	query := (&ExtractionResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(verificationrecord.Table, verificationrecord.FieldID, id),
			sqlgraph.To(extractionresult.Table, extractionresult.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, verificationrecord.ResultTable, verificationrecord.ResultColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VerificationRecordClient) Hooks() []Hook {
	return c.hooks.VerificationRecord
}

// Interceptors returns the client interceptors.
func (c *VerificationRecordClient) Interceptors() []Interceptor {
	return c.inters.VerificationRecord
}

func (c *VerificationRecordClient) mutate(ctx context.Context, m *VerificationRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerificationRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerificationRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerificationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerificationRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VerificationRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditLog, Document, DocumentPage, ExtractionResult, FieldDefinition,
		PromptTemplate, SystemLog, VerificationRecord []ent.Hook
	}
	inters struct {
		AuditLog, Document, DocumentPage, ExtractionResult, FieldDefinition,
		PromptTemplate, SystemLog, VerificationRecord []ent.Interceptor
	}
)
