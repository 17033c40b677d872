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
	"github.com/docufield/docufield/gen/ent/document"
	"github.com/docufield/docufield/gen/ent/extractionresult"
	"github.com/docufield/docufield/gen/ent/fielddefinition"
	"github.com/docufield/docufield/gen/ent/predicate"
	"github.com/docufield/docufield/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// ExtractionResultQuery is the builder for querying ExtractionResult entities.
type ExtractionResultQuery struct {
	config
	ctx               *QueryContext
	order             []extractionresult.OrderOption
	inters            []Interceptor
	predicates        []predicate.ExtractionResult
	withDocument      *DocumentQuery
	withFieldDef      *FieldDefinitionQuery
	withVerifications *VerificationRecordQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ExtractionResultQuery builder.
func (_q *ExtractionResultQuery) Where(ps ...predicate.ExtractionResult) *ExtractionResultQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ExtractionResultQuery) Limit(limit int) *ExtractionResultQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ExtractionResultQuery) Offset(offset int) *ExtractionResultQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ExtractionResultQuery) Unique(unique bool) *ExtractionResultQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ExtractionResultQuery) Order(o ...extractionresult.OrderOption) *ExtractionResultQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDocument chains the current query on the "document" edge.
func (_q *ExtractionResultQuery) QueryDocument() *DocumentQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionresult.Table, extractionresult.FieldID, selector),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionresult.DocumentTable, extractionresult.DocumentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFieldDef chains the current query on the "field_def" edge.
func (_q *ExtractionResultQuery) QueryFieldDef() *FieldDefinitionQuery {
	query := (&FieldDefinitionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionresult.Table, extractionresult.FieldID, selector),
			sqlgraph.To(fielddefinition.Table, fielddefinition.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionresult.FieldDefTable, extractionresult.FieldDefColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryVerifications chains the current query on the "verifications" edge.
func (_q *ExtractionResultQuery) QueryVerifications() *VerificationRecordQuery {
	query := (&VerificationRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionresult.Table, extractionresult.FieldID, selector),
			sqlgraph.To(verificationrecord.Table, verificationrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extractionresult.VerificationsTable, extractionresult.VerificationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ExtractionResult entity from the query.
// Returns a *NotFoundError when no ExtractionResult was found.
func (_q *ExtractionResultQuery) First(ctx context.Context) (*ExtractionResult, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{extractionresult.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ExtractionResultQuery) FirstX(ctx context.Context) *ExtractionResult {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ExtractionResult ID from the query.
// Returns a *NotFoundError when no ExtractionResult ID was found.
func (_q *ExtractionResultQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{extractionresult.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ExtractionResultQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ExtractionResult entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ExtractionResult entity is found.
// Returns a *NotFoundError when no ExtractionResult entities are found.
func (_q *ExtractionResultQuery) Only(ctx context.Context) (*ExtractionResult, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{extractionresult.Label}
	default:
		return nil, &NotSingularError{extractionresult.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ExtractionResultQuery) OnlyX(ctx context.Context) *ExtractionResult {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ExtractionResult ID in the query.
// Returns a *NotSingularError when more than one ExtractionResult ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ExtractionResultQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{extractionresult.Label}
	default:
		err = &NotSingularError{extractionresult.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ExtractionResultQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ExtractionResults.
func (_q *ExtractionResultQuery) All(ctx context.Context) ([]*ExtractionResult, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ExtractionResult, *ExtractionResultQuery]()
	return withInterceptors[[]*ExtractionResult](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ExtractionResultQuery) AllX(ctx context.Context) []*ExtractionResult {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ExtractionResult IDs.
func (_q *ExtractionResultQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(extractionresult.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ExtractionResultQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ExtractionResultQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ExtractionResultQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ExtractionResultQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ExtractionResultQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ExtractionResultQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ExtractionResultQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ExtractionResultQuery) Clone() *ExtractionResultQuery {
	if _q == nil {
		return nil
	}
	return &ExtractionResultQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]extractionresult.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.ExtractionResult{}, _q.predicates...),
		withDocument:      _q.withDocument.Clone(),
		withFieldDef:      _q.withFieldDef.Clone(),
		withVerifications: _q.withVerifications.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDocument tells the query-builder to eager-load the nodes that are connected to
// the "document" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExtractionResultQuery) WithDocument(opts ...func(*DocumentQuery)) *ExtractionResultQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDocument = query
	return _q
}

// WithFieldDef tells the query-builder to eager-load the nodes that are connected to
// the "field_def" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExtractionResultQuery) WithFieldDef(opts ...func(*FieldDefinitionQuery)) *ExtractionResultQuery {
	query := (&FieldDefinitionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFieldDef = query
	return _q
}

// WithVerifications tells the query-builder to eager-load the nodes that are connected to
// the "verifications" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExtractionResultQuery) WithVerifications(opts ...func(*VerificationRecordQuery)) *ExtractionResultQuery {
	query := (&VerificationRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVerifications = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DocumentID uuid.UUID `json:"document_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ExtractionResult.Query().
//		GroupBy(extractionresult.FieldDocumentID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ExtractionResultQuery) GroupBy(field string, fields ...string) *ExtractionResultGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ExtractionResultGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = extractionresult.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DocumentID uuid.UUID `json:"document_id,omitempty"`
//	}
//
//	client.ExtractionResult.Query().
//		Select(extractionresult.FieldDocumentID).
//		Scan(ctx, &v)
func (_q *ExtractionResultQuery) Select(fields ...string) *ExtractionResultSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ExtractionResultSelect{ExtractionResultQuery: _q}
	sbuild.label = extractionresult.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ExtractionResultSelect configured with the given aggregations.
func (_q *ExtractionResultQuery) Aggregate(fns ...AggregateFunc) *ExtractionResultSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ExtractionResultQuery) prepareQuery(ctx context.Context) error {
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
		if !extractionresult.ValidColumn(f) {
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

func (_q *ExtractionResultQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ExtractionResult, error) {
	var (
		nodes       = []*ExtractionResult{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withDocument != nil,
			_q.withFieldDef != nil,
			_q.withVerifications != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ExtractionResult).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ExtractionResult{config: _q.config}
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
	if query := _q.withDocument; query != nil {
		if err := _q.loadDocument(ctx, query, nodes, nil,
			func(n *ExtractionResult, e *Document) { n.Edges.Document = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFieldDef; query != nil {
		if err := _q.loadFieldDef(ctx, query, nodes, nil,
			func(n *ExtractionResult, e *FieldDefinition) { n.Edges.FieldDef = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withVerifications; query != nil {
		if err := _q.loadVerifications(ctx, query, nodes,
			func(n *ExtractionResult) { n.Edges.Verifications = []*VerificationRecord{} },
			func(n *ExtractionResult, e *VerificationRecord) {
				n.Edges.Verifications = append(n.Edges.Verifications, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ExtractionResultQuery) loadDocument(ctx context.Context, query *DocumentQuery, nodes []*ExtractionResult, init func(*ExtractionResult), assign func(*ExtractionResult, *Document)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ExtractionResult)
	for i := range nodes {
		fk := nodes[i].DocumentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(document.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "document_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ExtractionResultQuery) loadFieldDef(ctx context.Context, query *FieldDefinitionQuery, nodes []*ExtractionResult, init func(*ExtractionResult), assign func(*ExtractionResult, *FieldDefinition)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ExtractionResult)
	for i := range nodes {
		fk := nodes[i].FieldDefID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(fielddefinition.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "field_def_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ExtractionResultQuery) loadVerifications(ctx context.Context, query *VerificationRecordQuery, nodes []*ExtractionResult, init func(*ExtractionResult), assign func(*ExtractionResult, *VerificationRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ExtractionResult)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(verificationrecord.FieldResultID)
	}
	query.Where(predicate.VerificationRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(extractionresult.VerificationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ResultID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "result_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ExtractionResultQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ExtractionResultQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(extractionresult.Table, extractionresult.Columns, sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionresult.FieldID)
		for i := range fields {
			if fields[i] != extractionresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withDocument != nil {
			_spec.Node.AddColumnOnce(extractionresult.FieldDocumentID)
		}
		if _q.withFieldDef != nil {
			_spec.Node.AddColumnOnce(extractionresult.FieldFieldDefID)
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

func (_q *ExtractionResultQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(extractionresult.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = extractionresult.Columns
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

// ExtractionResultGroupBy is the group-by builder for ExtractionResult entities.
type ExtractionResultGroupBy struct {
	selector
	build *ExtractionResultQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ExtractionResultGroupBy) Aggregate(fns ...AggregateFunc) *ExtractionResultGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ExtractionResultGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExtractionResultQuery, *ExtractionResultGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ExtractionResultGroupBy) sqlScan(ctx context.Context, root *ExtractionResultQuery, v any) error {
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

// ExtractionResultSelect is the builder for selecting fields of ExtractionResult entities.
type ExtractionResultSelect struct {
	*ExtractionResultQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ExtractionResultSelect) Aggregate(fns ...AggregateFunc) *ExtractionResultSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ExtractionResultSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExtractionResultQuery, *ExtractionResultSelect](ctx, _s.ExtractionResultQuery, _s, _s.inters, v)
}

func (_s *ExtractionResultSelect) sqlScan(ctx context.Context, root *ExtractionResultQuery, v any) error {
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
