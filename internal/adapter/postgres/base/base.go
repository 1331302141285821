// Package base provides Repo, the generic per-entity repository shared by
// every table-backed repository. Statements are built with squirrel from a
// schema.Table descriptor and scanned into T with scany by db tags.
package base

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/schema"
	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// Fields is a partial entity keyed by column name.
type Fields map[string]any

// ListOptions filters and pages FindAll. A nil *ListOptions selects every row
// ordered by key.
type ListOptions struct {
	// Where is ANDed equality; a nil value matches IS NULL.
	Where Fields
	// OrderBy entries are "column" or "column ASC|DESC".
	OrderBy []string
	Limit   uint64
	Offset  uint64
	// OnlyLive excludes soft-deleted rows on tables that support soft delete.
	OnlyLive bool
}

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Repo is the generic repository over entity type T stored in one table.
type Repo[T any] struct {
	q     postgres.Querier
	table schema.Table
}

// New creates a Repo executing on q.
func New[T any](q postgres.Querier, table schema.Table) *Repo[T] {
	return &Repo[T]{q: q, table: table}
}

// Q returns the scope handle the repository executes on.
func (r *Repo[T]) Q() postgres.Querier { return r.q }

// Table returns the table descriptor.
func (r *Repo[T]) Table() schema.Table { return r.table }

// SelectBuilder returns SELECT <columns> FROM <table>.
func (r *Repo[T]) SelectBuilder() sq.SelectBuilder {
	return Builder().Select(r.table.Columns...).From(r.table.Name)
}

// FindByID returns the row with the given id, or nil when none exists.
// Soft-deleted rows are returned as well.
func (r *Repo[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	if err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	return r.Get(ctx, r.SelectBuilder().Where(sq.Eq{r.table.Key: id}), idKey(id))
}

// FindAll returns matching rows; the result is empty, never nil, when none match.
func (r *Repo[T]) FindAll(ctx context.Context, opts *ListOptions) ([]T, error) {
	query := r.SelectBuilder()
	if opts == nil {
		opts = &ListOptions{}
	}

	if len(opts.Where) > 0 {
		eq, err := r.where(opts.Where)
		if err != nil {
			return nil, err
		}
		query = query.Where(eq)
	}
	if opts.OnlyLive && r.table.SoftDelete {
		query = query.Where(sq.Eq{schema.ColDeletedAt: nil})
	}

	orderBy, err := r.orderBy(opts.OrderBy)
	if err != nil {
		return nil, err
	}
	query = query.OrderBy(orderBy...)

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	return r.Select(ctx, query)
}

// FindBy returns rows whose columns equal every value in where.
func (r *Repo[T]) FindBy(ctx context.Context, where Fields) ([]T, error) {
	if len(where) == 0 {
		return nil, domain.NewValidationError("where", "at least one field is required")
	}
	return r.FindAll(ctx, &ListOptions{Where: where})
}

// FindOneBy returns the first row (by key) matching where, or nil.
func (r *Repo[T]) FindOneBy(ctx context.Context, where Fields) (*T, error) {
	if len(where) == 0 {
		return nil, domain.NewValidationError("where", "at least one field is required")
	}
	eq, err := r.where(where)
	if err != nil {
		return nil, err
	}
	orderBy, err := r.orderBy(nil)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, r.SelectBuilder().Where(eq).OrderBy(orderBy...).Limit(1), "")
}

// Create inserts a row built from fields and returns it with store-assigned
// id and defaults. Constraint failures surface as domain.ErrConstraintViolation.
func (r *Repo[T]) Create(ctx context.Context, fields Fields) (*T, error) {
	cols, vals, err := r.writable(fields)
	if err != nil {
		return nil, err
	}

	query := Builder().
		Insert(r.table.Name).
		Columns(cols...).
		Values(vals...).
		Suffix(r.returning())

	return r.Get(ctx, query, "")
}

// Update applies fields to the row with the given id and returns the refreshed
// row, or nil when the id does not exist. It never inserts.
func (r *Repo[T]) Update(ctx context.Context, id int64, fields Fields) (*T, error) {
	if err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	cols, vals, err := r.writable(fields)
	if err != nil {
		return nil, err
	}

	query := Builder().Update(r.table.Name)
	for i, col := range cols {
		query = query.Set(col, vals[i])
	}
	if r.table.Audit {
		query = query.Set(schema.ColUpdatedAt, sq.Expr("now()"))
	}
	query = query.Where(sq.Eq{r.table.Key: id}).Suffix(r.returning())

	return r.Get(ctx, query, idKey(id))
}

// Delete removes the row physically and reports whether it existed.
func (r *Repo[T]) Delete(ctx context.Context, id int64) (bool, error) {
	if err := ValidateID(id, "id"); err != nil {
		return false, err
	}
	query := Builder().Delete(r.table.Name).Where(sq.Eq{r.table.Key: id})
	return r.Exec(ctx, query, idKey(id))
}

// SoftDelete marks the row deleted by actorID and reports whether it exists.
// An already deleted row keeps its first deleted_at and still reports true.
// Dependents are not touched.
func (r *Repo[T]) SoftDelete(ctx context.Context, id, actorID int64) (bool, error) {
	if !r.table.SoftDelete {
		return false, domain.NewValidationError("table", r.table.Name+" does not support soft delete")
	}
	if err := ValidateID(id, "id"); err != nil {
		return false, err
	}
	if err := ValidateID(actorID, "actor_id"); err != nil {
		return false, err
	}

	query := Builder().
		Update(r.table.Name).
		Set(schema.ColDeletedAt, sq.Expr("COALESCE("+schema.ColDeletedAt+", now())"))
	if r.table.Audit {
		query = query.
			Set(schema.ColUpdatedAt, sq.Expr("now()")).
			Set(schema.ColUpdatedBy, actorID)
	}
	query = query.Where(sq.Eq{r.table.Key: id})

	return r.Exec(ctx, query, idKey(id))
}

// Get runs a single-row query. No row yields (nil, nil).
func (r *Repo[T]) Get(ctx context.Context, query sq.Sqlizer, key string) (*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", r.table.Name, err)
	}

	var dst T
	if err := pgxscan.Get(ctx, r.q, &dst, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, postgres.MapError(err, r.table.Name, key)
	}
	return &dst, nil
}

// Select runs a multi-row query. The result is never nil.
func (r *Repo[T]) Select(ctx context.Context, query sq.Sqlizer) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", r.table.Name, err)
	}

	dst := make([]T, 0)
	if err := pgxscan.Select(ctx, r.q, &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, r.table.Name, "")
	}
	return dst, nil
}

// Exec runs a statement and reports whether it affected any row.
func (r *Repo[T]) Exec(ctx context.Context, query sq.Sqlizer, key string) (bool, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: build query: %w", r.table.Name, err)
	}

	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, r.table.Name, key)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo[T]) returning() string {
	return "RETURNING " + strings.Join(r.table.Columns, ", ")
}

func (r *Repo[T]) where(fields Fields) (sq.Eq, error) {
	eq := make(sq.Eq, len(fields))
	for col, val := range fields {
		if !r.table.Has(col) {
			return nil, domain.NewValidationError(col, "unknown column of "+r.table.Name)
		}
		eq[col] = val
	}
	return eq, nil
}

// writable returns the columns of fields in sorted order with their values,
// so the generated SQL is deterministic.
func (r *Repo[T]) writable(fields Fields) ([]string, []any, error) {
	if len(fields) == 0 {
		return nil, nil, domain.NewValidationError("fields", "at least one field is required")
	}

	var errs []domain.FieldError
	cols := make([]string, 0, len(fields))
	for col := range fields {
		if !r.table.IsWritable(col) {
			errs = append(errs, domain.FieldError{Field: col, Message: "not writable on " + r.table.Name})
			continue
		}
		cols = append(cols, col)
	}
	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
		return nil, nil, domain.NewValidationErrors(errs)
	}

	sort.Strings(cols)
	vals := make([]any, len(cols))
	for i, col := range cols {
		vals[i] = fields[col]
	}
	return cols, vals, nil
}

func (r *Repo[T]) orderBy(entries []string) ([]string, error) {
	if len(entries) == 0 {
		if r.table.Key == "" {
			return nil, nil
		}
		return []string{r.table.Key + " ASC"}, nil
	}

	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts := strings.Fields(entry)
		if len(parts) == 0 || len(parts) > 2 || !r.table.Has(parts[0]) {
			return nil, domain.NewValidationError("order_by", "invalid ordering "+strconv.Quote(entry))
		}
		dir := "ASC"
		if len(parts) == 2 {
			dir = strings.ToUpper(parts[1])
			if dir != "ASC" && dir != "DESC" {
				return nil, domain.NewValidationError("order_by", "invalid direction "+strconv.Quote(parts[1]))
			}
		}
		out = append(out, parts[0]+" "+dir)
	}
	return out, nil
}

func idKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
