package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() squirrel.StatementBuilderType {
	return psql
}

// TableConfig describes how an entity maps onto a table.
type TableConfig[T any, K comparable] struct {
	// Name is the table name.
	Name string
	// Entity is used as the error message prefix.
	Entity string
	// Keys are the primary key columns.
	Keys []string
	// Columns are the non-key columns.
	Columns []string
	// OrderBy is the default ordering of List. Optional.
	OrderBy []string
	// KeyArgs returns the values of Keys for an id, in Keys order.
	KeyArgs func(K) []any
	// Values returns the row values of an entity: Keys first, then Columns.
	Values func(*T) []any
}

// Table implements the generic CRUD statements for one entity table.
// Rows are scanned into T through its `db` struct tags.
type Table[T any, K comparable] struct {
	q   Querier
	cfg TableConfig[T, K]
}

// MustNewTable creates a Table and panics on an incomplete config.
func MustNewTable[T any, K comparable](q Querier, cfg TableConfig[T, K]) *Table[T, K] {
	switch {
	case q == nil:
		panic("postgres: table " + cfg.Name + ": nil querier")
	case cfg.Name == "" || len(cfg.Keys) == 0:
		panic("postgres: table config requires Name and Keys")
	case cfg.KeyArgs == nil || cfg.Values == nil:
		panic("postgres: table " + cfg.Name + ": KeyArgs and Values are required")
	}
	if cfg.Entity == "" {
		cfg.Entity = cfg.Name
	}
	return &Table[T, K]{q: q, cfg: cfg}
}

// Q returns the underlying querier.
func (t *Table[T, K]) Q() Querier { return t.q }

// Name returns the table name.
func (t *Table[T, K]) Name() string { return t.cfg.Name }

// Col qualifies a column with the table name.
func (t *Table[T, K]) Col(column string) string {
	return t.cfg.Name + "." + column
}

func (t *Table[T, K]) allColumns() []string {
	cols := make([]string, 0, len(t.cfg.Keys)+len(t.cfg.Columns))
	cols = append(cols, t.cfg.Keys...)
	return append(cols, t.cfg.Columns...)
}

// SelectBuilder selects every mapped column, table-qualified so the
// builder can be joined.
func (t *Table[T, K]) SelectBuilder() squirrel.SelectBuilder {
	all := t.allColumns()
	cols := make([]string, len(all))
	for i, c := range all {
		cols[i] = t.Col(c)
	}
	return psql.Select(cols...).From(t.cfg.Name)
}

func (t *Table[T, K]) keyEq(args []any) squirrel.Eq {
	eq := make(squirrel.Eq, len(t.cfg.Keys))
	for i, k := range t.cfg.Keys {
		eq[t.Col(k)] = args[i]
	}
	return eq
}

// GetByID returns the row with the given key or domain.ErrNotFound.
func (t *Table[T, K]) GetByID(ctx context.Context, id K) (*T, error) {
	query, args, err := t.SelectBuilder().Where(t.keyEq(t.cfg.KeyArgs(id))).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s select: %w", t.cfg.Entity, err)
	}

	var out T
	if err := pgxscan.Get(ctx, t.q, &out, query, args...); err != nil {
		return nil, mapError(err, t.cfg.Entity, id)
	}
	return &out, nil
}

// List returns every row in the default order.
func (t *Table[T, K]) List(ctx context.Context) ([]T, error) {
	sb := t.SelectBuilder()
	for _, o := range t.cfg.OrderBy {
		sb = sb.OrderBy(t.Col(o))
	}
	return t.Select(ctx, sb)
}

// Select runs a query built from SelectBuilder. It never returns a nil slice.
func (t *Table[T, K]) Select(ctx context.Context, sb squirrel.SelectBuilder) ([]T, error) {
	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s select: %w", t.cfg.Entity, err)
	}

	var out []T
	if err := pgxscan.Select(ctx, t.q, &out, query, args...); err != nil {
		return nil, mapError(err, t.cfg.Entity, "list")
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Count returns the number of rows matching where.
func (t *Table[T, K]) Count(ctx context.Context, where squirrel.Sqlizer) (int, error) {
	query, args, err := psql.Select("count(*)").From(t.cfg.Name).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s count: %w", t.cfg.Entity, err)
	}

	var n int
	if err := t.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, mapError(err, t.cfg.Entity, "count")
	}
	return n, nil
}

// Create inserts the entity.
func (t *Table[T, K]) Create(ctx context.Context, e *T) error {
	values := t.cfg.Values(e)
	query, args, err := psql.Insert(t.cfg.Name).
		Columns(t.allColumns()...).
		Values(values...).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s insert: %w", t.cfg.Entity, err)
	}

	if _, err := t.q.Exec(ctx, query, args...); err != nil {
		return mapError(err, t.cfg.Entity, values[:len(t.cfg.Keys)])
	}
	return nil
}

// Update replaces every non-key column of the row identified by the
// entity's key. Updating a missing row is not an error.
func (t *Table[T, K]) Update(ctx context.Context, e *T) error {
	values := t.cfg.Values(e)
	keys := values[:len(t.cfg.Keys)]

	ub := psql.Update(t.cfg.Name)
	for i, c := range t.cfg.Columns {
		ub = ub.Set(c, values[len(t.cfg.Keys)+i])
	}
	eq := make(squirrel.Eq, len(t.cfg.Keys))
	for i, k := range t.cfg.Keys {
		eq[k] = keys[i]
	}

	query, args, err := ub.Where(eq).ToSql()
	if err != nil {
		return fmt.Errorf("build %s update: %w", t.cfg.Entity, err)
	}

	if _, err := t.q.Exec(ctx, query, args...); err != nil {
		return mapError(err, t.cfg.Entity, keys)
	}
	return nil
}

// Delete removes the row with the given key. Deleting a missing row is not an error.
func (t *Table[T, K]) Delete(ctx context.Context, id K) error {
	args := t.cfg.KeyArgs(id)
	eq := make(squirrel.Eq, len(t.cfg.Keys))
	for i, k := range t.cfg.Keys {
		eq[k] = args[i]
	}

	query, qargs, err := psql.Delete(t.cfg.Name).Where(eq).ToSql()
	if err != nil {
		return fmt.Errorf("build %s delete: %w", t.cfg.Entity, err)
	}

	if _, err := t.q.Exec(ctx, query, qargs...); err != nil {
		return mapDeleteError(err, t.cfg.Entity, id)
	}
	return nil
}

// IDArgs is the KeyArgs of tables keyed by a single uuid column.
func IDArgs(id uuid.UUID) []any {
	return []any{id}
}
