package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres"
	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres/testutil"
	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
)

type widget struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
	Size int       `db:"size"`
}

type pairKey struct{ A, B uuid.UUID }

type pair struct {
	A     uuid.UUID `db:"a"`
	B     uuid.UUID `db:"b"`
	Label string    `db:"label"`
}

func newWidgets(q postgres.Querier) *postgres.Table[widget, uuid.UUID] {
	return postgres.MustNewTable(q, postgres.TableConfig[widget, uuid.UUID]{
		Name:    "widgets",
		Entity:  "widget",
		Keys:    []string{"id"},
		Columns: []string{"name", "size"},
		OrderBy: []string{"name"},
		KeyArgs: func(id uuid.UUID) []any { return []any{id} },
		Values:  func(w *widget) []any { return []any{w.ID, w.Name, w.Size} },
	})
}

func newPairs(q postgres.Querier) *postgres.Table[pair, pairKey] {
	return postgres.MustNewTable(q, postgres.TableConfig[pair, pairKey]{
		Name:    "pairs",
		Keys:    []string{"a", "b"},
		Columns: []string{"label"},
		KeyArgs: func(k pairKey) []any { return []any{k.A, k.B} },
		Values:  func(p *pair) []any { return []any{p.A, p.B, p.Label} },
	})
}

func TestTable_GetByID(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "name", "size"}).AddRow(id, "bolt", 3)
				mock.ExpectQuery(regexp.QuoteMeta(
					"SELECT widgets.id, widgets.name, widgets.size FROM widgets WHERE widgets.id = $1",
				)).WithArgs(id).WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT`).WithArgs(id).WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "no rows returned",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT`).WithArgs(id).
					WillReturnRows(pgxmock.NewRows([]string{"id", "name", "size"}))
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testutil.NewMockQuerier(t)
			tt.setup(mock)

			got, err := newWidgets(mock).GetByID(context.Background(), id)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetByID() error = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("GetByID() unexpected error: %v", err)
				}
				if got.ID != id || got.Name != "bolt" || got.Size != 3 {
					t.Errorf("GetByID() = %+v", got)
				}
			}

			testutil.ExpectationsWereMet(t, mock)
		})
	}
}

func TestTable_List_EmptyIsNotNil(t *testing.T) {
	mock := testutil.NewMockQuerier(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM widgets ORDER BY widgets.name")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "size"}))

	got, err := newWidgets(mock).List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("List() = %#v, want empty non-nil slice", got)
	}

	testutil.ExpectationsWereMet(t, mock)
}

func TestTable_List_ReturnsRows(t *testing.T) {
	mock := testutil.NewMockQuerier(t)
	rows := pgxmock.NewRows([]string{"id", "name", "size"}).
		AddRow(uuid.New(), "a", 1).
		AddRow(uuid.New(), "b", 2)
	mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

	got, err := newWidgets(mock).List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() len = %d, want 2", len(got))
	}

	testutil.ExpectationsWereMet(t, mock)
}

func TestTable_Create(t *testing.T) {
	w := &widget{ID: uuid.New(), Name: "nut", Size: 1}

	t.Run("inserts all columns", func(t *testing.T) {
		mock := testutil.NewMockQuerier(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO widgets (id,name,size) VALUES ($1,$2,$3)")).
			WithArgs(w.ID, w.Name, w.Size).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		if err := newWidgets(mock).Create(context.Background(), w); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
		testutil.ExpectationsWereMet(t, mock)
	})

	t.Run("duplicate key", func(t *testing.T) {
		mock := testutil.NewMockQuerier(t)
		mock.ExpectExec(`INSERT INTO widgets`).
			WithArgs(w.ID, w.Name, w.Size).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := newWidgets(mock).Create(context.Background(), w)
		if !errors.Is(err, domain.ErrAlreadyExists) {
			t.Fatalf("Create() error = %v, want ErrAlreadyExists", err)
		}
		testutil.ExpectationsWereMet(t, mock)
	})
}

func TestTable_Update_ReplacesNonKeyColumns(t *testing.T) {
	w := &widget{ID: uuid.New(), Name: "washer", Size: 7}

	mock := testutil.NewMockQuerier(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE widgets SET name = $1, size = $2 WHERE id = $3")).
		WithArgs(w.Name, w.Size, w.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	if err := newWidgets(mock).Update(context.Background(), w); err != nil {
		t.Fatalf("Update() of a missing row should not fail: %v", err)
	}
	testutil.ExpectationsWereMet(t, mock)
}

func TestTable_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("missing row is not an error", func(t *testing.T) {
		mock := testutil.NewMockQuerier(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM widgets WHERE id = $1")).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		if err := newWidgets(mock).Delete(context.Background(), id); err != nil {
			t.Fatalf("Delete() unexpected error: %v", err)
		}
		testutil.ExpectationsWereMet(t, mock)
	})

	t.Run("still referenced", func(t *testing.T) {
		mock := testutil.NewMockQuerier(t)
		mock.ExpectExec(`DELETE FROM widgets`).
			WithArgs(id).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		err := newWidgets(mock).Delete(context.Background(), id)
		if !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("Delete() error = %v, want ErrConflict", err)
		}
		testutil.ExpectationsWereMet(t, mock)
	})
}

func TestTable_CompositeKey(t *testing.T) {
	k := pairKey{A: uuid.New(), B: uuid.New()}

	mock := testutil.NewMockQuerier(t)
	rows := pgxmock.NewRows([]string{"a", "b", "label"}).AddRow(k.A, k.B, "x")
	mock.ExpectQuery(regexp.QuoteMeta("WHERE pairs.a = $1 AND pairs.b = $2")).
		WithArgs(k.A, k.B).
		WillReturnRows(rows)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pairs WHERE a = $1 AND b = $2")).
		WithArgs(k.A, k.B).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	table := newPairs(mock)
	got, err := table.GetByID(context.Background(), k)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if got.Label != "x" {
		t.Errorf("GetByID().Label = %q, want x", got.Label)
	}
	if err := table.Delete(context.Background(), k); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}

	testutil.ExpectationsWereMet(t, mock)
}

func TestTable_Count(t *testing.T) {
	mock := testutil.NewMockQuerier(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM widgets WHERE name = $1")).
		WithArgs("bolt").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	n, err := newWidgets(mock).Count(context.Background(), squirrel.Eq{"name": "bolt"})
	if err != nil {
		t.Fatalf("Count() unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}

	testutil.ExpectationsWereMet(t, mock)
}

func TestMustNewTable_PanicsOnIncompleteConfig(t *testing.T) {
	mock := testutil.NewMockQuerier(t)

	defer func() {
		if recover() == nil {
			t.Fatal("MustNewTable should panic without keys")
		}
	}()
	postgres.MustNewTable(mock, postgres.TableConfig[widget, uuid.UUID]{Name: "widgets"})
}
