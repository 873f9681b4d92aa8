package caremoment_test

import (
	"bytes"
	"context"
	"regexp"
	"testing"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres/caremoment"
	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres/testhelper"
	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres/testutil"
	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
)

func TestRepo_Create_SQL(t *testing.T) {
	url := "https://example.org/insulin"
	cm := &domain.CareMoment{ID: uuid.New(), Name: "Insulin", URL: &url, Picture: []byte{1, 2}, TimeDurationInMin: 20}

	mock := testutil.NewMockQuerier(t)
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO care_moments (id,name,url,picture,time_duration_in_min) VALUES ($1,$2,$3,$4,$5)",
	)).
		WithArgs(cm.ID, cm.Name, cm.URL, cm.Picture, cm.TimeDurationInMin).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := caremoment.New(mock).Create(context.Background(), cm); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	testutil.ExpectationsWereMet(t, mock)
}

func TestRepo_PictureRoundTrip(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := caremoment.New(pool)
	ctx := context.Background()

	cm := &domain.CareMoment{ID: uuid.New(), Name: "Carb counting", Picture: []byte{0x89, 0x50, 0x4e, 0x47}, TimeDurationInMin: 30}
	if err := repo.Create(ctx, cm); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, cm.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !bytes.Equal(got.Picture, cm.Picture) {
		t.Errorf("Picture = %v, want %v", got.Picture, cm.Picture)
	}
	if got.URL != nil {
		t.Errorf("URL = %v, want nil", got.URL)
	}
}
