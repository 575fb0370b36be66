package notify

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRepoGetMissingKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &stateRepo{db: db}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM app_state")).
		WithArgs(LastOpenDateKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err = repo.Get(context.Background(), LastOpenDateKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStateRepoRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &stateRepo{db: db}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO app_state")).
		WithArgs(LastOpenDateKey, "2024-01-02").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM app_state")).
		WithArgs(LastOpenDateKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("2024-01-02"))

	require.NoError(t, repo.Set(context.Background(), LastOpenDateKey, "2024-01-02"))

	got, err := repo.Get(context.Background(), LastOpenDateKey)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepoCancelPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &scheduleRepo{db: db}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET status")).
		WithArgs(StatusCancelled, StatusPending).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.CancelPending(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepoGetPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &scheduleRepo{db: db}
	fireAt := time.Now().Add(time.Hour)

	rows := sqlmock.NewRows([]string{
		"id", "title", "body", "reference", "fire_at", "status", "created_at", "delivered_at",
	}).AddRow("abc", "Your daily verse", "text", "John 3:16", fireAt, string(StatusPending), time.Now(), nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM notifications")).
		WithArgs(StatusPending).
		WillReturnRows(rows)

	pending, err := repo.GetPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "abc", pending[0].ID)
	assert.Nil(t, pending[0].DeliveredAt)
}
