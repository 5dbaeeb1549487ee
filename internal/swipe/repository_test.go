package swipe

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkd-app/sparkd/internal/database"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return NewRepository(database.NewBunDB(sqlDB)), mock
}

func TestRecordRunsUpdateAndInsertInOneTransaction(t *testing.T) {
	repo, mock := newMockRepository(t)
	userID := uuid.New()
	targetID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" .*`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "swipes" .*`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(uuid.New(), time.Now(), time.Now()))
	mock.ExpectCommit()

	err := repo.Record(context.Background(), userID, targetID, 5)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRollsBackWhenCountUpdateFails(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" .*`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.Record(context.Background(), uuid.New(), uuid.New(), 5)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTargetIDsSince(t *testing.T) {
	repo, mock := newMockRepository(t)
	first := uuid.New()
	second := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "swipes" .*`).
		WillReturnRows(sqlmock.NewRows([]string{"swiped_id"}).
			AddRow(first).
			AddRow(second))

	ids, err := repo.ListTargetIDsSince(context.Background(), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first, second}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOwnedSinceNoRows(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT .* FROM "swipes" .*`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "swiped_id", "action", "created_at", "updated_at"}))

	_, err := repo.GetOwnedSince(context.Background(), uuid.New(), uuid.New(), time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOwnedSinceFound(t *testing.T) {
	repo, mock := newMockRepository(t)
	id := uuid.New()
	userID := uuid.New()
	targetID := uuid.New()
	created := time.Now().Add(-time.Hour)

	mock.ExpectQuery(`SELECT .* FROM "swipes" .*`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "swiped_id", "action", "created_at", "updated_at"}).
			AddRow(id, userID, targetID, "PASS", created, created))

	got, err := repo.GetOwnedSince(context.Background(), id, userID, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, ActionPass, got.Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateActionNoMatchingRow(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`UPDATE "swipes" .* RETURNING \*`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "swiped_id", "action", "created_at", "updated_at"}))

	_, err := repo.UpdateAction(context.Background(), uuid.New(), ActionLike)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateActionReturnsUpdatedRow(t *testing.T) {
	repo, mock := newMockRepository(t)
	id := uuid.New()
	userID := uuid.New()
	targetID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`UPDATE "swipes" .* RETURNING \*`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "swiped_id", "action", "created_at", "updated_at"}).
			AddRow(id, userID, targetID, "LIKE", now.Add(-time.Hour), now))

	got, err := repo.UpdateAction(context.Background(), id, ActionLike)
	require.NoError(t, err)
	assert.Equal(t, ActionLike, got.Action)
	assert.Equal(t, targetID, got.SwipedID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
