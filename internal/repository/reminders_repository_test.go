package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/starhealth/internal/error_values"
	"github.com/limbo/starhealth/internal/repository"
	"github.com/limbo/starhealth/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reminderCols = []string{"id", "user_id", "medication_id", "name", "dosage", "category",
	"scheduled_time", "scheduled_minutes", "status", "last_taken", "created_at", "updated_at"}

func TestListTodayReminders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewRemindersRepoWithConn(mock)
	ctx := context.Background()
	now := time.Now()
	medID := uuid.New()
	query := regexp.QuoteMeta(`WHERE r.user_id = $1 AND r.status IN ('active', 'completed')`)
	t.Run("ordered by time of day", func(t *testing.T) {
		rows := pgxmock.NewRows(reminderCols).
			AddRow(uuid.New(), userID, medID, "Aspirin", "1", "flexible", "8:00 AM", 480, entity.ReminderCompleted, &now, now, now).
			AddRow(uuid.New(), userID, medID, "Aspirin", "1", "flexible", "9:00 PM", 1260, entity.ReminderActive, (*time.Time)(nil), now, now)
		mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)
		reminders, err := repo.ListToday(ctx, userID)
		require.NoError(t, err)
		require.Len(t, reminders, 2)
		assert.Equal(t, entity.ReminderCompleted, reminders[0].Status)
		assert.Equal(t, medID, reminders[0].Medication.ID)
		assert.Equal(t, "Aspirin", reminders[1].Medication.Name)
		assert.Nil(t, reminders[1].LastTaken)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
		_, err := repo.ListToday(ctx, userID)
		assert.Error(t, err)
	})
}

func TestListAllReminders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewRemindersRepoWithConn(mock)
	query := regexp.QuoteMeta(`WHERE r.user_id = $1 AND r.status <> 'cancelled'`)
	mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(pgxmock.NewRows(reminderCols))
	reminders, err := repo.ListAll(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, reminders)
}

func TestMarkTaken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewRemindersRepoWithConn(mock)
	ctx := context.Background()
	id, medID, logID := uuid.New(), uuid.New(), uuid.New()
	takenAt := time.Now()
	update := regexp.QuoteMeta(`WHERE id = $2 AND user_id = $3 AND status = 'active' RETURNING medication_id;`)
	insert := regexp.QuoteMeta(`INSERT INTO medication_logs (user_id, medication_id, reminder_id, taken_at, stars_earned)`)
	t.Run("taken", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(update).WithArgs(takenAt, id, userID).
			WillReturnRows(pgxmock.NewRows([]string{"medication_id"}).AddRow(medID))
		mock.ExpectQuery(insert).WithArgs(userID, medID, id, takenAt, 1).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(logID, takenAt))
		mock.ExpectCommit()
		entry, err := repo.MarkTaken(ctx, id, userID, takenAt)
		require.NoError(t, err)
		assert.Equal(t, logID, entry.ID)
		assert.Equal(t, medID, entry.MedicationID)
		assert.Equal(t, id, entry.ReminderID)
		assert.Equal(t, 1, entry.StarsEarned)
	})
	t.Run("already taken or cancelled", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(update).WithArgs(takenAt, id, userID).WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()
		_, err := repo.MarkTaken(ctx, id, userID, takenAt)
		assert.ErrorIs(t, err, errorvalues.ErrReminderNotEligible)
	})
	t.Run("duplicate log", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(update).WithArgs(takenAt, id, userID).
			WillReturnRows(pgxmock.NewRows([]string{"medication_id"}).AddRow(medID))
		mock.ExpectQuery(insert).WithArgs(userID, medID, id, takenAt, 1).WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()
		_, err := repo.MarkTaken(ctx, id, userID, takenAt)
		assert.ErrorIs(t, err, errorvalues.ErrReminderNotEligible)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(update).WithArgs(takenAt, id, userID).WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		_, err := repo.MarkTaken(ctx, id, userID, takenAt)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrReminderNotEligible)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelReminder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewRemindersRepoWithConn(mock)
	ctx := context.Background()
	id := uuid.New()
	query := regexp.QuoteMeta(`UPDATE reminders SET status = 'cancelled', updated_at = NOW() WHERE id = $1 AND user_id = $2;`)
	t.Run("cancelled", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id, userID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Cancel(ctx, id, userID))
	})
	t.Run("cancel again", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id, userID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Cancel(ctx, id, userID))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id, userID).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Cancel(ctx, id, userID), errorvalues.ErrReminderNotFound)
	})
}

func TestListLogs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewRemindersRepoWithConn(mock)
	now := time.Now()
	query := regexp.QuoteMeta(`FROM medication_logs WHERE user_id = $1 ORDER BY taken_at DESC LIMIT $2 OFFSET $3;`)
	mock.ExpectQuery(query).WithArgs(userID, 10, 20).WillReturnRows(
		pgxmock.NewRows([]string{"id", "user_id", "medication_id", "reminder_id", "taken_at", "stars_earned", "created_at"}).
			AddRow(uuid.New(), userID, uuid.New(), uuid.New(), now, 1, now))
	logs, err := repo.ListLogs(context.Background(), userID, 10, 20)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 1, logs[0].StarsEarned)
}
