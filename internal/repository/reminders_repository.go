package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/starhealth/internal/error_values"
	"github.com/limbo/starhealth/pkg/entity"
)

const starsPerDose = 1

type RemindersRepository struct {
	conn PgConnection
}

func NewRemindersRepoWithConn(conn PgConnection) *RemindersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for remindersRepo: " + err.Error())
	}
	return &RemindersRepository{
		conn: conn,
	}
}

const reminderSelect = `SELECT r.id, r.user_id, r.medication_id, m.name, m.dosage, m.category,
	r.scheduled_time, r.scheduled_minutes, r.status, r.last_taken, r.created_at, r.updated_at
	FROM reminders r JOIN medications m ON m.id = r.medication_id `

func (rr *RemindersRepository) list(ctx context.Context, query string, uid uuid.UUID) ([]*entity.Reminder, error) {
	rows, err := rr.conn.Query(ctx, query, uid)
	if err != nil {
		return nil, errors.New("listing reminders error: " + err.Error())
	}
	defer rows.Close()
	reminders := make([]*entity.Reminder, 0)
	for rows.Next() {
		var r entity.Reminder
		err = rows.Scan(&r.ID, &r.UserID, &r.MedicationID, &r.Medication.Name, &r.Medication.Dosage, &r.Medication.Category,
			&r.ScheduledTime, &r.ScheduledMinutes, &r.Status, &r.LastTaken, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling reminder error: " + err.Error())
		}
		r.Medication.ID = r.MedicationID
		reminders = append(reminders, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return reminders, nil
}

func (rr *RemindersRepository) ListToday(ctx context.Context, uid uuid.UUID) ([]*entity.Reminder, error) {
	return rr.list(ctx, reminderSelect+`WHERE r.user_id = $1 AND r.status IN ('active', 'completed')
		ORDER BY r.scheduled_minutes ASC, r.created_at ASC;`, uid)
}

func (rr *RemindersRepository) ListAll(ctx context.Context, uid uuid.UUID) ([]*entity.Reminder, error) {
	return rr.list(ctx, reminderSelect+`WHERE r.user_id = $1 AND r.status <> 'cancelled'
		ORDER BY r.created_at DESC;`, uid)
}

// MarkTaken is the only way a reminder becomes completed. The status check in
// the UPDATE makes concurrent calls for the same reminder race-free: exactly one
// of them gets a row back.
func (rr *RemindersRepository) MarkTaken(ctx context.Context, id, uid uuid.UUID, takenAt time.Time) (_ *entity.MedicationLog, err error) {
	tx, err := rr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning tx error: " + err.Error())
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	logEntry := &entity.MedicationLog{
		UserID:      uid,
		ReminderID:  id,
		TakenAt:     takenAt,
		StarsEarned: starsPerDose,
	}
	err = tx.QueryRow(ctx, `UPDATE reminders SET status = 'completed', last_taken = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3 AND status = 'active' RETURNING medication_id;`,
		takenAt, id, uid,
	).Scan(&logEntry.MedicationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrReminderNotEligible
		}
		return nil, errors.New("completing reminder error: " + err.Error())
	}

	err = tx.QueryRow(ctx, `INSERT INTO medication_logs (user_id, medication_id, reminder_id, taken_at, stars_earned)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`,
		logEntry.UserID, logEntry.MedicationID, logEntry.ReminderID, logEntry.TakenAt, logEntry.StarsEarned,
	).Scan(&logEntry.ID, &logEntry.CreatedAt)
	if err != nil {
		if pgCode(err) == uniqueViolation {
			return nil, errorvalues.ErrReminderNotEligible
		}
		return nil, errors.New("writing medication log error: " + err.Error())
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing dose error: " + err.Error())
	}
	return logEntry, nil
}

func (rr *RemindersRepository) Cancel(ctx context.Context, id, uid uuid.UUID) error {
	ct, err := rr.conn.Exec(ctx, `UPDATE reminders SET status = 'cancelled', updated_at = NOW() WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("cancelling reminder error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrReminderNotFound
	}
	return nil
}

func (rr *RemindersRepository) ListLogs(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.MedicationLog, error) {
	rows, err := rr.conn.Query(ctx, `SELECT id, user_id, medication_id, reminder_id, taken_at, stars_earned, created_at
		FROM medication_logs WHERE user_id = $1 ORDER BY taken_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("listing medication logs error: " + err.Error())
	}
	defer rows.Close()
	logs := make([]*entity.MedicationLog, 0)
	for rows.Next() {
		var l entity.MedicationLog
		err = rows.Scan(&l.ID, &l.UserID, &l.MedicationID, &l.ReminderID, &l.TakenAt, &l.StarsEarned, &l.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling medication log error: " + err.Error())
		}
		logs = append(logs, &l)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return logs, nil
}
