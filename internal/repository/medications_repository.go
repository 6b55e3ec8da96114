package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/starhealth/internal/error_values"
	"github.com/limbo/starhealth/pkg/entity"
)

type MedicationsRepository struct {
	conn PgConnection
}

func NewMedicationsRepoWithConn(conn PgConnection) *MedicationsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for medicationsRepo: " + err.Error())
	}
	return &MedicationsRepository{
		conn: conn,
	}
}

const medicationColumns = `id, user_id, name, dosage, category, timer_hours, timer_minutes, timer_period, is_active, created_at, updated_at`

func scanMedication(row pgx.Row) (*entity.Medication, error) {
	var m entity.Medication
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Category,
		&m.Timer.Hours, &m.Timer.Minutes, &m.Timer.Period, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (mr *MedicationsRepository) Create(ctx context.Context, med *entity.Medication) (_ *entity.Medication, _ *entity.Reminder, err error) {
	tx, err := mr.conn.Begin(ctx)
	if err != nil {
		return nil, nil, errors.New("beginning tx error: " + err.Error())
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	created := *med
	created.IsActive = true
	err = tx.QueryRow(ctx, `INSERT INTO medications (user_id, name, dosage, category, timer_hours, timer_minutes, timer_period)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at;`,
		med.UserID, med.Name, med.Dosage, med.Category, med.Timer.Hours, med.Timer.Minutes, med.Timer.Period,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if pgCode(err) == foreignKeyViolation {
			return nil, nil, errorvalues.ErrOwnerNotFound
		}
		return nil, nil, errors.New("creating medication error: " + err.Error())
	}

	reminder := &entity.Reminder{
		UserID:       created.UserID,
		MedicationID: created.ID,
		Medication: entity.MedicationSummary{
			ID:       created.ID,
			Name:     created.Name,
			Dosage:   created.Dosage,
			Category: created.Category,
		},
		ScheduledTime:    created.Timer.ScheduledTime(),
		ScheduledMinutes: created.Timer.MinuteOfDay(),
		Status:           entity.ReminderActive,
	}
	err = tx.QueryRow(ctx, `INSERT INTO reminders (user_id, medication_id, scheduled_time, scheduled_minutes)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at;`,
		reminder.UserID, reminder.MedicationID, reminder.ScheduledTime, reminder.ScheduledMinutes,
	).Scan(&reminder.ID, &reminder.CreatedAt, &reminder.UpdatedAt)
	if err != nil {
		return nil, nil, errors.New("creating reminder error: " + err.Error())
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, nil, errors.New("committing medication error: " + err.Error())
	}
	return &created, reminder, nil
}

func (mr *MedicationsRepository) GetByID(ctx context.Context, id, uid uuid.UUID) (*entity.Medication, error) {
	med, err := scanMedication(mr.conn.QueryRow(ctx, `SELECT `+medicationColumns+` FROM medications
		WHERE id = $1 AND user_id = $2 AND is_active;`, id, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMedicationMissing
		}
		return nil, errors.New("getting medication by id error: " + err.Error())
	}
	return med, nil
}

func (mr *MedicationsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Medication, error) {
	rows, err := mr.conn.Query(ctx, `SELECT `+medicationColumns+` FROM medications
		WHERE user_id = $1 AND is_active ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting medications by uid error: " + err.Error())
	}
	defer rows.Close()
	meds := make([]*entity.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, errors.New("unmarshalling medication error: " + err.Error())
		}
		meds = append(meds, m)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return meds, nil
}

func (mr *MedicationsRepository) Update(ctx context.Context, med *entity.Medication) (err error) {
	tx, err := mr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning tx error: " + err.Error())
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	ct, err := tx.Exec(ctx, `UPDATE medications SET name = $1, dosage = $2, category = $3, timer_hours = $4,
		timer_minutes = $5, timer_period = $6, updated_at = NOW() WHERE id = $7 AND user_id = $8 AND is_active;`,
		med.Name, med.Dosage, med.Category, med.Timer.Hours, med.Timer.Minutes, med.Timer.Period, med.ID, med.UserID)
	if err != nil {
		return errors.New("updating medication error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMedicationMissing
	}
	_, err = tx.Exec(ctx, `UPDATE reminders SET scheduled_time = $1, scheduled_minutes = $2, updated_at = NOW()
		WHERE medication_id = $3 AND status = 'active';`,
		med.Timer.ScheduledTime(), med.Timer.MinuteOfDay(), med.ID)
	if err != nil {
		return errors.New("rescheduling reminders error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing medication update error: " + err.Error())
	}
	return nil
}

func (mr *MedicationsRepository) Deactivate(ctx context.Context, id, uid uuid.UUID) (_ int64, err error) {
	tx, err := mr.conn.Begin(ctx)
	if err != nil {
		return 0, errors.New("beginning tx error: " + err.Error())
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	ct, err := tx.Exec(ctx, `UPDATE medications SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND is_active;`, id, uid)
	if err != nil {
		return 0, errors.New("deactivating medication error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return 0, errorvalues.ErrMedicationMissing
	}
	ct, err = tx.Exec(ctx, `UPDATE reminders SET status = 'cancelled', updated_at = NOW()
		WHERE medication_id = $1 AND status <> 'cancelled';`, id)
	if err != nil {
		return 0, errors.New("cancelling reminders error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, errors.New("committing medication removal error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
