package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/starhealth/internal/error_values"
	"github.com/limbo/starhealth/internal/repository"
	"github.com/limbo/starhealth/pkg/entity"
)

type RemindersService struct {
	repo         repository.RemindersRepositoryI
	gamification GamificationServiceI
	loc          *time.Location
	now          func() time.Time
}

func NewRemindersService(remindersRepo repository.RemindersRepositoryI, gamification GamificationServiceI, loc *time.Location) *RemindersService {
	if remindersRepo == nil || gamification == nil {
		log.Fatal("on reminders service provided nil dependencies")
	}
	if loc == nil {
		loc = time.Local
	}
	return &RemindersService{
		repo:         remindersRepo,
		gamification: gamification,
		loc:          loc,
		now:          time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (rs *RemindersService) WithClock(now func() time.Time) *RemindersService {
	rs.now = now
	return rs
}

func (rs *RemindersService) decorate(reminders []*entity.Reminder) []*entity.Reminder {
	local := rs.now().In(rs.loc)
	minute := local.Hour()*60 + local.Minute()
	for _, r := range reminders {
		r.DisplayStatus = r.ViewStatus(minute)
	}
	return reminders
}

func (rs *RemindersService) Today(ctx context.Context, uid uuid.UUID) ([]*entity.Reminder, error) {
	reminders, err := rs.repo.ListToday(ctx, uid)
	if err != nil {
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	return rs.decorate(reminders), nil
}

func (rs *RemindersService) All(ctx context.Context, uid uuid.UUID) ([]*entity.Reminder, error) {
	reminders, err := rs.repo.ListAll(ctx, uid)
	if err != nil {
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	return rs.decorate(reminders), nil
}

// MarkTaken completes the reminder first and rewards afterwards. If the reward
// fails the dose stays recorded and the caller gets an internal error.
func (rs *RemindersService) MarkTaken(ctx context.Context, id, uid uuid.UUID) (*entity.GamificationSnapshot, error) {
	_, err := rs.repo.MarkTaken(ctx, id, uid, rs.now())
	if err != nil {
		if errors.Is(err, errorvalues.ErrReminderNotEligible) {
			return nil, err
		}
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	snapshot, err := rs.gamification.ApplyTakenEvent(ctx, uid)
	if err != nil {
		return nil, errors.New("gamification error: " + err.Error())
	}
	return snapshot, nil
}

func (rs *RemindersService) Cancel(ctx context.Context, id, uid uuid.UUID) error {
	err := rs.repo.Cancel(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrReminderNotFound) {
			return err
		}
		return errors.New("reminders repository error: " + err.Error())
	}
	return nil
}

func (rs *RemindersService) History(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.MedicationLog, error) {
	logs, err := rs.repo.ListLogs(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	return logs, nil
}
