package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/starhealth/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mocks.go -package=mocks

type UsersRepositoryI interface {
	// Stores a code for an email that has no password yet, creating the user row if needed.
	// Returns ErrUserExists when the email already belongs to a registered account
	SaveSignupCode(ctx context.Context, email, codeHash string, expires time.Time) error
	// Replaces the code of a registered user with a password reset code
	SaveResetCode(ctx context.Context, email, codeHash string, expires time.Time) error
	// Counts a wrong code submission and clears the code once maxAttempts is reached.
	// Returns the attempts made so far, ErrCodeNotFound if there is no code anymore
	RecordFailedAttempt(ctx context.Context, uid uuid.UUID, maxAttempts int) (int, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Sets verified flag and clears the code
	MarkEmailVerified(ctx context.Context, uid uuid.UUID) error
	// Sets name and password of a verified user that has no password yet
	CompleteRegistration(ctx context.Context, uid uuid.UUID, name, passwordHash string) error
	// Sets new password and clears the code
	UpdatePassword(ctx context.Context, uid uuid.UUID, passwordHash string) error
	// Sets the non-nil profile fields and returns the updated user
	UpdateProfile(ctx context.Context, uid uuid.UUID, upd entity.ProfileUpdate) (*entity.User, error)
	// Creates or verifies a user signed in through Google
	UpsertFederated(ctx context.Context, email, name string) (*entity.User, error)
	// Removes codes which expired before now. Returns how many were cleared
	ClearExpiredCodes(ctx context.Context, now time.Time) (int64, error)
}

type MedicationsRepositoryI interface {
	// Creates medication with its single active reminder in one transaction
	Create(ctx context.Context, med *entity.Medication) (*entity.Medication, *entity.Reminder, error)
	// Searches active medication with id owned by uid
	GetByID(ctx context.Context, id, uid uuid.UUID) (*entity.Medication, error)
	// Lists active medications of the user, newest first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Medication, error)
	// Updates medication and reschedules its active reminders
	Update(ctx context.Context, med *entity.Medication) error
	// Soft deletes medication and cancels its reminders. Returns count of cancelled reminders
	Deactivate(ctx context.Context, id, uid uuid.UUID) (int64, error)
}

type RemindersRepositoryI interface {
	// Active and completed reminders ordered by time of day
	ListToday(ctx context.Context, uid uuid.UUID) ([]*entity.Reminder, error)
	// All non-cancelled reminders, newest first
	ListAll(ctx context.Context, uid uuid.UUID) ([]*entity.Reminder, error)
	// Moves active reminder to completed and writes the log atomically
	MarkTaken(ctx context.Context, id, uid uuid.UUID, takenAt time.Time) (*entity.MedicationLog, error)
	// Cancels reminder in any state
	Cancel(ctx context.Context, id, uid uuid.UUID) error
	// Taken doses of the user, newest first
	ListLogs(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.MedicationLog, error)
}

type GamificationRepositoryI interface {
	GetOrCreate(ctx context.Context, uid uuid.UUID) (*entity.Gamification, error)
	// Applies fn to the locked record and persists the result in one transaction
	Apply(ctx context.Context, uid uuid.UUID, fn func(g *entity.Gamification) error) (*entity.Gamification, error)
}
