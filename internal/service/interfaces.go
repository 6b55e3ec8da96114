package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/starhealth/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

type VerifyCodeRequest struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,otp"`
}

type RegisterRequest struct {
	Name     string `validate:"required,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,pwbytes"`
}

type ResetPasswordRequest struct {
	Email       string `validate:"required,email"`
	Code        string `validate:"required,otp"`
	NewPassword string `validate:"required,min=6,pwbytes"`
}

// UpdateProfileRequest changes only the fields that are set
type UpdateProfileRequest struct {
	Name    *string `validate:"omitnil,required,max=100"`
	Dob     *string `validate:"omitnil,dob"`
	Disease *string `validate:"omitnil,max=200"`
}

type TimerRequest struct {
	Hours   int    `validate:"min=1,max=12"`
	Minutes int    `validate:"min=0,max=59"`
	Period  string `validate:"required,period"`
}

type MedicationRequest struct {
	Name     string `validate:"required,max=200"`
	Dosage   string `validate:"max=100"`
	Category string `validate:"max=50"`
	Timer    TimerRequest
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Generates a code for a new email and mails it
	SendVerificationCode(ctx context.Context, email string) error
	// Checks the code and marks email as verified
	VerifyCode(ctx context.Context, req *VerifyCodeRequest) error
	// Sets name and password of a verified email. Returns registered user
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	// Mails a reset code. Unknown emails are silently ignored
	SendResetCode(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *ResetPasswordRequest) error
	// Signs in with a Google ID token, creating the user on first use
	LoginWithGoogle(ctx context.Context, idToken string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Changes name, date of birth or disease of the user. Returns updated user
	UpdateProfile(ctx context.Context, uid uuid.UUID, req *UpdateProfileRequest) (*entity.User, error)
}

type MedicationsServiceI interface {
	// Creates medication with its reminder
	Create(ctx context.Context, uid uuid.UUID, req *MedicationRequest) (*entity.Medication, *entity.Reminder, error)
	List(ctx context.Context, uid uuid.UUID) ([]*entity.Medication, error)
	Get(ctx context.Context, id, uid uuid.UUID) (*entity.Medication, error)
	Update(ctx context.Context, id, uid uuid.UUID, req *MedicationRequest) (*entity.Medication, error)
	// Soft deletes medication and cancels its reminders
	Delete(ctx context.Context, id, uid uuid.UUID) (int64, error)
}

type RemindersServiceI interface {
	Today(ctx context.Context, uid uuid.UUID) ([]*entity.Reminder, error)
	All(ctx context.Context, uid uuid.UUID) ([]*entity.Reminder, error)
	// Completes reminder and rewards the user. Returns updated gamification state
	MarkTaken(ctx context.Context, id, uid uuid.UUID) (*entity.GamificationSnapshot, error)
	Cancel(ctx context.Context, id, uid uuid.UUID) error
	History(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.MedicationLog, error)
}

type GamificationServiceI interface {
	// Lazily creates the default record
	Ensure(ctx context.Context, uid uuid.UUID) error
	ApplyTakenEvent(ctx context.Context, uid uuid.UUID) (*entity.GamificationSnapshot, error)
	Score(ctx context.Context, uid uuid.UUID) (*entity.Score, error)
	Planet(ctx context.Context, uid uuid.UUID) (*entity.PlanetStatus, error)
	Streak(ctx context.Context, uid uuid.UUID) (*entity.Streak, error)
}
