package errorvalues

import "errors"

var (
	ErrValidation = errors.New("validation error")

	ErrUserExists        = errors.New("such user already exists")
	ErrUserNotFound      = errors.New("user doesn't exists")
	ErrWrongCredentials  = errors.New("wrong email or password")
	ErrEmailNotVerified  = errors.New("email is not verified")
	ErrCodeNotFound      = errors.New("no verification code found")
	ErrCodeExpired       = errors.New("verification code expired")
	ErrInvalidCode       = errors.New("invalid verification code")
	ErrTooManyAttempts   = errors.New("too many invalid codes, request a new one")
	ErrInvalidToken      = errors.New("invalid token")
	ErrFederationOff     = errors.New("google sign-in is not configured")
	ErrFederatedNoEmail  = errors.New("identity token carries no email")
	ErrOwnerNotFound     = errors.New("owner of the record doesn't exist")
	ErrMedicationMissing = errors.New("medication doesn't exist")

	ErrReminderNotFound    = errors.New("reminder doesn't exist")
	ErrReminderNotEligible = errors.New("reminder not found or already taken")
)

// Kind is the closed set of failure classes the API exposes.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindIneligible
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindIneligible:
		return "ineligible"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// KindOf classifies err by the sentinel it wraps. Unknown errors are internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrEmailNotVerified),
		errors.Is(err, ErrCodeNotFound),
		errors.Is(err, ErrCodeExpired),
		errors.Is(err, ErrInvalidCode),
		errors.Is(err, ErrTooManyAttempts),
		errors.Is(err, ErrFederationOff),
		errors.Is(err, ErrFederatedNoEmail):
		return KindValidation
	case errors.Is(err, ErrWrongCredentials), errors.Is(err, ErrInvalidToken):
		return KindUnauthorized
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrOwnerNotFound),
		errors.Is(err, ErrMedicationMissing),
		errors.Is(err, ErrReminderNotFound):
		return KindNotFound
	case errors.Is(err, ErrReminderNotEligible):
		return KindIneligible
	case errors.Is(err, ErrUserExists):
		return KindConflict
	default:
		return KindInternal
	}
}
