package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/starhealth/internal/error_values"
	"github.com/limbo/starhealth/internal/repository"
	"github.com/limbo/starhealth/pkg/entity"
	"github.com/limbo/starhealth/pkg/googleauth"
	"github.com/limbo/starhealth/pkg/mailer"
	"golang.org/x/crypto/bcrypt"
)

const (
	passwordCost   = 10
	defaultCodeTTL = 15 * time.Minute
	// Wrong submissions allowed before the stored code is dropped
	maxCodeAttempts = 5
)

type CodeMailer interface {
	SendCode(ctx context.Context, to string, purpose mailer.Purpose, code string) error
}

type IdentityVerifier interface {
	Enabled() bool
	Verify(ctx context.Context, token string) (*googleauth.Identity, error)
}

type UserServiceOptions struct {
	Users        repository.UsersRepositoryI
	Gamification GamificationServiceI
	Mailer       CodeMailer
	Verifier     IdentityVerifier
	CodeTTL      time.Duration

	// Optional, used by tests
	Clock         func() time.Time
	CodeGenerator func() (string, error)
}

type UserService struct {
	repo         repository.UsersRepositoryI
	gamification GamificationServiceI
	mailer       CodeMailer
	verifier     IdentityVerifier
	codeTTL      time.Duration
	now          func() time.Time
	newCode      func() (string, error)
}

func NewUserService(opts UserServiceOptions) *UserService {
	if opts.Users == nil || opts.Gamification == nil || opts.Mailer == nil {
		log.Fatal("provided nil dependency for userService")
	}
	us := &UserService{
		repo:         opts.Users,
		gamification: opts.Gamification,
		mailer:       opts.Mailer,
		verifier:     opts.Verifier,
		codeTTL:      opts.CodeTTL,
		now:          opts.Clock,
		newCode:      opts.CodeGenerator,
	}
	if us.codeTTL <= 0 {
		us.codeTTL = defaultCodeTTL
	}
	if us.now == nil {
		us.now = time.Now
	}
	if us.newCode == nil {
		us.newCode = GenerateCode
	}
	return us
}

type emailRequest struct {
	Email string `validate:"required,email"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password must be at most %d bytes", errorvalues.ErrValidation, maxPasswordBytes)
		}
		return "", errors.New("hashing password error: " + err.Error())
	}
	return string(hash), nil
}

func (us *UserService) SendVerificationCode(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if err := validateStruct(emailRequest{Email: email}); err != nil {
		return err
	}
	code, err := us.newCode()
	if err != nil {
		return errors.New("generating code error: " + err.Error())
	}
	err = us.repo.SaveSignupCode(ctx, email, HashCode(code), us.now().Add(us.codeTTL))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return err
		}
		return errors.New("users repository error: " + err.Error())
	}
	if err = us.mailer.SendCode(ctx, email, mailer.PurposeVerification, code); err != nil {
		return errors.New("sending code error: " + err.Error())
	}
	return nil
}

// checkCode loads the user of email and compares the submitted code with the stored one.
// A code issued for another purpose is treated as missing. Every mismatch is counted and
// the code is dropped after maxCodeAttempts.
func (us *UserService) checkCode(ctx context.Context, email, code, purpose string) (*entity.User, error) {
	user, err := us.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrCodeNotFound
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	if user.VerificationCode == "" || user.VerificationCodeExpires == nil || user.CodePurpose != purpose {
		return nil, errorvalues.ErrCodeNotFound
	}
	if us.now().After(*user.VerificationCodeExpires) {
		return nil, errorvalues.ErrCodeExpired
	}
	if !codeMatches(code, user.VerificationCode) {
		attempts, err := us.repo.RecordFailedAttempt(ctx, user.ID, maxCodeAttempts)
		if err != nil {
			if errors.Is(err, errorvalues.ErrCodeNotFound) {
				return nil, err
			}
			return nil, errors.New("users repository error: " + err.Error())
		}
		if attempts >= maxCodeAttempts {
			return nil, errorvalues.ErrTooManyAttempts
		}
		return nil, errorvalues.ErrInvalidCode
	}
	return user, nil
}

func (us *UserService) VerifyCode(ctx context.Context, req *VerifyCodeRequest) error {
	req.Email = normalizeEmail(req.Email)
	req.Code = strings.TrimSpace(req.Code)
	if err := validateStruct(req); err != nil {
		return err
	}
	user, err := us.checkCode(ctx, req.Email, req.Code, entity.CodePurposeVerification)
	if err != nil {
		return err
	}
	if err = us.repo.MarkEmailVerified(ctx, user.ID); err != nil {
		return errors.New("users repository error: " + err.Error())
	}
	return nil
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	req.Email = normalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user, err := us.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrEmailNotVerified
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	if user.Registered() {
		return nil, errorvalues.ErrUserExists
	}
	if !user.IsEmailVerified {
		return nil, errorvalues.ErrEmailNotVerified
	}
	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	err = us.repo.CompleteRegistration(ctx, user.ID, req.Name, passwordHash)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	if err = us.gamification.Ensure(ctx, user.ID); err != nil {
		return nil, err
	}
	user.Name = req.Name
	user.PasswordHash = passwordHash
	return user, nil
}

func (us *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := us.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	if !user.Registered() {
		return nil, errorvalues.ErrWrongCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) SendResetCode(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if err := validateStruct(emailRequest{Email: email}); err != nil {
		return err
	}
	user, err := us.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil
		}
		return errors.New("users repository error: " + err.Error())
	}
	if !user.Registered() {
		return nil
	}
	code, err := us.newCode()
	if err != nil {
		return errors.New("generating code error: " + err.Error())
	}
	if err = us.repo.SaveResetCode(ctx, email, HashCode(code), us.now().Add(us.codeTTL)); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil
		}
		return errors.New("users repository error: " + err.Error())
	}
	if err = us.mailer.SendCode(ctx, email, mailer.PurposeReset, code); err != nil {
		return errors.New("sending code error: " + err.Error())
	}
	return nil
}

func (us *UserService) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	req.Email = normalizeEmail(req.Email)
	req.Code = strings.TrimSpace(req.Code)
	if err := validateStruct(req); err != nil {
		return err
	}
	user, err := us.checkCode(ctx, req.Email, req.Code, entity.CodePurposeReset)
	if err != nil {
		return err
	}
	passwordHash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err = us.repo.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return errors.New("users repository error: " + err.Error())
	}
	return nil
}

func (us *UserService) LoginWithGoogle(ctx context.Context, idToken string) (*entity.User, error) {
	if us.verifier == nil || !us.verifier.Enabled() {
		return nil, errorvalues.ErrFederationOff
	}
	if strings.TrimSpace(idToken) == "" {
		return nil, fmt.Errorf("%w: idtoken is required", errorvalues.ErrValidation)
	}
	identity, err := us.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorvalues.ErrInvalidToken, err)
	}
	if identity.Email == "" || !identity.EmailVerified {
		return nil, errorvalues.ErrFederatedNoEmail
	}
	user, err := us.repo.UpsertFederated(ctx, identity.Email, identity.Name)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	if err = us.gamification.Ensure(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, uid uuid.UUID, req *UpdateProfileRequest) (*entity.User, error) {
	for _, field := range []*string{req.Name, req.Dob, req.Disease} {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}
	if req.Name == nil && req.Dob == nil && req.Disease == nil {
		return nil, fmt.Errorf("%w: nothing to update", errorvalues.ErrValidation)
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user, err := us.repo.UpdateProfile(ctx, uid, entity.ProfileUpdate{
		Name:    req.Name,
		Dob:     req.Dob,
		Disease: req.Disease,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return user, nil
}
