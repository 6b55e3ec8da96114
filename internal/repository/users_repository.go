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

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

const userColumns = `id, email, name, COALESCE(password_hash, ''), is_email_verified,
	COALESCE(verification_code, ''), verification_code_expires, COALESCE(code_purpose, ''), code_attempts,
	COALESCE(to_char(dob, 'YYYY-MM-DD'), ''), COALESCE(disease, ''), created_at, updated_at`

// clearCode is the SET list that drops the stored code together with its bookkeeping.
const clearCode = `verification_code = NULL, verification_code_expires = NULL, code_purpose = NULL, code_attempts = 0`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.IsEmailVerified,
		&u.VerificationCode, &u.VerificationCodeExpires, &u.CodePurpose, &u.CodeAttempts,
		&u.Dob, &u.Disease, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (ur *UsersRepository) SaveSignupCode(ctx context.Context, email, codeHash string, expires time.Time) error {
	ct, err := ur.conn.Exec(ctx, `INSERT INTO users (email, verification_code, verification_code_expires, code_purpose)
		VALUES ($1, $2, $3, 'verification')
		ON CONFLICT (email) DO UPDATE SET verification_code = EXCLUDED.verification_code,
		verification_code_expires = EXCLUDED.verification_code_expires, code_purpose = EXCLUDED.code_purpose,
		code_attempts = 0, updated_at = NOW()
		WHERE users.password_hash IS NULL;`, email, codeHash, expires)
	if err != nil {
		return errors.New("saving signup code error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserExists
	}
	return nil
}

func (ur *UsersRepository) SaveResetCode(ctx context.Context, email, codeHash string, expires time.Time) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET verification_code = $1, verification_code_expires = $2,
		code_purpose = 'reset', code_attempts = 0, updated_at = NOW() WHERE email = $3 AND password_hash IS NOT NULL;`,
		codeHash, expires, email)
	if err != nil {
		return errors.New("saving reset code error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

// RecordFailedAttempt counts a wrong code and drops the code once maxAttempts is reached.
// Postgres evaluates every SET expression against the old row, so code_attempts + 1 is the new count.
func (ur *UsersRepository) RecordFailedAttempt(ctx context.Context, uid uuid.UUID, maxAttempts int) (int, error) {
	var attempts int
	err := ur.conn.QueryRow(ctx, `UPDATE users SET code_attempts = code_attempts + 1,
		verification_code = CASE WHEN code_attempts + 1 >= $2 THEN NULL ELSE verification_code END,
		verification_code_expires = CASE WHEN code_attempts + 1 >= $2 THEN NULL ELSE verification_code_expires END,
		code_purpose = CASE WHEN code_attempts + 1 >= $2 THEN NULL ELSE code_purpose END,
		updated_at = NOW()
		WHERE id = $1 AND verification_code IS NOT NULL RETURNING code_attempts;`, uid, maxAttempts).Scan(&attempts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrCodeNotFound
		}
		return 0, errors.New("recording failed attempt error: " + err.Error())
	}
	return attempts, nil
}

func (ur *UsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := scanUser(ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1;`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by email error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := scanUser(ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) MarkEmailVerified(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET is_email_verified = TRUE, `+clearCode+`,
		updated_at = NOW() WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("verifying email error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

// CompleteRegistration only touches verified rows without a password, so two
// concurrent registrations for the same email can't both succeed.
func (ur *UsersRepository) CompleteRegistration(ctx context.Context, uid uuid.UUID, name, passwordHash string) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET name = $1, password_hash = $2, updated_at = NOW()
		WHERE id = $3 AND is_email_verified AND password_hash IS NULL;`, name, passwordHash, uid)
	if err != nil {
		return errors.New("completing registration error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserExists
	}
	return nil
}

func (ur *UsersRepository) UpdatePassword(ctx context.Context, uid uuid.UUID, passwordHash string) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET password_hash = $1, `+clearCode+`,
		updated_at = NOW() WHERE id = $2;`, passwordHash, uid)
	if err != nil {
		return errors.New("updating password error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

// UpdateProfile overwrites only the fields that are set in upd.
func (ur *UsersRepository) UpdateProfile(ctx context.Context, uid uuid.UUID, upd entity.ProfileUpdate) (*entity.User, error) {
	user, err := scanUser(ur.conn.QueryRow(ctx, `UPDATE users SET name = COALESCE($1, name),
		dob = COALESCE($2::text::date, dob), disease = COALESCE($3, disease), updated_at = NOW()
		WHERE id = $4 RETURNING `+userColumns+`;`, upd.Name, upd.Dob, upd.Disease, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("updating profile error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) UpsertFederated(ctx context.Context, email, name string) (*entity.User, error) {
	user, err := scanUser(ur.conn.QueryRow(ctx, `INSERT INTO users (email, name, is_email_verified) VALUES ($1, $2, TRUE)
		ON CONFLICT (email) DO UPDATE SET is_email_verified = TRUE,
		name = CASE WHEN users.name = '' THEN EXCLUDED.name ELSE users.name END, updated_at = NOW()
		RETURNING `+userColumns+`;`, email, name))
	if err != nil {
		return nil, errors.New("upserting federated user error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) ClearExpiredCodes(ctx context.Context, now time.Time) (int64, error) {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET `+clearCode+`
		WHERE verification_code IS NOT NULL AND verification_code_expires < $1;`, now)
	if err != nil {
		return 0, errors.New("clearing expired codes error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
