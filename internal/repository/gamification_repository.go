package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/starhealth/internal/error_values"
	"github.com/limbo/starhealth/pkg/entity"
)

type GamificationRepository struct {
	conn PgConnection
}

func NewGamificationRepoWithConn(conn PgConnection) *GamificationRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for gamificationRepo: " + err.Error())
	}
	return &GamificationRepository{
		conn: conn,
	}
}

type execQuerier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const gamificationSelect = `SELECT user_id, total_stars, current_streak, longest_streak, last_activity_date, level,
	planet_health, planet_appearance, enemies_destroyed, created_at, updated_at FROM gamification WHERE user_id = $1`

// ensureGamification inserts the default record. Primary key on user_id turns concurrent first access into no-ops.
func ensureGamification(ctx context.Context, q execQuerier, uid uuid.UUID) error {
	_, err := q.Exec(ctx, `INSERT INTO gamification (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`, uid)
	if err != nil {
		if pgCode(err) == foreignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating gamification error: " + err.Error())
	}
	return nil
}

func scanGamification(row pgx.Row) (*entity.Gamification, error) {
	var g entity.Gamification
	err := row.Scan(&g.UserID, &g.TotalStars, &g.CurrentStreak, &g.LongestStreak, &g.LastActivityDate, &g.Level,
		&g.Planet.Health, &g.Planet.Appearance, &g.Planet.EnemiesDestroyed, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("reading gamification error: " + err.Error())
	}
	return &g, nil
}

func (gr *GamificationRepository) GetOrCreate(ctx context.Context, uid uuid.UUID) (*entity.Gamification, error) {
	if err := ensureGamification(ctx, gr.conn, uid); err != nil {
		return nil, err
	}
	return scanGamification(gr.conn.QueryRow(ctx, gamificationSelect+`;`, uid))
}

func (gr *GamificationRepository) Apply(ctx context.Context, uid uuid.UUID, fn func(g *entity.Gamification) error) (_ *entity.Gamification, err error) {
	tx, err := gr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning tx error: " + err.Error())
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = ensureGamification(ctx, tx, uid); err != nil {
		return nil, err
	}
	g, err := scanGamification(tx.QueryRow(ctx, gamificationSelect+` FOR UPDATE;`, uid))
	if err != nil {
		return nil, err
	}
	if err = fn(g); err != nil {
		return nil, err
	}
	err = tx.QueryRow(ctx, `UPDATE gamification SET total_stars = $1, current_streak = $2, longest_streak = $3,
		last_activity_date = $4, level = $5, planet_health = $6, planet_appearance = $7, enemies_destroyed = $8,
		updated_at = NOW() WHERE user_id = $9 RETURNING updated_at;`,
		g.TotalStars, g.CurrentStreak, g.LongestStreak, g.LastActivityDate, g.Level,
		g.Planet.Health, g.Planet.Appearance, g.Planet.EnemiesDestroyed, uid,
	).Scan(&g.UpdatedAt)
	if err != nil {
		return nil, errors.New("saving gamification error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing gamification error: " + err.Error())
	}
	return g, nil
}
