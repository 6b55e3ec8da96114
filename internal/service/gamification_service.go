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

type GamificationService struct {
	repo repository.GamificationRepositoryI
	loc  *time.Location
	now  func() time.Time
}

func NewGamificationService(repo repository.GamificationRepositoryI, loc *time.Location) *GamificationService {
	if repo == nil {
		log.Fatal("provided nil gamificationRepo")
	}
	if loc == nil {
		loc = time.Local
	}
	return &GamificationService{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (gs *GamificationService) WithClock(now func() time.Time) *GamificationService {
	gs.now = now
	return gs
}

func (gs *GamificationService) get(ctx context.Context, uid uuid.UUID) (*entity.Gamification, error) {
	g, err := gs.repo.GetOrCreate(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("gamification repository error: " + err.Error())
	}
	return g, nil
}

func (gs *GamificationService) Ensure(ctx context.Context, uid uuid.UUID) error {
	_, err := gs.get(ctx, uid)
	return err
}

func (gs *GamificationService) ApplyTakenEvent(ctx context.Context, uid uuid.UUID) (*entity.GamificationSnapshot, error) {
	now := gs.now()
	g, err := gs.repo.Apply(ctx, uid, func(g *entity.Gamification) error {
		ApplyTakenEvent(g, now, gs.loc)
		return nil
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("gamification repository error: " + err.Error())
	}
	snapshot := g.Snapshot()
	return &snapshot, nil
}

func (gs *GamificationService) Score(ctx context.Context, uid uuid.UUID) (*entity.Score, error) {
	g, err := gs.get(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &entity.Score{TotalStars: g.TotalStars, Level: g.Level}, nil
}

func (gs *GamificationService) Planet(ctx context.Context, uid uuid.UUID) (*entity.PlanetStatus, error) {
	g, err := gs.get(ctx, uid)
	if err != nil {
		return nil, err
	}
	planet := g.Planet
	return &planet, nil
}

func (gs *GamificationService) Streak(ctx context.Context, uid uuid.UUID) (*entity.Streak, error) {
	g, err := gs.get(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &entity.Streak{
		CurrentStreak:    g.CurrentStreak,
		LongestStreak:    g.LongestStreak,
		LastActivityDate: g.LastActivityDate,
	}, nil
}
