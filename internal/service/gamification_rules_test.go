package service_test

import (
	"testing"
	"time"

	"github.com/limbo/starhealth/internal/service"
	"github.com/limbo/starhealth/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func defaultGamification() *entity.Gamification {
	return &entity.Gamification{
		UserID: userID,
		Level:  service.DefaultLevel,
		Planet: entity.PlanetStatus{
			Health:     service.DefaultHealth,
			Appearance: service.DefaultAppearance,
		},
	}
}

func TestAppearanceFor(t *testing.T) {
	cases := map[int]entity.PlanetAppearance{
		0:   entity.PlanetDestroyed,
		19:  entity.PlanetDestroyed,
		20:  entity.PlanetDamaged,
		39:  entity.PlanetDamaged,
		40:  entity.PlanetHealing,
		50:  entity.PlanetHealing,
		69:  entity.PlanetHealing,
		70:  entity.PlanetHealthy,
		89:  entity.PlanetHealthy,
		90:  entity.PlanetThriving,
		100: entity.PlanetThriving,
	}
	for health, expected := range cases {
		assert.Equal(t, expected, service.AppearanceFor(health), "health %d", health)
	}
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, 1, service.LevelFor(0))
	assert.Equal(t, 1, service.LevelFor(9))
	assert.Equal(t, 2, service.LevelFor(10))
	assert.Equal(t, 3, service.LevelFor(25))
}

func TestApplyTakenEvent(t *testing.T) {
	loc := time.UTC
	t.Run("first dose starts streak", func(t *testing.T) {
		g := defaultGamification()
		service.ApplyTakenEvent(g, now, loc)
		assert.Equal(t, 1, g.TotalStars)
		assert.Equal(t, 1, g.Level)
		assert.Equal(t, 1, g.CurrentStreak)
		assert.Equal(t, 1, g.LongestStreak)
		assert.Equal(t, now, *g.LastActivityDate)
		assert.Equal(t, 55, g.Planet.Health)
		assert.Equal(t, entity.PlanetHealing, g.Planet.Appearance)
	})
	t.Run("second dose same day keeps streak", func(t *testing.T) {
		g := defaultGamification()
		service.ApplyTakenEvent(g, now, loc)
		later := now.Add(3 * time.Hour)
		service.ApplyTakenEvent(g, later, loc)
		assert.Equal(t, 2, g.TotalStars)
		assert.Equal(t, 1, g.CurrentStreak)
		assert.Equal(t, now, *g.LastActivityDate)
		assert.Equal(t, 60, g.Planet.Health)
	})
	t.Run("dose next day extends streak", func(t *testing.T) {
		g := defaultGamification()
		yesterday := now.AddDate(0, 0, -1)
		g.CurrentStreak = 4
		g.LongestStreak = 4
		g.LastActivityDate = &yesterday
		service.ApplyTakenEvent(g, now, loc)
		assert.Equal(t, 5, g.CurrentStreak)
		assert.Equal(t, 5, g.LongestStreak)
		assert.Equal(t, now, *g.LastActivityDate)
	})
	t.Run("gap resets streak but keeps longest", func(t *testing.T) {
		g := defaultGamification()
		lastWeek := now.AddDate(0, 0, -7)
		g.CurrentStreak = 3
		g.LongestStreak = 8
		g.LastActivityDate = &lastWeek
		service.ApplyTakenEvent(g, now, loc)
		assert.Equal(t, 1, g.CurrentStreak)
		assert.Equal(t, 8, g.LongestStreak)
	})
	t.Run("yesterday just before midnight counts", func(t *testing.T) {
		g := defaultGamification()
		lateYesterday := time.Date(2025, time.March, 9, 23, 59, 0, 0, loc)
		earlyToday := time.Date(2025, time.March, 10, 0, 1, 0, 0, loc)
		g.CurrentStreak = 1
		g.LongestStreak = 1
		g.LastActivityDate = &lateYesterday
		service.ApplyTakenEvent(g, earlyToday, loc)
		assert.Equal(t, 2, g.CurrentStreak)
	})
	t.Run("calendar day follows location", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		g := defaultGamification()
		// 20:00 UTC on the 9th is already the 10th in Tokyo
		last := time.Date(2025, time.March, 9, 20, 0, 0, 0, time.UTC)
		g.CurrentStreak = 2
		g.LongestStreak = 2
		g.LastActivityDate = &last
		service.ApplyTakenEvent(g, now, tokyo)
		assert.Equal(t, 2, g.CurrentStreak)
	})
	t.Run("health is capped", func(t *testing.T) {
		g := defaultGamification()
		g.Planet.Health = 98
		service.ApplyTakenEvent(g, now, loc)
		assert.Equal(t, service.MaxPlanetHealth, g.Planet.Health)
		assert.Equal(t, entity.PlanetThriving, g.Planet.Appearance)
	})
	t.Run("level up on tenth star", func(t *testing.T) {
		g := defaultGamification()
		g.TotalStars = 9
		service.ApplyTakenEvent(g, now, loc)
		assert.Equal(t, 10, g.TotalStars)
		assert.Equal(t, 2, g.Level)
	})
	t.Run("health crosses appearance threshold", func(t *testing.T) {
		g := defaultGamification()
		g.Planet.Health = 65
		g.Planet.Appearance = entity.PlanetHealing
		service.ApplyTakenEvent(g, now, loc)
		assert.Equal(t, 70, g.Planet.Health)
		assert.Equal(t, entity.PlanetHealthy, g.Planet.Appearance)
	})
}
