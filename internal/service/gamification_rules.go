package service

import (
	"time"

	"github.com/limbo/starhealth/pkg/entity"
)

const (
	StarsPerDose      = 1
	StarsPerLevel     = 10
	HealthPerDose     = 5
	MaxPlanetHealth   = 100
	DefaultHealth     = 50
	DefaultLevel      = 1
	DefaultAppearance = entity.PlanetHealing
)

// AppearanceFor maps planet health onto its appearance, highest threshold first.
func AppearanceFor(health int) entity.PlanetAppearance {
	switch {
	case health >= 90:
		return entity.PlanetThriving
	case health >= 70:
		return entity.PlanetHealthy
	case health >= 40:
		return entity.PlanetHealing
	case health >= 20:
		return entity.PlanetDamaged
	default:
		return entity.PlanetDestroyed
	}
}

func LevelFor(stars int) int {
	return stars/StarsPerLevel + 1
}

func dayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// ApplyTakenEvent rewards one taken dose at now. Days are calendar days in loc.
func ApplyTakenEvent(g *entity.Gamification, now time.Time, loc *time.Location) {
	g.TotalStars += StarsPerDose
	g.Level = LevelFor(g.TotalStars)

	today := dayOf(now, loc)
	switch {
	case g.LastActivityDate != nil && dayOf(*g.LastActivityDate, loc).Equal(today):
		// already counted today
	case g.LastActivityDate != nil && dayOf(*g.LastActivityDate, loc).Equal(today.AddDate(0, 0, -1)):
		g.CurrentStreak++
		g.LastActivityDate = &now
	default:
		g.CurrentStreak = 1
		g.LastActivityDate = &now
	}
	if g.CurrentStreak > g.LongestStreak {
		g.LongestStreak = g.CurrentStreak
	}

	g.Planet.Health = min(MaxPlanetHealth, g.Planet.Health+HealthPerDose)
	g.Planet.Appearance = AppearanceFor(g.Planet.Health)
}
