package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	CodePurposeVerification = "verification"
	CodePurposeReset        = "reset"
)

// User holds at most one one-time code at a time. CodePurpose tells which
// flow issued it, Dob is YYYY-MM-DD or empty.
type User struct {
	ID                      uuid.UUID
	Email                   string
	Name                    string
	PasswordHash            string
	IsEmailVerified         bool
	VerificationCode        string
	VerificationCodeExpires *time.Time
	CodePurpose             string
	CodeAttempts            int
	Dob                     string
	Disease                 string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// Registered reports whether the account already went through password registration.
func (u *User) Registered() bool {
	return u.PasswordHash != ""
}

type UserProfile struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	Dob             *string   `json:"dob"`
	Disease         *string   `json:"disease"`
}

// ProfileUpdate lists profile fields to change, nil keeps the stored value.
type ProfileUpdate struct {
	Name    *string
	Dob     *string
	Disease *string
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		IsEmailVerified: u.IsEmailVerified,
		Dob:             optional(u.Dob),
		Disease:         optional(u.Disease),
	}
}

const (
	PeriodAM = "AM"
	PeriodPM = "PM"
)

// Timer is the daily time a medication is due, on a 12-hour clock.
type Timer struct {
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Period  string `json:"period"`
}

// ScheduledTime renders the timer the way reminders store it, e.g. "8:05 AM".
func (t Timer) ScheduledTime() string {
	return fmt.Sprintf("%d:%02d %s", t.Hours, t.Minutes, t.Period)
}

// MinuteOfDay converts the 12-hour timer into minutes since midnight.
func (t Timer) MinuteOfDay() int {
	h := t.Hours % 12
	if t.Period == PeriodPM {
		h += 12
	}
	return h*60 + t.Minutes
}

type Medication struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Category  string    `json:"category"`
	Timer     Timer     `json:"timer"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ReminderStatus string

const (
	ReminderActive    ReminderStatus = "active"
	ReminderCompleted ReminderStatus = "completed"
	ReminderCancelled ReminderStatus = "cancelled"
)

// Display states computed for clients, never persisted.
const (
	DisplayTaken    = "taken"
	DisplayDue      = "due"
	DisplayUpcoming = "upcoming"
)

type MedicationSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Dosage   string    `json:"dosage"`
	Category string    `json:"category"`
}

type Reminder struct {
	ID               uuid.UUID         `json:"id"`
	UserID           uuid.UUID         `json:"userId"`
	MedicationID     uuid.UUID         `json:"medicationId"`
	Medication       MedicationSummary `json:"medication"`
	ScheduledTime    string            `json:"scheduledTime"`
	ScheduledMinutes int               `json:"-"`
	Status           ReminderStatus    `json:"status"`
	DisplayStatus    string            `json:"displayStatus,omitempty"`
	LastTaken        *time.Time        `json:"lastTaken,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// ViewStatus derives the client-facing state of the reminder at the given local minute of day.
func (r *Reminder) ViewStatus(minuteOfDay int) string {
	switch {
	case r.Status == ReminderCompleted:
		return DisplayTaken
	case minuteOfDay >= r.ScheduledMinutes:
		return DisplayDue
	default:
		return DisplayUpcoming
	}
}

type MedicationLog struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	MedicationID uuid.UUID `json:"medicationId"`
	ReminderID   uuid.UUID `json:"reminderId"`
	TakenAt      time.Time `json:"takenAt"`
	StarsEarned  int       `json:"starsEarned"`
	CreatedAt    time.Time `json:"createdAt"`
}

type PlanetAppearance string

const (
	PlanetThriving  PlanetAppearance = "thriving"
	PlanetHealthy   PlanetAppearance = "healthy"
	PlanetHealing   PlanetAppearance = "healing"
	PlanetDamaged   PlanetAppearance = "damaged"
	PlanetDestroyed PlanetAppearance = "destroyed"
)

type PlanetStatus struct {
	Health           int              `json:"health"`
	Appearance       PlanetAppearance `json:"appearance"`
	EnemiesDestroyed int              `json:"enemiesDestroyed"`
}

type Gamification struct {
	UserID           uuid.UUID
	TotalStars       int
	CurrentStreak    int
	LongestStreak    int
	LastActivityDate *time.Time
	Level            int
	Planet           PlanetStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type GamificationSnapshot struct {
	TotalStars    int          `json:"totalStars"`
	CurrentStreak int          `json:"currentStreak"`
	Level         int          `json:"level"`
	PlanetStatus  PlanetStatus `json:"planetStatus"`
}

type Score struct {
	TotalStars int `json:"totalStars"`
	Level      int `json:"level"`
}

type Streak struct {
	CurrentStreak    int        `json:"currentStreak"`
	LongestStreak    int        `json:"longestStreak"`
	LastActivityDate *time.Time `json:"lastActivityDate,omitempty"`
}

func (g *Gamification) Snapshot() GamificationSnapshot {
	return GamificationSnapshot{
		TotalStars:    g.TotalStars,
		CurrentStreak: g.CurrentStreak,
		Level:         g.Level,
		PlanetStatus:  g.Planet,
	}
}
