package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/starhealth/internal/error_values"
	"github.com/limbo/starhealth/internal/repository"
	"github.com/limbo/starhealth/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func TestRepositoriesIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	cfg := setupTestDB(t)
	pool, err := repository.NewPool(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	users := repository.NewUsersRepoWithConn(pool)
	meds := repository.NewMedicationsRepoWithConn(pool)
	reminders := repository.NewRemindersRepoWithConn(pool)
	gamification := repository.NewGamificationRepoWithConn(pool)

	var user *entity.User
	t.Run("signup flow", func(t *testing.T) {
		expires := time.Now().Add(15 * time.Minute)
		require.NoError(t, users.SaveSignupCode(ctx, "kate@example.com", "hash", expires))
		u, err := users.FindByEmail(ctx, "kate@example.com")
		require.NoError(t, err)
		assert.Equal(t, "hash", u.VerificationCode)
		require.NoError(t, users.MarkEmailVerified(ctx, u.ID))
		require.NoError(t, users.CompleteRegistration(ctx, u.ID, "Kate", "bcrypt"))
		assert.ErrorIs(t, users.CompleteRegistration(ctx, u.ID, "Kate", "bcrypt"), errorvalues.ErrUserExists)
		assert.ErrorIs(t, users.SaveSignupCode(ctx, "kate@example.com", "hash", expires), errorvalues.ErrUserExists)
		user, err = users.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, user.Registered())
		assert.Empty(t, user.VerificationCode)
	})
	require.NotNil(t, user)

	t.Run("expired codes cleared", func(t *testing.T) {
		require.NoError(t, users.SaveSignupCode(ctx, "late@example.com", "hash", time.Now().Add(-time.Minute)))
		n, err := users.ClearExpiredCodes(ctx, time.Now())
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("reset code attempts", func(t *testing.T) {
		assert.ErrorIs(t, users.SaveResetCode(ctx, "late@example.com", "hash", time.Now().Add(time.Minute)),
			errorvalues.ErrUserNotFound)
		require.NoError(t, users.SaveResetCode(ctx, user.Email, "hash", time.Now().Add(time.Minute)))
		u, err := users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.CodePurposeReset, u.CodePurpose)
		for i := 1; i <= 3; i++ {
			attempts, err := users.RecordFailedAttempt(ctx, user.ID, 3)
			require.NoError(t, err)
			assert.Equal(t, i, attempts)
		}
		_, err = users.RecordFailedAttempt(ctx, user.ID, 3)
		assert.ErrorIs(t, err, errorvalues.ErrCodeNotFound)
		u, err = users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, u.VerificationCode)
		assert.Empty(t, u.CodePurpose)
	})

	t.Run("profile update", func(t *testing.T) {
		dob, disease := "1990-04-12", "asthma"
		u, err := users.UpdateProfile(ctx, user.ID, entity.ProfileUpdate{Dob: &dob, Disease: &disease})
		require.NoError(t, err)
		assert.Equal(t, "Kate", u.Name)
		assert.Equal(t, dob, u.Dob)
		assert.Equal(t, disease, u.Disease)

		name := "Katherine"
		u, err = users.UpdateProfile(ctx, user.ID, entity.ProfileUpdate{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, u.Name)
		assert.Equal(t, dob, u.Dob)

		_, err = users.UpdateProfile(ctx, uuid.New(), entity.ProfileUpdate{Name: &name})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})

	var reminderID uuid.UUID
	t.Run("medication with reminder", func(t *testing.T) {
		med, reminder, err := meds.Create(ctx, &entity.Medication{
			UserID:   user.ID,
			Name:     "Aspirin",
			Dosage:   "1",
			Category: "flexible",
			Timer:    entity.Timer{Hours: 8, Minutes: 0, Period: entity.PeriodAM},
		})
		require.NoError(t, err)
		reminderID = reminder.ID
		list, err := reminders.ListToday(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, med.ID, list[0].MedicationID)
		assert.Equal(t, "8:00 AM", list[0].ScheduledTime)
	})

	t.Run("concurrent mark taken", func(t *testing.T) {
		const attempts = 8
		var wg sync.WaitGroup
		results := make(chan error, attempts)
		for range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := reminders.MarkTaken(ctx, reminderID, user.ID, time.Now())
				results <- err
			}()
		}
		wg.Wait()
		close(results)
		succeeded := 0
		for err := range results {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, errorvalues.ErrReminderNotEligible)
		}
		assert.Equal(t, 1, succeeded)
		logs, err := reminders.ListLogs(ctx, user.ID, 10, 0)
		require.NoError(t, err)
		assert.Len(t, logs, 1)
	})

	t.Run("concurrent gamification", func(t *testing.T) {
		const events = 10
		var wg sync.WaitGroup
		for range events {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := gamification.Apply(ctx, user.ID, func(g *entity.Gamification) error {
					g.TotalStars++
					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
		g, err := gamification.GetOrCreate(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, events, g.TotalStars)
	})

	t.Run("deactivated medication hides reminders", func(t *testing.T) {
		med, _, err := meds.Create(ctx, &entity.Medication{
			UserID:   user.ID,
			Name:     "Metformin",
			Dosage:   "2",
			Category: "flexible",
			Timer:    entity.Timer{Hours: 9, Minutes: 30, Period: entity.PeriodPM},
		})
		require.NoError(t, err)
		countFor := func(list []*entity.Reminder) int {
			n := 0
			for _, r := range list {
				if r.MedicationID == med.ID {
					n++
				}
			}
			return n
		}
		today, err := reminders.ListToday(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, countFor(today))

		cancelled, err := meds.Deactivate(ctx, med.ID, user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), cancelled)

		today, err = reminders.ListToday(ctx, user.ID)
		require.NoError(t, err)
		assert.Zero(t, countFor(today))
		all, err := reminders.ListAll(ctx, user.ID)
		require.NoError(t, err)
		assert.Zero(t, countFor(all))
		assert.NotEmpty(t, all)

		_, err = meds.GetByID(ctx, med.ID, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrMedicationMissing)
	})
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("starhealth"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	cfg := &testPGConfig{connStr: connStr}
	if err = repository.Migrate(cfg, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return cfg
}
