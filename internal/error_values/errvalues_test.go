package errorvalues_test

import (
	"errors"
	"fmt"
	"testing"

	errorvalues "github.com/limbo/starhealth/internal/error_values"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		Desc string
		Err  error
		Kind errorvalues.Kind
	}{
		{Desc: "validation", Err: errors.Join(errorvalues.ErrValidation, errors.New("name is required")), Kind: errorvalues.KindValidation},
		{Desc: "expired code", Err: errorvalues.ErrCodeExpired, Kind: errorvalues.KindValidation},
		{Desc: "code attempts exhausted", Err: errorvalues.ErrTooManyAttempts, Kind: errorvalues.KindValidation},
		{Desc: "wrong credentials", Err: errorvalues.ErrWrongCredentials, Kind: errorvalues.KindUnauthorized},
		{Desc: "wrapped not found", Err: fmt.Errorf("lookup: %w", errorvalues.ErrReminderNotFound), Kind: errorvalues.KindNotFound},
		{Desc: "already taken", Err: errorvalues.ErrReminderNotEligible, Kind: errorvalues.KindIneligible},
		{Desc: "duplicate user", Err: errorvalues.ErrUserExists, Kind: errorvalues.KindConflict},
		{Desc: "unknown", Err: errors.New("connection refused"), Kind: errorvalues.KindInternal},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Kind, errorvalues.KindOf(tc.Err))
		})
	}
}
