package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/starhealth/internal/error_values"
	"github.com/limbo/starhealth/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteKindError(t *testing.T) {
	testCases := []struct {
		Desc           string
		Err            error
		ExpectedStatus int
		ExpectedMsg    string
	}{
		{"ineligible", errorvalues.ErrReminderNotEligible, http.StatusBadRequest, errorvalues.ErrReminderNotEligible.Error()},
		{"conflict", errorvalues.ErrUserExists, http.StatusConflict, errorvalues.ErrUserExists.Error()},
		{"unauthorized", errorvalues.ErrWrongCredentials, http.StatusUnauthorized, errorvalues.ErrWrongCredentials.Error()},
		{"not found", errorvalues.ErrMedicationMissing, http.StatusNotFound, errorvalues.ErrMedicationMissing.Error()},
		{"internal hides detail", errors.New("repository error: dial tcp 10.0.0.1"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			rec := httptest.NewRecorder()
			status := httputil.WriteKindError(rec, tc.Err)
			assert.Equal(t, tc.ExpectedStatus, status)
			assert.Equal(t, tc.ExpectedStatus, rec.Code)

			var body httputil.Envelope
			require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.ExpectedMsg, body.Message)
		})
	}
}

func TestWriteListResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	httputil.WriteListResponse[string](rec, http.StatusOK, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"count":0,"data":[]}`, rec.Body.String())
}
