package api_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/starhealth/internal/api"
	errorvalues "github.com/limbo/starhealth/internal/error_values"
	"github.com/limbo/starhealth/internal/metrics"
	"github.com/limbo/starhealth/internal/service/mocks"
	"github.com/limbo/starhealth/pkg/entity"
	jwtservice "github.com/limbo/starhealth/pkg/jwt_service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := jwtservice.New(testSecret, time.Hour)
	serv, m := newTestServer(t, jwtService)
	serv.MountEndpoints()

	token, err := jwtService.GenerateToken(testUser())
	require.NoError(t, err)
	expired, err := jwtservice.New(testSecret, time.Nanosecond).GenerateToken(testUser())
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	foreign, err := jwtservice.New("another-secret", time.Hour).GenerateToken(testUser())
	require.NoError(t, err)

	testCases := []struct {
		Desc         string
		Header       string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "no header",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "not a bearer",
			Header:       "Basic " + token,
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "garbage token",
			Header:       "Bearer not.a.token",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "expired token",
			Header:       "Bearer " + expired,
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "foreign signature",
			Header:       "Bearer " + foreign,
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "user deleted",
			Header:       "Bearer " + token,
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {
				m.users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:         "user lookup failed",
			Header:       "Bearer " + token,
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				m.users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errors.New("service error"))
			},
		},
		{
			Desc:         "valid token",
			Header:       "Bearer " + token,
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				m.users.EXPECT().GetByID(gomock.Any(), userID).Return(testUser(), nil)
				m.gamification.EXPECT().Score(gomock.Any(), userID).Return(&entity.Score{Level: 1}, nil)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			r := httptest.NewRequest(http.MethodGet, "/api/gamification/score", nil)
			if tc.Header != "" {
				r.Header.Set("Authorization", tc.Header)
			}
			rr := httptest.NewRecorder()
			serv.Handler().ServeHTTP(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouting(t *testing.T) {
	serv, _ := newTestServer(t, jwtservice.New(testSecret, time.Hour))
	serv.MountEndpoints()

	t.Run("health", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("unknown route", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
		env := decodeEnvelope(t, rr)
		assert.False(t, env.Success)
	})
	t.Run("protected route without token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/medications/"+uuid.NewString(), nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestMetricsMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	serv := api.New(&api.ServicesList{
		UserService:         mocks.NewMockUserServiceI(ctrl),
		MedicationsService:  mocks.NewMockMedicationsServiceI(ctrl),
		RemindersService:    mocks.NewMockRemindersServiceI(ctrl),
		GamificationService: mocks.NewMockGamificationServiceI(ctrl),
		JwtService:          jwtservice.New(testSecret, time.Hour),
		Metrics:             collector,
		MetricsHandler:      metrics.Handler(reg),
	})
	serv.MountEndpoints()

	for range 3 {
		rr := httptest.NewRecorder()
		serv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
	}
	rr := httptest.NewRecorder()
	serv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/reminders/today", nil))
	require.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)

	rr = httptest.NewRecorder()
	serv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Result().StatusCode)
	assert.Contains(t, rr.Body.String(), `starhealth_http_requests_total{status_code="200"} 3`)
	assert.Contains(t, rr.Body.String(), `starhealth_http_requests_total{status_code="401"} 1`)
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "starhealth_http_request_duration_seconds"))
	assert.Contains(t, rr.Body.String(), "starhealth_http_request_duration_seconds_count 4")
}

func TestRateLimitedAuthRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserServiceI(ctrl)
	limiter := api.NewIPRateLimiter(2, time.Minute)
	t.Cleanup(limiter.Stop)
	serv := api.New(&api.ServicesList{
		UserService:         users,
		MedicationsService:  mocks.NewMockMedicationsServiceI(ctrl),
		RemindersService:    mocks.NewMockRemindersServiceI(ctrl),
		GamificationService: mocks.NewMockGamificationServiceI(ctrl),
		JwtService:          jwtservice.New(testSecret, time.Hour),
		AuthLimiter:         limiter,
	})
	serv.MountEndpoints()

	users.EXPECT().SendVerificationCode(gomock.Any(), testEmail).Return(nil).Times(2)
	body := marshal(t, api.SendCodeRequest{Email: testEmail})
	codes := make([]int, 0, 3)
	for range 3 {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/auth/send-code", bytes.NewReader(body))
		r.RemoteAddr = "10.0.0.7:51000"
		serv.Handler().ServeHTTP(rr, r)
		codes = append(codes, rr.Result().StatusCode)
		if rr.Result().StatusCode == http.StatusTooManyRequests {
			assert.NotEmpty(t, rr.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// login is not limited
	users.EXPECT().Login(gomock.Any(), testEmail, "secret1").Return(nil, errorvalues.ErrWrongCredentials)
	rr := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		bytes.NewReader(marshal(t, api.LoginRequest{Email: testEmail, Password: "secret1"})))
	r.RemoteAddr = "10.0.0.7:51000"
	serv.Handler().ServeHTTP(rr, r)
	assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
}

func TestRateLimitedCodeChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserServiceI(ctrl)
	limiter := api.NewIPRateLimiter(10, time.Minute)
	t.Cleanup(limiter.Stop)
	serv := api.New(&api.ServicesList{
		UserService:         users,
		MedicationsService:  mocks.NewMockMedicationsServiceI(ctrl),
		RemindersService:    mocks.NewMockRemindersServiceI(ctrl),
		GamificationService: mocks.NewMockGamificationServiceI(ctrl),
		JwtService:          jwtservice.New(testSecret, time.Hour),
		AuthLimiter:         limiter,
	})
	serv.MountEndpoints()

	hammer := func(path, addr string, body []byte, n int) map[int]int {
		codes := make(map[int]int)
		for range n {
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
			r.RemoteAddr = addr
			serv.Handler().ServeHTTP(rr, r)
			codes[rr.Result().StatusCode]++
		}
		return codes
	}

	users.EXPECT().ResetPassword(gomock.Any(), gomock.Any()).Return(errorvalues.ErrInvalidCode).Times(10)
	codes := hammer("/api/auth/reset-password", "10.0.0.8:40000",
		marshal(t, api.ResetPasswordRequest{Email: testEmail, Code: "11111", NewPassword: "brandnew"}), 200)
	assert.Equal(t, map[int]int{http.StatusBadRequest: 10, http.StatusTooManyRequests: 190}, codes)

	users.EXPECT().VerifyCode(gomock.Any(), gomock.Any()).Return(errorvalues.ErrInvalidCode).Times(10)
	codes = hammer("/api/auth/verify-code", "10.0.0.9:40000",
		marshal(t, api.VerifyCodeRequest{Email: testEmail, Code: "11111"}), 50)
	assert.Equal(t, map[int]int{http.StatusBadRequest: 10, http.StatusTooManyRequests: 40}, codes)
}
