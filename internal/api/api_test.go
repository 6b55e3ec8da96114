package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/starhealth/internal/api"
	"github.com/limbo/starhealth/internal/service"
	"github.com/limbo/starhealth/internal/service/mocks"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	userID = uuid.New()
)

type serviceMocks struct {
	users        *mocks.MockUserServiceI
	medications  *mocks.MockMedicationsServiceI
	reminders    *mocks.MockRemindersServiceI
	gamification *mocks.MockGamificationServiceI
}

func newTestServer(t *testing.T, jwtService api.JWTServiceI) (*api.Server, *serviceMocks) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		users:        mocks.NewMockUserServiceI(ctrl),
		medications:  mocks.NewMockMedicationsServiceI(ctrl),
		reminders:    mocks.NewMockRemindersServiceI(ctrl),
		gamification: mocks.NewMockGamificationServiceI(ctrl),
	}
	serv := api.New(&api.ServicesList{
		UserService:         m.users,
		MedicationsService:  m.medications,
		RemindersService:    m.reminders,
		GamificationService: m.gamification,
		JwtService:          jwtService,
	})
	return serv, m
}

// asUser marks the request as authenticated by userID.
func asUser(r *http.Request) *http.Request {
	return r.WithContext(api.WithUID(r.Context(), userID))
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	body, err := io.ReadAll(rr.Result().Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, sonic.Unmarshal(body, &env))
	return env
}

func decodeData(t *testing.T, env envelope, dst any) {
	t.Helper()
	require.NoError(t, sonic.Unmarshal(env.Data, dst))
}
