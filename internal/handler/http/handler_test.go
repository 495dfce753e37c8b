package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-user-bff/internal/config"
	"github.com/MKhiriev/go-user-bff/internal/logger"
	"github.com/MKhiriev/go-user-bff/internal/mock"
	"github.com/MKhiriev/go-user-bff/internal/service"
	"github.com/MKhiriev/go-user-bff/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeAuthService is a fn-field implementation of service.AuthService.
// A nil field fails the test when called.
type fakeAuthService struct {
	t            *testing.T
	signInFn     func(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)
	checkFn      func(ctx context.Context, token string) (models.User, error)
	parseTokenFn func(ctx context.Context, token string) (models.Token, error)
}

func (f *fakeAuthService) SignIn(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	if f.signInFn == nil {
		f.t.Fatal("SignIn should not be called")
	}
	return f.signInFn(ctx, credentials)
}

func (f *fakeAuthService) Check(ctx context.Context, token string) (models.User, error) {
	if f.checkFn == nil {
		f.t.Fatal("Check should not be called")
	}
	return f.checkFn(ctx, token)
}

func (f *fakeAuthService) SignOut(context.Context) models.MessageResponse {
	return models.MessageResponse{Message: "Successfully signed out"}
}

func (f *fakeAuthService) CreateToken(context.Context, models.User) (models.Token, error) {
	f.t.Fatal("CreateToken should not be called")
	return models.Token{}, nil
}

func (f *fakeAuthService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	if f.parseTokenFn == nil {
		f.t.Fatal("ParseToken should not be called")
	}
	return f.parseTokenFn(ctx, token)
}

// newTestRouter builds the full router on top of a mocked UserService and
// the given AuthService.
func newTestRouter(t *testing.T, authSvc service.AuthService) (http.Handler, *mock.MockUserService) {
	t.Helper()
	users := mock.NewMockUserService(gomock.NewController(t))

	h := NewHandler(
		&service.Services{UserService: users, AuthService: authSvc},
		config.Server{},
		models.NewAppBuildInfo("1.2.3", "", "abc123"),
		logger.Nop(),
	)

	return h.Init(), users
}

func doRequest(router http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func readJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}
