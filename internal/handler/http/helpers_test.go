package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

type handlerMocks struct {
	auth    *mock.MockAuthService
	tokens  *mock.MockTokenService
	notes   *mock.MockNoteService
	appInfo *mock.MockAppInfoService
}

// newTestRouter builds the full router over mocked services.
func newTestRouter(t *testing.T) (http.Handler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := handlerMocks{
		auth:    mock.NewMockAuthService(ctrl),
		tokens:  mock.NewMockTokenService(ctrl),
		notes:   mock.NewMockNoteService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    m.auth,
		TokenService:   m.tokens,
		NoteService:    m.notes,
		AppInfoService: m.appInfo,
	}, config.Server{}, logger.Nop())

	return h.Init(), m
}

// expectToken makes the token mock accept "good-token" for userID.
func (m handlerMocks) expectToken(userID int64) {
	m.tokens.EXPECT().Verify(gomock.Any(), "good-token").Return(models.Token{UserID: userID}, nil)
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "body: %s", rr.Body.String())
	return body
}

// injectNopLogger кладёт nop-логгер в контекст запроса.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}
