package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/oura-scraper/internal/models"
	logctx "github.com/pribylovaa/oura-scraper/internal/pkg/log"
)

// Тесты интерактивного authorization-code flow.
//
// «Браузер» эмулируется прямым GET на локальный callback-сервер; state
// достаётся из URL авторизации, который Authorize пишет в лог.

// captureHandler — slog.Handler, складывающий строковые атрибуты записей в map.
type captureHandler struct {
	mu    sync.Mutex
	attrs map[string]string
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	r.Attrs(func(a slog.Attr) bool {
		h.attrs[a.Key] = a.Value.String()
		return true
	})
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

func (h *captureHandler) get(key string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.attrs[key]
}

func freePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	return port
}

// startAuthorize запускает Authorize в фоне и возвращает канал с результатом
// и capture-хендлер, из которого можно достать URL авторизации.
func startAuthorize(t *testing.T, m *Manager, port int) (<-chan error, <-chan *models.TokenPair, *captureHandler) {
	t.Helper()

	capture := &captureHandler{attrs: make(map[string]string)}
	ctx := logctx.Into(context.Background(), slog.New(capture))

	errCh := make(chan error, 1)
	pairCh := make(chan *models.TokenPair, 1)
	go func() {
		pair, err := m.Authorize(ctx, port)
		pairCh <- pair
		errCh <- err
	}()

	return errCh, pairCh, capture
}

// waitAuthURL дожидается, пока Authorize залогирует URL авторизации
// и поднимет callback-сервер.
func waitAuthURL(t *testing.T, capture *captureHandler, port int) *url.URL {
	t.Helper()

	require.Eventually(t, func() bool {
		if capture.get("url") == "" {
			return false
		}
		conn, err := net.DialTimeout("tcp", net.JoinHostPort("localhost", strconv.Itoa(port)), 100*time.Millisecond)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 3*time.Second, 20*time.Millisecond)

	u, err := url.Parse(capture.get("url"))
	require.NoError(t, err)

	return u
}

func callbackURL(port int, q url.Values) string {
	return "http://localhost:" + strconv.Itoa(port) + "/callback?" + q.Encode()
}

func TestAuthorize_OK(t *testing.T) {
	srv, _ := newTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "authorization_code", r.FormValue("grant_type"))
		require.Equal(t, "test-code", r.FormValue("code"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tokenResponse{
			AccessToken:  "A1",
			RefreshToken: "R1",
			TokenType:    "Bearer",
			ExpiresIn:    86400,
		})
	})

	m, mockSt, ctrl := newManagerWithMock(t, srv.URL, nil)
	defer ctrl.Finish()

	var saved *models.TokenPair
	mockSt.EXPECT().SaveTokenPair(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pair *models.TokenPair) error {
			saved = pair
			return nil
		})

	port := freePort(t)
	errCh, pairCh, capture := startAuthorize(t, m, port)

	authURL := waitAuthURL(t, capture, port)
	state := authURL.Query().Get("state")
	require.NotEmpty(t, state)

	// «Браузер» возвращается на callback с кодом и корректным state.
	resp, err := http.Get(callbackURL(port, url.Values{"code": {"test-code"}, "state": {state}}))
	require.NoError(t, err)
	defer resp.Body.Close()

	pair := <-pairCh
	require.NoError(t, <-errCh)
	require.Equal(t, "A1", pair.AccessToken)
	require.Equal(t, "R1", pair.RefreshToken)
	require.Equal(t, pair, saved)
}

func TestAuthorize_StateMismatch(t *testing.T) {
	srv, calls := newTokenServer(t, grantOK(t, "A1", "R1"))

	m, _, ctrl := newManagerWithMock(t, srv.URL, nil)
	defer ctrl.Finish()

	port := freePort(t)
	errCh, pairCh, capture := startAuthorize(t, m, port)
	waitAuthURL(t, capture, port)

	resp, err := http.Get(callbackURL(port, url.Values{"code": {"test-code"}, "state": {"forged"}}))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Nil(t, <-pairCh)
	require.ErrorIs(t, <-errCh, ErrAuthentication)
	require.Equal(t, int32(0), calls.Load(), "обмен кода не должен выполняться при подмене state")
}

func TestAuthorize_Denied(t *testing.T) {
	srv, _ := newTokenServer(t, grantOK(t, "A1", "R1"))

	m, _, ctrl := newManagerWithMock(t, srv.URL, nil)
	defer ctrl.Finish()

	port := freePort(t)
	errCh, pairCh, capture := startAuthorize(t, m, port)
	waitAuthURL(t, capture, port)

	resp, err := http.Get(callbackURL(port, url.Values{"error": {"access_denied"}}))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Nil(t, <-pairCh)
	require.ErrorIs(t, <-errCh, ErrAuthentication)
}

func TestAuthorize_ContextCancelled(t *testing.T) {
	srv, _ := newTokenServer(t, grantOK(t, "A1", "R1"))

	m, _, ctrl := newManagerWithMock(t, srv.URL, nil)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Authorize(ctx, freePort(t))
	require.ErrorIs(t, err, context.Canceled)
}
