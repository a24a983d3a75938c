package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/pribylovaa/oura-scraper/internal/models"
	"github.com/pribylovaa/oura-scraper/internal/pkg/log"
)

// callbackResult — исход обратного вызова authorization-code flow.
type callbackResult struct {
	code  string
	state string
	err   error
}

// Authorize проводит интерактивный authorization-code flow: поднимает
// локальный сервер для обратного вызова, печатает URL авторизации в лог,
// обменивает полученный код на пару токенов и сохраняет её.
//
// Используется для первичной выдачи токенов (или повторной после
// ErrAuthentication), когда bootstrap-пары в конфигурации нет.
func (m *Manager) Authorize(ctx context.Context, port int) (*models.TokenPair, error) {
	const op = "auth.Authorize"

	lg := log.From(ctx)

	state, err := randomState()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	redirectURL := fmt.Sprintf("http://localhost:%d/callback", port)
	conf := *m.conf
	conf.RedirectURL = redirectURL

	results := make(chan callbackResult, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if errCode := q.Get("error"); errCode != "" {
			results <- callbackResult{err: fmt.Errorf("authorization denied: %s", errCode)}
			writeCallbackPage(w, "Authorization denied. You can close this window.")
			return
		}

		code := q.Get("code")
		if code == "" {
			writeCallbackPage(w, "Invalid callback: missing code parameter.")
			return
		}

		results <- callbackResult{code: code, state: q.Get("state")}
		writeCallbackPage(w, "Authorization successful! You can close this window.")
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort("localhost", fmt.Sprintf("%d", port)),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	authURL := conf.AuthCodeURL(state)
	lg.Info("authorize_url", slog.String("op", op), slog.String("url", authURL))

	var res callbackResult
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	case err := <-serveErr:
		return nil, fmt.Errorf("%s: callback server: %w", op, err)
	case res = <-results:
	}

	if res.err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrAuthentication, res.err)
	}

	if res.state != state {
		return nil, fmt.Errorf("%s: %w: state mismatch", op, ErrAuthentication)
	}

	if m.client != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, m.client)
	}

	tok, err := conf.Exchange(ctx, res.code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrAuthentication, err)
	}

	pair := &models.TokenPair{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.Expiry.UTC(),
		UpdatedAt:    m.now().UTC(),
	}

	if err := m.store.SaveTokenPair(ctx, pair); err != nil {
		return nil, fmt.Errorf("%s: save token pair: %w", op, err)
	}

	lg.Info("authorize_ok", slog.String("op", op), slog.Time("expires_at", pair.ExpiresAt))

	return pair, nil
}

// randomState генерирует непредсказуемый state для защиты от CSRF.
func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// writeCallbackPage отвечает пользователю простой HTML-страницей.
func writeCallbackPage(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprintf(w, "<html><body><h1>%s</h1></body></html>", message)
}
