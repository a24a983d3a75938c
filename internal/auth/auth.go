// auth управляет жизненным циклом OAuth2-токенов Oura.
//
// Refresh-токены Oura одноразовые: после обмена сервер инвалидирует
// предъявленное значение и возвращает новое. Отсюда два жёстких правила
// менеджера:
//   - новая пара сохраняется в хранилище ДО возврата access-токена вызывающему
//     (падение после save не теряет пару, а повторный вызов в том же процессе
//     не предъявит устаревший refresh-токен);
//   - неудавшийся обмен не повторяется с тем же refresh-токеном: сервер мог
//     успеть провести ротацию, даже если клиент не увидел ответа.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/pribylovaa/oura-scraper/internal/config"
	"github.com/pribylovaa/oura-scraper/internal/models"
	"github.com/pribylovaa/oura-scraper/internal/pkg/log"
	"github.com/pribylovaa/oura-scraper/internal/storage"
)

// ErrAuthentication — обмен refresh-токена отклонён или не состоялся.
// Фатально для текущего прогона: без валидного токена выгрузка не начинается,
// оператору нужно пройти авторизацию заново (-authorize).
var ErrAuthentication = errors.New("authentication failed")

// Manager выдаёт валидный access-токен, при необходимости прозрачно выполняя
// refresh и примиряя bootstrap-конфигурацию с сохранённым состоянием.
//
// Не рассчитан на конкурентный refresh из нескольких процессов:
// развёртывание single-replica.
type Manager struct {
	store  storage.TokenStorage
	conf   *oauth2.Config
	client *http.Client

	bootstrapAccess  string
	bootstrapRefresh string

	margin time.Duration
	now    func() time.Time
}

// New создаёт менеджер токенов.
// httpClient может быть nil — тогда обмен идёт через http.DefaultClient.
func New(store storage.TokenStorage, cfg config.OuraConfig, httpClient *http.Client) *Manager {
	return &Manager{
		store: store,
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
				// Автоопределение стиля аутентификации повторяет POST с тем же
				// refresh-токеном после 4xx — для одноразовых токенов это
				// недопустимо, стиль фиксируется заранее.
				AuthStyle: oauth2.AuthStyleInHeader,
			},
			Scopes: cfg.Scopes,
		},
		client:           httpClient,
		bootstrapAccess:  cfg.AccessToken,
		bootstrapRefresh: cfg.RefreshToken,
		margin:           cfg.SafetyMargin,
		now:              time.Now,
	}
}

// AccessToken возвращает валидный access-токен для запросов к API.
//
// Порядок:
//  1. загрузка пары из хранилища; если пары нет — bootstrap из конфигурации
//     (с нулевым ExpiresAt: её реальный срок жизни неизвестен, считаем
//     истёкшей). Сохранённое состояние всегда приоритетнее bootstrap;
//  2. если до истечения больше safety margin — токен возвращается как есть,
//     без сетевых вызовов и записи;
//  3. иначе ровно один refresh-обмен; новая пара сохраняется до возврата.
func (m *Manager) AccessToken(ctx context.Context) (string, error) {
	const op = "auth.AccessToken"

	lg := log.From(ctx)

	pair, err := m.store.TokenPair(ctx)
	switch {
	case err == nil:
		// Сохранённая пара — система записи.
	case errors.Is(err, storage.ErrNotFound):
		if m.bootstrapRefresh == "" {
			return "", fmt.Errorf("%s: no stored tokens and no bootstrap credentials: %w", op, ErrAuthentication)
		}

		lg.Info("token_bootstrap", slog.String("op", op))

		pair = &models.TokenPair{
			AccessToken:  m.bootstrapAccess,
			RefreshToken: m.bootstrapRefresh,
			// ExpiresAt нулевой: bootstrap-токен считается истёкшим,
			// первый же вызов выполнит refresh.
		}
	default:
		// Сюда попадает и storage.ErrDecrypt: фатально, без ретраев.
		return "", fmt.Errorf("%s: %w", op, err)
	}

	now := m.now().UTC()

	if pair.Valid(now, m.margin) {
		return pair.AccessToken, nil
	}

	lg.Info("token_refresh_start", slog.String("op", op))

	fresh, err := m.refresh(ctx, pair.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if fresh.RefreshToken == "" {
		// Сервер не вернул новый refresh-токен — прежний остаётся в силе.
		fresh.RefreshToken = pair.RefreshToken
	}

	if err := m.store.SaveTokenPair(ctx, fresh); err != nil {
		return "", fmt.Errorf("%s: save refreshed pair: %w", op, err)
	}

	lg.Info("token_refreshed",
		slog.String("op", op),
		slog.Time("expires_at", fresh.ExpiresAt),
	)

	return fresh.AccessToken, nil
}

// refresh выполняет один обмен refresh-токена на новую пару.
// Повторов нет: любой исход, кроме успеха, — ErrAuthentication.
func (m *Manager) refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	if m.client != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, m.client)
	}

	src := m.conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	tok, err := src.Token()
	if err != nil {
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) {
			return nil, fmt.Errorf("%w: token endpoint returned %d (%s)",
				ErrAuthentication, rErr.Response.StatusCode, rErr.ErrorCode)
		}

		return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	return &models.TokenPair{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.Expiry.UTC(),
		UpdatedAt:    m.now().UTC(),
	}, nil
}
