package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/oura-scraper/internal/config"
	"github.com/pribylovaa/oura-scraper/internal/models"
	"github.com/pribylovaa/oura-scraper/internal/storage"
	"github.com/pribylovaa/oura-scraper/mocks"
)

// Тесты менеджера токенов.
//
// Покрытие:
//  - валидная пара в хранилище -> ни одного сетевого вызова и ни одной записи;
//  - истёкшая пара -> ровно один обмен, новая пара сохранена до возврата;
//  - пустое хранилище + bootstrap из конфигурации -> обмен bootstrap-пары;
//  - пустое хранилище без bootstrap -> ErrAuthentication без сетевых вызовов;
//  - отказ сервера авторизации (invalid_grant) -> ErrAuthentication, запись не выполняется;
//  - ErrDecrypt из хранилища проходит наверх как есть (не ErrAuthentication);
//  - ошибка записи новой пары -> access-токен не возвращается;
//  - сервер не вернул новый refresh-токен -> прежний сохраняется в паре.

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// newTokenServer поднимает фальшивый OAuth2 token endpoint и считает обращения.
func newTokenServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func grantOK(t *testing.T, access, refresh string) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "refresh_token", r.FormValue("grant_type"))
		require.NotEmpty(t, r.FormValue("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tokenResponse{
			AccessToken:  access,
			RefreshToken: refresh,
			TokenType:    "Bearer",
			ExpiresIn:    86400,
		})
	}
}

func grantDenied() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "invalid_grant"}`))
	}
}

func newManagerWithMock(t *testing.T, tokenURL string, cfgMut func(*config.OuraConfig)) (*Manager, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockSt := mocks.NewMockStorage(ctrl)

	cfg := config.OuraConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		TokenURL:     tokenURL,
		SafetyMargin: time.Minute,
	}
	if cfgMut != nil {
		cfgMut(&cfg)
	}

	m := New(mockSt, cfg, nil)
	m.now = func() time.Time { return testNow }

	return m, mockSt, ctrl
}

func TestAccessToken_ValidPair_NoNetworkNoSave(t *testing.T) {
	srv, calls := newTokenServer(t, grantOK(t, "A2", "R2"))
	m, mockSt, ctrl := newManagerWithMock(t, srv.URL, nil)
	defer ctrl.Finish()

	mockSt.EXPECT().TokenPair(gomock.Any()).Return(&models.TokenPair{
		AccessToken:  "A1",
		RefreshToken: "R1",
		ExpiresAt:    testNow.Add(time.Hour),
	}, nil)

	got, err := m.AccessToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, "A1", got)
	require.Equal(t, int32(0), calls.Load())
}

func TestAccessToken_Expired_RefreshesAndSavesBeforeReturn(t *testing.T) {
	srv, calls := newTokenServer(t, grantOK(t, "A2", "R2"))
	m, mockSt, ctrl := newManagerWithMock(t, srv.URL, nil)
	defer ctrl.Finish()

	mockSt.EXPECT().TokenPair(gomock.Any()).Return(&models.TokenPair{
		AccessToken:  "A1",
		RefreshToken: "R1",
		ExpiresAt:    testNow.Add(-time.Hour),
	}, nil)

	var saved *models.TokenPair
	mockSt.EXPECT().SaveTokenPair(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pair *models.TokenPair) error {
			saved = pair
			return nil
		})

	got, err := m.AccessToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, "A2", got)
	require.Equal(t, int32(1), calls.Load(), "ожидаем ровно один обмен")

	require.NotNil(t, saved, "новая пара должна быть сохранена до возврата")
	require.Equal(t, "A2", saved.AccessToken)
	require.Equal(t, "R2", saved.RefreshToken)
	require.WithinDuration(t, time.Now().Add(86400*time.Second), saved.ExpiresAt, time.Minute)
}

func TestAccessToken_InsideSafetyMargin_Refreshes(t *testing.T) {
	srv, calls := newTokenServer(t, grantOK(t, "A2", "R2"))
	m, mockSt, ctrl := newManagerWithMock(t, srv.URL, nil)
	defer ctrl.Finish()

	// Токен формально жив, но до истечения меньше safety margin.
	mockSt.EXPECT().TokenPair(gomock.Any()).Return(&models.TokenPair{
		AccessToken:  "A1",
		RefreshToken: "R1",
		ExpiresAt:    testNow.Add(30 * time.Second),
	}, nil)
	mockSt.EXPECT().SaveTokenPair(gomock.Any(), gomock.Any()).Return(nil)

	got, err := m.AccessToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, "A2", got)
	require.Equal(t, int32(1), calls.Load())
}

func TestAccessToken_Bootstrap_FirstRun(t *testing.T) {
	srv, calls := newTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "R1", r.FormValue("refresh_token"), "обмен должен идти с bootstrap refresh-токеном")
		grantOK(t, "A2", "R2")(w, r)
	})
	m, mockSt, ctrl := newManagerWithMock(t, srv.URL, func(cfg *config.OuraConfig) {
		cfg.AccessToken = "A1"
		cfg.RefreshToken = "R1"
	})
	defer ctrl.Finish()

	mockSt.EXPECT().TokenPair(gomock.Any()).Return(nil, storage.ErrNotFound)

	var saved *models.TokenPair
	mockSt.EXPECT().SaveTokenPair(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pair *models.TokenPair) error {
			saved = pair
			return nil
		})

	got, err := m.AccessToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, "A2", got)
	require.Equal(t, int32(1), calls.Load())
	require.Equal(t, "R2", saved.RefreshToken)
}

func TestAccessToken_NoStoredNoBootstrap(t *testing.T) {
	srv, calls := newTokenServer(t, grantOK(t, "A2", "R2"))
	m, mockSt, ctrl := newManagerWithMock(t, srv.URL, nil)
	defer ctrl.Finish()

	mockSt.EXPECT().TokenPair(gomock.Any()).Return(nil, storage.ErrNotFound)

	_, err := m.AccessToken(context.Background())
	require.ErrorIs(t, err, ErrAuthentication)
	require.Equal(t, int32(0), calls.Load())
}

func TestAccessToken_RefreshRejected(t *testing.T) {
	srv, calls := newTokenServer(t, grantDenied())
	m, mockSt, ctrl := newManagerWithMock(t, srv.URL, nil)
	defer ctrl.Finish()

	mockSt.EXPECT().TokenPair(gomock.Any()).Return(&models.TokenPair{
		AccessToken:  "A1",
		RefreshToken: "R1",
		ExpiresAt:    testNow.Add(-time.Hour),
	}, nil)
	// SaveTokenPair не ожидается: после отказа писать нечего.

	_, err := m.AccessToken(context.Background())
	require.ErrorIs(t, err, ErrAuthentication)
	require.Contains(t, err.Error(), "invalid_grant")
	require.Equal(t, int32(1), calls.Load(), "после отказа нет повторного предъявления refresh-токена")
}

func TestAccessToken_DecryptErrorPropagates(t *testing.T) {
	srv, calls := newTokenServer(t, grantOK(t, "A2", "R2"))
	m, mockSt, ctrl := newManagerWithMock(t, srv.URL, nil)
	defer ctrl.Finish()

	mockSt.EXPECT().TokenPair(gomock.Any()).Return(nil, storage.ErrDecrypt)

	_, err := m.AccessToken(context.Background())
	require.ErrorIs(t, err, storage.ErrDecrypt)
	require.NotErrorIs(t, err, ErrAuthentication)
	require.Equal(t, int32(0), calls.Load())
}

func TestAccessToken_SaveFailure_NoToken(t *testing.T) {
	srv, _ := newTokenServer(t, grantOK(t, "A2", "R2"))
	m, mockSt, ctrl := newManagerWithMock(t, srv.URL, nil)
	defer ctrl.Finish()

	mockSt.EXPECT().TokenPair(gomock.Any()).Return(&models.TokenPair{
		AccessToken:  "A1",
		RefreshToken: "R1",
		ExpiresAt:    testNow.Add(-time.Hour),
	}, nil)
	mockSt.EXPECT().SaveTokenPair(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	got, err := m.AccessToken(context.Background())
	require.Error(t, err)
	require.Empty(t, got, "токен не возвращается, если пара не сохранена")
}

func TestAccessToken_EmptyRotatedRefresh_KeepsPrevious(t *testing.T) {
	srv, _ := newTokenServer(t, grantOK(t, "A2", ""))
	m, mockSt, ctrl := newManagerWithMock(t, srv.URL, nil)
	defer ctrl.Finish()

	mockSt.EXPECT().TokenPair(gomock.Any()).Return(&models.TokenPair{
		AccessToken:  "A1",
		RefreshToken: "R1",
		ExpiresAt:    testNow.Add(-time.Hour),
	}, nil)

	var saved *models.TokenPair
	mockSt.EXPECT().SaveTokenPair(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pair *models.TokenPair) error {
			saved = pair
			return nil
		})

	_, err := m.AccessToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, "R1", saved.RefreshToken)
}
