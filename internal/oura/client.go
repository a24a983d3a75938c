// oura — клиент Oura API v2 (usercollection).
//
// Все списочные эндпоинты отдают страницы вида {"data": [...], "next_token"},
// клиент прозрачно дочитывает их до конца. Авторизация — bearer-токен,
// получаемый через TokenSource перед каждым запросом.
package oura

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/pribylovaa/oura-scraper/internal/models"
	"github.com/pribylovaa/oura-scraper/internal/pkg/log"
)

// ErrUnauthorized — API отклонил bearer-токен (401).
var ErrUnauthorized = errors.New("oura: unauthorized")

// TokenSource выдаёт валидный access-токен; реализуется auth.Manager.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client — HTTP-клиент Oura API v2.
type Client struct {
	http    *http.Client
	baseURL string
	tokens  TokenSource
}

// NewClient создаёт клиент API.
// httpClient может быть nil — тогда используется клиент с таймаутом 30s.
func NewClient(baseURL string, tokens TokenSource, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		tokens:  tokens,
	}
}

// DateRange возвращает окно дат для запросов: (сегодня - days, сегодня)
// в формате YYYY-MM-DD.
func DateRange(days int) (string, string) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	return start.Format("2006-01-02"), end.Format("2006-01-02")
}

// page — страница списочного ответа API.
type page[T any] struct {
	Data      []T    `json:"data"`
	NextToken string `json:"next_token"`
}

// get выполняет один GET с bearer-токеном и декодирует ответ в out.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	const op = "oura.get"

	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	u := c.baseURL + "/" + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", op, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s: %s: %w", op, endpoint, ErrUnauthorized)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: %s: unexpected status %d: %s", op, endpoint, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %s: decode: %w", op, endpoint, err)
	}

	return nil
}

// fetchAll дочитывает все страницы списочного эндпоинта.
func fetchAll[T any](ctx context.Context, c *Client, endpoint string, query url.Values) ([]T, error) {
	lg := log.From(ctx)

	var items []T

	next := ""
	for {
		q := url.Values{}
		for k, vs := range query {
			q[k] = vs
		}
		if next != "" {
			q.Set("next_token", next)
		}

		var pg page[T]
		if err := c.get(ctx, endpoint, q, &pg); err != nil {
			return nil, err
		}

		items = append(items, pg.Data...)

		if pg.NextToken == "" {
			break
		}
		next = pg.NextToken
	}

	lg.Debug("oura_fetch",
		slog.String("endpoint", endpoint),
		slog.Int("records", len(items)),
	)

	return items, nil
}

// dateQuery формирует стандартные параметры окна дат.
func dateQuery(startDate, endDate string) url.Values {
	return url.Values{
		"start_date": []string{startDate},
		"end_date":   []string{endDate},
	}
}

// PersonalInfo возвращает профиль пользователя.
func (c *Client) PersonalInfo(ctx context.Context) (*models.PersonalInfo, error) {
	var info models.PersonalInfo
	if err := c.get(ctx, "personal_info", nil, &info); err != nil {
		return nil, err
	}

	return &info, nil
}

// DailyActivity возвращает суточную активность за окно дат.
func (c *Client) DailyActivity(ctx context.Context, startDate, endDate string) ([]models.DailyActivity, error) {
	return fetchAll[models.DailyActivity](ctx, c, "daily_activity", dateQuery(startDate, endDate))
}

// DailySleep возвращает суточные оценки сна.
func (c *Client) DailySleep(ctx context.Context, startDate, endDate string) ([]models.DailySleep, error) {
	return fetchAll[models.DailySleep](ctx, c, "daily_sleep", dateQuery(startDate, endDate))
}

// DailyReadiness возвращает суточную готовность.
func (c *Client) DailyReadiness(ctx context.Context, startDate, endDate string) ([]models.DailyReadiness, error) {
	return fetchAll[models.DailyReadiness](ctx, c, "daily_readiness", dateQuery(startDate, endDate))
}

// DailyStress возвращает суточный стресс.
func (c *Client) DailyStress(ctx context.Context, startDate, endDate string) ([]models.DailyStress, error) {
	return fetchAll[models.DailyStress](ctx, c, "daily_stress", dateQuery(startDate, endDate))
}

// DailySpO2 возвращает суточную сатурацию.
func (c *Client) DailySpO2(ctx context.Context, startDate, endDate string) ([]models.DailySpO2, error) {
	return fetchAll[models.DailySpO2](ctx, c, "daily_spo2", dateQuery(startDate, endDate))
}

// CardiovascularAge возвращает «сосудистый возраст».
func (c *Client) CardiovascularAge(ctx context.Context, startDate, endDate string) ([]models.CardiovascularAge, error) {
	return fetchAll[models.CardiovascularAge](ctx, c, "daily_cardiovascular_age", dateQuery(startDate, endDate))
}

// Resilience возвращает суточную устойчивость.
func (c *Client) Resilience(ctx context.Context, startDate, endDate string) ([]models.Resilience, error) {
	return fetchAll[models.Resilience](ctx, c, "daily_resilience", dateQuery(startDate, endDate))
}

// Sleep возвращает детальные периоды сна.
func (c *Client) Sleep(ctx context.Context, startDate, endDate string) ([]models.Sleep, error) {
	return fetchAll[models.Sleep](ctx, c, "sleep", dateQuery(startDate, endDate))
}

// SleepTime возвращает рекомендации оптимального времени сна.
func (c *Client) SleepTime(ctx context.Context, startDate, endDate string) ([]models.SleepTime, error) {
	return fetchAll[models.SleepTime](ctx, c, "sleep_time", dateQuery(startDate, endDate))
}

// HeartRate возвращает точки пульса (высокий объём данных).
func (c *Client) HeartRate(ctx context.Context, startDate, endDate string) ([]models.HeartRate, error) {
	return fetchAll[models.HeartRate](ctx, c, "heartrate", dateQuery(startDate, endDate))
}

// VO2Max возвращает оценки VO2 max.
func (c *Client) VO2Max(ctx context.Context, startDate, endDate string) ([]models.VO2Max, error) {
	return fetchAll[models.VO2Max](ctx, c, "vO2_max", dateQuery(startDate, endDate))
}

// Workout возвращает тренировки.
func (c *Client) Workout(ctx context.Context, startDate, endDate string) ([]models.Workout, error) {
	return fetchAll[models.Workout](ctx, c, "workout", dateQuery(startDate, endDate))
}

// Session возвращает сессии медитации/дыхания/дневного сна.
func (c *Client) Session(ctx context.Context, startDate, endDate string) ([]models.Session, error) {
	return fetchAll[models.Session](ctx, c, "session", dateQuery(startDate, endDate))
}

// EnhancedTag возвращает пользовательские метки.
func (c *Client) EnhancedTag(ctx context.Context, startDate, endDate string) ([]models.EnhancedTag, error) {
	return fetchAll[models.EnhancedTag](ctx, c, "enhanced_tag", dateQuery(startDate, endDate))
}

// RingConfiguration возвращает конфигурации колец.
func (c *Client) RingConfiguration(ctx context.Context) ([]models.RingConfiguration, error) {
	return fetchAll[models.RingConfiguration](ctx, c, "ring_configuration", nil)
}

// RestModePeriod возвращает периоды «режима отдыха».
func (c *Client) RestModePeriod(ctx context.Context, startDate, endDate string) ([]models.RestModePeriod, error) {
	return fetchAll[models.RestModePeriod](ctx, c, "rest_mode_period", dateQuery(startDate, endDate))
}
