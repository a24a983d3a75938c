package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/oura-scraper/internal/oura"
	"github.com/pribylovaa/oura-scraper/internal/pkg/log"
)

// EndpointStat — итог выгрузки одного эндпоинта.
type EndpointStat struct {
	Records int
	Err     string
}

// Stats — итоги одного прохода выгрузки.
type Stats struct {
	RunID      uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time
	Endpoints  map[string]EndpointStat
}

// Failed возвращает число эндпоинтов, завершившихся ошибкой.
func (s *Stats) Failed() int {
	var n int
	for _, st := range s.Endpoints {
		if st.Err != "" {
			n++
		}
	}

	return n
}

// ScrapeOnce выполняет один полный проход по всем эндпоинтам.
//
// Ошибка разрешения токена (ErrAuthentication, ErrDecrypt) фатальна и
// возвращается до обращения к каким-либо эндпоинтам данных: частичная
// аутентификация недопустима. Ошибка отдельного эндпоинта не прерывает
// остальные — она фиксируется в Stats и метриках.
func (s *Service) ScrapeOnce(ctx context.Context) (*Stats, error) {
	const op = "service.scraper.ScrapeOnce"

	runID := uuid.New()
	// Все записи прохода несут общий run_id для корреляции в логах.
	ctx = log.WithAttrs(ctx, slog.String("run_id", runID.String()))
	lg := log.From(ctx)

	// Токен разрешается заранее: неудача здесь останавливает весь прогон.
	if _, err := s.tokens.AccessToken(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	startDate, endDate := oura.DateRange(s.cfg.Days)

	lg.Info("scrape_start",
		slog.String("op", op),
		slog.Int("days", s.cfg.Days),
		slog.String("start_date", startDate),
		slog.String("end_date", endDate),
	)

	stats := &Stats{
		RunID:     runID,
		StartedAt: time.Now().UTC(),
		Endpoints: make(map[string]EndpointStat),
	}

	s.scrape(ctx, stats, "personal_info", func(ctx context.Context) (int, error) {
		info, err := s.client.PersonalInfo(ctx)
		if err != nil {
			return 0, err
		}
		if err := s.storage.UpsertPersonalInfo(ctx, info); err != nil {
			return 0, err
		}
		return 1, nil
	})

	s.scrape(ctx, stats, "daily_activity", func(ctx context.Context) (int, error) {
		items, err := s.client.DailyActivity(ctx, startDate, endDate)
		if err != nil {
			return 0, err
		}
		return s.storage.UpsertDailyActivity(ctx, items)
	})

	s.scrape(ctx, stats, "daily_sleep", func(ctx context.Context) (int, error) {
		items, err := s.client.DailySleep(ctx, startDate, endDate)
		if err != nil {
			return 0, err
		}
		return s.storage.UpsertDailySleep(ctx, items)
	})

	s.scrape(ctx, stats, "daily_readiness", func(ctx context.Context) (int, error) {
		items, err := s.client.DailyReadiness(ctx, startDate, endDate)
		if err != nil {
			return 0, err
		}
		return s.storage.UpsertDailyReadiness(ctx, items)
	})

	s.scrape(ctx, stats, "daily_stress", func(ctx context.Context) (int, error) {
		items, err := s.client.DailyStress(ctx, startDate, endDate)
		if err != nil {
			return 0, err
		}
		return s.storage.UpsertDailyStress(ctx, items)
	})

	s.scrape(ctx, stats, "daily_spo2", func(ctx context.Context) (int, error) {
		items, err := s.client.DailySpO2(ctx, startDate, endDate)
		if err != nil {
			return 0, err
		}
		return s.storage.UpsertDailySpO2(ctx, items)
	})

	s.scrape(ctx, stats, "daily_cardiovascular_age", func(ctx context.Context) (int, error) {
		items, err := s.client.CardiovascularAge(ctx, startDate, endDate)
		if err != nil {
			return 0, err
		}
		return s.storage.UpsertCardiovascularAge(ctx, items)
	})

	s.scrape(ctx, stats, "daily_resilience", func(ctx context.Context) (int, error) {
		items, err := s.client.Resilience(ctx, startDate, endDate)
		if err != nil {
			return 0, err
		}
		return s.storage.UpsertResilience(ctx, items)
	})

	s.scrape(ctx, stats, "sleep", func(ctx context.Context) (int, error) {
		items, err := s.client.Sleep(ctx, startDate, endDate)
		if err != nil {
			return 0, err
		}
		return s.storage.UpsertSleep(ctx, items)
	})

	s.scrape(ctx, stats, "sleep_time", func(ctx context.Context) (int, error) {
		items, err := s.client.SleepTime(ctx, startDate, endDate)
		if err != nil {
			return 0, err
		}
		return s.storage.UpsertSleepTime(ctx, items)
	})

	s.scrape(ctx, stats, "heartrate", func(ctx context.Context) (int, error) {
		items, err := s.client.HeartRate(ctx, startDate, endDate)
		if err != nil {
			return 0, err
		}
		return s.storage.UpsertHeartRate(ctx, items)
	})

	s.scrape(ctx, stats, "vo2_max", func(ctx context.Context) (int, error) {
		items, err := s.client.VO2Max(ctx, startDate, endDate)
		if err != nil {
			return 0, err
		}
		return s.storage.UpsertVO2Max(ctx, items)
	})

	s.scrape(ctx, stats, "workout", func(ctx context.Context) (int, error) {
		items, err := s.client.Workout(ctx, startDate, endDate)
		if err != nil {
			return 0, err
		}
		return s.storage.UpsertWorkout(ctx, items)
	})

	s.scrape(ctx, stats, "session", func(ctx context.Context) (int, error) {
		items, err := s.client.Session(ctx, startDate, endDate)
		if err != nil {
			return 0, err
		}
		return s.storage.UpsertSession(ctx, items)
	})

	s.scrape(ctx, stats, "enhanced_tag", func(ctx context.Context) (int, error) {
		items, err := s.client.EnhancedTag(ctx, startDate, endDate)
		if err != nil {
			return 0, err
		}
		return s.storage.UpsertEnhancedTag(ctx, items)
	})

	s.scrape(ctx, stats, "ring_configuration", func(ctx context.Context) (int, error) {
		items, err := s.client.RingConfiguration(ctx)
		if err != nil {
			return 0, err
		}
		return s.storage.UpsertRingConfiguration(ctx, items)
	})

	s.scrape(ctx, stats, "rest_mode_period", func(ctx context.Context) (int, error) {
		items, err := s.client.RestModePeriod(ctx, startDate, endDate)
		if err != nil {
			return 0, err
		}
		return s.storage.UpsertRestModePeriod(ctx, items)
	})

	stats.FinishedAt = time.Now().UTC()
	scrapeLastRun.SetToCurrentTime()

	lg.Info("scrape_done",
		slog.String("op", op),
		slog.Int("endpoints", len(stats.Endpoints)),
		slog.Int("failed", stats.Failed()),
		slog.Duration("elapsed", stats.FinishedAt.Sub(stats.StartedAt)),
	)

	return stats, nil
}

// scrape выполняет выгрузку одного эндпоинта с изоляцией ошибок.
func (s *Service) scrape(ctx context.Context, stats *Stats, endpoint string, fn func(context.Context) (int, error)) {
	const op = "service.scraper.scrape"

	lg := log.From(ctx)

	n, err := fn(ctx)
	if err != nil {
		scrapeErrorsTotal.WithLabelValues(endpoint).Inc()
		stats.Endpoints[endpoint] = EndpointStat{Err: err.Error()}

		lg.Warn("scrape_endpoint_failed",
			slog.String("op", op),
			slog.String("endpoint", endpoint),
			slog.String("err", err.Error()),
		)

		return
	}

	scrapeRecordsTotal.WithLabelValues(endpoint).Add(float64(n))
	stats.Endpoints[endpoint] = EndpointStat{Records: n}

	lg.Info("scrape_endpoint_ok",
		slog.String("op", op),
		slog.String("endpoint", endpoint),
		slog.Int("records", n),
	)
}

// Run запускает периодическую выгрузку: немедленный проход, затем по тикеру
// с интервалом из конфигурации. Останавливается по ctx.
//
// Фатальные ошибки разрешения токена завершают Run с ошибкой: без валидной
// пары токенов продолжать бессмысленно, нужно вмешательство оператора.
func (s *Service) Run(ctx context.Context) error {
	const op = "service.scraper.Run"

	lg := log.From(ctx)
	lg.Info("scraper_start",
		slog.String("op", op),
		slog.Duration("interval", s.cfg.Interval),
	)

	if _, err := s.ScrapeOnce(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			lg.Info("scraper_stop", slog.String("op", op))
			return nil
		case <-ticker.C:
			if _, err := s.ScrapeOnce(ctx); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}
	}
}
