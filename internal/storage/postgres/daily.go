package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/oura-scraper/internal/models"
)

// Суточные метрики Oura. Все записи идемпотентны: upsert по первичному ключу,
// повторный прогон по пересекающемуся окну дат перезаписывает те же строки.

// UpsertDailyActivity сохраняет записи суточной активности.
func (s *Storage) UpsertDailyActivity(ctx context.Context, items []models.DailyActivity) (int, error) {
	const op = "storage.postgres.UpsertDailyActivity"

	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
		INSERT INTO oura_daily_activity (
			id, day, score, active_calories, average_met_minutes, contributors,
			equivalent_walking_distance, high_activity_met_minutes, high_activity_time,
			inactivity_alerts, low_activity_met_minutes, low_activity_time,
			medium_activity_met_minutes, medium_activity_time, met, meters_to_target,
			non_wear_time, resting_time, sedentary_met_minutes, sedentary_time,
			steps, target_calories, target_meters, total_calories, class_5_min, timestamp
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		ON CONFLICT (id) DO UPDATE SET
			day = EXCLUDED.day,
			score = EXCLUDED.score,
			active_calories = EXCLUDED.active_calories,
			average_met_minutes = EXCLUDED.average_met_minutes,
			contributors = EXCLUDED.contributors,
			equivalent_walking_distance = EXCLUDED.equivalent_walking_distance,
			high_activity_met_minutes = EXCLUDED.high_activity_met_minutes,
			high_activity_time = EXCLUDED.high_activity_time,
			inactivity_alerts = EXCLUDED.inactivity_alerts,
			low_activity_met_minutes = EXCLUDED.low_activity_met_minutes,
			low_activity_time = EXCLUDED.low_activity_time,
			medium_activity_met_minutes = EXCLUDED.medium_activity_met_minutes,
			medium_activity_time = EXCLUDED.medium_activity_time,
			met = EXCLUDED.met,
			meters_to_target = EXCLUDED.meters_to_target,
			non_wear_time = EXCLUDED.non_wear_time,
			resting_time = EXCLUDED.resting_time,
			sedentary_met_minutes = EXCLUDED.sedentary_met_minutes,
			sedentary_time = EXCLUDED.sedentary_time,
			steps = EXCLUDED.steps,
			target_calories = EXCLUDED.target_calories,
			target_meters = EXCLUDED.target_meters,
			total_calories = EXCLUDED.total_calories,
			class_5_min = EXCLUDED.class_5_min,
			timestamp = EXCLUDED.timestamp
		`, it.ID, it.Day.Time, it.Score, it.ActiveCalories, it.AverageMETMinutes, it.Contributors,
			it.EquivalentWalkingDistance, it.HighActivityMETMinutes, it.HighActivityTime,
			it.InactivityAlerts, it.LowActivityMETMinutes, it.LowActivityTime,
			it.MediumActivityMETMinutes, it.MediumActivityTime, it.MET, it.MetersToTarget,
			it.NonWearTime, it.RestingTime, it.SedentaryMETMinutes, it.SedentaryTime,
			it.Steps, it.TargetCalories, it.TargetMeters, it.TotalCalories, it.Class5Min, it.Timestamp)
	}

	return s.sendBatch(ctx, op, batch)
}

// UpsertDailySleep сохраняет суточные оценки сна.
func (s *Storage) UpsertDailySleep(ctx context.Context, items []models.DailySleep) (int, error) {
	const op = "storage.postgres.UpsertDailySleep"

	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
		INSERT INTO oura_daily_sleep (id, day, score, contributors, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			day = EXCLUDED.day,
			score = EXCLUDED.score,
			contributors = EXCLUDED.contributors,
			timestamp = EXCLUDED.timestamp
		`, it.ID, it.Day.Time, it.Score, it.Contributors, it.Timestamp)
	}

	return s.sendBatch(ctx, op, batch)
}

// UpsertDailyReadiness сохраняет суточную готовность.
func (s *Storage) UpsertDailyReadiness(ctx context.Context, items []models.DailyReadiness) (int, error) {
	const op = "storage.postgres.UpsertDailyReadiness"

	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
		INSERT INTO oura_daily_readiness (
			id, day, score, contributors,
			temperature_deviation, temperature_trend_deviation, timestamp
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			day = EXCLUDED.day,
			score = EXCLUDED.score,
			contributors = EXCLUDED.contributors,
			temperature_deviation = EXCLUDED.temperature_deviation,
			temperature_trend_deviation = EXCLUDED.temperature_trend_deviation,
			timestamp = EXCLUDED.timestamp
		`, it.ID, it.Day.Time, it.Score, it.Contributors,
			it.TemperatureDeviation, it.TemperatureTrendDeviation, it.Timestamp)
	}

	return s.sendBatch(ctx, op, batch)
}

// UpsertDailyStress сохраняет суточный стресс.
func (s *Storage) UpsertDailyStress(ctx context.Context, items []models.DailyStress) (int, error) {
	const op = "storage.postgres.UpsertDailyStress"

	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
		INSERT INTO oura_daily_stress (id, day, stress_high, recovery_high, day_summary)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			day = EXCLUDED.day,
			stress_high = EXCLUDED.stress_high,
			recovery_high = EXCLUDED.recovery_high,
			day_summary = EXCLUDED.day_summary
		`, it.ID, it.Day.Time, it.StressHigh, it.RecoveryHigh, it.DaySummary)
	}

	return s.sendBatch(ctx, op, batch)
}

// UpsertDailySpO2 сохраняет суточную сатурацию.
func (s *Storage) UpsertDailySpO2(ctx context.Context, items []models.DailySpO2) (int, error) {
	const op = "storage.postgres.UpsertDailySpO2"

	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
		INSERT INTO oura_daily_spo2 (id, day, spo2_percentage, breathing_disturbance_index)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			day = EXCLUDED.day,
			spo2_percentage = EXCLUDED.spo2_percentage,
			breathing_disturbance_index = EXCLUDED.breathing_disturbance_index
		`, it.ID, it.Day.Time, it.SpO2Percentage, it.BreathingDisturbanceIndex)
	}

	return s.sendBatch(ctx, op, batch)
}

// UpsertCardiovascularAge сохраняет «сосудистый возраст».
// Ключ — день: API не гарантирует id для этого эндпоинта.
func (s *Storage) UpsertCardiovascularAge(ctx context.Context, items []models.CardiovascularAge) (int, error) {
	const op = "storage.postgres.UpsertCardiovascularAge"

	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
		INSERT INTO oura_daily_cardiovascular_age (id, day, vascular_age)
		VALUES ($1, $2, $3)
		ON CONFLICT (day) DO UPDATE SET
			id = EXCLUDED.id,
			vascular_age = EXCLUDED.vascular_age
		`, it.ID, it.Day.Time, it.VascularAge)
	}

	return s.sendBatch(ctx, op, batch)
}

// UpsertResilience сохраняет суточную устойчивость.
func (s *Storage) UpsertResilience(ctx context.Context, items []models.Resilience) (int, error) {
	const op = "storage.postgres.UpsertResilience"

	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
		INSERT INTO oura_daily_resilience (id, day, level, contributors)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			day = EXCLUDED.day,
			level = EXCLUDED.level,
			contributors = EXCLUDED.contributors
		`, it.ID, it.Day.Time, it.Level, it.Contributors)
	}

	return s.sendBatch(ctx, op, batch)
}

// sendBatch выполняет батч и возвращает число обработанных записей.
func (s *Storage) sendBatch(ctx context.Context, op string, batch *pgx.Batch) (int, error) {
	br := s.db.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return 0, fmt.Errorf("%s: batch item %d: %w", op, i, mapPgErr(err))
		}
	}

	return batch.Len(), nil
}
