package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/oura-scraper/internal/models"
)

// UpsertSleep сохраняет детальные периоды сна.
func (s *Storage) UpsertSleep(ctx context.Context, items []models.Sleep) (int, error) {
	const op = "storage.postgres.UpsertSleep"

	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
		INSERT INTO oura_sleep_data (
			id, day, bedtime_start, bedtime_end, average_breath, average_heart_rate,
			average_hrv, awake_time, deep_sleep_duration, efficiency, heart_rate, hrv,
			latency, light_sleep_duration, low_battery_alert, lowest_heart_rate,
			movement_30_sec, period, readiness, readiness_score_delta, rem_sleep_duration,
			restless_periods, sleep_phase_5_min, sleep_score_delta, sleep_algorithm_version,
			time_in_bed, total_sleep_duration, type, ring_id, sleep_analysis_reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)
		ON CONFLICT (id) DO UPDATE SET
			day = EXCLUDED.day,
			bedtime_start = EXCLUDED.bedtime_start,
			bedtime_end = EXCLUDED.bedtime_end,
			average_breath = EXCLUDED.average_breath,
			average_heart_rate = EXCLUDED.average_heart_rate,
			average_hrv = EXCLUDED.average_hrv,
			awake_time = EXCLUDED.awake_time,
			deep_sleep_duration = EXCLUDED.deep_sleep_duration,
			efficiency = EXCLUDED.efficiency,
			heart_rate = EXCLUDED.heart_rate,
			hrv = EXCLUDED.hrv,
			latency = EXCLUDED.latency,
			light_sleep_duration = EXCLUDED.light_sleep_duration,
			low_battery_alert = EXCLUDED.low_battery_alert,
			lowest_heart_rate = EXCLUDED.lowest_heart_rate,
			movement_30_sec = EXCLUDED.movement_30_sec,
			period = EXCLUDED.period,
			readiness = EXCLUDED.readiness,
			readiness_score_delta = EXCLUDED.readiness_score_delta,
			rem_sleep_duration = EXCLUDED.rem_sleep_duration,
			restless_periods = EXCLUDED.restless_periods,
			sleep_phase_5_min = EXCLUDED.sleep_phase_5_min,
			sleep_score_delta = EXCLUDED.sleep_score_delta,
			sleep_algorithm_version = EXCLUDED.sleep_algorithm_version,
			time_in_bed = EXCLUDED.time_in_bed,
			total_sleep_duration = EXCLUDED.total_sleep_duration,
			type = EXCLUDED.type,
			ring_id = EXCLUDED.ring_id,
			sleep_analysis_reason = EXCLUDED.sleep_analysis_reason
		`, it.ID, it.Day.Time, it.BedtimeStart, it.BedtimeEnd, it.AverageBreath, it.AverageHeartRate,
			it.AverageHRV, it.AwakeTime, it.DeepSleepDuration, it.Efficiency, it.HeartRate, it.HRV,
			it.Latency, it.LightSleepDuration, it.LowBatteryAlert, it.LowestHeartRate,
			it.Movement30Sec, it.Period, it.Readiness, it.ReadinessScoreDelta, it.REMSleepDuration,
			it.RestlessPeriods, it.SleepPhase5Min, it.SleepScoreDelta, it.SleepAlgorithmVersion,
			it.TimeInBed, it.TotalSleepDuration, it.Type, it.RingID, it.SleepAnalysisReason)
	}

	return s.sendBatch(ctx, op, batch)
}

// UpsertSleepTime сохраняет рекомендации оптимального времени сна.
func (s *Storage) UpsertSleepTime(ctx context.Context, items []models.SleepTime) (int, error) {
	const op = "storage.postgres.UpsertSleepTime"

	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
		INSERT INTO oura_sleep_time (id, day, optimal_bedtime, recommendation, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			day = EXCLUDED.day,
			optimal_bedtime = EXCLUDED.optimal_bedtime,
			recommendation = EXCLUDED.recommendation,
			status = EXCLUDED.status
		`, it.ID, it.Day.Time, it.OptimalBedtime, it.Recommendation, it.Status)
	}

	return s.sendBatch(ctx, op, batch)
}
