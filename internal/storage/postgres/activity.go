package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/oura-scraper/internal/models"
)

// UpsertHeartRate сохраняет точки пульса. Естественный ключ — timestamp:
// у эндпоинта heartrate нет документных id.
func (s *Storage) UpsertHeartRate(ctx context.Context, items []models.HeartRate) (int, error) {
	const op = "storage.postgres.UpsertHeartRate"

	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
		INSERT INTO oura_heart_rate (timestamp, bpm, source)
		VALUES ($1, $2, $3)
		ON CONFLICT (timestamp) DO UPDATE SET
			bpm = EXCLUDED.bpm,
			source = EXCLUDED.source
		`, it.Timestamp, it.BPM, it.Source)
	}

	return s.sendBatch(ctx, op, batch)
}

// UpsertVO2Max сохраняет оценки VO2 max.
func (s *Storage) UpsertVO2Max(ctx context.Context, items []models.VO2Max) (int, error) {
	const op = "storage.postgres.UpsertVO2Max"

	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
		INSERT INTO oura_vo2_max (id, day, vo2_max, timestamp)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			day = EXCLUDED.day,
			vo2_max = EXCLUDED.vo2_max,
			timestamp = EXCLUDED.timestamp
		`, it.ID, it.Day.Time, it.VO2Max, it.Timestamp)
	}

	return s.sendBatch(ctx, op, batch)
}

// UpsertWorkout сохраняет тренировки.
func (s *Storage) UpsertWorkout(ctx context.Context, items []models.Workout) (int, error) {
	const op = "storage.postgres.UpsertWorkout"

	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
		INSERT INTO oura_workout (
			id, day, activity, calories, distance,
			start_datetime, end_datetime, intensity, label, source
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			day = EXCLUDED.day,
			activity = EXCLUDED.activity,
			calories = EXCLUDED.calories,
			distance = EXCLUDED.distance,
			start_datetime = EXCLUDED.start_datetime,
			end_datetime = EXCLUDED.end_datetime,
			intensity = EXCLUDED.intensity,
			label = EXCLUDED.label,
			source = EXCLUDED.source
		`, it.ID, it.Day.Time, it.Activity, it.Calories, it.Distance,
			it.StartDatetime, it.EndDatetime, it.Intensity, it.Label, it.Source)
	}

	return s.sendBatch(ctx, op, batch)
}

// UpsertSession сохраняет сессии (медитация, дыхание, дневной сон).
func (s *Storage) UpsertSession(ctx context.Context, items []models.Session) (int, error) {
	const op = "storage.postgres.UpsertSession"

	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
		INSERT INTO oura_session (
			id, day, start_datetime, end_datetime, type, mood,
			heart_rate, hrv, motion_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			day = EXCLUDED.day,
			start_datetime = EXCLUDED.start_datetime,
			end_datetime = EXCLUDED.end_datetime,
			type = EXCLUDED.type,
			mood = EXCLUDED.mood,
			heart_rate = EXCLUDED.heart_rate,
			hrv = EXCLUDED.hrv,
			motion_count = EXCLUDED.motion_count
		`, it.ID, it.Day.Time, it.StartDatetime, it.EndDatetime, it.Type, it.Mood,
			it.HeartRate, it.HRV, it.MotionCount)
	}

	return s.sendBatch(ctx, op, batch)
}
