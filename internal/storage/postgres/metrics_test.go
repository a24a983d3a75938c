package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/oura-scraper/internal/models"
	"github.com/pribylovaa/oura-scraper/internal/storage"
)

// Интеграционные тесты репозиториев метрик (daily.go, sleep.go, activity.go, misc.go):
// идемпотентность upsert по первичному ключу — повторный прогон по тому же окну
// дат не плодит дубликатов, а обновляет существующие строки.

func day(t *testing.T, s string) models.Date {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return models.Date{Time: parsed}
}

// TestIntegration_UpsertDailySleep_Idempotent —
// повторный upsert тех же id обновляет строки, число строк не растёт.
func TestIntegration_UpsertDailySleep_Idempotent(t *testing.T) {
	st, _, cleanup := startPostgres(t, nil)
	defer cleanup()

	ctx := context.Background()
	items := []models.DailySleep{
		{ID: uuid.NewString(), Day: day(t, "2025-03-13"), Score: 70, Contributors: json.RawMessage(`{"deep_sleep": 80}`), Timestamp: time.Now().UTC()},
		{ID: uuid.NewString(), Day: day(t, "2025-03-14"), Score: 75, Contributors: json.RawMessage(`{"deep_sleep": 85}`), Timestamp: time.Now().UTC()},
	}

	n, err := st.UpsertDailySleep(ctx, items)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// Второй проход с обновлённым значением.
	items[1].Score = 90
	n, err = st.UpsertDailySleep(ctx, items)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	var rows, score int
	require.NoError(t, st.db.QueryRow(ctx, `SELECT count(*) FROM oura_daily_sleep`).Scan(&rows))
	require.Equal(t, 2, rows)

	require.NoError(t, st.db.QueryRow(ctx, `SELECT score FROM oura_daily_sleep WHERE id = $1`, items[1].ID).Scan(&score))
	require.Equal(t, 90, score)
}

// TestIntegration_UpsertHeartRate_TimestampKey —
// естественный ключ точек пульса — timestamp; повторная точка обновляет bpm.
func TestIntegration_UpsertHeartRate_TimestampKey(t *testing.T) {
	st, _, cleanup := startPostgres(t, nil)
	defer cleanup()

	ctx := context.Background()
	ts := time.Now().UTC().Truncate(time.Microsecond)

	_, err := st.UpsertHeartRate(ctx, []models.HeartRate{
		{Timestamp: ts, BPM: 60, Source: "awake"},
		{Timestamp: ts.Add(5 * time.Minute), BPM: 62, Source: "awake"},
	})
	require.NoError(t, err)

	_, err = st.UpsertHeartRate(ctx, []models.HeartRate{
		{Timestamp: ts, BPM: 58, Source: "rest"},
	})
	require.NoError(t, err)

	var rows, bpm int
	require.NoError(t, st.db.QueryRow(ctx, `SELECT count(*) FROM oura_heart_rate`).Scan(&rows))
	require.Equal(t, 2, rows)

	require.NoError(t, st.db.QueryRow(ctx, `SELECT bpm FROM oura_heart_rate WHERE timestamp = $1`, ts).Scan(&bpm))
	require.Equal(t, 58, bpm)
}

// TestIntegration_UpsertPersonalInfo_SingleRowPerUser —
// профиль обновляется на месте.
func TestIntegration_UpsertPersonalInfo_SingleRowPerUser(t *testing.T) {
	st, _, cleanup := startPostgres(t, nil)
	defer cleanup()

	ctx := context.Background()
	info := &models.PersonalInfo{ID: "u1", Email: "user@example.com", Age: 34, Weight: 72.5, Height: 1.8, BiologicalSex: "male"}

	require.NoError(t, st.UpsertPersonalInfo(ctx, info))

	info.Age = 35
	require.NoError(t, st.UpsertPersonalInfo(ctx, info))

	var rows, age int
	require.NoError(t, st.db.QueryRow(ctx, `SELECT count(*), max(age) FROM oura_personal_info`).Scan(&rows, &age))
	require.Equal(t, 1, rows)
	require.Equal(t, 35, age)
}

// TestIntegration_UpsertEmptySlice_NoOp — пустой ответ API не трогает БД.
func TestIntegration_UpsertEmptySlice_NoOp(t *testing.T) {
	st, _, cleanup := startPostgres(t, nil)
	defer cleanup()

	n, err := st.UpsertWorkout(context.Background(), nil)
	require.NoError(t, err)
	require.Zero(t, n)
}

// TestIntegration_Upsert_SchemaMissing — метрики тоже диагностируют
// отсутствующую схему.
func TestIntegration_Upsert_SchemaMissing(t *testing.T) {
	st, _, cleanup := startPostgres(t, nil)
	defer cleanup()

	ctx := context.Background()
	_, err := st.db.Exec(ctx, `DROP TABLE oura_workout`)
	require.NoError(t, err)

	_, err = st.UpsertWorkout(ctx, []models.Workout{{ID: uuid.NewString(), Day: day(t, "2025-03-14"), Activity: "running"}})
	require.ErrorIs(t, err, storage.ErrSchemaMissing)
}
