package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/oura-scraper/internal/models"
)

// UpsertPersonalInfo сохраняет профиль пользователя (одна запись на id).
func (s *Storage) UpsertPersonalInfo(ctx context.Context, info *models.PersonalInfo) error {
	const op = "storage.postgres.UpsertPersonalInfo"

	query := `
        INSERT INTO oura_personal_info (id, email, age, weight, height, biological_sex, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
        ON CONFLICT (id) DO UPDATE SET
            email = EXCLUDED.email,
            age = EXCLUDED.age,
            weight = EXCLUDED.weight,
            height = EXCLUDED.height,
            biological_sex = EXCLUDED.biological_sex,
            updated_at = NOW()
    `

	_, err := s.db.Exec(ctx, query,
		info.ID, info.Email, info.Age, info.Weight, info.Height, info.BiologicalSex)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapPgErr(err))
	}

	return nil
}

// UpsertEnhancedTag сохраняет пользовательские метки.
// Колонка day заполняется из start_day: у эндпоинта нет отдельного дня.
func (s *Storage) UpsertEnhancedTag(ctx context.Context, items []models.EnhancedTag) (int, error) {
	const op = "storage.postgres.UpsertEnhancedTag"

	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
		INSERT INTO oura_enhanced_tag (
			id, day, tag_type_code, start_time, end_time, start_day, end_day, comment
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			day = EXCLUDED.day,
			tag_type_code = EXCLUDED.tag_type_code,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			start_day = EXCLUDED.start_day,
			end_day = EXCLUDED.end_day,
			comment = EXCLUDED.comment
		`, it.ID, it.StartDay.Time, it.TagTypeCode, it.StartTime, it.EndTime,
			it.StartDay.Time, nullableDay(it.EndDay), it.Comment)
	}

	return s.sendBatch(ctx, op, batch)
}

// UpsertRingConfiguration сохраняет конфигурации колец.
func (s *Storage) UpsertRingConfiguration(ctx context.Context, items []models.RingConfiguration) (int, error) {
	const op = "storage.postgres.UpsertRingConfiguration"

	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
		INSERT INTO oura_ring_configuration (
			id, color, design, firmware_version, hardware_type, set_up_at, size
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			color = EXCLUDED.color,
			design = EXCLUDED.design,
			firmware_version = EXCLUDED.firmware_version,
			hardware_type = EXCLUDED.hardware_type,
			set_up_at = EXCLUDED.set_up_at,
			size = EXCLUDED.size
		`, it.ID, it.Color, it.Design, it.FirmwareVersion, it.HardwareType, it.SetUpAt, it.Size)
	}

	return s.sendBatch(ctx, op, batch)
}

// UpsertRestModePeriod сохраняет периоды «режима отдыха».
func (s *Storage) UpsertRestModePeriod(ctx context.Context, items []models.RestModePeriod) (int, error) {
	const op = "storage.postgres.UpsertRestModePeriod"

	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
		INSERT INTO oura_rest_mode_period (
			id, start_day, end_day, start_time, end_time, episodes
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			start_day = EXCLUDED.start_day,
			end_day = EXCLUDED.end_day,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			episodes = EXCLUDED.episodes
		`, it.ID, it.StartDay.Time, nullableDay(it.EndDay), it.StartTime, it.EndTime, it.Episodes)
	}

	return s.sendBatch(ctx, op, batch)
}

// nullableDay превращает нулевую дату в NULL.
func nullableDay(d models.Date) interface{} {
	if d.Time.IsZero() {
		return nil
	}

	return d.Time
}
