package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/oura-scraper/internal/models"
)

var (
	// ErrNotFound — запись не найдена (пара токенов ещё не сохранялась).
	ErrNotFound = errors.New("not found")
	// ErrDecrypt — сохранённые токены не расшифровываются под текущим
	// ключом. Фатальная ошибка: ретраи бессмысленны, нужна повторная
	// авторизация или возврат прежнего ключа.
	ErrDecrypt = errors.New("cannot decrypt stored tokens")
	// ErrSchemaMissing — таблицы не созданы (не применены миграции).
	ErrSchemaMissing = errors.New("schema missing")
)

// TokenStorage хранит единственную живую пару OAuth2-токенов.
type TokenStorage interface {
	// TokenPair возвращает последнюю сохранённую пару.
	// Если пара ни разу не сохранялась — ErrNotFound.
	// Если настроено шифрование и шифртекст не читается — ErrDecrypt.
	TokenPair(ctx context.Context) (*models.TokenPair, error)
	// SaveTokenPair атомарно замещает живую пару новой.
	// Частичное состояние не наблюдаемо: либо прежняя пара, либо новая.
	SaveTokenPair(ctx context.Context, pair *models.TokenPair) error
}

// MetricsStorage сохраняет данные Oura API идемпотентными upsert'ами:
// повторный прогон по пересекающемуся окну не создаёт дублей.
type MetricsStorage interface {
	UpsertPersonalInfo(ctx context.Context, info *models.PersonalInfo) error
	UpsertDailyActivity(ctx context.Context, items []models.DailyActivity) (int, error)
	UpsertDailySleep(ctx context.Context, items []models.DailySleep) (int, error)
	UpsertDailyReadiness(ctx context.Context, items []models.DailyReadiness) (int, error)
	UpsertDailyStress(ctx context.Context, items []models.DailyStress) (int, error)
	UpsertDailySpO2(ctx context.Context, items []models.DailySpO2) (int, error)
	UpsertCardiovascularAge(ctx context.Context, items []models.CardiovascularAge) (int, error)
	UpsertResilience(ctx context.Context, items []models.Resilience) (int, error)
	UpsertSleep(ctx context.Context, items []models.Sleep) (int, error)
	UpsertSleepTime(ctx context.Context, items []models.SleepTime) (int, error)
	UpsertHeartRate(ctx context.Context, items []models.HeartRate) (int, error)
	UpsertVO2Max(ctx context.Context, items []models.VO2Max) (int, error)
	UpsertWorkout(ctx context.Context, items []models.Workout) (int, error)
	UpsertSession(ctx context.Context, items []models.Session) (int, error)
	UpsertEnhancedTag(ctx context.Context, items []models.EnhancedTag) (int, error)
	UpsertRingConfiguration(ctx context.Context, items []models.RingConfiguration) (int, error)
	UpsertRestModePeriod(ctx context.Context, items []models.RestModePeriod) (int, error)
}

// Storage задает контракт работы с БД.
type Storage interface {
	TokenStorage
	MetricsStorage
	Close()
}
