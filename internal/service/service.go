// service содержит бизнес-логику oura-scraper: обход всех эндпоинтов API
// за trailing-окно дат и сохранение в БД.
package service

import (
	"context"

	"github.com/pribylovaa/oura-scraper/internal/config"
	"github.com/pribylovaa/oura-scraper/internal/models"
	"github.com/pribylovaa/oura-scraper/internal/storage"
)

// TokenSource выдаёт валидный access-токен (auth.Manager).
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client — контракт клиента Oura API (oura.Client).
type Client interface {
	PersonalInfo(ctx context.Context) (*models.PersonalInfo, error)
	DailyActivity(ctx context.Context, startDate, endDate string) ([]models.DailyActivity, error)
	DailySleep(ctx context.Context, startDate, endDate string) ([]models.DailySleep, error)
	DailyReadiness(ctx context.Context, startDate, endDate string) ([]models.DailyReadiness, error)
	DailyStress(ctx context.Context, startDate, endDate string) ([]models.DailyStress, error)
	DailySpO2(ctx context.Context, startDate, endDate string) ([]models.DailySpO2, error)
	CardiovascularAge(ctx context.Context, startDate, endDate string) ([]models.CardiovascularAge, error)
	Resilience(ctx context.Context, startDate, endDate string) ([]models.Resilience, error)
	Sleep(ctx context.Context, startDate, endDate string) ([]models.Sleep, error)
	SleepTime(ctx context.Context, startDate, endDate string) ([]models.SleepTime, error)
	HeartRate(ctx context.Context, startDate, endDate string) ([]models.HeartRate, error)
	VO2Max(ctx context.Context, startDate, endDate string) ([]models.VO2Max, error)
	Workout(ctx context.Context, startDate, endDate string) ([]models.Workout, error)
	Session(ctx context.Context, startDate, endDate string) ([]models.Session, error)
	EnhancedTag(ctx context.Context, startDate, endDate string) ([]models.EnhancedTag, error)
	RingConfiguration(ctx context.Context) ([]models.RingConfiguration, error)
	RestModePeriod(ctx context.Context, startDate, endDate string) ([]models.RestModePeriod, error)
}

// Service — оркестрация выгрузки.
type Service struct {
	storage storage.Storage
	client  Client
	tokens  TokenSource
	cfg     config.ScraperConfig
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, client Client, tokens TokenSource, cfg config.ScraperConfig) *Service {
	return &Service{
		storage: storage,
		client:  client,
		tokens:  tokens,
		cfg:     cfg,
	}
}
