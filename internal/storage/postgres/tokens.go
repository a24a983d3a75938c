package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/oura-scraper/internal/models"
	"github.com/pribylovaa/oura-scraper/internal/pkg/seal"
	"github.com/pribylovaa/oura-scraper/internal/storage"
)

// Таблица oauth_tokens хранит ровно одну строку (id = 1): единственную живую
// пару токенов. Запись новой пары полностью замещает прежнюю — upsert в одном
// statement, поэтому читатель никогда не видит полузаписанное состояние.

// TokenPair возвращает последнюю сохранённую пару токенов.
func (s *Storage) TokenPair(ctx context.Context) (*models.TokenPair, error) {
	const op = "storage.postgres.TokenPair"

	query := `
        SELECT access_token, refresh_token, expires_at, updated_at
        FROM oauth_tokens
        WHERE id = 1
    `

	var pair models.TokenPair
	err := s.db.QueryRow(ctx, query).Scan(
		&pair.AccessToken,
		&pair.RefreshToken,
		&pair.ExpiresAt,
		&pair.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, mapPgErr(err))
	}

	if s.sealer != nil {
		access, err := s.sealer.Open(pair.AccessToken)
		if err != nil {
			return nil, fmt.Errorf("%s: access_token: %w", op, mapSealErr(err))
		}

		refresh, err := s.sealer.Open(pair.RefreshToken)
		if err != nil {
			return nil, fmt.Errorf("%s: refresh_token: %w", op, mapSealErr(err))
		}

		pair.AccessToken = access
		pair.RefreshToken = refresh
	}

	return &pair, nil
}

// SaveTokenPair атомарно замещает живую пару токенов.
func (s *Storage) SaveTokenPair(ctx context.Context, pair *models.TokenPair) error {
	const op = "storage.postgres.SaveTokenPair"

	access, refresh := pair.AccessToken, pair.RefreshToken

	if s.sealer != nil {
		var err error

		access, err = s.sealer.Seal(access)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		refresh, err = s.sealer.Seal(refresh)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	query := `
        INSERT INTO oauth_tokens (id, access_token, refresh_token, expires_at, updated_at)
        VALUES (1, $1, $2, $3, $4)
        ON CONFLICT (id) DO UPDATE SET
            access_token = EXCLUDED.access_token,
            refresh_token = EXCLUDED.refresh_token,
            expires_at = EXCLUDED.expires_at,
            updated_at = EXCLUDED.updated_at
    `

	updatedAt := pair.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	if _, err := s.db.Exec(ctx, query, access, refresh, pair.ExpiresAt.UTC(), updatedAt.UTC()); err != nil {
		return fmt.Errorf("%s: %w", op, mapPgErr(err))
	}

	return nil
}

// mapSealErr переводит ошибку расшифровки в storage.ErrDecrypt.
func mapSealErr(err error) error {
	if errors.Is(err, seal.ErrOpen) {
		return fmt.Errorf("%w: %v", storage.ErrDecrypt, err)
	}

	return err
}
