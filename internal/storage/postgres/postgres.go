package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pribylovaa/oura-scraper/internal/pkg/seal"
	"github.com/pribylovaa/oura-scraper/internal/storage"
)

// Storage — PostgreSQL-реализация storage.Storage поверх pgxpool.
//
// sealer опционален: если ключ шифрования не настроен, токены хранятся
// открытым текстом (осознанный компромисс для single-tenant развёртывания;
// main пишет об этом предупреждение на старте).
type Storage struct {
	db     *pgxpool.Pool
	sealer *seal.Sealer
}

// New создает новое подключение к PostgreSQL.
// sealer может быть nil — тогда шифрование токенов отключено.
func New(ctx context.Context, dbURL string, sealer *seal.Sealer) (*Storage, error) {
	const op = "storage.postgres.New"

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db, sealer: sealer}, nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() {
	s.db.Close()
}

// mapPgErr переводит "undefined_table" в storage.ErrSchemaMissing,
// чтобы оператор сразу увидел, что не применены миграции.
func mapPgErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
		return fmt.Errorf("%w: %s", storage.ErrSchemaMissing, pgErr.Message)
	}

	return err
}

// Проверка на соответствие интерфейсу Storage.
var _ storage.Storage = (*Storage)(nil)
