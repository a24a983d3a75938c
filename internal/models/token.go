package models

import "time"

// TokenPair — единственная живая пара OAuth2-токенов Oura.
//
// Описание:
//   - AccessToken — короткоживущий bearer-токен для запросов к API;
//   - RefreshToken — одноразовый токен ротации: после обмена на новую пару
//     сервер его инвалидирует, хранить допустимо только самое свежее значение;
//   - ExpiresAt — момент истечения access-токена (UTC), вычисляется как
//     now + expires_in из ответа сервера авторизации;
//   - UpdatedAt — время последнего сохранения пары.
//
// Пара всегда заменяется целиком: частичное обновление полей не допускается,
// история не хранится.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	UpdatedAt    time.Time
}

// Valid сообщает, можно ли использовать access-токен в момент now
// с учётом запаса margin (защита от истечения токена посреди запроса).
func (p *TokenPair) Valid(now time.Time, margin time.Duration) bool {
	if p.AccessToken == "" {
		return false
	}

	return now.Before(p.ExpiresAt.Add(-margin))
}
