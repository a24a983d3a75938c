// seal — симметричное шифрование строковых секретов для хранения в БД.
//
// Используется ChaCha20-Poly1305 (AEAD): случайный nonce добавляется в начало
// шифртекста, результат кодируется base64url. Ключ — 32 байта в hex.
package seal

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// ErrOpen — шифртекст не читается под текущим ключом (сменили ключ без
// миграции данных либо данные повреждены).
var ErrOpen = errors.New("seal: cannot open ciphertext")

// Sealer шифрует и расшифровывает отдельные строки.
type Sealer struct {
	key []byte
}

// New создаёт Sealer из hex-ключа (64 hex-символа → 32 байта).
func New(hexKey string) (*Sealer, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("seal: key is not valid hex: %w", err)
	}

	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("seal: key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}

	return &Sealer{key: key}, nil
}

// Seal шифрует plain и возвращает base64url(nonce || ciphertext).
func (s *Sealer) Seal(plain string) (string, error) {
	aead, err := chacha20poly1305.New(s.key)
	if err != nil {
		return "", fmt.Errorf("seal: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("seal: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(plain), nil)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open расшифровывает значение, полученное из Seal.
// Любая ошибка аутентификации или формата возвращается как ErrOpen.
func (s *Sealer) Open(sealed string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpen, err)
	}

	aead, err := chacha20poly1305.New(s.key)
	if err != nil {
		return "", fmt.Errorf("seal: %w", err)
	}

	if len(raw) < aead.NonceSize() {
		return "", ErrOpen
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]

	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpen, err)
	}

	return string(plain), nil
}
