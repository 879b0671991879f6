// Package fieldcrypt provides symmetric field-level encryption for sensitive
// medical columns. Ciphertexts are ChaCha20-Poly1305 sealed with a random
// nonce prepended, then base64-encoded so they can live in text columns.
package fieldcrypt

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/andesalud/patient-gateway/internal/core/domain"
)

// KeySize is the required key length in bytes.
const KeySize = chacha20poly1305.KeySize

// Cipher encrypts and decrypts individual string fields with a process-wide
// symmetric key. Safe for concurrent use.
type Cipher struct {
	key []byte
}

// New returns a Cipher for the given 32-byte key.
func New(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("fieldcrypt: key must be %d bytes, got %d", KeySize, len(key))
	}
	k := make([]byte, KeySize)
	copy(k, key)
	return &Cipher{key: k}, nil
}

// Encrypt seals plaintext and returns base64(nonce || ciphertext). The nonce
// is random, so encrypting the same value twice yields different ciphertexts.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	aead, err := chacha20poly1305.New(c.key)
	if err != nil {
		return "", fmt.Errorf("fieldcrypt: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("fieldcrypt: generate nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Malformed input, a truncated payload, or a
// ciphertext sealed under a different key all return an error wrapping
// domain.ErrDecryptFailed so callers can degrade instead of crashing.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: base64 decode: %v", domain.ErrDecryptFailed, err)
	}

	aead, err := chacha20poly1305.New(c.key)
	if err != nil {
		return "", fmt.Errorf("fieldcrypt: %w", err)
	}

	if len(data) < aead.NonceSize() {
		return "", fmt.Errorf("%w: ciphertext too short", domain.ErrDecryptFailed)
	}

	nonce, sealed := data[:aead.NonceSize()], data[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDecryptFailed, err)
	}
	return string(plaintext), nil
}
