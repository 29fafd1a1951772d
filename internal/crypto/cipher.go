package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// keyLen — длина ключа для AES-256 (в байтах).
	keyLen = 32
	// saltLen — длина случайной соли, добавляемой к каждому шифртексту.
	saltLen = 10
)

// ErrDecrypt возвращается при попытке расшифровать повреждённый или чужой шифртекст.
var ErrDecrypt = errors.New("decryption failed")

// Cipher шифрует строковые значения для хранения в БД.
// Ключ выводится из серверного секрета через PBKDF2-SHA256 с новой солью
// на каждый вызов, сами данные закрываются AES-256-GCM.
// Секрет и число итераций задаются один раз при старте процесса.
type Cipher struct {
	secret     []byte
	iterations int
}

// NewCipher создаёт шифратор с заданным секретом и числом итераций PBKDF2.
func NewCipher(secret string, iterations int) (*Cipher, error) {
	if secret == "" {
		return nil, errors.New("empty cipher secret")
	}
	if iterations <= 0 {
		return nil, errors.New("non-positive pbkdf2 iterations")
	}
	return &Cipher{secret: []byte(secret), iterations: iterations}, nil
}

// Encrypt шифрует plain и возвращает hex(salt || nonce || sealed).
// Результат недетерминирован: соль и nonce случайны на каждый вызов.
func (c *Cipher) Encrypt(plain string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}
	gcm, err := c.aead(salt)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	sealed := gcm.Seal(nil, nonce, []byte(plain), nil)

	out := make([]byte, 0, len(salt)+len(nonce)+len(sealed))
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, sealed...)
	return hex.EncodeToString(out), nil
}

// Decrypt расшифровывает строку, полученную из Encrypt.
// Любой повреждённый или чужой вход даёт ErrDecrypt, а не мусор.
func (c *Cipher) Decrypt(encoded string) (string, error) {
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	if len(raw) < saltLen {
		return "", fmt.Errorf("%w: input too short", ErrDecrypt)
	}
	salt, rest := raw[:saltLen], raw[saltLen:]
	gcm, err := c.aead(salt)
	if err != nil {
		return "", err
	}
	if len(rest) < gcm.NonceSize() {
		return "", fmt.Errorf("%w: input too short", ErrDecrypt)
	}
	nonce, sealed := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]
	plain, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	return string(plain), nil
}

func (c *Cipher) aead(salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key(c.secret, salt, c.iterations, keyLen, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
