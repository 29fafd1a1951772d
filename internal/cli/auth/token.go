package auth

import (
	"errors"
	"os"
)

// Store — файловое хранилище токена на клиенте. Путь задаётся конфигом
// (флаг -token-file или переменная TOKEN_FILE).
type Store struct {
	Path string
}

// Save записывает токен в файл, доступный только владельцу.
func (s Store) Save(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

// Load читает токен из файла.
func (s Store) Load() (string, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	if len(b) == 0 {
		return "", errors.New("empty token file")
	}
	return string(b), nil
}

// Clear удаляет файл токена. Отсутствующий файл — не ошибка.
func (s Store) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
