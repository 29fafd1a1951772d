package commands

import (
	"PassVault/internal/cli/auth"
	"PassVault/internal/config"
	"errors"
	"fmt"
	"strings"
)

// kindPaths сопоставляет вид записи с его REST-префиксом на сервере.
var kindPaths = map[string]string{
	"credential": "/api/credentials",
	"card":       "/api/cards",
	"wifi":       "/api/wifis",
	"license":    "/api/licenses",
	"note":       "/api/notes",
}

func kindPath(kind string) (string, error) {
	p, ok := kindPaths[strings.ToLower(kind)]
	if !ok {
		return "", fmt.Errorf("unknown kind %q (expected credential, card, wifi, license or note)", kind)
	}
	return p, nil
}

func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

// loadToken читает сохранённый токен. Без него защищённые команды не работают.
func loadToken(cfg *config.Config) (string, error) {
	token, err := auth.Store{Path: cfg.TokenFile}.Load()
	if err != nil {
		return "", errors.New("not logged in (run: pvcli login <email> <password>)")
	}
	return token, nil
}

func serverError(body []byte) error {
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = "unexpected server response"
	}
	return errors.New(msg)
}
