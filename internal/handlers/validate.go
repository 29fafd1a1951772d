package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"time"
	"unicode"
)

var (
	emailRe      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	expirationRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

const minPasswordLen = 10

func validateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return errors.New("invalid email")
	}
	return nil
}

// validatePassword требует от пароля регистрации минимум 10 символов,
// строчную и заглавную буквы, цифру и спецсимвол.
func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}

	hasLower := false
	hasUpper := false
	hasDigit := false
	hasSpecial := false

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		return errors.New("password must contain lowercase, uppercase, digit and special characters")
	}
	return nil
}

// validateURL принимает только абсолютные http(s)-адреса.
func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.New("url must be absolute http(s)")
	}
	return nil
}

// validateExpiration принимает срок действия карты в формате MM/YY,
// не истёкший на момент проверки.
func validateExpiration(expiration string) error {
	if !expirationRe.MatchString(expiration) {
		return errors.New("expiration must be MM/YY")
	}
	exp, err := time.Parse("01/06", expiration)
	if err != nil {
		return errors.New("expiration must be MM/YY")
	}
	// карта действует до конца месяца
	endOfMonth := exp.AddDate(0, 1, 0)
	if time.Now().After(endOfMonth) {
		return errors.New("card is expired")
	}
	return nil
}
