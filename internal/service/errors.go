package service

import "errors"

// Ожидаемые ошибки бизнес-логики. Хендлеры переводят их в HTTP-статусы 1:1.
var (
	// ErrEmailTaken — попытка регистрации на занятый email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials — неизвестный email или неверный пароль.
	// Оба случая дают одно и то же значение, чтобы не раскрывать,
	// какая часть пары не подошла.
	ErrInvalidCredentials = errors.New("email or password not valid")

	// ErrInvalidToken — токен не прошёл проверку или его владелец больше не существует.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTitleTaken — у владельца уже есть запись с таким заголовком.
	ErrTitleTaken = errors.New("title already registered")

	// ErrLicenseTaken — лицензия с таким содержимым уже сохранена владельцем.
	ErrLicenseTaken = errors.New("license already registered for this software")

	// ErrNotFound — записи с таким id не существует вовсе.
	ErrNotFound = errors.New("record doesn't exist")

	// ErrForbidden — запись существует, но принадлежит другому пользователю.
	ErrForbidden = errors.New("record doesn't belong to user")

	// ErrConfirmation — подтверждение пароля при удалении аккаунта не совпало.
	ErrConfirmation = errors.New("password confirmation failed")
)
