package apperrors

import "net/http"

/*
Фабрики и предопределенные переменные для доменных ошибок
маркетплейса (auth, jobs, applications, workers).
*/

// ErrNotFound - фабрика для "не найдено" (404).
// Используется, когда ошибка репозитория (gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict - фабрика для конфликтов уникальности (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidStatus - фабрика для запрещенных переходов статуса (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Статичные ошибки ---

// ErrInvalidCredentials - неверный email или пароль.
// Одна и та же ошибка для "нет такого пользователя" и "пароль не подошел",
// чтобы не раскрывать существование аккаунта.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrUserAlreadyExists - занят username или email
var ErrUserAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User with this username or email already exists",
	http.StatusConflict,
)

// ErrInvalidToken - токен не прошел проверку подписи или поврежден
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrTokenExpired - срок действия токена истек
var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Token has expired",
	http.StatusUnauthorized,
)

// ErrInvalidUserRole - роль не предусмотрена для операции
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)
