// File: internal/domain/errors/errors.go
package errors

import (
	"errors"
	"fmt"
)

// Определение типов ошибок
var (
	// Общие ошибки
	ErrInternal       = errors.New("внутренняя ошибка сервера")
	ErrInvalidRequest = errors.New("некорректный запрос")
	ErrNotFound       = errors.New("ресурс не найден")
	ErrAlreadyExists  = errors.New("ресурс уже существует")
	ErrForbidden      = errors.New("доступ запрещен")
	ErrUnauthorized   = errors.New("не авторизован")

	// Ошибки аутентификации
	ErrInvalidCredentials = errors.New("неверные учетные данные")
	ErrRateLimitExceeded  = errors.New("превышено количество попыток")
	ErrPasswordPwned      = errors.New("пароль скомпрометирован и не может быть использован")
	ErrInvalidResetToken  = errors.New("недействительный токен сброса пароля")

	// Ошибки пользователей
	ErrUserNotFound = errors.New("пользователь не найден")
	ErrEmailExists  = errors.New("email уже используется")

	// Ошибки двухфакторной аутентификации
	ErrInvalidMFACode = errors.New("неверный код 2FA")
	ErrMFARequired    = errors.New("требуется двухфакторная аутентификация")
	ErrMFANotEnrolled = errors.New("двухфакторная аутентификация не настроена")

	// Ошибки сессий и токенов
	ErrMalformedToken       = errors.New("некорректный формат refresh токена")
	ErrSessionNotFound      = errors.New("сессия не найдена")
	ErrSessionExpired       = errors.New("сессия истекла")
	ErrSessionTheftDetected = errors.New("обнаружено повторное использование refresh токена")
	ErrInvalidToken         = errors.New("недействительный токен")
	ErrExpiredToken         = errors.New("истекший токен")

	// Ошибки матчей и билетов
	ErrMatchClosed         = errors.New("продажа билетов на матч закрыта")
	ErrInsufficientTickets = errors.New("недостаточно свободных билетов")

	// Ошибки платежей
	ErrInvalidSignature = errors.New("недействительная подпись платежного шлюза")
	ErrPaymentNotFound  = errors.New("платеж не найден")
)

// AppError представляет ошибку приложения с дополнительной информацией
type AppError struct {
	Err        error  // Оригинальная ошибка
	Message    string // Сообщение для пользователя
	StatusCode int    // HTTP статус-код
	Code       string // Код ошибки для API
}

// Error возвращает строковое представление ошибки
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает оригинальную ошибку
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError создает новую ошибку приложения
func NewAppError(err error, message string, statusCode int, code string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		StatusCode: statusCode,
		Code:       code,
	}
}

// IsNotFound проверяет, является ли ошибка ошибкой "не найдено"
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPaymentNotFound)
}

// IsUnauthorized проверяет, является ли ошибка ошибкой "не авторизован"
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrInvalidMFACode) ||
		errors.Is(err, ErrInvalidResetToken) ||
		IsRefreshFailure(err)
}

// IsRefreshFailure проверяет, относится ли ошибка к отказу ротации refresh токена.
// Все такие отказы наружу отдаются одинаково, чтобы не раскрывать причину.
func IsRefreshFailure(err error) bool {
	return errors.Is(err, ErrMalformedToken) ||
		errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrSessionExpired) ||
		errors.Is(err, ErrSessionTheftDetected)
}

// IsConflict проверяет, является ли ошибка ошибкой конфликта
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrEmailExists)
}

// IsForbidden проверяет, является ли ошибка ошибкой "доступ запрещен"
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsUnprocessable проверяет, является ли ошибка ошибкой бизнес-валидации
func IsUnprocessable(err error) bool {
	return errors.Is(err, ErrMatchClosed) ||
		errors.Is(err, ErrInsufficientTickets) ||
		errors.Is(err, ErrPasswordPwned)
}
