package service

import "errors"

// ErrUnauthorized возвращается, когда репорт подается без авторизации
// и без явного флага анонимности.
var ErrUnauthorized = errors.New("must be logged in or report anonymously")

// ValidationError описывает отсутствующее или некорректное поле запроса.
// Такие ошибки транслируются хендлером в HTTP 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Field + " " + e.Reason
}

// NewValidationError создает ValidationError для поля с указанием причины
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError проверяет, является ли ошибка (или ее причина) ошибкой валидации
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
