package service

import "fmt"

// BusinessError - ошибка бизнес-логики с кодом для маппинга на HTTP статус
type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func NewNotFound(resource, key string) *BusinessError {
	return &BusinessError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s %q не найден(а)", resource, key),
		Details: map[string]any{
			"resource": resource,
			"key":      key,
		},
	}
}

// NewValidationError - карта "поле -> причина" уходит клиенту как details
func NewValidationError(fields map[string]any) *BusinessError {
	return &BusinessError{
		Code:    "VALIDATION_ERROR",
		Message: "Проверка полей не пройдена",
		Details: fields,
	}
}

func NewAlreadyExists(resource, key string) *BusinessError {
	return &BusinessError{
		Code:    "ALREADY_EXISTS",
		Message: fmt.Sprintf("%s %q уже существует", resource, key),
		Details: map[string]any{
			"resource": resource,
			"key":      key,
		},
	}
}

func NewUnauthorized(reason string) *BusinessError {
	return &BusinessError{
		Code:    "UNAUTHORIZED",
		Message: reason,
		Details: map[string]any{},
	}
}
