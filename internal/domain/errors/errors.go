package errors

import (
	"errors"
	"net/http"
)

// Kind тип структурированной ошибки
type Kind string

const (
	KindHealth   Kind = "HEALTH_ERROR"
	KindUseCase  Kind = "USE_CASE_ERROR"
	KindRedirect Kind = "REDIRECT_ERROR"
	KindInternal Kind = "INTERNAL_ERROR"
)

const (
	healthMessage = "Internal processing error"
	healthDetail  = "An unexpected error occurred while processing the request at the health check."

	useCaseMessage = "Use case processing error"
	useCaseDetail  = "An error occurred while processing the use case in the health check module."

	redirectMessage = "Redirection error"
	redirectDetail  = "An error occurred while redirecting to the documentation page."

	internalMessage = "Internal server error"
	internalDetail  = "An unexpected error occurred while processing the request."
)

// AppError структурированная ошибка с HTTP статусом, сообщением и списком деталей
type AppError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Errors     []string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError создает структурированную ошибку.
// Пустой список деталей заменяется сообщением.
func NewAppError(kind Kind, status int, message string, details []string, err error) *AppError {
	if len(details) == 0 {
		details = []string{message}
	}
	return &AppError{
		Kind:       kind,
		StatusCode: status,
		Message:    message,
		Errors:     details,
		Err:        err,
	}
}

// NewHealthError ошибка обработки запроса health check
func NewHealthError(err error) *AppError {
	return NewAppError(KindHealth, http.StatusInternalServerError, healthMessage, []string{healthDetail}, err)
}

// NewUseCaseError ошибка в usecase слое
func NewUseCaseError(err error) *AppError {
	return NewAppError(KindUseCase, http.StatusInternalServerError, useCaseMessage, []string{useCaseDetail}, err)
}

// NewRedirectError ошибка перенаправления на документацию
func NewRedirectError(err error) *AppError {
	return NewAppError(KindRedirect, http.StatusInternalServerError, redirectMessage, []string{redirectDetail}, err)
}

// NewInternalError ошибка, перехваченная за пределами обработчиков
func NewInternalError(err error) *AppError {
	return NewAppError(KindInternal, http.StatusInternalServerError, internalMessage, []string{internalDetail}, err)
}

// AsAppError извлекает структурированную ошибку из цепочки
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Wrap пропускает структурированные ошибки без изменений,
// остальные оборачивает через fallback
func Wrap(err error, fallback func(error) *AppError) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return fallback(err)
}
