package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

const (
	CodeNotFound           = "NOT_FOUND"
	CodeDuplicateKey       = "DUPLICATE_KEY"
	CodeValidation         = "VALIDATION_ERROR"
	CodeAggregationFailure = "AGGREGATION_FAILURE"
	CodeBadRequest         = "BAD_REQUEST"
)

var (
	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrDuplicateKey - нарушено ограничение уникальности
	ErrDuplicateKey = &DomainError{
		Code:    CodeDuplicateKey,
		Message: "duplicate key",
	}

	// ErrValidation - некорректные входные данные
	ErrValidation = &DomainError{
		Code:    CodeValidation,
		Message: "validation failed",
	}

	// ErrAggregationFailure - пересчет лидерборда прерван
	ErrAggregationFailure = &DomainError{
		Code:    CodeAggregationFailure,
		Message: "leaderboard recomputation failed",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewDuplicateKeyError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeDuplicateKey,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewValidationError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// AggregationError оборачивает причину сбоя пересчета, сохраняя код AGGREGATION_FAILURE
type AggregationError struct {
	Cause error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("leaderboard recomputation failed: %v", e.Cause)
}

func (e *AggregationError) Unwrap() []error {
	return []error{ErrAggregationFailure, e.Cause}
}
