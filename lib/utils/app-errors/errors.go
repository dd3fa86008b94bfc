package apperrors

import (
	"fmt"

	"github.com/pkg/errors"
)

type FieldError struct {
	FieldID string `json:"fieldId"` // идентификатор поля
	Message string `json:"message"` // текст ошибки для пользователя
}

// ValidationError ошибка проверки данных, до хранилища не доходит
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s: %s", e.Message, e.Fields[0].FieldID, e.Fields[0].Message)
}

func NewValidationError(message string, fields ...FieldError) error {
	return &ValidationError{Message: message, Fields: fields}
}

type NotFoundError struct {
	Entity string
	ID     interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v не найден", e.Entity, e.ID)
}

func NewNotFoundError(entity string, id interface{}) error {
	return &NotFoundError{Entity: entity, ID: id}
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// StorageError ошибка чтения/записи хранилища
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// SerializationError повреждённые данные в хранилище (в отличие от их отсутствия)
type SerializationError struct {
	Source string
	Err    error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("повреждённые данные %s: %v", e.Source, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

func NewSerializationError(source string, err error) error {
	return &SerializationError{Source: source, Err: err}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsSerialization(err error) bool {
	var target *SerializationError
	return errors.As(err, &target)
}

func AsValidation(err error) (*ValidationError, bool) {
	var target *ValidationError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
