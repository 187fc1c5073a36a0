package usecase

import "errors"

// 入力不備（クライアント起因、4xx相当）
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// 参照先が存在しない（404相当）
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

func AsNotFoundError(err error) (*NotFoundError, bool) {
	var ne *NotFoundError
	ok := errors.As(err, &ne)
	return ne, ok
}

// ストア操作の失敗。原因は診断用に保持するが、レスポンスには出さない。
type PersistenceError struct {
	Cause error
}

func (e *PersistenceError) Error() string {
	return "persistence failure: " + e.Cause.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

func NewPersistenceError(cause error) error {
	return &PersistenceError{Cause: cause}
}

func AsPersistenceError(err error) (*PersistenceError, bool) {
	var pe *PersistenceError
	ok := errors.As(err, &pe)
	return pe, ok
}
