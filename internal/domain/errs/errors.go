package errs

import "errors"

// Code identifica a categoria estável de um erro de domínio.
type Code string

const (
	CodeInvalidInput        Code = "invalid_input"
	CodeNotFound            Code = "not_found"
	CodeForbidden           Code = "forbidden"
	CodeInsufficientBalance Code = "insufficient_balance"
	CodeConflict            Code = "conflict"
	CodeUnauthorized        Code = "unauthorized"
	CodeInternal            Code = "internal"
)

// DomainError carrega uma categoria estável e uma mensagem legível.
// Erros crus do banco nunca atravessam essa fronteira.
type DomainError struct {
	Code    Code
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func NewInvalidInput(msg string) error { return &DomainError{Code: CodeInvalidInput, Message: msg} }
func NewNotFound(msg string) error     { return &DomainError{Code: CodeNotFound, Message: msg} }
func NewForbidden(msg string) error    { return &DomainError{Code: CodeForbidden, Message: msg} }
func NewConflict(msg string) error     { return &DomainError{Code: CodeConflict, Message: msg} }
func NewInternal(msg string) error     { return &DomainError{Code: CodeInternal, Message: msg} }

func NewInsufficientBalance(msg string) error {
	return &DomainError{Code: CodeInsufficientBalance, Message: msg}
}

func NewUnauthorized(msg string) error {
	return &DomainError{Code: CodeUnauthorized, Message: msg}
}

// AsDomainError extrai um *DomainError de qualquer cadeia de erros.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
