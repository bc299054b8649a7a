// internal/apperr/apperr.go
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifica as falhas de negócio antes de qualquer escrita no banco.
type Kind int

const (
	KindInvalidArgument Kind = iota
	KindMissingFields
	KindNotFound
	KindForbidden
	KindConflict
	KindUnauthorized
)

// Error carrega o tipo da falha e o código exposto no corpo JSON ({"error": code}).
type Error struct {
	Kind Kind
	Code string
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	return e.Code
}

func New(kind Kind, code string) *Error {
	return &Error{Kind: kind, Code: code}
}

func Newf(kind Kind, code, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Erros recorrentes do domínio.
var (
	ErrMissingFields      = New(KindMissingFields, "missing_fields")
	ErrNotFound           = New(KindNotFound, "not_found")
	ErrForbidden          = New(KindForbidden, "forbidden")
	ErrInvalidConsultant  = New(KindInvalidArgument, "invalid_consultant")
	ErrInvalidCredentials = New(KindUnauthorized, "invalid_credentials")
	ErrUsernameTaken      = New(KindConflict, "username_taken")
)

// HTTPStatus traduz o Kind para o status HTTP correspondente.
func HTTPStatus(err error) int {
	var ae *Error
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Kind {
	case KindInvalidArgument, KindMissingFields:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Code devolve o código de erro usado no corpo da resposta.
func Code(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return "internal_error"
}

// Escrever responde a falha como JSON {"error": code} com o status adequado.
func Escrever(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(HTTPStatus(err))
	fmt.Fprintf(w, `{"error":%q}`, Code(err))
}
