package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrMissingFields))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrInvalidConsultant))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(ErrForbidden))
	assert.Equal(t, http.StatusConflict, HTTPStatus(ErrUsernameTaken))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(ErrInvalidCredentials))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestHTTPStatusErroEmbrulhado(t *testing.T) {
	err := fmt.Errorf("contexto: %w", ErrNotFound)
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
	assert.Equal(t, "not_found", Code(err))
}

func TestCode(t *testing.T) {
	assert.Equal(t, "missing_fields", Code(ErrMissingFields))
	assert.Equal(t, "internal_error", Code(errors.New("boom")))
	assert.Equal(t, "invalid_date", Code(Newf(KindInvalidArgument, "invalid_date", "%q", "x")))
}

func TestEscrever(t *testing.T) {
	rec := httptest.NewRecorder()
	Escrever(rec, ErrForbidden)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"forbidden"}`, rec.Body.String())
}
