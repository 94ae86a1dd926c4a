package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("x", "x")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(InvalidState("x", "x")))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(MissingPrecondition("x", "x")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("x", "x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(nil))
}

func TestIsKind(t *testing.T) {
	err := NotFound("tenant_not_found", "tenant not found")
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindValidation))
	assert.False(t, IsKind(errors.New("boom"), KindNotFound))
	assert.False(t, IsKind(nil, KindNotFound))
}

func TestAsErrorThroughWrapping(t *testing.T) {
	inner := Validation("invalid_month", "month must be in YYYY-MM format")
	wrapped := fmt.Errorf("generate ledger: %w", inner)

	e := AsError(wrapped)
	if assert.NotNil(t, e) {
		assert.Equal(t, "invalid_month", e.Code)
		assert.Equal(t, KindValidation, e.Kind)
	}
	assert.True(t, IsKind(wrapped, KindValidation))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(wrapped))
}

func TestErrorMessage(t *testing.T) {
	err := InvalidState("unit_occupied", "unit already has a tenant")
	assert.Equal(t, "unit already has a tenant", err.Error())
}
