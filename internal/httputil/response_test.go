package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondResultWrapsInEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondResult(rec, map[string]string{"name": "Alex"}, http.StatusOK)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":true,"result":{"name":"Alex"}}`, rec.Body.String())
}

func TestRespondErrorWithDomainError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, NewError(http.StatusForbidden, "swipe/daily-swipe-limit-reached"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":{"code":"swipe/daily-swipe-limit-reached"}}`, rec.Body.String())
}

func TestRespondErrorWithWrappedDomainError(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := fmt.Errorf("handler: %w", NewError(http.StatusNotFound, "swipe/not-found"))
	RespondError(rec, wrapped)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "swipe/not-found", body.Error.Code)
}

func TestRespondErrorHidesInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":{"code":"internal-server-error"}}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestRespondErrorCodeWithDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondErrorCode(rec, http.StatusBadRequest, CodeInvalidBody, "email must be a valid email address")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":{"code":"request/invalid-body","details":["email must be a valid email address"]}}`, rec.Body.String())
}

func TestInvalidBodyCarriesFieldMessages(t *testing.T) {
	err := InvalidBody("password must be between 8 and 100 characters")
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeInvalidBody, err.Code)
	assert.Len(t, err.Details, 1)
}

func TestIsDomainError(t *testing.T) {
	assert.True(t, IsDomainError(NewError(http.StatusNotFound, "premium-package/not-found")))
	assert.True(t, IsDomainError(fmt.Errorf("wrapped: %w", InvalidBody())))
	assert.False(t, IsDomainError(errors.New("plain")))
	assert.False(t, IsDomainError(nil))
}
