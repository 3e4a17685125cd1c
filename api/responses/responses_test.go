package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/nvelasco/cartify-backend/pkg/errors"
)

func TestWriteSuccessWrapsDataEnvelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]string{"code": "abc"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var payload map[string]map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "abc", payload["data"]["code"])
}

func TestWriteSuccessStatusCreated(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteSuccessStatus(rec, http.StatusCreated, map[string]int{"id": 1})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestWriteErrorTypedNotFound(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, pkgerrors.New(pkgerrors.CodeNotFound, "cart not found"))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var payload ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, string(pkgerrors.CodeNotFound), payload.Error.Code)
	assert.Equal(t, "cart not found", payload.Error.Message)
	assert.Nil(t, payload.Error.Details)
}

func TestWriteErrorValidationCarriesDetails(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
		WithDetails(map[string]string{"price": "is required"})
	WriteError(context.Background(), nil, rec, err)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var payload ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	details, ok := payload.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "is required", details["price"])
}

func TestWriteErrorUntypedFallsBackToInternal(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, errors.New("boom"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var payload ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, string(pkgerrors.CodeInternal), payload.Error.Code)
	assert.Equal(t, "internal server error", payload.Error.Message)
}
