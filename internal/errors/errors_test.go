package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAppErrorChain(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewDatabaseError("list pathway nodes", cause)

	assert.True(t, IsType(err, ErrorTypeDatabase))
	assert.False(t, IsNotFound(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")

	unauthorized := NewUnauthorizedError("")
	assert.Equal(t, "unauthorized", unauthorized.Message)
	assert.Equal(t, http.StatusUnauthorized, unauthorized.HTTPStatus)
	assert.Nil(t, GetAppError(stderrors.New("plain")))
}

func TestErrorHandler_Handle(t *testing.T) {
	handler := NewErrorHandler(zap.NewNop(), false)

	t.Run("app error keeps status and type", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/nodes/x", nil)

		handler.Handle(w, r, NewNotFoundError("pathway node").WithDetail("node_id", "x"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Error)
		assert.Equal(t, "NOT_FOUND", body.Type)
		assert.Equal(t, "x", body.Details["node_id"])
	})

	t.Run("plain error hides message", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		handler.Handle(w, r, stderrors.New("secret detail"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret detail")
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Handle(w, httptest.NewRequest(http.MethodGet, "/", nil), nil)
		assert.Equal(t, 0, w.Body.Len())
	})
}
