package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/arvebo/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBaseHandler_Success(t *testing.T) {
	c, w := newTestContext(t)
	h := &BaseHandler{}

	h.Success(c, gin.H{"name": "Dødsboet etter Ola Nordmann"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestBaseHandler_SuccessWithMeta(t *testing.T) {
	c, w := newTestContext(t)
	h := &BaseHandler{}

	h.SuccessWithMeta(c, []string{"a", "b"}, 45, 2, 20)

	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(45), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestBaseHandler_HandleError_DomainError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", shared.ErrNotFound, http.StatusNotFound, dto.ErrCodeNotFound},
		{"forbidden", shared.ErrForbidden, http.StatusForbidden, dto.ErrCodeForbidden},
		{"invalid state", shared.NewDomainError("INVALID_STATE", "Estate is archived"), http.StatusUnprocessableEntity, dto.ErrCodeInvalidState},
		{"validation", shared.NewDomainError("INVALID_TITLE", "Title cannot be empty"), http.StatusBadRequest, dto.ErrCodeValidation},
		{"last manager", shared.NewDomainError("LAST_MANAGER", "Cannot remove the last manager"), http.StatusUnprocessableEntity, dto.ErrCodeLastManager},
		{"duplicate email", shared.NewDomainError("EMAIL_TAKEN", "Email is already registered"), http.StatusConflict, dto.ErrCodeAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t)
			h := &BaseHandler{}

			h.HandleError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestBaseHandler_HandleError_WrappedDomainError(t *testing.T) {
	c, w := newTestContext(t)
	h := &BaseHandler{}

	h.HandleError(c, fmt.Errorf("loading estate: %w", shared.ErrNotFound))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBaseHandler_HandleError_UnknownError(t *testing.T) {
	c, w := newTestContext(t)
	h := &BaseHandler{}

	h.HandleError(c, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
	// Internal details must not leak to the client
	assert.NotContains(t, resp.Error.Message, assert.AnError.Error())
}

func TestBaseHandler_Error_IncludesRequestID(t *testing.T) {
	c, w := newTestContext(t)
	c.Set("request_id", "req-42")
	h := &BaseHandler{}

	h.NotFound(c, "Task not found")

	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "req-42", resp.Error.RequestID)
}
