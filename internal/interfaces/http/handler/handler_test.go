package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/interfaces/http/dto"
	"github.com/restopos/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

type registrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

func newTestRouter(handlers ...registrar) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	api := r.Group("/api/v1", middleware.BusinessScope())
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}
	return r
}

type testRequest struct {
	method     string
	path       string
	businessID uuid.UUID
	actorID    *uuid.UUID
	body       any
}

func serve(t *testing.T, r *gin.Engine, tr testRequest) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if tr.body != nil {
		switch b := tr.body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(tr.method, tr.path, &buf)
	if tr.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tr.businessID != uuid.Nil {
		req.Header.Set(middleware.HeaderBusinessID, tr.businessID.String())
	}
	if tr.actorID != nil {
		req.Header.Set(middleware.HeaderActorID, tr.actorID.String())
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *dto.ErrorInfo  `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assert.Equal(t, status, w.Code, w.Body.String())
	env := decode(t, w, nil)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, code, env.Error.Code)
	assert.NotEmpty(t, env.Error.RequestID)
}

func TestHandleErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", shared.NewValidationError("quantity must be positive"), http.StatusBadRequest, dto.ErrCodeValidation},
		{"not found", shared.NewNotFoundError("item", uuid.New()), http.StatusNotFound, dto.ErrCodeNotFound},
		{"invalid state", shared.NewStateError("transfer is %s", "received"), http.StatusConflict, dto.ErrCodeInvalidState},
		{"conflict", shared.NewConflictError("stock row changed"), http.StatusConflict, dto.ErrCodeConflict},
		{"incompatible units", shared.NewIncompatibleUnitsError("kg", "l"), http.StatusUnprocessableEntity, dto.ErrCodeIncompatibleUnits},
		{"wrapped domain error", errors.Join(errors.New("context"), shared.NewNotFoundError("count", 1)), http.StatusNotFound, dto.ErrCodeNotFound},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, dto.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h BaseHandler
			r := gin.New()
			r.Use(middleware.RequestID())
			r.GET("/fail", func(c *gin.Context) { h.HandleError(c, tt.err) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
			assertErrorCode(t, w, tt.status, tt.code)
		})
	}
}

func TestHandleErrorHidesInternalMessage(t *testing.T) {
	var h BaseHandler
	r := gin.New()
	r.GET("/fail", func(c *gin.Context) { h.HandleError(c, errors.New("pq: password authentication failed")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestParseOptionalUUID(t *testing.T) {
	id, err := parseOptionalUUID("")
	require.NoError(t, err)
	assert.Nil(t, id)

	want := uuid.New()
	id, err = parseOptionalUUID(want.String())
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, want, *id)

	_, err = parseOptionalUUID("branch-1")
	assert.Error(t, err)
}
