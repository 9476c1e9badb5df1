package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/storeapi/backend/internal/domain/store"
	"github.com/storeapi/backend/internal/interfaces/http/dto"
	"github.com/storeapi/backend/internal/interfaces/http/mapper"
	"github.com/storeapi/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// validatedEmployeeView carries binding rules so the handler's
// validation rejection path can be exercised end to end.
type validatedEmployeeView struct {
	ID   int64  `json:"id"`
	Name string `json:"name" binding:"required,min=2"`
}

func newValidatedEmployeeRouter(repo *MockEmployeeRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
	engine := gin.New()

	m := mapper.Mapping[store.Employee, validatedEmployeeView]{
		ToView:   func(e *store.Employee) validatedEmployeeView { return validatedEmployeeView{ID: e.ID, Name: e.Name} },
		ToEntity: func(v validatedEmployeeView) *store.Employee { return &store.Employee{ID: v.ID, Name: v.Name} },
	}
	h := NewEntityHandler(
		"Employee", "/employees",
		repo, m,
		(*store.Employee).GetID,
		func(id int64) *store.Employee { return &store.Employee{ID: id} },
		nil, zap.NewNop(),
	)

	api := engine.Group("/api/v1")
	h.RegisterRoutes(api)
	return engine
}

func postJSON(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestEntityHandler_CreateBindingRejections(t *testing.T) {
	t.Run("reports field details when binding validation fails", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		engine := newValidatedEmployeeRouter(repo)

		w := postJSON(engine, "/api/v1/employees", `{"id": 3}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w.Body.Bytes())
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "name", resp.Error.Details[0].Field)
		assert.Equal(t, "This field is required", resp.Error.Details[0].Message)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("reports the rule parameter in the detail message", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		engine := newValidatedEmployeeRouter(repo)

		w := postJSON(engine, "/api/v1/employees", `{"id": 3, "name": "C"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w.Body.Bytes())
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "Must be at least 2 characters", resp.Error.Details[0].Message)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("reports malformed JSON without field details", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		engine := newValidatedEmployeeRouter(repo)

		w := postJSON(engine, "/api/v1/employees", `{not json`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w.Body.Bytes())
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeInvalidJSON, resp.Error.Code)
		assert.Empty(t, resp.Error.Details)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
