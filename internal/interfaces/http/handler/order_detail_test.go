package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/storeapi/backend/internal/domain/shared"
	"github.com/storeapi/backend/internal/domain/store"
	"github.com/storeapi/backend/internal/interfaces/http/dto"
	"github.com/storeapi/backend/internal/interfaces/http/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newOrderDetailRouter(repo *MockOrderDetailRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := NewOrderDetailHandler(repo, mapper.NewConfig(), zap.NewNop())
	api := engine.Group("/api/v1")
	h.RegisterRoutes(api)
	return engine
}

func TestOrderDetailHandler_Delete(t *testing.T) {
	t.Run("always deletes since nothing depends on a detail line", func(t *testing.T) {
		repo := new(MockOrderDetailRepository)
		engine := newOrderDetailRouter(repo)

		repo.On("FindByCondition", mock.Anything, shared.IDEquals(31)).
			Return([]store.OrderDetail{{ID: 31, OrderID: 21, ProductID: 5}}, nil)
		repo.On("Delete", mock.Anything, &store.OrderDetail{ID: 31}).Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/orderdetails/31", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("guard rejects delete of absent detail line", func(t *testing.T) {
		repo := new(MockOrderDetailRepository)
		engine := newOrderDetailRouter(repo)

		repo.On("FindByCondition", mock.Anything, shared.IDEquals(99)).
			Return([]store.OrderDetail{}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/orderdetails/99", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w.Body.Bytes())
		require.NotNil(t, resp.Error)
		assert.Equal(t, "", resp.Error.Message)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestOrderDetailHandler_Create(t *testing.T) {
	t.Run("creates a detail line", func(t *testing.T) {
		repo := new(MockOrderDetailRepository)
		engine := newOrderDetailRouter(repo)

		repo.On("FindByCondition", mock.Anything, shared.IDEquals(31)).
			Return([]store.OrderDetail{}, nil)
		repo.On("Create", mock.Anything, &store.OrderDetail{ID: 31, OrderID: 21, ProductID: 5}).
			Return(nil)

		body, _ := json.Marshal(dto.OrderDetailView{ID: 31, OrderID: 21, ProductID: 5})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orderdetails", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/v1/orderdetails/31", w.Header().Get("Location"))
		repo.AssertExpectations(t)
	})

	t.Run("rejects sentinel id", func(t *testing.T) {
		repo := new(MockOrderDetailRepository)
		engine := newOrderDetailRouter(repo)

		repo.On("FindByCondition", mock.Anything, shared.IDEquals(0)).
			Return([]store.OrderDetail{}, nil)

		body, _ := json.Marshal(dto.OrderDetailView{OrderID: 21, ProductID: 5})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orderdetails", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w.Body.Bytes())
		require.NotNil(t, resp.Error)
		assert.Equal(t, "OrderDetail requires a valid non-zero id.", resp.Error.Message)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
