package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/storeapi/backend/internal/domain/shared"
	"github.com/storeapi/backend/internal/domain/store"
	"github.com/storeapi/backend/internal/interfaces/http/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockProductRepository implements store.ProductRepository for testing
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*store.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCondition(ctx context.Context, cond shared.Condition) ([]store.Product, error) {
	args := m.Called(ctx, cond)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]store.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, entity *store.Product) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, entity *store.Product) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, entity *store.Product) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func newProductRouter(repo *MockProductRepository, details *MockOrderDetailRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := NewProductHandler(repo, details, mapper.NewConfig(), zap.NewNop())
	api := engine.Group("/api/v1")
	h.RegisterRoutes(api)
	return engine
}

func TestProductHandler_Delete(t *testing.T) {
	t.Run("rejects delete when order details reference the product", func(t *testing.T) {
		repo := new(MockProductRepository)
		details := new(MockOrderDetailRepository)
		engine := newProductRouter(repo, details)

		repo.On("FindByCondition", mock.Anything, shared.IDEquals(5)).
			Return([]store.Product{{ID: 5, Name: "Mechanical Keyboard", UnitPrice: decimal.NewFromInt(120)}}, nil)
		details.On("FindByProduct", mock.Anything, int64(5)).
			Return([]store.OrderDetail{{ID: 31, OrderID: 21, ProductID: 5}}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/5", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w.Body.Bytes())
		require.NotNil(t, resp.Error)
		assert.Equal(t, "Product with id 5 cannot be deleted because dependent OrderDetail records exist.", resp.Error.Message)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		details.AssertNotCalled(t, "FindByOrder", mock.Anything, mock.Anything)
	})

	t.Run("deletes when no order details remain", func(t *testing.T) {
		repo := new(MockProductRepository)
		details := new(MockOrderDetailRepository)
		engine := newProductRouter(repo, details)

		repo.On("FindByCondition", mock.Anything, shared.IDEquals(5)).
			Return([]store.Product{{ID: 5, Name: "Mechanical Keyboard", UnitPrice: decimal.NewFromInt(120)}}, nil)
		details.On("FindByProduct", mock.Anything, int64(5)).
			Return([]store.OrderDetail{}, nil)
		repo.On("Delete", mock.Anything, &store.Product{ID: 5}).Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/5", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		repo.AssertExpectations(t)
	})
}
