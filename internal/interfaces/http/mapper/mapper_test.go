package mapper

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storeapi/backend/internal/domain/store"
	"github.com/storeapi/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
)

func TestCustomerMappingRoundTrip(t *testing.T) {
	cfg := NewConfig()

	view := dto.CustomerView{ID: 7, Name: "Ana Souza", PhoneNumber: "555-0101", Gender: "F"}
	entity := cfg.Customer.ToEntity(view)

	assert.Equal(t, int64(7), entity.ID)
	assert.Equal(t, "Ana Souza", entity.Name)
	assert.Equal(t, view, cfg.Customer.ToView(entity))
}

func TestEmployeeMappingRoundTrip(t *testing.T) {
	cfg := NewConfig()

	view := dto.EmployeeView{ID: 3, Name: "Marcos Lima"}
	assert.Equal(t, view, cfg.Employee.ToView(cfg.Employee.ToEntity(view)))
}

func TestProductMappingRoundTrip(t *testing.T) {
	cfg := NewConfig()

	view := dto.ProductView{ID: 11, Name: "Monitor", UnitPrice: decimal.RequireFromString("249.90")}
	entity := cfg.Product.ToEntity(view)

	assert.True(t, entity.UnitPrice.Equal(decimal.RequireFromString("249.90")))
	assert.Equal(t, view, cfg.Product.ToView(entity))
}

func TestPurchaseOrderMappingRoundTrip(t *testing.T) {
	cfg := NewConfig()

	view := dto.PurchaseOrderView{ID: 21, CustomerID: 7, EmployeeID: 3}
	assert.Equal(t, view, cfg.PurchaseOrder.ToView(cfg.PurchaseOrder.ToEntity(view)))
}

func TestOrderDetailMappingRoundTrip(t *testing.T) {
	cfg := NewConfig()

	view := dto.OrderDetailView{ID: 31, OrderID: 21, ProductID: 11}
	assert.Equal(t, view, cfg.OrderDetail.ToView(cfg.OrderDetail.ToEntity(view)))
}

func TestToViews(t *testing.T) {
	cfg := NewConfig()

	t.Run("maps each element in order", func(t *testing.T) {
		entities := []store.Employee{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
		views := ToViews(cfg.Employee, entities)

		assert.Equal(t, []dto.EmployeeView{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, views)
	})

	t.Run("returns empty slice for no entities", func(t *testing.T) {
		views := ToViews(cfg.Employee, nil)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}
