package persistence

import (
	"context"

	"github.com/storeapi/backend/internal/domain/shared"
	"github.com/storeapi/backend/internal/domain/store"
	"gorm.io/gorm"
)

// GormPurchaseOrderRepository implements store.PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	gormRepository[store.PurchaseOrder]
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{gormRepository[store.PurchaseOrder]{db: db}}
}

// FindByCustomer finds all orders placed by a customer
func (r *GormPurchaseOrderRepository) FindByCustomer(ctx context.Context, customerID int64) ([]store.PurchaseOrder, error) {
	return r.FindByCondition(ctx, shared.FieldEquals("customer_id", customerID))
}

// FindByEmployee finds all orders handled by an employee
func (r *GormPurchaseOrderRepository) FindByEmployee(ctx context.Context, employeeID int64) ([]store.PurchaseOrder, error) {
	return r.FindByCondition(ctx, shared.FieldEquals("employee_id", employeeID))
}

var _ store.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
