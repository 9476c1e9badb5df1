package persistence

import (
	"context"

	"github.com/storeapi/backend/internal/domain/shared"
	"github.com/storeapi/backend/internal/domain/store"
	"gorm.io/gorm"
)

// GormOrderDetailRepository implements store.OrderDetailRepository using GORM
type GormOrderDetailRepository struct {
	gormRepository[store.OrderDetail]
}

// NewGormOrderDetailRepository creates a new GormOrderDetailRepository
func NewGormOrderDetailRepository(db *gorm.DB) *GormOrderDetailRepository {
	return &GormOrderDetailRepository{gormRepository[store.OrderDetail]{db: db}}
}

// FindByOrder finds all detail lines belonging to an order
func (r *GormOrderDetailRepository) FindByOrder(ctx context.Context, orderID int64) ([]store.OrderDetail, error) {
	return r.FindByCondition(ctx, shared.FieldEquals("order_id", orderID))
}

// FindByProduct finds all detail lines referencing a product
func (r *GormOrderDetailRepository) FindByProduct(ctx context.Context, productID int64) ([]store.OrderDetail, error) {
	return r.FindByCondition(ctx, shared.FieldEquals("product_id", productID))
}

var _ store.OrderDetailRepository = (*GormOrderDetailRepository)(nil)
