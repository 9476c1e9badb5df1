package persistence

import (
	"github.com/storeapi/backend/internal/domain/store"
	"gorm.io/gorm"
)

// GormCustomerRepository implements store.CustomerRepository using GORM
type GormCustomerRepository struct {
	gormRepository[store.Customer]
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{gormRepository[store.Customer]{db: db}}
}

var _ store.CustomerRepository = (*GormCustomerRepository)(nil)
