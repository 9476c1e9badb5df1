package persistence

import (
	"github.com/storeapi/backend/internal/domain/store"
	"gorm.io/gorm"
)

// GormProductRepository implements store.ProductRepository using GORM
type GormProductRepository struct {
	gormRepository[store.Product]
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{gormRepository[store.Product]{db: db}}
}

var _ store.ProductRepository = (*GormProductRepository)(nil)
