package persistence

import (
	"github.com/storeapi/backend/internal/domain/store"
	"gorm.io/gorm"
)

// GormEmployeeRepository implements store.EmployeeRepository using GORM
type GormEmployeeRepository struct {
	gormRepository[store.Employee]
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{gormRepository[store.Employee]{db: db}}
}

var _ store.EmployeeRepository = (*GormEmployeeRepository)(nil)
