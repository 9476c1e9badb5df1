package persistence

import (
	"context"
	"errors"

	"github.com/storeapi/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// gormRepository is the generic GORM-backed implementation of shared.Repository.
// Concrete entity repositories embed it and add entity-specific lookups.
type gormRepository[T any] struct {
	db *gorm.DB
}

// FindByID finds an entity by its identifier
func (r *gormRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// FindByCondition finds all entities matching the condition
func (r *gormRepository[T]) FindByCondition(ctx context.Context, cond shared.Condition) ([]T, error) {
	entities := make([]T, 0)
	if err := r.db.WithContext(ctx).
		Where(cond.Query, cond.Args...).
		Order("id").
		Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// FindAll returns every entity ordered by identifier
func (r *gormRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	entities := make([]T, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Create inserts a new entity
func (r *gormRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// Update persists all fields of an existing entity
func (r *gormRepository[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

// Delete removes an entity resolved by its primary key. A placeholder
// carrying only the id is sufficient.
func (r *gormRepository[T]) Delete(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Delete(entity).Error
}
