package shared

import "context"

// Repository is the base interface for all repositories
type Repository[T any] interface {
	FindByID(ctx context.Context, id int64) (*T, error)
	FindByCondition(ctx context.Context, cond Condition) ([]T, error)
	FindAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
}

// Identifiable is implemented by entities keyed on an integer identifier
type Identifiable interface {
	GetID() int64
}

// Condition represents a query predicate with positional arguments
type Condition struct {
	Query string
	Args  []any
}

// IDEquals builds a condition matching a single entity by its identifier
func IDEquals(id int64) Condition {
	return Condition{Query: "id = ?", Args: []any{id}}
}

// FieldEquals builds a condition matching entities by an arbitrary column value
func FieldEquals(column string, value any) Condition {
	return Condition{Query: column + " = ?", Args: []any{value}}
}
