package handler

import (
	"context"

	"github.com/storeapi/backend/internal/domain/store"
	"github.com/storeapi/backend/internal/interfaces/http/dto"
	"github.com/storeapi/backend/internal/interfaces/http/mapper"
	"go.uber.org/zap"
)

// ProductHandler serves the product CRUD surface
type ProductHandler struct {
	*EntityHandler[store.Product, dto.ProductView]
}

// NewProductHandler creates a new ProductHandler. Products referenced by
// order detail lines cannot be deleted.
func NewProductHandler(
	repo store.ProductRepository,
	details store.OrderDetailRepository,
	m *mapper.Config,
	log *zap.Logger,
) *ProductHandler {
	checks := []store.DependencyCheck{
		{
			DependentType: "OrderDetail",
			Count: func(ctx context.Context, productID int64) (int64, error) {
				found, err := details.FindByProduct(ctx, productID)
				return int64(len(found)), err
			},
		},
	}

	return &ProductHandler{NewEntityHandler(
		"Product", "/products",
		repo, m.Product,
		(*store.Product).GetID,
		func(id int64) *store.Product { return &store.Product{ID: id} },
		checks, log,
	)}
}
