package handler

import (
	"context"

	"github.com/storeapi/backend/internal/domain/store"
	"github.com/storeapi/backend/internal/interfaces/http/dto"
	"github.com/storeapi/backend/internal/interfaces/http/mapper"
	"go.uber.org/zap"
)

// PurchaseOrderHandler serves the purchase order CRUD surface
type PurchaseOrderHandler struct {
	*EntityHandler[store.PurchaseOrder, dto.PurchaseOrderView]
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler. Orders with
// detail lines cannot be deleted.
func NewPurchaseOrderHandler(
	repo store.PurchaseOrderRepository,
	details store.OrderDetailRepository,
	m *mapper.Config,
	log *zap.Logger,
) *PurchaseOrderHandler {
	checks := []store.DependencyCheck{
		{
			DependentType: "OrderDetail",
			Count: func(ctx context.Context, orderID int64) (int64, error) {
				found, err := details.FindByOrder(ctx, orderID)
				return int64(len(found)), err
			},
		},
	}

	return &PurchaseOrderHandler{NewEntityHandler(
		"PurchaseOrder", "/purchaseorders",
		repo, m.PurchaseOrder,
		(*store.PurchaseOrder).GetID,
		func(id int64) *store.PurchaseOrder { return &store.PurchaseOrder{ID: id} },
		checks, log,
	)}
}
