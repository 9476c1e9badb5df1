package handler

import (
	"context"

	"github.com/storeapi/backend/internal/domain/store"
	"github.com/storeapi/backend/internal/interfaces/http/dto"
	"github.com/storeapi/backend/internal/interfaces/http/mapper"
	"go.uber.org/zap"
)

// CustomerHandler serves the customer CRUD surface
type CustomerHandler struct {
	*EntityHandler[store.Customer, dto.CustomerView]
}

// NewCustomerHandler creates a new CustomerHandler. Customers with purchase
// orders cannot be deleted, so the order repository backs the dependency check.
func NewCustomerHandler(
	repo store.CustomerRepository,
	orders store.PurchaseOrderRepository,
	m *mapper.Config,
	log *zap.Logger,
) *CustomerHandler {
	checks := []store.DependencyCheck{
		{
			DependentType: "PurchaseOrder",
			Count: func(ctx context.Context, customerID int64) (int64, error) {
				found, err := orders.FindByCustomer(ctx, customerID)
				return int64(len(found)), err
			},
		},
	}

	return &CustomerHandler{NewEntityHandler(
		"Customer", "/customers",
		repo, m.Customer,
		(*store.Customer).GetID,
		func(id int64) *store.Customer { return &store.Customer{ID: id} },
		checks, log,
	)}
}
