package handler

import (
	"context"

	"github.com/storeapi/backend/internal/domain/store"
	"github.com/storeapi/backend/internal/interfaces/http/dto"
	"github.com/storeapi/backend/internal/interfaces/http/mapper"
	"go.uber.org/zap"
)

// EmployeeHandler serves the employee CRUD surface
type EmployeeHandler struct {
	*EntityHandler[store.Employee, dto.EmployeeView]
}

// NewEmployeeHandler creates a new EmployeeHandler. Employees handling
// purchase orders cannot be deleted.
func NewEmployeeHandler(
	repo store.EmployeeRepository,
	orders store.PurchaseOrderRepository,
	m *mapper.Config,
	log *zap.Logger,
) *EmployeeHandler {
	checks := []store.DependencyCheck{
		{
			DependentType: "PurchaseOrder",
			Count: func(ctx context.Context, employeeID int64) (int64, error) {
				found, err := orders.FindByEmployee(ctx, employeeID)
				return int64(len(found)), err
			},
		},
	}

	return &EmployeeHandler{NewEntityHandler(
		"Employee", "/employees",
		repo, m.Employee,
		(*store.Employee).GetID,
		func(id int64) *store.Employee { return &store.Employee{ID: id} },
		checks, log,
	)}
}
