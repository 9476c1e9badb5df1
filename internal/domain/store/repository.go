package store

import (
	"context"

	"github.com/storeapi/backend/internal/domain/shared"
)

// CustomerRepository provides access to customer records
type CustomerRepository interface {
	shared.Repository[Customer]
}

// EmployeeRepository provides access to employee records
type EmployeeRepository interface {
	shared.Repository[Employee]
}

// ProductRepository provides access to product records
type ProductRepository interface {
	shared.Repository[Product]
}

// PurchaseOrderRepository provides access to purchase order records
type PurchaseOrderRepository interface {
	shared.Repository[PurchaseOrder]
	FindByCustomer(ctx context.Context, customerID int64) ([]PurchaseOrder, error)
	FindByEmployee(ctx context.Context, employeeID int64) ([]PurchaseOrder, error)
}

// OrderDetailRepository provides access to order detail records
type OrderDetailRepository interface {
	shared.Repository[OrderDetail]
	FindByOrder(ctx context.Context, orderID int64) ([]OrderDetail, error)
	FindByProduct(ctx context.Context, productID int64) ([]OrderDetail, error)
}
