package persistence

import (
	"github.com/storeapi/backend/internal/domain/store"
	"gorm.io/gorm"
)

// Provider is the single explicit map from entity type to its concrete
// repository. Wiring code resolves repositories through it rather than
// constructing them ad hoc.
type Provider struct {
	Customers      store.CustomerRepository
	Employees      store.EmployeeRepository
	Products       store.ProductRepository
	PurchaseOrders store.PurchaseOrderRepository
	OrderDetails   store.OrderDetailRepository
}

// NewProvider builds one repository per entity type over the shared connection
func NewProvider(db *gorm.DB) *Provider {
	return &Provider{
		Customers:      NewGormCustomerRepository(db),
		Employees:      NewGormEmployeeRepository(db),
		Products:       NewGormProductRepository(db),
		PurchaseOrders: NewGormPurchaseOrderRepository(db),
		OrderDetails:   NewGormOrderDetailRepository(db),
	}
}
