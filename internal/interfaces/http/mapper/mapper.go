package mapper

import (
	"github.com/storeapi/backend/internal/domain/store"
	"github.com/storeapi/backend/internal/interfaces/http/dto"
)

// Mapping holds the projection pair between an entity and its view-model.
// Both directions are pure: no lookups, no side effects, field copies only.
type Mapping[E any, V any] struct {
	ToView   func(*E) V
	ToEntity func(V) *E
}

// Config holds one mapping per entity type. It is built once at process
// start and passed by reference to every handler; it is never mutated
// after construction.
type Config struct {
	Customer      Mapping[store.Customer, dto.CustomerView]
	Employee      Mapping[store.Employee, dto.EmployeeView]
	Product       Mapping[store.Product, dto.ProductView]
	PurchaseOrder Mapping[store.PurchaseOrder, dto.PurchaseOrderView]
	OrderDetail   Mapping[store.OrderDetail, dto.OrderDetailView]
}

// NewConfig builds the mapping configuration
func NewConfig() *Config {
	return &Config{
		Customer: Mapping[store.Customer, dto.CustomerView]{
			ToView: func(c *store.Customer) dto.CustomerView {
				return dto.CustomerView{
					ID:          c.ID,
					Name:        c.Name,
					PhoneNumber: c.PhoneNumber,
					Gender:      c.Gender,
				}
			},
			ToEntity: func(v dto.CustomerView) *store.Customer {
				return &store.Customer{
					ID:          v.ID,
					Name:        v.Name,
					PhoneNumber: v.PhoneNumber,
					Gender:      v.Gender,
				}
			},
		},
		Employee: Mapping[store.Employee, dto.EmployeeView]{
			ToView: func(e *store.Employee) dto.EmployeeView {
				return dto.EmployeeView{
					ID:   e.ID,
					Name: e.Name,
				}
			},
			ToEntity: func(v dto.EmployeeView) *store.Employee {
				return &store.Employee{
					ID:   v.ID,
					Name: v.Name,
				}
			},
		},
		Product: Mapping[store.Product, dto.ProductView]{
			ToView: func(p *store.Product) dto.ProductView {
				return dto.ProductView{
					ID:        p.ID,
					Name:      p.Name,
					UnitPrice: p.UnitPrice,
				}
			},
			ToEntity: func(v dto.ProductView) *store.Product {
				return &store.Product{
					ID:        v.ID,
					Name:      v.Name,
					UnitPrice: v.UnitPrice,
				}
			},
		},
		PurchaseOrder: Mapping[store.PurchaseOrder, dto.PurchaseOrderView]{
			ToView: func(o *store.PurchaseOrder) dto.PurchaseOrderView {
				return dto.PurchaseOrderView{
					ID:         o.ID,
					CustomerID: o.CustomerID,
					EmployeeID: o.EmployeeID,
				}
			},
			ToEntity: func(v dto.PurchaseOrderView) *store.PurchaseOrder {
				return &store.PurchaseOrder{
					ID:         v.ID,
					CustomerID: v.CustomerID,
					EmployeeID: v.EmployeeID,
				}
			},
		},
		OrderDetail: Mapping[store.OrderDetail, dto.OrderDetailView]{
			ToView: func(d *store.OrderDetail) dto.OrderDetailView {
				return dto.OrderDetailView{
					ID:        d.ID,
					OrderID:   d.OrderID,
					ProductID: d.ProductID,
				}
			},
			ToEntity: func(v dto.OrderDetailView) *store.OrderDetail {
				return &store.OrderDetail{
					ID:        v.ID,
					OrderID:   v.OrderID,
					ProductID: v.ProductID,
				}
			},
		},
	}
}

// ToViews maps a slice of entities through the given mapping
func ToViews[E any, V any](m Mapping[E, V], entities []E) []V {
	views := make([]V, len(entities))
	for i := range entities {
		views[i] = m.ToView(&entities[i])
	}
	return views
}
