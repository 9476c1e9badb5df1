package dto

import "github.com/shopspring/decimal"

// View-models are the wire representation of store entities. They are pure
// projections: no field is transformed beyond renaming, so mapping back and
// forth is lossless. Ids use the zero value as the unset sentinel, which the
// create path rejects explicitly rather than through binding tags.

// CustomerView is the wire representation of a customer
type CustomerView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Gender      string `json:"gender"`
}

// EmployeeView is the wire representation of an employee
type EmployeeView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductView is the wire representation of a product
type ProductView struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// PurchaseOrderView is the wire representation of a purchase order
type PurchaseOrderView struct {
	ID         int64 `json:"id"`
	CustomerID int64 `json:"customerId"`
	EmployeeID int64 `json:"employeeId"`
}

// OrderDetailView is the wire representation of an order detail line
type OrderDetailView struct {
	ID        int64 `json:"id"`
	OrderID   int64 `json:"orderId"`
	ProductID int64 `json:"productId"`
}
