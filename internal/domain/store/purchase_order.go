package store

// PurchaseOrder represents an order placed by a customer and handled by an employee
type PurchaseOrder struct {
	ID         int64 `gorm:"primaryKey;autoIncrement:false;column:id"`
	CustomerID int64 `gorm:"column:customer_id"`
	EmployeeID int64 `gorm:"column:employee_id"`
}

// TableName returns the database table name
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// GetID returns the order identifier
func (o *PurchaseOrder) GetID() int64 {
	return o.ID
}
