package store

// OrderDetail represents a single product line within a purchase order
type OrderDetail struct {
	ID        int64 `gorm:"primaryKey;autoIncrement:false;column:id"`
	OrderID   int64 `gorm:"column:order_id"`
	ProductID int64 `gorm:"column:product_id"`
}

// TableName returns the database table name
func (OrderDetail) TableName() string {
	return "order_details"
}

// GetID returns the order detail identifier
func (d *OrderDetail) GetID() int64 {
	return d.ID
}
