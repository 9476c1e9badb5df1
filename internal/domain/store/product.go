package store

import "github.com/shopspring/decimal"

// Product represents a sellable product with a monetary unit price
type Product struct {
	ID        int64           `gorm:"primaryKey;autoIncrement:false;column:id"`
	Name      string          `gorm:"column:name"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2)"`
}

// TableName returns the database table name
func (Product) TableName() string {
	return "products"
}

// GetID returns the product identifier
func (p *Product) GetID() int64 {
	return p.ID
}
