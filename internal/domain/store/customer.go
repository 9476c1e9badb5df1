package store

// Customer represents a purchasing customer
type Customer struct {
	ID          int64  `gorm:"primaryKey;autoIncrement:false;column:id"`
	Name        string `gorm:"column:name"`
	PhoneNumber string `gorm:"column:phone_number"`
	Gender      string `gorm:"column:gender"`
}

// TableName returns the database table name
func (Customer) TableName() string {
	return "customers"
}

// GetID returns the customer identifier
func (c *Customer) GetID() int64 {
	return c.ID
}
