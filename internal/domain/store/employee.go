package store

// Employee represents a sales employee
type Employee struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false;column:id"`
	Name string `gorm:"column:name"`
}

// TableName returns the database table name
func (Employee) TableName() string {
	return "employees"
}

// GetID returns the employee identifier
func (e *Employee) GetID() int64 {
	return e.ID
}
