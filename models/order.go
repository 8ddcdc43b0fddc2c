package models

import "time"

const (
	StatusCreated   = "Created"
	StatusPreparing = "Preparing"
	StatusServed    = "Served"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// statusTransitions lists the legal lifecycle moves. Anything not listed
// here is rejected; Completed and Cancelled are terminal.
var statusTransitions = map[string][]string{
	StatusCreated:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusServed, StatusCancelled},
	StatusServed:    {StatusCompleted},
}

func ValidStatus(status string) bool {
	switch status {
	case StatusCreated, StatusPreparing, StatusServed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order holds a plain table_id foreign key; related rows are joined at
// read time instead of being preloaded through relationship fields.
type Order struct {
	ID            uint      `gorm:"primaryKey;column:order_id" json:"order_id"`
	TableID       uint      `gorm:"not null;index" json:"table_id"`
	OrderDate     time.Time `gorm:"not null" json:"order_date"`
	Status        string    `gorm:"type:varchar(20);not null;default:'Created'" json:"status"`
	CustomerNotes *string   `gorm:"type:text" json:"customer_notes"`
}
