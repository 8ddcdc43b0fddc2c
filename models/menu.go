package models

type Menu struct {
	ID          uint    `gorm:"primaryKey;column:item_id" json:"item_id"`
	Name        string  `gorm:"type:varchar(100);not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    *string `gorm:"type:varchar(50)" json:"category"`
}
