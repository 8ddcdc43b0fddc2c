package models

type Table struct {
	ID          uint `gorm:"primaryKey;column:table_id" json:"table_id"`
	TableNumber int  `gorm:"uniqueIndex;not null" json:"table_number"`
	Capacity    *int `json:"capacity"`
	IsAvailable bool `gorm:"not null;default:true" json:"is_available"`
}
