package models

type OrderItem struct {
	ID         uint `gorm:"primaryKey;column:order_item_id" json:"order_item_id"`
	OrderID    uint `gorm:"not null;index" json:"order_id"`
	MenuItemID uint `gorm:"not null;index" json:"menu_item_id"`
	Quantity   int  `gorm:"not null;default:1" json:"quantity"`
}
