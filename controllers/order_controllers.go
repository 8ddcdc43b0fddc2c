package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dine-in-manager/models"
	"dine-in-manager/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

type orderItemView struct {
	OrderItemID  uint   `json:"order_item_id"`
	MenuItemID   uint   `json:"menu_item_id"`
	MenuItemName string `json:"menu_item_name"`
	Quantity     int    `json:"quantity"`
}

type orderDetail struct {
	models.Order
	OrderItems []orderItemView `json:"order_items"`
}

// CreateOrder validates the table and every menu item reference, then writes
// the order and its items in one transaction. The first unresolved reference
// rolls back the whole write; no partial order ever persists.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		TableID       *uint   `json:"table_id"`
		MenuItemIDs   *[]uint `json:"menu_item_ids"`
		CustomerNotes *string `json:"customer_notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.TableID == nil || req.MenuItemIDs == nil {
		utils.RespondMessage(c, http.StatusBadRequest, "Table ID and menu_item_ids are required")
		return
	}
	if len(*req.MenuItemIDs) == 0 {
		utils.RespondMessage(c, http.StatusBadRequest, "menu_item_ids must not be empty")
		return
	}

	tx := oc.DB.Begin()
	if tx.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, tx.Error)
		return
	}

	var table models.Table
	if err := tx.First(&table, *req.TableID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondMessage(c, http.StatusNotFound, "Table not found")
		} else {
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	order := models.Order{
		TableID:       table.ID,
		OrderDate:     time.Now(),
		Status:        models.StatusCreated,
		CustomerNotes: req.CustomerNotes,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Each listed id becomes its own line item with quantity 1; duplicates
	// stay distinct and the caller's ordering is preserved.
	for _, itemID := range *req.MenuItemIDs {
		var menuItem models.Menu
		if err := tx.First(&menuItem, itemID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondMessage(c, http.StatusNotFound, "Menu item not found")
			} else {
				utils.RespondError(c, http.StatusInternalServerError, err)
			}
			return
		}

		orderItem := models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: menuItem.ID,
			Quantity:   1,
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %d created for table %d (%d items)",
		order.ID, order.TableID, len(*req.MenuItemIDs))
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Order created successfully",
		"order_id": order.ID,
	})
}

// GetOrderByID -> order detail with its line items; the menu item name is
// looked up at read time rather than stored on the row.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondNotFound(c)
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondNotFound(c)
		return
	}

	var items []models.OrderItem
	if err := oc.DB.Where("order_id = ?", order.ID).Order("order_item_id").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	views := make([]orderItemView, 0, len(items))
	for _, item := range items {
		// Restrict-delete on menu items keeps this lookup total.
		var menuItem models.Menu
		name := ""
		if err := oc.DB.First(&menuItem, item.MenuItemID).Error; err == nil {
			name = menuItem.Name
		}
		views = append(views, orderItemView{
			OrderItemID:  item.ID,
			MenuItemID:   item.MenuItemID,
			MenuItemName: name,
			Quantity:     item.Quantity,
		})
	}

	c.JSON(http.StatusOK, gin.H{"order": orderDetail{Order: order, OrderItems: views}})
}

// GetAllOrders -> summary-only listing; callers fetch items per order.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders := make([]models.Order, 0)
	if err := oc.DB.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// UpdateOrderStatus moves an order along its lifecycle. Only the moves in the
// transition table are legal; Completed and Cancelled are terminal.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondNotFound(c)
		return
	}

	var req struct {
		Status *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == nil {
		utils.RespondMessage(c, http.StatusBadRequest, "Status is required")
		return
	}
	if !models.ValidStatus(*req.Status) {
		utils.RespondMessage(c, http.StatusBadRequest, fmt.Sprintf("Unknown status %q", *req.Status))
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondNotFound(c)
		return
	}

	if !models.CanTransition(order.Status, *req.Status) {
		utils.RespondMessage(c, http.StatusBadRequest,
			fmt.Sprintf("Cannot transition order from %s to %s", order.Status, *req.Status))
		return
	}

	order.Status = *req.Status
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %d status changed to %s", order.ID, order.Status)
	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"status":  order.Status,
	})
}
