package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dine-in-manager/models"
	"dine-in-manager/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// CreateMenuItem -> add a purchasable item to the menu
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Category    *string  `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == nil || req.Price == nil {
		utils.RespondMessage(c, http.StatusBadRequest, "Name and price are required")
		return
	}
	if *req.Price < 0 {
		utils.RespondMessage(c, http.StatusBadRequest, "Price must be a non-negative number")
		return
	}

	menuItem := models.Menu{
		Name:        *req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
	}
	if err := mc.DB.Create(&menuItem).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New menu item created: %s (price=%.2f)", menuItem.Name, menuItem.Price)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Menu item created successfully",
		"item_id": menuItem.ID,
	})
}

// GetAllMenuItems -> full menu listing
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	menuItems := make([]models.Menu, 0)
	if err := mc.DB.Find(&menuItems).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_items": menuItems})
}

// GetMenuItemByID -> detail for one menu item
func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondNotFound(c)
		return
	}

	var menuItem models.Menu
	if err := mc.DB.First(&menuItem, id).Error; err != nil {
		utils.RespondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": menuItem})
}

// UpdateMenuItem -> apply only the supplied fields
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondNotFound(c)
		return
	}

	var menuItem models.Menu
	if err := mc.DB.First(&menuItem, id).Error; err != nil {
		utils.RespondNotFound(c)
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Category    *string  `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil ||
		(req.Name == nil && req.Description == nil && req.Price == nil && req.Category == nil) {
		utils.RespondMessage(c, http.StatusBadRequest, "No data provided to update")
		return
	}
	if req.Price != nil && *req.Price < 0 {
		utils.RespondMessage(c, http.StatusBadRequest, "Price must be a non-negative number")
		return
	}

	if req.Name != nil {
		menuItem.Name = *req.Name
	}
	if req.Description != nil {
		menuItem.Description = req.Description
	}
	if req.Price != nil {
		menuItem.Price = *req.Price
	}
	if req.Category != nil {
		menuItem.Category = req.Category
	}

	if err := mc.DB.Save(&menuItem).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Menu item %d updated", menuItem.ID)
	utils.RespondMessage(c, http.StatusOK, "Menu item updated successfully")
}

// DeleteMenuItem -> restrict-delete: refuse while order items reference it
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondNotFound(c)
		return
	}

	var menuItem models.Menu
	if err := mc.DB.First(&menuItem, id).Error; err != nil {
		utils.RespondNotFound(c)
		return
	}

	var refCount int64
	if err := mc.DB.Model(&models.OrderItem{}).Where("menu_item_id = ?", menuItem.ID).Count(&refCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if refCount > 0 {
		utils.RespondMessage(c, http.StatusConflict, "Menu item is referenced by existing orders")
		return
	}

	if err := mc.DB.Delete(&menuItem).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Menu item %d deleted", menuItem.ID)
	utils.RespondMessage(c, http.StatusOK, "Menu item deleted successfully")
}
