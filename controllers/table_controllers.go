package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dine-in-manager/models"
	"dine-in-manager/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// CreateTable -> register a new dining table
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		TableNumber *int `json:"table_number"`
		Capacity    *int `json:"capacity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.TableNumber == nil || req.Capacity == nil {
		utils.RespondMessage(c, http.StatusBadRequest, "Table number and capacity are required")
		return
	}

	var count int64
	if err := tc.DB.Model(&models.Table{}).Where("table_number = ?", *req.TableNumber).Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if count > 0 {
		utils.RespondMessage(c, http.StatusConflict, "Table number already exists")
		return
	}

	table := models.Table{
		TableNumber: *req.TableNumber,
		Capacity:    req.Capacity,
		IsAvailable: true,
	}
	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New table created: number=%d capacity=%d", table.TableNumber, *req.Capacity)
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Table created successfully",
		"table_id": table.ID,
	})
}

// GetAllTables -> list tables, optionally filtered by availability
func (tc *TableController) GetAllTables(c *gin.Context) {
	query := tc.DB
	if avail := c.Query("available"); avail != "" {
		v, err := strconv.ParseBool(avail)
		if err != nil {
			utils.RespondMessage(c, http.StatusBadRequest, "available must be true or false")
			return
		}
		query = query.Where("is_available = ?", v)
	}

	tables := make([]models.Table, 0)
	if err := query.Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tables": tables})
}

// GetTableByID -> detail for one table
func (tc *TableController) GetTableByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("table_id"))
	if err != nil {
		utils.RespondNotFound(c)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, id).Error; err != nil {
		utils.RespondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"table": table})
}

// UpdateTable -> apply only the supplied fields
func (tc *TableController) UpdateTable(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("table_id"))
	if err != nil {
		utils.RespondNotFound(c)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, id).Error; err != nil {
		utils.RespondNotFound(c)
		return
	}

	var req struct {
		Capacity    *int  `json:"capacity"`
		IsAvailable *bool `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || (req.Capacity == nil && req.IsAvailable == nil) {
		utils.RespondMessage(c, http.StatusBadRequest, "No data provided to update")
		return
	}

	if req.Capacity != nil {
		table.Capacity = req.Capacity
	}
	if req.IsAvailable != nil {
		table.IsAvailable = *req.IsAvailable
	}

	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d updated", table.ID)
	utils.RespondMessage(c, http.StatusOK, "Table updated successfully")
}

// DeleteTable -> restrict-delete: refuse while orders still reference it
func (tc *TableController) DeleteTable(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("table_id"))
	if err != nil {
		utils.RespondNotFound(c)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, id).Error; err != nil {
		utils.RespondNotFound(c)
		return
	}

	var orderCount int64
	if err := tc.DB.Model(&models.Order{}).Where("table_id = ?", table.ID).Count(&orderCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if orderCount > 0 {
		utils.RespondMessage(c, http.StatusConflict, "Table has existing orders")
		return
	}

	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	utils.RespondMessage(c, http.StatusOK, "Table deleted successfully")
}
