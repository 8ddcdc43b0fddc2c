package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dine-in-manager/config"
	"dine-in-manager/controllers"
	"dine-in-manager/middlewares"
	"dine-in-manager/utils"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.CORSMiddlewares())

	if cfg.RateLimit > 0 {
		rateLimiter := middlewares.NewRateLimiter(cfg.RateLimit, 1)
		r.Use(rateLimiter.RateLimit())
	}

	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		utils.RespondNotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		utils.RespondMessage(c, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello, Dine-In Manager Backend!")
	})

	tableCtrl := controllers.NewTableController(db)
	tables := r.Group("/tables")
	{
		tables.POST("", tableCtrl.CreateTable)
		tables.GET("", tableCtrl.GetAllTables)
		tables.GET("/:table_id", tableCtrl.GetTableByID)
		tables.PUT("/:table_id", tableCtrl.UpdateTable)
		tables.DELETE("/:table_id", tableCtrl.DeleteTable)
	}

	menuCtrl := controllers.NewMenuController(db)
	menu := r.Group("/menu")
	{
		menu.POST("", menuCtrl.CreateMenuItem)
		menu.GET("", menuCtrl.GetAllMenuItems)
		menu.GET("/:item_id", menuCtrl.GetMenuItemByID)
		menu.PUT("/:item_id", menuCtrl.UpdateMenuItem)
		menu.DELETE("/:item_id", menuCtrl.DeleteMenuItem)
	}

	orderCtrl := controllers.NewOrderController(db)
	orders := r.Group("/orders")
	{
		orders.POST("", orderCtrl.CreateOrder)
		orders.GET("", orderCtrl.GetAllOrders)
		orders.GET("/:order_id", orderCtrl.GetOrderByID)
		orders.PATCH("/:order_id/status", orderCtrl.UpdateOrderStatus)
	}

	jwtSecret := []byte(cfg.JWTSecret)
	userCtrl := controllers.NewUserController(db, jwtSecret)
	auth := r.Group("/auth")
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", middlewares.NewStrictRateLimiter(), userCtrl.Login)
		auth.GET("/profile", middlewares.AuthMiddleware(jwtSecret), userCtrl.GetProfile)
	}

	return r
}
