package routes

import (
	"github.com/gin-gonic/gin"

	"boba-pos/controllers"
	"boba-pos/middlewares"
)

type Handlers struct {
	Auth    *controllers.AuthController
	Menu    *controllers.MenuController
	Orders  *controllers.OrderController
	Rewards *controllers.RewardController
	Reports *controllers.ReportController
}

func RegisterRoutes(r *gin.Engine, h Handlers, jwtSecret string) {

	// Auth
	r.POST("/auth/employee/login", h.Auth.EmployeeLogin)
	r.POST("/auth/customer/signup", h.Auth.CustomerSignup)
	r.POST("/auth/customer/lookup", h.Auth.CustomerLogin)

	// Public kiosk surface
	r.GET("/menu", h.Menu.GetMenu)

	// Checkout: the kiosk posts anonymously, the cashier attaches
	// customer and employee ids.
	r.POST("/orders", h.Orders.SubmitOrder)
	r.POST("/checkout", h.Orders.SubmitOrder)

	// Rewards
	rewards := r.Group("/rewards")
	{
		rewards.POST("", h.Rewards.Redeem)
		rewards.PUT("", h.Rewards.Accrue)
		rewards.GET("/cashier", h.Rewards.Lookup)
		rewards.POST("/cashier", h.Rewards.Redeem)
	}

	// Reports: X for any signed-in employee, the rest manager only.
	reports := r.Group("/reports")
	reports.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		reports.GET("/x", h.Reports.XReport)

		manager := reports.Group("")
		manager.Use(middlewares.RoleMiddleware("manager"))
		{
			manager.GET("/usage", h.Reports.UsageReport)
			manager.GET("/sales", h.Reports.SalesReport)
			manager.POST("/z", h.Reports.ZReport)
		}
	}

	// Inventory view for the manager back office
	inventory := r.Group("/inventory")
	inventory.Use(middlewares.AuthMiddleware(jwtSecret), middlewares.RoleMiddleware("manager"))
	{
		inventory.GET("", h.Menu.GetInventory)
	}
}
