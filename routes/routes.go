package routes

import (
	"github.com/Dayabrar/Eco-Eats/controllers"
	"github.com/Dayabrar/Eco-Eats/middlewares"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Controllers bundles the HTTP handlers the router wires up.
type Controllers struct {
	Auth        *controllers.AuthController
	Users       *controllers.UserController
	Foods       *controllers.FoodController
	Consumption *controllers.ConsumptionController
	Daily       *controllers.DailyLogController
	Goals       *controllers.GoalController
	Reports     *controllers.ReportController
	Realtime    *controllers.RealtimeController
}

func SetupRouter(db *gorm.DB, c Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.POST("/verify", c.Auth.Verify)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/user/profile", c.Users.GetProfile)
		protected.PUT("/user/profile", c.Users.UpdateProfile)

		protected.GET("/foods", c.Foods.Search)
		protected.GET("/foods/:id", c.Foods.Get)

		protected.POST("/consumptions", c.Consumption.Add)
		protected.GET("/consumptions", c.Consumption.ListDay)
		protected.DELETE("/consumptions/:id", c.Consumption.Remove)

		protected.GET("/daily", c.Daily.GetRange)
		protected.GET("/daily/progress", c.Daily.Progress)
		protected.POST("/daily/water", c.Daily.AddWater)
		protected.POST("/daily/reset", c.Daily.Reset)

		protected.GET("/goals", c.Goals.Get)
		protected.PUT("/goals", c.Goals.Update)

		protected.GET("/reports/analysis", c.Reports.Analysis)

		protected.GET("/ws", c.Realtime.SummaryWS)
	}

	// Catalog mutations are admin-only
	admin := r.Group("/foods")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireAdmin(db))
	{
		admin.POST("", c.Foods.Create)
		admin.PUT("/:id", c.Foods.Update)
		admin.DELETE("/:id", c.Foods.Delete)
	}

	return r
}
