package routes

import (
	"net/http"

	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	loc := config.Location()
	hub := services.NewRealtimeHub()

	foodSvc := services.NewFoodService(db, services.NewTFDAProvider(), services.NewOpenFoodFactsService())
	recordSvc := services.NewRecordService(db, hub)
	statsSvc := services.NewStatsService(db, loc)
	userSvc := services.NewUserService(db)

	foodCtrl := controllers.NewFoodController(foodSvc)
	recordCtrl := controllers.NewRecordController(recordSvc, statsSvc, loc)
	userCtrl := controllers.NewUserController(userSvc, statsSvc, loc)
	realtimeCtrl := controllers.NewRealtimeController(hub)

	r := gin.Default()

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		utils.SendSuccess(c, http.StatusOK, "Health check passed", gin.H{"status": "healthy"})
	})

	users := api.Group("/users")
	{
		users.POST("/register", userCtrl.Register)
		users.POST("/login", userCtrl.Login)

		me := users.Group("")
		me.Use(middlewares.AuthMiddleware())
		{
			me.GET("/me", userCtrl.Me)
			me.PUT("/me", userCtrl.UpdateMe)
			me.GET("/stats", userCtrl.Stats)
		}
	}

	foods := api.Group("/foods")
	{
		foods.GET("", foodCtrl.List)
		foods.GET("/search/name", foodCtrl.SearchByName)
		foods.GET("/search/barcode/:barcode", foodCtrl.SearchByBarcode)
		foods.GET("/:id", foodCtrl.Get)

		protected := foods.Group("")
		protected.Use(middlewares.AuthMiddleware())
		{
			protected.POST("", foodCtrl.Create)
			protected.PUT("/:id", foodCtrl.Update)
			protected.DELETE("/:id", foodCtrl.Delete)
		}
	}

	records := api.Group("/records")
	records.Use(middlewares.AuthMiddleware())
	{
		records.POST("", recordCtrl.Create)
		records.GET("", recordCtrl.List)
		records.GET("/stats/day", recordCtrl.DayStats)
		records.GET("/:id", recordCtrl.Get)
		records.PUT("/:id", recordCtrl.Update)
		records.DELETE("/:id", recordCtrl.Delete)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/records", realtimeCtrl.RecordsWS)
	}

	r.NoRoute(func(c *gin.Context) {
		utils.SendError(c, http.StatusNotFound, "route not found", nil)
	})

	return r
}
