package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/summer0102/real-estate-showcase/handlers"
	"github.com/summer0102/real-estate-showcase/middleware"
	"github.com/summer0102/real-estate-showcase/services"
)

func RegisterRoutes(e *echo.Echo, pc *handlers.PropertyController, ac *handlers.AdminController, sessions *services.SessionStore) {
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	properties := api.Group("/properties")
	properties.GET("", pc.ListProperties)
	properties.GET("/:id", pc.GetProperty)

	admin := api.Group("/admin")
	admin.POST("/auth/login", ac.Login)

	protected := admin.Group("", middleware.AdminAuthMiddleware(sessions))
	protected.POST("/auth/logout", ac.Logout)
	protected.POST("/properties", ac.CreateProperty)
	protected.PUT("/properties/:id", ac.UpdateProperty)
	protected.DELETE("/properties/:id", ac.DeleteProperty)
	protected.POST("/images", ac.UploadImage)
	protected.DELETE("/images/:filename", ac.DeleteImage)
}
