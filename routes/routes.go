package routes

import (
	"time"

	"school-cms/config"
	"school-cms/domain/auth"
	"school-cms/domain/content"
	"school-cms/domain/event"
	"school-cms/domain/health"
	"school-cms/domain/page"
	"school-cms/domain/staff"
	"school-cms/middleware"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Auth
	loginLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		MaxRequests:   10,
		Window:        time.Minute,
		BlockDuration: 5 * time.Minute,
		DB:            config.DB.DB,
	})
	e.POST("/auth/login", auth.LoginHandler, loginLimiter)

	// Health
	e.GET("/health", health.HealthHandler)
	e.GET("/health/live", health.LivenessHandler)
	e.GET("/health/ready", health.ReadinessHandler)

	// Events: reads are public, writes require a token. The upcoming feed
	// is registered before /:id so the path does not shadow it.
	eventGroup := e.Group("/events")
	eventGroup.GET("", event.ListEventsHandler)
	eventGroup.GET("/public/upcoming", event.UpcomingEventsHandler)
	eventGroup.GET("/:id", event.GetEventHandler)
	eventGroup.POST("", event.CreateEventHandler, middleware.JWTMiddleware)
	eventGroup.PUT("/:id", event.UpdateEventHandler, middleware.JWTMiddleware)
	eventGroup.DELETE("/:id", event.DeleteEventHandler, middleware.JWTMiddleware)

	// Pages
	pageGroup := e.Group("/pages")
	pageGroup.GET("", page.ListPagesHandler)
	pageGroup.GET("/tree", page.GetPageTreeHandler)
	pageGroup.GET("/:id", page.GetPageHandler)
	pageGroup.POST("", page.CreatePageHandler, middleware.JWTMiddleware)
	pageGroup.PUT("/:id", page.UpdatePageHandler, middleware.JWTMiddleware)
	pageGroup.DELETE("/:id", page.DeletePageHandler, middleware.JWTMiddleware)

	// Content sections
	contentGroup := e.Group("/content")
	contentGroup.GET("/page/:page_id", content.GetPageSectionsHandler)
	contentGroup.GET("/:id", content.GetSectionHandler)
	contentGroup.POST("", content.CreateSectionHandler, middleware.JWTMiddleware)
	contentGroup.PUT("/:id", content.UpdateSectionHandler, middleware.JWTMiddleware)
	contentGroup.DELETE("/:id", content.DeleteSectionHandler, middleware.JWTMiddleware)

	// Staff
	staffGroup := e.Group("/staff")
	staffGroup.GET("", staff.ListStaffHandler)
	staffGroup.POST("", staff.CreateStaffHandler, middleware.JWTMiddleware)
	staffGroup.PUT("/:id", staff.UpdateStaffHandler, middleware.JWTMiddleware)
	staffGroup.DELETE("/:id", staff.DeleteStaffHandler, middleware.JWTMiddleware)
}
