package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/mati-tech/microservices1112/internal/api/handlers/health"
	"github.com/mati-tech/microservices1112/internal/api/handlers/material"
	"github.com/mati-tech/microservices1112/internal/api/handlers/notification"
	"github.com/mati-tech/microservices1112/internal/api/middlewares"
)

func newEngine(h *health.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())
	e.Use(middlewares.CORS(), middlewares.RequestID())

	e.GET("/health", h.Health)
	e.GET("/", h.Root)

	return e
}

// NewNotifications builds the router of the notification service.
func NewNotifications(handler *notification.Handler) *ginext.Engine {
	e := newEngine(health.NewHandler("notification-service", "Welcome to Notification Service", map[string]string{
		"send_notification": "/notifications/send",
		"send_now":          "/notifications/send-now",
		"notifications":     "/notifications",
		"pending":           "/notifications/pending",
		"metrics":           "/metrics",
	}))

	e.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := e.Group("/notifications")

	api.POST("/send", handler.Send)
	api.POST("/send-now", handler.SendNow)
	api.POST("/test-email", handler.TestEmail)
	api.GET("", handler.List)
	api.GET("/pending", handler.Pending)
	api.GET("/:id", handler.Get)
	api.GET("/:id/status", handler.GetStatus)
	api.POST("/:id/retry", handler.Retry)

	return e
}

// NewMaterials builds the router of the materials service.
func NewMaterials(handler *material.Handler) *ginext.Engine {
	e := newEngine(health.NewHandler("materials-service", "Welcome to Materials Service", map[string]string{
		"materials": "/materials",
	}))

	api := e.Group("/materials")

	api.POST("", handler.Create)
	api.GET("", handler.List)
	api.GET("/:id", handler.Get)
	api.PUT("/:id", handler.Update)
	api.DELETE("/:id", handler.Delete)
	api.PATCH("/:id/deactivate", handler.Deactivate)

	return e
}
