// routes.go - Route registration and server setup
package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, h *Handler) {
	// Health check
	e.GET("/health", h.HandleHealth)

	// Create event action view
	eventGroup := e.Group("/api/actions/create-event")
	eventGroup.POST("/init", h.HandleInitEvent)
	eventGroup.POST("/settings", h.HandleEventSettings)
	eventGroup.POST("/validate", h.HandleValidateEvent)
	eventGroup.POST("/switch", h.HandleSwitchEditor)
	eventGroup.POST("/send", h.HandleSendEvent)

	// Extension configuration view
	configGroup := e.Group("/api/configuration")
	configGroup.POST("/init", h.HandleInitConfiguration)
	configGroup.POST("/settings", h.HandleConfigurationSettings)
	configGroup.POST("/validate", h.HandleValidateConfiguration)
}

// NewServer builds an Echo instance with middleware and routes in place.
func NewServer(h *Handler, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}))

	e.Use(middleware.Recover())

	RegisterRoutes(e, h)

	return e
}
