// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"apothecary/internal/delivery/http/middleware"
	"apothecary/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	PotionHandler       *handler.PotionHandler
	AnalyticsHandler    *handler.AnalyticsHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	potionHandler       *handler.PotionHandler
	analyticsHandler    *handler.AnalyticsHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		potionHandler:       params.PotionHandler,
		analyticsHandler:    params.AnalyticsHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/logout", r.authHandler.Logout)
	}

	// Potion catalog: reads are public, mutations require a session.
	potionGroup := e.Group("/potions")
	{
		potionGroup.GET("", r.potionHandler.List)
		potionGroup.GET("/names", r.potionHandler.ListNames)
		potionGroup.GET("/vendor/:vendor_id", r.potionHandler.ListByVendor)
		potionGroup.GET("/price-range", r.potionHandler.ListByPriceRange)
		potionGroup.GET("/:id", r.potionHandler.Get)

		potionGroup.POST("", r.potionHandler.Create, r.authMiddleware.Authenticate)
		potionGroup.PUT("/:id", r.potionHandler.Replace, r.authMiddleware.Authenticate)
		potionGroup.DELETE("/:id", r.potionHandler.Delete, r.authMiddleware.Authenticate)
	}

	// Reporting routes, all public reads.
	analyticsGroup := e.Group("/analytics")
	{
		analyticsGroup.GET("/distinct-categories", r.analyticsHandler.DistinctCategories)
		analyticsGroup.GET("/average-score-by-vendor", r.analyticsHandler.AverageScoreByVendor)
		analyticsGroup.GET("/average-score-by-category", r.analyticsHandler.AverageScoreByCategory)
		analyticsGroup.GET("/strength-flavor-ratio", r.analyticsHandler.StrengthFlavorRatio)
		analyticsGroup.GET("/search", r.analyticsHandler.Search)
	}
}
