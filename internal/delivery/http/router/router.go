// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"thames/config"
	"thames/internal/delivery/http/middleware"
	"thames/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config             *config.Config
	AuthHandler        *handler.AuthHandler
	VendorHandler      *handler.VendorHandler
	LocationHandler    *handler.LocationHandler
	TierRequestHandler *handler.TierRequestHandler
	AdminHandler       *handler.AdminHandler
	TestHandler        *handler.TestHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                *config.Config
	authHandler        *handler.AuthHandler
	vendorHandler      *handler.VendorHandler
	locationHandler    *handler.LocationHandler
	tierRequestHandler *handler.TierRequestHandler
	adminHandler       *handler.AdminHandler
	testHandler        *handler.TestHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                params.Config,
		authHandler:        params.AuthHandler,
		vendorHandler:      params.VendorHandler,
		locationHandler:    params.LocationHandler,
		tierRequestHandler: params.TierRequestHandler,
		adminHandler:       params.AdminHandler,
		testHandler:        params.TestHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}
	authedAuthGroup := e.Group("/auth")
	authedAuthGroup.Use(r.authMiddleware.Authenticate)
	{
		authedAuthGroup.POST("/logout", r.authHandler.Logout)
		authedAuthGroup.POST("/change-password", r.authHandler.ChangePassword)
	}

	// Public directory routes
	publicGroup := e.Group("/vendors")
	{
		publicGroup.GET("", r.vendorHandler.Search)
		publicGroup.GET("/nearby", r.vendorHandler.SearchNearby)
		publicGroup.GET("/:slug", r.vendorHandler.GetPublicProfile)
	}
	e.GET("/tiers", r.vendorHandler.GetTierCatalog)

	// Vendor portal routes require authentication and a vendor account
	portalGroup := e.Group("/portal")
	portalGroup.Use(r.authMiddleware.Authenticate)
	portalGroup.Use(r.authMiddleware.RequireVendor)
	{
		portalGroup.GET("/profile", r.vendorHandler.GetOwnProfile)
		portalGroup.PUT("/profile", r.vendorHandler.UpdateProfile)

		portalGroup.GET("/locations", r.locationHandler.List)
		portalGroup.POST("/locations", r.locationHandler.Create)
		portalGroup.PUT("/locations/:id", r.locationHandler.Update)
		portalGroup.DELETE("/locations/:id", r.locationHandler.Delete)
		portalGroup.POST("/locations/:id/hq", r.locationHandler.SetHQ)
		portalGroup.POST("/locations/import/preview", r.locationHandler.ImportPreview)
		portalGroup.POST("/locations/import/execute", r.locationHandler.ImportExecute)
		portalGroup.GET("/geocode", r.locationHandler.Geocode)

		portalGroup.POST("/media", r.vendorHandler.AddMedia)
		portalGroup.DELETE("/media/:id", r.vendorHandler.DeleteMedia)

		portalGroup.GET("/tier-requests", r.tierRequestHandler.List)
		portalGroup.POST("/tier-requests", r.tierRequestHandler.Submit)
		portalGroup.POST("/tier-requests/:id/cancel", r.tierRequestHandler.Cancel)
	}

	// Admin routes require authentication and the admin role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/tier-requests", r.adminHandler.ListTierRequests)
		adminGroup.POST("/tier-requests/:id/approve", r.adminHandler.ApproveTierRequest)
		adminGroup.POST("/tier-requests/:id/reject", r.adminHandler.RejectTierRequest)

		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/users/:id/approve", r.adminHandler.ApproveUser)
		adminGroup.POST("/users/:id/reject", r.adminHandler.RejectUser)
		adminGroup.POST("/users/:id/suspend", r.adminHandler.SuspendUser)

		adminGroup.GET("/audit-log", r.adminHandler.AuditLog)
	}

	// Test routes are only mounted when explicitly enabled
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/email-status", r.testHandler.EmailStatus)

		authedTestGroup := e.Group("/test")
		authedTestGroup.Use(r.authMiddleware.Authenticate)
		authedTestGroup.GET("/whoami", r.testHandler.WhoAmI)
	}
}
