// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dreamcrm/internal/delivery/http/middleware"
	"dreamcrm/internal/delivery/http/router/handler"
	"dreamcrm/internal/domain/access"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ProfileHandler    *handler.ProfileHandler
	NavHandler        *handler.NavHandler
	DashboardHandler  *handler.DashboardHandler
	ReminderHandler   *handler.ReminderHandler
	PropertyHandler   *handler.PropertyHandler
	DealHandler       *handler.DealHandler
	LeadHandler       *handler.LeadHandler
	AgentHandler      *handler.AgentHandler
	CommissionHandler *handler.CommissionHandler
	DocumentHandler   *handler.DocumentHandler
	CallHandler       *handler.CallHandler
	EmailHandler      *handler.EmailHandler
	ReportHandler     *handler.ReportHandler
	UserHandler       *handler.UserHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application. Every
// protected group carries the capability guard matching its sidebar
// entry, so hidden pages stay unreachable when addressed directly.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	guard := p.AuthMiddleware

	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/logout", p.AuthHandler.Logout)
	}

	api := e.Group("/api")
	api.Use(guard.Authenticate)

	api.GET("/navigation", p.NavHandler.Items)

	profile := api.Group("/me", guard.RequireCapability(access.CapabilityProfile))
	{
		profile.GET("", p.ProfileHandler.Me)
		profile.PUT("", p.ProfileHandler.UpdateProfile)
		profile.POST("/password", p.ProfileHandler.ChangePassword)
		profile.GET("/theme", p.ProfileHandler.Theme)
		profile.PUT("/theme", p.ProfileHandler.SetTheme)
	}

	dashboard := api.Group("/dashboard", guard.RequireCapability(access.CapabilityDashboard))
	{
		dashboard.GET("", p.DashboardHandler.Dashboard)
	}

	reminders := api.Group("/reminders", guard.RequireCapability(access.CapabilityDashboard))
	{
		reminders.GET("", p.ReminderHandler.List)
		reminders.GET("/upcoming", p.ReminderHandler.Upcoming)
		reminders.POST("", p.ReminderHandler.Add)
		reminders.POST("/:id/toggle", p.ReminderHandler.Toggle)
	}

	properties := api.Group("/properties", guard.RequireCapability(access.CapabilityProperties))
	{
		properties.GET("", p.PropertyHandler.List)
		properties.GET("/:id", p.PropertyHandler.Get)
		properties.POST("", p.PropertyHandler.Create)
	}

	deals := api.Group("/deals", guard.RequireCapability(access.CapabilityDeals))
	{
		deals.GET("", p.DealHandler.List)
		deals.GET("/pipeline", p.DealHandler.Pipeline)
	}

	commissions := api.Group("/commissions", guard.RequireCapability(access.CapabilityCommissions))
	{
		commissions.GET("", p.CommissionHandler.Report)
		commissions.POST("/calculate", p.CommissionHandler.Calculate)
	}

	leads := api.Group("/leads", guard.RequireCapability(access.CapabilityLeads))
	{
		leads.GET("", p.LeadHandler.List)
		leads.POST("", p.LeadHandler.Create)
	}

	agents := api.Group("/agents", guard.RequireCapability(access.CapabilityAgents))
	{
		agents.GET("/leaderboard", p.AgentHandler.Leaderboard)
		agents.POST("", p.AgentHandler.Add)
	}

	documents := api.Group("/documents", guard.RequireCapability(access.CapabilityDocuments))
	{
		documents.GET("", p.DocumentHandler.List)
		documents.POST("", p.DocumentHandler.Upload)
		documents.DELETE("/:id", p.DocumentHandler.Delete)
	}

	calls := api.Group("/calls", guard.RequireCapability(access.CapabilityCalls))
	{
		calls.GET("", p.CallHandler.List)
		calls.POST("", p.CallHandler.Log)
	}

	emails := api.Group("/emails", guard.RequireCapability(access.CapabilityEmails))
	{
		emails.GET("/folders", p.EmailHandler.Folders)
		emails.GET("", p.EmailHandler.List)
		emails.GET("/:id", p.EmailHandler.Open)
		emails.POST("", p.EmailHandler.Compose)
		emails.DELETE("/:id", p.EmailHandler.Delete)
	}

	reports := api.Group("/reports", guard.RequireCapability(access.CapabilityReports))
	{
		reports.GET("", p.ReportHandler.Report)
		reports.GET("/export", p.ReportHandler.Export)
	}

	users := api.Group("/users", guard.RequireCapability(access.CapabilityUsers))
	{
		users.GET("", p.UserHandler.List)
		users.GET("/:id", p.UserHandler.Get)
	}
}
