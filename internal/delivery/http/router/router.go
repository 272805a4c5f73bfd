// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gatedesk/internal/delivery/http/middleware"
	"gatedesk/internal/delivery/http/router/handler"
	"gatedesk/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	ProfileHandler     *handler.ProfileHandler
	PlanHandler        *handler.PlanHandler
	ActivePlanHandler  *handler.ActivePlanHandler
	EntitlementHandler *handler.EntitlementHandler
	LedgerHandler      *handler.LedgerHandler
	BuildingHandler    *handler.BuildingHandler
	DoormanHandler     *handler.DoormanHandler
	AssignmentHandler  *handler.AssignmentHandler
	VisitorHandler     *handler.VisitorHandler
	VisitHandler       *handler.VisitHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.UserHandler.Register)
		authGroup.POST("/login", p.UserHandler.Login)
		authGroup.GET("/confirm", p.UserHandler.ConfirmEmail)
		authGroup.POST("/confirm", p.UserHandler.ConfirmEmail)
	}

	// API v1 routes, all behind JWT authentication
	apiV1 := e.Group("/api/v1")
	apiV1.Use(p.AuthMiddleware.Authenticate)

	// Self-service profile routes
	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", p.ProfileHandler.GetProfile)
		profileGroup.PATCH("", p.ProfileHandler.UpdateProfile)
		profileGroup.PUT("/password", p.ProfileHandler.ChangePassword)
	}

	// Plan catalog visible to subscribers
	apiV1.GET("/plans", p.PlanHandler.ListActivePlans)

	// Current entitlement
	apiV1.GET("/entitlement", p.EntitlementHandler.Resolve)

	// Own credit ledger: listing and releasing consumed credits
	ledgerGroup := apiV1.Group("/ledger")
	{
		ledgerGroup.GET("", p.LedgerHandler.ListOwn)
		ledgerGroup.GET("/:id", p.LedgerHandler.GetOwn)
		ledgerGroup.DELETE("/:id", p.LedgerHandler.SoftDeleteOwn)
	}

	// Plan grant routes
	grantsGroup := apiV1.Group("/subscriptions")
	{
		grantsGroup.POST("", p.ActivePlanHandler.Subscribe)
		grantsGroup.GET("", p.ActivePlanHandler.ListOwn)
		grantsGroup.GET("/:id", p.ActivePlanHandler.Get)
		grantsGroup.DELETE("/:id", p.ActivePlanHandler.Cancel)
	}

	// Building registry routes
	buildingsGroup := apiV1.Group("/buildings")
	{
		buildingsGroup.POST("", p.BuildingHandler.Create)
		buildingsGroup.GET("", p.BuildingHandler.ListOwn)
		buildingsGroup.GET("/:id", p.BuildingHandler.Get)
		buildingsGroup.PATCH("/:id", p.BuildingHandler.Update)
		buildingsGroup.DELETE("/:id", p.BuildingHandler.Delete)
		buildingsGroup.PUT("/:id/activate", p.BuildingHandler.Activate)
		buildingsGroup.PUT("/:id/deactivate", p.BuildingHandler.Deactivate)

		// Doorman assignments hang off the owning building
		buildingsGroup.GET("/:buildingId/doormen", p.AssignmentHandler.ListByBuilding)
		buildingsGroup.GET("/:buildingId/doormen/:doormanId", p.AssignmentHandler.Get)
		buildingsGroup.DELETE("/:buildingId/doormen/:doormanId", p.AssignmentHandler.Remove)
	}
	apiV1.POST("/assignments", p.AssignmentHandler.Assign)

	// Doorman registry routes
	doormenGroup := apiV1.Group("/doormen")
	{
		doormenGroup.POST("", p.DoormanHandler.Register)
		doormenGroup.GET("", p.DoormanHandler.List)
		doormenGroup.GET("/:id", p.DoormanHandler.Get)
		doormenGroup.PATCH("/:id", p.DoormanHandler.Update)
	}

	// Visitor registry routes
	visitorsGroup := apiV1.Group("/visitors")
	{
		visitorsGroup.POST("", p.VisitorHandler.Create)
		visitorsGroup.GET("", p.VisitorHandler.List)
		visitorsGroup.GET("/:id", p.VisitorHandler.Get)
		visitorsGroup.PUT("/:id", p.VisitorHandler.Update)
		visitorsGroup.DELETE("/:id", p.VisitorHandler.Delete)
		visitorsGroup.PUT("/:id/activate", p.VisitorHandler.Activate)
		visitorsGroup.PUT("/:id/deactivate", p.VisitorHandler.Deactivate)
	}

	// Visit log routes
	visitsGroup := apiV1.Group("/visits")
	{
		visitsGroup.POST("", p.VisitHandler.Create)
		visitsGroup.GET("", p.VisitHandler.List)
		visitsGroup.GET("/:id", p.VisitHandler.Get)
		visitsGroup.PATCH("/:id", p.VisitHandler.Update)
		visitsGroup.PUT("/:id/complete", p.VisitHandler.Complete)
		visitsGroup.PUT("/:id/cancel", p.VisitHandler.Cancel)
	}

	// Admin routes require the admin role on top of authentication
	admin := e.Group("/api/admin")
	admin.Use(p.AuthMiddleware.Authenticate)
	admin.Use(p.AuthMiddleware.RequireRole(entity.RoleAdmin.String()))

	adminUsers := admin.Group("/users")
	{
		adminUsers.GET("", p.UserHandler.ListUsers)
		adminUsers.POST("", p.UserHandler.CreateUser)
		adminUsers.GET("/:id", p.UserHandler.GetUser)
		adminUsers.PATCH("/:id", p.UserHandler.UpdateUser)
		adminUsers.DELETE("/:id", p.UserHandler.DeleteUser)
		adminUsers.PUT("/:id/activate", p.UserHandler.ActivateUser)
		adminUsers.PUT("/:id/deactivate", p.UserHandler.DeactivateUser)
	}

	adminPlans := admin.Group("/plans")
	{
		adminPlans.GET("", p.PlanHandler.ListPlans)
		adminPlans.POST("", p.PlanHandler.CreatePlan)
		adminPlans.GET("/:id", p.PlanHandler.GetPlan)
		adminPlans.PUT("/:id", p.PlanHandler.UpdatePlan)
		adminPlans.DELETE("/:id", p.PlanHandler.DeletePlan)
		adminPlans.PUT("/:id/activate", p.PlanHandler.ActivatePlan)
		adminPlans.PUT("/:id/deactivate", p.PlanHandler.DeactivatePlan)
	}

	adminGrants := admin.Group("/subscriptions")
	{
		adminGrants.PUT("/:id/activate", p.ActivePlanHandler.ActivateGrant)
		adminGrants.PUT("/:id/expire", p.ActivePlanHandler.ExpireGrant)
	}

	adminLedger := admin.Group("/ledger")
	{
		adminLedger.GET("", p.LedgerHandler.List)
		adminLedger.GET("/:id", p.LedgerHandler.Get)
		adminLedger.DELETE("/:id", p.LedgerHandler.SoftDelete)
		adminLedger.PUT("/:id/restore", p.LedgerHandler.Restore)
	}

	adminVisitors := admin.Group("/visitors")
	{
		adminVisitors.GET("", p.VisitorHandler.List)
		adminVisitors.GET("/:id", p.VisitorHandler.Get)
		adminVisitors.DELETE("/:id", p.VisitorHandler.Delete)
	}

	adminVisits := admin.Group("/visits")
	{
		adminVisits.GET("", p.VisitHandler.List)
		adminVisits.GET("/:id", p.VisitHandler.Get)
		adminVisits.DELETE("/:id", p.VisitHandler.Delete)
	}

	adminBuildings := admin.Group("/buildings")
	{
		adminBuildings.GET("", p.BuildingHandler.AdminList)
		adminBuildings.GET("/:id", p.BuildingHandler.AdminGet)
		adminBuildings.PATCH("/:id", p.BuildingHandler.AdminUpdate)
		adminBuildings.DELETE("/:id", p.BuildingHandler.AdminDelete)
		adminBuildings.PUT("/:id/activate", p.BuildingHandler.AdminActivate)
		adminBuildings.PUT("/:id/deactivate", p.BuildingHandler.AdminDeactivate)
	}
}
