package router

import (
	"agentMarket/internal/middleware"
	"agentMarket/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupServiceRoutes(api *echo.Group, handler *rest.ServiceHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	services := api.Group("/services")

	services.GET("", handler.GetAllServices)
	services.GET("/:id", handler.GetServiceByID)
	services.GET("/:id/tiers", handler.GetPricingTiers)
	services.GET("/:id/reviews", handler.GetReviews)

	services.POST("/:id/reviews", handler.AddReview, authRequired)

	services.POST("", handler.CreateService, authRequired, adminOnly)
	services.PUT("/:id", handler.UpdateService, authRequired, adminOnly)
	services.PUT("/:id/tiers", handler.SetPricingTiers, authRequired, adminOnly)
	services.DELETE("/:id", handler.DeleteService, authRequired, adminOnly)
}

func SetupVendorRoutes(api *echo.Group, handler *rest.VendorHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	vendors := api.Group("/vendors")

	vendors.GET("", handler.GetAllVendors)
	vendors.GET("/:id", handler.GetVendorByID)

	vendors.POST("", handler.CreateVendor, authRequired, adminOnly)
	vendors.PUT("/:id", handler.UpdateVendor, authRequired, adminOnly)
	vendors.DELETE("/:id", handler.DeleteVendor, authRequired, adminOnly)
}

func SetDealsRoutes(api *echo.Group, handler *rest.DealsHandler) {
	deals := api.Group("/deals")

	deals.GET("/top", handler.TopDeals)
	deals.GET("/click", handler.Click)
	deals.POST("/track", handler.Track)
}

func SetDealsAdminRoutes(api *echo.Group, handler *rest.DealsAdminHandler) {
	admin := api.Group("/admin/deals", middleware.AuthMiddleware(), middleware.AdminOnly())

	admin.GET("/config", handler.GetConfig)
	admin.PUT("/config", handler.UpsertConfig)
	admin.GET("/flag", handler.GetFlag)
	admin.PUT("/flag", handler.SetFlag)
	admin.GET("/curated", handler.GetCurated)
	admin.PUT("/curated", handler.SetCurated)
}

func SetCoPayRoutes(api *echo.Group, handler *rest.CoPayHandler) {
	copay := api.Group("/copay", middleware.AuthMiddleware())
	copay.POST("/requests", handler.RequestCoPay)
	copay.GET("/requests", handler.GetMyRequests)

	admin := api.Group("/admin/copay", middleware.AuthMiddleware(), middleware.AdminOnly())
	admin.GET("/requests", handler.GetPendingRequests)
	admin.PUT("/requests/:id", handler.Decide)
}

func SetConsultationRoutes(api *echo.Group, handler *rest.ConsultationHandler) {
	consultations := api.Group("/consultations", middleware.AuthMiddleware())
	consultations.POST("", handler.Book)
	consultations.GET("", handler.GetMyConsultations)
	consultations.GET("/:id", handler.GetConsultationByID)
	consultations.DELETE("/:id", handler.Cancel)
}
