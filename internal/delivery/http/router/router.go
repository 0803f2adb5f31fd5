// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"manor/internal/delivery/http/middleware"
	"manor/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EstateHandler    *handler.EstateHandler
	ApartmentHandler *handler.ApartmentHandler
	TenantHandler    *handler.TenantHandler
	PaymentHandler   *handler.PaymentHandler
	ComplaintHandler *handler.ComplaintHandler
	CatalogHandler   *handler.CatalogHandler
	OccupancyHandler *handler.OccupancyHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	estateHandler    *handler.EstateHandler
	apartmentHandler *handler.ApartmentHandler
	tenantHandler    *handler.TenantHandler
	paymentHandler   *handler.PaymentHandler
	complaintHandler *handler.ComplaintHandler
	catalogHandler   *handler.CatalogHandler
	occupancyHandler *handler.OccupancyHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		estateHandler:    params.EstateHandler,
		apartmentHandler: params.ApartmentHandler,
		tenantHandler:    params.TenantHandler,
		paymentHandler:   params.PaymentHandler,
		complaintHandler: params.ComplaintHandler,
		catalogHandler:   params.CatalogHandler,
		occupancyHandler: params.OccupancyHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Everything below requires a valid access token
	api := e.Group("")
	api.Use(r.authMiddleware.Authenticate)

	estateGroup := api.Group("/estates")
	{
		estateGroup.POST("", r.estateHandler.CreateEstate)
		estateGroup.GET("", r.estateHandler.ListEstates)
		estateGroup.GET("/:id", r.estateHandler.GetEstate)
		estateGroup.PUT("/:id", r.estateHandler.UpdateEstate)
		estateGroup.DELETE("/:id", r.estateHandler.DeleteEstate)
	}

	blockGroup := api.Group("/blocks")
	{
		blockGroup.POST("", r.estateHandler.CreateBlock)
		blockGroup.GET("", r.estateHandler.ListBlocks)
		blockGroup.GET("/:id", r.estateHandler.GetBlock)
		blockGroup.PUT("/:id", r.estateHandler.UpdateBlock)
		blockGroup.DELETE("/:id", r.estateHandler.DeleteBlock)
	}

	apartmentGroup := api.Group("/apartments")
	{
		apartmentGroup.GET("/available", r.apartmentHandler.FindAvailable)
		apartmentGroup.POST("", r.apartmentHandler.CreateApartment)
		apartmentGroup.GET("", r.apartmentHandler.ListApartments)
		apartmentGroup.GET("/:id", r.apartmentHandler.GetApartment)
		apartmentGroup.PUT("/:id", r.apartmentHandler.UpdateApartment)
		apartmentGroup.DELETE("/:id", r.apartmentHandler.DeleteApartment)
	}

	tenantGroup := api.Group("/tenants")
	{
		tenantGroup.GET("/expiring", r.tenantHandler.ListExpiring)
		tenantGroup.POST("", r.tenantHandler.CreateTenant)
		tenantGroup.GET("", r.tenantHandler.ListTenants)
		tenantGroup.GET("/:id", r.tenantHandler.GetTenant)
		tenantGroup.PUT("/:id", r.tenantHandler.UpdateTenant)
		tenantGroup.DELETE("/:id", r.tenantHandler.DeleteTenant)
		tenantGroup.POST("/:id/apartment", r.tenantHandler.AssignApartment)
		tenantGroup.DELETE("/:id/apartment", r.tenantHandler.UnassignApartment)
		tenantGroup.GET("/:id/payments", r.tenantHandler.ListTenantPayments)
		tenantGroup.GET("/:id/complaints", r.tenantHandler.ListTenantComplaints)
	}

	paymentGroup := api.Group("/payments")
	{
		paymentGroup.POST("", r.paymentHandler.CreatePayment)
		paymentGroup.GET("", r.paymentHandler.ListPayments)
		paymentGroup.GET("/:id", r.paymentHandler.GetPayment)
		paymentGroup.PATCH("/:id/status", r.paymentHandler.UpdateStatus)
		paymentGroup.DELETE("/:id", r.paymentHandler.DeletePayment)
	}

	complaintGroup := api.Group("/complaints")
	{
		complaintGroup.POST("", r.complaintHandler.CreateComplaint)
		complaintGroup.GET("", r.complaintHandler.ListComplaints)
		complaintGroup.GET("/:id", r.complaintHandler.GetComplaint)
		complaintGroup.PATCH("/:id/status", r.complaintHandler.UpdateStatus)
		complaintGroup.DELETE("/:id", r.complaintHandler.DeleteComplaint)
	}

	// Lookup tables
	amenityGroup := api.Group("/amenities")
	{
		amenityGroup.POST("", r.catalogHandler.CreateAmenity)
		amenityGroup.GET("", r.catalogHandler.ListAmenities)
		amenityGroup.DELETE("/:id", r.catalogHandler.DeleteAmenity)
	}

	furnishingGroup := api.Group("/furnishings")
	{
		furnishingGroup.POST("", r.catalogHandler.CreateFurnishing)
		furnishingGroup.GET("", r.catalogHandler.ListFurnishings)
		furnishingGroup.DELETE("/:id", r.catalogHandler.DeleteFurnishing)
	}

	tenantTypeGroup := api.Group("/tenant-types")
	{
		tenantTypeGroup.POST("", r.catalogHandler.CreateTenantType)
		tenantTypeGroup.GET("", r.catalogHandler.ListTenantTypes)
		tenantTypeGroup.DELETE("/:id", r.catalogHandler.DeleteTenantType)
	}

	complaintStatusGroup := api.Group("/complaint-statuses")
	{
		complaintStatusGroup.POST("", r.catalogHandler.CreateComplaintStatus)
		complaintStatusGroup.GET("", r.catalogHandler.ListComplaintStatuses)
		complaintStatusGroup.DELETE("/:id", r.catalogHandler.DeleteComplaintStatus)
	}

	complaintCategoryGroup := api.Group("/complaint-categories")
	{
		complaintCategoryGroup.POST("", r.catalogHandler.CreateComplaintCategory)
		complaintCategoryGroup.GET("", r.catalogHandler.ListComplaintCategories)
		complaintCategoryGroup.DELETE("/:id", r.catalogHandler.DeleteComplaintCategory)
	}

	paymentStatusGroup := api.Group("/payment-statuses")
	{
		paymentStatusGroup.POST("", r.catalogHandler.CreatePaymentStatus)
		paymentStatusGroup.GET("", r.catalogHandler.ListPaymentStatuses)
		paymentStatusGroup.DELETE("/:id", r.catalogHandler.DeletePaymentStatus)
	}

	reportGroup := api.Group("/reports")
	{
		reportGroup.GET("/occupancy-status", r.occupancyHandler.Snapshot)
		reportGroup.GET("/occupancy", r.occupancyHandler.Report)
		reportGroup.GET("/payments/summary", r.paymentHandler.DashboardSummary)
		reportGroup.GET("/payments/alerts", r.paymentHandler.Alerts)
		reportGroup.GET("/payments/estate-status", r.paymentHandler.EstateStatus)
		reportGroup.GET("/payments", r.paymentHandler.Report)
		reportGroup.GET("/complaints/analytics", r.complaintHandler.DashboardAnalytics)
		reportGroup.GET("/complaints/trends", r.complaintHandler.Trends)
		reportGroup.GET("/complaints", r.complaintHandler.Report)
		reportGroup.GET("/tenancy/expiry", r.tenantHandler.ExpiryDashboard)
	}
}
