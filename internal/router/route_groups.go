package router

import (
	"kushi_services_backend/internal/handlers"
	"kushi_services_backend/internal/middleware"
	"kushi_services_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupPublicBookingRoutes lets customers (logged in or guest) create a
// booking from the checkout page.
func SetupPublicBookingRoutes(apiGroup *gin.RouterGroup, bookingHandler *handlers.BookingHandler) {
	bookings := apiGroup.Group("/bookings")
	bookings.Use(middleware.OptionalAuthMiddleware())
	{
		bookings.POST("", bookingHandler.CreateBooking)
	}
}

// SetupBookingRoutes sets up the admin booking routes.
func SetupBookingRoutes(authenticatedGroup *gin.RouterGroup, bookingHandler *handlers.BookingHandler, workerHandler *handlers.WorkerHandler) {
	bookingRoutes := authenticatedGroup.Group("/bookings")
	bookingRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		bookingRoutes.GET("", bookingHandler.GetBookings)
		bookingRoutes.GET("/:id", bookingHandler.GetBookingByID)
		bookingRoutes.PATCH("/:id/status", bookingHandler.UpdateBookingStatus)
		bookingRoutes.PATCH("/:id/worker", workerHandler.AssignWorker)
		bookingRoutes.DELETE("/:id", bookingHandler.DeleteBooking)
	}
}

// SetupCustomerRoutes sets up the admin customer routes.
func SetupCustomerRoutes(authenticatedGroup *gin.RouterGroup, customerHandler *handlers.CustomerHandler) {
	customerRoutes := authenticatedGroup.Group("/customers")
	customerRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		customerRoutes.GET("", customerHandler.GetCustomers)
		customerRoutes.POST("/:id/block", customerHandler.BlockCustomer)
		customerRoutes.POST("/:id/reward", customerHandler.AddReward)
		customerRoutes.POST("/:id/coupon", customerHandler.AddCoupon)
	}
}

// SetupPublicCatalogRoutes exposes the service catalog to the customer site.
func SetupPublicCatalogRoutes(apiGroup *gin.RouterGroup, serviceHandler *handlers.ServiceHandler) {
	serviceRoutes := apiGroup.Group("/services")
	{
		serviceRoutes.GET("", serviceHandler.GetServices)
		serviceRoutes.GET("/:id", serviceHandler.GetServiceByID)
	}
}

// SetupCatalogAdminRoutes sets up the admin catalog management routes.
func SetupCatalogAdminRoutes(authenticatedGroup *gin.RouterGroup, serviceHandler *handlers.ServiceHandler) {
	serviceRoutes := authenticatedGroup.Group("/services")
	serviceRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		serviceRoutes.POST("", serviceHandler.CreateService)
		serviceRoutes.PUT("/:id", serviceHandler.UpdateService)
		serviceRoutes.PATCH("/:id/availability", serviceHandler.SetServiceAvailability)
		serviceRoutes.DELETE("/:id", serviceHandler.DeleteService)
	}
}

// SetupInvoiceRoutes sets up the admin invoice routes.
func SetupInvoiceRoutes(authenticatedGroup *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler) {
	invoiceRoutes := authenticatedGroup.Group("/invoices")
	invoiceRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		invoiceRoutes.GET("", invoiceHandler.GetInvoices)
		invoiceRoutes.GET("/export", invoiceHandler.ExportInvoicesCSV)
		invoiceRoutes.GET("/:id/pdf", invoiceHandler.DownloadInvoicePDF)
	}
}

// SetupWorkerRoutes sets up the admin worker routes.
func SetupWorkerRoutes(authenticatedGroup *gin.RouterGroup, workerHandler *handlers.WorkerHandler) {
	workerRoutes := authenticatedGroup.Group("/workers")
	workerRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		workerRoutes.POST("", workerHandler.CreateWorker)
		workerRoutes.GET("", workerHandler.GetWorkers)
		workerRoutes.PUT("/:id", workerHandler.UpdateWorker)
		workerRoutes.DELETE("/:id", workerHandler.DeleteWorker)
	}
}

// SetupOverviewRoutes sets up the admin dashboard route.
func SetupOverviewRoutes(authenticatedGroup *gin.RouterGroup, overviewHandler *handlers.OverviewHandler) {
	authenticatedGroup.GET("/overview", middleware.RoleAuthMiddleware(models.RoleAdmin), overviewHandler.GetOverview)
}

// SetupCartRoutes sets up the cart routes. Carts work for guests too, so the
// group only resolves the user when a token happens to be present.
func SetupCartRoutes(apiGroup *gin.RouterGroup, cartHandler *handlers.CartHandler) {
	cartRoutes := apiGroup.Group("/cart")
	cartRoutes.Use(middleware.OptionalAuthMiddleware())
	{
		cartRoutes.GET("/:id", cartHandler.GetCart)
		cartRoutes.PUT("/:id", cartHandler.PutCart)
		cartRoutes.DELETE("/:id", cartHandler.ClearCart)
	}
}

// SetupPublicGalleryRoutes exposes gallery browsing to the customer site.
func SetupPublicGalleryRoutes(apiGroup *gin.RouterGroup, galleryHandler *handlers.GalleryHandler) {
	apiGroup.GET("/gallery", galleryHandler.GetImages)
}

// SetupGalleryAdminRoutes sets up the admin gallery management routes.
func SetupGalleryAdminRoutes(authenticatedGroup *gin.RouterGroup, galleryHandler *handlers.GalleryHandler) {
	galleryRoutes := authenticatedGroup.Group("/gallery")
	galleryRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		galleryRoutes.POST("", galleryHandler.UploadImage)
		galleryRoutes.DELETE("/:id", galleryHandler.DeleteImage)
	}
}
