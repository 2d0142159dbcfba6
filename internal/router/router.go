package router

import (
	"database/sql"

	"kushi_services_backend/internal/handlers"
	"kushi_services_backend/internal/middleware"
	"kushi_services_backend/internal/repositories"
	"kushi_services_backend/internal/services"
	"kushi_services_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, redisClient *redis.Client) {
	// Initialize Repositories
	authRepo := repositories.NewAuthRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)
	workerRepo := repositories.NewWorkerRepository(db)
	overviewRepo := repositories.NewOverviewRepository(db)
	galleryRepo := repositories.NewGalleryRepository(db)
	cartStore := repositories.NewRedisCartStore(redisClient)

	// Initialize Services
	authService := services.NewAuthService(authRepo, db)
	bookingService := services.NewBookingService(bookingRepo, serviceRepo, db)
	customerService := services.NewCustomerService(bookingRepo, authRepo, db)
	catalogService := services.NewCatalogService(serviceRepo, db)
	invoiceService := services.NewInvoiceService(invoiceRepo)
	workerService := services.NewWorkerService(workerRepo, bookingRepo, db)
	overviewService := services.NewOverviewService(overviewRepo)
	cartService := services.NewCartService(cartStore)
	galleryService := services.NewGalleryService(galleryRepo, db, utils.Getenv("UPLOAD_DIR", "uploads/gallery"))

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	serviceHandler := handlers.NewServiceHandler(catalogService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	workerHandler := handlers.NewWorkerHandler(workerService)
	overviewHandler := handlers.NewOverviewHandler(overviewService)
	cartHandler := handlers.NewCartHandler(cartService)
	galleryHandler := handlers.NewGalleryHandler(galleryService)

	apiV1 := engine.Group("/api/v1")
	apiV1.Use(middleware.RateLimitMiddleware(rate.Limit(20), 40))

	// Public routes: catalog browsing, gallery, guest booking and carts.
	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)
	SetupPublicCatalogRoutes(apiV1, serviceHandler)
	SetupPublicGalleryRoutes(apiV1, galleryHandler)
	SetupCartRoutes(apiV1, cartHandler)
	SetupPublicBookingRoutes(apiV1, bookingHandler)

	// Authenticated routes.
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler, bookingHandler)
		SetupBookingRoutes(authenticated, bookingHandler, workerHandler)
		SetupCustomerRoutes(authenticated, customerHandler)
		SetupCatalogAdminRoutes(authenticated, serviceHandler)
		SetupInvoiceRoutes(authenticated, invoiceHandler)
		SetupWorkerRoutes(authenticated, workerHandler)
		SetupOverviewRoutes(authenticated, overviewHandler)
		SetupGalleryAdminRoutes(authenticated, galleryHandler)
	}
}

// SetupPublicAuthRoutes wires register, login and token refresh.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/register", authHandler.Register)
	group.POST("/login", authHandler.Login)
	group.POST("/refresh-token", authHandler.Refresh)
}

// SetupAuthenticatedAuthRoutes wires the account endpoints: profile,
// order history, profile update and password change.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler, bookingHandler *handlers.BookingHandler) {
	group.POST("/logout", authHandler.Logout)
	group.GET("/me", authHandler.Me)
	group.GET("/orders", bookingHandler.GetMyOrders)
	group.PATCH("/profile", authHandler.UpdateProfile)
	group.PATCH("/password", authHandler.ChangePassword)
}
