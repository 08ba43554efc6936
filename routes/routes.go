package routes

import (
	"os"
	"strings"

	"github.com/SalimLee/Salimlee-Gym/config"
	"github.com/SalimLee/Salimlee-Gym/controllers"
	"github.com/SalimLee/Salimlee-Gym/services"
	"github.com/SalimLee/Salimlee-Gym/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func allowedOrigins() []string {
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{
		"https://salim-lee-gym.de",
		"http://localhost:3000",
	}
}

// SetupRouter wires middleware and handlers. The booking lifecycle
// service is built here and injected into its controller.
func SetupRouter(lifecycle *services.BookingLifecycleService) *gin.Engine {
	r := gin.Default()

	origins := allowedOrigins()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	bookingController := controllers.NewBookingController(lifecycle)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Public endpoints used by the website
	r.POST("/api/bookings", bookingController.CreateBooking)
	r.GET("/api/catalog", controllers.GetPublicCatalog)

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Booking routes (admin)
		bookings := api.Group("/bookings")
		{
			bookings.GET("", bookingController.GetBookings)
			bookings.GET("/:id", bookingController.GetBooking)
			bookings.PATCH("/:id/status", bookingController.UpdateBookingStatus)
			bookings.PATCH("/:id/notes", bookingController.UpdateBookingNotes)
		}

		// Member routes
		members := api.Group("/members")
		{
			members.POST("", controllers.CreateMember)
			members.GET("", controllers.GetMembers)
			members.GET("/:id", controllers.GetMember)
			members.PUT("/:id", controllers.UpdateMember)
			members.DELETE("/:id", controllers.DeleteMember)
		}

		// Subscription routes
		subscriptions := api.Group("/subscriptions")
		{
			subscriptions.POST("", controllers.CreateSubscription)
			subscriptions.GET("", controllers.GetSubscriptions)
			subscriptions.PATCH("/:id/status", controllers.UpdateSubscriptionStatus)
			subscriptions.PATCH("/:id/units", controllers.UpdateSubscriptionUnits)
			subscriptions.DELETE("/:id", controllers.DeleteSubscription)
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.POST("", controllers.CreateInvoice)
			invoices.GET("", controllers.GetInvoices)
			invoices.GET("/:id", controllers.GetInvoice)
			invoices.PUT("/:id", controllers.UpdateInvoice)
			invoices.PATCH("/:id/status", controllers.SetInvoiceStatus)
			invoices.DELETE("/:id", controllers.DeleteInvoice)
		}

		// Catalog routes (admin)
		catalogServices := api.Group("/services")
		{
			catalogServices.POST("", controllers.CreateService)
			catalogServices.GET("", controllers.GetServices)
			catalogServices.PUT("/:id", controllers.UpdateService)
			catalogServices.DELETE("/:id", controllers.DeleteService)
		}

		prices := api.Group("/prices")
		{
			prices.POST("", controllers.CreatePriceItem)
			prices.GET("", controllers.GetPriceItems)
			prices.PUT("/:id", controllers.UpdatePriceItem)
			prices.DELETE("/:id", controllers.DeletePriceItem)
		}

		// Reports routes
		reportController := controllers.ReportController{}
		api.GET("/reports", reportController.GetReportAnalytics)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Settings routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("/update-gym", controllers.UpdateGymProfile)
			profile.PUT("/update-hours", controllers.UpdateWorkingHours)
			profile.PUT("/update-notifications", controllers.UpdateNotifications)
		}
	}

	return r
}
