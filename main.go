package main

import (
	"fmt"
	"log"
	"os"

	"github.com/SalimLee/Salimlee-Gym/config"
	"github.com/SalimLee/Salimlee-Gym/models"
	"github.com/SalimLee/Salimlee-Gym/routes"
	"github.com/SalimLee/Salimlee-Gym/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Booking{},
		&models.Member{},
		&models.Subscription{},
		&models.Invoice{},
		&models.Service{},
		&models.PriceItem{},
		&models.NotificationLog{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lifecycle := services.NewBookingLifecycleService(
		services.NewGormBookingStore(config.DB),
		services.NewResendMailer(),
		services.NewGormNotificationSink(config.DB),
	)
	defer lifecycle.Wait()

	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	r := routes.SetupRouter(lifecycle)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
