package main

import (
	"log"

	"github.com/nashriel/secureBank/config"
	"github.com/nashriel/secureBank/database"
	"github.com/nashriel/secureBank/metrics"
	adminRoutes "github.com/nashriel/secureBank/routers/adminRoutes"
	authRoutes "github.com/nashriel/secureBank/routers/authRoutes"
	bankingRoutes "github.com/nashriel/secureBank/routers/bankingRoutes"
	cardRoutes "github.com/nashriel/secureBank/routers/cardRoutes"
	subscriptionRoutes "github.com/nashriel/secureBank/routers/subscriptionRoutes"
	"github.com/nashriel/secureBank/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	metrics.Initialize()
	metrics.Serve(config.AppConfig.MetricsPort)

	utils.InitializeSessionJanitor()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Use(metrics.RequestMiddleware)

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	bankingRoutes.SetupBankingRoutes(app)
	cardRoutes.SetupCardRoutes(app)
	subscriptionRoutes.SetupSubscriptionRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
