package subscriptionRoutes

import (
	subscriptionController "github.com/nashriel/secureBank/controllers/subscriptions"
	"github.com/nashriel/secureBank/middleware"
	subscriptionValidator "github.com/nashriel/secureBank/validators/subscriptions"

	"github.com/gofiber/fiber/v2"
)

func SetupSubscriptionRoutes(app *fiber.App) {
	app.Get("/subscription", middleware.SessionMiddleware, subscriptionController.ListSubscriptions)
	app.Post("/subscription", middleware.SessionMiddleware, subscriptionValidator.Subscription(), subscriptionController.CreateSubscription)
	app.Get("/subscription/delete/:id", middleware.SessionMiddleware, subscriptionController.DeleteSubscription)
}
