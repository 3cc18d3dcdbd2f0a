package subscriptionValidator

import (
	subscriptionController "github.com/nashriel/secureBank/controllers/subscriptions"
	"github.com/nashriel/secureBank/middleware"
	"github.com/nashriel/secureBank/models"

	"github.com/gofiber/fiber/v2"
)

// Subscription validates a new subscription request
func Subscription() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(subscriptionController.SubscriptionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}
		switch models.BillingFrequency(reqData.Frequency) {
		case models.FrequencyWeekly, models.FrequencyMonthly, models.FrequencyYearly:
		default:
			errors["frequency"] = "Frequency must be Weekly, Monthly or Yearly!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubscription", reqData)
		return c.Next()
	}
}
