package subscriptionController

import (
	"log"
	"time"

	"github.com/nashriel/secureBank/database"
	"github.com/nashriel/secureBank/middleware"
	"github.com/nashriel/secureBank/models"

	"github.com/gofiber/fiber/v2"
)

// SubscriptionRequest is the subscription form payload.
type SubscriptionRequest struct {
	Name      string  `json:"name" form:"name"`
	Amount    float64 `json:"amount" form:"amount"`
	Frequency string  `json:"frequency" form:"frequency"`
}

// nextBilling computes the first billing date for a frequency. Dates are
// tracked only; nothing ever advances them automatically.
func nextBilling(from time.Time, frequency models.BillingFrequency) time.Time {
	switch frequency {
	case models.FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case models.FrequencyYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

// ListSubscriptions returns the caller's subscriptions.
func ListSubscriptions(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var subscriptions []models.Subscription
	if err := database.Database.Db.Where("user_id = ?", userId).Find(&subscriptions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subscriptions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscriptions", fiber.Map{
		"subscriptions": subscriptions,
	})
}

// CreateSubscription registers a recurring payment for tracking.
func CreateSubscription(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedSubscription").(*SubscriptionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	now := time.Now()
	next := nextBilling(now, models.BillingFrequency(reqData.Frequency))

	subscription := models.Subscription{
		UserID:        userId,
		Name:          reqData.Name,
		Amount:        reqData.Amount,
		Frequency:     models.BillingFrequency(reqData.Frequency),
		Active:        true,
		NextBillingAt: &next,
	}
	if err := database.Database.Db.Create(&subscription).Error; err != nil {
		log.Printf("Error saving subscription: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add subscription!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subscription added.", subscription)
}

// DeleteSubscription removes one of the caller's subscriptions.
func DeleteSubscription(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var subscription models.Subscription
	if err := database.Database.Db.
		Where("id = ? AND user_id = ?", c.Params("id"), userId).
		First(&subscription).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subscription not found!", nil)
	}

	if err := database.Database.Db.Delete(&subscription).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete subscription!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription deleted.", nil)
}
