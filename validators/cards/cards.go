package cardValidator

import (
	cardController "github.com/nashriel/secureBank/controllers/cards"
	"github.com/nashriel/secureBank/middleware"
	"github.com/nashriel/secureBank/models"
	"github.com/nashriel/secureBank/utils"

	"github.com/gofiber/fiber/v2"
)

// AddCard validates a card issue request
func AddCard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(cardController.AddCardRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.CardNumber) != 16 || !utils.IsDigits(reqData.CardNumber) {
			errors["card_number"] = "Card number must be exactly 16 digits!"
		}
		if reqData.CardType != string(models.CardTypeDebit) && reqData.CardType != string(models.CardTypeCredit) {
			errors["card_type"] = "Card type must be debit or credit!"
		}
		if len(reqData.Pin) != 4 || !utils.IsDigits(reqData.Pin) {
			errors["pin"] = "Pin must be exactly 4 digits!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAddCard", reqData)
		return c.Next()
	}
}

// SetPin validates a pin change request
func SetPin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(cardController.SetPinRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Pin) != 4 || !utils.IsDigits(reqData.Pin) {
			errors["pin"] = "Pin must be exactly 4 digits!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSetPin", reqData)
		return c.Next()
	}
}
