package bankingValidator

import (
	bankingController "github.com/nashriel/secureBank/controllers/banking"
	"github.com/nashriel/secureBank/middleware"

	"github.com/gofiber/fiber/v2"
)

// Amount validates a deposit/withdraw request
func Amount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(bankingController.AmountRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAmount", reqData)
		return c.Next()
	}
}

// Transfer validates a transfer request. Recipient resolution stays in the
// ledger service; only the amount is checked here.
func Transfer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(bankingController.TransferRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTransfer", reqData)
		return c.Next()
	}
}
