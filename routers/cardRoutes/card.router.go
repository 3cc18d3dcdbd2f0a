package cardRoutes

import (
	cardController "github.com/nashriel/secureBank/controllers/cards"
	"github.com/nashriel/secureBank/middleware"
	cardValidator "github.com/nashriel/secureBank/validators/cards"

	"github.com/gofiber/fiber/v2"
)

func SetupCardRoutes(app *fiber.App) {
	cardGroup := app.Group("/cards", middleware.SessionMiddleware)

	cardGroup.Get("/", cardController.ListCards)
	cardGroup.Post("/add", cardValidator.AddCard(), cardController.AddCard)
	cardGroup.Post("/set_pin/:id", cardValidator.SetPin(), cardController.SetPin)
	cardGroup.Get("/delete/:id", cardController.DeleteCard)
	cardGroup.Get("/toggle/:id", cardController.ToggleBlock)
}
