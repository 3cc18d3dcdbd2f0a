package authRoutes

import (
	authControllers "github.com/nashriel/secureBank/controllers/auth"
	"github.com/nashriel/secureBank/middleware"
	authValidators "github.com/nashriel/secureBank/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/signup", authControllers.SignupPage)
	app.Post("/signup", authValidators.Signup(), authControllers.Signup)
	app.Get("/login", authControllers.LoginPage)
	app.Post("/login", authValidators.Login(), authControllers.Login)
	app.Get("/logout", middleware.SessionMiddleware, authControllers.Logout)
}
