package adminRoutes

import (
	adminController "github.com/nashriel/secureBank/controllers/admin"
	"github.com/nashriel/secureBank/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	app.Get("/users", middleware.SessionMiddleware, middleware.AdminMiddleware, adminController.UserList)
	app.Get("/delete_user/:id", middleware.SessionMiddleware, middleware.AdminMiddleware, adminController.DeleteUser)
	app.Get("/make_admin/:id", middleware.SessionMiddleware, middleware.AdminMiddleware, adminController.MakeAdmin)
}
