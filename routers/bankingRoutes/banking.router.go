package bankingRoutes

import (
	bankingController "github.com/nashriel/secureBank/controllers/banking"
	"github.com/nashriel/secureBank/middleware"
	bankingValidator "github.com/nashriel/secureBank/validators/banking"

	"github.com/gofiber/fiber/v2"
)

func SetupBankingRoutes(app *fiber.App) {
	app.Get("/dashboard", middleware.SessionMiddleware, bankingController.Dashboard)
	app.Get("/transactions", middleware.SessionMiddleware, bankingController.Transactions)
	app.Get("/export_transactions/:format", middleware.SessionMiddleware, bankingController.ExportTransactions)

	app.Get("/deposit", middleware.SessionMiddleware, bankingController.DepositPage)
	app.Post("/deposit", middleware.SessionMiddleware, bankingValidator.Amount(), bankingController.Deposit)
	app.Get("/withdraw", middleware.SessionMiddleware, bankingController.WithdrawPage)
	app.Post("/withdraw", middleware.SessionMiddleware, bankingValidator.Amount(), bankingController.Withdraw)
	app.Get("/transfer", middleware.SessionMiddleware, bankingController.TransferPage)
	app.Post("/transfer", middleware.SessionMiddleware, bankingValidator.Transfer(), bankingController.Transfer)
}
