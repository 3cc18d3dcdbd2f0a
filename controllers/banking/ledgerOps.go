package bankingController

import (
	"github.com/nashriel/secureBank/database"
	"github.com/nashriel/secureBank/metrics"
	"github.com/nashriel/secureBank/middleware"
	"github.com/nashriel/secureBank/models"
	ledgerService "github.com/nashriel/secureBank/services/ledger"
	"github.com/nashriel/secureBank/utils"

	"github.com/gofiber/fiber/v2"
)

// DepositPage returns the current balance for the deposit form.
func DepositPage(c *fiber.Ctx) error {
	return balancePage(c, "Deposit")
}

// WithdrawPage returns the current balance for the withdraw form.
func WithdrawPage(c *fiber.Ctx) error {
	return balancePage(c, "Withdraw")
}

// TransferPage returns the current balance for the transfer form.
func TransferPage(c *fiber.Ctx) error {
	return balancePage(c, "Transfer")
}

func balancePage(c *fiber.Ctx, title string) error {
	userId := c.Locals("userId").(uint)

	account, err := accountForUser(userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Account not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, title, fiber.Map{
		"accountNumber": account.AccountNumber,
		"balance":       account.Balance,
	})
}

// Deposit credits the caller's account.
func Deposit(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedAmount").(*AmountRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	account, err := accountForUser(userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Account not found!", nil)
	}

	svc := ledgerService.New(database.Database.Db)
	entry, err := svc.Deposit(account.ID, reqData.Amount, reqData.Remarks)
	metrics.RecordLedgerOp("deposit", err)
	if err != nil {
		return ledgerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Deposit successful!", fiber.Map{
		"txnId":   entry.TxnID,
		"amount":  entry.Amount,
		"balance": account.Balance + entry.Amount,
	})
}

// Withdraw debits the caller's account.
func Withdraw(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedAmount").(*AmountRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	account, err := accountForUser(userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Account not found!", nil)
	}

	svc := ledgerService.New(database.Database.Db)
	entry, err := svc.Withdraw(account.ID, reqData.Amount, reqData.Remarks)
	metrics.RecordLedgerOp("withdrawal", err)
	if err != nil {
		return ledgerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawal successful!", fiber.Map{
		"txnId":   entry.TxnID,
		"amount":  entry.Amount,
		"balance": account.Balance - entry.Amount,
	})
}

// Transfer moves money from the caller's account to a recipient identified
// by account number or UPI id.
func Transfer(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedTransfer").(*TransferRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	account, err := accountForUser(userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Account not found!", nil)
	}

	svc := ledgerService.New(database.Database.Db)
	sent, _, err := svc.Transfer(account.ID, reqData.AccountNumber, reqData.UpiID, reqData.Amount, reqData.Remarks)
	metrics.RecordLedgerOp("transfer", err)
	if err != nil {
		return ledgerErrorResponse(c, err)
	}

	// Fire-and-forget alert to the sender
	db := database.Database.Db
	go func(userID uint, counterparty string, amount float64) {
		var user models.User
		if err := db.First(&user, userID).Error; err == nil {
			utils.SendTransferAlert(user.Email, user.FullName, counterparty, amount)
		}
	}(userId, sent.Counterparty, sent.Amount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transfer successful!", fiber.Map{
		"txnId":        sent.TxnID,
		"amount":       sent.Amount,
		"counterparty": sent.Counterparty,
	})
}
