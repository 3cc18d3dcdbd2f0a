package bankingController

import (
	"errors"

	"github.com/nashriel/secureBank/database"
	"github.com/nashriel/secureBank/middleware"
	"github.com/nashriel/secureBank/models"
	ledgerService "github.com/nashriel/secureBank/services/ledger"

	"github.com/gofiber/fiber/v2"
)

// AmountRequest is the deposit/withdraw form payload.
type AmountRequest struct {
	Amount  float64 `json:"amount" form:"amount"`
	Remarks string  `json:"remarks" form:"remarks"`
}

// TransferRequest is the transfer form payload; exactly one recipient
// locator is expected.
type TransferRequest struct {
	AccountNumber string  `json:"account_number" form:"account_number"`
	UpiID         string  `json:"upi_id" form:"upi_id"`
	Amount        float64 `json:"amount" form:"amount"`
	Remarks       string  `json:"remarks" form:"remarks"`
}

// accountForUser loads the caller's account.
func accountForUser(userID uint) (*models.Account, error) {
	var account models.Account
	if err := database.Database.Db.Where("user_id = ?", userID).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// ledgerErrorResponse maps ledger sentinel errors onto HTTP responses.
// Conflicts are kept distinct from validation failures so the client can
// tell "retry" from "fix your input".
func ledgerErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ledgerService.ErrInvalidAmount):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Amount must be greater than zero.", nil)
	case errors.Is(err, ledgerService.ErrInsufficientFunds):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient balance!", nil)
	case errors.Is(err, ledgerService.ErrRecipientMissing):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Provide either account number or UPI ID.", nil)
	case errors.Is(err, ledgerService.ErrSelfTransfer):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot transfer to your own account.", nil)
	case errors.Is(err, ledgerService.ErrAccountNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Account not found!", nil)
	case errors.Is(err, ledgerService.ErrRecipientNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recipient not found!", nil)
	case errors.Is(err, ledgerService.ErrConcurrentModification),
		errors.Is(err, ledgerService.ErrTxnIDConflict):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "The account is busy, please try again.", nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Transaction failed!", nil)
	}
}

// Dashboard returns the admin overview for admins, the account view otherwise.
func Dashboard(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	isAdmin, _ := c.Locals("isAdmin").(bool)

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if isAdmin {
		var allUsers []models.User
		var transactions []models.Transaction
		db.Find(&allUsers)
		db.Order("created_at DESC").Find(&transactions)

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard", fiber.Map{
			"username":     user.Username,
			"isAdmin":      true,
			"users":        allUsers,
			"transactions": transactions,
		})
	}

	account, err := accountForUser(userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Account not found!", nil)
	}

	var upi models.Upi
	upiID := ""
	if err := db.Where("account_id = ?", account.ID).First(&upi).Error; err == nil {
		upiID = upi.UpiID
	}

	var deposits, withdrawals []models.Transaction
	db.Where("user_id = ? AND txn_type = ?", userId, models.TxnTypeDeposit).Find(&deposits)
	db.Where("user_id = ? AND txn_type = ?", userId, models.TxnTypeWithdrawal).Find(&withdrawals)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard", fiber.Map{
		"username":    user.Username,
		"isAdmin":     false,
		"balance":     account.Balance,
		"upi":         upiID,
		"deposits":    deposits,
		"withdrawals": withdrawals,
	})
}

// Transactions lists the caller's ledger entries grouped by type.
func Transactions(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	db := database.Database.Db

	account, err := accountForUser(userId)
	balance := 0.0
	if err == nil {
		balance = account.Balance
	}

	var deposits, withdrawals, transfersSent, transfersReceived []models.Transaction
	db.Where("user_id = ? AND txn_type = ?", userId, models.TxnTypeDeposit).Find(&deposits)
	db.Where("user_id = ? AND txn_type = ?", userId, models.TxnTypeWithdrawal).Find(&withdrawals)
	db.Where("user_id = ? AND txn_type = ?", userId, models.TxnTypeTransferSent).Find(&transfersSent)
	db.Where("user_id = ? AND txn_type = ?", userId, models.TxnTypeTransferReceived).Find(&transfersReceived)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transactions", fiber.Map{
		"balance":            balance,
		"deposits":           deposits,
		"withdrawals":        withdrawals,
		"transfers_sent":     transfersSent,
		"transfers_received": transfersReceived,
	})
}
