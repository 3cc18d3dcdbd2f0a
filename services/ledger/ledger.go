package ledgerService

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nashriel/secureBank/models"
	"github.com/nashriel/secureBank/utils"

	"gorm.io/gorm"
)

// Sentinel errors for the ledger operations. Handlers map these onto HTTP
// responses; validation failures leave no partial write.
var (
	ErrInvalidAmount          = errors.New("amount must be greater than zero")
	ErrAccountNotFound        = errors.New("account not found")
	ErrInsufficientFunds      = errors.New("insufficient balance")
	ErrRecipientMissing       = errors.New("provide either account number or UPI id")
	ErrRecipientNotFound      = errors.New("recipient not found")
	ErrSelfTransfer           = errors.New("cannot transfer to the same account")
	ErrConcurrentModification = errors.New("account was modified concurrently, please retry")
	ErrTxnIDConflict          = errors.New("could not issue a unique transaction id")
)

// maxTxnIDAttempts bounds the retry loop on txn id collisions.
const maxTxnIDAttempts = 3

// Service owns every balance mutation. All multi-row writes happen inside a
// single database transaction, and debits go through a guarded UPDATE so the
// balance check and the decrement are one atomic statement.
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

// New returns a ledger service on the given database using the wall clock.
func New(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// NewWithClock returns a ledger service with an injected time source.
func NewWithClock(db *gorm.DB, now func() time.Time) *Service {
	return &Service{db: db, now: now}
}

// Deposit credits an account and appends one deposit entry.
func (s *Service) Deposit(accountID uint, amount float64, remarks string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var entry *models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.Where("id = ?", accountID).First(&account).Error; err != nil {
			return ErrAccountNotFound
		}

		if err := tx.Model(&models.Account{}).
			Where("id = ?", account.ID).
			Update("balance", gorm.Expr("balance + ?", amount)).Error; err != nil {
			return err
		}

		var err error
		entry, err = s.appendEntry(tx, account.UserID, account.ID, models.TxnTypeDeposit, amount, "", remarks)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Withdraw debits an account and appends one withdrawal entry. The debit is
// guarded, so a concurrent withdrawal can never take the balance negative.
func (s *Service) Withdraw(accountID uint, amount float64, remarks string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var entry *models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.Where("id = ?", accountID).First(&account).Error; err != nil {
			return ErrAccountNotFound
		}
		if account.Balance < amount {
			return ErrInsufficientFunds
		}

		if err := s.debit(tx, account.ID, amount); err != nil {
			return err
		}

		var err error
		entry, err = s.appendEntry(tx, account.UserID, account.ID, models.TxnTypeWithdrawal, amount, "", remarks)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Transfer moves amount from the sender to the recipient resolved by account
// number or UPI id. Both balance updates and both ledger entries commit
// together or not at all.
func (s *Service) Transfer(senderAccountID uint, accountNumber, upiID string, amount float64, remarks string) (*models.Transaction, *models.Transaction, error) {
	if accountNumber == "" && upiID == "" {
		return nil, nil, ErrRecipientMissing
	}
	if amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}

	var sent, received *models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var sender models.Account
		if err := tx.Where("id = ?", senderAccountID).First(&sender).Error; err != nil {
			return ErrAccountNotFound
		}

		recipient, locator, err := s.resolveRecipient(tx, accountNumber, upiID)
		if err != nil {
			return err
		}
		if recipient.ID == sender.ID {
			return ErrSelfTransfer
		}
		if sender.Balance < amount {
			return ErrInsufficientFunds
		}

		if err := s.debit(tx, sender.ID, amount); err != nil {
			return err
		}
		if err := tx.Model(&models.Account{}).
			Where("id = ?", recipient.ID).
			Update("balance", gorm.Expr("balance + ?", amount)).Error; err != nil {
			return err
		}

		sent, err = s.appendEntry(tx, sender.UserID, sender.ID, models.TxnTypeTransferSent,
			amount, locator, fmt.Sprintf("To %s - %s", locator, remarks))
		if err != nil {
			return err
		}
		received, err = s.appendEntry(tx, recipient.UserID, recipient.ID, models.TxnTypeTransferReceived,
			amount, sender.AccountNumber, fmt.Sprintf("From %s - %s", sender.AccountNumber, remarks))
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return sent, received, nil
}

// History returns a user's ledger entries, newest first.
func (s *Service) History(userID uint) ([]models.Transaction, error) {
	var entries []models.Transaction
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

// resolveRecipient looks up the target account. Account number takes
// precedence when both locators are given.
func (s *Service) resolveRecipient(tx *gorm.DB, accountNumber, upiID string) (*models.Account, string, error) {
	var account models.Account

	if accountNumber != "" {
		if err := tx.Where("account_number = ?", accountNumber).First(&account).Error; err != nil {
			return nil, "", ErrRecipientNotFound
		}
		return &account, accountNumber, nil
	}

	var upi models.Upi
	if err := tx.Where("upi_id = ?", upiID).First(&upi).Error; err != nil {
		return nil, "", ErrRecipientNotFound
	}
	if err := tx.Where("id = ?", upi.AccountID).First(&account).Error; err != nil {
		return nil, "", ErrRecipientNotFound
	}
	return &account, upiID, nil
}

// debit decrements a balance only if it still covers the amount. Zero rows
// affected after the caller's pre-read means a concurrent writer drained the
// account first.
func (s *Service) debit(tx *gorm.DB, accountID uint, amount float64) error {
	result := tx.Model(&models.Account{}).
		Where("id = ? AND balance >= ?", accountID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// appendEntry writes one immutable ledger row, retrying with a fresh txn id
// if the unique constraint trips.
func (s *Service) appendEntry(tx *gorm.DB, userID, accountID uint, txnType models.TxnType, amount float64, counterparty, remarks string) (*models.Transaction, error) {
	now := s.now()

	for attempt := 0; attempt < maxTxnIDAttempts; attempt++ {
		entry := &models.Transaction{
			TxnID:        utils.GenerateTxnID(),
			UserID:       userID,
			AccountID:    accountID,
			TxnType:      txnType,
			Amount:       amount,
			Counterparty: counterparty,
			Remarks:      remarks,
		}
		entry.CreatedAt = now
		entry.UpdatedAt = now

		err := tx.Create(entry).Error
		if err == nil {
			return entry, nil
		}
		if !isDuplicateKey(err) {
			return nil, err
		}
	}
	return nil, ErrTxnIDConflict
}

// isDuplicateKey matches unique-constraint violations across sqlite and
// postgres without driver-specific error types.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
