package cardController

import (
	"log"

	"github.com/nashriel/secureBank/database"
	"github.com/nashriel/secureBank/middleware"
	"github.com/nashriel/secureBank/models"
	"github.com/nashriel/secureBank/utils"

	"github.com/gofiber/fiber/v2"
)

// AddCardRequest is the card issue form payload.
type AddCardRequest struct {
	CardNumber string `json:"card_number" form:"card_number"`
	CardType   string `json:"card_type" form:"card_type"`
	Expiry     string `json:"expiry" form:"expiry"`
	Pin        string `json:"pin" form:"pin"`
}

// SetPinRequest carries a replacement pin.
type SetPinRequest struct {
	Pin string `json:"pin" form:"pin"`
}

// cardForUser loads a card only if it belongs to the caller's account.
func cardForUser(cardID string, userID uint) (*models.Card, error) {
	db := database.Database.Db

	var account models.Account
	if err := db.Where("user_id = ?", userID).First(&account).Error; err != nil {
		return nil, err
	}

	var card models.Card
	if err := db.Where("id = ? AND account_id = ?", cardID, account.ID).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// ListCards returns the caller's cards.
func ListCards(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	db := database.Database.Db

	var account models.Account
	if err := db.Where("user_id = ?", userId).First(&account).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Account not found!", nil)
	}

	var cards []models.Card
	if err := db.Where("account_id = ?", account.ID).Find(&cards).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cards!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cards", fiber.Map{
		"accountNumber": account.AccountNumber,
		"cards":         cards,
	})
}

// AddCard issues a card against the caller's account. At most 2 debit and
// 1 credit card per account; the pin is stored only as a bcrypt hash.
func AddCard(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedAddCard").(*AddCardRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var account models.Account
	if err := db.Where("user_id = ?", userId).First(&account).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Account not found!", nil)
	}

	cardType := models.CardType(reqData.CardType)
	limit := int64(models.MaxDebitCards)
	if cardType == models.CardTypeCredit {
		limit = models.MaxCreditCards
	}

	var count int64
	db.Model(&models.Card{}).
		Where("account_id = ? AND card_type = ?", account.ID, cardType).
		Count(&count)
	if count >= limit {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Card limit exceeded for this type!", nil)
	}

	var existing models.Card
	if err := db.Where("card_number = ?", reqData.CardNumber).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Card number already registered!", nil)
	}

	pinHash, err := bcryptPin(reqData.Pin)
	if err != nil {
		log.Printf("Error hashing pin: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	card := models.Card{
		AccountID:  account.ID,
		CardNumber: reqData.CardNumber,
		CardType:   cardType,
		Expiry:     reqData.Expiry,
		CVV:        utils.GenerateCVV(),
		PinHash:    pinHash,
	}
	if err := db.Create(&card).Error; err != nil {
		log.Printf("Error saving card: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add card!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Card added successfully.", card)
}

// ToggleBlock flips the blocked flag; calling it twice restores the card.
func ToggleBlock(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	card, err := cardForUser(c.Params("id"), userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Card not found!", nil)
	}

	card.Blocked = !card.Blocked
	if err := database.Database.Db.Model(card).Update("blocked", card.Blocked).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update card!", nil)
	}

	message := "Card unblocked."
	if card.Blocked {
		message = "Card blocked."
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, card)
}

// SetPin replaces the card pin hash.
func SetPin(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedSetPin").(*SetPinRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	card, err := cardForUser(c.Params("id"), userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Card not found!", nil)
	}

	pinHash, err := bcryptPin(reqData.Pin)
	if err != nil {
		log.Printf("Error hashing pin: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	if err := database.Database.Db.Model(card).Update("pin_hash", pinHash).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update pin!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pin updated successfully.", nil)
}

// DeleteCard removes a card from the caller's account.
func DeleteCard(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	card, err := cardForUser(c.Params("id"), userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Card not found!", nil)
	}

	if err := database.Database.Db.Delete(card).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete card!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Card deleted successfully.", nil)
}
