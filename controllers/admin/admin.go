package adminController

import (
	"log"

	"github.com/nashriel/secureBank/database"
	"github.com/nashriel/secureBank/middleware"
	"github.com/nashriel/secureBank/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserList returns every user for the admin view.
func UserList(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User list.", fiber.Map{
		"users": users,
	})
}

// DeleteUser removes a user and everything they exclusively own: accounts,
// cards, UPI handles, subscriptions and sessions. Ledger entries are kept as
// the audit trail.
func DeleteUser(c *fiber.Ctx) error {
	adminId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.First(&user, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if user.ID == adminId {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot delete your own account.", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		var accounts []models.Account
		if err := tx.Where("user_id = ?", user.ID).Find(&accounts).Error; err != nil {
			return err
		}

		for _, account := range accounts {
			if err := tx.Where("account_id = ?", account.ID).Delete(&models.Card{}).Error; err != nil {
				return err
			}
			if err := tx.Where("account_id = ?", account.ID).Delete(&models.Upi{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Account{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Subscription{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", user.ID).Delete(&models.Session{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
	if err != nil {
		log.Printf("Error deleting user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully.", nil)
}

// MakeAdmin promotes a user. The elevated flag is picked up at their next
// login, when a fresh session row is issued.
func MakeAdmin(c *fiber.Ctx) error {
	var user models.User
	if err := database.Database.Db.First(&user, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if user.IsAdmin {
		return middleware.JsonResponse(c, fiber.StatusOK, true, user.FullName+" is already an admin.", nil)
	}

	if err := database.Database.Db.Model(&user).Update("is_admin", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, user.FullName+" is now an admin.", nil)
}
