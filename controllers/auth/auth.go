package authController

import (
	"log"
	"time"

	"github.com/nashriel/secureBank/config"
	"github.com/nashriel/secureBank/database"
	"github.com/nashriel/secureBank/middleware"
	"github.com/nashriel/secureBank/models"
	"github.com/nashriel/secureBank/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SignupPage returns the data the signup form needs.
func SignupPage(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Signup", fiber.Map{
		"fields": []string{"fullname", "email", "username", "phone", "password", "confirm"},
	})
}

// Signup registers a user and provisions their account and UPI handle in one
// transaction, so a failure leaves no orphan rows.
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Duplicate username/email is a conflict, not a validation failure
	var existing models.User
	if err := db.Where("username = ? OR email = ?", reqData.Username, reqData.Email).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username or email already taken.", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		FullName: reqData.FullName,
		Email:    reqData.Email,
		Username: reqData.Username,
		Phone:    reqData.Phone,
		Password: string(hashedPassword),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}

		account := models.Account{
			UserID:        newUser.ID,
			AccountNumber: utils.GenerateAccountNumber(),
			Balance:       0,
		}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}

		upi := models.Upi{
			AccountID: account.ID,
			UpiID:     utils.GenerateUpiID(newUser.Username),
		}
		return tx.Create(&upi).Error
	})
	if err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Account created successfully! Please login.", newUser)
}

// LoginPage returns the data the login form needs.
func LoginPage(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login", fiber.Map{
		"fields": []string{"username", "password"},
	})
}

// Login verifies credentials and opens a session. Unknown username and wrong
// password share one message so usernames cannot be enumerated.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("username = ?", reqData.Username).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid username or password", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid username or password", nil)
	}

	expiresAt := time.Now().Add(time.Duration(config.AppConfig.SessionTTL) * time.Hour)
	token, err := middleware.GenerateSessionToken(user.ID, user.IsAdmin, expiresAt)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate session token", nil)
	}

	session := models.Session{
		Token:     token,
		UserID:    user.ID,
		IsAdmin:   user.IsAdmin,
		ExpiresAt: expiresAt,
	}
	if err := db.Create(&session).Error; err != nil {
		log.Printf("Error saving session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to open session!", nil)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
	})

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Logout revokes the current session and clears the cookie.
func Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("sessionToken").(string)
	if token != "" {
		database.Database.Db.Unscoped().Where("token = ?", token).Delete(&models.Session{})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "You have been logged out.", nil)
}
