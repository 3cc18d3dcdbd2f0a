package adminController_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/nashriel/secureBank/config"
	adminController "github.com/nashriel/secureBank/controllers/admin"
	"github.com/nashriel/secureBank/database"
	"github.com/nashriel/secureBank/middleware"
	"github.com/nashriel/secureBank/models"
	ledgerService "github.com/nashriel/secureBank/services/ledger"
	"github.com/nashriel/secureBank/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:     "test-secret",
		SaltRound:  4,
		SessionTTL: 1,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/users", middleware.SessionMiddleware, middleware.AdminMiddleware, adminController.UserList)
	app.Get("/delete_user/:id", middleware.SessionMiddleware, middleware.AdminMiddleware, adminController.DeleteUser)
	app.Get("/make_admin/:id", middleware.SessionMiddleware, middleware.AdminMiddleware, adminController.MakeAdmin)
	return app
}

func createUser(t *testing.T, username string, isAdmin bool) (*models.User, *models.Account, *http.Cookie) {
	t.Helper()
	db := database.Database.Db

	user := models.User{
		FullName: username,
		Email:    username + "@example.com",
		Username: username,
		Password: "x",
		IsAdmin:  isAdmin,
	}
	require.NoError(t, db.Create(&user).Error)

	account := models.Account{UserID: user.ID, AccountNumber: utils.GenerateAccountNumber()}
	require.NoError(t, db.Create(&account).Error)
	require.NoError(t, db.Create(&models.Upi{AccountID: account.ID, UpiID: utils.GenerateUpiID(username)}).Error)

	expiresAt := time.Now().Add(time.Hour)
	token, err := middleware.GenerateSessionToken(user.ID, isAdmin, expiresAt)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Session{Token: token, UserID: user.ID, IsAdmin: isAdmin, ExpiresAt: expiresAt}).Error)

	return &user, &account, &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func get(t *testing.T, app *fiber.App, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAdminRoutesDenyRegularUsers(t *testing.T) {
	app := setupApp(t)
	_, _, userCookie := createUser(t, "bob", false)

	assert.Equal(t, fiber.StatusForbidden, get(t, app, "/users", userCookie).StatusCode)
	assert.Equal(t, fiber.StatusForbidden, get(t, app, "/delete_user/1", userCookie).StatusCode)
	assert.Equal(t, fiber.StatusForbidden, get(t, app, "/make_admin/1", userCookie).StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/users", nil).StatusCode)
}

func TestDeleteUserCascadesButKeepsLedger(t *testing.T) {
	app := setupApp(t)
	_, _, adminCookie := createUser(t, "root", true)
	target, targetAccount, _ := createUser(t, "bob", false)

	db := database.Database.Db
	require.NoError(t, db.Create(&models.Card{
		AccountID:  targetAccount.ID,
		CardNumber: "4111111111111111",
		CardType:   models.CardTypeDebit,
		PinHash:    "x",
	}).Error)
	require.NoError(t, db.Create(&models.Subscription{
		UserID:    target.ID,
		Name:      "Streaming",
		Amount:    99,
		Frequency: models.FrequencyMonthly,
	}).Error)

	svc := ledgerService.New(db)
	_, err := svc.Deposit(targetAccount.ID, 100, "pre-delete")
	require.NoError(t, err)

	resp := get(t, app, fmt.Sprintf("/delete_user/%d", target.ID), adminCookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var users, accounts, cards, upis, subs, sessions int64
	db.Model(&models.User{}).Where("id = ?", target.ID).Count(&users)
	db.Model(&models.Account{}).Where("user_id = ?", target.ID).Count(&accounts)
	db.Model(&models.Card{}).Where("account_id = ?", targetAccount.ID).Count(&cards)
	db.Model(&models.Upi{}).Where("account_id = ?", targetAccount.ID).Count(&upis)
	db.Model(&models.Subscription{}).Where("user_id = ?", target.ID).Count(&subs)
	db.Model(&models.Session{}).Where("user_id = ?", target.ID).Count(&sessions)
	assert.Zero(t, users)
	assert.Zero(t, accounts)
	assert.Zero(t, cards)
	assert.Zero(t, upis)
	assert.Zero(t, subs)
	assert.Zero(t, sessions)

	// The ledger survives as an audit trail
	var entries int64
	db.Model(&models.Transaction{}).Where("user_id = ?", target.ID).Count(&entries)
	assert.EqualValues(t, 1, entries)
}

func TestAdminCannotDeleteThemselves(t *testing.T) {
	app := setupApp(t)
	admin, _, adminCookie := createUser(t, "root", true)

	resp := get(t, app, fmt.Sprintf("/delete_user/%d", admin.ID), adminCookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMakeAdminPromotesUser(t *testing.T) {
	app := setupApp(t)
	_, _, adminCookie := createUser(t, "root", true)
	target, _, _ := createUser(t, "bob", false)

	resp := get(t, app, fmt.Sprintf("/make_admin/%d", target.ID), adminCookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fresh models.User
	require.NoError(t, database.Database.Db.First(&fresh, target.ID).Error)
	assert.True(t, fresh.IsAdmin)
}

func TestMakeAdminUnknownUser(t *testing.T) {
	app := setupApp(t)
	_, _, adminCookie := createUser(t, "root", true)

	resp := get(t, app, "/make_admin/9999", adminCookie)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
