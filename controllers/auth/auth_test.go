package authController_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/nashriel/secureBank/config"
	authController "github.com/nashriel/secureBank/controllers/auth"
	"github.com/nashriel/secureBank/database"
	"github.com/nashriel/secureBank/middleware"
	"github.com/nashriel/secureBank/models"
	authValidator "github.com/nashriel/secureBank/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

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
	app.Post("/signup", authValidator.Signup(), authController.Signup)
	app.Post("/login", authValidator.Login(), authController.Login)
	app.Get("/logout", middleware.SessionMiddleware, authController.Logout)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, cookies ...*http.Cookie) (*http.Response, apiResponse) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed apiResponse
	require.NoError(t, json.Unmarshal(body, &parsed))
	return resp, parsed
}

func signupForm(username, email string) url.Values {
	return url.Values{
		"fullname": {"Bob Tester"},
		"email":    {email},
		"username": {username},
		"phone":    {"9876543210"},
		"password": {"Str0ng!pass"},
		"confirm":  {"Str0ng!pass"},
	}
}

func TestSignupProvisionsAccountAndUpi(t *testing.T) {
	app := setupApp(t)

	resp, parsed := postForm(t, app, "/signup", signupForm("bob", "bob@example.com"))
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, parsed.Status)

	db := database.Database.Db

	var user models.User
	require.NoError(t, db.Where("username = ?", "bob").First(&user).Error)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "Str0ng!pass", user.Password)

	var account models.Account
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&account).Error)
	assert.Len(t, account.AccountNumber, 12)
	assert.Zero(t, account.Balance)

	var upi models.Upi
	require.NoError(t, db.Where("account_id = ?", account.ID).First(&upi).Error)
	assert.Equal(t, "bob@bank", upi.UpiID)
}

func TestSignupDuplicateIdentityLeavesNoRows(t *testing.T) {
	app := setupApp(t)

	resp, _ := postForm(t, app, "/signup", signupForm("alice", "alice@example.com"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, parsed := postForm(t, app, "/signup", signupForm("alice", "other@example.com"))
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.False(t, parsed.Status)

	db := database.Database.Db
	var users, accounts, upis int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Account{}).Count(&accounts)
	db.Model(&models.Upi{}).Count(&upis)
	assert.EqualValues(t, 1, users)
	assert.EqualValues(t, 1, accounts)
	assert.EqualValues(t, 1, upis)
}

func TestSignupPasswordMismatch(t *testing.T) {
	app := setupApp(t)

	form := signupForm("carol", "carol@example.com")
	form.Set("confirm", "different")
	resp, _ := postForm(t, app, "/signup", form)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSignupWeakPassword(t *testing.T) {
	app := setupApp(t)

	form := signupForm("carol", "carol@example.com")
	form.Set("password", "weakpass")
	form.Set("confirm", "weakpass")
	resp, _ := postForm(t, app, "/signup", form)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	app := setupApp(t)

	_, _ = postForm(t, app, "/signup", signupForm("bob", "bob@example.com"))

	_, wrongPassword := postForm(t, app, "/login", url.Values{
		"username": {"bob"},
		"password": {"Wrong!pass1"},
	})
	_, unknownUser := postForm(t, app, "/login", url.Values{
		"username": {"nobody"},
		"password": {"Wrong!pass1"},
	})

	assert.Equal(t, wrongPassword.Message, unknownUser.Message)
}

func TestLoginOpensSessionAndLogoutRevokes(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	_, _ = postForm(t, app, "/signup", signupForm("bob", "bob@example.com"))

	resp, parsed := postForm(t, app, "/login", url.Values{
		"username": {"bob"},
		"password": {"Str0ng!pass"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, parsed.Status)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)

	var sessions int64
	db.Model(&models.Session{}).Count(&sessions)
	assert.EqualValues(t, 1, sessions)

	req, _ := http.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	logoutResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, logoutResp.StatusCode)

	db.Model(&models.Session{}).Count(&sessions)
	assert.Zero(t, sessions)

	// The revoked token no longer passes the gate
	req, _ = http.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	again, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, again.StatusCode)
}

func TestLogoutWithoutSession(t *testing.T) {
	app := setupApp(t)

	req, _ := http.NewRequest(http.MethodGet, "/logout", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
