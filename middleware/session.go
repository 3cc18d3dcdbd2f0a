package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/nashriel/secureBank/config"
	"github.com/nashriel/secureBank/database"
	"github.com/nashriel/secureBank/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// SessionCookie is the cookie carrying the session token
const SessionCookie = "session_token"

// GenerateSessionToken signs a session JWT for the user. The same string is
// stored as a Session row; both must match for the gate to pass.
func GenerateSessionToken(userID uint, isAdmin bool, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"userId":  userID,
		"isAdmin": isAdmin,
		"jti":     uuid.NewString(), // two logins in one second must not share a token
		"iat":     time.Now().Unix(),
		"exp":     expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// TokenFromRequest extracts the session token from the cookie or, failing
// that, a Bearer Authorization header.
func TokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies(SessionCookie); token != "" {
		return token
	}
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[len("Bearer "):]
	}
	return ""
}

// SessionMiddleware authenticates a request. The token must be a valid JWT
// and still present, unexpired, in the session store; it then attaches
// userId and isAdmin to the request context.
func SessionMiddleware(c *fiber.Ctx) error {
	tokenString := TokenFromRequest(c)
	if tokenString == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Please login first.", nil)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired session!", nil)
	}

	// The JWT alone is not enough; logout deletes the row and revokes it.
	var session models.Session
	if err := database.Database.Db.Where("token = ?", tokenString).First(&session).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired session!", nil)
	}
	if session.ExpiresAt.Before(time.Now()) {
		database.Database.Db.Unscoped().Delete(&session)
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Session expired, please login again.", nil)
	}

	c.Locals("userId", session.UserID)
	c.Locals("isAdmin", session.IsAdmin)
	c.Locals("sessionToken", tokenString)

	return c.Next()
}

// AdminMiddleware gates admin-only routes. Must run after SessionMiddleware.
func AdminMiddleware(c *fiber.Ctx) error {
	isAdmin, ok := c.Locals("isAdmin").(bool)
	if !ok || !isAdmin {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied. Admins only!", nil)
	}
	return c.Next()
}
