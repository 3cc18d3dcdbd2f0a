package utils

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountNumberLen is the fixed length of generated account numbers
const AccountNumberLen = 12

var (
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
	digitRegex = regexp.MustCompile(`^\d+$`)

	pwUpper  = regexp.MustCompile(`[A-Z]`)
	pwLower  = regexp.MustCompile(`[a-z]`)
	pwDigit  = regexp.MustCompile(`\d`)
	pwSymbol = regexp.MustCompile(`[^\w\s]`)
)

// GenerateAccountNumber returns a 12-digit pseudo-random account number with
// a non-zero first digit.
func GenerateAccountNumber() string {
	digits := strings.TrimLeft(fmt.Sprintf("%d", uuid.New().ID())+fmt.Sprintf("%d", uuid.New().ID()), "0")
	for len(digits) < AccountNumberLen {
		digits += fmt.Sprintf("%d", rand.Intn(10))
	}
	return digits[:AccountNumberLen]
}

// GenerateTxnID returns a ledger transaction id, "TXN" plus 16 hex chars.
// Uniqueness is enforced by the transactions table; callers retry on
// collision.
func GenerateTxnID() string {
	return "TXN" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
}

// GenerateUpiID builds the default UPI handle for a username.
func GenerateUpiID(username string) string {
	return username + "@bank"
}

// GenerateCVV returns a random 3-digit CVV.
func GenerateCVV() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return fmt.Sprintf("%03d", rng.Intn(1000))
}

// ValidatePhone accepts exactly 10 digits.
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidatePassword requires at least 8 chars with upper, lower, digit and symbol.
func ValidatePassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	return pwUpper.MatchString(pw) &&
		pwLower.MatchString(pw) &&
		pwDigit.MatchString(pw) &&
		pwSymbol.MatchString(pw)
}

// IsDigits reports whether s is non-empty and all digits.
func IsDigits(s string) bool {
	return digitRegex.MatchString(s)
}
