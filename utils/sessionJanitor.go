package utils

import (
	"log"
	"time"

	"github.com/nashriel/secureBank/database"
	"github.com/nashriel/secureBank/models"

	"github.com/robfig/cron/v3"
)

// InitializeSessionJanitor sets up the expired-session purge scheduler
func InitializeSessionJanitor() {
	log.Println("[SESSION-JANITOR] Initializing session janitor...")

	c := cron.New()

	// Run hourly to drop sessions past their expiry
	c.AddFunc("0 * * * *", func() {
		PurgeExpiredSessions()
	})

	c.Start()
	log.Println("[SESSION-JANITOR] Session janitor started - runs hourly")
}

// PurgeExpiredSessions hard-deletes sessions whose expiry has passed
func PurgeExpiredSessions() {
	db := database.Database.Db

	result := db.Unscoped().
		Where("expires_at < ?", time.Now()).
		Delete(&models.Session{})

	if result.Error != nil {
		log.Printf("[SESSION-JANITOR] Error purging sessions: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[SESSION-JANITOR] Purged %d expired sessions", result.RowsAffected)
	}
}
