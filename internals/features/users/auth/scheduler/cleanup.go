// file: internals/features/users/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authRepo "vahanhub_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler purges expired blacklist rows and stale
// refresh tokens on an interval. Runs for the lifetime of the process.
func StartBlacklistCleanupScheduler(db *gorm.DB, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := authRepo.CleanupExpiredBlacklist(db); err != nil {
				log.Printf("[WARN] Blacklist cleanup failed: %v", err)
			}
			if err := cleanupExpiredRefreshTokens(db); err != nil {
				log.Printf("[WARN] Refresh token cleanup failed: %v", err)
			}
		}
	}()
	log.Printf("🧹 Token cleanup scheduler started (every %s)", interval)
}

func cleanupExpiredRefreshTokens(db *gorm.DB) error {
	return db.Exec(`DELETE FROM refresh_tokens WHERE expires_at < NOW() OR revoked_at IS NOT NULL`).Error
}
