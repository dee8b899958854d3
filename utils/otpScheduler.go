package utils

import (
	"charityhub/database"
	"charityhub/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[OTP-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeStaleOTPs removes used and expired OTP rows
func purgeStaleOTPs() {
	db := database.Database.Db

	res := db.Where("is_used = ? OR expires_at < ?", true, time.Now()).Delete(&models.OTP{})
	if res.Error != nil {
		logScheduler("Error purging stale OTPs: " + res.Error.Error())
		return
	}
	if res.RowsAffected > 0 {
		logScheduler("Purged stale OTP records")
	}
}

// InitializeOTPScheduler starts the nightly OTP cleanup job
func InitializeOTPScheduler() *cron.Cron {
	c := cron.New()

	// Every day at 02:00
	if _, err := c.AddFunc("0 2 * * *", purgeStaleOTPs); err != nil {
		log.Fatalf("Failed to schedule OTP cleanup: %v", err)
	}

	c.Start()
	logScheduler("OTP cleanup scheduler started")
	return c
}
