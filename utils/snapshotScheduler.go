package utils

import (
	"log"
	"time"

	"papertrade/config"
	"papertrade/database"
	"papertrade/models"
	"papertrade/services"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeSnapshotScheduler wires the daily valuation jobs: a snapshot
// of every portfolio followed by that day's performance metric row.
func InitializeSnapshotScheduler() *cron.Cron {
	log.Println("[SNAPSHOT-SCHEDULER] Initializing snapshot scheduler...")

	c := cron.New()

	schedule := config.AppConfig.SnapshotSchedule
	if _, err := c.AddFunc(schedule, func() {
		RunDailyValuation()
	}); err != nil {
		log.Printf("[SNAPSHOT-SCHEDULER] Invalid schedule %q: %v", schedule, err)
		return c
	}

	// Quote refresh piggybacks on the same cron when a feed is configured.
	if config.AppConfig.QuoteApiKey != "" {
		if _, err := c.AddFunc("*/15 9-16 * * 1-5", func() {
			RefreshPrices()
		}); err != nil {
			log.Printf("[SNAPSHOT-SCHEDULER] Failed to schedule price refresh: %v", err)
		}
	}

	c.Start()
	log.Printf("[SNAPSHOT-SCHEDULER] Snapshot scheduler started - schedule %q", schedule)
	return c
}

// RunDailyValuation snapshots every portfolio and records its metric row
// for today. Failures on one portfolio do not stop the rest.
func RunDailyValuation() {
	db := database.Database.Db
	today := now.BeginningOfDay()

	var portfolios []models.Portfolio
	if err := db.Find(&portfolios).Error; err != nil {
		log.Printf("[SNAPSHOT-SCHEDULER] Failed to list portfolios: %v", err)
		return
	}

	snapped := 0
	for _, portfolio := range portfolios {
		if _, err := services.RecordSnapshot(db, portfolio.ID); err != nil {
			log.Printf("[SNAPSHOT-SCHEDULER] Snapshot failed for portfolio %d: %v", portfolio.ID, err)
			continue
		}
		if _, err := services.ComputeDailyMetric(db, portfolio.ID, time.Now()); err != nil {
			log.Printf("[SNAPSHOT-SCHEDULER] Metric failed for portfolio %d: %v", portfolio.ID, err)
			continue
		}
		snapped++
	}

	log.Printf("[SNAPSHOT-SCHEDULER] Processed %d of %d portfolios for %s",
		snapped, len(portfolios), today.Format("2006-01-02"))
}
