package blooddonation

import (
	"log/slog"
	"time"

	"gorm.io/gorm"
)

// StartRetentionSweep purges blood requests older than the retention window
// on a fixed interval. The original system built its cutoff without
// subtracting the grace period, deleting same-day requests; here the cutoff
// is now minus retentionDays. A failed sweep is logged and the next run is
// unaffected.
func StartRetentionSweep(db *gorm.DB, interval time.Duration, retentionDays int, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deleted, err := sweepExpiredRequests(db, retentionDays)
				if err != nil {
					slog.Error("blood request retention sweep failed", "error", err)
				} else if deleted > 0 {
					slog.Info("blood request retention sweep completed", "deleted", deleted)
				}
			case <-done:
				return
			}
		}
	}()
}

func sweepExpiredRequests(db *gorm.DB, retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := db.Where("created_at < ?", cutoff).Delete(&BloodRequest{})
	return result.RowsAffected, result.Error
}
