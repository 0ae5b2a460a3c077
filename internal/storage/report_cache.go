package storage

import (
	"github.com/costtrack/backend/internal/models"
	"github.com/costtrack/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReportCache stores precomputed reports for closed months, keyed by
// owner and month.
type ReportCache struct {
	db *gorm.DB
}

func NewReportCache(db *gorm.DB) *ReportCache {
	return &ReportCache{db: db}
}

// Get returns the cached report for the owner and month. A cache miss
// is an error wrapping models.ErrNotFound.
func (c *ReportCache) Get(ownerID uint, month types.Month) (models.MonthlyReport, error) {
	var report models.MonthlyReport

	err := c.db.
		First(&report, "owner_id = ? AND month = ?", ownerID, month).Error
	if err != nil {
		return models.MonthlyReport{}, err
	}

	return report, nil
}

// PutIfAbsent inserts the report unless one is already cached for its
// owner and month. When a concurrent computation got there first, the
// existing row stands and PutIfAbsent reports success: entries of a
// closed month are immutable, so both computations agree on content.
func (c *ReportCache) PutIfAbsent(report *models.MonthlyReport) error {
	return c.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(report).Error
}
