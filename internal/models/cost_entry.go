package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CostEntry is one record in the append-only cost ledger.
//
// Entries are immutable after creation. There are no update or delete
// operations, and the write gatekeeper rejects entries dated before
// their acceptance time. Together this fixes the set of entries for any
// month that has fully elapsed, which is what makes the report cache
// sound.
type CostEntry struct {
	ID          uint            `json:"id"`
	CreatedAt   time.Time       `json:"createdAt"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	OwnerID     uint            `json:"ownerId"`
	Owner       User            `json:"-"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	OccurredAt  time.Time       `json:"occurredAt"`
}

// BeforeSave trims the description and normalizes the timestamp to UTC.
func (e *CostEntry) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.OccurredAt = e.OccurredAt.In(time.UTC)

	return nil
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (e *CostEntry) AfterFind(_ *gorm.DB) error {
	e.CreatedAt = e.CreatedAt.In(time.UTC)
	e.OccurredAt = e.OccurredAt.In(time.UTC)

	return nil
}
