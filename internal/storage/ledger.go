// Package storage provides the gorm-backed stores for the cost tracker.
package storage

import (
	"github.com/costtrack/backend/internal/models"
	"github.com/costtrack/backend/internal/types"
	"gorm.io/gorm"
)

// Ledger is the append-only store for cost entries.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Append inserts a new cost entry. Entries are never updated or
// deleted afterwards.
func (l *Ledger) Append(entry *models.CostEntry) error {
	return l.db.Create(entry).Error
}

// EntriesInMonth returns the owner's entries with an occurrence time in
// the half-open interval [month start, next month start).
//
// The rows are not re-sorted: sqlite returns them in rowid order, which
// is the order they were appended in.
func (l *Ledger) EntriesInMonth(ownerID uint, month types.Month) ([]models.CostEntry, error) {
	var entries []models.CostEntry

	err := l.db.
		Where("owner_id = ? AND occurred_at >= ? AND occurred_at < ?", ownerID, month.Start(), month.End()).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}
