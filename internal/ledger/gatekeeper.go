// Package ledger implements the write gatekeeper for the cost ledger.
package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/costtrack/backend/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrDescriptionMissing = errors.New("the description must not be empty")
	ErrCategoryInvalid    = errors.New("the category must be one of: food, health, housing, sports, education")
	ErrBackdated          = errors.New("the cost must not be dated before the time of the request")
)

// UserDirectory reports whether an owner exists.
type UserDirectory interface {
	Exists(id uint) (bool, error)
}

// Appender appends entries to the cost ledger.
type Appender interface {
	Append(entry *models.CostEntry) error
}

// EventSink receives fire-and-forget events. Implementations must
// never block.
type EventSink interface {
	Emit(level, message string)
}

// Admission is a request to add one entry to the cost ledger.
type Admission struct {
	Description string
	Category    models.Category
	OwnerID     uint
	Amount      decimal.Decimal
	OccurredAt  *time.Time
}

// Gatekeeper validates and admits new entries into the cost ledger.
//
// Its no-backdating rule is what keeps the report cache sound: once a
// month has fully elapsed, no entry dated within it can be created
// anymore, so the entry set of a closed month is fixed forever.
type Gatekeeper struct {
	users  UserDirectory
	ledger Appender
	events EventSink
}

func NewGatekeeper(users UserDirectory, ledger Appender, events EventSink) *Gatekeeper {
	return &Gatekeeper{
		users:  users,
		ledger: ledger,
		events: events,
	}
}

// Admit validates the admission and appends it to the ledger.
//
// All checks run before the insert, so a rejected admission leaves no
// partial state. The report cache is never touched here.
func (g *Gatekeeper) Admit(admission Admission) (models.CostEntry, error) {
	now := time.Now().In(time.UTC)

	admission.Description = strings.TrimSpace(admission.Description)
	if admission.Description == "" {
		return models.CostEntry{}, ErrDescriptionMissing
	}

	if !admission.Category.Valid() {
		return models.CostEntry{}, ErrCategoryInvalid
	}

	occurredAt := now
	if admission.OccurredAt != nil {
		occurredAt = admission.OccurredAt.In(time.UTC)
		if occurredAt.Before(now) {
			return models.CostEntry{}, ErrBackdated
		}
	}

	exists, err := g.users.Exists(admission.OwnerID)
	if err != nil {
		return models.CostEntry{}, err
	}
	if !exists {
		return models.CostEntry{}, fmt.Errorf("%w user with id %d", models.ErrNotFound, admission.OwnerID)
	}

	entry := models.CostEntry{
		Description: admission.Description,
		Category:    admission.Category,
		OwnerID:     admission.OwnerID,
		Amount:      admission.Amount,
		OccurredAt:  occurredAt,
	}

	err = g.ledger.Append(&entry)
	if err != nil {
		return models.CostEntry{}, err
	}

	g.events.Emit("info", fmt.Sprintf("cost entry %d admitted for user %d", entry.ID, entry.OwnerID))

	return entry, nil
}
