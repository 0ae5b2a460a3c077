// Package report implements the monthly report engine.
//
// Reports group a user's cost entries of one calendar month by
// category. Once a month is closed, its report is computed at most once
// and memoized in the report cache; the no-backdating rule of the
// ledger gatekeeper guarantees that the cached value never goes stale.
package report

import (
	"errors"
	"time"

	"github.com/costtrack/backend/internal/models"
	"github.com/costtrack/backend/internal/types"
	"github.com/rs/zerolog/log"
)

// Year boundaries accepted for report requests.
const (
	MinYear = 1970
	MaxYear = 3000
)

var (
	ErrYearOutOfRange  = errors.New("the year must be between 1970 and 3000")
	ErrMonthOutOfRange = errors.New("the month must be between 1 and 12")
)

// Ledger provides the month scan over the cost ledger.
type Ledger interface {
	EntriesInMonth(ownerID uint, month types.Month) ([]models.CostEntry, error)
}

// Cache provides lookup and insert-or-ignore on precomputed reports.
// A Get miss is an error wrapping models.ErrNotFound.
type Cache interface {
	Get(ownerID uint, month types.Month) (models.MonthlyReport, error)
	PutIfAbsent(report *models.MonthlyReport) error
}

// Report is a monthly, per-category view over a user's cost entries.
type Report struct {
	OwnerID            uint                      `json:"ownerId"`
	Year               int                       `json:"year"`
	Month              int                       `json:"month"`
	CategorizedEntries models.CategorizedEntries `json:"categorizedEntries"`
}

// Engine computes monthly reports, consulting and populating the
// report cache for closed months.
//
// The engine holds no mutable state of its own. All shared state lives
// in the two stores, and the primary key of the report cache is the
// only mechanism needed to resolve concurrent first computations.
type Engine struct {
	ledger Ledger
	cache  Cache
}

func NewEngine(ledger Ledger, cache Cache) *Engine {
	return &Engine{
		ledger: ledger,
		cache:  cache,
	}
}

// MonthlyReport returns the report for the owner, year and month.
//
// For closed months the cached report is returned when present;
// otherwise the ledger is scanned and, for closed months, the result is
// cached best-effort. A failing cache write never fails the read.
func (e *Engine) MonthlyReport(ownerID uint, year, month int) (Report, error) {
	if year < MinYear || year > MaxYear {
		return Report{}, ErrYearOutOfRange
	}

	if month < 1 || month > 12 {
		return Report{}, ErrMonthOutOfRange
	}

	m := types.NewMonth(year, time.Month(month))

	// Closedness is derived from the request time on every call. It
	// can only ever flip from open to closed, never back.
	closed := m.Closed(time.Now())

	if closed {
		cached, err := e.cache.Get(ownerID, m)
		if err == nil {
			return Report{
				OwnerID:            ownerID,
				Year:               year,
				Month:              month,
				CategorizedEntries: cached.Entries,
			}, nil
		}

		if !errors.Is(err, models.ErrNotFound) {
			return Report{}, err
		}
	}

	entries, err := e.ledger.EntriesInMonth(ownerID, m)
	if err != nil {
		return Report{}, err
	}

	categorized := models.NewCategorizedEntries()
	for _, entry := range entries {
		categorized[entry.Category] = append(categorized[entry.Category], models.ReportItem{
			// The exact decimal becomes an ordinary number only here,
			// at the output boundary.
			Amount:      entry.Amount.InexactFloat64(),
			Description: entry.Description,
			DayOfMonth:  entry.OccurredAt.Day(),
		})
	}

	if closed {
		err = e.cache.PutIfAbsent(&models.MonthlyReport{
			OwnerID: ownerID,
			Month:   m,
			Entries: categorized,
		})
		if err != nil {
			// A concurrent computation may have won the insert, or the
			// store may be unavailable. Either way the freshly computed
			// result is returned.
			log.Debug().Err(err).Uint("ownerId", ownerID).Str("month", m.String()).Msg("report cache population failed")
		}
	}

	return Report{
		OwnerID:            ownerID,
		Year:               year,
		Month:              month,
		CategorizedEntries: categorized,
	}, nil
}
