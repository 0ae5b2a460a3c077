package models

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/costtrack/backend/internal/types"
	"gorm.io/gorm"
)

// MonthlyReport is a cached report for a closed month.
//
// It is created lazily, at most once per (owner, month), and never
// updated or invalidated: the entries of a closed month cannot change,
// so the cached value stays correct forever.
type MonthlyReport struct {
	OwnerID    uint               `json:"ownerId" gorm:"primaryKey"`
	Month      types.Month        `json:"month" gorm:"primaryKey"`
	Entries    CategorizedEntries `json:"entries" gorm:"serializer:json"`
	ComputedAt time.Time          `json:"computedAt"`
}

// BeforeCreate records the caching time.
func (r *MonthlyReport) BeforeCreate(_ *gorm.DB) error {
	if r.ComputedAt.IsZero() {
		r.ComputedAt = time.Now().In(time.UTC)
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (r *MonthlyReport) AfterFind(_ *gorm.DB) error {
	r.ComputedAt = r.ComputedAt.In(time.UTC)

	return nil
}

// ReportItem is a single cost entry as it appears in a report bucket.
//
// The amount is an ordinary number here. Conversion from the exact
// decimal representation happens only at this boundary.
type ReportItem struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	DayOfMonth  int     `json:"dayOfMonth"`
}

// CategorizedEntries maps every category to the report items in its
// bucket. All categories are always present, even with no items.
//
// The wire format is a fixed-length array of single-key objects in the
// canonical category order:
//
//	[{"food": [...]}, {"health": [...]}, ...]
type CategorizedEntries map[Category][]ReportItem

// NewCategorizedEntries returns categorized entries with an empty
// bucket for every category.
func NewCategorizedEntries() CategorizedEntries {
	entries := make(CategorizedEntries, len(Categories))
	for _, category := range Categories {
		entries[category] = []ReportItem{}
	}

	return entries
}

// MarshalJSON implements the json.Marshaler interface.
func (e CategorizedEntries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')

	for i, category := range Categories {
		if i > 0 {
			buf.WriteByte(',')
		}

		items := e[category]
		if items == nil {
			items = []ReportItem{}
		}

		bucket, err := json.Marshal(map[Category][]ReportItem{category: items})
		if err != nil {
			return nil, err
		}
		buf.Write(bucket)
	}

	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (e *CategorizedEntries) UnmarshalJSON(data []byte) error {
	var buckets []map[Category][]ReportItem
	if err := json.Unmarshal(data, &buckets); err != nil {
		return err
	}

	entries := NewCategorizedEntries()
	for _, bucket := range buckets {
		for category, items := range bucket {
			entries[category] = items
		}
	}

	*e = entries
	return nil
}
