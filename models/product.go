package models

import (
	"encoding/json"
	"strings"
	"time"
)

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	Category    Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Stock       int       `gorm:"default:0" json:"stock"`
	Specs       string    `json:"specs"`
	CreatedAt   time.Time `json:"created_at"`
}

// FormatSpecs normalizes a free-text comma-separated specs string into the
// stored form: a JSON-encoded list of trimmed, non-empty entries. Returns ""
// when nothing remains after trimming.
func FormatSpecs(raw string) string {
	var parts []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	out, err := json.Marshal(parts)
	if err != nil {
		return ""
	}
	return string(out)
}

// ParseSpecs reads a stored specs value back into an ordered list. Values that
// are not valid JSON fall back to comma splitting, so rows written before the
// JSON form was introduced still parse.
func ParseSpecs(stored string) []string {
	if stored == "" {
		return nil
	}
	var specs []string
	if err := json.Unmarshal([]byte(stored), &specs); err == nil {
		return specs
	}
	for _, p := range strings.Split(stored, ",") {
		if p = strings.TrimSpace(p); p != "" {
			specs = append(specs, p)
		}
	}
	return specs
}
