// Package badges evaluates achievement badges over aggregate learner stats.
package badges

import (
	"fmt"
	"time"
)

// Category identifies which aggregate metric a badge tracks.
type Category string

const (
	CategoryStreak     Category = "streak"
	CategoryLevel      Category = "level"
	CategoryXP         Category = "xp"
	CategoryCompletion Category = "completion"
	CategoryMastery    Category = "mastery"
)

// AllCategories returns all badge categories in display order.
func AllCategories() []Category {
	return []Category{CategoryStreak, CategoryLevel, CategoryXP, CategoryCompletion, CategoryMastery}
}

// ParseCategory converts a string to a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryStreak, CategoryLevel, CategoryXP, CategoryCompletion, CategoryMastery:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown badge category %q", s)
	}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryStreak:
		return "Streak"
	case CategoryLevel:
		return "Level"
	case CategoryXP:
		return "XP"
	case CategoryCompletion:
		return "Completion"
	case CategoryMastery:
		return "Mastery"
	default:
		return string(c)
	}
}

// Definition is a static badge from the catalog.
type Definition struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Threshold   float64  `json:"threshold"`
	Category    Category `json:"category"`

	// Metric narrows the counter within a category. Empty means the
	// category default (e.g. total completions for CategoryCompletion).
	Metric string `json:"metric,omitempty"`
}

// Progress is the learner's standing toward one badge. Once EarnedAt
// is set it is never cleared; CurrentValue keeps tracking the metric
// for display.
type Progress struct {
	BadgeID      string     `json:"badge_id"`
	CurrentValue float64    `json:"current_value"`
	EarnedAt     *time.Time `json:"earned_at,omitempty"`
}

// Earned reports whether the badge has been unlocked.
func (p *Progress) Earned() bool {
	return p.EarnedAt != nil
}

// Ratio returns progress toward the threshold, capped at 1.0.
func (p *Progress) Ratio(threshold float64) float64 {
	if threshold <= 0 {
		return 1.0
	}
	ratio := p.CurrentValue / threshold
	if ratio > 1.0 {
		return 1.0
	}
	return ratio
}
