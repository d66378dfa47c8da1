package model

import "time"

// DayLog records how one item changed on one simulated day.
type DayLog struct {
	Day           int       `json:"day"`
	ItemID        int64     `json:"item_id"`
	SellInBefore  int       `json:"sell_in_before"`
	QualityBefore int       `json:"quality_before"`
	SellInAfter   int       `json:"sell_in_after"`
	QualityAfter  int       `json:"quality_after"`
	AdvancedAt    time.Time `json:"advanced_at"`
	AdvancedBy    *int64    `json:"advanced_by,omitempty"`

	// Joined field (not always populated).
	ItemName string `json:"item_name,omitempty"`
}

// DayReport summarises a call that advanced one or more days.
type DayReport struct {
	FromDay int    `json:"from_day"`
	ToDay   int    `json:"to_day"`
	Items   []Item `json:"items"`
}
