package model

import "time"

// Item is a stocked item as persisted. Category is derived from Name when
// the item is created and never changes afterwards.
type Item struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Description string     `json:"description,omitempty"`
	SellIn      int        `json:"sell_in"`
	Quality     int        `json:"quality"`
	ImageMime   string     `json:"image_mime,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}
