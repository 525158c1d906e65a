package models

import "time"

// Category groups items under a unique name.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

// CategoryWithCount is a category together with the number of items in it.
// Categories without items report a count of zero.
type CategoryWithCount struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ItemCount int64  `json:"item_count"`
}
