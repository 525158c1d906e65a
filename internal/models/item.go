package models

import "time"

// Item is a listing posted by a user into a category.
// ImageFile is the server-generated storage key under the upload directory;
// ImageName is the sanitized filename the client submitted, kept for display.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageFile   string    `json:"image_file"`
	ImageName   string    `json:"image_name"`
	CategoryID  int64     `json:"category_id"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"-"`
}

// CategoryRef is the category summary embedded in item listings.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserRef is the user summary embedded in item listings.
type UserRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// ItemDetail is an item with its category and owner eagerly resolved.
type ItemDetail struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ImageFile   string      `json:"image_file"`
	ImageName   string      `json:"image_name"`
	Category    CategoryRef `json:"category"`
	User        UserRef     `json:"user"`
}
