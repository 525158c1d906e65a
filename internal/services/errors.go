package services

import "errors"

// Sentinel errors handlers map onto HTTP status codes.
var (
	// ErrNotFound means a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken means the username is already registered.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrCategoryExists means a category with that name already exists.
	ErrCategoryExists = errors.New("category already exists")

	// ErrCategoryNotFound means an item referenced a missing category.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidCredentials is returned for both unknown usernames and wrong
	// passwords so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
