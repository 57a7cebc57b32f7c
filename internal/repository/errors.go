package repository

import "errors"

// Sentinel errors the service layer matches on. Raw gorm errors never
// escape a repository.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already exists")
)
