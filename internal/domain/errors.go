package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrDuplicateID   = errors.New("duplicate event id")
	ErrInvalidID     = errors.New("event id must be positive")
)
