package utils

import "errors"

var (
	ErrInvalidMetric = errors.New("invalid insight metric")
	ErrInvalidView   = errors.New("invalid view")
	ErrDatabaseError = errors.New("database error")
)
