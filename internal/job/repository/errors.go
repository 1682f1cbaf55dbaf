package repository

import "errors"

var (
	ErrFailedToList = errors.New("failed to list jobs")
	ErrFailedToGet  = errors.New("failed to get jobs")
)
