package usecase

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrTeamNotFound      = errors.New("team not found")
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrInsufficientData  = errors.New("insufficient data")
	ErrDataIntegrity     = errors.New("data integrity failure")
)
