package model

import "errors"

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound = errors.New("game not found")
	ErrGameDecided  = errors.New("game already has a winner")
	ErrNoLegalMove  = errors.New("no legal move: board is full")

	// Move errors
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrCellEmpty    = errors.New("cell is empty")
	ErrOutOfRange   = errors.New("cell index out of range")

	// Input errors
	ErrBadEncoding   = errors.New("invalid board encoding")
	ErrInvalidPlayer = errors.New("invalid player")
)
