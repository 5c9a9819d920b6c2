package session

import "errors"

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionClosed    = errors.New("session is closed")
	ErrInvalidIndex     = errors.New("item index out of range")
	ErrInvalidQuantity  = errors.New("quantity must be between 1 and 10")
	ErrNothingToConfirm = errors.New("no selection to confirm")
)
