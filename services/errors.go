package services

import "errors"

// Error kinds returned by the moderation and ledger operations. Controllers
// translate these into HTTP status codes; the services never write responses.
var (
	ErrNotFound               = errors.New("resource not found")
	ErrInvalidState           = errors.New("operation not allowed in the current status")
	ErrInvalidAmount          = errors.New("amount must be a positive currency value")
	ErrAmountExceedsRemaining = errors.New("donation amount exceeds remaining amount needed")
	ErrConflict               = errors.New("conflicts with an existing record")
	ErrUnauthorized           = errors.New("not permitted for this account")
)
