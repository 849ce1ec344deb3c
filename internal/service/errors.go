package service

import "errors"

var (
	// ErrInvalidStatus rejects a status outside the entity's enumeration.
	ErrInvalidStatus = errors.New("invalid status value")

	// ErrNotFound means the record is in neither the snapshot nor the store.
	ErrNotFound = errors.New("record not found")

	// ErrNotCompleted rejects verifying a payment that is not completed.
	ErrNotCompleted = errors.New("payment can only be verified while completed")
)
