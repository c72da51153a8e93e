package database

import "errors"

var (
	// ErrNotFound is returned by update and delete when no row matched the ID.
	// It is an outcome rather than a failure: nothing was changed.
	ErrNotFound = errors.New("record not found")

	// ErrConnection marks failures that happened before the statement ran,
	// such as acquiring a connection or beginning a transaction.
	ErrConnection = errors.New("database connection failed")
)
