// Package common defines shared sentinel errors and small helpers used across
// habitkeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrorMalformedStoredData = errors.New("malformed stored data")
	// ErrorDamagedRecord marks a single users-table record that did not
	// match the expected shape; the rest of the table is intact.
	ErrorDamagedRecord = errors.New("damaged record")

	// Account errors.
	ErrorValidation         = errors.New("validation error")
	ErrorAlreadyExists      = errors.New("already exists")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// ErrorUnknownDriver is returned when the configured store backend is not supported.
	ErrorUnknownDriver = errors.New("unknown store driver")
)
