// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassification is the driver-independent meaning of a failed
// statement, as far as the repositories care about it.
type ErrorClassification int

const (
	// Other covers every error that is not a constraint violation the
	// repositories translate into a domain error.
	Other ErrorClassification = iota

	// UniqueViolation means a UNIQUE or PRIMARY KEY constraint rejected the row.
	UniqueViolation

	// ForeignKeyViolation means a FOREIGN KEY constraint rejected the row.
	ForeignKeyViolation
)

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
