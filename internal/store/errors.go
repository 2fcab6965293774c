// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user insert or update collides
	// with another account whose email differs at most in letter case.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the given ID or email.
	ErrUserNotFound = errors.New("no user was found")

	// ErrCredentialNotFound is returned when a user has no stored password hash.
	ErrCredentialNotFound = errors.New("no credential was found")

	// ErrSessionNotFound is returned when no session row matches the token's session ID.
	ErrSessionNotFound = errors.New("no session was found")

	// ErrRecordNotFound is returned when a list record (post, ticket, reminder,
	// food item, wishlist item) does not exist.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrUnknownDay is returned for a meal plan day outside Montag..Freitag
	// and for a duty schedule day that is not a weekday name.
	ErrUnknownDay = errors.New("unknown day")

	// ErrUnknownRecordKind is returned for a record kind without a backing table.
	ErrUnknownRecordKind = errors.New("unknown record kind")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
