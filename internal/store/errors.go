package store

import (
	"errors"
	"fmt"
)

// Error taxonomy of the repository. Every error returned by a
// [UserRepository] method matches exactly one of these categories under
// [errors.Is] (hashing failures match both ErrDatabase and ErrPassword).
var (
	// ErrDatabase covers transport failures, non-success remote statuses, and
	// failed transaction-control RPCs.
	ErrDatabase = errors.New("database error")

	// ErrUserNotFound is returned when a targeted read or the pre-mutation
	// existence check finds no matching user.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidData is returned for input that fails local validation and
	// for remote payloads that do not match the expected schema.
	ErrInvalidData = errors.New("invalid data")

	// ErrPassword is returned when the password cannot be hashed.
	ErrPassword = errors.New("password hashing error")
)

// Refinements of the taxonomy above.
var (
	// ErrMalformedResponse is returned when a remote body cannot be decoded.
	ErrMalformedResponse = fmt.Errorf("%w: malformed remote response", ErrInvalidData)

	// ErrTransactionBegin is returned when begin_transaction fails or does
	// not yield a transaction id.
	ErrTransactionBegin = fmt.Errorf("%w: failed to begin transaction", ErrDatabase)

	// ErrTransactionCommit is returned when commit_transaction fails.
	ErrTransactionCommit = fmt.Errorf("%w: failed to commit transaction", ErrDatabase)

	// ErrCommitIndeterminate is returned when the mutation was applied
	// remotely but commit_transaction kept failing after all retries. The
	// remote state of the transaction is unknown.
	ErrCommitIndeterminate = fmt.Errorf("%w: outcome indeterminate", ErrTransactionCommit)
)
