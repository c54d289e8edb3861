package hub

import "errors"

var (
	// ErrNotFound: an id reference resolved to nothing. Dangling references
	// in rules are not errors (they evaluate to false / no-op); this is for
	// direct lookups and deletes.
	ErrNotFound = errors.New("not found")

	// ErrValidation: malformed device or rule payload. Rejected before
	// persisting, never partially saved.
	ErrValidation = errors.New("validation failed")

	// ErrCredentialRequired: a privileged commit was attempted without a
	// credential or session token.
	ErrCredentialRequired = errors.New("credential required")

	// ErrUnauthorized: the privileged credential or token was rejected.
	// Surfaced inline, no retry backoff or lockout.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTransport: the transport call failed. Surfaced, operation
	// abandoned, no automatic retry.
	ErrTransport = errors.New("transport failure")

	// ErrConflict: the config document changed underneath a
	// read-modify-write cycle (revision mismatch).
	ErrConflict = errors.New("config revision conflict")

	// ErrMutationPending: a privileged mutation is already in flight; the
	// coordinator never silently replaces a pending action.
	ErrMutationPending = errors.New("another privileged mutation is pending")
)
