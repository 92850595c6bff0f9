package progression

// Error kinds shared by the engine and the progress stores. The HTTP layer
// maps them onto transport codes; nothing here is retried except transaction
// conflicts, which the durable store resolves internally.

// NotFoundError covers unknown courses and module numbers.
type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

// LockedError means the module exists but the user has not unlocked it yet.
// This is an expected business outcome, not a failure.
type LockedError struct{ Message string }

func (e *LockedError) Error() string { return e.Message }

// ValidationError covers malformed submissions (answer count mismatch).
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

// UnavailableError wraps storage failures the store could not recover from.
type UnavailableError struct{ Err error }

func (e *UnavailableError) Error() string { return "progress store unavailable: " + e.Err.Error() }

func (e *UnavailableError) Unwrap() error { return e.Err }
