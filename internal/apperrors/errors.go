package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrAlreadyOpenShift indicates that a branch already has an open cash shift.
// This is an expected, user-facing condition, not an internal failure.
var ErrAlreadyOpenShift = errors.New("a till is already open for this branch")

// ErrNoOpenShift indicates that no open cash shift exists for the branch.
var ErrNoOpenShift = errors.New("no open till for this branch")

// ErrShiftNotOpen indicates an operation that requires an open shift was
// attempted against a shift that is already closed.
var ErrShiftNotOpen = errors.New("shift is not open")

// ErrInvalidAmount indicates a non-positive or otherwise unusable money amount.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrMissingDescription indicates that an expense was submitted without a
// usable human-readable reason.
var ErrMissingDescription = errors.New("expense description is required")

// ErrInvalidTransition indicates an order status change that the order state
// machine does not allow.
var ErrInvalidTransition = errors.New("invalid order status transition")

// ErrPermissionDenied indicates a write rejected by store-level access control.
var ErrPermissionDenied = errors.New("permission denied")

// ErrStoreUnavailable indicates a transient failure talking to the store.
var ErrStoreUnavailable = errors.New("store unavailable")
