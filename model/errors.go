package model

import "errors"

var (
	// ErrNotFound represents the error for the cases when some entity is not found.
	ErrNotFound = errors.New("not found")
	// ErrBadInput represents the error for the cases when the user input is invalid.
	ErrBadInput = errors.New("bad input")
	// ErrChainUnavailable represents the error for the cases when the BSC node cannot be reached or a call reverts.
	ErrChainUnavailable = errors.New("chain unavailable")
	// ErrExplorerUnavailable represents the error for the cases when the explorer API is not usable (no key, rate limit).
	ErrExplorerUnavailable = errors.New("explorer unavailable")
)
