// Package content maps route parameters to files in the pre-rendered content
// tree. The tree is produced by an external generation process and consumed
// here strictly read-only.
package content

import "errors"

// Content errors returned by System implementations.
var (
	// ErrNotFound indicates the requested document or asset does not exist.
	ErrNotFound = errors.New("content: not found")

	// ErrInvalidPath indicates the resolved path is malformed or escapes
	// its configured root directory.
	ErrInvalidPath = errors.New("content: invalid path")

	// ErrTooLarge indicates the document exceeds the configured maximum size.
	ErrTooLarge = errors.New("content: document too large")
)
