package assets

import "errors"

// Sentinel errors for style loading.
var (
	// ErrStyleNotFound indicates the requested style does not exist.
	ErrStyleNotFound = errors.New("style not found")

	// ErrInvalidStyleName indicates the name contains path separators,
	// dots or traversal sequences.
	ErrInvalidStyleName = errors.New("invalid style name")

	// ErrInvalidBasePath indicates the style directory is not a readable directory.
	ErrInvalidBasePath = errors.New("invalid style directory")

	// ErrStyleRead indicates an I/O error while reading a style file.
	ErrStyleRead = errors.New("failed to read style")

	// ErrPathTraversal indicates a style path resolving outside its directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
