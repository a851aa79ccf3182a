package service

import "errors"

// Sentinel errors carrying the exact messages clients see. Handlers map
// them to status codes; anything else is an internal failure and is
// surfaced as an opaque 500.
var (
	ErrMissingEmail    = errors.New("Missing email")
	ErrMissingPassword = errors.New("Missing password")
	ErrAlreadyExist    = errors.New("Already exist")

	ErrMissingName     = errors.New("Missing name")
	ErrMissingType     = errors.New("Missing type")
	ErrMissingData     = errors.New("Missing data")
	ErrParentNotFound  = errors.New("Parent not found")
	ErrParentNotFolder = errors.New("Parent is not a folder")

	// Deliberately covers both "does not exist" and "not owned" so the
	// API never reveals the existence of someone else's file.
	ErrNotFound = errors.New("Not found")

	ErrFolderNoContent = errors.New("A folder doesn't have content")
)
