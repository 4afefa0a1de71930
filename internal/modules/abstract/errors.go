package abstract

import "errors"

var (
	ErrNotFound  = errors.New("abstract not found")
	ErrNotOwner  = errors.New("abstract does not belong to user")
	ErrLocked    = errors.New("abstract can no longer be edited")
	ErrNoAuthors = errors.New("at least one author is required")
	ErrBadStatus = errors.New("invalid abstract status")
)
