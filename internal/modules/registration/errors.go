package registration

import "errors"

var (
	ErrNotFound         = errors.New("registration not found")
	ErrNotOwner         = errors.New("registration does not belong to user")
	ErrEventNotFound    = errors.New("event not found")
	ErrEventInactive    = errors.New("event is not open for registration")
	ErrCategoryNotFound = errors.New("registration category not found")
	ErrCategoryMismatch = errors.New("category does not belong to the event")
	ErrPaidLocked       = errors.New("paid registration can no longer be edited")
)
