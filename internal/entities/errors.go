package entities

import "errors"

// Domain errors surfaced by services and repositories. Controllers map these
// to HTTP status codes; anything not in this list is treated as an internal
// store failure.
var (
	ErrEmailExists        = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidID          = errors.New("invalid identifier format")
	ErrTaskNotFound       = errors.New("task not found")
	ErrTeamMemberNotFound = errors.New("team member not found")
)
