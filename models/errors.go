package models

import "errors"

// User facing rejections. These propagate to the caller unchanged,
// everything else is internal and only logged.
var (
	ErrDuplicateUsername = errors.New("username already in use")
	ErrUnknownUser       = errors.New("no such user")
	ErrInvalidCredential = errors.New("wrong password")
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrPostNotFound      = errors.New("post not found")
)
