// Package common defines shared sentinel errors and small utilities used
// across cybermem components. Callers should use errors.Is to match the
// sentinel values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Auth errors.
	ErrorUnauthorized       = errors.New("invalid username or password")
	ErrorUserExists         = errors.New("username already exists")
	ErrorInvalidLoginFormat = errors.New("username cannot be empty")

	// Topic errors.
	ErrorTopicExists = errors.New("topic already exists")
	ErrorEmptyName   = errors.New("topic name cannot be empty")
	ErrorImageTopic  = errors.New("topic is image-based")
)
