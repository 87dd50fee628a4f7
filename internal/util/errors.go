package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTopicNotFound      = errors.New("topic not found")
	ErrGenerationFailed   = errors.New("failed to generate content")
)
