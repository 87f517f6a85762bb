package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrEmailTaken   = errors.New("email address already exists")
	ErrInvalidEnum  = errors.New("invalid value")
)
