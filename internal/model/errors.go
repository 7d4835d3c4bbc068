package model

import "errors"

var (
	// ErrNotFound is returned when a task or person does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a task or person already exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotValid is returned when input fails validation.
	ErrNotValid = errors.New("not valid")
)
