package models

import "errors"

// Error constants for registration and ficha operations
var (
	ErrAlreadyRegistered = errors.New("correo or curp already registered")
	ErrAspiranteNotFound = errors.New("aspirante not found")
)
