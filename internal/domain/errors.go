package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicate    = errors.New("duplicate resource")
	ErrConflict     = errors.New("conflict with current state")
	ErrLogoTooLarge = errors.New("logo exceeds the maximum allowed size")
	ErrLogoBadType  = errors.New("logo file type not allowed")
)
