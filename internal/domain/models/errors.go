package models

import "errors"

// Error taxonomy shared by the registry, the derivation engine and the HTTP layer.
var (
	ErrNotFound            = errors.New("not found")
	ErrDivisionUndefined   = errors.New("division undefined: zero denominator")
	ErrInsufficientHistory = errors.New("insufficient history")
	ErrOutOfRange          = errors.New("out of range")
	ErrNoData              = errors.New("no released data")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidArgument     = errors.New("invalid argument")
)
