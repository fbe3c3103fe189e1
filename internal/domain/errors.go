package domain

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("operation not permitted")
	ErrUpstream     = errors.New("upstream service failure")
)
