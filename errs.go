package jso

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrOutOfRange      = errors.New("index out of range")
	ErrNotAnArray      = errors.New("not an array")
	ErrNotCallable     = errors.New("not callable")
	ErrBadPath         = errors.New("bad path")
)
