package service

import "errors"

var (
	ErrUnknownField   = errors.New("unknown field")
	ErrUnknownProduct = errors.New("unknown product")
)
