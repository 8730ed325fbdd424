package service

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrOrderFailed      = errors.New("catalog order failed")
	ErrItemLookupFailed = errors.New("request item lookup failed")
)
