package pettycash

import "errors"

var (
	ErrRequestNotFound  = errors.New("petty cash request not found")
	ErrRequestProcessed = errors.New("petty cash request has already been processed")
)
