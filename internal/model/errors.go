package model

import "errors"

var (
	ErrNotFound        = errors.New("game not found")
	ErrMalformedRecord = errors.New("stored game record is malformed")
	ErrInvalidWord     = errors.New("starting word must be exactly 5 letters")
	ErrInvalidScore    = errors.New("score must be 1-6 or X")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
)
