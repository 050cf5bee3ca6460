package positions

import "errors"

var (
	ErrNotFound     = errors.New("position not found")
	ErrInvalidInput = errors.New("invalid position input")
)
