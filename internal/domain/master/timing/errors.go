package timing

import "errors"

var (
	ErrTimingNotFound   = errors.New("office position timing not found")
	ErrOfficeNotFound   = errors.New("office not found")
	ErrPositionNotFound = errors.New("position not found")
)
