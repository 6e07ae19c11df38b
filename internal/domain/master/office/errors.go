package office

import "errors"

var (
	ErrOfficeNotFound   = errors.New("office not found")
	ErrOfficeNameExists = errors.New("office with this name already exists")
)
