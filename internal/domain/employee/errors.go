package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeIDExists   = errors.New("employee ID already exists")
	ErrEmailExists        = errors.New("email already registered")
	ErrOfficeNotFound     = errors.New("office not found")
	ErrPositionNotFound   = errors.New("position not found")
	ErrInvalidEmployeeID  = errors.New("invalid employee ID format")
	ErrNegativeSalary     = errors.New("monthly salary must not be negative")
)
