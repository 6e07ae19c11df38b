package leave

import "errors"

var (
	ErrApprovedLeaveNotFound = errors.New("approved leave not found")
	ErrEmployeeNotFound      = errors.New("employee not found")
)
