package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmptyBatch         = errors.New("no attendance records supplied")
	ErrBatchTooLarge      = errors.New("too many attendance records in one batch")
)
