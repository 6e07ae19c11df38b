package attendance

import "context"

type AttendanceService interface {
	// Upsert saves a single attendance record.
	Upsert(ctx context.Context, req UpsertAttendanceRequest) (AttendanceResponse, error)

	// BulkUpsert saves a batch atomically; one bad row fails the batch.
	BulkUpsert(ctx context.Context, req BulkUpsertAttendanceRequest) (BulkUpsertAttendanceResponse, error)

	List(ctx context.Context, query ListAttendanceQuery) (ListAttendanceResponse, error)

	// DeleteByMonth removes every record of the month along with the month's payroll snapshots.
	DeleteByMonth(ctx context.Context, req DeleteMonthRequest) (DeleteAttendanceResponse, error)

	// DeleteByEmployeeMonth removes one employee's month and that employee's snapshot.
	DeleteByEmployeeMonth(ctx context.Context, req DeleteEmployeeMonthRequest) (DeleteAttendanceResponse, error)
}
