package timing

import "context"

type OfficePositionRepository interface {
	Upsert(ctx context.Context, op OfficePosition) (OfficePosition, error)
	Get(ctx context.Context, officeID, positionID string) (OfficePosition, error)
	List(ctx context.Context, officeID *string) ([]OfficePosition, error)
	Delete(ctx context.Context, officeID, positionID string) error
}
