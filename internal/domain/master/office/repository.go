package office

import "context"

type OfficeRepository interface {
	Create(ctx context.Context, office Office) (Office, error)
	GetByID(ctx context.Context, id string) (Office, error)
	List(ctx context.Context) ([]Office, error)
	Update(ctx context.Context, req UpdateOfficeRequest) error
	Delete(ctx context.Context, id string) error
}
