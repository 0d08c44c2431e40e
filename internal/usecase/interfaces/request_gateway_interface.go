package interfaces

import (
	"context"

	"puentes_admin/internal/domain/entities"
)

// IRequestGateway abstracts the backend /request resource.
//
// Update replaces the whole record (PUT /request/{id}); the backend offers
// no partial patch and no per-id read, so callers locate records through
// List.

type IRequestGateway interface {
	List(ctx context.Context) ([]entities.ChangeRequest, error)
	Create(ctx context.Context, r entities.ChangeRequest) (entities.ChangeRequest, error)
	Update(ctx context.Context, r entities.ChangeRequest) error
}
