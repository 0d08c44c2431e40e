package interfaces

import (
	"context"

	"puentes_admin/internal/domain/entities"
)

// IUserGateway abstracts the backend /user resource.
//
// The remote store is the source of truth; this service never caches user
// records between requests.

type IUserGateway interface {
	List(ctx context.Context) ([]entities.User, error)
	Create(ctx context.Context, u entities.User) error
	Update(ctx context.Context, u entities.User) error
	Delete(ctx context.Context, id int64) error
}
