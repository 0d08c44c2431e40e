package interfaces

import (
	"context"

	"puentes_admin/internal/domain/entities"
)

// IAuthGateway abstracts the backend /login resource. Bad credentials come
// back as a 200 with success=false, not as an HTTP error.

type IAuthGateway interface {
	Login(ctx context.Context, email, password string) (entities.LoginResult, error)
}
