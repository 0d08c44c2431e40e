package backend

import (
	"context"

	"puentes_admin/internal/domain/entities"
	"puentes_admin/internal/usecase/interfaces"
)

// AuthGateway implements IAuthGateway over the /login resource.
type AuthGateway struct {
	client *Client
}

var _ interfaces.IAuthGateway = (*AuthGateway)(nil)

func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

func (g *AuthGateway) Login(ctx context.Context, email, password string) (entities.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var res entities.LoginResult
	if err := g.client.do(ctx, "POST", "/login", body, &res); err != nil {
		return entities.LoginResult{}, err
	}
	return res, nil
}
