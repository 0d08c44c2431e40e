package backend

import (
	"context"
	"fmt"

	"puentes_admin/internal/domain/entities"
	"puentes_admin/internal/usecase/interfaces"
)

// UserGateway implements IUserGateway over the /user resource.
type UserGateway struct {
	client *Client
}

var _ interfaces.IUserGateway = (*UserGateway)(nil)

func NewUserGateway(client *Client) *UserGateway {
	return &UserGateway{client: client}
}

func (g *UserGateway) List(ctx context.Context) ([]entities.User, error) {
	var users []entities.User
	if err := g.client.do(ctx, "GET", "/user", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (g *UserGateway) Create(ctx context.Context, u entities.User) error {
	return g.client.do(ctx, "POST", "/user/create", u, nil)
}

func (g *UserGateway) Update(ctx context.Context, u entities.User) error {
	return g.client.do(ctx, "PUT", fmt.Sprintf("/user/%d", u.ID), u, nil)
}

func (g *UserGateway) Delete(ctx context.Context, id int64) error {
	return g.client.do(ctx, "DELETE", fmt.Sprintf("/user/%d", id), nil, nil)
}
