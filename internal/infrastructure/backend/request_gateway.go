package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"puentes_admin/internal/domain/entities"
	"puentes_admin/internal/usecase/interfaces"
)

// RequestGateway implements IRequestGateway over the /request resource.
type RequestGateway struct {
	client *Client
}

var _ interfaces.IRequestGateway = (*RequestGateway)(nil)

func NewRequestGateway(client *Client) *RequestGateway {
	return &RequestGateway{client: client}
}

func (g *RequestGateway) List(ctx context.Context) ([]entities.ChangeRequest, error) {
	var rs []entities.ChangeRequest
	if err := g.client.do(ctx, "GET", "/request", nil, &rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// Create persists a new change request. The backend assigns the id; when the
// response echoes the stored record it is returned, otherwise the submitted
// record comes back as-is.
func (g *RequestGateway) Create(ctx context.Context, r entities.ChangeRequest) (entities.ChangeRequest, error) {
	var raw json.RawMessage
	if err := g.client.do(ctx, "POST", "/request/create", r, &raw); err != nil {
		return entities.ChangeRequest{}, err
	}

	if len(raw) > 0 {
		var created entities.ChangeRequest
		if err := json.Unmarshal(raw, &created); err == nil && created.ID != 0 {
			return created, nil
		}
	}
	return r, nil
}

// Update replaces the whole record, per the PUT /request/{id} contract.
func (g *RequestGateway) Update(ctx context.Context, r entities.ChangeRequest) error {
	return g.client.do(ctx, "PUT", fmt.Sprintf("/request/%d", r.ID), r, nil)
}
