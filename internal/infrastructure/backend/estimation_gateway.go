package backend

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"puentes_admin/internal/domain/entities"
	"puentes_admin/internal/usecase/interfaces"
)

// estimationRecord is the wire shape of an estimation: the structural
// parameters sit in a nested input_list the consumer must flatten.
type estimationRecord struct {
	ID        int64                    `json:"id"`
	InputList entities.EstimationInput `json:"input_list"`
	TotalCost float64                  `json:"total_Cost"`
}

func (r estimationRecord) flatten() entities.EstimationProject {
	return entities.EstimationProject{
		ID:              r.ID,
		EstimationInput: r.InputList,
		TotalCost:       r.TotalCost,
	}
}

// EstimationGateway implements IEstimationGateway over the /estimation
// resource.
type EstimationGateway struct {
	client *Client
}

var _ interfaces.IEstimationGateway = (*EstimationGateway)(nil)

func NewEstimationGateway(client *Client) *EstimationGateway {
	return &EstimationGateway{client: client}
}

func (g *EstimationGateway) List(ctx context.Context) ([]entities.EstimationProject, error) {
	var records []estimationRecord
	if err := g.client.do(ctx, "GET", "/estimation", nil, &records); err != nil {
		return nil, err
	}

	out := make([]entities.EstimationProject, 0, len(records))
	for _, r := range records {
		out = append(out, r.flatten())
	}
	return out, nil
}

// Predict asks the cost model to create a new estimation. A 200 is success;
// the contract guarantees nothing about the response body, so the created
// record is decoded best-effort.
func (g *EstimationGateway) Predict(ctx context.Context, in entities.EstimationInput) (entities.EstimationProject, error) {
	var raw json.RawMessage
	if err := g.client.do(ctx, "POST", "/estimation/predict", in, &raw); err != nil {
		return entities.EstimationProject{}, err
	}

	var record estimationRecord
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &record); err != nil {
			g.client.log.Debug("predict response not a record", zap.Error(err))
			return entities.EstimationProject{}, nil
		}
	}
	return record.flatten(), nil
}
