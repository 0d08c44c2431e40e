package interfaces

import (
	"context"

	"puentes_admin/internal/domain/entities"
)

// IEstimationGateway abstracts the backend /estimation resource.
//
// The gateway flattens the backend's nested input_list representation into
// entities.EstimationProject, so use cases never see the wire shape.
//
// Predict is the only write: estimation records are created by the remote
// cost-prediction model and are never updated or deleted directly — edits
// and deletions go through the change-request workflow.

type IEstimationGateway interface {
	List(ctx context.Context) ([]entities.EstimationProject, error)
	Predict(ctx context.Context, in entities.EstimationInput) (entities.EstimationProject, error)
}
