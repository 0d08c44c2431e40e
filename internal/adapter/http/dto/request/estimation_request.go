package request

import (
	"puentes_admin/internal/domain/entities"
)

// CreateEstimationRequest carries the structural inputs for a direct
// estimation create. The cost is not accepted — the prediction model
// computes it.
type CreateEstimationRequest struct {
	StructureType string  `json:"structureType" binding:"required"`
	AbutmentType  string  `json:"abutmentType" binding:"required"`
	TotalWidth    float64 `json:"total_Width" binding:"required"`
	NumberOfSpans int     `json:"number_of_Spans" binding:"required"`
	TotalLength   float64 `json:"total_Length" binding:"required"`
	Year          int     `json:"year" binding:"required"`
}

func (r CreateEstimationRequest) ToInput() entities.EstimationInput {
	return entities.EstimationInput{
		StructureType: r.StructureType,
		AbutmentType:  r.AbutmentType,
		TotalWidth:    r.TotalWidth,
		NumberOfSpans: r.NumberOfSpans,
		TotalLength:   r.TotalLength,
		Year:          r.Year,
	}
}

// EditRequestPayload is the proposed post-state of an edit request,
// including the proposed total cost.
type EditRequestPayload struct {
	CreateEstimationRequest
	TotalCost float64 `json:"total_Cost"`
}

func (r EditRequestPayload) ToSnapshot() entities.PredictionSnapshot {
	return entities.PredictionSnapshot{
		InputList: r.ToInput(),
		TotalCost: r.TotalCost,
	}
}
