package response

import "puentes_admin/internal/domain/entities"

type EstimationResponse struct {
	ID            int64   `json:"id"`
	StructureType string  `json:"structureType"`
	AbutmentType  string  `json:"abutmentType"`
	TotalWidth    float64 `json:"total_Width"`
	NumberOfSpans int     `json:"number_of_Spans"`
	TotalLength   float64 `json:"total_Length"`
	Year          int     `json:"year"`
	TotalCost     float64 `json:"total_Cost"`
}

func FromEstimation(p entities.EstimationProject) EstimationResponse {
	return EstimationResponse{
		ID:            p.ID,
		StructureType: p.StructureType,
		AbutmentType:  p.AbutmentType,
		TotalWidth:    p.TotalWidth,
		NumberOfSpans: p.NumberOfSpans,
		TotalLength:   p.TotalLength,
		Year:          p.Year,
		TotalCost:     p.TotalCost,
	}
}

type EstimationListResponse struct {
	Items      []EstimationResponse `json:"items"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"total_pages"`
	Total      int                  `json:"total"`
}

func FromEstimations(items []entities.EstimationProject, page, totalPages, total int) EstimationListResponse {
	out := make([]EstimationResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromEstimation(p))
	}
	return EstimationListResponse{Items: out, Page: page, TotalPages: totalPages, Total: total}
}
