package response

import (
	"puentes_admin/internal/domain/entities"
	"puentes_admin/internal/usecase"
)

// ChangeRequestRowResponse is one feed row: what the list screen shows,
// without the snapshot payloads.
type ChangeRequestRowResponse struct {
	ID           int64  `json:"id"`
	PredictionID int64  `json:"prediction_id"`
	RequestType  string `json:"request_type"`
	Solicitante  string `json:"solicitante"`
	UserID       int64  `json:"user_id"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	Actionable   bool   `json:"actionable"`
}

func FromFeedItem(it usecase.FeedItem) ChangeRequestRowResponse {
	return ChangeRequestRowResponse{
		ID:           it.ID,
		PredictionID: it.PredictionID,
		RequestType:  string(it.RequestType),
		Solicitante:  it.Solicitante,
		UserID:       it.UserID,
		Date:         it.Date,
		Status:       string(it.Status),
		Actionable:   it.Actionable,
	}
}

type ChangeRequestListResponse struct {
	Items      []ChangeRequestRowResponse `json:"items"`
	Page       int                        `json:"page"`
	TotalPages int                        `json:"total_pages"`
	Total      int                        `json:"total"`
}

func FromFeedItems(items []usecase.FeedItem, page, totalPages, total int) ChangeRequestListResponse {
	out := make([]ChangeRequestRowResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromFeedItem(it))
	}
	return ChangeRequestListResponse{Items: out, Page: page, TotalPages: totalPages, Total: total}
}

// ChangeRequestDetailResponse is the view screen: the full record with both
// snapshots, so an admin can diff original against proposed state.
type ChangeRequestDetailResponse struct {
	ID                 int64                       `json:"id"`
	PredictionID       int64                       `json:"prediction_id"`
	RequestType        string                      `json:"request_type"`
	UserID             int64                       `json:"user_id"`
	Date               string                      `json:"date"`
	Status             string                      `json:"status"`
	OriginalPrediction entities.PredictionSnapshot `json:"original_prediction_object"`
	NewPrediction      entities.PredictionSnapshot `json:"new_prediction_object"`
}

func FromChangeRequest(r entities.ChangeRequest) ChangeRequestDetailResponse {
	return ChangeRequestDetailResponse{
		ID:                 r.ID,
		PredictionID:       r.PredictionID,
		RequestType:        string(r.RequestType),
		UserID:             r.UserID,
		Date:               r.Date,
		Status:             string(r.Status),
		OriginalPrediction: r.OriginalPrediction,
		NewPrediction:      r.NewPrediction,
	}
}
