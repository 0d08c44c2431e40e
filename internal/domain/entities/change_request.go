package entities

// RequestStatus represents the lifecycle of a change request.
//
// Domain notes:
//   - The literals are stored verbatim by the backend; the feed and the
//     search match against them as-is.
//   - The only legal transitions are Pendiente -> Aprobado and
//     Pendiente -> Rechazado, both admin-triggered. Terminal states never
//     transition again.

type RequestStatus string

const (
	RequestStatusPendiente RequestStatus = "Pendiente"
	RequestStatusAprobado  RequestStatus = "Aprobado"
	RequestStatusRechazado RequestStatus = "Rechazado"
)

// Terminal reports whether the status admits no further transition.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusAprobado || s == RequestStatusRechazado
}

// RequestType distinguishes edit proposals from deletion proposals.

type RequestType string

const (
	RequestTypeEdicion     RequestType = "Edición"
	RequestTypeEliminacion RequestType = "Eliminación"
)

// RequestDateLayout is the creation-date format the backend expects.
const RequestDateLayout = "2006-01-02"

// PredictionSnapshot is an immutable copy of an estimation's state, taken
// when the request is created. Deletion requests carry the all-zero sentinel
// on both sides; it exists for representation uniformity, not semantic data.
type PredictionSnapshot struct {
	InputList EstimationInput `json:"input_list"`
	TotalCost float64         `json:"total_Cost"`
}

// NewSentinelSnapshot returns the empty/zero placeholder snapshot used where
// no real before/after state exists.
func NewSentinelSnapshot() PredictionSnapshot {
	return PredictionSnapshot{}
}

// ChangeRequest is a proposal to edit or delete an EstimationProject,
// pending admin resolution. It references the target project by id and
// records exactly one requester; the admin who resolves it is not recorded.
type ChangeRequest struct {
	ID                 int64              `json:"id"`
	PredictionID       int64              `json:"prediction_id"`
	RequestType        RequestType        `json:"request_type"`
	UserID             int64              `json:"user_id"`
	Date               string             `json:"date"`
	OriginalPrediction PredictionSnapshot `json:"original_prediction_object"`
	NewPrediction      PredictionSnapshot `json:"new_prediction_object"`
	Status             RequestStatus      `json:"status"`
}

// Actionable reports whether approve/reject controls apply to the request
// for the given actor: pending, of a known type, and viewed by an admin.
func (r ChangeRequest) Actionable(isAdmin bool) bool {
	if !isAdmin {
		return false
	}
	if r.Status != RequestStatusPendiente {
		return false
	}
	return r.RequestType == RequestTypeEdicion || r.RequestType == RequestTypeEliminacion
}
