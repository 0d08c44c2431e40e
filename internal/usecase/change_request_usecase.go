package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"puentes_admin/internal/auth"
	"puentes_admin/internal/domain/entities"
	"puentes_admin/internal/usecase/interfaces"
)

var (
	ErrNotAuthenticated  = errors.New("actor not authenticated")
	ErrNotAllowed        = errors.New("admin role required")
	ErrInvalidDecision   = errors.New("invalid resolution decision")
	ErrInvalidRequestID  = errors.New("invalid request id")
	ErrRequestNotFound   = errors.New("change request not found")
	ErrInvalidTransition = errors.New("request already resolved")
)

// IChangeRequestUseCase is the approval workflow over estimation records.
//
// Estimations are never edited or deleted in place: any mutation is proposed
// as a ChangeRequest and sits in Pendiente until an admin resolves it.
// Resolution records the decision only; the underlying estimation record is
// left untouched (materializing approved changes is deferred to the backend).

type IChangeRequestUseCase interface {
	CreateEditRequest(ctx context.Context, session auth.Session, projectID int64, proposed entities.PredictionSnapshot) (entities.ChangeRequest, error)
	CreateDeleteRequest(ctx context.Context, session auth.Session, projectID int64) (entities.ChangeRequest, error)
	Resolve(ctx context.Context, session auth.Session, requestID int64, decision entities.RequestStatus) (entities.ChangeRequest, error)
	GetByID(ctx context.Context, session auth.Session, requestID int64) (entities.ChangeRequest, error)
}

type ChangeRequestUseCase struct {
	requests    interfaces.IRequestGateway
	estimations interfaces.IEstimationGateway
	validate    *validator.Validate
	log         *zap.Logger

	// now is swappable so tests can pin the request date.
	now func() time.Time
}

var _ IChangeRequestUseCase = (*ChangeRequestUseCase)(nil)

func NewChangeRequestUseCase(requests interfaces.IRequestGateway, estimations interfaces.IEstimationGateway, log *zap.Logger) *ChangeRequestUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChangeRequestUseCase{
		requests:    requests,
		estimations: estimations,
		validate:    newEstimationValidator(),
		log:         log,
		now:         time.Now,
	}
}

// CreateEditRequest proposes new field values for an existing estimation.
//
// The pre-state snapshot is read fresh from the backend here, not taken from
// whatever record the caller happens to hold: a request created while the
// dashboard shows stale data must still capture the project as it actually
// is at creation time.
func (u *ChangeRequestUseCase) CreateEditRequest(ctx context.Context, session auth.Session, projectID int64, proposed entities.PredictionSnapshot) (entities.ChangeRequest, error) {
	if session.UserID <= 0 {
		return entities.ChangeRequest{}, ErrNotAuthenticated
	}
	if projectID <= 0 {
		return entities.ChangeRequest{}, ErrInvalidProjectID
	}
	if err := u.validate.Struct(proposed.InputList); err != nil {
		return entities.ChangeRequest{}, fmt.Errorf("%w: %v", ErrInvalidProjectInput, err)
	}

	project, err := findProjectByID(ctx, u.estimations, projectID)
	if err != nil {
		return entities.ChangeRequest{}, err
	}

	req := entities.ChangeRequest{
		PredictionID: project.ID,
		RequestType:  entities.RequestTypeEdicion,
		UserID:       session.UserID,
		Date:         u.now().Format(entities.RequestDateLayout),
		OriginalPrediction: entities.PredictionSnapshot{
			InputList: project.EstimationInput,
			TotalCost: project.TotalCost,
		},
		NewPrediction: proposed,
		Status:        entities.RequestStatusPendiente,
	}

	created, err := u.requests.Create(ctx, req)
	if err != nil {
		u.log.Warn("edit request rejected by backend",
			zap.Int64("prediction_id", projectID),
			zap.Int64("user_id", session.UserID),
			zap.Error(err))
		return entities.ChangeRequest{}, err
	}

	u.log.Info("edit request created",
		zap.Int64("prediction_id", projectID),
		zap.Int64("user_id", session.UserID))
	return created, nil
}

// CreateDeleteRequest proposes removing an estimation. Both snapshots carry
// the zero sentinel: the backend contract does not populate the pre-state
// for deletions, and resolvers act on the referenced prediction_id alone.
func (u *ChangeRequestUseCase) CreateDeleteRequest(ctx context.Context, session auth.Session, projectID int64) (entities.ChangeRequest, error) {
	if session.UserID <= 0 {
		return entities.ChangeRequest{}, ErrNotAuthenticated
	}
	if projectID <= 0 {
		return entities.ChangeRequest{}, ErrInvalidProjectID
	}

	req := entities.ChangeRequest{
		PredictionID:       projectID,
		RequestType:        entities.RequestTypeEliminacion,
		UserID:             session.UserID,
		Date:               u.now().Format(entities.RequestDateLayout),
		OriginalPrediction: entities.NewSentinelSnapshot(),
		NewPrediction:      entities.NewSentinelSnapshot(),
		Status:             entities.RequestStatusPendiente,
	}

	created, err := u.requests.Create(ctx, req)
	if err != nil {
		u.log.Warn("delete request rejected by backend",
			zap.Int64("prediction_id", projectID),
			zap.Int64("user_id", session.UserID),
			zap.Error(err))
		return entities.ChangeRequest{}, err
	}

	u.log.Info("delete request created",
		zap.Int64("prediction_id", projectID),
		zap.Int64("user_id", session.UserID))
	return created, nil
}

// Resolve moves a pending request into a terminal state.
//
// The record is re-read from the backend and written back whole with only
// status substituted. The backend exposes no compare-and-swap, so two admins
// resolving concurrently is last-write-wins.
func (u *ChangeRequestUseCase) Resolve(ctx context.Context, session auth.Session, requestID int64, decision entities.RequestStatus) (entities.ChangeRequest, error) {
	if !session.IsAdmin() {
		return entities.ChangeRequest{}, ErrNotAllowed
	}
	if !decision.Terminal() {
		return entities.ChangeRequest{}, ErrInvalidDecision
	}
	if requestID <= 0 {
		return entities.ChangeRequest{}, ErrInvalidRequestID
	}

	target, err := u.findRequestByID(ctx, requestID)
	if err != nil {
		return entities.ChangeRequest{}, err
	}
	if target.Status != entities.RequestStatusPendiente {
		return entities.ChangeRequest{}, ErrInvalidTransition
	}

	resolved := target
	resolved.Status = decision

	if err := u.requests.Update(ctx, resolved); err != nil {
		u.log.Warn("resolution rejected by backend",
			zap.Int64("request_id", requestID),
			zap.String("decision", string(decision)),
			zap.Error(err))
		return entities.ChangeRequest{}, err
	}

	u.log.Info("request resolved",
		zap.Int64("request_id", requestID),
		zap.String("request_type", string(resolved.RequestType)),
		zap.String("decision", string(decision)))
	return resolved, nil
}

// GetByID returns one request. Non-admins may only read their own.
func (u *ChangeRequestUseCase) GetByID(ctx context.Context, session auth.Session, requestID int64) (entities.ChangeRequest, error) {
	if requestID <= 0 {
		return entities.ChangeRequest{}, ErrInvalidRequestID
	}

	target, err := u.findRequestByID(ctx, requestID)
	if err != nil {
		return entities.ChangeRequest{}, err
	}
	if !session.IsAdmin() && target.UserID != session.UserID {
		return entities.ChangeRequest{}, ErrRequestNotFound
	}
	return target, nil
}

// findRequestByID scans GET /request; the backend has no per-id read.
func (u *ChangeRequestUseCase) findRequestByID(ctx context.Context, requestID int64) (entities.ChangeRequest, error) {
	all, err := u.requests.List(ctx)
	if err != nil {
		return entities.ChangeRequest{}, err
	}
	for _, r := range all {
		if r.ID == requestID {
			return r, nil
		}
	}
	return entities.ChangeRequest{}, ErrRequestNotFound
}
