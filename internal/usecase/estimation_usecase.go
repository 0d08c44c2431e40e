package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"puentes_admin/internal/domain/entities"
	"puentes_admin/internal/usecase/interfaces"
)

var (
	ErrInvalidProjectID    = errors.New("invalid project id")
	ErrProjectNotFound     = errors.New("estimation project not found")
	ErrInvalidProjectInput = errors.New("invalid estimation input")
)

// EstimationPageSize is the fixed page size of the estimation listing.
const EstimationPageSize = 10

// IEstimationUseCase is the registry over estimation records.
//
// Create is the one direct write: a new estimation goes straight to the
// prediction endpoint, no approval involved. There is deliberately no Update
// or Delete here — those are change requests (IChangeRequestUseCase).

type IEstimationUseCase interface {
	List(ctx context.Context) ([]entities.EstimationProject, error)
	Create(ctx context.Context, in entities.EstimationInput) (entities.EstimationProject, error)
	GetByID(ctx context.Context, id int64) (entities.EstimationProject, error)
}

type EstimationUseCase struct {
	estimations interfaces.IEstimationGateway
	validate    *validator.Validate
}

var _ IEstimationUseCase = (*EstimationUseCase)(nil)

func NewEstimationUseCase(estimations interfaces.IEstimationGateway) *EstimationUseCase {
	return &EstimationUseCase{estimations: estimations, validate: newEstimationValidator()}
}

func (u *EstimationUseCase) List(ctx context.Context) ([]entities.EstimationProject, error) {
	return u.estimations.List(ctx)
}

func (u *EstimationUseCase) Create(ctx context.Context, in entities.EstimationInput) (entities.EstimationProject, error) {
	if err := u.validate.Struct(in); err != nil {
		return entities.EstimationProject{}, fmt.Errorf("%w: %v", ErrInvalidProjectInput, err)
	}
	return u.estimations.Predict(ctx, in)
}

func (u *EstimationUseCase) GetByID(ctx context.Context, id int64) (entities.EstimationProject, error) {
	if id <= 0 {
		return entities.EstimationProject{}, ErrInvalidProjectID
	}
	return findProjectByID(ctx, u.estimations, id)
}

// findProjectByID scans GET /estimation; the backend has no per-id read.
func findProjectByID(ctx context.Context, gw interfaces.IEstimationGateway, id int64) (entities.EstimationProject, error) {
	all, err := gw.List(ctx)
	if err != nil {
		return entities.EstimationProject{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.EstimationProject{}, ErrProjectNotFound
}

// SearchEstimations filters by superstructure or abutment type,
// case-insensitive substring, OR across the two fields. Empty term is the
// identity.
func SearchEstimations(items []entities.EstimationProject, term string) []entities.EstimationProject {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)
	out := make([]entities.EstimationProject, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.StructureType), needle) ||
			strings.Contains(strings.ToLower(p.AbutmentType), needle) {
			out = append(out, p)
		}
	}
	return out
}
