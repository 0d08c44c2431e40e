package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"puentes_admin/internal/auth"
	"puentes_admin/internal/domain/entities"
	mock_interfaces "puentes_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fixedNow() time.Time {
	return time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC)
}

func validProposal() entities.PredictionSnapshot {
	return entities.PredictionSnapshot{
		InputList: entities.EstimationInput{
			StructureType: "arch",
			AbutmentType:  "integral",
			TotalWidth:    12.5,
			NumberOfSpans: 3,
			TotalLength:   80,
			Year:          2024,
		},
		TotalCost: 1500000,
	}
}

func storedProject() entities.EstimationProject {
	return entities.EstimationProject{
		ID: 42,
		EstimationInput: entities.EstimationInput{
			StructureType: "truss",
			AbutmentType:  "stem",
			TotalWidth:    10,
			NumberOfSpans: 2,
			TotalLength:   60,
			Year:          2019,
		},
		TotalCost: 900000,
	}
}

func TestChangeRequestUseCase_CreateEditRequest(t *testing.T) {
	session := auth.Session{UserID: 7, Role: entities.RoleUsuario}

	t.Run("not authenticated", func(t *testing.T) {
		uc := NewChangeRequestUseCase(nil, nil, nil)
		_, err := uc.CreateEditRequest(context.Background(), auth.Session{}, 42, validProposal())
		if !errors.Is(err, ErrNotAuthenticated) {
			t.Fatalf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("invalid project id", func(t *testing.T) {
		uc := NewChangeRequestUseCase(nil, nil, nil)
		_, err := uc.CreateEditRequest(context.Background(), session, 0, validProposal())
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("proposal with unknown structure type", func(t *testing.T) {
		uc := NewChangeRequestUseCase(nil, nil, nil)
		proposed := validProposal()
		proposed.InputList.StructureType = "suspension"
		_, err := uc.CreateEditRequest(context.Background(), session, 42, proposed)
		if !errors.Is(err, ErrInvalidProjectInput) {
			t.Fatalf("expected ErrInvalidProjectInput, got %v", err)
		}
	})

	t.Run("proposal with out-of-range width", func(t *testing.T) {
		uc := NewChangeRequestUseCase(nil, nil, nil)
		proposed := validProposal()
		proposed.InputList.TotalWidth = 1.5
		_, err := uc.CreateEditRequest(context.Background(), session, 42, proposed)
		if !errors.Is(err, ErrInvalidProjectInput) {
			t.Fatalf("expected ErrInvalidProjectInput, got %v", err)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIRequestGateway(ctrl)
		estimations := mock_interfaces.NewMockIEstimationGateway(ctrl)
		uc := NewChangeRequestUseCase(requests, estimations, nil)

		estimations.EXPECT().List(gomock.Any()).Return([]entities.EstimationProject{}, nil)

		_, err := uc.CreateEditRequest(context.Background(), session, 42, validProposal())
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("captures pre-state from the backend, not the caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIRequestGateway(ctrl)
		estimations := mock_interfaces.NewMockIEstimationGateway(ctrl)
		uc := NewChangeRequestUseCase(requests, estimations, nil)
		uc.now = fixedNow

		project := storedProject()
		estimations.EXPECT().List(gomock.Any()).Return([]entities.EstimationProject{project}, nil)

		proposed := validProposal()
		submitted := entities.ChangeRequest{
			PredictionID: 42,
			RequestType:  entities.RequestTypeEdicion,
			UserID:       7,
			Date:         "2024-05-17",
			OriginalPrediction: entities.PredictionSnapshot{
				InputList: project.EstimationInput,
				TotalCost: project.TotalCost,
			},
			NewPrediction: proposed,
			Status:        entities.RequestStatusPendiente,
		}
		stored := submitted
		stored.ID = 101
		requests.EXPECT().Create(gomock.Any(), submitted).Return(stored, nil)

		created, err := uc.CreateEditRequest(context.Background(), session, 42, proposed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 101 {
			t.Fatalf("expected backend-assigned id 101, got %d", created.ID)
		}
		if created.OriginalPrediction.TotalCost != 900000 {
			t.Fatalf("expected pre-state cost 900000, got %v", created.OriginalPrediction.TotalCost)
		}
		if created.NewPrediction != proposed {
			t.Fatalf("unexpected proposed snapshot: %+v", created.NewPrediction)
		}
	})

	t.Run("backend rejection propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIRequestGateway(ctrl)
		estimations := mock_interfaces.NewMockIEstimationGateway(ctrl)
		uc := NewChangeRequestUseCase(requests, estimations, nil)

		estimations.EXPECT().List(gomock.Any()).Return([]entities.EstimationProject{storedProject()}, nil)
		requests.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ChangeRequest{}, errors.New("boom"))

		_, err := uc.CreateEditRequest(context.Background(), session, 42, validProposal())
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestChangeRequestUseCase_CreateDeleteRequest(t *testing.T) {
	session := auth.Session{UserID: 7, Role: entities.RoleUsuario}

	t.Run("not authenticated", func(t *testing.T) {
		uc := NewChangeRequestUseCase(nil, nil, nil)
		_, err := uc.CreateDeleteRequest(context.Background(), auth.Session{}, 42)
		if !errors.Is(err, ErrNotAuthenticated) {
			t.Fatalf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("invalid project id", func(t *testing.T) {
		uc := NewChangeRequestUseCase(nil, nil, nil)
		_, err := uc.CreateDeleteRequest(context.Background(), session, -3)
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("both snapshots carry the zero sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIRequestGateway(ctrl)
		uc := NewChangeRequestUseCase(requests, nil, nil)
		uc.now = fixedNow

		submitted := entities.ChangeRequest{
			PredictionID:       42,
			RequestType:        entities.RequestTypeEliminacion,
			UserID:             7,
			Date:               "2024-05-17",
			OriginalPrediction: entities.NewSentinelSnapshot(),
			NewPrediction:      entities.NewSentinelSnapshot(),
			Status:             entities.RequestStatusPendiente,
		}
		requests.EXPECT().Create(gomock.Any(), submitted).Return(submitted, nil)

		created, err := uc.CreateDeleteRequest(context.Background(), session, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.OriginalPrediction != (entities.PredictionSnapshot{}) {
			t.Fatalf("expected sentinel original snapshot, got %+v", created.OriginalPrediction)
		}
		if created.NewPrediction != (entities.PredictionSnapshot{}) {
			t.Fatalf("expected sentinel new snapshot, got %+v", created.NewPrediction)
		}
		if created.RequestType != entities.RequestTypeEliminacion {
			t.Fatalf("unexpected request type: %s", created.RequestType)
		}
	})
}

func TestChangeRequestUseCase_Resolve(t *testing.T) {
	admin := auth.Session{UserID: 1, Role: entities.RoleAdmin}

	pending := entities.ChangeRequest{
		ID:           101,
		PredictionID: 42,
		RequestType:  entities.RequestTypeEdicion,
		UserID:       7,
		Date:         "2024-05-17",
		OriginalPrediction: entities.PredictionSnapshot{
			InputList: storedProject().EstimationInput,
			TotalCost: storedProject().TotalCost,
		},
		NewPrediction: validProposal(),
		Status:        entities.RequestStatusPendiente,
	}

	t.Run("non-admin", func(t *testing.T) {
		uc := NewChangeRequestUseCase(nil, nil, nil)
		_, err := uc.Resolve(context.Background(), auth.Session{UserID: 7, Role: entities.RoleUsuario}, 101, entities.RequestStatusAprobado)
		if !errors.Is(err, ErrNotAllowed) {
			t.Fatalf("expected ErrNotAllowed, got %v", err)
		}
	})

	t.Run("non-terminal decision", func(t *testing.T) {
		uc := NewChangeRequestUseCase(nil, nil, nil)
		_, err := uc.Resolve(context.Background(), admin, 101, entities.RequestStatusPendiente)
		if !errors.Is(err, ErrInvalidDecision) {
			t.Fatalf("expected ErrInvalidDecision, got %v", err)
		}
	})

	t.Run("invalid request id", func(t *testing.T) {
		uc := NewChangeRequestUseCase(nil, nil, nil)
		_, err := uc.Resolve(context.Background(), admin, 0, entities.RequestStatusAprobado)
		if !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("request not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIRequestGateway(ctrl)
		uc := NewChangeRequestUseCase(requests, nil, nil)

		requests.EXPECT().List(gomock.Any()).Return([]entities.ChangeRequest{pending}, nil)

		_, err := uc.Resolve(context.Background(), admin, 999, entities.RequestStatusAprobado)
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("already approved stays approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIRequestGateway(ctrl)
		uc := NewChangeRequestUseCase(requests, nil, nil)

		resolved := pending
		resolved.Status = entities.RequestStatusAprobado
		requests.EXPECT().List(gomock.Any()).Return([]entities.ChangeRequest{resolved}, nil).Times(2)

		if _, err := uc.Resolve(context.Background(), admin, 101, entities.RequestStatusAprobado); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition on re-approve, got %v", err)
		}
		if _, err := uc.Resolve(context.Background(), admin, 101, entities.RequestStatusRechazado); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition on reject-after-approve, got %v", err)
		}
	})

	t.Run("approve writes the whole record with only status substituted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIRequestGateway(ctrl)
		uc := NewChangeRequestUseCase(requests, nil, nil)

		requests.EXPECT().List(gomock.Any()).Return([]entities.ChangeRequest{pending}, nil)

		want := pending
		want.Status = entities.RequestStatusAprobado
		requests.EXPECT().Update(gomock.Any(), want).Return(nil)

		resolved, err := uc.Resolve(context.Background(), admin, 101, entities.RequestStatusAprobado)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved.Status != entities.RequestStatusAprobado {
			t.Fatalf("expected Aprobado, got %s", resolved.Status)
		}
		if resolved.OriginalPrediction != pending.OriginalPrediction || resolved.NewPrediction != pending.NewPrediction {
			t.Fatalf("snapshots must survive resolution untouched: %+v", resolved)
		}
	})

	t.Run("reject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIRequestGateway(ctrl)
		uc := NewChangeRequestUseCase(requests, nil, nil)

		requests.EXPECT().List(gomock.Any()).Return([]entities.ChangeRequest{pending}, nil)

		want := pending
		want.Status = entities.RequestStatusRechazado
		requests.EXPECT().Update(gomock.Any(), want).Return(nil)

		resolved, err := uc.Resolve(context.Background(), admin, 101, entities.RequestStatusRechazado)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved.Status != entities.RequestStatusRechazado {
			t.Fatalf("expected Rechazado, got %s", resolved.Status)
		}
	})

	t.Run("backend rejects the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIRequestGateway(ctrl)
		uc := NewChangeRequestUseCase(requests, nil, nil)

		requests.EXPECT().List(gomock.Any()).Return([]entities.ChangeRequest{pending}, nil)
		requests.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("backend down"))

		_, err := uc.Resolve(context.Background(), admin, 101, entities.RequestStatusAprobado)
		if err == nil || err.Error() != "backend down" {
			t.Fatalf("expected backend down, got %v", err)
		}
	})
}

func TestChangeRequestUseCase_GetByID(t *testing.T) {
	mine := entities.ChangeRequest{ID: 101, UserID: 7, Status: entities.RequestStatusPendiente}
	theirs := entities.ChangeRequest{ID: 102, UserID: 8, Status: entities.RequestStatusPendiente}

	t.Run("invalid id", func(t *testing.T) {
		uc := NewChangeRequestUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), auth.Session{UserID: 7}, 0)
		if !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("owner reads own request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIRequestGateway(ctrl)
		uc := NewChangeRequestUseCase(requests, nil, nil)

		requests.EXPECT().List(gomock.Any()).Return([]entities.ChangeRequest{mine, theirs}, nil)

		got, err := uc.GetByID(context.Background(), auth.Session{UserID: 7, Role: entities.RoleUsuario}, 101)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != 101 {
			t.Fatalf("expected request 101, got %d", got.ID)
		}
	})

	t.Run("non-owner gets not found, not forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIRequestGateway(ctrl)
		uc := NewChangeRequestUseCase(requests, nil, nil)

		requests.EXPECT().List(gomock.Any()).Return([]entities.ChangeRequest{mine, theirs}, nil)

		_, err := uc.GetByID(context.Background(), auth.Session{UserID: 7, Role: entities.RoleUsuario}, 102)
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("admin reads any request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIRequestGateway(ctrl)
		uc := NewChangeRequestUseCase(requests, nil, nil)

		requests.EXPECT().List(gomock.Any()).Return([]entities.ChangeRequest{mine, theirs}, nil)

		got, err := uc.GetByID(context.Background(), auth.Session{UserID: 1, Role: entities.RoleAdmin}, 102)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != 102 {
			t.Fatalf("expected request 102, got %d", got.ID)
		}
	})
}
