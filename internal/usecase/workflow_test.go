package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"projectvoortgang/internal/domain/entities"
	mock_interfaces "projectvoortgang/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// Drives one opname through its whole life against in-memory repository
// state: create, populate, mark inkoop fully gereed, commit, recompute,
// authorize, and verify deletion is refused afterward.
func TestOpnameWorkflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
	lineRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
	warehouse := mock_interfaces.NewMockIWarehouseGateway(ctrl)

	var stored entities.Assessment
	lines := map[string]entities.LineItem{}
	var lineOrder []string

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a entities.Assessment) (entities.Assessment, error) {
			stored = a
			return a, nil
		},
	)
	repo.EXPECT().GetByKey(gomock.Any(), 1241, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, key string) (entities.Assessment, error) {
			if stored.Key != key {
				return entities.Assessment{}, nil
			}
			return stored, nil
		},
	).AnyTimes()
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a entities.Assessment) (entities.Assessment, error) {
			stored = a
			return a, nil
		},
	).AnyTimes()
	repo.EXPECT().ListByMainProject(gomock.Any(), 1241, 1001).DoAndReturn(
		func(_ context.Context, _, _ int) ([]entities.Assessment, error) {
			return []entities.Assessment{stored}, nil
		},
	).AnyTimes()

	lineRepo.EXPECT().DeleteByAssessment(gomock.Any(), 1241, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, _ string) error {
			lines = map[string]entities.LineItem{}
			lineOrder = nil
			return nil
		},
	).AnyTimes()
	lineRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, items []entities.LineItem) ([]entities.LineItem, error) {
			for _, li := range items {
				lines[li.Key] = li
				lineOrder = append(lineOrder, li.Key)
			}
			return items, nil
		},
	)
	lineRepo.EXPECT().ListByAssessment(gomock.Any(), 1241, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, _ string) ([]entities.LineItem, error) {
			out := make([]entities.LineItem, 0, len(lineOrder))
			for _, key := range lineOrder {
				out = append(out, lines[key])
			}
			return out, nil
		},
	).AnyTimes()
	lineRepo.EXPECT().UpdateCompletion(gomock.Any(), 1241, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, _ string, u entities.PartialUpdate) (entities.LineItem, error) {
			li, ok := lines[u.LineKey]
			if !ok {
				return entities.LineItem{}, nil
			}
			u.Apply(&li)
			lines[u.LineKey] = li
			return li, nil
		},
	).AnyTimes()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	warehouse.EXPECT().ListMainProjects(gomock.Any(), 1241).Return([]entities.ProjectRef{
		{Key: 1001, Name: "Nieuwbouw Kantoor A", Level: 1, StartBookingDate: &start, EndBookingDate: &end},
	}, nil)
	warehouse.EXPECT().GetProjectData(gomock.Any(), 1241, 1001, gomock.Any(), gomock.Any()).Return(warehouseRows(), nil)

	assessmentUC := NewAssessmentUseCase(repo, lineRepo, warehouse)
	lineUC := NewLineItemUseCase(lineRepo, repo, warehouse)
	ctx := context.Background()

	a, err := assessmentUC.Create(ctx, testTenant, CreateAssessmentParams{MainProjectKey: 1001})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	populated, err := lineUC.Populate(ctx, testTenant, a.Key)
	if err != nil {
		t.Fatalf("populate: %v", err)
	}
	if len(populated) == 0 {
		t.Fatal("populate produced no lines")
	}

	updates := make([]entities.PartialUpdate, 0, len(populated))
	for _, li := range populated {
		updates = append(updates, entities.PartialUpdate{LineKey: li.Key, Purchasing: ptr(100)})
	}
	if _, err := lineUC.CommitUpdates(ctx, testTenant, a.Key, updates); err != nil {
		t.Fatalf("commit: %v", err)
	}

	a, err = assessmentUC.Recompute(ctx, testTenant, a.Key)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	// With inkoop fully gereed the toegestane stand equals the budget, so
	// the running variance collapses to booked minus budgeted.
	booked := a.Aggregates.BookedCost.Purchasing
	budget := a.Aggregates.BudgetedCost.Purchasing
	if booked != 100 || budget != 300 {
		t.Fatalf("unexpected fixture totals: booked=%v budget=%v", booked, budget)
	}
	if got := a.Aggregates.VarianceToDate.Purchasing; got != booked-budget {
		t.Fatalf("expected variance %v, got %v", booked-budget, got)
	}
	if a.AggregatesDirty {
		t.Fatal("recompute must clear the dirty flag")
	}

	a, err = assessmentUC.Finalize(ctx, testTenant, a.Key, "")
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if a.Status != entities.AssessmentStatusGeautoriseerd {
		t.Fatalf("expected Geautoriseerd, got %s", a.Status)
	}

	if err := assessmentUC.Delete(ctx, testTenant, a.Key); !errors.Is(err, ErrAssessmentLocked) {
		t.Fatalf("expected ErrAssessmentLocked after authorization, got %v", err)
	}
}
