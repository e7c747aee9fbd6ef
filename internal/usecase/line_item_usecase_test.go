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

func warehouseRows() []entities.ProjectDataRow {
	return []entities.ProjectDataRow{
		{
			ProjectKey: 1001, ProjectName: "Nieuwbouw Kantoor A", ProjectLevel: 1, ProjectPhase: "Uitvoering",
			ParagraphKey: 3001, ParagraphName: "61 - Elektrische installatie", ParagraphLevel: 1,
			BudgetCostPrice:     entities.CategoryAmounts{Purchasing: 100, AssemblyLabor: 50, ProjectBound: 25},
			BudgetTransferPrice: entities.CategoryAmounts{Purchasing: 110, AssemblyLabor: 55, ProjectBound: 30},
			BudgetedHours:       entities.LaborHours{Assembly: 10, ProjectBound: 4},
			FinalCostPrice:      entities.CategoryAmounts{Purchasing: 40, AssemblyLabor: 20, ProjectBound: 10},
			FinalHours:          entities.LaborHours{Assembly: 3, ProjectBound: 1},
			UnprocessedHours:    entities.LaborHours{Assembly: 1},
			HistoricalRequests:  entities.CategoryAmounts{Purchasing: 5},
		},
		{
			ProjectKey: 1001, ProjectName: "Nieuwbouw Kantoor A", ProjectLevel: 1, ProjectPhase: "Uitvoering",
			ParagraphKey: 3002, ParagraphName: "62 - Communicatie-installatie", ParagraphLevel: 1,
			BudgetCostPrice: entities.CategoryAmounts{Purchasing: 200, AssemblyLabor: 80, ProjectBound: 40},
			FinalCostPrice:  entities.CategoryAmounts{Purchasing: 60, AssemblyLabor: 30, ProjectBound: 15},
		},
		{
			ProjectKey: 2001, ProjectName: "Elektra installatie", ProjectLevel: 2, ProjectPhase: "Uitvoering",
			BudgetCostPrice: entities.CategoryAmounts{Purchasing: 70, AssemblyLabor: 35, ProjectBound: 20},
			FinalCostPrice:  entities.CategoryAmounts{Purchasing: 25, AssemblyLabor: 10, ProjectBound: 5},
		},
	}
}

func TestLineItemUseCase_Populate(t *testing.T) {
	t.Run("locked assessment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewLineItemUseCase(nil, assessmentRepo, nil)

		locked := conceptAssessment()
		locked.Status = entities.AssessmentStatusGeautoriseerd
		assessmentRepo.EXPECT().GetByKey(gomock.Any(), 1241, "opname-1").Return(locked, nil)

		_, err := uc.Populate(context.Background(), testTenant, "opname-1")
		if !errors.Is(err, ErrAssessmentLocked) {
			t.Fatalf("expected ErrAssessmentLocked, got %v", err)
		}
	})

	t.Run("warehouse down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		warehouse := mock_interfaces.NewMockIWarehouseGateway(ctrl)
		uc := NewLineItemUseCase(nil, assessmentRepo, warehouse)

		assessmentRepo.EXPECT().GetByKey(gomock.Any(), 1241, "opname-1").Return(conceptAssessment(), nil)
		warehouse.EXPECT().GetProjectData(gomock.Any(), 1241, 1001, gomock.Any(), gomock.Any()).Return(nil, errors.New("vpn down"))

		_, err := uc.Populate(context.Background(), testTenant, "opname-1")
		if !errors.Is(err, ErrWarehouseUnavailable) {
			t.Fatalf("expected ErrWarehouseUnavailable, got %v", err)
		}
	})

	t.Run("no warehouse rows clears previous set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		lineRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		warehouse := mock_interfaces.NewMockIWarehouseGateway(ctrl)
		uc := NewLineItemUseCase(lineRepo, assessmentRepo, warehouse)

		assessmentRepo.EXPECT().GetByKey(gomock.Any(), 1241, "opname-1").Return(conceptAssessment(), nil)
		warehouse.EXPECT().GetProjectData(gomock.Any(), 1241, 1001, gomock.Any(), gomock.Any()).Return(nil, nil)
		// Replace semantics hold even for an empty result: lines from an
		// earlier run are removed and the aggregates go stale.
		lineRepo.EXPECT().DeleteByAssessment(gomock.Any(), 1241, "opname-1").Return(nil)
		assessmentRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Assessment) (entities.Assessment, error) {
				if !a.AggregatesDirty {
					t.Fatal("empty populate must still flag aggregates dirty")
				}
				return a, nil
			},
		)

		lines, err := uc.Populate(context.Background(), testTenant, "opname-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lines) != 0 {
			t.Fatalf("expected empty result, got %d lines", len(lines))
		}
	})

	t.Run("builds both partitions and replaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		lineRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		warehouse := mock_interfaces.NewMockIWarehouseGateway(ctrl)
		uc := NewLineItemUseCase(lineRepo, assessmentRepo, warehouse)

		assessmentRepo.EXPECT().GetByKey(gomock.Any(), 1241, "opname-1").Return(conceptAssessment(), nil)
		warehouse.EXPECT().GetProjectData(gomock.Any(), 1241, 1001, gomock.Any(), gomock.Any()).Return(warehouseRows(), nil)
		assessmentRepo.EXPECT().ListByMainProject(gomock.Any(), 1241, 1001).Return(nil, nil)
		lineRepo.EXPECT().DeleteByAssessment(gomock.Any(), 1241, "opname-1").Return(nil)
		lineRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, items []entities.LineItem) ([]entities.LineItem, error) { return items, nil },
		)
		assessmentRepo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Assessment{})).DoAndReturn(
			func(_ context.Context, a entities.Assessment) (entities.Assessment, error) {
				if !a.AggregatesDirty {
					t.Fatal("populate must flag aggregates dirty")
				}
				return a, nil
			},
		)

		lines, err := uc.Populate(context.Background(), testTenant, "opname-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lines) != 3 {
			t.Fatalf("expected 2 paragraph lines + 1 deelproject line, got %d", len(lines))
		}

		p1, p2, sub := lines[0], lines[1], lines[2]
		if p1.ParagraphKey != 3001 || p2.ParagraphKey != 3002 || !sub.SubProject || sub.ProjectKey != 2001 {
			t.Fatalf("unexpected partitioning: %+v", lines)
		}
		// Kostprijs basis resolves the cost price columns.
		if p1.BudgetedCost != (entities.CategoryAmounts{Purchasing: 100, AssemblyLabor: 50, ProjectBound: 25}) {
			t.Fatalf("budget not resolved by basis: %+v", p1.BudgetedCost)
		}
		if p1.BookedCost != (entities.CategoryAmounts{Purchasing: 40, AssemblyLabor: 20, ProjectBound: 10}) {
			t.Fatalf("booked not resolved by basis: %+v", p1.BookedCost)
		}
		// Hours are always definitief + onverwerkt.
		if p1.BookedHours != (entities.LaborHours{Assembly: 4, ProjectBound: 1}) {
			t.Fatalf("unexpected booked hours: %+v", p1.BookedHours)
		}
		if p1.Prior.Purchasing != nil {
			t.Fatal("first assessment must have no prior completion")
		}
		for _, li := range lines {
			if li.Key == "" || li.AssessmentKey != "opname-1" || li.Customer != 1241 {
				t.Fatalf("line not keyed to assessment: %+v", li)
			}
		}
	})

	t.Run("carries prior completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		lineRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		warehouse := mock_interfaces.NewMockIWarehouseGateway(ctrl)
		uc := NewLineItemUseCase(lineRepo, assessmentRepo, warehouse)

		current := conceptAssessment()
		prev := conceptAssessment()
		prev.Key = "opname-0"
		prev.CreatedAt = current.CreatedAt.Add(-30 * 24 * time.Hour)

		assessmentRepo.EXPECT().GetByKey(gomock.Any(), 1241, "opname-1").Return(current, nil)
		warehouse.EXPECT().GetProjectData(gomock.Any(), 1241, 1001, gomock.Any(), gomock.Any()).Return(warehouseRows(), nil)
		assessmentRepo.EXPECT().ListByMainProject(gomock.Any(), 1241, 1001).Return([]entities.Assessment{current, prev}, nil)
		lineRepo.EXPECT().ListByAssessment(gomock.Any(), 1241, "opname-0").Return([]entities.LineItem{
			{Key: "old-1", ParagraphKey: 3001, Completion: entities.Completion{Purchasing: 30, AssemblyLabor: 20, ProjectBound: 10}},
			{Key: "old-2", SubProject: true, ProjectKey: 2001, Completion: entities.Completion{Purchasing: 60}},
		}, nil)
		lineRepo.EXPECT().DeleteByAssessment(gomock.Any(), 1241, "opname-1").Return(nil)
		lineRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, items []entities.LineItem) ([]entities.LineItem, error) { return items, nil },
		)
		assessmentRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Assessment) (entities.Assessment, error) { return a, nil },
		)

		lines, err := uc.Populate(context.Background(), testTenant, "opname-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		p1, p2, sub := lines[0], lines[1], lines[2]
		if p1.Prior.Purchasing == nil || *p1.Prior.Purchasing != 30 {
			t.Fatalf("paragraph prior not carried: %+v", p1.Prior)
		}
		if p2.Prior.Purchasing != nil {
			t.Fatal("paragraph without history must have no prior")
		}
		if sub.Prior.Purchasing == nil || *sub.Prior.Purchasing != 60 {
			t.Fatalf("deelproject prior not carried: %+v", sub.Prior)
		}
		// New lines always start at zero regardless of history.
		if p1.Completion != (entities.Completion{}) {
			t.Fatalf("completion must start at zero: %+v", p1.Completion)
		}
	})
}

func TestLineItemUseCase_CommitUpdates(t *testing.T) {
	t.Run("empty batch is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewLineItemUseCase(nil, assessmentRepo, nil)

		assessmentRepo.EXPECT().GetByKey(gomock.Any(), 1241, "opname-1").Return(conceptAssessment(), nil)

		lines, err := uc.CommitUpdates(context.Background(), testTenant, "opname-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lines) != 0 {
			t.Fatalf("expected no result, got %d", len(lines))
		}
	})

	t.Run("locked assessment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewLineItemUseCase(nil, assessmentRepo, nil)

		locked := conceptAssessment()
		locked.Status = entities.AssessmentStatusTerAutorisatie
		assessmentRepo.EXPECT().GetByKey(gomock.Any(), 1241, "opname-1").Return(locked, nil)

		_, err := uc.CommitUpdates(context.Background(), testTenant, "opname-1", []entities.PartialUpdate{
			{LineKey: "r-1", Purchasing: ptr(50)},
		})
		if !errors.Is(err, ErrAssessmentLocked) {
			t.Fatalf("expected ErrAssessmentLocked, got %v", err)
		}
	})

	t.Run("clamps out of range percentages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		lineRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewLineItemUseCase(lineRepo, assessmentRepo, nil)

		assessmentRepo.EXPECT().GetByKey(gomock.Any(), 1241, "opname-1").Return(conceptAssessment(), nil)
		lineRepo.EXPECT().ListByAssessment(gomock.Any(), 1241, "opname-1").Return([]entities.LineItem{{Key: "r-1"}}, nil)
		lineRepo.EXPECT().UpdateCompletion(gomock.Any(), 1241, "opname-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, _ string, u entities.PartialUpdate) (entities.LineItem, error) {
				if *u.Purchasing != 100 {
					t.Fatalf("expected 150 clamped to 100, got %v", *u.Purchasing)
				}
				if *u.ProjectBound != 0 {
					t.Fatalf("expected -5 clamped to 0, got %v", *u.ProjectBound)
				}
				return entities.LineItem{Key: u.LineKey, Completion: entities.Completion{Purchasing: 100}}, nil
			},
		)
		assessmentRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Assessment) (entities.Assessment, error) {
				if !a.AggregatesDirty {
					t.Fatal("batch update must flag aggregates dirty")
				}
				return a, nil
			},
		)

		lines, err := uc.CommitUpdates(context.Background(), testTenant, "opname-1", []entities.PartialUpdate{
			{LineKey: "r-1", Purchasing: ptr(150), ProjectBound: ptr(-5)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lines) != 1 {
			t.Fatalf("expected 1 updated line, got %d", len(lines))
		}
	})

	t.Run("merges duplicate line updates last write wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		lineRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewLineItemUseCase(lineRepo, assessmentRepo, nil)

		assessmentRepo.EXPECT().GetByKey(gomock.Any(), 1241, "opname-1").Return(conceptAssessment(), nil)
		lineRepo.EXPECT().ListByAssessment(gomock.Any(), 1241, "opname-1").Return([]entities.LineItem{{Key: "r-1"}}, nil)
		lineRepo.EXPECT().UpdateCompletion(gomock.Any(), 1241, "opname-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, _ string, u entities.PartialUpdate) (entities.LineItem, error) {
				if u.Purchasing == nil || *u.Purchasing != 75 {
					t.Fatalf("expected last write 75, got %+v", u.Purchasing)
				}
				if u.AssemblyLabor == nil || *u.AssemblyLabor != 20 {
					t.Fatalf("expected merged montage 20, got %+v", u.AssemblyLabor)
				}
				return entities.LineItem{Key: u.LineKey}, nil
			},
		)
		assessmentRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Assessment) (entities.Assessment, error) { return a, nil },
		)

		_, err := uc.CommitUpdates(context.Background(), testTenant, "opname-1", []entities.PartialUpdate{
			{LineKey: "r-1", Purchasing: ptr(50)},
			{LineKey: "r-1", AssemblyLabor: ptr(20)},
			{LineKey: "r-1", Purchasing: ptr(75)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown line rejects the whole batch before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		lineRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewLineItemUseCase(lineRepo, assessmentRepo, nil)

		assessmentRepo.EXPECT().GetByKey(gomock.Any(), 1241, "opname-1").Return(conceptAssessment(), nil)
		lineRepo.EXPECT().ListByAssessment(gomock.Any(), 1241, "opname-1").Return([]entities.LineItem{{Key: "r-1"}}, nil)
		// No UpdateCompletion expectation: r-1 must not be written when a
		// later key in the same batch is unknown.

		_, err := uc.CommitUpdates(context.Background(), testTenant, "opname-1", []entities.PartialUpdate{
			{LineKey: "r-1", Purchasing: ptr(40)},
			{LineKey: "ghost", Purchasing: ptr(10)},
		})
		if !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})

	t.Run("line deleted between validation and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		lineRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewLineItemUseCase(lineRepo, assessmentRepo, nil)

		assessmentRepo.EXPECT().GetByKey(gomock.Any(), 1241, "opname-1").Return(conceptAssessment(), nil)
		lineRepo.EXPECT().ListByAssessment(gomock.Any(), 1241, "opname-1").Return([]entities.LineItem{{Key: "r-1"}}, nil)
		lineRepo.EXPECT().UpdateCompletion(gomock.Any(), 1241, "opname-1", gomock.Any()).Return(entities.LineItem{}, nil)

		_, err := uc.CommitUpdates(context.Background(), testTenant, "opname-1", []entities.PartialUpdate{
			{LineKey: "r-1", Purchasing: ptr(10)},
		})
		if !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})
}
