package warehouse

import (
	"context"
	"os"
	"strings"
	"time"

	"projectvoortgang/internal/domain/entities"
	"projectvoortgang/internal/usecase/interfaces"
)

// MockWarehouse serves a small fixed dataset for development without VPN
// access to a customer DWH. Enabled via WAREHOUSE_MOCK.
type MockWarehouse struct{}

var _ interfaces.IWarehouseGateway = (*MockWarehouse)(nil)

func NewMockWarehouse() *MockWarehouse {
	return &MockWarehouse{}
}

func isWarehouseMockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("WAREHOUSE_MOCK"))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func mockDate(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}

func (m *MockWarehouse) ListMainProjects(ctx context.Context, customer int) ([]entities.ProjectRef, error) {
	return []entities.ProjectRef{
		{
			Key:              1001,
			Name:             "Nieuwbouw Kantoor A",
			Phase:            "Uitvoering",
			Level:            1,
			StartBookingDate: mockDate("2025-01-01"),
			EndBookingDate:   mockDate("2026-12-31"),
		},
		{
			Key:              1002,
			Name:             "Renovatie Gebouw B",
			Phase:            "Voorbereiding",
			Level:            1,
			StartBookingDate: mockDate("2025-06-01"),
			EndBookingDate:   mockDate("2026-06-30"),
		},
	}, nil
}

func (m *MockWarehouse) ListSubProjects(ctx context.Context, customer int, mainProjectKey int) ([]entities.ProjectRef, error) {
	return []entities.ProjectRef{
		{Key: 2001, Name: "Elektra installatie", Phase: "Uitvoering", Level: 2, MainProjectKey: mainProjectKey},
		{Key: 2002, Name: "W-installatie", Phase: "Uitvoering", Level: 2, MainProjectKey: mainProjectKey},
	}, nil
}

func (m *MockWarehouse) ListParagraphs(ctx context.Context, customer int, projectKey int, level int) ([]entities.ParagraphRef, error) {
	return []entities.ParagraphRef{
		{Key: 3001, Name: "61 - Elektrische installatie", Level: level},
		{Key: 3002, Name: "62 - Communicatie-installatie", Level: level},
		{Key: 3003, Name: "63 - Transportinstallatie", Level: level},
	}, nil
}

func (m *MockWarehouse) GetProjectData(ctx context.Context, customer int, mainProjectKey int, start, end *time.Time) ([]entities.ProjectDataRow, error) {
	return []entities.ProjectDataRow{
		{
			ProjectKey:   mainProjectKey,
			ProjectName:  "Nieuwbouw Kantoor A",
			ProjectLevel: 1,
			ProjectPhase: "Uitvoering",

			ParagraphKey:   3001,
			ParagraphName:  "61 - Elektrische installatie",
			ParagraphLevel: 1,

			BudgetCostPrice:     entities.CategoryAmounts{Purchasing: 50000, AssemblyLabor: 30000, ProjectBound: 15000},
			BudgetTransferPrice: entities.CategoryAmounts{Purchasing: 55000, AssemblyLabor: 35000, ProjectBound: 18000},
			BudgetedHours:       entities.LaborHours{Assembly: 600, ProjectBound: 200},

			FinalCostPrice:           entities.CategoryAmounts{Purchasing: 25000, AssemblyLabor: 12000, ProjectBound: 8000},
			FinalTransferPrice:       entities.CategoryAmounts{Purchasing: 27500, AssemblyLabor: 14000, ProjectBound: 9500},
			UnprocessedTransferPrice: entities.CategoryAmounts{Purchasing: 2000, AssemblyLabor: 1500, ProjectBound: 500},

			FinalHours:       entities.LaborHours{Assembly: 250, ProjectBound: 90},
			UnprocessedHours: entities.LaborHours{Assembly: 30, ProjectBound: 10},

			HistoricalRequests:      entities.CategoryAmounts{Purchasing: 5000, AssemblyLabor: 3000, ProjectBound: 1000},
			HistoricalRequestsHours: entities.LaborHours{Assembly: 50, ProjectBound: 20},
		},
		{
			ProjectKey:   mainProjectKey,
			ProjectName:  "Nieuwbouw Kantoor A",
			ProjectLevel: 1,
			ProjectPhase: "Uitvoering",

			ParagraphKey:   3002,
			ParagraphName:  "62 - Communicatie-installatie",
			ParagraphLevel: 1,

			BudgetCostPrice:     entities.CategoryAmounts{Purchasing: 20000, AssemblyLabor: 15000, ProjectBound: 8000},
			BudgetTransferPrice: entities.CategoryAmounts{Purchasing: 22000, AssemblyLabor: 17000, ProjectBound: 9500},
			BudgetedHours:       entities.LaborHours{Assembly: 300, ProjectBound: 100},

			FinalCostPrice:           entities.CategoryAmounts{Purchasing: 18000, AssemblyLabor: 10000, ProjectBound: 5000},
			FinalTransferPrice:       entities.CategoryAmounts{Purchasing: 19800, AssemblyLabor: 11500, ProjectBound: 6000},
			UnprocessedTransferPrice: entities.CategoryAmounts{Purchasing: 1000, AssemblyLabor: 800, ProjectBound: 300},

			FinalHours:       entities.LaborHours{Assembly: 200, ProjectBound: 60},
			UnprocessedHours: entities.LaborHours{Assembly: 15, ProjectBound: 5},

			HistoricalRequests:      entities.CategoryAmounts{Purchasing: 2000, AssemblyLabor: 1500, ProjectBound: 500},
			HistoricalRequestsHours: entities.LaborHours{Assembly: 25, ProjectBound: 10},
		},
	}, nil
}
