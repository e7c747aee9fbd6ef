package calc

import (
	"math"
	"reflect"
	"testing"

	"projectvoortgang/internal/domain/entities"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func testLines() []entities.LineItem {
	return []entities.LineItem{
		{
			Key:                     "r-1",
			ParagraphKey:            3001,
			BudgetedCost:            entities.CategoryAmounts{Purchasing: 10000, AssemblyLabor: 5000, ProjectBound: 2000},
			BudgetedHours:           entities.LaborHours{Assembly: 100, ProjectBound: 40},
			BookedCost:              entities.CategoryAmounts{Purchasing: 4000, AssemblyLabor: 2000, ProjectBound: 500},
			BookedHours:             entities.LaborHours{Assembly: 45, ProjectBound: 12},
			HistoricalRequests:      entities.CategoryAmounts{Purchasing: 1000},
			Completion:              entities.Completion{Purchasing: 50, AssemblyLabor: 40, ProjectBound: 25},
			HistoricalRequestsHours: entities.LaborHours{},
		},
		{
			Key:           "r-2",
			ParagraphKey:  3002,
			BudgetedCost:  entities.CategoryAmounts{Purchasing: 20000, AssemblyLabor: 10000, ProjectBound: 3000},
			BudgetedHours: entities.LaborHours{Assembly: 200, ProjectBound: 60},
			BookedCost:    entities.CategoryAmounts{Purchasing: 5000, AssemblyLabor: 3000, ProjectBound: 900},
			BookedHours:   entities.LaborHours{Assembly: 70, ProjectBound: 20},
			Completion:    entities.Completion{Purchasing: 25, AssemblyLabor: 30, ProjectBound: 0},
		},
	}
}

func TestRecalculate_ZeroLines(t *testing.T) {
	a := entities.Assessment{Key: "opname-1"}
	Recalculate(&a, nil)

	if !reflect.DeepEqual(a.Aggregates, entities.AssessmentAggregates{}) {
		t.Fatalf("expected all-zero aggregates, got %+v", a.Aggregates)
	}
}

func TestRecalculate_Idempotent(t *testing.T) {
	lines := testLines()

	a := entities.Assessment{Key: "opname-1"}
	Recalculate(&a, lines)
	first := a.Aggregates

	Recalculate(&a, lines)
	if !reflect.DeepEqual(a.Aggregates, first) {
		t.Fatalf("second run diverged: %+v vs %+v", a.Aggregates, first)
	}
}

func TestRecalculate_IgnoresSubProjectLines(t *testing.T) {
	lines := testLines()

	a := entities.Assessment{Key: "opname-1"}
	Recalculate(&a, lines)
	expected := a.Aggregates

	// A deelproject line re-slices the same warehouse rows and must never
	// feed the totals.
	withSub := append(testLines(), entities.LineItem{
		Key:          "r-sub",
		SubProject:   true,
		ProjectKey:   2001,
		BudgetedCost: entities.CategoryAmounts{Purchasing: 99999, AssemblyLabor: 99999, ProjectBound: 99999},
		BookedCost:   entities.CategoryAmounts{Purchasing: 99999, AssemblyLabor: 99999, ProjectBound: 99999},
		Completion:   entities.Completion{Purchasing: 100, AssemblyLabor: 100, ProjectBound: 100},
	})
	Recalculate(&a, withSub)

	if !reflect.DeepEqual(a.Aggregates, expected) {
		t.Fatalf("deelproject line leaked into aggregates: %+v vs %+v", a.Aggregates, expected)
	}
}

func TestRecalculate_Totals(t *testing.T) {
	a := entities.Assessment{Key: "opname-1"}
	Recalculate(&a, testLines())
	agg := a.Aggregates

	if agg.BudgetedCost != (entities.CategoryAmounts{Purchasing: 30000, AssemblyLabor: 15000, ProjectBound: 5000}) {
		t.Fatalf("unexpected budgeted cost %+v", agg.BudgetedCost)
	}
	if agg.BookedCost != (entities.CategoryAmounts{Purchasing: 9000, AssemblyLabor: 5000, ProjectBound: 1400}) {
		t.Fatalf("unexpected booked cost %+v", agg.BookedCost)
	}
	if agg.BudgetedHours != (entities.LaborHours{Assembly: 300, ProjectBound: 100}) {
		t.Fatalf("unexpected budgeted hours %+v", agg.BudgetedHours)
	}
	if agg.BookedHours != (entities.LaborHours{Assembly: 115, ProjectBound: 32}) {
		t.Fatalf("unexpected booked hours %+v", agg.BookedHours)
	}
	if agg.HistoricalRequests != (entities.CategoryAmounts{Purchasing: 1000}) {
		t.Fatalf("unexpected historical requests %+v", agg.HistoricalRequests)
	}
}

func TestRecalculate_AllowedSpend(t *testing.T) {
	a := entities.Assessment{Key: "opname-1"}
	Recalculate(&a, testLines())
	agg := a.Aggregates

	// 50%*10000 + 25%*20000 etc.
	if agg.AllowedSpend != (entities.CategoryAmounts{Purchasing: 10000, AssemblyLabor: 5000, ProjectBound: 500}) {
		t.Fatalf("unexpected TMB %+v", agg.AllowedSpend)
	}
	if agg.AllowedHours != (entities.LaborHours{Assembly: 100, ProjectBound: 10}) {
		t.Fatalf("unexpected TMB hours %+v", agg.AllowedHours)
	}

	if agg.VarianceToDate != (entities.CategoryAmounts{Purchasing: -1000, AssemblyLabor: 0, ProjectBound: 900}) {
		t.Fatalf("unexpected variance to date %+v", agg.VarianceToDate)
	}
	if agg.VarianceToDateHours != (entities.LaborHours{Assembly: 15, ProjectBound: 22}) {
		t.Fatalf("unexpected variance to date hours %+v", agg.VarianceToDateHours)
	}
}

func TestRecalculate_AverageCompletion(t *testing.T) {
	a := entities.Assessment{Key: "opname-1"}
	Recalculate(&a, testLines())
	agg := a.Aggregates

	if !almostEqual(agg.AvgCompletion.Purchasing, 33.33) {
		t.Fatalf("unexpected avg PG inkoop %v", agg.AvgCompletion.Purchasing)
	}
	if !almostEqual(agg.AvgCompletion.AssemblyLabor, 33.33) {
		t.Fatalf("unexpected avg PG montage %v", agg.AvgCompletion.AssemblyLabor)
	}
	if !almostEqual(agg.AvgCompletion.ProjectBound, 10) {
		t.Fatalf("unexpected avg PG projectgebonden %v", agg.AvgCompletion.ProjectBound)
	}
	if !almostEqual(agg.AvgCompletionTotal, 31) {
		t.Fatalf("unexpected avg PG totaal %v", agg.AvgCompletionTotal)
	}
}

func TestRecalculate_VarianceAtCompletion(t *testing.T) {
	a := entities.Assessment{Key: "opname-1"}
	Recalculate(&a, testLines())
	agg := a.Aggregates

	// projected = booked / (avg PG / 100), variance = projected - budget - requests
	if !almostEqual(agg.VarianceAtCompletion.Purchasing, -3997.3) {
		t.Fatalf("unexpected end variance inkoop %v", agg.VarianceAtCompletion.Purchasing)
	}
	if !almostEqual(agg.VarianceAtCompletion.AssemblyLabor, 1.5) {
		t.Fatalf("unexpected end variance montage %v", agg.VarianceAtCompletion.AssemblyLabor)
	}
	if !almostEqual(agg.VarianceAtCompletion.ProjectBound, 9000) {
		t.Fatalf("unexpected end variance projectgebonden %v", agg.VarianceAtCompletion.ProjectBound)
	}
	if !almostEqual(agg.VarianceAtCompletionHours.Assembly, 45.03) {
		t.Fatalf("unexpected end variance montage uren %v", agg.VarianceAtCompletionHours.Assembly)
	}
	if !almostEqual(agg.VarianceAtCompletionHours.ProjectBound, 220) {
		t.Fatalf("unexpected end variance projectgebonden uren %v", agg.VarianceAtCompletionHours.ProjectBound)
	}
}

func TestRecalculate_Bounds(t *testing.T) {
	a := entities.Assessment{Key: "opname-1"}
	Recalculate(&a, testLines())
	agg := a.Aggregates

	if agg.LowerBound != (entities.CategoryAmounts{Purchasing: 9000, AssemblyLabor: 4500, ProjectBound: 450}) {
		t.Fatalf("unexpected ondergrens %+v", agg.LowerBound)
	}
	if agg.UpperBound != (entities.CategoryAmounts{Purchasing: 11000, AssemblyLabor: 5500, ProjectBound: 550}) {
		t.Fatalf("unexpected bovengrens %+v", agg.UpperBound)
	}
	if agg.LowerBoundHours != (entities.LaborHours{Assembly: 90, ProjectBound: 9}) {
		t.Fatalf("unexpected ondergrens uren %+v", agg.LowerBoundHours)
	}
	if agg.UpperBoundHours != (entities.LaborHours{Assembly: 110, ProjectBound: 11}) {
		t.Fatalf("unexpected bovengrens uren %+v", agg.UpperBoundHours)
	}
}

func TestRecalculate_ZeroBudgetNoNaN(t *testing.T) {
	lines := []entities.LineItem{
		{
			Key:        "r-1",
			Completion: entities.Completion{Purchasing: 50, AssemblyLabor: 50, ProjectBound: 50},
			BookedCost: entities.CategoryAmounts{Purchasing: 1000},
		},
	}

	a := entities.Assessment{Key: "opname-1"}
	Recalculate(&a, lines)
	agg := a.Aggregates

	if agg.AvgCompletion != (entities.CategoryAmounts{}) || agg.AvgCompletionTotal != 0 {
		t.Fatalf("zero budget must yield zero avg PG, got %+v total %v", agg.AvgCompletion, agg.AvgCompletionTotal)
	}
	// pg = 0 means no projection yet.
	if agg.VarianceAtCompletion != (entities.CategoryAmounts{}) {
		t.Fatalf("zero completion must project nothing, got %+v", agg.VarianceAtCompletion)
	}
}

func TestRecalculate_CompletionMonotonicity(t *testing.T) {
	base := entities.Assessment{Key: "opname-1"}
	Recalculate(&base, testLines())

	// Raising one line's inkoop percentage with all cost figures fixed must
	// raise the toegestane stand and push the running variance down, and must
	// leave the other categories untouched.
	for _, delta := range []float64{5, 10, 25, 50} {
		lines := testLines()
		lines[0].Completion.Purchasing += delta

		a := entities.Assessment{Key: "opname-1"}
		Recalculate(&a, lines)

		if a.Aggregates.AllowedSpend.Purchasing <= base.Aggregates.AllowedSpend.Purchasing {
			t.Fatalf("delta %v: TMB inkoop did not rise: %v vs %v",
				delta, a.Aggregates.AllowedSpend.Purchasing, base.Aggregates.AllowedSpend.Purchasing)
		}
		if a.Aggregates.VarianceToDate.Purchasing >= base.Aggregates.VarianceToDate.Purchasing {
			t.Fatalf("delta %v: variance inkoop did not fall: %v vs %v",
				delta, a.Aggregates.VarianceToDate.Purchasing, base.Aggregates.VarianceToDate.Purchasing)
		}
		if a.Aggregates.AllowedSpend.AssemblyLabor != base.Aggregates.AllowedSpend.AssemblyLabor ||
			a.Aggregates.AllowedSpend.ProjectBound != base.Aggregates.AllowedSpend.ProjectBound {
			t.Fatalf("delta %v: other categories moved: %+v", delta, a.Aggregates.AllowedSpend)
		}
		if a.Aggregates.BookedCost != base.Aggregates.BookedCost {
			t.Fatalf("delta %v: booked totals moved: %+v", delta, a.Aggregates.BookedCost)
		}
	}
}
