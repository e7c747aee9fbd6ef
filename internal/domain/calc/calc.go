// Package calc implements the aggregation engine: the full recalculation of
// an assessment's derived financial block from its current line items.
//
// Pipeline:
//  1. Sum budgeted and booked cost/hours per category.
//  2. TMB = SUM(percentage gereed * budget / 100) per category.
//  3. Verschil huidige stand = booked - TMB.
//  4. Gemiddeld PG = budget-weighted average completion per category.
//  5. Verschil einde project = projected end-of-project variance.
//  6. Onder/bovengrens = TMB-based bounds.
//
// Every step is a pure function of the inputs; recalculating twice with the
// same lines yields identical aggregates, and zero lines yield all zeros.
package calc

import (
	"math"

	"projectvoortgang/internal/domain/entities"
)

// Bounds margin around TMB. The source business rules hint this may become
// configurable per tenant; until then it is the fixed 10% the authorization
// screens have always shown.
const boundsMargin = 0.10

// Recalculate replaces a.Aggregates with values derived from lines.
//
// Only the bestekparagraaf partition feeds the totals: deelproject lines
// re-slice the same warehouse rows at a different grouping and would double
// count cost if summed alongside.
func Recalculate(a *entities.Assessment, lines []entities.LineItem) {
	scope := costScope(lines)

	var agg entities.AssessmentAggregates
	for _, li := range scope {
		agg.BudgetedCost = agg.BudgetedCost.Add(li.BudgetedCost)
		agg.BudgetedHours = agg.BudgetedHours.Add(li.BudgetedHours)
		agg.BookedCost = agg.BookedCost.Add(li.BookedCost)
		agg.BookedHours = agg.BookedHours.Add(li.BookedHours)
		agg.HistoricalRequests = agg.HistoricalRequests.Add(li.HistoricalRequests)
		agg.HistoricalRequestsHours = agg.HistoricalRequestsHours.Add(li.HistoricalRequestsHours)
	}

	agg.AllowedSpend, agg.AllowedHours = allowedSpend(scope)
	agg.VarianceToDate = varianceToDate(agg.BookedCost, agg.AllowedSpend)
	agg.VarianceToDateHours = varianceToDateHours(agg.BookedHours, agg.AllowedHours)
	agg.AvgCompletion, agg.AvgCompletionTotal = averageCompletion(scope)
	agg.VarianceAtCompletion = varianceAtCompletion(agg)
	agg.VarianceAtCompletionHours = varianceAtCompletionHours(agg)
	agg.LowerBound, agg.LowerBoundHours = bound(agg, 1-boundsMargin)
	agg.UpperBound, agg.UpperBoundHours = bound(agg, 1+boundsMargin)

	a.Aggregates = agg
}

func costScope(lines []entities.LineItem) []entities.LineItem {
	scope := make([]entities.LineItem, 0, len(lines))
	for _, li := range lines {
		if !li.SubProject {
			scope = append(scope, li)
		}
	}
	return scope
}

// allowedSpend computes TMB ("te mogen besteden"): the spend justified by
// the reported physical progress, per category and for labor hours.
func allowedSpend(lines []entities.LineItem) (entities.CategoryAmounts, entities.LaborHours) {
	var c entities.CategoryAmounts
	var h entities.LaborHours
	for _, li := range lines {
		c.Purchasing += li.Completion.Purchasing / 100 * li.BudgetedCost.Purchasing
		c.AssemblyLabor += li.Completion.AssemblyLabor / 100 * li.BudgetedCost.AssemblyLabor
		c.ProjectBound += li.Completion.ProjectBound / 100 * li.BudgetedCost.ProjectBound
		h.Assembly += li.Completion.AssemblyLabor / 100 * li.BudgetedHours.Assembly
		h.ProjectBound += li.Completion.ProjectBound / 100 * li.BudgetedHours.ProjectBound
	}
	return roundAmounts(c), roundHours(h)
}

func varianceToDate(booked, tmb entities.CategoryAmounts) entities.CategoryAmounts {
	return roundAmounts(entities.CategoryAmounts{
		Purchasing:    booked.Purchasing - tmb.Purchasing,
		AssemblyLabor: booked.AssemblyLabor - tmb.AssemblyLabor,
		ProjectBound:  booked.ProjectBound - tmb.ProjectBound,
	})
}

func varianceToDateHours(booked, tmb entities.LaborHours) entities.LaborHours {
	return roundHours(entities.LaborHours{
		Assembly:     booked.Assembly - tmb.Assembly,
		ProjectBound: booked.ProjectBound - tmb.ProjectBound,
	})
}

// averageCompletion weights each line's percentage by its budgeted cost, per
// category, plus one overall figure across the three categories combined.
// Zero total budget yields zero, not NaN.
func averageCompletion(lines []entities.LineItem) (entities.CategoryAmounts, float64) {
	var weighted, budget entities.CategoryAmounts
	for _, li := range lines {
		weighted.Purchasing += li.Completion.Purchasing * li.BudgetedCost.Purchasing
		weighted.AssemblyLabor += li.Completion.AssemblyLabor * li.BudgetedCost.AssemblyLabor
		weighted.ProjectBound += li.Completion.ProjectBound * li.BudgetedCost.ProjectBound
		budget = budget.Add(li.BudgetedCost)
	}

	avg := entities.CategoryAmounts{
		Purchasing:    safeDiv(weighted.Purchasing, budget.Purchasing),
		AssemblyLabor: safeDiv(weighted.AssemblyLabor, budget.AssemblyLabor),
		ProjectBound:  safeDiv(weighted.ProjectBound, budget.ProjectBound),
	}
	totalWeighted := weighted.Purchasing + weighted.AssemblyLabor + weighted.ProjectBound
	totalBudget := budget.Purchasing + budget.AssemblyLabor + budget.ProjectBound
	return roundAmounts(avg), round2(safeDiv(totalWeighted, totalBudget))
}

// varianceAtCompletion projects the end-of-project variance per category: at
// the current pace, projected total = booked / (avg PG / 100); the variance
// is that projection minus budget minus historical requests. Zero completion
// projects nothing yet.
func varianceAtCompletion(agg entities.AssessmentAggregates) entities.CategoryAmounts {
	return entities.CategoryAmounts{
		Purchasing:    projectVariance(agg.AvgCompletion.Purchasing, agg.BookedCost.Purchasing, agg.BudgetedCost.Purchasing, agg.HistoricalRequests.Purchasing),
		AssemblyLabor: projectVariance(agg.AvgCompletion.AssemblyLabor, agg.BookedCost.AssemblyLabor, agg.BudgetedCost.AssemblyLabor, agg.HistoricalRequests.AssemblyLabor),
		ProjectBound:  projectVariance(agg.AvgCompletion.ProjectBound, agg.BookedCost.ProjectBound, agg.BudgetedCost.ProjectBound, agg.HistoricalRequests.ProjectBound),
	}
}

func varianceAtCompletionHours(agg entities.AssessmentAggregates) entities.LaborHours {
	return entities.LaborHours{
		Assembly:     projectVariance(agg.AvgCompletion.AssemblyLabor, agg.BookedHours.Assembly, agg.BudgetedHours.Assembly, agg.HistoricalRequestsHours.Assembly),
		ProjectBound: projectVariance(agg.AvgCompletion.ProjectBound, agg.BookedHours.ProjectBound, agg.BudgetedHours.ProjectBound, agg.HistoricalRequestsHours.ProjectBound),
	}
}

func projectVariance(pg, booked, budget, requests float64) float64 {
	if pg <= 0 {
		return 0
	}
	projected := booked / (pg / 100)
	return round2(projected - budget - requests)
}

func bound(agg entities.AssessmentAggregates, factor float64) (entities.CategoryAmounts, entities.LaborHours) {
	c := entities.CategoryAmounts{
		Purchasing:    round2(agg.AllowedSpend.Purchasing * factor),
		AssemblyLabor: round2(agg.AllowedSpend.AssemblyLabor * factor),
		ProjectBound:  round2(agg.AllowedSpend.ProjectBound * factor),
	}
	h := entities.LaborHours{
		Assembly:     round2(agg.AllowedHours.Assembly * factor),
		ProjectBound: round2(agg.AllowedHours.ProjectBound * factor),
	}
	return c, h
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundAmounts(c entities.CategoryAmounts) entities.CategoryAmounts {
	return entities.CategoryAmounts{
		Purchasing:    round2(c.Purchasing),
		AssemblyLabor: round2(c.AssemblyLabor),
		ProjectBound:  round2(c.ProjectBound),
	}
}

func roundHours(h entities.LaborHours) entities.LaborHours {
	return entities.LaborHours{
		Assembly:     round2(h.Assembly),
		ProjectBound: round2(h.ProjectBound),
	}
}
