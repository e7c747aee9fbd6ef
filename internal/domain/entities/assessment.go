package entities

import "time"

// AssessmentStatus represents the authorization lifecycle of a projectopname.
//
// Domain notes:
//   - An assessment is created in Concept and is the only state in which its
//     line items may be edited, re-populated, or the assessment deleted.
//   - Autoriseren is a one-way gate: there is no transition back to Concept.
type AssessmentStatus string

const (
	AssessmentStatusConcept        AssessmentStatus = "Concept"
	AssessmentStatusTerAutorisatie AssessmentStatus = "Ter autorisatie"
	AssessmentStatusGeautoriseerd  AssessmentStatus = "Geautoriseerd"
)

// BudgetCostBasis selects which calculated price set counts as budget.
type BudgetCostBasis string

const (
	BudgetBasisKostprijs     BudgetCostBasis = "Kostprijs"
	BudgetBasisVerrekenprijs BudgetCostBasis = "Verrekenprijs"
)

// BookedCostBasis selects which realized price set counts as booked cost.
type BookedCostBasis string

const (
	BookedBasisKostprijsDefinitief               BookedCostBasis = "Kostprijs (definitief)"
	BookedBasisVerrekenprijsDefinitief           BookedCostBasis = "Verrekenprijs (definitief)"
	BookedBasisVerrekenprijsDefinitiefOnverwerkt BookedCostBasis = "Verrekenprijs (definitief + onverwerkt)"
)

// CategoryAmounts holds one figure per cost category: inkoop (purchasing),
// arbeid montage (assembly labor) and arbeid projectgebonden (project-bound
// labor). The three categories are tracked independently everywhere.
type CategoryAmounts struct {
	Purchasing    float64 `json:"inkoop" dynamodbav:"inkoop"`
	AssemblyLabor float64 `json:"montage" dynamodbav:"montage"`
	ProjectBound  float64 `json:"projectgebonden" dynamodbav:"projectgebonden"`
}

// Add returns the component-wise sum.
func (a CategoryAmounts) Add(b CategoryAmounts) CategoryAmounts {
	return CategoryAmounts{
		Purchasing:    a.Purchasing + b.Purchasing,
		AssemblyLabor: a.AssemblyLabor + b.AssemblyLabor,
		ProjectBound:  a.ProjectBound + b.ProjectBound,
	}
}

// LaborHours holds an hours figure for the two labor categories. Purchasing
// does not carry hours.
type LaborHours struct {
	Assembly     float64 `json:"montage_uren" dynamodbav:"montage_uren"`
	ProjectBound float64 `json:"projectgebonden_uren" dynamodbav:"projectgebonden_uren"`
}

// Add returns the component-wise sum.
func (h LaborHours) Add(o LaborHours) LaborHours {
	return LaborHours{
		Assembly:     h.Assembly + o.Assembly,
		ProjectBound: h.ProjectBound + o.ProjectBound,
	}
}

// AssessmentAggregates is the derived financial block produced exclusively by
// the aggregation engine. It is a pure function of the assessment's line
// items plus its cost-basis settings and must never be hand-edited.
type AssessmentAggregates struct {
	BudgetedCost  CategoryAmounts `json:"calculatie" dynamodbav:"calculatie"`
	BudgetedHours LaborHours      `json:"calculatie_uren" dynamodbav:"calculatie_uren"`
	BookedCost    CategoryAmounts `json:"geboekt" dynamodbav:"geboekt"`
	BookedHours   LaborHours      `json:"geboekt_uren" dynamodbav:"geboekt_uren"`

	// TMB ("te mogen besteden"): completion-weighted allowed spend to date.
	AllowedSpend CategoryAmounts `json:"tmb" dynamodbav:"tmb"`
	AllowedHours LaborHours      `json:"tmb_uren" dynamodbav:"tmb_uren"`

	VarianceToDate      CategoryAmounts `json:"verschil_huidige_stand" dynamodbav:"verschil_huidige_stand"`
	VarianceToDateHours LaborHours      `json:"verschil_huidige_stand_uren" dynamodbav:"verschil_huidige_stand_uren"`

	AvgCompletion      CategoryAmounts `json:"gemiddeld_pg" dynamodbav:"gemiddeld_pg"`
	AvgCompletionTotal float64         `json:"gemiddeld_pg_totaal" dynamodbav:"gemiddeld_pg_totaal"`

	VarianceAtCompletion      CategoryAmounts `json:"verschil_einde_project" dynamodbav:"verschil_einde_project"`
	VarianceAtCompletionHours LaborHours      `json:"verschil_einde_project_uren" dynamodbav:"verschil_einde_project_uren"`

	LowerBound      CategoryAmounts `json:"ondergrens" dynamodbav:"ondergrens"`
	LowerBoundHours LaborHours      `json:"ondergrens_uren" dynamodbav:"ondergrens_uren"`
	UpperBound      CategoryAmounts `json:"bovengrens" dynamodbav:"bovengrens"`
	UpperBoundHours LaborHours      `json:"bovengrens_uren" dynamodbav:"bovengrens_uren"`

	HistoricalRequests      CategoryAmounts `json:"historische_verzoeken" dynamodbav:"historische_verzoeken"`
	HistoricalRequestsHours LaborHours      `json:"historische_verzoeken_uren" dynamodbav:"historische_verzoeken_uren"`
}

// Assessment is one dated progress snapshot (projectopname) of a main
// project's cost-to-complete, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: opname_key
//   - GSI1 (klantnummer-index): klantnummer
//
// Scope parameters (cost bases, grouping level, booking period) are fixed at
// creation; the booking period is copied from the source project and not
// re-synced afterward.
type Assessment struct {
	Key                  string `json:"opname_key"`
	Customer             int    `json:"klantnummer"`
	MainProjectKey       int    `json:"hoofdproject_key"`
	MainProjectName      string `json:"hoofdproject"`
	HighestSelectedLevel int    `json:"hoogst_geselecteerd_projectniveau"`

	StartBookingDate *time.Time `json:"start_boekdatum"`
	EndBookingDate   *time.Time `json:"einde_boekdatum"`

	BudgetCostBasis        BudgetCostBasis `json:"grondslag_calculatie_kosten"`
	BookedCostBasis        BookedCostBasis `json:"grondslag_geboekte_kosten"`
	ParagraphGroupingLevel int             `json:"groepering_paragraafniveau"`

	Aggregates AssessmentAggregates `json:"aggregaten"`

	// AggregatesDirty is raised by populate and batch updates and cleared by
	// a recompute; a dirty assessment serves stale aggregates until the
	// caller explicitly recomputes.
	AggregatesDirty bool `json:"aggregaten_verouderd"`

	Status       AssessmentStatus `json:"autorisatie_status"`
	Saved        bool             `json:"opgeslagen"`
	Remark       string           `json:"opmerking"`
	AuthorizedBy string           `json:"autoriseerder,omitempty"`
	AuthorizedAt *time.Time       `json:"autorisatie_datum,omitempty"`

	CreatedAt time.Time `json:"aanmaakdatum"`
	CreatedBy string    `json:"aanmaker"`
	UpdatedAt time.Time `json:"wijzigdatum"`
	UpdatedBy string    `json:"wijziger"`
}

// Editable reports whether line items may still be mutated.
func (a Assessment) Editable() bool {
	return a.Status == AssessmentStatusConcept
}

// Deletable reports whether the assessment may be physically deleted.
// Finalized assessments are immutable and never deleted.
func (a Assessment) Deletable() bool {
	return a.Status == AssessmentStatusConcept
}
