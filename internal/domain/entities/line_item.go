package entities

// Completion carries the user-entered percentage gereed per cost category.
// Values are always within [0,100]; out-of-range input is clamped at the
// point of entry, never rejected.
type Completion struct {
	Purchasing    float64 `json:"percentage_gereed_inkoop" dynamodbav:"percentage_gereed_inkoop"`
	AssemblyLabor float64 `json:"percentage_gereed_arbeid_montage" dynamodbav:"percentage_gereed_arbeid_montage"`
	ProjectBound  float64 `json:"percentage_gereed_arbeid_projectgebonden" dynamodbav:"percentage_gereed_arbeid_projectgebonden"`
}

// PriorCompletion holds the percentages recorded in the immediately
// preceding assessment for the same scope. Nil means no prior assessment
// covered that scope.
type PriorCompletion struct {
	Purchasing    *float64 `json:"laatste_pg_inkoop" dynamodbav:"laatste_pg_inkoop,omitempty"`
	AssemblyLabor *float64 `json:"laatste_pg_montage" dynamodbav:"laatste_pg_montage,omitempty"`
	ProjectBound  *float64 `json:"laatste_pg_projectgebonden" dynamodbav:"laatste_pg_projectgebonden,omitempty"`
}

// LineItem is one budget/actuals row (projectopnameregel) within an
// assessment, scoped either to a bestekparagraaf or to a deelproject. The
// two partitions are edited on separate screens but share this shape.
//
// Storage model (DynamoDB):
//   - PK: regel_key
//   - GSI1 (opname_key-index): opname_key
type LineItem struct {
	Key           string `json:"regel_key"`
	AssessmentKey string `json:"opname_key"`
	Customer      int    `json:"klantnummer"`

	ProjectKey   int    `json:"project_key"`
	ProjectName  string `json:"project"`
	ProjectLevel int    `json:"projectniveau"`
	ProjectPhase string `json:"projectfase"`

	// SubProject distinguishes deelproject lines from bestekparagraaf lines;
	// a line belongs to exactly one of the two partitions.
	SubProject bool `json:"deelproject"`

	ParagraphKey   int    `json:"bestekparagraaf_key"`
	ParagraphName  string `json:"bestekparagraaf"`
	ParagraphLevel int    `json:"bestekparagraafniveau"`

	BudgetedCost  CategoryAmounts `json:"calculatie_kosten"`
	BudgetedHours LaborHours      `json:"calculatie_uren"`
	BookedCost    CategoryAmounts `json:"geboekte_kosten"`
	BookedHours   LaborHours      `json:"geboekte_uren"`

	HistoricalRequests      CategoryAmounts `json:"verzoeken"`
	HistoricalRequestsHours LaborHours      `json:"verzoeken_uren"`

	Prior      PriorCompletion `json:"laatste_pg"`
	Completion Completion      `json:"percentage_gereed"`
}

// PartialUpdate is a sparse completion edit for one line: only the supplied
// fields change, absent fields retain their prior value. Multiple updates
// for the same line merge last-write-wins per field.
type PartialUpdate struct {
	LineKey       string   `json:"regel_key"`
	Purchasing    *float64 `json:"percentage_gereed_inkoop"`
	AssemblyLabor *float64 `json:"percentage_gereed_arbeid_montage"`
	ProjectBound  *float64 `json:"percentage_gereed_arbeid_projectgebonden"`
}

// Empty reports whether the update carries no fields at all.
func (u PartialUpdate) Empty() bool {
	return u.Purchasing == nil && u.AssemblyLabor == nil && u.ProjectBound == nil
}

// Clamp coerces every supplied field into [0,100].
func (u *PartialUpdate) Clamp() {
	for _, p := range []*float64{u.Purchasing, u.AssemblyLabor, u.ProjectBound} {
		if p != nil {
			*p = ClampPercentage(*p)
		}
	}
}

// Apply merges the update into the line's completion figures.
func (u PartialUpdate) Apply(li *LineItem) {
	if u.Purchasing != nil {
		li.Completion.Purchasing = *u.Purchasing
	}
	if u.AssemblyLabor != nil {
		li.Completion.AssemblyLabor = *u.AssemblyLabor
	}
	if u.ProjectBound != nil {
		li.Completion.ProjectBound = *u.ProjectBound
	}
}

// ClampPercentage coerces v into the [0,100] range.
func ClampPercentage(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Tenant is the request-scoped identity every operation runs under: the
// customer number addressing the tenant's data plus the acting user for the
// audit trail.
type Tenant struct {
	Customer int
	UserID   string
}
