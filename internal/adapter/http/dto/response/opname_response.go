package response

import (
	"time"

	"projectvoortgang/internal/domain/entities"
)

const dateLayout = "2006-01-02"

type OpnameResponse struct {
	Key                  string `json:"opname_key"`
	Customer             int    `json:"klantnummer"`
	MainProjectKey       int    `json:"hoofdproject_key"`
	MainProjectName      string `json:"hoofdproject"`
	HighestSelectedLevel int    `json:"hoogst_geselecteerd_projectniveau"`

	StartBookingDate string `json:"start_boekdatum,omitempty"`
	EndBookingDate   string `json:"einde_boekdatum,omitempty"`

	BudgetCostBasis        string `json:"grondslag_calculatie_kosten"`
	BookedCostBasis        string `json:"grondslag_geboekte_kosten"`
	ParagraphGroupingLevel int    `json:"groepering_paragraafniveau"`

	Aggregates      entities.AssessmentAggregates `json:"aggregaten"`
	AggregatesDirty bool                          `json:"aggregaten_verouderd"`

	Status       string     `json:"autorisatie_status"`
	Saved        bool       `json:"opgeslagen"`
	Remark       string     `json:"opmerking"`
	AuthorizedBy string     `json:"autoriseerder,omitempty"`
	AuthorizedAt *time.Time `json:"autorisatie_datum,omitempty"`

	CreatedAt time.Time `json:"aanmaakdatum"`
	CreatedBy string    `json:"aanmaker"`
	UpdatedAt time.Time `json:"wijzigdatum"`
	UpdatedBy string    `json:"wijziger"`
}

func FromOpname(a entities.Assessment) OpnameResponse {
	return OpnameResponse{
		Key:                    a.Key,
		Customer:               a.Customer,
		MainProjectKey:         a.MainProjectKey,
		MainProjectName:        a.MainProjectName,
		HighestSelectedLevel:   a.HighestSelectedLevel,
		StartBookingDate:       formatDate(a.StartBookingDate),
		EndBookingDate:         formatDate(a.EndBookingDate),
		BudgetCostBasis:        string(a.BudgetCostBasis),
		BookedCostBasis:        string(a.BookedCostBasis),
		ParagraphGroupingLevel: a.ParagraphGroupingLevel,
		Aggregates:             a.Aggregates,
		AggregatesDirty:        a.AggregatesDirty,
		Status:                 string(a.Status),
		Saved:                  a.Saved,
		Remark:                 a.Remark,
		AuthorizedBy:           a.AuthorizedBy,
		AuthorizedAt:           a.AuthorizedAt,
		CreatedAt:              a.CreatedAt,
		CreatedBy:              a.CreatedBy,
		UpdatedAt:              a.UpdatedAt,
		UpdatedBy:              a.UpdatedBy,
	}
}

func FromOpnames(items []entities.Assessment) []OpnameResponse {
	out := make([]OpnameResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromOpname(a))
	}
	return out
}

type RegelResponse struct {
	Key           string `json:"regel_key"`
	AssessmentKey string `json:"opname_key"`

	ProjectKey   int    `json:"project_key"`
	ProjectName  string `json:"project"`
	ProjectLevel int    `json:"projectniveau"`
	ProjectPhase string `json:"projectfase"`
	SubProject   bool   `json:"deelproject"`

	ParagraphKey   int    `json:"bestekparagraaf_key"`
	ParagraphName  string `json:"bestekparagraaf"`
	ParagraphLevel int    `json:"bestekparagraafniveau"`

	BudgetedCost  entities.CategoryAmounts `json:"calculatie_kosten"`
	BudgetedHours entities.LaborHours      `json:"calculatie_uren"`
	BookedCost    entities.CategoryAmounts `json:"geboekte_kosten"`
	BookedHours   entities.LaborHours      `json:"geboekte_uren"`

	HistoricalRequests      entities.CategoryAmounts `json:"verzoeken"`
	HistoricalRequestsHours entities.LaborHours      `json:"verzoeken_uren"`

	Prior      entities.PriorCompletion `json:"laatste_pg"`
	Completion entities.Completion      `json:"percentage_gereed"`
}

func FromRegel(li entities.LineItem) RegelResponse {
	return RegelResponse{
		Key:                     li.Key,
		AssessmentKey:           li.AssessmentKey,
		ProjectKey:              li.ProjectKey,
		ProjectName:             li.ProjectName,
		ProjectLevel:            li.ProjectLevel,
		ProjectPhase:            li.ProjectPhase,
		SubProject:              li.SubProject,
		ParagraphKey:            li.ParagraphKey,
		ParagraphName:           li.ParagraphName,
		ParagraphLevel:          li.ParagraphLevel,
		BudgetedCost:            li.BudgetedCost,
		BudgetedHours:           li.BudgetedHours,
		BookedCost:              li.BookedCost,
		BookedHours:             li.BookedHours,
		HistoricalRequests:      li.HistoricalRequests,
		HistoricalRequestsHours: li.HistoricalRequestsHours,
		Prior:                   li.Prior,
		Completion:              li.Completion,
	}
}

func FromRegels(items []entities.LineItem) []RegelResponse {
	out := make([]RegelResponse, 0, len(items))
	for _, li := range items {
		out = append(out, FromRegel(li))
	}
	return out
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
