package response

import "projectvoortgang/internal/domain/entities"

type ProjectResponse struct {
	Key              int    `json:"project_key"`
	Name             string `json:"project_naam"`
	Phase            string `json:"projectfase"`
	Level            int    `json:"projectniveau"`
	MainProjectKey   int    `json:"hoofdproject_key,omitempty"`
	StartBookingDate string `json:"start_boekdatum,omitempty"`
	EndBookingDate   string `json:"einde_boekdatum,omitempty"`
}

func FromProject(ref entities.ProjectRef) ProjectResponse {
	return ProjectResponse{
		Key:              ref.Key,
		Name:             ref.Name,
		Phase:            ref.Phase,
		Level:            ref.Level,
		MainProjectKey:   ref.MainProjectKey,
		StartBookingDate: formatDate(ref.StartBookingDate),
		EndBookingDate:   formatDate(ref.EndBookingDate),
	}
}

func FromProjects(refs []entities.ProjectRef) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(refs))
	for _, ref := range refs {
		out = append(out, FromProject(ref))
	}
	return out
}

// ProjectDataResponse is one raw warehouse row: budget, booked and request
// figures per bestekparagraaf, before any cost-basis resolution.
type ProjectDataResponse struct {
	ProjectKey   int    `json:"project_key"`
	ProjectName  string `json:"project_naam"`
	ProjectLevel int    `json:"projectniveau"`
	ProjectPhase string `json:"projectfase"`

	ParagraphKey   int    `json:"bestekparagraaf_key"`
	ParagraphName  string `json:"bestekparagraaf"`
	ParagraphLevel int    `json:"bestekparagraafniveau"`

	BudgetCostPrice     entities.CategoryAmounts `json:"calculatie_kostprijs"`
	BudgetTransferPrice entities.CategoryAmounts `json:"calculatie_verrekenprijs"`
	BudgetedHours       entities.LaborHours      `json:"calculatie_uren"`

	FinalCostPrice           entities.CategoryAmounts `json:"definitieve_kostprijs"`
	FinalTransferPrice       entities.CategoryAmounts `json:"definitieve_verrekenprijs"`
	UnprocessedTransferPrice entities.CategoryAmounts `json:"onverwerkte_verrekenprijs"`

	FinalHours       entities.LaborHours `json:"uren_definitief"`
	UnprocessedHours entities.LaborHours `json:"uren_onverwerkt"`

	HistoricalRequests      entities.CategoryAmounts `json:"historische_verzoeken"`
	HistoricalRequestsHours entities.LaborHours      `json:"historische_verzoeken_uren"`
}

func FromProjectDataRow(row entities.ProjectDataRow) ProjectDataResponse {
	return ProjectDataResponse{
		ProjectKey:               row.ProjectKey,
		ProjectName:              row.ProjectName,
		ProjectLevel:             row.ProjectLevel,
		ProjectPhase:             row.ProjectPhase,
		ParagraphKey:             row.ParagraphKey,
		ParagraphName:            row.ParagraphName,
		ParagraphLevel:           row.ParagraphLevel,
		BudgetCostPrice:          row.BudgetCostPrice,
		BudgetTransferPrice:      row.BudgetTransferPrice,
		BudgetedHours:            row.BudgetedHours,
		FinalCostPrice:           row.FinalCostPrice,
		FinalTransferPrice:       row.FinalTransferPrice,
		UnprocessedTransferPrice: row.UnprocessedTransferPrice,
		FinalHours:               row.FinalHours,
		UnprocessedHours:         row.UnprocessedHours,
		HistoricalRequests:       row.HistoricalRequests,
		HistoricalRequestsHours:  row.HistoricalRequestsHours,
	}
}

func FromProjectData(rows []entities.ProjectDataRow) []ProjectDataResponse {
	out := make([]ProjectDataResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromProjectDataRow(row))
	}
	return out
}

type ParagraphResponse struct {
	Key   int    `json:"bestekparagraaf_key"`
	Name  string `json:"bestekparagraaf"`
	Level int    `json:"bestekparagraafniveau"`
}

func FromParagraph(ref entities.ParagraphRef) ParagraphResponse {
	return ParagraphResponse{Key: ref.Key, Name: ref.Name, Level: ref.Level}
}

func FromParagraphs(refs []entities.ParagraphRef) []ParagraphResponse {
	out := make([]ParagraphResponse, 0, len(refs))
	for _, ref := range refs {
		out = append(out, FromParagraph(ref))
	}
	return out
}
