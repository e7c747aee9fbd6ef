package request

import (
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

const dateLayout = "2006-01-02"

// CreateOpnameRequest creates a new assessment for one hoofdproject. The
// booking period and project name are optional; when absent they are copied
// from the warehouse's project metadata.
type CreateOpnameRequest struct {
	MainProjectKey         int    `json:"hoofdproject_key" binding:"required"`
	MainProjectName        string `json:"hoofdproject"`
	HighestSelectedLevel   int    `json:"hoogst_geselecteerd_projectniveau"`
	StartBookingDate       string `json:"start_boekdatum"`
	EndBookingDate         string `json:"einde_boekdatum"`
	BudgetCostBasis        string `json:"grondslag_calculatie_kosten"`
	BookedCostBasis        string `json:"grondslag_geboekte_kosten"`
	ParagraphGroupingLevel int    `json:"groepering_paragraafniveau"`
	Remark                 string `json:"opmerking"`
}

func (r CreateOpnameRequest) ResolveStartBookingDate() (*time.Time, error) {
	return parseOptionalDate(r.StartBookingDate)
}

func (r CreateOpnameRequest) ResolveEndBookingDate() (*time.Time, error) {
	return parseOptionalDate(r.EndBookingDate)
}

// UpdateOpnameRequest changes header fields of a Concept assessment. Absent
// fields stay untouched.
type UpdateOpnameRequest struct {
	Remark                 *string `json:"opmerking"`
	BudgetCostBasis        *string `json:"grondslag_calculatie_kosten"`
	BookedCostBasis        *string `json:"grondslag_geboekte_kosten"`
	ParagraphGroupingLevel *int    `json:"groepering_paragraafniveau"`
}

// AuthorizeOpnameRequest optionally names the target status. Empty means
// Geautoriseerd.
type AuthorizeOpnameRequest struct {
	Status string `json:"autorisatie_status"`
}

// RegelUpdateRequest is one sparse completion edit: only the percentages
// present in the payload change on the addressed line.
type RegelUpdateRequest struct {
	LineKey       string   `json:"regel_key" binding:"required"`
	Purchasing    *float64 `json:"percentage_gereed_inkoop"`
	AssemblyLabor *float64 `json:"percentage_gereed_arbeid_montage"`
	ProjectBound  *float64 `json:"percentage_gereed_arbeid_projectgebonden"`
}

// RegelBatchUpdateRequest commits the completion editor's staged edits in
// one call.
type RegelBatchUpdateRequest struct {
	Updates []RegelUpdateRequest `json:"regels"`
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}
