package entities

import "time"

// ProjectRef is catalog metadata for a hoofdproject or deelproject as handed
// out by the customer's data warehouse. Read-only reference data.
type ProjectRef struct {
	Key              int        `json:"project_key"`
	Name             string     `json:"project_naam"`
	Phase            string     `json:"projectfase"`
	Level            int        `json:"projectniveau"`
	MainProjectKey   int        `json:"hoofdproject_key,omitempty"`
	StartBookingDate *time.Time `json:"start_boekdatum,omitempty"`
	EndBookingDate   *time.Time `json:"einde_boekdatum,omitempty"`
}

// ParagraphRef is a bestekparagraaf at one grouping level.
type ParagraphRef struct {
	Key   int    `json:"bestekparagraaf_key"`
	Name  string `json:"bestekparagraaf"`
	Level int    `json:"bestekparagraafniveau"`
}

// ProjectDataRow is one raw warehouse row per bestekparagraaf/deelproject
// combination: every cost, hours and request figure under both price bases.
// The populator resolves these into line items according to the assessment's
// cost-basis settings.
type ProjectDataRow struct {
	ProjectKey   int    `json:"project_key"`
	ProjectName  string `json:"project_naam"`
	ProjectLevel int    `json:"projectniveau"`
	ProjectPhase string `json:"projectfase"`

	ParagraphKey   int    `json:"bestekparagraaf_key"`
	ParagraphName  string `json:"bestekparagraaf"`
	ParagraphLevel int    `json:"bestekparagraafniveau"`

	BudgetCostPrice     CategoryAmounts `json:"calculatie_kostprijs"`
	BudgetTransferPrice CategoryAmounts `json:"calculatie_verrekenprijs"`
	BudgetedHours       LaborHours      `json:"calculatie_uren"`

	FinalCostPrice           CategoryAmounts `json:"definitieve_kostprijs"`
	FinalTransferPrice       CategoryAmounts `json:"definitieve_verrekenprijs"`
	UnprocessedTransferPrice CategoryAmounts `json:"onverwerkte_verrekenprijs"`

	FinalHours       LaborHours `json:"uren_definitief"`
	UnprocessedHours LaborHours `json:"uren_onverwerkt"`

	HistoricalRequests      CategoryAmounts `json:"historische_verzoeken"`
	HistoricalRequestsHours LaborHours      `json:"historische_verzoeken_uren"`
}

// BudgetFor resolves the budgeted cost under the chosen calculatie basis.
func (r ProjectDataRow) BudgetFor(basis BudgetCostBasis) CategoryAmounts {
	if basis == BudgetBasisVerrekenprijs {
		return r.BudgetTransferPrice
	}
	return r.BudgetCostPrice
}

// BookedFor resolves the booked cost under the chosen geboekt basis.
func (r ProjectDataRow) BookedFor(basis BookedCostBasis) CategoryAmounts {
	switch basis {
	case BookedBasisVerrekenprijsDefinitiefOnverwerkt:
		return r.FinalTransferPrice.Add(r.UnprocessedTransferPrice)
	case BookedBasisVerrekenprijsDefinitief:
		return r.FinalTransferPrice
	default:
		return r.FinalCostPrice
	}
}

// BookedHoursTotal returns realized hours. Hours are always definitief +
// onverwerkt, independent of the booked cost basis.
func (r ProjectDataRow) BookedHoursTotal() LaborHours {
	return r.FinalHours.Add(r.UnprocessedHours)
}
