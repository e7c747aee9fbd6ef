package interfaces

import (
	"context"

	"projectvoortgang/internal/domain/entities"
)

// ILineItemRepository abstracts DynamoDB persistence for LineItem.
//
// The service must be able to:
//   - replace the full line set of an assessment when the populator runs
//   - list lines per assessment for editing and recalculation
//   - merge sparse completion updates into a single line

type ILineItemRepository interface {
	CreateBatch(ctx context.Context, items []entities.LineItem) ([]entities.LineItem, error)
	ListByAssessment(ctx context.Context, customer int, assessmentKey string) ([]entities.LineItem, error)
	// UpdateCompletion merges only the supplied fields of u into the target
	// line. A zero-value LineItem return means the line does not exist under
	// the given assessment.
	UpdateCompletion(ctx context.Context, customer int, assessmentKey string, u entities.PartialUpdate) (entities.LineItem, error)
	DeleteByAssessment(ctx context.Context, customer int, assessmentKey string) error
}
