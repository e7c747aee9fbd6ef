package interfaces

import (
	"context"
	"time"

	"projectvoortgang/internal/domain/entities"
)

// IWarehouseGateway abstracts read-only access to the customer's data
// warehouse: the project/paragraph catalog and the raw cost rows the
// populator consumes.
//
// All operations are idempotent reads with no side effects. A failure is
// surfaced to the caller as-is and must not be retried silently: a retried
// populate against a half-failed read could double-populate an assessment.
type IWarehouseGateway interface {
	ListMainProjects(ctx context.Context, customer int) ([]entities.ProjectRef, error)
	ListSubProjects(ctx context.Context, customer int, mainProjectKey int) ([]entities.ProjectRef, error)
	ListParagraphs(ctx context.Context, customer int, projectKey int, level int) ([]entities.ParagraphRef, error)
	GetProjectData(ctx context.Context, customer int, mainProjectKey int, start, end *time.Time) ([]entities.ProjectDataRow, error)
}
