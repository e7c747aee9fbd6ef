package interfaces

import (
	"context"

	"projectvoortgang/internal/domain/entities"
)

// IAssessmentRepository abstracts DynamoDB persistence for Assessment.
//
// Not-found is signalled by a zero-value Assessment (empty Key), not an
// error. All reads and mutations are scoped by customer number.

type IAssessmentRepository interface {
	Create(ctx context.Context, a entities.Assessment) (entities.Assessment, error)
	GetByKey(ctx context.Context, customer int, key string) (entities.Assessment, error)
	ListByCustomer(ctx context.Context, customer int) ([]entities.Assessment, error)
	ListByMainProject(ctx context.Context, customer int, mainProjectKey int) ([]entities.Assessment, error)
	Save(ctx context.Context, a entities.Assessment) (entities.Assessment, error)
	Delete(ctx context.Context, customer int, key string) error
}
