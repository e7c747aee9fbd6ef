package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"projectvoortgang/internal/domain/calc"
	"projectvoortgang/internal/domain/entities"
	"projectvoortgang/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAssessmentNotFound   = errors.New("assessment not found")
	ErrLineItemNotFound     = errors.New("line item not found")
	ErrProjectNotFound      = errors.New("main project not found")
	ErrInvalidAssessmentKey = errors.New("invalid assessment key")
	ErrInvalidCustomer      = errors.New("invalid customer number")
	ErrInvalidProjectKey    = errors.New("invalid project key")
	ErrInvalidGroupingLevel = errors.New("invalid paragraph grouping level")
	ErrInvalidStatus        = errors.New("invalid authorization status")

	// ErrAssessmentLocked is the Forbidden condition: mutating or deleting
	// an assessment that has left Concept.
	ErrAssessmentLocked = errors.New("assessment is no longer editable")

	// ErrWarehouseUnavailable wraps any failed warehouse read. The caller
	// decides on retry; the service never retries on its own.
	ErrWarehouseUnavailable = errors.New("warehouse unavailable")
)

// CreateAssessmentParams are the scope parameters fixed at creation.
type CreateAssessmentParams struct {
	MainProjectKey         int
	MainProjectName        string
	HighestSelectedLevel   int
	StartBookingDate       *time.Time
	EndBookingDate         *time.Time
	BudgetCostBasis        entities.BudgetCostBasis
	BookedCostBasis        entities.BookedCostBasis
	ParagraphGroupingLevel int
	Remark                 string
}

// UpdateAssessmentParams are the header fields that may still change while
// the assessment is in Concept. Nil means "leave unchanged".
type UpdateAssessmentParams struct {
	Remark                 *string
	BudgetCostBasis        *entities.BudgetCostBasis
	BookedCostBasis        *entities.BookedCostBasis
	ParagraphGroupingLevel *int
}

// IAssessmentUseCase exposes the assessment header operations: creation,
// reads, header updates, recompute and the authorization lifecycle.

type IAssessmentUseCase interface {
	Create(ctx context.Context, tenant entities.Tenant, params CreateAssessmentParams) (entities.Assessment, error)
	List(ctx context.Context, tenant entities.Tenant) ([]entities.Assessment, error)
	GetByKey(ctx context.Context, tenant entities.Tenant, key string) (entities.Assessment, error)
	Update(ctx context.Context, tenant entities.Tenant, key string, params UpdateAssessmentParams) (entities.Assessment, error)
	Delete(ctx context.Context, tenant entities.Tenant, key string) error
	Recompute(ctx context.Context, tenant entities.Tenant, key string) (entities.Assessment, error)
	Save(ctx context.Context, tenant entities.Tenant, key string) (entities.Assessment, error)
	Finalize(ctx context.Context, tenant entities.Tenant, key string, target entities.AssessmentStatus) (entities.Assessment, error)
}

type AssessmentUseCase struct {
	repo      interfaces.IAssessmentRepository
	lineRepo  interfaces.ILineItemRepository
	warehouse interfaces.IWarehouseGateway
}

var _ IAssessmentUseCase = (*AssessmentUseCase)(nil)

func NewAssessmentUseCase(repo interfaces.IAssessmentRepository, lineRepo interfaces.ILineItemRepository, warehouse interfaces.IWarehouseGateway) *AssessmentUseCase {
	return &AssessmentUseCase{repo: repo, lineRepo: lineRepo, warehouse: warehouse}
}

func (u *AssessmentUseCase) Create(ctx context.Context, tenant entities.Tenant, params CreateAssessmentParams) (entities.Assessment, error) {
	if tenant.Customer <= 0 {
		return entities.Assessment{}, ErrInvalidCustomer
	}
	if params.MainProjectKey <= 0 {
		return entities.Assessment{}, ErrInvalidProjectKey
	}
	if params.ParagraphGroupingLevel == 0 {
		params.ParagraphGroupingLevel = 1
	}
	if params.ParagraphGroupingLevel < 1 || params.ParagraphGroupingLevel > 4 {
		return entities.Assessment{}, ErrInvalidGroupingLevel
	}
	if params.BudgetCostBasis == "" {
		params.BudgetCostBasis = entities.BudgetBasisKostprijs
	}
	if params.BookedCostBasis == "" {
		params.BookedCostBasis = entities.BookedBasisKostprijsDefinitief
	}

	// The project name and booking period are denormalized from the source
	// project at creation time and never re-synced afterward.
	if params.MainProjectName == "" || params.StartBookingDate == nil || params.EndBookingDate == nil {
		ref, err := u.lookupMainProject(ctx, tenant.Customer, params.MainProjectKey)
		if err != nil {
			return entities.Assessment{}, err
		}
		if params.MainProjectName == "" {
			params.MainProjectName = ref.Name
		}
		if params.StartBookingDate == nil {
			params.StartBookingDate = ref.StartBookingDate
		}
		if params.EndBookingDate == nil {
			params.EndBookingDate = ref.EndBookingDate
		}
	}

	now := time.Now().UTC()
	a := entities.Assessment{
		Key:                    uuid.NewString(),
		Customer:               tenant.Customer,
		MainProjectKey:         params.MainProjectKey,
		MainProjectName:        params.MainProjectName,
		HighestSelectedLevel:   params.HighestSelectedLevel,
		StartBookingDate:       params.StartBookingDate,
		EndBookingDate:         params.EndBookingDate,
		BudgetCostBasis:        params.BudgetCostBasis,
		BookedCostBasis:        params.BookedCostBasis,
		ParagraphGroupingLevel: params.ParagraphGroupingLevel,
		Remark:                 strings.TrimSpace(params.Remark),
		Status:                 entities.AssessmentStatusConcept,
		CreatedAt:              now,
		CreatedBy:              tenant.UserID,
		UpdatedAt:              now,
		UpdatedBy:              tenant.UserID,
	}
	return u.repo.Create(ctx, a)
}

func (u *AssessmentUseCase) lookupMainProject(ctx context.Context, customer, mainProjectKey int) (entities.ProjectRef, error) {
	refs, err := u.warehouse.ListMainProjects(ctx, customer)
	if err != nil {
		return entities.ProjectRef{}, fmt.Errorf("%w: %v", ErrWarehouseUnavailable, err)
	}
	for _, ref := range refs {
		if ref.Key == mainProjectKey {
			return ref, nil
		}
	}
	return entities.ProjectRef{}, ErrProjectNotFound
}

func (u *AssessmentUseCase) List(ctx context.Context, tenant entities.Tenant) ([]entities.Assessment, error) {
	if tenant.Customer <= 0 {
		return nil, ErrInvalidCustomer
	}
	return u.repo.ListByCustomer(ctx, tenant.Customer)
}

func (u *AssessmentUseCase) GetByKey(ctx context.Context, tenant entities.Tenant, key string) (entities.Assessment, error) {
	return u.load(ctx, tenant, key)
}

func (u *AssessmentUseCase) Update(ctx context.Context, tenant entities.Tenant, key string, params UpdateAssessmentParams) (entities.Assessment, error) {
	a, err := u.load(ctx, tenant, key)
	if err != nil {
		return entities.Assessment{}, err
	}
	if !a.Editable() {
		return entities.Assessment{}, ErrAssessmentLocked
	}

	if params.Remark != nil {
		a.Remark = strings.TrimSpace(*params.Remark)
	}
	settingsChanged := false
	if params.BudgetCostBasis != nil && *params.BudgetCostBasis != a.BudgetCostBasis {
		a.BudgetCostBasis = *params.BudgetCostBasis
		settingsChanged = true
	}
	if params.BookedCostBasis != nil && *params.BookedCostBasis != a.BookedCostBasis {
		a.BookedCostBasis = *params.BookedCostBasis
		settingsChanged = true
	}
	if params.ParagraphGroupingLevel != nil && *params.ParagraphGroupingLevel != a.ParagraphGroupingLevel {
		if *params.ParagraphGroupingLevel < 1 || *params.ParagraphGroupingLevel > 4 {
			return entities.Assessment{}, ErrInvalidGroupingLevel
		}
		a.ParagraphGroupingLevel = *params.ParagraphGroupingLevel
		settingsChanged = true
	}
	if settingsChanged {
		// Changed bases invalidate both the line figures and the aggregates;
		// the caller must re-populate and recompute.
		a.AggregatesDirty = true
	}

	a.UpdatedAt = time.Now().UTC()
	a.UpdatedBy = tenant.UserID
	return u.save(ctx, a)
}

func (u *AssessmentUseCase) Delete(ctx context.Context, tenant entities.Tenant, key string) error {
	a, err := u.load(ctx, tenant, key)
	if err != nil {
		return err
	}
	if !a.Deletable() {
		return ErrAssessmentLocked
	}
	// Lines only ever disappear as a cascade of assessment deletion.
	if err := u.lineRepo.DeleteByAssessment(ctx, tenant.Customer, a.Key); err != nil {
		return err
	}
	return u.repo.Delete(ctx, tenant.Customer, a.Key)
}

// Recompute runs the aggregation engine against the currently committed
// line items and persists the result. It is safe to call repeatedly; the
// aggregates are a pure function of lines plus scope parameters.
func (u *AssessmentUseCase) Recompute(ctx context.Context, tenant entities.Tenant, key string) (entities.Assessment, error) {
	a, err := u.load(ctx, tenant, key)
	if err != nil {
		return entities.Assessment{}, err
	}
	return u.recompute(ctx, tenant, a)
}

func (u *AssessmentUseCase) recompute(ctx context.Context, tenant entities.Tenant, a entities.Assessment) (entities.Assessment, error) {
	lines, err := u.lineRepo.ListByAssessment(ctx, tenant.Customer, a.Key)
	if err != nil {
		return entities.Assessment{}, err
	}
	calc.Recalculate(&a, lines)
	a.AggregatesDirty = false
	a.UpdatedAt = time.Now().UTC()
	a.UpdatedBy = tenant.UserID
	return u.save(ctx, a)
}

// save persists through the repository and surfaces a conditional-check miss
// (zero value back) as not-found, e.g. when the opname was deleted between
// load and write.
func (u *AssessmentUseCase) save(ctx context.Context, a entities.Assessment) (entities.Assessment, error) {
	saved, err := u.repo.Save(ctx, a)
	if err != nil {
		return entities.Assessment{}, err
	}
	if saved.Key == "" {
		return entities.Assessment{}, ErrAssessmentNotFound
	}
	return saved, nil
}

// Save recalculates and marks the assessment as opgeslagen, without leaving
// Concept. This is the explicit "opslaan" step from the summary screen.
func (u *AssessmentUseCase) Save(ctx context.Context, tenant entities.Tenant, key string) (entities.Assessment, error) {
	a, err := u.load(ctx, tenant, key)
	if err != nil {
		return entities.Assessment{}, err
	}
	if !a.Editable() {
		return entities.Assessment{}, ErrAssessmentLocked
	}
	a.Saved = true
	return u.recompute(ctx, tenant, a)
}

// Finalize closes the assessment: a recompute against the latest committed
// lines, then the saved flag and the target status flip in one write. After
// this no line mutation and no deletion is legal anymore.
func (u *AssessmentUseCase) Finalize(ctx context.Context, tenant entities.Tenant, key string, target entities.AssessmentStatus) (entities.Assessment, error) {
	if target == "" {
		target = entities.AssessmentStatusGeautoriseerd
	}
	if target != entities.AssessmentStatusTerAutorisatie && target != entities.AssessmentStatusGeautoriseerd {
		return entities.Assessment{}, ErrInvalidStatus
	}

	a, err := u.load(ctx, tenant, key)
	if err != nil {
		return entities.Assessment{}, err
	}
	if !a.Editable() {
		return entities.Assessment{}, ErrAssessmentLocked
	}

	now := time.Now().UTC()
	a.Saved = true
	a.Status = target
	a.AuthorizedBy = tenant.UserID
	a.AuthorizedAt = &now
	return u.recompute(ctx, tenant, a)
}

func (u *AssessmentUseCase) load(ctx context.Context, tenant entities.Tenant, key string) (entities.Assessment, error) {
	if tenant.Customer <= 0 {
		return entities.Assessment{}, ErrInvalidCustomer
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.Assessment{}, ErrInvalidAssessmentKey
	}
	a, err := u.repo.GetByKey(ctx, tenant.Customer, key)
	if err != nil {
		return entities.Assessment{}, err
	}
	if a.Key == "" {
		return entities.Assessment{}, ErrAssessmentNotFound
	}
	return a, nil
}
