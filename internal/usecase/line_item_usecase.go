package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"projectvoortgang/internal/domain/entities"
	"projectvoortgang/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ILineItemUseCase exposes the line item operations: warehouse-driven
// population and the completion editor's batch commit.
//
// Populate is idempotent per assessment: re-running it replaces the full
// line set instead of appending duplicates.

type ILineItemUseCase interface {
	Populate(ctx context.Context, tenant entities.Tenant, assessmentKey string) ([]entities.LineItem, error)
	List(ctx context.Context, tenant entities.Tenant, assessmentKey string) ([]entities.LineItem, error)
	CommitUpdates(ctx context.Context, tenant entities.Tenant, assessmentKey string, updates []entities.PartialUpdate) ([]entities.LineItem, error)
}

type LineItemUseCase struct {
	repo           interfaces.ILineItemRepository
	assessmentRepo interfaces.IAssessmentRepository
	warehouse      interfaces.IWarehouseGateway
}

var _ ILineItemUseCase = (*LineItemUseCase)(nil)

func NewLineItemUseCase(repo interfaces.ILineItemRepository, assessmentRepo interfaces.IAssessmentRepository, warehouse interfaces.IWarehouseGateway) *LineItemUseCase {
	return &LineItemUseCase{repo: repo, assessmentRepo: assessmentRepo, warehouse: warehouse}
}

// Populate materializes one line item per bestekparagraaf and one per
// deelproject from the warehouse's raw rows, resolved under the
// assessment's cost-basis settings, seeded with the completion percentages
// of the most recent prior assessment for the same main project.
func (u *LineItemUseCase) Populate(ctx context.Context, tenant entities.Tenant, assessmentKey string) ([]entities.LineItem, error) {
	a, err := u.loadAssessment(ctx, tenant, assessmentKey)
	if err != nil {
		return nil, err
	}
	if !a.Editable() {
		return nil, ErrAssessmentLocked
	}

	rows, err := u.warehouse.GetProjectData(ctx, tenant.Customer, a.MainProjectKey, a.StartBookingDate, a.EndBookingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWarehouseUnavailable, err)
	}

	items := []entities.LineItem{}
	if len(rows) == 0 {
		log.Printf("[opname][populate] no warehouse rows customer=%d opname=%s project=%d", tenant.Customer, a.Key, a.MainProjectKey)
	} else {
		prior, err := u.priorCompletion(ctx, tenant, a)
		if err != nil {
			return nil, err
		}
		items = buildLineItems(a, rows, prior)
	}

	// Replace the full set: population must never duplicate lines, and an
	// empty warehouse result clears whatever a previous run left behind.
	if err := u.repo.DeleteByAssessment(ctx, tenant.Customer, a.Key); err != nil {
		return nil, err
	}
	created := []entities.LineItem{}
	if len(items) > 0 {
		created, err = u.repo.CreateBatch(ctx, items)
		if err != nil {
			return nil, err
		}
	}

	a.AggregatesDirty = true
	a.UpdatedAt = time.Now().UTC()
	a.UpdatedBy = tenant.UserID
	if err := u.saveAssessment(ctx, a); err != nil {
		return nil, err
	}

	log.Printf("[opname][populate] created %d lines customer=%d opname=%s", len(created), tenant.Customer, a.Key)
	return created, nil
}

func (u *LineItemUseCase) List(ctx context.Context, tenant entities.Tenant, assessmentKey string) ([]entities.LineItem, error) {
	a, err := u.loadAssessment(ctx, tenant, assessmentKey)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByAssessment(ctx, tenant.Customer, a.Key)
}

// CommitUpdates merges sparse completion edits into their target lines and
// persists them. Supplied fields are clamped to [0,100]; absent fields keep
// their prior value; multiple updates for the same line merge
// last-write-wins per field. An empty batch is a graceful no-op.
func (u *LineItemUseCase) CommitUpdates(ctx context.Context, tenant entities.Tenant, assessmentKey string, updates []entities.PartialUpdate) ([]entities.LineItem, error) {
	a, err := u.loadAssessment(ctx, tenant, assessmentKey)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return []entities.LineItem{}, nil
	}
	if !a.Editable() {
		return nil, ErrAssessmentLocked
	}

	merged := mergeUpdates(updates)

	// Validate every target line before the first write, so an unknown key
	// rejects the whole batch instead of leaving part of it committed.
	existing, err := u.repo.ListByAssessment(ctx, tenant.Customer, a.Key)
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(existing))
	for _, li := range existing {
		known[li.Key] = struct{}{}
	}
	for _, upd := range merged {
		if _, ok := known[upd.LineKey]; !ok {
			return nil, ErrLineItemNotFound
		}
	}

	result := make([]entities.LineItem, 0, len(merged))
	for _, upd := range merged {
		upd.Clamp()
		li, err := u.repo.UpdateCompletion(ctx, tenant.Customer, a.Key, upd)
		if err != nil {
			return nil, err
		}
		if li.Key == "" {
			return nil, ErrLineItemNotFound
		}
		result = append(result, li)
	}

	a.AggregatesDirty = true
	a.UpdatedAt = time.Now().UTC()
	a.UpdatedBy = tenant.UserID
	if err := u.saveAssessment(ctx, a); err != nil {
		return nil, err
	}
	return result, nil
}

// saveAssessment persists the header and treats a conditional-check miss
// (zero value back) as not-found.
func (u *LineItemUseCase) saveAssessment(ctx context.Context, a entities.Assessment) error {
	saved, err := u.assessmentRepo.Save(ctx, a)
	if err != nil {
		return err
	}
	if saved.Key == "" {
		return ErrAssessmentNotFound
	}
	return nil
}

func (u *LineItemUseCase) loadAssessment(ctx context.Context, tenant entities.Tenant, key string) (entities.Assessment, error) {
	if tenant.Customer <= 0 {
		return entities.Assessment{}, ErrInvalidCustomer
	}
	if key == "" {
		return entities.Assessment{}, ErrInvalidAssessmentKey
	}
	a, err := u.assessmentRepo.GetByKey(ctx, tenant.Customer, key)
	if err != nil {
		return entities.Assessment{}, err
	}
	if a.Key == "" {
		return entities.Assessment{}, ErrAssessmentNotFound
	}
	return a, nil
}

// priorCompletion collects, per scope, the completion figures of the most
// recent earlier assessment of the same main project. An empty map means
// this is the first assessment for that scope.
func (u *LineItemUseCase) priorCompletion(ctx context.Context, tenant entities.Tenant, a entities.Assessment) (map[string]entities.Completion, error) {
	siblings, err := u.assessmentRepo.ListByMainProject(ctx, tenant.Customer, a.MainProjectKey)
	if err != nil {
		return nil, err
	}

	var prev *entities.Assessment
	for i := range siblings {
		s := siblings[i]
		if s.Key == a.Key || !s.CreatedAt.Before(a.CreatedAt) {
			continue
		}
		if prev == nil || s.CreatedAt.After(prev.CreatedAt) {
			prev = &siblings[i]
		}
	}
	if prev == nil {
		return map[string]entities.Completion{}, nil
	}

	prevLines, err := u.repo.ListByAssessment(ctx, tenant.Customer, prev.Key)
	if err != nil {
		return nil, err
	}
	prior := make(map[string]entities.Completion, len(prevLines))
	for _, li := range prevLines {
		prior[scopeKey(li.SubProject, li.ProjectKey, li.ParagraphKey)] = li.Completion
	}
	return prior, nil
}

func scopeKey(subProject bool, projectKey, paragraphKey int) string {
	if subProject {
		return fmt.Sprintf("d:%d", projectKey)
	}
	return fmt.Sprintf("p:%d", paragraphKey)
}

// buildLineItems groups raw warehouse rows into the two line partitions:
// one line per bestekparagraaf, one per deelproject below the main level.
func buildLineItems(a entities.Assessment, rows []entities.ProjectDataRow, prior map[string]entities.Completion) []entities.LineItem {
	byParagraph := map[int][]entities.ProjectDataRow{}
	bySubProject := map[int][]entities.ProjectDataRow{}
	for _, row := range rows {
		if row.ParagraphKey != 0 {
			byParagraph[row.ParagraphKey] = append(byParagraph[row.ParagraphKey], row)
		}
		if row.ProjectKey != 0 && row.ProjectLevel > 1 {
			bySubProject[row.ProjectKey] = append(bySubProject[row.ProjectKey], row)
		}
	}

	items := make([]entities.LineItem, 0, len(byParagraph)+len(bySubProject))
	for _, key := range sortedKeys(byParagraph) {
		group := byParagraph[key]
		li := lineFromGroup(a, group, false)
		li.ParagraphKey = key
		li.ParagraphName = group[0].ParagraphName
		li.ParagraphLevel = group[0].ParagraphLevel
		items = append(items, li)
	}
	for _, key := range sortedKeys(bySubProject) {
		group := bySubProject[key]
		li := lineFromGroup(a, group, true)
		li.ProjectKey = key
		li.ProjectName = group[0].ProjectName
		li.ProjectLevel = group[0].ProjectLevel
		li.ProjectPhase = group[0].ProjectPhase
		items = append(items, li)
	}

	for i := range items {
		if c, ok := prior[scopeKey(items[i].SubProject, items[i].ProjectKey, items[i].ParagraphKey)]; ok {
			items[i].Prior = entities.PriorCompletion{
				Purchasing:    ptr(c.Purchasing),
				AssemblyLabor: ptr(c.AssemblyLabor),
				ProjectBound:  ptr(c.ProjectBound),
			}
		}
	}
	return items
}

func lineFromGroup(a entities.Assessment, group []entities.ProjectDataRow, subProject bool) entities.LineItem {
	li := entities.LineItem{
		Key:           uuid.NewString(),
		AssessmentKey: a.Key,
		Customer:      a.Customer,
		SubProject:    subProject,
	}
	if !subProject {
		li.ProjectKey = group[0].ProjectKey
		li.ProjectName = group[0].ProjectName
		li.ProjectLevel = group[0].ProjectLevel
		li.ProjectPhase = group[0].ProjectPhase
	}
	for _, row := range group {
		li.BudgetedCost = li.BudgetedCost.Add(row.BudgetFor(a.BudgetCostBasis))
		li.BudgetedHours = li.BudgetedHours.Add(row.BudgetedHours)
		li.BookedCost = li.BookedCost.Add(row.BookedFor(a.BookedCostBasis))
		li.BookedHours = li.BookedHours.Add(row.BookedHoursTotal())
		li.HistoricalRequests = li.HistoricalRequests.Add(row.HistoricalRequests)
		li.HistoricalRequestsHours = li.HistoricalRequestsHours.Add(row.HistoricalRequestsHours)
	}
	return li
}

// mergeUpdates collapses the batch to one update per line, last-write-wins
// per field, preserving first-seen line order.
func mergeUpdates(updates []entities.PartialUpdate) []entities.PartialUpdate {
	order := make([]string, 0, len(updates))
	byKey := make(map[string]entities.PartialUpdate, len(updates))
	for _, upd := range updates {
		cur, seen := byKey[upd.LineKey]
		if !seen {
			order = append(order, upd.LineKey)
			cur = entities.PartialUpdate{LineKey: upd.LineKey}
		}
		if upd.Purchasing != nil {
			cur.Purchasing = upd.Purchasing
		}
		if upd.AssemblyLabor != nil {
			cur.AssemblyLabor = upd.AssemblyLabor
		}
		if upd.ProjectBound != nil {
			cur.ProjectBound = upd.ProjectBound
		}
		byKey[upd.LineKey] = cur
	}

	merged := make([]entities.PartialUpdate, 0, len(order))
	for _, key := range order {
		if upd := byKey[key]; !upd.Empty() {
			merged = append(merged, upd)
		}
	}
	return merged
}

func sortedKeys[T any](m map[int]T) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func ptr(v float64) *float64 { return &v }
