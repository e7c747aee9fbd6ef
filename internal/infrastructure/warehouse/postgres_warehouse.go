package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"projectvoortgang/internal/domain/entities"
	"projectvoortgang/internal/usecase/interfaces"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresWarehouse reads the customer's PostgreSQL data warehouse directly
// (via VPN). Database name equals the customer number; the queries target
// the Syntess SSM schema and may need adjustment per customer DWH.
//
// Supported env vars:
//   - DWH_HOST (default: localhost)
//   - DWH_PORT (default: 5432)
//   - DWH_USER (default: postgres)
//   - DWH_PASSWORD
type PostgresWarehouse struct {
	host     string
	port     int
	user     string
	password string
}

var _ interfaces.IWarehouseGateway = (*PostgresWarehouse)(nil)

func NewPostgresWarehouseFromEnv() *PostgresWarehouse {
	port, err := strconv.Atoi(getenvDefault("DWH_PORT", "5432"))
	if err != nil {
		port = 5432
	}
	return &PostgresWarehouse{
		host:     getenvDefault("DWH_HOST", "localhost"),
		port:     port,
		user:     getenvDefault("DWH_USER", "postgres"),
		password: os.Getenv("DWH_PASSWORD"),
	}
}

// open dials the tenant database for one read. Connections are per request,
// like every other warehouse access path; the DWH is read-only for us.
func (w *PostgresWarehouse) open(customer int) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d dbname=%d user=%s password=%s sslmode=disable",
		w.host, w.port, customer, w.user, w.password)
	return sql.Open("pgx", dsn)
}

const queryMainProjects = `
SELECT DISTINCT
    p."HoofdProjectKey", p."Projectnaam", COALESCE(p."Projectfase", ''), 1,
    p."Startdatum"::date, p."Einddatum"::date
FROM notifica."SSM Projecten" p
WHERE p."Niveau" = 1 AND p."Status" = 'Open'
ORDER BY p."Projectnaam"`

func (w *PostgresWarehouse) ListMainProjects(ctx context.Context, customer int) ([]entities.ProjectRef, error) {
	db, err := w.open(customer)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, queryMainProjects)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []entities.ProjectRef
	for rows.Next() {
		var ref entities.ProjectRef
		var start, end sql.NullTime
		if err := rows.Scan(&ref.Key, &ref.Name, &ref.Phase, &ref.Level, &start, &end); err != nil {
			return nil, err
		}
		ref.StartBookingDate = nullTimePtr(start)
		ref.EndBookingDate = nullTimePtr(end)
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

const querySubProjects = `
SELECT DISTINCT
    p."ProjectKey", p."Projectnaam", COALESCE(p."Projectfase", ''), p."Niveau", p."HoofdProjectKey"
FROM notifica."SSM Projecten" p
WHERE p."HoofdProjectKey" = $1 AND p."Niveau" > 1
ORDER BY p."Niveau", p."Projectnaam"`

func (w *PostgresWarehouse) ListSubProjects(ctx context.Context, customer int, mainProjectKey int) ([]entities.ProjectRef, error) {
	db, err := w.open(customer)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, querySubProjects, mainProjectKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []entities.ProjectRef
	for rows.Next() {
		var ref entities.ProjectRef
		if err := rows.Scan(&ref.Key, &ref.Name, &ref.Phase, &ref.Level, &ref.MainProjectKey); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

const queryParagraphs = `
SELECT DISTINCT
    bp."BestekParagraafKey", bp."Bestekparagraaf", bp."Bestekparagraaf niveau"
FROM notifica."SSM Bestekparagrafen" bp
JOIN notifica."SSM Projecten" p ON bp."ProjectKey" = p."ProjectKey"
WHERE p."HoofdProjectKey" = $1 AND bp."Bestekparagraaf niveau" = $2
ORDER BY bp."Bestekparagraaf"`

func (w *PostgresWarehouse) ListParagraphs(ctx context.Context, customer int, projectKey int, level int) ([]entities.ParagraphRef, error) {
	db, err := w.open(customer)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, queryParagraphs, projectKey, level)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []entities.ParagraphRef
	for rows.Next() {
		var ref entities.ParagraphRef
		if err := rows.Scan(&ref.Key, &ref.Name, &ref.Level); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

const queryProjectData = `
SELECT
    p."ProjectKey", COALESCE(p."Projectnaam", ''), COALESCE(p."Niveau", 1), COALESCE(p."Projectfase", ''),
    COALESCE(bp."BestekParagraafKey", 0), COALESCE(bp."Bestekparagraaf", ''), COALESCE(bp."Bestekparagraaf niveau", 0),
    COALESCE(ck."Kostprijs inkoop", 0), COALESCE(ck."Kostprijs arbeid montage", 0), COALESCE(ck."Kostprijs arbeid projectgebonden", 0),
    COALESCE(cv."Verrekenprijs inkoop", 0), COALESCE(cv."Verrekenprijs arbeid montage", 0), COALESCE(cv."Verrekenprijs arbeid projectgebonden", 0),
    COALESCE(cu."Montage uren", 0), COALESCE(cu."Projectgebonden uren", 0),
    COALESCE(dk."Kostprijs inkoop", 0), COALESCE(dk."Kostprijs arbeid montage", 0), COALESCE(dk."Kostprijs arbeid projectgebonden", 0),
    COALESCE(dv."Verrekenprijs inkoop", 0), COALESCE(dv."Verrekenprijs arbeid montage", 0), COALESCE(dv."Verrekenprijs arbeid projectgebonden", 0),
    COALESCE(ov."Verrekenprijs inkoop", 0), COALESCE(ov."Verrekenprijs arbeid montage", 0), COALESCE(ov."Verrekenprijs arbeid projectgebonden", 0),
    COALESCE(gu."Montage uren definitief", 0), COALESCE(gu."Montage uren onverwerkt", 0),
    COALESCE(gu."Projectgebonden uren definitief", 0), COALESCE(gu."Projectgebonden uren onverwerkt", 0),
    COALESCE(hv."Verzoeken inkoop", 0), COALESCE(hv."Verzoeken montage", 0), COALESCE(hv."Verzoeken projectgebonden", 0),
    COALESCE(hv."Verzoeken montage uren", 0), COALESCE(hv."Verzoeken projectgebonden uren", 0)
FROM notifica."SSM Projecten" p
LEFT JOIN notifica."SSM Bestekparagrafen" bp ON bp."ProjectKey" = p."ProjectKey"
LEFT JOIN notifica."SSM Calculatie kostprijzen" ck ON ck."BestekParagraafKey" = bp."BestekParagraafKey"
LEFT JOIN notifica."SSM Calculatie verrekenprijzen" cv ON cv."BestekParagraafKey" = bp."BestekParagraafKey"
LEFT JOIN notifica."SSM Calculatie uren" cu ON cu."BestekParagraafKey" = bp."BestekParagraafKey"
LEFT JOIN notifica."SSM Definitieve kostprijzen" dk ON dk."BestekParagraafKey" = bp."BestekParagraafKey"
LEFT JOIN notifica."SSM Definitieve verrekenprijzen" dv ON dv."BestekParagraafKey" = bp."BestekParagraafKey"
LEFT JOIN notifica."SSM Onverwerkte verrekenprijzen" ov ON ov."BestekParagraafKey" = bp."BestekParagraafKey"
LEFT JOIN notifica."SSM Gerealiseerde uren" gu ON gu."BestekParagraafKey" = bp."BestekParagraafKey"
LEFT JOIN notifica."SSM Historische verzoeken" hv ON hv."BestekParagraafKey" = bp."BestekParagraafKey"
WHERE p."HoofdProjectKey" = $1`

func (w *PostgresWarehouse) GetProjectData(ctx context.Context, customer int, mainProjectKey int, start, end *time.Time) ([]entities.ProjectDataRow, error) {
	db, err := w.open(customer)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	// The booking period filter lives in the warehouse views themselves;
	// the parameters are accepted for forward compatibility.
	_ = start
	_ = end

	rows, err := db.QueryContext(ctx, queryProjectData, mainProjectKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var data []entities.ProjectDataRow
	for rows.Next() {
		var r entities.ProjectDataRow
		if err := rows.Scan(
			&r.ProjectKey, &r.ProjectName, &r.ProjectLevel, &r.ProjectPhase,
			&r.ParagraphKey, &r.ParagraphName, &r.ParagraphLevel,
			&r.BudgetCostPrice.Purchasing, &r.BudgetCostPrice.AssemblyLabor, &r.BudgetCostPrice.ProjectBound,
			&r.BudgetTransferPrice.Purchasing, &r.BudgetTransferPrice.AssemblyLabor, &r.BudgetTransferPrice.ProjectBound,
			&r.BudgetedHours.Assembly, &r.BudgetedHours.ProjectBound,
			&r.FinalCostPrice.Purchasing, &r.FinalCostPrice.AssemblyLabor, &r.FinalCostPrice.ProjectBound,
			&r.FinalTransferPrice.Purchasing, &r.FinalTransferPrice.AssemblyLabor, &r.FinalTransferPrice.ProjectBound,
			&r.UnprocessedTransferPrice.Purchasing, &r.UnprocessedTransferPrice.AssemblyLabor, &r.UnprocessedTransferPrice.ProjectBound,
			&r.FinalHours.Assembly, &r.UnprocessedHours.Assembly,
			&r.FinalHours.ProjectBound, &r.UnprocessedHours.ProjectBound,
			&r.HistoricalRequests.Purchasing, &r.HistoricalRequests.AssemblyLabor, &r.HistoricalRequests.ProjectBound,
			&r.HistoricalRequestsHours.Assembly, &r.HistoricalRequestsHours.ProjectBound,
		); err != nil {
			return nil, err
		}
		data = append(data, r)
	}
	return data, rows.Err()
}

// NewWarehouseFromEnv returns the configured gateway: the mock dataset when
// WAREHOUSE_MOCK is enabled (local development without VPN access), the
// direct Postgres reader otherwise.
func NewWarehouseFromEnv() interfaces.IWarehouseGateway {
	if isWarehouseMockEnabled() {
		log.Printf("[warehouse] mock mode enabled")
		return NewMockWarehouse()
	}
	return NewPostgresWarehouseFromEnv()
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
