package repositories

import (
	"context"
	"fmt"

	"inventory-system/internal/dto"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardRepositoryInterface interface {
	GetSummary(ctx context.Context, companyID *uint64) (*dto.DashboardSummaryDTO, error)
}

type dashboardRepository struct{ storage *pgxpool.Pool }

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &dashboardRepository{storage: storage}
}

func (r *dashboardRepository) GetSummary(ctx context.Context, companyID *uint64) (*dto.DashboardSummaryDTO, error) {
	summary := &dto.DashboardSummaryDTO{}

	scopeClause := ""
	var args []interface{}
	if companyID != nil {
		scopeClause = "WHERE e.company_id = $1"
		args = append(args, *companyID)
	}

	totalsQuery := fmt.Sprintf(`
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE e.employee_id IS NOT NULL),
			COUNT(*) FILTER (WHERE e.employee_id IS NULL)
		FROM equipments e
		%s`, scopeClause)
	if err := r.storage.QueryRow(ctx, totalsQuery, args...).Scan(
		&summary.TotalEquipment, &summary.AssignedEquipment, &summary.UnassignedEquipment,
	); err != nil {
		return nil, err
	}

	byStatusQuery := fmt.Sprintf(`
		SELECT s.id, s.code, s.name, COUNT(e.id)
		FROM equipment_statuses s
			LEFT JOIN equipments e ON e.status_id = s.id %s
		GROUP BY s.id, s.code, s.name
		ORDER BY s.id`, joinScope(companyID))
	rows, err := r.storage.Query(ctx, byStatusQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary.ByStatus = make([]dto.StatusCountDTO, 0)
	for rows.Next() {
		var sc dto.StatusCountDTO
		if err := rows.Scan(&sc.StatusID, &sc.Code, &sc.Name, &sc.Count); err != nil {
			return nil, err
		}
		summary.ByStatus = append(summary.ByStatus, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	employeesQuery := "SELECT COUNT(*) FROM employees WHERE active"
	employeesArgs := []interface{}{}
	if companyID != nil {
		employeesQuery += " AND company_id = $1"
		employeesArgs = append(employeesArgs, *companyID)
	}
	if err := r.storage.QueryRow(ctx, employeesQuery, employeesArgs...).Scan(&summary.ActiveEmployees); err != nil {
		return nil, err
	}

	maintenanceQuery := `
		SELECT COUNT(*)
		FROM maintenance_requests m
			JOIN maintenance_statuses s ON m.status_id = s.id
			JOIN equipments e ON m.equipment_id = e.id
		WHERE s.code <> 'DONE'`
	maintenanceArgs := []interface{}{}
	if companyID != nil {
		maintenanceQuery += " AND e.company_id = $1"
		maintenanceArgs = append(maintenanceArgs, *companyID)
	}
	if err := r.storage.QueryRow(ctx, maintenanceQuery, maintenanceArgs...).Scan(&summary.OpenMaintenance); err != nil {
		return nil, err
	}

	historyQuery := "SELECT COUNT(*) FROM equipment_history WHERE occurred_at >= NOW() - INTERVAL '30 days'"
	historyArgs := []interface{}{}
	if companyID != nil {
		historyQuery += " AND company_id = $1"
		historyArgs = append(historyArgs, *companyID)
	}
	if err := r.storage.QueryRow(ctx, historyQuery, historyArgs...).Scan(&summary.HistoryLast30Days); err != nil {
		return nil, err
	}

	return summary, nil
}

func joinScope(companyID *uint64) string {
	if companyID != nil {
		return "AND e.company_id = $1"
	}
	return ""
}
