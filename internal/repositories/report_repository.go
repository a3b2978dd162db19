package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EquipmentReportRow - плоская строка для выгрузки парка в Excel.
type EquipmentReportRow struct {
	ID             uint64
	Name           string
	Label          string
	BrandName      string
	TypeName       string
	StatusName     string
	EmployeeName   string
	CompanyName    string
	DepartmentName string
	CreatedAt      time.Time
}

type ReportRepositoryInterface interface {
	ListEquipmentForReport(ctx context.Context, companyID *uint64) ([]EquipmentReportRow, error)
}

type reportRepository struct{ storage *pgxpool.Pool }

func NewReportRepository(storage *pgxpool.Pool) ReportRepositoryInterface {
	return &reportRepository{storage: storage}
}

func (r *reportRepository) ListEquipmentForReport(ctx context.Context, companyID *uint64) ([]EquipmentReportRow, error) {
	query := `
		SELECT e.id, e.name, COALESCE(e.label, ''),
			COALESCE(b.name, ''), COALESCE(t.name, ''), COALESCE(s.name, ''),
			COALESCE(emp.last_name || ' ' || emp.first_name, ''),
			COALESCE(c.name, ''), COALESCE(d.name, ''),
			e.created_at
		FROM equipments e
			LEFT JOIN brands b ON e.brand_id = b.id
			LEFT JOIN equipment_types t ON e.type_id = t.id
			LEFT JOIN equipment_statuses s ON e.status_id = s.id
			LEFT JOIN employees emp ON e.employee_id = emp.id
			LEFT JOIN companies c ON e.company_id = c.id
			LEFT JOIN departments d ON e.department_id = d.id`

	var args []interface{}
	if companyID != nil {
		query += " WHERE e.company_id = $1"
		args = append(args, *companyID)
	}
	query += " ORDER BY c.name, d.name, e.name"

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]EquipmentReportRow, 0)
	for rows.Next() {
		var row EquipmentReportRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Label,
			&row.BrandName, &row.TypeName, &row.StatusName,
			&row.EmployeeName, &row.CompanyName, &row.DepartmentName,
			&row.CreatedAt,
		); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}
