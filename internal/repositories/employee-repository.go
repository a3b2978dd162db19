package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	employeeTable  = "employees"
	employeeFields = "id, personnel_number, first_name, last_name, middle_name, active, position, phone, company_id, department_id, role, password_hash, created_at, updated_at"
)

type EmployeeRepositoryInterface interface {
	GetEmployees(ctx context.Context, limit, offset uint64, search string, companyID *uint64) ([]dto.EmployeeDTO, uint64, error)
	FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error)
	FindEmployeeInTx(ctx context.Context, q querier, id uint64) (*entities.Employee, error)
	FindByPersonnelNumber(ctx context.Context, personnelNumber string) (*entities.Employee, error)
	CreateEmployee(ctx context.Context, employee *entities.Employee) (uint64, error)
	UpdateEmployee(ctx context.Context, id uint64, payload dto.UpdateEmployeeDTO) error
	DeleteEmployee(ctx context.Context, id uint64) error
}

type employeeRepository struct{ storage *pgxpool.Pool }

func NewEmployeeRepository(storage *pgxpool.Pool) EmployeeRepositoryInterface {
	return &employeeRepository{storage: storage}
}

func scanEmployee(row pgx.Row) (*entities.Employee, error) {
	var e entities.Employee
	err := row.Scan(
		&e.ID, &e.PersonnelNumber, &e.FirstName, &e.LastName, &e.MiddleName,
		&e.Active, &e.Position, &e.Phone, &e.CompanyID, &e.DepartmentID,
		&e.Role, &e.PasswordHash, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepository) GetEmployees(ctx context.Context, limit, offset uint64, search string, companyID *uint64) ([]dto.EmployeeDTO, uint64, error) {
	var conditions []string
	var args []interface{}

	if search != "" {
		args = append(args, "%"+search+"%")
		idx := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(e.personnel_number ILIKE $%d OR e.first_name ILIKE $%d OR e.last_name ILIKE $%d)", idx, idx, idx))
	}
	if companyID != nil {
		args = append(args, *companyID)
		conditions = append(conditions, fmt.Sprintf("e.company_id = $%d", len(args)))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s e %s", employeeTable, whereClause)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.EmployeeDTO{}, 0, nil
	}

	queryArgs := append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT e.id, e.personnel_number, e.first_name, e.last_name, e.middle_name,
			e.active, e.position, e.phone, e.role, e.created_at, e.updated_at,
			c.id, c.name, d.id, d.name
		FROM %s e
			JOIN companies c ON e.company_id = c.id
			JOIN departments d ON e.department_id = d.id
		%s
		ORDER BY e.last_name, e.first_name
		LIMIT $%d OFFSET $%d`,
		employeeTable, whereClause, len(args)+1, len(args)+2)

	rows, err := r.storage.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	employees := make([]dto.EmployeeDTO, 0)
	for rows.Next() {
		var e entities.Employee
		var company dto.ShortCompanyDTO
		var department dto.ShortDepartmentDTO
		if err := rows.Scan(
			&e.ID, &e.PersonnelNumber, &e.FirstName, &e.LastName, &e.MiddleName,
			&e.Active, &e.Position, &e.Phone, &e.Role, &e.CreatedAt, &e.UpdatedAt,
			&company.ID, &company.Name, &department.ID, &department.Name,
		); err != nil {
			return nil, 0, err
		}

		employees = append(employees, dto.EmployeeDTO{
			ID:              e.ID,
			PersonnelNumber: e.PersonnelNumber,
			FullName:        e.FullName(),
			Active:          e.Active,
			Position:        e.Position.String,
			Phone:           e.Phone.String,
			Company:         company,
			Department:      department,
			Role:            e.Role,
			CreatedAt:       utils.FormatTimePtr(e.CreatedAt),
			UpdatedAt:       utils.FormatTimePtr(e.UpdatedAt),
		})
	}
	return employees, total, rows.Err()
}

func (r *employeeRepository) FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error) {
	return r.FindEmployeeInTx(ctx, r.storage, id)
}

func (r *employeeRepository) FindEmployeeInTx(ctx context.Context, q querier, id uint64) (*entities.Employee, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", employeeFields, employeeTable)
	employee, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return employee, nil
}

func (r *employeeRepository) FindByPersonnelNumber(ctx context.Context, personnelNumber string) (*entities.Employee, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE personnel_number = $1 LIMIT 1", employeeFields, employeeTable)
	employee, err := scanEmployee(r.storage.QueryRow(ctx, query, personnelNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return employee, nil
}

func (r *employeeRepository) CreateEmployee(ctx context.Context, employee *entities.Employee) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (personnel_number, first_name, last_name, middle_name, active, position, phone, company_id, department_id, role, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`, employeeTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		employee.PersonnelNumber, employee.FirstName, employee.LastName, employee.MiddleName,
		employee.Active, employee.Position, employee.Phone,
		employee.CompanyID, employee.DepartmentID, employee.Role, employee.PasswordHash,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return 0, apperrors.ErrConflict
			case "23503":
				return 0, apperrors.ErrReferenceNotFound
			}
		}
		return 0, err
	}
	return id, nil
}

func (r *employeeRepository) UpdateEmployee(ctx context.Context, id uint64, payload dto.UpdateEmployeeDTO) error {
	var setClauses []string
	var args []interface{}
	argID := 1

	addClause := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if payload.FirstName != nil {
		addClause("first_name", *payload.FirstName)
	}
	if payload.LastName != nil {
		addClause("last_name", *payload.LastName)
	}
	if payload.MiddleName != nil {
		addClause("middle_name", *payload.MiddleName)
	}
	if payload.Active != nil {
		addClause("active", *payload.Active)
	}
	if payload.Position != nil {
		addClause("position", *payload.Position)
	}
	if payload.Phone != nil {
		addClause("phone", *payload.Phone)
	}
	if payload.CompanyID != nil {
		addClause("company_id", *payload.CompanyID)
	}
	if payload.DepartmentID != nil {
		addClause("department_id", *payload.DepartmentID)
	}
	if payload.Role != nil {
		addClause("role", *payload.Role)
	}
	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		employeeTable, strings.Join(setClauses, ", "), argID)
	args = append(args, id)

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrReferenceNotFound
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *employeeRepository) DeleteEmployee(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", employeeTable), id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrInUse
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
