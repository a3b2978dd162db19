package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"inventory-system/internal/dto"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	departmentTable      = "departments"
	departmentJoinFields = "d.id, d.name, d.company_id, d.created_at, d.updated_at, c.id, c.name"
)

type dbDepartment struct {
	ID          uint64
	Name        string
	CompanyID   uint64
	CreatedAt   time.Time
	UpdatedAt   sql.NullTime
	CompanyName string
}

func (db *dbDepartment) ToDTO() dto.DepartmentDTO {
	return dto.DepartmentDTO{
		ID:        db.ID,
		Name:      db.Name,
		Company:   dto.ShortCompanyDTO{ID: db.CompanyID, Name: db.CompanyName},
		CreatedAt: db.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		UpdatedAt: utils.NullTimeToEmptyString(db.UpdatedAt),
	}
}

type DepartmentRepositoryInterface interface {
	GetDepartments(ctx context.Context, limit, offset uint64, search string, companyID *uint64) ([]dto.DepartmentDTO, uint64, error)
	FindDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error)
	CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*dto.DepartmentDTO, error)
	UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*dto.DepartmentDTO, error)
	DeleteDepartment(ctx context.Context, id uint64) error
}

type departmentRepository struct{ storage *pgxpool.Pool }

func NewDepartmentRepository(storage *pgxpool.Pool) DepartmentRepositoryInterface {
	return &departmentRepository{storage: storage}
}

func (r *departmentRepository) scan(row pgx.Row) (*dbDepartment, error) {
	var dbRow dbDepartment
	var companyID uint64
	err := row.Scan(&dbRow.ID, &dbRow.Name, &dbRow.CompanyID, &dbRow.CreatedAt, &dbRow.UpdatedAt, &companyID, &dbRow.CompanyName)
	if err != nil {
		return nil, err
	}
	return &dbRow, nil
}

func (r *departmentRepository) GetDepartments(ctx context.Context, limit, offset uint64, search string, companyID *uint64) ([]dto.DepartmentDTO, uint64, error) {
	var conditions []string
	var args []interface{}

	if search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf("d.name ILIKE $%d", len(args)))
	}
	if companyID != nil {
		args = append(args, *companyID)
		conditions = append(conditions, fmt.Sprintf("d.company_id = $%d", len(args)))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s d %s", departmentTable, whereClause)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.DepartmentDTO{}, 0, nil
	}

	queryArgs := append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s d
			JOIN companies c ON d.company_id = c.id
		%s
		ORDER BY c.name, d.name
		LIMIT $%d OFFSET $%d`,
		departmentJoinFields, departmentTable, whereClause, len(args)+1, len(args)+2)

	rows, err := r.storage.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	departments := make([]dto.DepartmentDTO, 0)
	for rows.Next() {
		var dbRow dbDepartment
		var cid uint64
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.CompanyID, &dbRow.CreatedAt, &dbRow.UpdatedAt, &cid, &dbRow.CompanyName); err != nil {
			return nil, 0, err
		}
		departments = append(departments, dbRow.ToDTO())
	}
	return departments, total, rows.Err()
}

func (r *departmentRepository) FindDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s d
			JOIN companies c ON d.company_id = c.id
		WHERE d.id = $1`, departmentJoinFields, departmentTable)

	dbRow, err := r.scan(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	departmentDTO := dbRow.ToDTO()
	return &departmentDTO, nil
}

func (r *departmentRepository) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*dto.DepartmentDTO, error) {
	query := "INSERT INTO departments (name, company_id) VALUES($1, $2) RETURNING id"
	var id uint64
	err := r.storage.QueryRow(ctx, query, payload.Name, payload.CompanyID).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, apperrors.ErrConflict
			case "23503":
				return nil, apperrors.ErrReferenceNotFound
			}
		}
		return nil, err
	}
	return r.FindDepartment(ctx, id)
}

func (r *departmentRepository) UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*dto.DepartmentDTO, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	if payload.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argID))
		args = append(args, *payload.Name)
		argID++
	}
	if payload.CompanyID != nil {
		setClauses = append(setClauses, fmt.Sprintf("company_id = $%d", argID))
		args = append(args, *payload.CompanyID)
		argID++
	}
	if len(setClauses) == 0 {
		return r.FindDepartment(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE departments SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argID)
	args = append(args, id)

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, apperrors.ErrConflict
			case "23503":
				return nil, apperrors.ErrReferenceNotFound
			}
		}
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindDepartment(ctx, id)
}

func (r *departmentRepository) DeleteDepartment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM departments WHERE id = $1", id)
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
