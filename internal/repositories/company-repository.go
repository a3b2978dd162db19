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
	companyTable  = "companies"
	companyFields = "id, tax_id, name, address, business_line, created_at, updated_at"
)

type dbCompany struct {
	ID           uint64
	TaxID        string
	Name         string
	Address      sql.NullString
	BusinessLine sql.NullString
	CreatedAt    time.Time
	UpdatedAt    sql.NullTime
}

func (db *dbCompany) ToDTO() dto.CompanyDTO {
	return dto.CompanyDTO{
		ID:           db.ID,
		TaxID:        db.TaxID,
		Name:         db.Name,
		Address:      utils.NullStringToString(db.Address),
		BusinessLine: utils.NullStringToString(db.BusinessLine),
		CreatedAt:    db.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		UpdatedAt:    utils.NullTimeToEmptyString(db.UpdatedAt),
	}
}

type CompanyRepositoryInterface interface {
	GetCompanies(ctx context.Context, limit, offset uint64, search string) ([]dto.CompanyDTO, uint64, error)
	FindCompany(ctx context.Context, id uint64) (*dto.CompanyDTO, error)
	CreateCompany(ctx context.Context, payload dto.CreateCompanyDTO) (*dto.CompanyDTO, error)
	UpdateCompany(ctx context.Context, id uint64, payload dto.UpdateCompanyDTO) (*dto.CompanyDTO, error)
	DeleteCompany(ctx context.Context, id uint64) error
}

type companyRepository struct{ storage *pgxpool.Pool }

func NewCompanyRepository(storage *pgxpool.Pool) CompanyRepositoryInterface {
	return &companyRepository{storage: storage}
}

func (r *companyRepository) scanRow(row pgx.Row) (*dbCompany, error) {
	var dbRow dbCompany
	err := row.Scan(&dbRow.ID, &dbRow.TaxID, &dbRow.Name, &dbRow.Address, &dbRow.BusinessLine, &dbRow.CreatedAt, &dbRow.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &dbRow, nil
}

func (r *companyRepository) GetCompanies(ctx context.Context, limit, offset uint64, search string) ([]dto.CompanyDTO, uint64, error) {
	var total uint64
	var args []interface{}
	whereClause := ""

	if search != "" {
		whereClause = "WHERE name ILIKE $1 OR tax_id ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", companyTable, whereClause)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.CompanyDTO{}, 0, nil
	}

	queryArgs := append(args, limit, offset)
	query := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY name LIMIT $%d OFFSET $%d",
		companyFields, companyTable, whereClause, len(args)+1, len(args)+2)

	rows, err := r.storage.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	companies := make([]dto.CompanyDTO, 0)
	for rows.Next() {
		var dbRow dbCompany
		if err := rows.Scan(&dbRow.ID, &dbRow.TaxID, &dbRow.Name, &dbRow.Address, &dbRow.BusinessLine, &dbRow.CreatedAt, &dbRow.UpdatedAt); err != nil {
			return nil, 0, err
		}
		companies = append(companies, dbRow.ToDTO())
	}
	return companies, total, rows.Err()
}

func (r *companyRepository) FindCompany(ctx context.Context, id uint64) (*dto.CompanyDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", companyFields, companyTable)
	dbRow, err := r.scanRow(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	companyDTO := dbRow.ToDTO()
	return &companyDTO, nil
}

func (r *companyRepository) CreateCompany(ctx context.Context, payload dto.CreateCompanyDTO) (*dto.CompanyDTO, error) {
	query := fmt.Sprintf("INSERT INTO %s (tax_id, name, address, business_line) VALUES($1, $2, $3, $4) RETURNING %s",
		companyTable, companyFields)
	dbRow, err := r.scanRow(r.storage.QueryRow(ctx, query, payload.TaxID, payload.Name, payload.Address, payload.BusinessLine))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	companyDTO := dbRow.ToDTO()
	return &companyDTO, nil
}

func (r *companyRepository) UpdateCompany(ctx context.Context, id uint64, payload dto.UpdateCompanyDTO) (*dto.CompanyDTO, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	if payload.TaxID != nil {
		setClauses = append(setClauses, fmt.Sprintf("tax_id = $%d", argID))
		args = append(args, *payload.TaxID)
		argID++
	}
	if payload.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argID))
		args = append(args, *payload.Name)
		argID++
	}
	if payload.Address != nil {
		setClauses = append(setClauses, fmt.Sprintf("address = $%d", argID))
		args = append(args, *payload.Address)
		argID++
	}
	if payload.BusinessLine != nil {
		setClauses = append(setClauses, fmt.Sprintf("business_line = $%d", argID))
		args = append(args, *payload.BusinessLine)
		argID++
	}
	if len(setClauses) == 0 {
		return r.FindCompany(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		companyTable, strings.Join(setClauses, ", "), argID, companyFields)
	args = append(args, id)

	dbRow, err := r.scanRow(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	companyDTO := dbRow.ToDTO()
	return &companyDTO, nil
}

func (r *companyRepository) DeleteCompany(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", companyTable)
	result, err := r.storage.Exec(ctx, query, id)
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
