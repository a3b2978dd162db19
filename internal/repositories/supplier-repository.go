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
	supplierTable  = "suppliers"
	supplierFields = "id, name, tax_id, created_at, updated_at"
)

type dbSupplier struct {
	ID        uint64
	Name      string
	TaxID     sql.NullString
	CreatedAt time.Time
	UpdatedAt sql.NullTime
}

func (db *dbSupplier) ToDTO() dto.SupplierDTO {
	return dto.SupplierDTO{
		ID:        db.ID,
		Name:      db.Name,
		TaxID:     utils.NullStringToString(db.TaxID),
		CreatedAt: db.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		UpdatedAt: utils.NullTimeToEmptyString(db.UpdatedAt),
	}
}

type SupplierRepositoryInterface interface {
	GetSuppliers(ctx context.Context, limit, offset uint64, search string) ([]dto.SupplierDTO, uint64, error)
	FindSupplier(ctx context.Context, id uint64) (*dto.SupplierDTO, error)
	CreateSupplier(ctx context.Context, payload dto.CreateSupplierDTO) (*dto.SupplierDTO, error)
	UpdateSupplier(ctx context.Context, id uint64, payload dto.UpdateSupplierDTO) (*dto.SupplierDTO, error)
	DeleteSupplier(ctx context.Context, id uint64) error
}

type supplierRepository struct{ storage *pgxpool.Pool }

func NewSupplierRepository(storage *pgxpool.Pool) SupplierRepositoryInterface {
	return &supplierRepository{storage: storage}
}

func (r *supplierRepository) GetSuppliers(ctx context.Context, limit, offset uint64, search string) ([]dto.SupplierDTO, uint64, error) {
	var total uint64
	var args []interface{}
	whereClause := ""

	if search != "" {
		whereClause = "WHERE name ILIKE $1 OR tax_id ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", supplierTable, whereClause)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.SupplierDTO{}, 0, nil
	}

	queryArgs := append(args, limit, offset)
	query := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY name LIMIT $%d OFFSET $%d",
		supplierFields, supplierTable, whereClause, len(args)+1, len(args)+2)

	rows, err := r.storage.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	suppliers := make([]dto.SupplierDTO, 0)
	for rows.Next() {
		var dbRow dbSupplier
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.TaxID, &dbRow.CreatedAt, &dbRow.UpdatedAt); err != nil {
			return nil, 0, err
		}
		suppliers = append(suppliers, dbRow.ToDTO())
	}
	return suppliers, total, rows.Err()
}

func (r *supplierRepository) FindSupplier(ctx context.Context, id uint64) (*dto.SupplierDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", supplierFields, supplierTable)
	var dbRow dbSupplier
	err := r.storage.QueryRow(ctx, query, id).Scan(&dbRow.ID, &dbRow.Name, &dbRow.TaxID, &dbRow.CreatedAt, &dbRow.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	supplierDTO := dbRow.ToDTO()
	return &supplierDTO, nil
}

func (r *supplierRepository) CreateSupplier(ctx context.Context, payload dto.CreateSupplierDTO) (*dto.SupplierDTO, error) {
	query := fmt.Sprintf("INSERT INTO %s (name, tax_id) VALUES($1, $2) RETURNING %s", supplierTable, supplierFields)
	var dbRow dbSupplier
	err := r.storage.QueryRow(ctx, query, payload.Name, payload.TaxID).Scan(&dbRow.ID, &dbRow.Name, &dbRow.TaxID, &dbRow.CreatedAt, &dbRow.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	supplierDTO := dbRow.ToDTO()
	return &supplierDTO, nil
}

func (r *supplierRepository) UpdateSupplier(ctx context.Context, id uint64, payload dto.UpdateSupplierDTO) (*dto.SupplierDTO, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	if payload.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argID))
		args = append(args, *payload.Name)
		argID++
	}
	if payload.TaxID != nil {
		setClauses = append(setClauses, fmt.Sprintf("tax_id = $%d", argID))
		args = append(args, *payload.TaxID)
		argID++
	}
	if len(setClauses) == 0 {
		return r.FindSupplier(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		supplierTable, strings.Join(setClauses, ", "), argID, supplierFields)
	args = append(args, id)

	var dbRow dbSupplier
	err := r.storage.QueryRow(ctx, query, args...).Scan(&dbRow.ID, &dbRow.Name, &dbRow.TaxID, &dbRow.CreatedAt, &dbRow.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	supplierDTO := dbRow.ToDTO()
	return &supplierDTO, nil
}

func (r *supplierRepository) DeleteSupplier(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", supplierTable)
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
