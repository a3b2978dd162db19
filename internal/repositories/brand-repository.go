package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inventory-system/internal/dto"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	brandTable  = "brands"
	brandFields = "id, name, created_at, updated_at"
)

type dbBrand struct {
	ID        uint64
	Name      string
	CreatedAt time.Time
	UpdatedAt sql.NullTime
}

func (db *dbBrand) ToDTO() dto.BrandDTO {
	return dto.BrandDTO{
		ID:        db.ID,
		Name:      db.Name,
		CreatedAt: db.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		UpdatedAt: utils.NullTimeToEmptyString(db.UpdatedAt),
	}
}

type BrandRepositoryInterface interface {
	GetBrands(ctx context.Context, limit, offset uint64, search string) ([]dto.BrandDTO, uint64, error)
	FindBrand(ctx context.Context, id uint64) (*dto.BrandDTO, error)
	CreateBrand(ctx context.Context, payload dto.CreateBrandDTO) (*dto.BrandDTO, error)
	UpdateBrand(ctx context.Context, id uint64, payload dto.UpdateBrandDTO) (*dto.BrandDTO, error)
	DeleteBrand(ctx context.Context, id uint64) error
}

type brandRepository struct{ storage *pgxpool.Pool }

func NewBrandRepository(storage *pgxpool.Pool) BrandRepositoryInterface {
	return &brandRepository{storage: storage}
}

func (r *brandRepository) GetBrands(ctx context.Context, limit, offset uint64, search string) ([]dto.BrandDTO, uint64, error) {
	var total uint64
	var args []interface{}
	whereClause := ""

	if search != "" {
		whereClause = "WHERE name ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", brandTable, whereClause)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.BrandDTO{}, 0, nil
	}

	queryArgs := append(args, limit, offset)
	query := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY name LIMIT $%d OFFSET $%d",
		brandFields, brandTable, whereClause, len(args)+1, len(args)+2)

	rows, err := r.storage.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	brands := make([]dto.BrandDTO, 0)
	for rows.Next() {
		var dbRow dbBrand
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.CreatedAt, &dbRow.UpdatedAt); err != nil {
			return nil, 0, err
		}
		brands = append(brands, dbRow.ToDTO())
	}
	return brands, total, rows.Err()
}

func (r *brandRepository) FindBrand(ctx context.Context, id uint64) (*dto.BrandDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", brandFields, brandTable)
	var dbRow dbBrand
	err := r.storage.QueryRow(ctx, query, id).Scan(&dbRow.ID, &dbRow.Name, &dbRow.CreatedAt, &dbRow.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	brandDTO := dbRow.ToDTO()
	return &brandDTO, nil
}

func (r *brandRepository) CreateBrand(ctx context.Context, payload dto.CreateBrandDTO) (*dto.BrandDTO, error) {
	query := fmt.Sprintf("INSERT INTO %s (name) VALUES($1) RETURNING %s", brandTable, brandFields)
	var dbRow dbBrand
	err := r.storage.QueryRow(ctx, query, payload.Name).Scan(&dbRow.ID, &dbRow.Name, &dbRow.CreatedAt, &dbRow.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	brandDTO := dbRow.ToDTO()
	return &brandDTO, nil
}

func (r *brandRepository) UpdateBrand(ctx context.Context, id uint64, payload dto.UpdateBrandDTO) (*dto.BrandDTO, error) {
	if payload.Name == nil {
		return r.FindBrand(ctx, id)
	}

	query := fmt.Sprintf("UPDATE %s SET name = $1, updated_at = NOW() WHERE id = $2 RETURNING %s", brandTable, brandFields)
	var dbRow dbBrand
	err := r.storage.QueryRow(ctx, query, *payload.Name, id).Scan(&dbRow.ID, &dbRow.Name, &dbRow.CreatedAt, &dbRow.UpdatedAt)
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
	brandDTO := dbRow.ToDTO()
	return &brandDTO, nil
}

func (r *brandRepository) DeleteBrand(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", brandTable)
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
