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
	maintenanceStatusTable  = "maintenance_statuses"
	maintenanceStatusFields = "id, code, name, created_at, updated_at"
)

type dbMaintenanceStatus struct {
	ID        uint64
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt sql.NullTime
}

func (db *dbMaintenanceStatus) ToDTO() dto.MaintenanceStatusDTO {
	return dto.MaintenanceStatusDTO{
		ID:        db.ID,
		Code:      db.Code,
		Name:      db.Name,
		CreatedAt: db.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		UpdatedAt: utils.NullTimeToEmptyString(db.UpdatedAt),
	}
}

type MaintenanceStatusRepositoryInterface interface {
	GetMaintenanceStatuses(ctx context.Context, limit, offset uint64) ([]dto.MaintenanceStatusDTO, uint64, error)
	FindMaintenanceStatus(ctx context.Context, id uint64) (*dto.MaintenanceStatusDTO, error)
	FindByCode(ctx context.Context, code string) (*dto.MaintenanceStatusDTO, error)
	CreateMaintenanceStatus(ctx context.Context, payload dto.CreateMaintenanceStatusDTO) (*dto.MaintenanceStatusDTO, error)
	UpdateMaintenanceStatus(ctx context.Context, id uint64, payload dto.UpdateMaintenanceStatusDTO) (*dto.MaintenanceStatusDTO, error)
	DeleteMaintenanceStatus(ctx context.Context, id uint64) error
}

type maintenanceStatusRepository struct{ storage *pgxpool.Pool }

func NewMaintenanceStatusRepository(storage *pgxpool.Pool) MaintenanceStatusRepositoryInterface {
	return &maintenanceStatusRepository{storage: storage}
}

func (r *maintenanceStatusRepository) GetMaintenanceStatuses(ctx context.Context, limit, offset uint64) ([]dto.MaintenanceStatusDTO, uint64, error) {
	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", maintenanceStatusTable)
	if err := r.storage.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.MaintenanceStatusDTO{}, 0, nil
	}

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id LIMIT $1 OFFSET $2",
		maintenanceStatusFields, maintenanceStatusTable)

	rows, err := r.storage.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	statuses := make([]dto.MaintenanceStatusDTO, 0)
	for rows.Next() {
		var dbRow dbMaintenanceStatus
		if err := rows.Scan(&dbRow.ID, &dbRow.Code, &dbRow.Name, &dbRow.CreatedAt, &dbRow.UpdatedAt); err != nil {
			return nil, 0, err
		}
		statuses = append(statuses, dbRow.ToDTO())
	}
	return statuses, total, rows.Err()
}

func (r *maintenanceStatusRepository) FindMaintenanceStatus(ctx context.Context, id uint64) (*dto.MaintenanceStatusDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", maintenanceStatusFields, maintenanceStatusTable)
	var dbRow dbMaintenanceStatus
	err := r.storage.QueryRow(ctx, query, id).Scan(&dbRow.ID, &dbRow.Code, &dbRow.Name, &dbRow.CreatedAt, &dbRow.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	statusDTO := dbRow.ToDTO()
	return &statusDTO, nil
}

func (r *maintenanceStatusRepository) FindByCode(ctx context.Context, code string) (*dto.MaintenanceStatusDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE code = $1 LIMIT 1", maintenanceStatusFields, maintenanceStatusTable)
	var dbRow dbMaintenanceStatus
	err := r.storage.QueryRow(ctx, query, code).Scan(&dbRow.ID, &dbRow.Code, &dbRow.Name, &dbRow.CreatedAt, &dbRow.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReferenceNotFound
		}
		return nil, err
	}
	statusDTO := dbRow.ToDTO()
	return &statusDTO, nil
}

func (r *maintenanceStatusRepository) CreateMaintenanceStatus(ctx context.Context, payload dto.CreateMaintenanceStatusDTO) (*dto.MaintenanceStatusDTO, error) {
	query := fmt.Sprintf("INSERT INTO %s (code, name) VALUES($1, $2) RETURNING %s",
		maintenanceStatusTable, maintenanceStatusFields)
	var dbRow dbMaintenanceStatus
	err := r.storage.QueryRow(ctx, query, payload.Code, payload.Name).Scan(&dbRow.ID, &dbRow.Code, &dbRow.Name, &dbRow.CreatedAt, &dbRow.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	statusDTO := dbRow.ToDTO()
	return &statusDTO, nil
}

func (r *maintenanceStatusRepository) UpdateMaintenanceStatus(ctx context.Context, id uint64, payload dto.UpdateMaintenanceStatusDTO) (*dto.MaintenanceStatusDTO, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	if payload.Code != nil {
		setClauses = append(setClauses, fmt.Sprintf("code = $%d", argID))
		args = append(args, *payload.Code)
		argID++
	}
	if payload.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argID))
		args = append(args, *payload.Name)
		argID++
	}
	if len(setClauses) == 0 {
		return r.FindMaintenanceStatus(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		maintenanceStatusTable, strings.Join(setClauses, ", "), argID, maintenanceStatusFields)
	args = append(args, id)

	var dbRow dbMaintenanceStatus
	err := r.storage.QueryRow(ctx, query, args...).Scan(&dbRow.ID, &dbRow.Code, &dbRow.Name, &dbRow.CreatedAt, &dbRow.UpdatedAt)
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
	statusDTO := dbRow.ToDTO()
	return &statusDTO, nil
}

func (r *maintenanceStatusRepository) DeleteMaintenanceStatus(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", maintenanceStatusTable), id)
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
