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
	equipmentStatusTable  = "equipment_statuses"
	equipmentStatusFields = "id, code, name, created_at, updated_at"
)

type dbEquipmentStatus struct {
	ID        uint64
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt sql.NullTime
}

func (db *dbEquipmentStatus) ToDTO() dto.EquipmentStatusDTO {
	return dto.EquipmentStatusDTO{
		ID:        db.ID,
		Code:      db.Code,
		Name:      db.Name,
		CreatedAt: db.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		UpdatedAt: utils.NullTimeToEmptyString(db.UpdatedAt),
	}
}

type EquipmentStatusRepositoryInterface interface {
	GetEquipmentStatuses(ctx context.Context, limit, offset uint64, search string) ([]dto.EquipmentStatusDTO, uint64, error)
	FindEquipmentStatus(ctx context.Context, id uint64) (*dto.EquipmentStatusDTO, error)
	FindByCode(ctx context.Context, code string) (*dto.EquipmentStatusDTO, error)
	CreateEquipmentStatus(ctx context.Context, payload dto.CreateEquipmentStatusDTO) (*dto.EquipmentStatusDTO, error)
	UpdateEquipmentStatus(ctx context.Context, id uint64, payload dto.UpdateEquipmentStatusDTO) (*dto.EquipmentStatusDTO, error)
	DeleteEquipmentStatus(ctx context.Context, id uint64) error
}

type equipmentStatusRepository struct{ storage *pgxpool.Pool }

func NewEquipmentStatusRepository(storage *pgxpool.Pool) EquipmentStatusRepositoryInterface {
	return &equipmentStatusRepository{storage: storage}
}

func (r *equipmentStatusRepository) GetEquipmentStatuses(ctx context.Context, limit, offset uint64, search string) ([]dto.EquipmentStatusDTO, uint64, error) {
	var total uint64
	var args []interface{}
	whereClause := ""

	if search != "" {
		whereClause = "WHERE name ILIKE $1 OR code ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", equipmentStatusTable, whereClause)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.EquipmentStatusDTO{}, 0, nil
	}

	queryArgs := append(args, limit, offset)
	query := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY id LIMIT $%d OFFSET $%d",
		equipmentStatusFields, equipmentStatusTable, whereClause, len(args)+1, len(args)+2)

	rows, err := r.storage.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	statuses := make([]dto.EquipmentStatusDTO, 0)
	for rows.Next() {
		var dbRow dbEquipmentStatus
		if err := rows.Scan(&dbRow.ID, &dbRow.Code, &dbRow.Name, &dbRow.CreatedAt, &dbRow.UpdatedAt); err != nil {
			return nil, 0, err
		}
		statuses = append(statuses, dbRow.ToDTO())
	}
	return statuses, total, rows.Err()
}

func (r *equipmentStatusRepository) FindEquipmentStatus(ctx context.Context, id uint64) (*dto.EquipmentStatusDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", equipmentStatusFields, equipmentStatusTable)
	var dbRow dbEquipmentStatus
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

// FindByCode ищет статус по символьному коду (IN_STORAGE, ASSIGNED и т.д.).
func (r *equipmentStatusRepository) FindByCode(ctx context.Context, code string) (*dto.EquipmentStatusDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE code = $1 LIMIT 1", equipmentStatusFields, equipmentStatusTable)
	var dbRow dbEquipmentStatus
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

func (r *equipmentStatusRepository) CreateEquipmentStatus(ctx context.Context, payload dto.CreateEquipmentStatusDTO) (*dto.EquipmentStatusDTO, error) {
	query := fmt.Sprintf("INSERT INTO %s (code, name) VALUES($1, $2) RETURNING %s", equipmentStatusTable, equipmentStatusFields)
	var dbRow dbEquipmentStatus
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

func (r *equipmentStatusRepository) UpdateEquipmentStatus(ctx context.Context, id uint64, payload dto.UpdateEquipmentStatusDTO) (*dto.EquipmentStatusDTO, error) {
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
		return r.FindEquipmentStatus(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		equipmentStatusTable, strings.Join(setClauses, ", "), argID, equipmentStatusFields)
	args = append(args, id)

	var dbRow dbEquipmentStatus
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

func (r *equipmentStatusRepository) DeleteEquipmentStatus(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentStatusTable)
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
