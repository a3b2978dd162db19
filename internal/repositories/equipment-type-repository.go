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
	equipmentTypeTable  = "equipment_types"
	equipmentTypeFields = "id, name, created_at, updated_at"
	typeAttributeTable  = "type_attributes"
)

type dbEquipmentType struct {
	ID        uint64
	Name      string
	CreatedAt time.Time
	UpdatedAt sql.NullTime
}

func (db *dbEquipmentType) ToDTO() dto.EquipmentTypeDTO {
	return dto.EquipmentTypeDTO{
		ID:        db.ID,
		Name:      db.Name,
		CreatedAt: db.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		UpdatedAt: utils.NullTimeToEmptyString(db.UpdatedAt),
	}
}

type EquipmentTypeRepositoryInterface interface {
	GetEquipmentTypes(ctx context.Context, limit, offset uint64, search string) ([]dto.EquipmentTypeDTO, uint64, error)
	FindEquipmentType(ctx context.Context, id uint64) (*dto.EquipmentTypeDTO, error)
	CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error)
	UpdateEquipmentType(ctx context.Context, id uint64, payload dto.UpdateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error)
	DeleteEquipmentType(ctx context.Context, id uint64) error

	GetTypeAttributes(ctx context.Context, typeID uint64) ([]dto.TypeAttributeDTO, error)
	AddTypeAttribute(ctx context.Context, typeID uint64, payload dto.UpsertTypeAttributeDTO) (*dto.TypeAttributeDTO, error)
	DeleteTypeAttribute(ctx context.Context, typeID, attributeID uint64) error
}

type equipmentTypeRepository struct{ storage *pgxpool.Pool }

func NewEquipmentTypeRepository(storage *pgxpool.Pool) EquipmentTypeRepositoryInterface {
	return &equipmentTypeRepository{storage: storage}
}

func (r *equipmentTypeRepository) GetEquipmentTypes(ctx context.Context, limit, offset uint64, search string) ([]dto.EquipmentTypeDTO, uint64, error) {
	var total uint64
	var args []interface{}
	whereClause := ""

	if search != "" {
		whereClause = "WHERE name ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", equipmentTypeTable, whereClause)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.EquipmentTypeDTO{}, 0, nil
	}

	queryArgs := append(args, limit, offset)
	query := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY name LIMIT $%d OFFSET $%d",
		equipmentTypeFields, equipmentTypeTable, whereClause, len(args)+1, len(args)+2)

	rows, err := r.storage.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	equipmentTypes := make([]dto.EquipmentTypeDTO, 0)
	for rows.Next() {
		var dbRow dbEquipmentType
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.CreatedAt, &dbRow.UpdatedAt); err != nil {
			return nil, 0, err
		}
		equipmentTypes = append(equipmentTypes, dbRow.ToDTO())
	}
	return equipmentTypes, total, rows.Err()
}

func (r *equipmentTypeRepository) FindEquipmentType(ctx context.Context, id uint64) (*dto.EquipmentTypeDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", equipmentTypeFields, equipmentTypeTable)
	var dbRow dbEquipmentType
	err := r.storage.QueryRow(ctx, query, id).Scan(&dbRow.ID, &dbRow.Name, &dbRow.CreatedAt, &dbRow.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	typeDTO := dbRow.ToDTO()
	return &typeDTO, nil
}

func (r *equipmentTypeRepository) CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error) {
	query := fmt.Sprintf("INSERT INTO %s (name) VALUES($1) RETURNING %s", equipmentTypeTable, equipmentTypeFields)
	var dbRow dbEquipmentType
	err := r.storage.QueryRow(ctx, query, payload.Name).Scan(&dbRow.ID, &dbRow.Name, &dbRow.CreatedAt, &dbRow.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	typeDTO := dbRow.ToDTO()
	return &typeDTO, nil
}

func (r *equipmentTypeRepository) UpdateEquipmentType(ctx context.Context, id uint64, payload dto.UpdateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error) {
	if payload.Name == nil {
		return r.FindEquipmentType(ctx, id)
	}

	query := fmt.Sprintf("UPDATE %s SET name = $1, updated_at = NOW() WHERE id = $2 RETURNING %s",
		equipmentTypeTable, equipmentTypeFields)
	var dbRow dbEquipmentType
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
	typeDTO := dbRow.ToDTO()
	return &typeDTO, nil
}

func (r *equipmentTypeRepository) DeleteEquipmentType(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentTypeTable)
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

func (r *equipmentTypeRepository) GetTypeAttributes(ctx context.Context, typeID uint64) ([]dto.TypeAttributeDTO, error) {
	query := fmt.Sprintf("SELECT id, type_id, attribute, value FROM %s WHERE type_id = $1 ORDER BY attribute", typeAttributeTable)
	rows, err := r.storage.Query(ctx, query, typeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attributes := make([]dto.TypeAttributeDTO, 0)
	for rows.Next() {
		var attr dto.TypeAttributeDTO
		if err := rows.Scan(&attr.ID, &attr.TypeID, &attr.Attribute, &attr.Value); err != nil {
			return nil, err
		}
		attributes = append(attributes, attr)
	}
	return attributes, rows.Err()
}

func (r *equipmentTypeRepository) AddTypeAttribute(ctx context.Context, typeID uint64, payload dto.UpsertTypeAttributeDTO) (*dto.TypeAttributeDTO, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (type_id, attribute, value) VALUES($1, $2, $3)
		ON CONFLICT (type_id, attribute) DO UPDATE SET value = EXCLUDED.value
		RETURNING id, type_id, attribute, value`, typeAttributeTable)

	var attr dto.TypeAttributeDTO
	err := r.storage.QueryRow(ctx, query, typeID, payload.Attribute, payload.Value).Scan(&attr.ID, &attr.TypeID, &attr.Attribute, &attr.Value)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, apperrors.ErrReferenceNotFound
		}
		return nil, err
	}
	return &attr, nil
}

func (r *equipmentTypeRepository) DeleteTypeAttribute(ctx context.Context, typeID, attributeID uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND type_id = $2", typeAttributeTable)
	result, err := r.storage.Exec(ctx, query, attributeID, typeID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
