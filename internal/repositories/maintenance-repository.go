package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maintenanceTable    = "maintenance_requests"
	maintenanceFields   = "id, equipment_id, status_id, requested_at, description, cost, created_at, updated_at"
	maintenanceLogTable = "maintenance_logs"
)

type MaintenanceRepositoryInterface interface {
	GetMaintenanceRequests(ctx context.Context, limit, offset uint64, statusID, companyID *uint64) ([]entities.MaintenanceRequest, uint64, error)
	FindMaintenanceRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error)
	CreateInTx(ctx context.Context, tx pgx.Tx, request *entities.MaintenanceRequest) (uint64, error)
	FindForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.MaintenanceRequest, error)
	UpdateInTx(ctx context.Context, tx pgx.Tx, request *entities.MaintenanceRequest) error
	DeleteMaintenanceRequest(ctx context.Context, id uint64) error

	CreateLogInTx(ctx context.Context, tx pgx.Tx, logEntry *entities.MaintenanceLog) error
	FindLogsByRequestID(ctx context.Context, requestID uint64) ([]entities.MaintenanceLog, error)
}

type maintenanceRepository struct{ storage *pgxpool.Pool }

func NewMaintenanceRepository(storage *pgxpool.Pool) MaintenanceRepositoryInterface {
	return &maintenanceRepository{storage: storage}
}

func scanMaintenanceRequest(row pgx.Row) (*entities.MaintenanceRequest, error) {
	var m entities.MaintenanceRequest
	err := row.Scan(
		&m.ID, &m.EquipmentID, &m.StatusID, &m.RequestedAt,
		&m.Description, &m.Cost, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *maintenanceRepository) GetMaintenanceRequests(ctx context.Context, limit, offset uint64, statusID, companyID *uint64) ([]entities.MaintenanceRequest, uint64, error) {
	var conditions []string
	var args []interface{}

	if statusID != nil {
		args = append(args, *statusID)
		conditions = append(conditions, fmt.Sprintf("m.status_id = $%d", len(args)))
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
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s m
			JOIN equipments e ON m.equipment_id = e.id
		%s`, maintenanceTable, whereClause)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.MaintenanceRequest{}, 0, nil
	}

	queryArgs := append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT m.id, m.equipment_id, m.status_id, m.requested_at, m.description, m.cost,
			m.created_at, m.updated_at,
			e.name, e.label,
			s.id, s.code, s.name
		FROM %s m
			JOIN equipments e ON m.equipment_id = e.id
			JOIN maintenance_statuses s ON m.status_id = s.id
		%s
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $%d OFFSET $%d`,
		maintenanceTable, whereClause, len(args)+1, len(args)+2)

	rows, err := r.storage.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	requests := make([]entities.MaintenanceRequest, 0)
	for rows.Next() {
		var m entities.MaintenanceRequest
		var equipment entities.Equipment
		var status entities.MaintenanceStatus
		if err := rows.Scan(
			&m.ID, &m.EquipmentID, &m.StatusID, &m.RequestedAt, &m.Description, &m.Cost,
			&m.CreatedAt, &m.UpdatedAt,
			&equipment.Name, &equipment.Label,
			&status.ID, &status.Code, &status.Name,
		); err != nil {
			return nil, 0, err
		}
		equipment.ID = m.EquipmentID
		m.Equipment = &equipment
		m.Status = &status
		requests = append(requests, m)
	}
	return requests, total, rows.Err()
}

func (r *maintenanceRepository) FindMaintenanceRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	query := fmt.Sprintf(`
		SELECT m.id, m.equipment_id, m.status_id, m.requested_at, m.description, m.cost,
			m.created_at, m.updated_at,
			e.name, e.label,
			s.id, s.code, s.name
		FROM %s m
			JOIN equipments e ON m.equipment_id = e.id
			JOIN maintenance_statuses s ON m.status_id = s.id
		WHERE m.id = $1`, maintenanceTable)

	var m entities.MaintenanceRequest
	var equipment entities.Equipment
	var status entities.MaintenanceStatus
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.EquipmentID, &m.StatusID, &m.RequestedAt, &m.Description, &m.Cost,
		&m.CreatedAt, &m.UpdatedAt,
		&equipment.Name, &equipment.Label,
		&status.ID, &status.Code, &status.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	equipment.ID = m.EquipmentID
	m.Equipment = &equipment
	m.Status = &status
	return &m, nil
}

func (r *maintenanceRepository) CreateInTx(ctx context.Context, tx pgx.Tx, request *entities.MaintenanceRequest) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (equipment_id, status_id, requested_at, description, cost)
		VALUES ($1, $2, COALESCE($3, NOW()), $4, $5)
		RETURNING id`, maintenanceTable)

	var id uint64
	err := tx.QueryRow(ctx, query,
		request.EquipmentID, request.StatusID, request.RequestedAt,
		request.Description, request.Cost,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return 0, apperrors.ErrReferenceNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *maintenanceRepository) FindForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.MaintenanceRequest, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1 FOR UPDATE", maintenanceFields, maintenanceTable)
	request, err := scanMaintenanceRequest(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return request, nil
}

func (r *maintenanceRepository) UpdateInTx(ctx context.Context, tx pgx.Tx, request *entities.MaintenanceRequest) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status_id = $1, description = $2, cost = $3, updated_at = NOW()
		WHERE id = $4`, maintenanceTable)

	result, err := tx.Exec(ctx, query, request.StatusID, request.Description, request.Cost, request.ID)
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

func (r *maintenanceRepository) DeleteMaintenanceRequest(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", maintenanceTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *maintenanceRepository) CreateLogInTx(ctx context.Context, tx pgx.Tx, logEntry *entities.MaintenanceLog) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (maintenance_id, equipment_id, label, equipment_name, status_name, action, detail, actor_name, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`, maintenanceLogTable)

	_, err := tx.Exec(ctx, query,
		logEntry.MaintenanceID, logEntry.EquipmentID, logEntry.Label, logEntry.EquipmentName,
		logEntry.StatusName, logEntry.Action, logEntry.Detail, logEntry.ActorName, logEntry.OccurredAt,
	)
	return err
}

func (r *maintenanceRepository) FindLogsByRequestID(ctx context.Context, requestID uint64) ([]entities.MaintenanceLog, error) {
	query := fmt.Sprintf(`
		SELECT id, maintenance_id, equipment_id, label, equipment_name, status_name, action, detail, actor_name, occurred_at
		FROM %s
		WHERE maintenance_id = $1
		ORDER BY occurred_at DESC, id DESC`, maintenanceLogTable)

	rows, err := r.storage.Query(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]entities.MaintenanceLog, 0)
	for rows.Next() {
		var l entities.MaintenanceLog
		if err := rows.Scan(
			&l.ID, &l.MaintenanceID, &l.EquipmentID, &l.Label, &l.EquipmentName,
			&l.StatusName, &l.Action, &l.Detail, &l.ActorName, &l.OccurredAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
