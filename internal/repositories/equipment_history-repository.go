package repositories

import (
	"context"
	"fmt"

	"inventory-system/internal/entities"
	"inventory-system/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	equipmentHistoryTable  = "equipment_history"
	equipmentHistoryFields = "equipment_id, label, equipment_name, type_id, occurred_at, prev_status_id, new_status_id, prev_employee_id, new_employee_id, actor_employee_id, company_id, department_id, action, comment"
)

const equipmentHistoryListColumns = `history.id AS history_id, history.equipment_id AS history_equipment_id,
	history.label AS history_label, history.equipment_name AS history_equipment_name,
	history.occurred_at AS history_occurred_at, history.action AS history_action, history.comment AS history_comment,
	type.id AS type_id, type.name AS type_name,
	prevstatus.id AS prevstatus_id, prevstatus.name AS prevstatus_name,
	newstatus.id AS newstatus_id, newstatus.name AS newstatus_name,
	prevemp.id AS prevemp_id, prevemp.first_name AS prevemp_first_name, prevemp.last_name AS prevemp_last_name,
	newemp.id AS newemp_id, newemp.first_name AS newemp_first_name, newemp.last_name AS newemp_last_name,
	actor.id AS actor_id, actor.first_name AS actor_first_name, actor.last_name AS actor_last_name,
	company.id AS company_id, company.name AS company_name,
	department.id AS department_id, department.name AS department_name`

// EquipmentHistoryItem - строка журнала, обогащенная именами для выдачи наружу.
type EquipmentHistoryItem struct {
	entities.EquipmentHistory
	TypeName         string
	PrevStatusName   string
	NewStatusName    string
	PrevEmployeeName string
	NewEmployeeName  string
	ActorName        string
	CompanyName      string
	DepartmentName   string
}

type EquipmentHistoryRepositoryInterface interface {
	CreateInTx(ctx context.Context, tx pgx.Tx, history *entities.EquipmentHistory) error
	CreateBulkInTx(ctx context.Context, tx pgx.Tx, items []entities.EquipmentHistory) error
	FindByEquipmentID(ctx context.Context, equipmentID uint64) ([]EquipmentHistoryItem, error)
	GetHistory(ctx context.Context, filter types.Filter, companyID *uint64) ([]map[string]interface{}, uint64, error)
}

type EquipmentHistoryRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentHistoryRepository(storage *pgxpool.Pool) EquipmentHistoryRepositoryInterface {
	return &EquipmentHistoryRepository{storage: storage}
}

func (r *EquipmentHistoryRepository) CreateInTx(ctx context.Context, tx pgx.Tx, history *entities.EquipmentHistory) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		equipmentHistoryTable, equipmentHistoryFields)

	_, err := tx.Exec(ctx, query,
		history.EquipmentID, history.Label, history.EquipmentName, history.TypeID,
		history.OccurredAt, history.PrevStatusID, history.NewStatusID,
		history.PrevEmployeeID, history.NewEmployeeID, history.ActorEmployeeID,
		history.CompanyID, history.DepartmentID, history.Action, history.Comment,
	)
	return err
}

// CreateBulkInTx пишет пачку записей аудита одним раундтрипом. Повтор той же
// массовой операции гасится уникальным индексом (equipment_id, occurred_at, action):
// дубликаты молча пропускаются.
func (r *EquipmentHistoryRepository) CreateBulkInTx(ctx context.Context, tx pgx.Tx, items []entities.EquipmentHistory) error {
	if len(items) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (equipment_id, occurred_at, action) DO NOTHING`,
		equipmentHistoryTable, equipmentHistoryFields)

	batch := &pgx.Batch{}
	for _, h := range items {
		batch.Queue(query,
			h.EquipmentID, h.Label, h.EquipmentName, h.TypeID,
			h.OccurredAt, h.PrevStatusID, h.NewStatusID,
			h.PrevEmployeeID, h.NewEmployeeID, h.ActorEmployeeID,
			h.CompanyID, h.DepartmentID, h.Action, h.Comment,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range items {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return results.Close()
}

// FindByEquipmentID возвращает журнал одной единицы от свежих записей к старым.
func (r *EquipmentHistoryRepository) FindByEquipmentID(ctx context.Context, equipmentID uint64) ([]EquipmentHistoryItem, error) {
	query := fmt.Sprintf(`
		SELECT h.id, h.equipment_id, h.label, h.equipment_name, h.type_id, h.occurred_at,
			h.prev_status_id, h.new_status_id, h.prev_employee_id, h.new_employee_id,
			h.actor_employee_id, h.company_id, h.department_id, h.action, h.comment,
			COALESCE(t.name, ''),
			COALESCE(ps.name, ''), COALESCE(ns.name, ''),
			COALESCE(pe.last_name || ' ' || pe.first_name, ''),
			COALESCE(ne.last_name || ' ' || ne.first_name, ''),
			COALESCE(a.last_name || ' ' || a.first_name, ''),
			COALESCE(c.name, ''), COALESCE(d.name, '')
		FROM %s h
			LEFT JOIN equipment_types t ON h.type_id = t.id
			LEFT JOIN equipment_statuses ps ON h.prev_status_id = ps.id
			LEFT JOIN equipment_statuses ns ON h.new_status_id = ns.id
			LEFT JOIN employees pe ON h.prev_employee_id = pe.id
			LEFT JOIN employees ne ON h.new_employee_id = ne.id
			LEFT JOIN employees a ON h.actor_employee_id = a.id
			LEFT JOIN companies c ON h.company_id = c.id
			LEFT JOIN departments d ON h.department_id = d.id
		WHERE h.equipment_id = $1
		ORDER BY h.occurred_at DESC, h.id DESC`, equipmentHistoryTable)

	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]EquipmentHistoryItem, 0)
	for rows.Next() {
		var item EquipmentHistoryItem
		if err := rows.Scan(
			&item.ID, &item.EquipmentID, &item.Label, &item.EquipmentName, &item.TypeID, &item.OccurredAt,
			&item.PrevStatusID, &item.NewStatusID, &item.PrevEmployeeID, &item.NewEmployeeID,
			&item.ActorEmployeeID, &item.CompanyID, &item.DepartmentID, &item.Action, &item.Comment,
			&item.TypeName,
			&item.PrevStatusName, &item.NewStatusName,
			&item.PrevEmployeeName, &item.NewEmployeeName,
			&item.ActorName,
			&item.CompanyName, &item.DepartmentName,
		); err != nil {
			return nil, err
		}
		history = append(history, item)
	}
	return history, rows.Err()
}

// GetHistory - сквозной журнал по всему парку с фильтрами и пагинацией.
func (r *EquipmentHistoryRepository) GetHistory(ctx context.Context, filter types.Filter, companyID *uint64) ([]map[string]interface{}, uint64, error) {
	where := map[string]interface{}{}
	if companyID != nil {
		where["history.company_id"] = *companyID
	}

	return FetchDataAndCount(ctx, r.storage, Params{
		Table:   equipmentHistoryTable,
		Alias:   "history",
		Columns: equipmentHistoryListColumns,
		Relations: []Join{
			{Table: "equipment_types", Alias: "type", OnLeft: "type.id", OnRight: "history.type_id", JoinType: "LEFT"},
			{Table: "equipment_statuses", Alias: "prevstatus", OnLeft: "prevstatus.id", OnRight: "history.prev_status_id", JoinType: "LEFT"},
			{Table: "equipment_statuses", Alias: "newstatus", OnLeft: "newstatus.id", OnRight: "history.new_status_id", JoinType: "LEFT"},
			{Table: "employees", Alias: "prevemp", OnLeft: "prevemp.id", OnRight: "history.prev_employee_id", JoinType: "LEFT"},
			{Table: "employees", Alias: "newemp", OnLeft: "newemp.id", OnRight: "history.new_employee_id", JoinType: "LEFT"},
			{Table: "employees", Alias: "actor", OnLeft: "actor.id", OnRight: "history.actor_employee_id", JoinType: "LEFT"},
			{Table: "companies", Alias: "company", OnLeft: "company.id", OnRight: "history.company_id", JoinType: "LEFT"},
			{Table: "departments", Alias: "department", OnLeft: "department.id", OnRight: "history.department_id", JoinType: "LEFT"},
		},
		WithPg: true,
		Limit:  filter.Limit,
		Offset: filter.Offset,
		Search: filter.Search,
		Filter: filter.Filter,
		Where:  where,
		Sort:   filter.Sort,
		AllowedFilterColumns: []string{
			"history.equipment_id", "history.action", "history.type_id",
			"history.new_status_id", "history.new_employee_id",
			"history.company_id", "history.department_id",
		},
		AllowedSearchColumns: []string{"history.equipment_name", "history.label"},
		AllowedSortColumns:   []string{"history.id", "history.occurred_at"},
		DefaultOrder:         "history.occurred_at DESC, history.id DESC",

		GroupRelatedFieldsByPrefix: true,
	})
}
