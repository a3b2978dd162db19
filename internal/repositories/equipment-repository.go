package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	equipmentTable  = "equipments"
	equipmentFields = "id, name, label, brand_id, type_id, status_id, employee_id, supplier_id, company_id, department_id, created_at, updated_at"
)

const equipmentListColumns = `equipments.id AS equipments_id, equipments.name AS equipments_name, equipments.label AS equipments_label,
	equipments.created_at AS equipments_created_at, equipments.updated_at AS equipments_updated_at,
	brand.id AS brand_id, brand.name AS brand_name,
	type.id AS type_id, type.name AS type_name,
	status.id AS status_id, status.code AS status_code, status.name AS status_name,
	employee.id AS employee_id, employee.first_name AS employee_first_name, employee.last_name AS employee_last_name,
	company.id AS company_id, company.name AS company_name,
	department.id AS department_id, department.name AS department_name`

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter, companyID *uint64) ([]map[string]interface{}, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipmentInTx(ctx context.Context, tx pgx.Tx, equipment *entities.Equipment) (uint64, error)
	FindForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error)
	UpdateEquipmentInTx(ctx context.Context, tx pgx.Tx, equipment *entities.Equipment) error
	LockAvailableInTx(ctx context.Context, tx pgx.Tx, ids []uint64, statusID uint64, companyID *uint64) ([]entities.Equipment, error)
	LockAssignedInTx(ctx context.Context, tx pgx.Tx, ids []uint64, companyID *uint64) ([]entities.Equipment, error)
	BulkAssignInTx(ctx context.Context, tx pgx.Tx, ids []uint64, employee *entities.Employee, statusID uint64) error
	BulkUnassignInTx(ctx context.Context, tx pgx.Tx, ids []uint64, statusID uint64) error
	DeleteEquipment(ctx context.Context, id uint64) error
}

type equipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &equipmentRepository{storage: storage}
}

func (r *equipmentRepository) GetEquipments(ctx context.Context, filter types.Filter, companyID *uint64) ([]map[string]interface{}, uint64, error) {
	where := map[string]interface{}{}
	if companyID != nil {
		where["equipments.company_id"] = *companyID
	}

	// filter[available]=true сужает выборку до свободного оборудования
	// (на складе, без ответственного); filter[in_use]=true - до выданного.
	if raw, ok := filter.Filter["available"]; ok {
		delete(filter.Filter, "available")
		if fmt.Sprintf("%v", raw) == "true" {
			where["status.code"] = constants.EquipmentStatusInStorage
			where["equipments.employee_id"] = nil
		}
	}
	if raw, ok := filter.Filter["in_use"]; ok {
		delete(filter.Filter, "in_use")
		if fmt.Sprintf("%v", raw) == "true" {
			where["status.code"] = constants.EquipmentStatusAssigned
		}
	}

	return FetchDataAndCount(ctx, r.storage, Params{
		Table:   equipmentTable,
		Columns: equipmentListColumns,
		Relations: []Join{
			{Table: "brands", Alias: "brand", OnLeft: "brand.id", OnRight: "equipments.brand_id", JoinType: "LEFT"},
			{Table: "equipment_types", Alias: "type", OnLeft: "type.id", OnRight: "equipments.type_id", JoinType: "LEFT"},
			{Table: "equipment_statuses", Alias: "status", OnLeft: "status.id", OnRight: "equipments.status_id", JoinType: "LEFT"},
			{Table: "employees", Alias: "employee", OnLeft: "employee.id", OnRight: "equipments.employee_id", JoinType: "LEFT"},
			{Table: "companies", Alias: "company", OnLeft: "company.id", OnRight: "equipments.company_id", JoinType: "LEFT"},
			{Table: "departments", Alias: "department", OnLeft: "department.id", OnRight: "equipments.department_id", JoinType: "LEFT"},
		},
		WithPg: true,
		Limit:  filter.Limit,
		Offset: filter.Offset,
		Search: filter.Search,
		Filter: filter.Filter,
		Where:  where,
		Sort:   filter.Sort,
		AllowedFilterColumns: []string{
			"equipments.brand_id", "equipments.type_id", "equipments.status_id",
			"equipments.employee_id", "equipments.company_id", "equipments.department_id",
		},
		AllowedSearchColumns: []string{"equipments.name", "equipments.label"},
		AllowedSortColumns:   []string{"equipments.id", "equipments.name", "equipments.created_at", "equipments.updated_at"},
		DefaultOrder:         "equipments.id DESC",

		GroupRelatedFieldsByPrefix: true,
	})
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.Label, &e.BrandID, &e.TypeID,
		&e.StatusID, &e.EmployeeID, &e.SupplierID, &e.CompanyID, &e.DepartmentID,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *equipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := fmt.Sprintf(`
		SELECT e.id, e.name, e.label, e.brand_id, e.type_id,
			e.status_id, e.employee_id, e.supplier_id, e.company_id, e.department_id,
			e.created_at, e.updated_at,
			b.name, t.name, s.code, s.name,
			emp.first_name, emp.last_name, emp.middle_name,
			sup.name, c.name, d.name
		FROM %s e
			LEFT JOIN brands b ON e.brand_id = b.id
			LEFT JOIN equipment_types t ON e.type_id = t.id
			LEFT JOIN equipment_statuses s ON e.status_id = s.id
			LEFT JOIN employees emp ON e.employee_id = emp.id
			LEFT JOIN suppliers sup ON e.supplier_id = sup.id
			LEFT JOIN companies c ON e.company_id = c.id
			LEFT JOIN departments d ON e.department_id = d.id
		WHERE e.id = $1`, equipmentTable)

	var e entities.Equipment
	var brandName, typeName sql.NullString
	var statusCode, statusName sql.NullString
	var empFirst, empLast, empMiddle sql.NullString
	var supplierName, companyName, departmentName sql.NullString

	err := r.storage.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Label, &e.BrandID, &e.TypeID,
		&e.StatusID, &e.EmployeeID, &e.SupplierID, &e.CompanyID, &e.DepartmentID,
		&e.CreatedAt, &e.UpdatedAt,
		&brandName, &typeName, &statusCode, &statusName,
		&empFirst, &empLast, &empMiddle,
		&supplierName, &companyName, &departmentName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if brandName.Valid {
		e.Brand = &entities.Brand{ID: e.BrandID, Name: brandName.String}
	}
	if typeName.Valid {
		e.Type = &entities.EquipmentType{ID: e.TypeID, Name: typeName.String}
	}
	if e.StatusID.Valid && statusName.Valid {
		e.Status = &entities.EquipmentStatus{ID: e.StatusID.Uint64, Code: statusCode.String, Name: statusName.String}
	}
	if e.EmployeeID.Valid && empLast.Valid {
		employee := &entities.Employee{ID: e.EmployeeID.Uint64, FirstName: empFirst.String, LastName: empLast.String}
		if empMiddle.Valid {
			employee.MiddleName.SetValid(empMiddle.String)
		}
		e.Employee = employee
	}
	if e.SupplierID.Valid && supplierName.Valid {
		e.Supplier = &entities.Supplier{ID: e.SupplierID.Uint64, Name: supplierName.String}
	}
	if e.CompanyID.Valid && companyName.Valid {
		e.Company = &entities.Company{ID: e.CompanyID.Uint64, Name: companyName.String}
	}
	if e.DepartmentID.Valid && departmentName.Valid {
		e.Department = &entities.Department{ID: e.DepartmentID.Uint64, Name: departmentName.String}
	}
	return &e, nil
}

func (r *equipmentRepository) CreateEquipmentInTx(ctx context.Context, tx pgx.Tx, equipment *entities.Equipment) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, label, brand_id, type_id, status_id, employee_id, supplier_id, company_id, department_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`, equipmentTable)

	var id uint64
	err := tx.QueryRow(ctx, query,
		equipment.Name, equipment.Label, equipment.BrandID, equipment.TypeID,
		equipment.StatusID, equipment.EmployeeID, equipment.SupplierID,
		equipment.CompanyID, equipment.DepartmentID,
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

// FindForUpdateInTx блокирует строку оборудования до конца транзакции.
// Снимок "до" для детектора изменений берется именно отсюда.
func (r *equipmentRepository) FindForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1 FOR UPDATE", equipmentFields, equipmentTable)
	equipment, err := scanEquipment(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return equipment, nil
}

func (r *equipmentRepository) UpdateEquipmentInTx(ctx context.Context, tx pgx.Tx, equipment *entities.Equipment) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, label = $2, brand_id = $3, type_id = $4, status_id = $5,
			employee_id = $6, supplier_id = $7, company_id = $8, department_id = $9,
			updated_at = NOW()
		WHERE id = $10`, equipmentTable)

	result, err := tx.Exec(ctx, query,
		equipment.Name, equipment.Label, equipment.BrandID, equipment.TypeID,
		equipment.StatusID, equipment.EmployeeID, equipment.SupplierID,
		equipment.CompanyID, equipment.DepartmentID, equipment.ID,
	)
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

// LockAvailableInTx блокирует из запрошенных только свободные строки:
// на складе и без ответственного (и в нужной компании, если задан скоуп).
// Блокировка в порядке id, чтобы параллельные массовые операции не
// взаимоблокировались. Сравнение результата с запросом - на стороне сервиса.
func (r *equipmentRepository) LockAvailableInTx(ctx context.Context, tx pgx.Tx, ids []uint64, statusID uint64, companyID *uint64) ([]entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ANY($1) AND status_id = $2 AND employee_id IS NULL", equipmentFields, equipmentTable)
	args := []interface{}{ids, statusID}
	if companyID != nil {
		query += " AND company_id = $3"
		args = append(args, *companyID)
	}
	query += " ORDER BY id FOR UPDATE"
	return r.lockRows(ctx, tx, query, args, len(ids))
}

// LockAssignedInTx блокирует из запрошенных только строки с ответственным.
// Статус не проверяется: вернуть на склад можно и из ремонта.
func (r *equipmentRepository) LockAssignedInTx(ctx context.Context, tx pgx.Tx, ids []uint64, companyID *uint64) ([]entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ANY($1) AND employee_id IS NOT NULL", equipmentFields, equipmentTable)
	args := []interface{}{ids}
	if companyID != nil {
		query += " AND company_id = $2"
		args = append(args, *companyID)
	}
	query += " ORDER BY id FOR UPDATE"
	return r.lockRows(ctx, tx, query, args, len(ids))
}

func (r *equipmentRepository) lockRows(ctx context.Context, tx pgx.Tx, query string, args []interface{}, capacity int) ([]entities.Equipment, error) {
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locked := make([]entities.Equipment, 0, capacity)
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Label, &e.BrandID, &e.TypeID,
			&e.StatusID, &e.EmployeeID, &e.SupplierID, &e.CompanyID, &e.DepartmentID,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		locked = append(locked, e)
	}
	return locked, rows.Err()
}

// BulkAssignInTx переводит заблокированные строки на нового ответственного.
// Компания и отдел, если у оборудования они не заданы, наследуются от сотрудника.
func (r *equipmentRepository) BulkAssignInTx(ctx context.Context, tx pgx.Tx, ids []uint64, employee *entities.Employee, statusID uint64) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET employee_id = $2, status_id = $3,
			company_id = COALESCE(company_id, $4),
			department_id = COALESCE(department_id, $5),
			updated_at = NOW()
		WHERE id = ANY($1)`, equipmentTable)

	_, err := tx.Exec(ctx, query, ids, employee.ID, statusID, employee.CompanyID, employee.DepartmentID)
	return err
}

func (r *equipmentRepository) BulkUnassignInTx(ctx context.Context, tx pgx.Tx, ids []uint64, statusID uint64) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET employee_id = NULL, status_id = $2, updated_at = NOW()
		WHERE id = ANY($1)`, equipmentTable)

	_, err := tx.Exec(ctx, query, ids, statusID)
	return err
}

func (r *equipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentTable), id)
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
