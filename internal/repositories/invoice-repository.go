package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	invoiceTable     = "invoices"
	invoiceItemTable = "invoice_items"
)

type InvoiceRepositoryInterface interface {
	GetInvoices(ctx context.Context, limit, offset uint64, search string, supplierID *uint64) ([]entities.Invoice, uint64, error)
	FindInvoice(ctx context.Context, id uint64) (*entities.Invoice, error)
	CreateInTx(ctx context.Context, tx pgx.Tx, invoice *entities.Invoice) (uint64, error)
	CreateItemsInTx(ctx context.Context, tx pgx.Tx, invoiceID uint64, items []entities.InvoiceItem) error
	UpdateInvoice(ctx context.Context, id uint64, payload dto.UpdateInvoiceDTO) error
	DeleteInvoice(ctx context.Context, id uint64) error
}

type invoiceRepository struct{ storage *pgxpool.Pool }

func NewInvoiceRepository(storage *pgxpool.Pool) InvoiceRepositoryInterface {
	return &invoiceRepository{storage: storage}
}

func (r *invoiceRepository) GetInvoices(ctx context.Context, limit, offset uint64, search string, supplierID *uint64) ([]entities.Invoice, uint64, error) {
	var conditions []string
	var args []interface{}

	if search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf("i.number ILIKE $%d", len(args)))
	}
	if supplierID != nil {
		args = append(args, *supplierID)
		conditions = append(conditions, fmt.Sprintf("i.supplier_id = $%d", len(args)))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s i %s", invoiceTable, whereClause)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Invoice{}, 0, nil
	}

	queryArgs := append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT i.id, i.number, i.supplier_id, i.issued_at, i.created_at, i.updated_at,
			s.id, s.name
		FROM %s i
			LEFT JOIN suppliers s ON i.supplier_id = s.id
		%s
		ORDER BY i.issued_at DESC NULLS LAST, i.id DESC
		LIMIT $%d OFFSET $%d`,
		invoiceTable, whereClause, len(args)+1, len(args)+2)

	rows, err := r.storage.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	invoices := make([]entities.Invoice, 0)
	for rows.Next() {
		var inv entities.Invoice
		var supplierID2, supplierName interface{}
		if err := rows.Scan(
			&inv.ID, &inv.Number, &inv.SupplierID, &inv.IssuedAt, &inv.CreatedAt, &inv.UpdatedAt,
			&supplierID2, &supplierName,
		); err != nil {
			return nil, 0, err
		}
		if inv.SupplierID.Valid {
			name, _ := supplierName.(string)
			inv.Supplier = &entities.Supplier{ID: inv.SupplierID.Uint64, Name: name}
		}
		invoices = append(invoices, inv)
	}
	return invoices, total, rows.Err()
}

func (r *invoiceRepository) FindInvoice(ctx context.Context, id uint64) (*entities.Invoice, error) {
	query := fmt.Sprintf(`
		SELECT i.id, i.number, i.supplier_id, i.issued_at, i.created_at, i.updated_at,
			COALESCE(s.name, '')
		FROM %s i
			LEFT JOIN suppliers s ON i.supplier_id = s.id
		WHERE i.id = $1`, invoiceTable)

	var inv entities.Invoice
	var supplierName string
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.Number, &inv.SupplierID, &inv.IssuedAt, &inv.CreatedAt, &inv.UpdatedAt,
		&supplierName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if inv.SupplierID.Valid {
		inv.Supplier = &entities.Supplier{ID: inv.SupplierID.Uint64, Name: supplierName}
	}

	itemsQuery := fmt.Sprintf(`
		SELECT it.id, it.invoice_id, it.equipment_id, COALESCE(it.equipment_name, e.name),
			it.quantity, it.unit_price, it.net, it.vat, it.total
		FROM %s it
			LEFT JOIN equipments e ON it.equipment_id = e.id
		WHERE it.invoice_id = $1
		ORDER BY it.id`, invoiceItemTable)

	rows, err := r.storage.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item entities.InvoiceItem
		if err := rows.Scan(
			&item.ID, &item.InvoiceID, &item.EquipmentID, &item.EquipmentName,
			&item.Quantity, &item.UnitPrice, &item.Net, &item.VAT, &item.Total,
		); err != nil {
			return nil, err
		}
		inv.Items = append(inv.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepository) CreateInTx(ctx context.Context, tx pgx.Tx, invoice *entities.Invoice) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (number, supplier_id, issued_at)
		VALUES ($1, $2, $3)
		RETURNING id`, invoiceTable)

	var id uint64
	err := tx.QueryRow(ctx, query, invoice.Number, invoice.SupplierID, invoice.IssuedAt).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return 0, apperrors.ErrConflict
			case "23503":
				return 0, apperrors.ErrReferenceNotFound
			}
		}
		return 0, err
	}
	return id, nil
}

func (r *invoiceRepository) CreateItemsInTx(ctx context.Context, tx pgx.Tx, invoiceID uint64, items []entities.InvoiceItem) error {
	if len(items) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (invoice_id, equipment_id, equipment_name, quantity, unit_price, net, vat, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, invoiceItemTable)

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query,
			invoiceID, item.EquipmentID, item.EquipmentName,
			item.Quantity, item.UnitPrice, item.Net, item.VAT, item.Total,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range items {
		if _, err := results.Exec(); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return apperrors.ErrReferenceNotFound
			}
			return err
		}
	}
	return results.Close()
}

func (r *invoiceRepository) UpdateInvoice(ctx context.Context, id uint64, payload dto.UpdateInvoiceDTO) error {
	var setClauses []string
	var args []interface{}
	argID := 1

	if payload.Number != nil {
		setClauses = append(setClauses, fmt.Sprintf("number = $%d", argID))
		args = append(args, *payload.Number)
		argID++
	}
	if payload.SupplierID != nil {
		setClauses = append(setClauses, fmt.Sprintf("supplier_id = $%d", argID))
		args = append(args, *payload.SupplierID)
		argID++
	}
	if payload.IssuedAt != nil {
		setClauses = append(setClauses, fmt.Sprintf("issued_at = $%d", argID))
		args = append(args, *payload.IssuedAt)
		argID++
	}
	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		invoiceTable, strings.Join(setClauses, ", "), argID)
	args = append(args, id)

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return apperrors.ErrConflict
			case "23503":
				return apperrors.ErrReferenceNotFound
			}
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *invoiceRepository) DeleteInvoice(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", invoiceTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
