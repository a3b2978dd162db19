package services

import (
	"context"
	"time"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const invoiceDateLayout = "2006-01-02"

type InvoiceService struct {
	storage     *pgxpool.Pool
	invoiceRepo repositories.InvoiceRepositoryInterface
	logger      *zap.Logger
}

func NewInvoiceService(storage *pgxpool.Pool, invoiceRepo repositories.InvoiceRepositoryInterface, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{storage: storage, invoiceRepo: invoiceRepo, logger: logger}
}

func (s *InvoiceService) GetInvoices(ctx context.Context, limit, offset uint64, search string, supplierID *uint64) ([]dto.InvoiceDTO, uint64, error) {
	invoices, total, err := s.invoiceRepo.GetInvoices(ctx, limit, offset, search, supplierID)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.InvoiceDTO, 0, len(invoices))
	for i := range invoices {
		result = append(result, toInvoiceDTO(&invoices[i]))
	}
	return result, total, nil
}

func (s *InvoiceService) FindInvoice(ctx context.Context, id uint64) (*dto.InvoiceDTO, error) {
	invoice, err := s.invoiceRepo.FindInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	invoiceDTO := toInvoiceDTO(invoice)
	return &invoiceDTO, nil
}

// CreateInvoice создает счет с позициями одной транзакцией. Суммы по позициям
// считаются на сервере от количества и цены.
func (s *InvoiceService) CreateInvoice(ctx context.Context, payload dto.CreateInvoiceDTO) (*dto.InvoiceDTO, error) {
	invoice := &entities.Invoice{Number: payload.Number}
	if payload.SupplierID != nil {
		invoice.SupplierID = null.Uint64From(*payload.SupplierID)
	}
	if payload.IssuedAt != nil {
		issuedAt, err := time.Parse(invoiceDateLayout, *payload.IssuedAt)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("неверный формат даты счета: %s", *payload.IssuedAt)
		}
		invoice.IssuedAt = null.TimeFrom(issuedAt)
	}

	items := make([]entities.InvoiceItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		if item.EquipmentID == nil && item.EquipmentName == nil {
			return nil, apperrors.NewInvalidInputError("позиция счета должна ссылаться на оборудование или содержать наименование")
		}
		net := item.Quantity * item.UnitPrice
		vat := net * constants.InvoiceVATPercent / 100
		entry := entities.InvoiceItem{
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Net:       null.Int64From(net),
			VAT:       null.Int64From(vat),
			Total:     null.Int64From(net + vat),
		}
		if item.EquipmentID != nil {
			entry.EquipmentID = null.Uint64From(*item.EquipmentID)
		}
		if item.EquipmentName != nil {
			entry.EquipmentName = null.StringFrom(*item.EquipmentName)
		}
		items = append(items, entry)
	}

	var createdID uint64
	err := repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		id, err := s.invoiceRepo.CreateInTx(ctx, tx, invoice)
		if err != nil {
			return err
		}
		createdID = id
		return s.invoiceRepo.CreateItemsInTx(ctx, tx, id, items)
	})
	if err != nil {
		s.logger.Error("Ошибка при создании счета", zap.Error(err))
		return nil, err
	}
	return s.FindInvoice(ctx, createdID)
}

func (s *InvoiceService) UpdateInvoice(ctx context.Context, id uint64, payload dto.UpdateInvoiceDTO) (*dto.InvoiceDTO, error) {
	if payload.IssuedAt != nil {
		if _, err := time.Parse(invoiceDateLayout, *payload.IssuedAt); err != nil {
			return nil, apperrors.NewInvalidInputError("неверный формат даты счета: %s", *payload.IssuedAt)
		}
	}
	if err := s.invoiceRepo.UpdateInvoice(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.FindInvoice(ctx, id)
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uint64) error {
	return s.invoiceRepo.DeleteInvoice(ctx, id)
}

func toInvoiceDTO(inv *entities.Invoice) dto.InvoiceDTO {
	result := dto.InvoiceDTO{
		ID:        inv.ID,
		Number:    inv.Number,
		CreatedAt: utils.FormatTimePtr(inv.CreatedAt),
		UpdatedAt: utils.FormatTimePtr(inv.UpdatedAt),
	}
	if inv.Supplier != nil {
		result.Supplier = &dto.ShortSupplierDTO{ID: inv.Supplier.ID, Name: inv.Supplier.Name}
	}
	if inv.IssuedAt.Valid {
		result.IssuedAt = inv.IssuedAt.Time.Format(invoiceDateLayout)
	}
	for _, item := range inv.Items {
		itemDTO := dto.InvoiceItemDTO{
			ID:            item.ID,
			EquipmentName: item.EquipmentName.String,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			Net:           item.Net.Int64,
			VAT:           item.VAT.Int64,
			Total:         item.Total.Int64,
		}
		if item.EquipmentID.Valid {
			itemDTO.EquipmentID = utils.Uint64Ptr(item.EquipmentID.Uint64)
		}
		result.Net += itemDTO.Net
		result.VAT += itemDTO.VAT
		result.Total += itemDTO.Total
		result.Items = append(result.Items, itemDTO)
	}
	return result
}
