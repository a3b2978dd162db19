package entities

import (
	"inventory-system/pkg/types"

	"github.com/aarondl/null/v8"
)

type Invoice struct {
	ID         uint64      `json:"id" db:"id"`
	Number     string      `json:"number" db:"number"`
	SupplierID null.Uint64 `json:"supplier_id" db:"supplier_id"`
	IssuedAt   null.Time   `json:"issued_at" db:"issued_at"`

	types.BaseEntity

	Supplier *Supplier     `json:"supplier,omitempty" db:"-"`
	Items    []InvoiceItem `json:"items,omitempty" db:"-"`
}

type InvoiceItem struct {
	ID            uint64      `json:"id" db:"id"`
	InvoiceID     uint64      `json:"invoice_id" db:"invoice_id"`
	EquipmentID   null.Uint64 `json:"equipment_id" db:"equipment_id"`
	EquipmentName null.String `json:"equipment_name" db:"equipment_name"`
	Quantity      int64       `json:"quantity" db:"quantity"`
	UnitPrice     int64       `json:"unit_price" db:"unit_price"`
	Net           null.Int64  `json:"net" db:"net"`
	VAT           null.Int64  `json:"vat" db:"vat"`
	Total         null.Int64  `json:"total" db:"total"`
}
