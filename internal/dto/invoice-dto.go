package dto

type CreateInvoiceDTO struct {
	Number     string                 `json:"number" validate:"required,max=50"`
	SupplierID *uint64                `json:"supplier_id,omitempty" validate:"omitempty,gt=0"`
	IssuedAt   *string                `json:"issued_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Items      []CreateInvoiceItemDTO `json:"items" validate:"omitempty,dive"`
}

// CreateInvoiceItemDTO - позиция счета. Можно привязать к учтенной единице
// оборудования либо указать свободное наименование.
type CreateInvoiceItemDTO struct {
	EquipmentID   *uint64 `json:"equipment_id,omitempty" validate:"omitempty,gt=0"`
	EquipmentName *string `json:"equipment_name,omitempty" validate:"omitempty,max=150"`
	Quantity      int64   `json:"quantity" validate:"required,gt=0"`
	UnitPrice     int64   `json:"unit_price" validate:"required,gte=0"`
}

type UpdateInvoiceDTO struct {
	Number     *string `json:"number,omitempty" validate:"omitempty,max=50"`
	SupplierID *uint64 `json:"supplier_id,omitempty" validate:"omitempty,gt=0"`
	IssuedAt   *string `json:"issued_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type InvoiceDTO struct {
	ID        uint64            `json:"id"`
	Number    string            `json:"number"`
	Supplier  *ShortSupplierDTO `json:"supplier,omitempty"`
	IssuedAt  string            `json:"issued_at,omitempty"`
	Net       int64             `json:"net"`
	VAT       int64             `json:"vat"`
	Total     int64             `json:"total"`
	Items     []InvoiceItemDTO  `json:"items,omitempty"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
}

type InvoiceItemDTO struct {
	ID            uint64  `json:"id"`
	EquipmentID   *uint64 `json:"equipment_id,omitempty"`
	EquipmentName string  `json:"equipment_name,omitempty"`
	Quantity      int64   `json:"quantity"`
	UnitPrice     int64   `json:"unit_price"`
	Net           int64   `json:"net"`
	VAT           int64   `json:"vat"`
	Total         int64   `json:"total"`
}
