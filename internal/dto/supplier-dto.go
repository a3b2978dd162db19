package dto

type CreateSupplierDTO struct {
	Name  string  `json:"name" validate:"required,max=200"`
	TaxID *string `json:"tax_id,omitempty" validate:"omitempty,max=20"`
}

type UpdateSupplierDTO struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=200"`
	TaxID *string `json:"tax_id,omitempty" validate:"omitempty,max=20"`
}

type SupplierDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	TaxID     string `json:"tax_id,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ShortSupplierDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
