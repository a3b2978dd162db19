package dto

type CreateCompanyDTO struct {
	TaxID        string  `json:"tax_id" validate:"required,max=20"`
	Name         string  `json:"name" validate:"required,max=200"`
	Address      *string `json:"address,omitempty" validate:"omitempty,max=250"`
	BusinessLine *string `json:"business_line,omitempty" validate:"omitempty,max=100"`
}

type UpdateCompanyDTO struct {
	TaxID        *string `json:"tax_id,omitempty" validate:"omitempty,max=20"`
	Name         *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Address      *string `json:"address,omitempty" validate:"omitempty,max=250"`
	BusinessLine *string `json:"business_line,omitempty" validate:"omitempty,max=100"`
}

type CompanyDTO struct {
	ID           uint64 `json:"id"`
	TaxID        string `json:"tax_id"`
	Name         string `json:"name"`
	Address      string `json:"address,omitempty"`
	BusinessLine string `json:"business_line,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type ShortCompanyDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
