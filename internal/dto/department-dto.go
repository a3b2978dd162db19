package dto

type CreateDepartmentDTO struct {
	Name      string `json:"name" validate:"required,max=150"`
	CompanyID uint64 `json:"company_id" validate:"required,gt=0"`
}

type UpdateDepartmentDTO struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,max=150"`
	CompanyID *uint64 `json:"company_id,omitempty" validate:"omitempty,gt=0"`
}

type DepartmentDTO struct {
	ID        uint64          `json:"id"`
	Name      string          `json:"name"`
	Company   ShortCompanyDTO `json:"company"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

type ShortDepartmentDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
