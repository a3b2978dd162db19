package dto

type CreateEmployeeDTO struct {
	PersonnelNumber string  `json:"personnel_number" validate:"required,max=20"`
	FirstName       string  `json:"first_name" validate:"required,max=100"`
	LastName        string  `json:"last_name" validate:"required,max=100"`
	MiddleName      *string `json:"middle_name,omitempty" validate:"omitempty,max=100"`
	Position        *string `json:"position,omitempty" validate:"omitempty,max=100"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	CompanyID       uint64  `json:"company_id" validate:"required,gt=0"`
	DepartmentID    uint64  `json:"department_id" validate:"required,gt=0"`
	Role            string  `json:"role" validate:"omitempty,oneof=admin user guest"`
	Password        *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

type UpdateEmployeeDTO struct {
	FirstName    *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName     *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	MiddleName   *string `json:"middle_name,omitempty" validate:"omitempty,max=100"`
	Active       *bool   `json:"active,omitempty"`
	Position     *string `json:"position,omitempty" validate:"omitempty,max=100"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	CompanyID    *uint64 `json:"company_id,omitempty" validate:"omitempty,gt=0"`
	DepartmentID *uint64 `json:"department_id,omitempty" validate:"omitempty,gt=0"`
	Role         *string `json:"role,omitempty" validate:"omitempty,oneof=admin user guest"`
}

type EmployeeDTO struct {
	ID              uint64             `json:"id"`
	PersonnelNumber string             `json:"personnel_number"`
	FullName        string             `json:"full_name"`
	Active          bool               `json:"active"`
	Position        string             `json:"position,omitempty"`
	Phone           string             `json:"phone,omitempty"`
	Company         ShortCompanyDTO    `json:"company"`
	Department      ShortDepartmentDTO `json:"department"`
	Role            string             `json:"role"`
	CreatedAt       string             `json:"created_at"`
	UpdatedAt       string             `json:"updated_at"`
}

type ShortEmployeeDTO struct {
	ID       uint64 `json:"id"`
	FullName string `json:"full_name"`
}
