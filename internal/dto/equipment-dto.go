package dto

type CreateEquipmentDTO struct {
	Name         string  `json:"name" validate:"required,max=150"`
	Label        *string `json:"label,omitempty" validate:"omitempty,max=50"`
	BrandID      uint64  `json:"brand_id" validate:"required,gt=0"`
	TypeID       uint64  `json:"type_id" validate:"required,gt=0"`
	StatusID     *uint64 `json:"status_id,omitempty" validate:"omitempty,gt=0"`
	EmployeeID   *uint64 `json:"employee_id,omitempty" validate:"omitempty,gt=0"`
	SupplierID   *uint64 `json:"supplier_id,omitempty" validate:"omitempty,gt=0"`
	CompanyID    *uint64 `json:"company_id,omitempty" validate:"omitempty,gt=0"`
	DepartmentID *uint64 `json:"department_id,omitempty" validate:"omitempty,gt=0"`
}

type UpdateEquipmentDTO struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,max=150"`
	Label         *string `json:"label,omitempty" validate:"omitempty,max=50"`
	BrandID       *uint64 `json:"brand_id,omitempty" validate:"omitempty,gt=0"`
	TypeID        *uint64 `json:"type_id,omitempty" validate:"omitempty,gt=0"`
	StatusID      *uint64 `json:"status_id,omitempty" validate:"omitempty,gt=0"`
	EmployeeID    *uint64 `json:"employee_id,omitempty"`
	ClearEmployee bool    `json:"clear_employee,omitempty"`
	SupplierID    *uint64 `json:"supplier_id,omitempty" validate:"omitempty,gt=0"`
	CompanyID     *uint64 `json:"company_id,omitempty" validate:"omitempty,gt=0"`
	DepartmentID  *uint64 `json:"department_id,omitempty" validate:"omitempty,gt=0"`
}

// BulkAssignDTO - массовая выдача оборудования одному сотруднику.
type BulkAssignDTO struct {
	EquipmentIDs []uint64 `json:"equipment_ids" validate:"required,min=1,dive,gt=0"`
	EmployeeID   uint64   `json:"employee_id" validate:"required,gt=0"`
}

// BulkUnassignDTO - массовый возврат оборудования на склад.
type BulkUnassignDTO struct {
	EquipmentIDs []uint64 `json:"equipment_ids" validate:"required,min=1,dive,gt=0"`
}

type EquipmentDTO struct {
	ID         uint64                   `json:"id"`
	Name       string                   `json:"name"`
	Label      string                   `json:"label,omitempty"`
	Brand      ShortBrandDTO            `json:"brand"`
	Type       ShortEquipmentTypeDTO    `json:"type"`
	Status     *ShortEquipmentStatusDTO `json:"status,omitempty"`
	Employee   *ShortEmployeeDTO        `json:"employee,omitempty"`
	Supplier   *ShortSupplierDTO        `json:"supplier,omitempty"`
	Company    *ShortCompanyDTO         `json:"company,omitempty"`
	Department *ShortDepartmentDTO      `json:"department,omitempty"`
	CreatedAt  string                   `json:"created_at"`
	UpdatedAt  string                   `json:"updated_at"`
}

type ShortEquipmentDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Label string `json:"label,omitempty"`
}
