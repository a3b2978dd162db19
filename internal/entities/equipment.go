package entities

import (
	"inventory-system/pkg/types"

	"github.com/aarondl/null/v8"
)

// Equipment - единица оборудования. Ответственный (EmployeeID) пустой -
// значит оборудование на складе. Компания/отдел выводятся из ответственного
// при первом сохранении, если не заданы явно.
type Equipment struct {
	ID           uint64      `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Label        null.String `json:"label" db:"label"`
	BrandID      uint64      `json:"brand_id" db:"brand_id"`
	TypeID       uint64      `json:"type_id" db:"type_id"`
	StatusID     null.Uint64 `json:"status_id" db:"status_id"`
	EmployeeID   null.Uint64 `json:"employee_id" db:"employee_id"`
	SupplierID   null.Uint64 `json:"supplier_id" db:"supplier_id"`
	CompanyID    null.Uint64 `json:"company_id" db:"company_id"`
	DepartmentID null.Uint64 `json:"department_id" db:"department_id"`

	types.BaseEntity

	Brand      *Brand           `json:"brand,omitempty" db:"-"`
	Type       *EquipmentType   `json:"type,omitempty" db:"-"`
	Status     *EquipmentStatus `json:"status,omitempty" db:"-"`
	Employee   *Employee        `json:"employee,omitempty" db:"-"`
	Supplier   *Supplier        `json:"supplier,omitempty" db:"-"`
	Company    *Company         `json:"company,omitempty" db:"-"`
	Department *Department      `json:"department,omitempty" db:"-"`
}
