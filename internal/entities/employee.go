package entities

import (
	"strings"

	"inventory-system/pkg/types"

	"github.com/aarondl/null/v8"
)

type Employee struct {
	ID              uint64      `json:"id" db:"id"`
	PersonnelNumber string      `json:"personnel_number" db:"personnel_number"`
	FirstName       string      `json:"first_name" db:"first_name"`
	LastName        string      `json:"last_name" db:"last_name"`
	MiddleName      null.String `json:"middle_name" db:"middle_name"`
	Active          bool        `json:"active" db:"active"`
	Position        null.String `json:"position" db:"position"`
	Phone           null.String `json:"phone" db:"phone"`
	CompanyID       uint64      `json:"company_id" db:"company_id"`
	DepartmentID    uint64      `json:"department_id" db:"department_id"`
	Role            string      `json:"role" db:"role"`
	PasswordHash    null.String `json:"-" db:"password_hash"`

	types.BaseEntity

	Company    *Company    `json:"company,omitempty" db:"-"`
	Department *Department `json:"department,omitempty" db:"-"`
}

// FullName собирает ФИО без лишних пробелов.
func (e *Employee) FullName() string {
	parts := []string{e.LastName, e.FirstName}
	if e.MiddleName.Valid && e.MiddleName.String != "" {
		parts = append(parts, e.MiddleName.String)
	}
	return strings.Join(parts, " ")
}
