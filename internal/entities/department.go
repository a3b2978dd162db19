package entities

import "inventory-system/pkg/types"

type Department struct {
	ID        uint64 `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	CompanyID uint64 `json:"company_id" db:"company_id"`

	types.BaseEntity

	Company *Company `json:"company,omitempty" db:"-"`
}
