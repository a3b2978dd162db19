package entities

import (
	"inventory-system/pkg/types"

	"github.com/aarondl/null/v8"
)

type Company struct {
	ID           uint64      `json:"id" db:"id"`
	TaxID        string      `json:"tax_id" db:"tax_id"`
	Name         string      `json:"name" db:"name"`
	Address      null.String `json:"address" db:"address"`
	BusinessLine null.String `json:"business_line" db:"business_line"`

	types.BaseEntity
}
