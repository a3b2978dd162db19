package entities

import (
	"inventory-system/pkg/types"

	"github.com/aarondl/null/v8"
)

type Supplier struct {
	ID    uint64      `json:"id" db:"id"`
	Name  string      `json:"name" db:"name"`
	TaxID null.String `json:"tax_id" db:"tax_id"`

	types.BaseEntity
}
