package entities

import "inventory-system/pkg/types"

type Brand struct {
	ID   uint64 `json:"id" db:"id"`
	Name string `json:"name" db:"name"`

	types.BaseEntity
}
