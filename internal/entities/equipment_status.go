package entities

import "inventory-system/pkg/types"

type EquipmentStatus struct {
	ID   uint64 `json:"id" db:"id"`
	Code string `json:"code" db:"code"`
	Name string `json:"name" db:"name"`

	types.BaseEntity
}
