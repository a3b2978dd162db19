package entities

import "inventory-system/pkg/types"

type EquipmentType struct {
	ID   uint64 `json:"id" db:"id"`
	Name string `json:"name" db:"name"`

	types.BaseEntity
}

// TypeAttribute - характеристика, привязанная к типу оборудования
// (например "Notebook · RAM = 16GB").
type TypeAttribute struct {
	ID        uint64 `json:"id" db:"id"`
	TypeID    uint64 `json:"type_id" db:"type_id"`
	Attribute string `json:"attribute" db:"attribute"`
	Value     string `json:"value" db:"value"`
}
