package dto

type CreateEquipmentTypeDTO struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateEquipmentTypeDTO struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=100"`
}

type EquipmentTypeDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ShortEquipmentTypeDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type TypeAttributeDTO struct {
	ID        uint64 `json:"id"`
	TypeID    uint64 `json:"type_id"`
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

type UpsertTypeAttributeDTO struct {
	Attribute string `json:"attribute" validate:"required,max=100"`
	Value     string `json:"value" validate:"omitempty,max=250"`
}
