package dto

type CreateEquipmentStatusDTO struct {
	Code string `json:"code" validate:"required,max=50"`
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateEquipmentStatusDTO struct {
	Code *string `json:"code,omitempty" validate:"omitempty,max=50"`
	Name *string `json:"name,omitempty" validate:"omitempty,max=100"`
}

type EquipmentStatusDTO struct {
	ID        uint64 `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ShortEquipmentStatusDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
