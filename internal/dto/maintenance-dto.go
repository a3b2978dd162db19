package dto

type CreateMaintenanceRequestDTO struct {
	EquipmentID uint64  `json:"equipment_id" validate:"required,gt=0"`
	StatusID    *uint64 `json:"status_id,omitempty" validate:"omitempty,gt=0"`
	Description string  `json:"description" validate:"required,max=1000"`
	Cost        *int64  `json:"cost,omitempty" validate:"omitempty,gte=0"`
}

type UpdateMaintenanceRequestDTO struct {
	StatusID    *uint64 `json:"status_id,omitempty" validate:"omitempty,gt=0"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Cost        *int64  `json:"cost,omitempty" validate:"omitempty,gte=0"`
}

type MaintenanceRequestDTO struct {
	ID          uint64                     `json:"id"`
	Equipment   ShortEquipmentDTO          `json:"equipment"`
	Status      *ShortMaintenanceStatusDTO `json:"status,omitempty"`
	Description string                     `json:"description"`
	Cost        *int64                     `json:"cost,omitempty"`
	CreatedAt   string                     `json:"created_at"`
	UpdatedAt   string                     `json:"updated_at"`
}

type ShortMaintenanceStatusDTO struct {
	ID   uint64 `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type CreateMaintenanceStatusDTO struct {
	Code string `json:"code" validate:"required,max=50"`
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateMaintenanceStatusDTO struct {
	Code *string `json:"code,omitempty" validate:"omitempty,max=50"`
	Name *string `json:"name,omitempty" validate:"omitempty,max=100"`
}

type MaintenanceStatusDTO struct {
	ID        uint64 `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type MaintenanceLogDTO struct {
	ID          uint64            `json:"id"`
	RequestID   uint64            `json:"request_id"`
	Action      string            `json:"action"`
	StatusCode  string            `json:"status_code,omitempty"`
	Description string            `json:"description,omitempty"`
	Actor       *ShortEmployeeDTO `json:"actor,omitempty"`
	OccurredAt  string            `json:"occurred_at"`
}
