package entities

import (
	"time"

	"inventory-system/pkg/types"

	"github.com/aarondl/null/v8"
)

type MaintenanceStatus struct {
	ID   uint64 `json:"id" db:"id"`
	Code string `json:"code" db:"code"`
	Name string `json:"name" db:"name"`

	types.BaseEntity
}

type MaintenanceRequest struct {
	ID          uint64      `json:"id" db:"id"`
	EquipmentID uint64      `json:"equipment_id" db:"equipment_id"`
	StatusID    uint64      `json:"status_id" db:"status_id"`
	RequestedAt null.Time   `json:"requested_at" db:"requested_at"`
	Description null.String `json:"description" db:"description"`
	Cost        null.Int64  `json:"cost" db:"cost"`

	types.BaseEntity

	Equipment *Equipment         `json:"equipment,omitempty" db:"-"`
	Status    *MaintenanceStatus `json:"status,omitempty" db:"-"`
}

// MaintenanceLog - снимок заявки на момент события (создание, смена статуса,
// правка). Пишется синхронно рядом с изменением заявки.
type MaintenanceLog struct {
	ID            uint64      `json:"id" db:"id"`
	MaintenanceID uint64      `json:"maintenance_id" db:"maintenance_id"`
	EquipmentID   null.Uint64 `json:"equipment_id" db:"equipment_id"`
	Label         null.String `json:"label" db:"label"`
	EquipmentName null.String `json:"equipment_name" db:"equipment_name"`
	StatusName    null.String `json:"status_name" db:"status_name"`
	Action        string      `json:"action" db:"action"`
	Detail        string      `json:"detail" db:"detail"`
	ActorName     null.String `json:"actor_name" db:"actor_name"`
	OccurredAt    time.Time   `json:"occurred_at" db:"occurred_at"`
}
