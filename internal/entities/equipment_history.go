package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// EquipmentHistory - неизменяемая запись аудита: снимок "до/после" изменения
// статуса или ответственного. Пишется только подсистемой аудита, никогда
// не обновляется и не удаляется. Предыдущий ответственный хранится отдельным
// внешним ключом, а не текстом в комментарии.
type EquipmentHistory struct {
	ID              uint64      `json:"id" db:"id"`
	EquipmentID     uint64      `json:"equipment_id" db:"equipment_id"`
	Label           string      `json:"label" db:"label"`
	EquipmentName   string      `json:"equipment_name" db:"equipment_name"`
	TypeID          null.Uint64 `json:"type_id" db:"type_id"`
	OccurredAt      time.Time   `json:"occurred_at" db:"occurred_at"`
	PrevStatusID    null.Uint64 `json:"prev_status_id" db:"prev_status_id"`
	NewStatusID     null.Uint64 `json:"new_status_id" db:"new_status_id"`
	PrevEmployeeID  null.Uint64 `json:"prev_employee_id" db:"prev_employee_id"`
	NewEmployeeID   null.Uint64 `json:"new_employee_id" db:"new_employee_id"`
	ActorEmployeeID null.Uint64 `json:"actor_employee_id" db:"actor_employee_id"`
	CompanyID       null.Uint64 `json:"company_id" db:"company_id"`
	DepartmentID    null.Uint64 `json:"department_id" db:"department_id"`
	Action          string      `json:"action" db:"action"`
	Comment         null.String `json:"comment" db:"comment"`
}
