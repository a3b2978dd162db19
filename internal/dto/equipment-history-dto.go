package dto

type EquipmentHistoryDTO struct {
	ID            uint64                   `json:"id"`
	EquipmentID   *uint64                  `json:"equipment_id,omitempty"`
	EquipmentName string                   `json:"equipment_name"`
	Label         string                   `json:"label,omitempty"`
	Type          *ShortEquipmentTypeDTO   `json:"type,omitempty"`
	PrevStatus    *ShortEquipmentStatusDTO `json:"prev_status,omitempty"`
	NewStatus     *ShortEquipmentStatusDTO `json:"new_status,omitempty"`
	PrevEmployee  *ShortEmployeeDTO        `json:"prev_employee,omitempty"`
	NewEmployee   *ShortEmployeeDTO        `json:"new_employee,omitempty"`
	Actor         *ShortEmployeeDTO        `json:"actor,omitempty"`
	Company       *ShortCompanyDTO         `json:"company,omitempty"`
	Department    *ShortDepartmentDTO      `json:"department,omitempty"`
	Action        string                   `json:"action"`
	Comment       string                   `json:"comment,omitempty"`
	OccurredAt    string                   `json:"occurred_at"`
}
