package dto

type StatusCountDTO struct {
	StatusID uint64 `json:"status_id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Count    uint64 `json:"count"`
}

type DashboardSummaryDTO struct {
	TotalEquipment      uint64           `json:"total_equipment"`
	AssignedEquipment   uint64           `json:"assigned_equipment"`
	UnassignedEquipment uint64           `json:"unassigned_equipment"`
	ByStatus            []StatusCountDTO `json:"by_status"`
	ActiveEmployees     uint64           `json:"active_employees"`
	OpenMaintenance     uint64           `json:"open_maintenance"`
	HistoryLast30Days   uint64           `json:"history_last_30_days"`
}
