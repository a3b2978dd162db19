package constants

// Коды статусов оборудования (словарь equipment_statuses).
const (
	EquipmentStatusInStorage = "IN_STORAGE"
	EquipmentStatusAssigned  = "ASSIGNED"
	EquipmentStatusInRepair  = "IN_REPAIR"
	EquipmentStatusRetired   = "RETIRED"
)

// Теги действий в истории оборудования.
const (
	HistoryActionCreated      = "created"
	HistoryActionUpdated      = "updated"
	HistoryActionBulkAssign   = "bulk-assign"
	HistoryActionBulkUnassign = "bulk-unassign"
)
