package constants

// Коды статусов заявок на обслуживание.
const (
	MaintenanceStatusPending    = "PENDING"
	MaintenanceStatusInProgress = "IN_PROGRESS"
	MaintenanceStatusDone       = "DONE"
)

// Теги действий в журнале обслуживания.
const (
	MaintenanceActionCreated       = "created"
	MaintenanceActionStatusChanged = "status-changed"
	MaintenanceActionEdited        = "edited"
)
