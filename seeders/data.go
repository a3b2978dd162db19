package seeders

import "inventory-system/pkg/constants"

type statusSeed struct {
	Code string
	Name string
}

var equipmentStatusesData = []statusSeed{
	{Code: constants.EquipmentStatusInStorage, Name: "На складе"},
	{Code: constants.EquipmentStatusAssigned, Name: "Выдано"},
	{Code: constants.EquipmentStatusInRepair, Name: "В ремонте"},
	{Code: constants.EquipmentStatusRetired, Name: "Списано"},
}

var maintenanceStatusesData = []statusSeed{
	{Code: constants.MaintenanceStatusPending, Name: "Ожидает"},
	{Code: constants.MaintenanceStatusInProgress, Name: "В работе"},
	{Code: constants.MaintenanceStatusDone, Name: "Выполнено"},
}
