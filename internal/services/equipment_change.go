package services

import (
	"time"

	"inventory-system/internal/entities"

	"github.com/aarondl/null/v8"
)

// EquipmentChanges - какие отслеживаемые поля разошлись между снимками.
type EquipmentChanges struct {
	StatusChanged   bool
	EmployeeChanged bool
}

func (c EquipmentChanges) Any() bool {
	return c.StatusChanged || c.EmployeeChanged
}

// DetectEquipmentChanges сравнивает снимки "до" и "после". Журнал интересуют
// только статус и ответственный: правка названия или бренда записи не дает.
func DetectEquipmentChanges(prev, next *entities.Equipment) EquipmentChanges {
	if prev == nil {
		// Создание фиксируется всегда, даже без статуса и ответственного.
		return EquipmentChanges{
			StatusChanged:   true,
			EmployeeChanged: next.EmployeeID.Valid,
		}
	}
	return EquipmentChanges{
		StatusChanged:   prev.StatusID != next.StatusID,
		EmployeeChanged: prev.EmployeeID != next.EmployeeID,
	}
}

// BuildHistoryEntry собирает запись журнала из снимков. При создании prev == nil,
// и все поля "до" остаются пустыми. Компания и отдел берутся из состояния
// оборудования после вывода (своя компания либо унаследованная от ответственного).
func BuildHistoryEntry(prev, next *entities.Equipment, actorID *uint64, occurredAt time.Time, action string, comment string) entities.EquipmentHistory {
	entry := entities.EquipmentHistory{
		EquipmentID:   next.ID,
		Label:         next.Label.String,
		EquipmentName: next.Name,
		TypeID:        null.Uint64From(next.TypeID),
		OccurredAt:    occurredAt,
		NewStatusID:   next.StatusID,
		NewEmployeeID: next.EmployeeID,
		CompanyID:     next.CompanyID,
		DepartmentID:  next.DepartmentID,
		Action:        action,
	}
	if prev != nil {
		entry.PrevStatusID = prev.StatusID
		entry.PrevEmployeeID = prev.EmployeeID
	}
	if actorID != nil {
		entry.ActorEmployeeID = null.Uint64From(*actorID)
	}
	if comment != "" {
		entry.Comment = null.StringFrom(comment)
	}
	return entry
}
