package services

import (
	"testing"
	"time"

	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEquipmentChanges_Creation(t *testing.T) {
	next := &entities.Equipment{
		ID:         1,
		Name:       "Ноутбук",
		StatusID:   null.Uint64From(2),
		EmployeeID: null.Uint64From(5),
	}

	changes := DetectEquipmentChanges(nil, next)
	assert.True(t, changes.StatusChanged)
	assert.True(t, changes.EmployeeChanged)
	assert.True(t, changes.Any())
}

func TestDetectEquipmentChanges_BareCreation(t *testing.T) {
	next := &entities.Equipment{ID: 1, Name: "Стеллаж"}

	changes := DetectEquipmentChanges(nil, next)
	assert.True(t, changes.Any(), "создание фиксируется даже без статуса и ответственного")
}

func TestDetectEquipmentChanges_StatusOnly(t *testing.T) {
	prev := &entities.Equipment{ID: 1, StatusID: null.Uint64From(1), EmployeeID: null.Uint64From(5)}
	next := &entities.Equipment{ID: 1, StatusID: null.Uint64From(2), EmployeeID: null.Uint64From(5)}

	changes := DetectEquipmentChanges(prev, next)
	assert.True(t, changes.StatusChanged)
	assert.False(t, changes.EmployeeChanged)
	assert.True(t, changes.Any())
}

func TestDetectEquipmentChanges_EmployeeCleared(t *testing.T) {
	prev := &entities.Equipment{ID: 1, StatusID: null.Uint64From(1), EmployeeID: null.Uint64From(5)}
	next := &entities.Equipment{ID: 1, StatusID: null.Uint64From(1)}

	changes := DetectEquipmentChanges(prev, next)
	assert.False(t, changes.StatusChanged)
	assert.True(t, changes.EmployeeChanged)
}

func TestDetectEquipmentChanges_UntrackedFieldsIgnored(t *testing.T) {
	prev := &entities.Equipment{ID: 1, Name: "Старое имя", BrandID: 1, StatusID: null.Uint64From(1)}
	next := &entities.Equipment{ID: 1, Name: "Новое имя", BrandID: 2, StatusID: null.Uint64From(1)}

	changes := DetectEquipmentChanges(prev, next)
	assert.False(t, changes.Any(), "правка названия и бренда не должна давать запись журнала")
}

func TestBuildHistoryEntry_Creation(t *testing.T) {
	occurredAt := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	actorID := uint64(7)
	next := &entities.Equipment{
		ID:           42,
		Name:         "Монитор Dell",
		Label:        null.StringFrom("INV-0042"),
		TypeID:       3,
		StatusID:     null.Uint64From(2),
		EmployeeID:   null.Uint64From(5),
		CompanyID:    null.Uint64From(1),
		DepartmentID: null.Uint64From(4),
	}

	entry := BuildHistoryEntry(nil, next, &actorID, occurredAt, constants.HistoryActionCreated, "")

	assert.Equal(t, uint64(42), entry.EquipmentID)
	assert.Equal(t, "INV-0042", entry.Label)
	assert.Equal(t, "Монитор Dell", entry.EquipmentName)
	assert.Equal(t, null.Uint64From(uint64(3)), entry.TypeID)
	assert.Equal(t, occurredAt, entry.OccurredAt)
	assert.Equal(t, constants.HistoryActionCreated, entry.Action)

	assert.False(t, entry.PrevStatusID.Valid, "при создании поля 'до' пустые")
	assert.False(t, entry.PrevEmployeeID.Valid)
	assert.Equal(t, null.Uint64From(uint64(2)), entry.NewStatusID)
	assert.Equal(t, null.Uint64From(uint64(5)), entry.NewEmployeeID)

	require.True(t, entry.ActorEmployeeID.Valid)
	assert.Equal(t, actorID, entry.ActorEmployeeID.Uint64)
	assert.Equal(t, null.Uint64From(uint64(1)), entry.CompanyID)
	assert.Equal(t, null.Uint64From(uint64(4)), entry.DepartmentID)
	assert.False(t, entry.Comment.Valid)
}

func TestBuildHistoryEntry_Update(t *testing.T) {
	occurredAt := time.Now().UTC()
	prev := &entities.Equipment{ID: 42, Name: "Монитор", StatusID: null.Uint64From(1), EmployeeID: null.Uint64From(5)}
	next := &entities.Equipment{ID: 42, Name: "Монитор", StatusID: null.Uint64From(2), EmployeeID: null.Uint64From(9)}

	entry := BuildHistoryEntry(prev, next, nil, occurredAt, constants.HistoryActionUpdated, "перевод")

	assert.Equal(t, null.Uint64From(uint64(1)), entry.PrevStatusID)
	assert.Equal(t, null.Uint64From(uint64(2)), entry.NewStatusID)
	assert.Equal(t, null.Uint64From(uint64(5)), entry.PrevEmployeeID)
	assert.Equal(t, null.Uint64From(uint64(9)), entry.NewEmployeeID)
	assert.False(t, entry.ActorEmployeeID.Valid)
	assert.Equal(t, "перевод", entry.Comment.String)
}
