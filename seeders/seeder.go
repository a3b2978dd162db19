package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDictionaries наполняет обязательные словари статусов.
func SeedDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения справочников...")

	if err := seedEquipmentStatuses(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения статусов оборудования: %v", err)
	}
	if err := seedMaintenanceStatuses(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения статусов заявок: %v", err)
	}
	log.Println("✅ Наполнение справочников завершено!")
}

// SeedAdminAccount создает учетную запись администратора.
func SeedAdminAccount(db *pgxpool.Pool) {
	log.Println("▶️  Запуск создания администратора...")
	if err := SeedAdmin(db); err != nil {
		log.Fatalf("❌ Ошибка создания администратора: %v", err)
	}
	log.Println("✅ Администратор готов!")
}
