package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedEquipmentStatuses(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'equipment_statuses'...")

	query := `INSERT INTO equipment_statuses (code, name) VALUES ($1, $2)
			  ON CONFLICT (code) DO NOTHING`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, s := range equipmentStatusesData {
		if _, err := tx.Exec(ctx, query, s.Code, s.Name); err != nil {
			log.Printf("Ошибка при вставке статуса '%s': %v", s.Name, err)
			return err
		}
	}
	return tx.Commit(ctx)
}

func seedMaintenanceStatuses(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'maintenance_statuses'...")

	query := `INSERT INTO maintenance_statuses (code, name) VALUES ($1, $2)
			  ON CONFLICT (code) DO NOTHING`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, s := range maintenanceStatusesData {
		if _, err := tx.Exec(ctx, query, s.Code, s.Name); err != nil {
			log.Printf("Ошибка при вставке статуса заявки '%s': %v", s.Name, err)
			return err
		}
	}
	return tx.Commit(ctx)
}
