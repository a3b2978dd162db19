package seeders

import (
	"context"
	"log"
	"os"

	"inventory-system/pkg/constants"
	"inventory-system/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAdmin создает компанию-заглушку, отдел и администратора, если их еще нет.
// Пароль берется из ADMIN_PASSWORD, табельный номер - из ADMIN_PERSONNEL_NUMBER.
func SeedAdmin(db *pgxpool.Pool) error {
	ctx := context.Background()
	log.Println("  - Создание администратора...")

	personnelNumber := os.Getenv("ADMIN_PERSONNEL_NUMBER")
	if personnelNumber == "" {
		personnelNumber = "00001"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
		log.Println("    - ADMIN_PASSWORD не задан, используется пароль по умолчанию")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var companyID uint64
	err = tx.QueryRow(ctx, `
		INSERT INTO companies (tax_id, name) VALUES ('0-0', 'Головная компания')
		ON CONFLICT (tax_id) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`).Scan(&companyID)
	if err != nil {
		return err
	}

	var departmentID uint64
	err = tx.QueryRow(ctx, `
		INSERT INTO departments (name, company_id) VALUES ('Администрация', $1)
		ON CONFLICT (company_id, name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`, companyID).Scan(&departmentID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO employees (personnel_number, first_name, last_name, active, company_id, department_id, role, password_hash)
		VALUES ($1, 'Администратор', 'Системы', TRUE, $2, $3, $4, $5)
		ON CONFLICT (personnel_number) DO NOTHING`,
		personnelNumber, companyID, departmentID, constants.RoleAdmin, hash)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
