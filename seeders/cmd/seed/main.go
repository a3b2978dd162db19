package main

import (
	"flag"
	"log"

	"inventory-system/pkg/config"
	"inventory-system/pkg/database/postgresql"
	"inventory-system/seeders"
)

func main() {
	runDictionaries := flag.Bool("dictionaries", false, "Наполнить словари статусов")
	runAdmin := flag.Bool("admin", false, "Создать администратора")
	runAll := flag.Bool("all", false, "Запустить все сидеры")
	flag.Parse()

	if !*runDictionaries && !*runAdmin && !*runAll {
		log.Println("Не выбран ни один сидер для запуска.")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAll || *runDictionaries {
		seeders.SeedDictionaries(dbPool)
	}
	if *runAll || *runAdmin {
		seeders.SeedAdminAccount(dbPool)
	}

	log.Println("Сидирование завершено.")
}
