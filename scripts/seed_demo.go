// scripts/seed_demo.go
package main

import (
	"fmt"
	"log"

	"github.com/Afriels/presensi-new/config"
	"github.com/Afriels/presensi-new/database"
)

// Memaksa isi ulang data demo: kosongkan semua tabel lalu jalankan seeder.
func main() {
	cfg := config.Load()
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close(db)

	for _, table := range []string{
		"attendance", "attendance_records", "schedules",
		"students", "teachers", "attendance_times", "subjects", "classes",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("failed to clear %s: %v", table, err)
		}
	}

	if err := database.Seed(db); err != nil {
		log.Fatalf("failed to seed demo data: %v", err)
	}

	fmt.Println("✅ Demo data seeded into", cfg.DBPath)
}
