package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Afriels/presensi-new/config"
	"github.com/Afriels/presensi-new/database"
	"github.com/Afriels/presensi-new/handlers"
	"github.com/Afriels/presensi-new/routes"
)

func main() {
	cfg := config.Load()

	// Buka database lokal; skema + data demo disiapkan saat ini juga.
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("close database: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Validator = handlers.NewPayloadValidator()

	routes.Register(e, db)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
