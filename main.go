package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/bagaswib/absensi-backend/config"
	"github.com/bagaswib/absensi-backend/internal/routes"
	"github.com/bagaswib/absensi-backend/pkg/storage/mariadb"
)

func main() {
	cfg := config.LoadConfig()
	db := mariadb.Connect()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Init(e, db)

	port := cfg.Port
	if port == "" {
		port = "8000"
	}
	log.Printf("Server berjalan pada port %s...", port)
	log.Fatal(e.Start(":" + port))
}
