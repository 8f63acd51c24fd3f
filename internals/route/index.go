package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"petasan_backend/internals/configs"
	cekRoute "petasan_backend/internals/features/cek/route"
	dashboardRoute "petasan_backend/internals/features/dashboard/route"
	eformRoute "petasan_backend/internals/features/eform/route"
	eformService "petasan_backend/internals/features/eform/service"
	slsRoute "petasan_backend/internals/features/sls/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	metabase := eformService.NewMetabaseService(configs.MetabaseCardURL)

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up SLSRoutes...")
	slsRoute.SLSRoutes(api, db)

	log.Println("[INFO] Setting up CekRoutes...")
	cekRoute.CekRoutes(api, db, metabase)

	log.Println("[INFO] Setting up DashboardRoutes...")
	dashboardRoute.DashboardRoutes(api, db)

	log.Println("[INFO] Setting up EformRoutes...")
	eformRoute.EformRoutes(api, metabase)
}
