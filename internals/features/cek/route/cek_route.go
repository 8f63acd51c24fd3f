package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"petasan_backend/internals/features/cek/controller"
	eformService "petasan_backend/internals/features/eform/service"
)

func CekRoutes(api fiber.Router, db *gorm.DB, metabase *eformService.MetabaseService) {
	ctrl := controller.NewCekController(db, metabase)

	cek := api.Group("/cek")
	cek.Get("/", ctrl.GetGabungan) // 🔍 Tabel gabungan petasan vs eform
}
