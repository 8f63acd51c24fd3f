package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"petasan_backend/internals/features/dashboard/controller"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)

	dashboard := api.Group("/dashboard")
	dashboard.Get("/progress", ctrl.GetProgress) // 📊 Sebaran status per wilayah
	dashboard.Get("/petugas", ctrl.GetPetugas)   // 📊 Agregasi pemeriksa & pemeta
	dashboard.Get("/target", ctrl.GetTarget)     // 🎯 Target hari ini vs realisasi
	dashboard.Get("/timeline", ctrl.GetTimeline) // 🗓 Linimasa per SLS
}
