package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"petasan_backend/internals/features/sls/controller"
)

func SLSRoutes(api fiber.Router, db *gorm.DB) {
	infoCtrl := controller.NewInformasiSLSController(db)
	editCtrl := controller.NewEditSLSController(db)

	sls := api.Group("/sls")
	sls.Get("/", infoCtrl.GetAll)              // 📄 Daftar SLS + link
	sls.Get("/:id", infoCtrl.GetByID)          // 🔍 Detail + rincian segmen
	sls.Get("/:id/segmen", infoCtrl.GetSegmen) // 📄 Rincian segmen saja
	sls.Put("/:id", editCtrl.Update)           // ✏️ Simpan hasil edit
}
