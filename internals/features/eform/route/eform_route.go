package route

import (
	"github.com/gofiber/fiber/v2"

	"petasan_backend/internals/features/eform/controller"
	"petasan_backend/internals/features/eform/service"
)

func EformRoutes(api fiber.Router, metabase *service.MetabaseService) {
	ctrl := controller.NewEformController(metabase)

	eform := api.Group("/eform")
	eform.Get("/muatan", ctrl.GetMuatanSLS)          // 📥 Data eform per SLS
	eform.Get("/wilayah", ctrl.GetPersentaseWilayah) // 📥 Rekap eform per kecamatan
}
