package controller

import (
	"github.com/gofiber/fiber/v2"

	"petasan_backend/internals/features/eform/service"
	helper "petasan_backend/internals/helpers"
)

type EformController struct {
	Metabase *service.MetabaseService
}

func NewEformController(metabase *service.MetabaseService) *EformController {
	return &EformController{Metabase: metabase}
}

// =============================
// 📥 Muatan per SLS dari eform
// =============================
func (ctrl *EformController) GetMuatanSLS(c *fiber.Ctx) error {
	rows := ctrl.Metabase.FetchMuatanSLS(c.UserContext())
	return helper.JsonOK(c, "data eform per SLS", rows)
}

// =============================
// 📥 Persentase per kecamatan dari eform
// =============================
func (ctrl *EformController) GetPersentaseWilayah(c *fiber.Ctx) error {
	rows := ctrl.Metabase.FetchPersentaseWilayah(c.UserContext())
	return helper.JsonOK(c, "rekap eform per kecamatan", rows)
}
