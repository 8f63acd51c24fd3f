package controller

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"petasan_backend/internals/features/cek/service"
	eformDTO "petasan_backend/internals/features/eform/dto"
	eformService "petasan_backend/internals/features/eform/service"
	slsModel "petasan_backend/internals/features/sls/model"
	"petasan_backend/internals/features/sls/repository"
	helper "petasan_backend/internals/helpers"
)

type CekController struct {
	Repo     *repository.SLSRepository
	Metabase *eformService.MetabaseService
}

func NewCekController(db *gorm.DB, metabase *eformService.MetabaseService) *CekController {
	return &CekController{
		Repo:     repository.NewSLSRepository(db),
		Metabase: metabase,
	}
}

// =============================
// 🔍 Gabungan Data SLS (periksa eform)
// =============================
// Empat sumber diambil paralel; tiap sumber fail-soft, jadi baris yang hilang
// tampil sebagai null, bukan error.
func (ctrl *CekController) GetGabungan(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var (
		units     []slsModel.InformasiSLSModel
		muatanMap map[string]int
		awalMap   map[string]slsModel.DatabaseAwalModel
		eformRows []eformDTO.EformSLSRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { units = ctrl.Repo.AllInformasiSLS(gctx); return nil })
	g.Go(func() error { muatanMap = ctrl.Repo.MuatanBySLS(gctx); return nil })
	g.Go(func() error { awalMap = ctrl.Repo.DatabaseAwalMap(gctx); return nil })
	g.Go(func() error { eformRows = ctrl.Metabase.FetchMuatanSLS(gctx); return nil })
	_ = g.Wait()

	rows := service.Reconcile(units, muatanMap, awalMap, eformRows)
	rows = filterGabungan(rows, c)

	p := helper.ResolvePaging(c, 10, 100)
	paged := helper.PageSlice(rows, p)
	return helper.JsonList(c, "gabungan data SLS", paged,
		helper.BuildPaginationFromPage(int64(len(rows)), p.Page, p.PerPage))
}

func filterGabungan(rows []service.GabunganRow, c *fiber.Ctx) []service.GabunganRow {
	kecamatan := c.Query("kecamatan")
	desa := c.Query("desa")
	pemeriksa := c.Query("pemeriksa")
	pemeta := c.Query("pemeta")

	if kecamatan == "" && desa == "" && pemeriksa == "" && pemeta == "" {
		return rows
	}

	out := rows[:0:0]
	for _, r := range rows {
		if kecamatan != "" && r.Kecamatan != kecamatan {
			continue
		}
		if desa != "" && r.Desa != desa {
			continue
		}
		if pemeriksa != "" && r.Pemeriksa != pemeriksa {
			continue
		}
		if pemeta != "" && r.Pemeta != pemeta {
			continue
		}
		out = append(out, r)
	}
	return out
}
