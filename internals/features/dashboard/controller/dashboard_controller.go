package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"petasan_backend/internals/features/dashboard/service"
	slsModel "petasan_backend/internals/features/sls/model"
	"petasan_backend/internals/features/sls/repository"
	helper "petasan_backend/internals/helpers"
)

type DashboardController struct {
	Repo *repository.SLSRepository
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{Repo: repository.NewSLSRepository(db)}
}

// =============================
// 📊 Progress per wilayah
// =============================
// Tanpa ?kecamatan= grup per kecamatan, dengan filter grup per desa.
func (ctrl *DashboardController) GetProgress(c *fiber.Ctx) error {
	units := ctrl.Repo.AllInformasiSLS(c.UserContext())
	rows := service.AggregateWilayah(units, c.Query("kecamatan"))
	return helper.JsonOK(c, "progress per wilayah", rows)
}

// =============================
// 📊 Agregasi pemeriksa & pemeta
// =============================
func (ctrl *DashboardController) GetPetugas(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var (
		units     []slsModel.InformasiSLSModel
		muatanMap map[string]int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { units = ctrl.Repo.AllInformasiSLS(gctx); return nil })
	g.Go(func() error { muatanMap = ctrl.Repo.MuatanBySLS(gctx); return nil })
	_ = g.Wait()

	rows := service.AggregatePetugas(units, muatanMap)

	if pemeriksa := c.Query("pemeriksa"); pemeriksa != "" {
		rows = filterPetugas(rows, func(r service.PetugasAgg) bool { return r.Pemeriksa == pemeriksa })
	}
	if pemeta := c.Query("pemeta"); pemeta != "" {
		rows = filterPetugas(rows, func(r service.PetugasAgg) bool { return r.Pemeta == pemeta })
	}

	if sortBy := c.Query("sort_by"); sortBy != "" {
		service.SortPetugas(rows, sortBy, c.Query("order", "asc") != "desc")
	}

	p := helper.ResolvePaging(c, 10, 100)
	paged := helper.PageSlice(rows, p)
	return helper.JsonList(c, "agregasi pemeriksa & pemeta", paged,
		helper.BuildPaginationFromPage(int64(len(rows)), p.Page, p.PerPage))
}

// =============================
// 🎯 Target harian vs realisasi
// =============================
func (ctrl *DashboardController) GetTarget(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var (
		units   []slsModel.InformasiSLSModel
		targets []slsModel.TargetSLSModel
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { units = ctrl.Repo.AllInformasiSLS(gctx); return nil })
	g.Go(func() error { targets = ctrl.Repo.AllTargetSLS(gctx); return nil })
	_ = g.Wait()

	rows := service.TargetHarian(units, targets, time.Now())
	return helper.JsonOK(c, "target harian vs realisasi", rows)
}

// =============================
// 🗓 Timeline pengerjaan SLS
// =============================
func (ctrl *DashboardController) GetTimeline(c *fiber.Ctx) error {
	units := ctrl.Repo.AllInformasiSLS(c.UserContext())
	rows := service.Timeline(units, c.Query("pemeriksa"), c.Query("pemeta"))
	return helper.JsonOK(c, "timeline pengerjaan SLS", rows)
}

func filterPetugas(rows []service.PetugasAgg, keep func(service.PetugasAgg) bool) []service.PetugasAgg {
	out := rows[:0:0]
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
