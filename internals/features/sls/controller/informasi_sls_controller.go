package controller

import (
	"errors"
	"sort"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eformService "petasan_backend/internals/features/eform/service"
	"petasan_backend/internals/features/sls/dto"
	"petasan_backend/internals/features/sls/model"
	"petasan_backend/internals/features/sls/repository"
	helper "petasan_backend/internals/helpers"
)

type InformasiSLSController struct {
	DB   *gorm.DB
	Repo *repository.SLSRepository
}

func NewInformasiSLSController(db *gorm.DB) *InformasiSLSController {
	return &InformasiSLSController{
		DB:   db,
		Repo: repository.NewSLSRepository(db),
	}
}

// =============================
// 📄 Daftar SLS (tabel form)
// =============================
// Link peta digabung di sisi aplikasi berdasarkan id, seperti di frontend lama.
func (ctrl *InformasiSLSController) GetAll(c *fiber.Ctx) error {
	ctx := c.UserContext()

	units := ctrl.Repo.AllInformasiSLS(ctx)
	linkMap := ctrl.Repo.LinkMap(ctx)

	units = filterUnits(units, c)
	sort.SliceStable(units, func(i, j int) bool {
		return idValue(units[i].ID) < idValue(units[j].ID)
	})

	rows := make([]dto.InformasiSLSDTO, 0, len(units))
	for _, u := range units {
		var link *string
		if l, ok := linkMap[u.ID]; ok {
			link = &l
		}
		rows = append(rows, dto.ToInformasiSLSDTO(u, link))
	}

	p := helper.ResolvePaging(c, 10, 100)
	paged := helper.PageSlice(rows, p)
	return helper.JsonList(c, "daftar SLS", paged,
		helper.BuildPaginationFromPage(int64(len(rows)), p.Page, p.PerPage))
}

// =============================
// 🔍 Detail SLS + rincian segmen
// =============================
// Segmen diisi nol sebanyak jumlah_segmen kalau belum pernah disimpan,
// sebagai pre-populate langkah 2 formulir.
func (ctrl *InformasiSLSController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var unit model.InformasiSLSModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&unit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "SLS tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data SLS")
	}

	segmen, err := ctrl.Repo.SegmenBySLS(c.UserContext(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil rincian segmen")
	}

	segmenDTO := make([]dto.SegmenDTO, 0, unit.JumlahSegmen)
	if len(segmen) > 0 {
		for _, s := range segmen {
			segmenDTO = append(segmenDTO, dto.ToSegmenDTO(s))
		}
	} else {
		for i := 0; i < unit.JumlahSegmen; i++ {
			segmenDTO = append(segmenDTO, dto.SegmenDTO{SegmenNo: i + 1})
		}
	}

	var link *string
	if l, ok := ctrl.Repo.LinkMap(c.UserContext())[unit.ID]; ok {
		link = &l
	}

	return helper.JsonOK(c, "detail SLS", fiber.Map{
		"informasi": dto.ToInformasiSLSDTO(unit, link),
		"segmen":    segmenDTO,
	})
}

// =============================
// 📄 Rincian segmen satu SLS
// =============================
func (ctrl *InformasiSLSController) GetSegmen(c *fiber.Ctx) error {
	id := c.Params("id")

	segmen, err := ctrl.Repo.SegmenBySLS(c.UserContext(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil rincian segmen")
	}

	rows := make([]dto.SegmenDTO, 0, len(segmen))
	for _, s := range segmen {
		rows = append(rows, dto.ToSegmenDTO(s))
	}
	return helper.JsonOK(c, "rincian segmen", rows)
}

func filterUnits(units []model.InformasiSLSModel, c *fiber.Ctx) []model.InformasiSLSModel {
	kecamatan := c.Query("kecamatan")
	desa := c.Query("desa")
	pemeriksa := c.Query("pemeriksa")
	pemeta := c.Query("pemeta")

	if kecamatan == "" && desa == "" && pemeriksa == "" && pemeta == "" {
		return units
	}

	out := units[:0:0]
	for _, u := range units {
		if kecamatan != "" && u.Kecamatan != kecamatan {
			continue
		}
		if desa != "" && u.Desa != desa {
			continue
		}
		if pemeriksa != "" && u.Pemeriksa != pemeriksa {
			continue
		}
		if pemeta != "" && u.Pemeta != pemeta {
			continue
		}
		out = append(out, u)
	}
	return out
}

func idValue(id string) int64 {
	n, err := strconv.ParseInt(eformService.NormalizeID(id), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
