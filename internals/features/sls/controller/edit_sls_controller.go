package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"petasan_backend/internals/features/sls/dto"
	"petasan_backend/internals/features/sls/model"
	helper "petasan_backend/internals/helpers"
)

var validateEditSLS = validator.New()

type EditSLSController struct {
	DB *gorm.DB
}

func NewEditSLSController(db *gorm.DB) *EditSLSController {
	return &EditSLSController{DB: db}
}

// =============================
// ✏️ Simpan hasil edit SLS
// =============================
// Header dan rincian segmen disimpan dalam SATU transaksi: update induk,
// hapus semua segmen lama, insert set baru bernomor 1..N. Versi lama memakai
// delete → jeda → insert tanpa transaksi; celah konsistensi itu ditutup di sini.
func (ctrl *EditSLSController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateInformasiSLSRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEditSLS.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrors(err))
	}
	if errs := req.ValidateCounts(); len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	// Daftar segmen disesuaikan dengan jumlah yang dideklarasikan: baris yang
	// ada dipertahankan, kekurangan diisi nol, kelebihan dipotong dari belakang.
	segmenRows := dto.NormalizeSegmenRows(req.Segmen, req.JumlahSegmen)
	newSegmen := dto.ToSubSLSModels(id, segmenRows)

	var unit model.InformasiSLSModel
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&unit, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "SLS tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data SLS")
		}

		if err := req.ApplyToModel(&unit); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := tx.Save(&unit).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan informasi SLS")
		}

		if err := tx.Delete(&model.InformasiSubSLSModel{}, "sls_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus segmen lama")
		}

		if len(newSegmen) > 0 {
			if err := tx.Create(&newSegmen).Error; err != nil {
				if isDuplicateKey(err) {
					return fiber.NewError(fiber.StatusConflict, "Gagal: ada data segmen yang duplikat")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan saat menyimpan segmen")
			}
		}
		return nil
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan saat menyimpan data")
	}

	segmenDTO := make([]dto.SegmenDTO, 0, len(newSegmen))
	for _, s := range newSegmen {
		segmenDTO = append(segmenDTO, dto.ToSegmenDTO(s))
	}

	return helper.JsonUpdated(c, "Data berhasil disimpan", fiber.Map{
		"informasi": dto.ToInformasiSLSDTO(unit, nil),
		"segmen":    segmenDTO,
	})
}

// isDuplicateKey: cek pelanggaran unique Postgres (SQLSTATE 23505).
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
