package dto

import (
	"fmt"

	"petasan_backend/internals/features/sls/model"
)

// Batas muatan satu segmen sesuai aturan pendataan wilkerstat.
const MaxMuatanSegmen = 180

// ============================
// Update Request DTO
// ============================
type SegmenItemRequest struct {
	Sub    int `json:"sub" validate:"min=0"`
	Muatan int `json:"muatan" validate:"min=0"`
}

type UpdateInformasiSLSRequest struct {
	Status       string              `json:"status" validate:"required,oneof=Belum Proses Submit Approve"`
	JumlahSub    int                 `json:"jumlah_sub" validate:"min=0"`
	JumlahSegmen int                 `json:"jumlah_segmen" validate:"required,min=1"`
	TglAwal      *string             `json:"tgl_awal"`
	TglAkhir     *string             `json:"tgl_akhir"`
	Catatan      *string             `json:"catatan"`
	Segmen       []SegmenItemRequest `json:"segmen"`

	Perubahan   *bool `json:"perubahan"`
	Memperbesar *bool `json:"memperbesar"`
	Memperkecil *bool `json:"memperkecil"`
	Menerima    *bool `json:"menerima"`
	Cetak       *bool `json:"cetak"`
}

// ValidateCounts: aturan lintas-field di luar jangkauan tag validator.
// Mengembalikan map field → pesan, kosong kalau lolos.
func (req *UpdateInformasiSLSRequest) ValidateCounts() map[string][]string {
	errs := map[string][]string{}

	if req.JumlahSub > req.JumlahSegmen {
		errs["jumlah_sub"] = append(errs["jumlah_sub"],
			"jumlah sub tidak boleh lebih besar dari jumlah segmen")
	}

	for i, seg := range req.Segmen {
		if seg.Sub > req.JumlahSub {
			key := fmt.Sprintf("segmen.%d.sub", i+1)
			errs[key] = append(errs[key],
				fmt.Sprintf("sub pada segmen ke-%d tidak boleh > jumlah sub SLS: %d", i+1, req.JumlahSub))
		}
		if seg.Muatan > MaxMuatanSegmen {
			key := fmt.Sprintf("segmen.%d.muatan", i+1)
			errs[key] = append(errs[key],
				fmt.Sprintf("muatan tidak boleh > %d", MaxMuatanSegmen))
		}
	}

	return errs
}

// NormalizeSegmenRows menyesuaikan daftar segmen dengan jumlah yang dideklarasikan:
// baris yang sudah ada dipertahankan, kekurangan ditambah baris kosong di belakang,
// kelebihan dipotong dari belakang.
func NormalizeSegmenRows(rows []SegmenItemRequest, total int) []SegmenItemRequest {
	if total < 0 {
		total = 0
	}
	out := make([]SegmenItemRequest, 0, total)
	out = append(out, rows...)
	if len(out) > total {
		return out[:total]
	}
	for len(out) < total {
		out = append(out, SegmenItemRequest{})
	}
	return out
}

// ToSubSLSModels memberi nomor 1..N sesuai posisi.
func ToSubSLSModels(slsID string, rows []SegmenItemRequest) []model.InformasiSubSLSModel {
	out := make([]model.InformasiSubSLSModel, 0, len(rows))
	for i, row := range rows {
		out = append(out, model.InformasiSubSLSModel{
			SLSID:    slsID,
			SegmenNo: i + 1,
			Sub:      row.Sub,
			Muatan:   row.Muatan,
		})
	}
	return out
}

// ApplyToModel menyalin field yang boleh diubah ke model induk.
func (req *UpdateInformasiSLSRequest) ApplyToModel(m *model.InformasiSLSModel) error {
	tglAwal, err := StringToDate(req.TglAwal)
	if err != nil {
		return fmt.Errorf("tgl_awal tidak valid: %w", err)
	}
	tglAkhir, err := StringToDate(req.TglAkhir)
	if err != nil {
		return fmt.Errorf("tgl_akhir tidak valid: %w", err)
	}

	m.Status = req.Status
	m.JumlahSub = req.JumlahSub
	m.JumlahSegmen = req.JumlahSegmen
	m.TglAwal = tglAwal
	m.TglAkhir = tglAkhir
	m.Catatan = req.Catatan
	m.Perubahan = req.Perubahan
	m.Memperbesar = req.Memperbesar
	m.Memperkecil = req.Memperkecil
	m.Menerima = req.Menerima
	m.Cetak = req.Cetak
	return nil
}
