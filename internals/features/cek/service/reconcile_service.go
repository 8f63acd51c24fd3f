package service

import (
	"sort"
	"strconv"

	eformDTO "petasan_backend/internals/features/eform/dto"
	eformService "petasan_backend/internals/features/eform/service"
	"petasan_backend/internals/features/sls/model"
)

// GabunganRow: satu SLS digabung dengan total muatan segmen, estimasi awal,
// dan angka eform yang cocok. Field pointer = nil berarti datanya tidak ada,
// dirender sebagai null (beda dengan nol).
type GabunganRow struct {
	ID        string `json:"id"`
	Kecamatan string `json:"kecamatan"`
	Desa      string `json:"desa"`
	SLS       string `json:"sls"`
	Pemeriksa string `json:"pemeriksa"`
	Pemeta    string `json:"pemeta"`

	SegmenPetasan  int  `json:"segmen_petasan"`
	SegmenEform    *int `json:"segmen_eform"`
	EstimasiSub    *int `json:"estimasi_sub"`
	SubPetasan     int  `json:"sub_petasan"`
	EstimasiMuatan *int `json:"estimasi_muatan"`
	MuatanPetasan  int  `json:"muatan_petasan"`
	MuatanEform    *int `json:"muatan_eform"`

	Catatan string `json:"catatan"`

	// Penanda selisih untuk highlight sel di tabel pemeriksaan.
	SegmenBeda    bool `json:"segmen_beda"`
	SubKurang     bool `json:"sub_kurang"`
	EstimasiLebih bool `json:"estimasi_lebih"`
	MuatanBeda    bool `json:"muatan_beda"`
}

// Reconcile menggabungkan setiap SLS dengan total muatan segmennya, estimasi
// databaseAwal, dan baris eform pertama yang id-nya cocok setelah normalisasi.
// Selalu satu baris keluaran per SLS; hasil urut naik berdasar nilai numerik id.
func Reconcile(
	units []model.InformasiSLSModel,
	muatanMap map[string]int,
	awalMap map[string]model.DatabaseAwalModel,
	eformRows []eformDTO.EformSLSRow,
) []GabunganRow {
	out := make([]GabunganRow, 0, len(units))

	for _, u := range units {
		normID := eformService.NormalizeID(u.ID)

		// Baris eform pertama yang cocok menang; duplikat id di hulu diabaikan.
		var match *eformDTO.EformSLSRow
		for i := range eformRows {
			if eformService.NormalizeID(eformRows[i].IDSLSEform) == normID {
				match = &eformRows[i]
				break
			}
		}

		row := GabunganRow{
			ID:            u.ID,
			Kecamatan:     u.Kecamatan,
			Desa:          u.Desa,
			SLS:           u.SLS,
			Pemeriksa:     u.Pemeriksa,
			Pemeta:        u.Pemeta,
			SegmenPetasan: u.JumlahSegmen,
			SubPetasan:    u.JumlahSub,
			MuatanPetasan: muatanMap[u.ID], // tidak ada baris segmen ⇒ 0
		}
		if u.Catatan != nil {
			row.Catatan = *u.Catatan
		}
		if match != nil {
			row.SegmenEform = intPtr(match.SegmenEform)
			row.MuatanEform = intPtr(match.MuatanEform)
		}
		if awal, ok := awalMap[u.ID]; ok {
			row.EstimasiSub = intPtr(awal.EstimasiSub)
			row.EstimasiMuatan = intPtr(awal.EstimasiMuatan)
		}

		row.SegmenBeda = SegmenBeda(intPtr(row.SegmenPetasan), row.SegmenEform)
		row.SubKurang = SubKurang(intPtr(row.SubPetasan), row.EstimasiSub)
		row.EstimasiLebih = EstimasiLebih(row.EstimasiMuatan, row.MuatanEform)
		row.MuatanBeda = MuatanBeda(intPtr(row.MuatanPetasan), row.MuatanEform)

		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return idValue(out[i].ID) < idValue(out[j].ID)
	})
	return out
}

/* ===============================
   Penanda selisih (fungsi murni)
   Salah satu sisi nil ⇒ tidak ada penanda: data yang tidak ada bukan selisih.
=================================*/

// SegmenBeda: jumlah segmen deklarasi ≠ jumlah segmen eform.
func SegmenBeda(segmenPetasan, segmenEform *int) bool {
	if segmenPetasan == nil || segmenEform == nil {
		return false
	}
	return *segmenPetasan != *segmenEform
}

// SubKurang: jumlah sub deklarasi < estimasi sub.
func SubKurang(subPetasan, estimasiSub *int) bool {
	if subPetasan == nil || estimasiSub == nil {
		return false
	}
	return *subPetasan < *estimasiSub
}

// EstimasiLebih: estimasi muatan > muatan eform.
func EstimasiLebih(estimasiMuatan, muatanEform *int) bool {
	if estimasiMuatan == nil || muatanEform == nil {
		return false
	}
	return *estimasiMuatan > *muatanEform
}

// MuatanBeda: total muatan segmen ≠ muatan eform.
func MuatanBeda(muatanPetasan, muatanEform *int) bool {
	if muatanPetasan == nil || muatanEform == nil {
		return false
	}
	return *muatanPetasan != *muatanEform
}

// idValue: nilai numerik id untuk pengurutan ("10" setelah "9", bukan leksikografis).
func idValue(id string) int64 {
	n, err := strconv.ParseInt(eformService.NormalizeID(id), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func intPtr(v int) *int { return &v }
