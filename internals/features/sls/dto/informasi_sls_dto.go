package dto

import (
	"time"

	"gorm.io/datatypes"

	"petasan_backend/internals/constants"
	"petasan_backend/internals/features/sls/model"
)

// ============================
// Response DTO
// ============================
type InformasiSLSDTO struct {
	ID           string  `json:"id"`
	Kecamatan    string  `json:"kecamatan"`
	Desa         string  `json:"desa"`
	SLS          string  `json:"sls"`
	Pemeriksa    string  `json:"pemeriksa"`
	Pemeta       string  `json:"pemeta"`
	Status       string  `json:"status"`
	JumlahSub    int     `json:"jumlah_sub"`
	JumlahSegmen int     `json:"jumlah_segmen"`
	TglAwal      *string `json:"tgl_awal"`
	TglAkhir     *string `json:"tgl_akhir"`
	Catatan      string  `json:"catatan"`
	Link         *string `json:"link"`

	Perubahan   *bool `json:"perubahan"`
	Memperbesar *bool `json:"memperbesar"`
	Memperkecil *bool `json:"memperkecil"`
	Menerima    *bool `json:"menerima"`
	Cetak       *bool `json:"cetak"`
}

type SegmenDTO struct {
	SegmenNo int `json:"segmen_no"`
	Sub      int `json:"sub"`
	Muatan   int `json:"muatan"`
}

// ============================
// Converter
// ============================
func ToInformasiSLSDTO(m model.InformasiSLSModel, link *string) InformasiSLSDTO {
	catatan := ""
	if m.Catatan != nil {
		catatan = *m.Catatan
	}
	return InformasiSLSDTO{
		ID:           m.ID,
		Kecamatan:    m.Kecamatan,
		Desa:         m.Desa,
		SLS:          m.SLS,
		Pemeriksa:    m.Pemeriksa,
		Pemeta:       m.Pemeta,
		Status:       constants.NormalizeStatus(m.Status),
		JumlahSub:    m.JumlahSub,
		JumlahSegmen: m.JumlahSegmen,
		TglAwal:      DateToString(m.TglAwal),
		TglAkhir:     DateToString(m.TglAkhir),
		Catatan:      catatan,
		Link:         link,
		Perubahan:    m.Perubahan,
		Memperbesar:  m.Memperbesar,
		Memperkecil:  m.Memperkecil,
		Menerima:     m.Menerima,
		Cetak:        m.Cetak,
	}
}

func ToSegmenDTO(m model.InformasiSubSLSModel) SegmenDTO {
	return SegmenDTO{
		SegmenNo: m.SegmenNo,
		Sub:      m.Sub,
		Muatan:   m.Muatan,
	}
}

func DateToString(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format("2006-01-02")
	return &s
}

func StringToDate(s *string) (*datatypes.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(t)
	return &d, nil
}
