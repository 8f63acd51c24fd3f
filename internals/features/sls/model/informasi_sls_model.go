package model

import "gorm.io/datatypes"

// InformasiSLSModel: satu baris per SLS. Baris dibuat lewat bulk-load awal,
// aplikasi ini hanya mengubah status, jumlah, tanggal, dan catatan.
type InformasiSLSModel struct {
	ID           string          `gorm:"column:id;primaryKey" json:"id"`
	Kecamatan    string          `gorm:"column:kecamatan" json:"kecamatan"`
	Desa         string          `gorm:"column:desa" json:"desa"`
	SLS          string          `gorm:"column:sls" json:"sls"`
	Pemeriksa    string          `gorm:"column:pemeriksa" json:"pemeriksa"`
	Pemeta       string          `gorm:"column:pemeta" json:"pemeta"`
	Status       string          `gorm:"column:status;default:'Belum'" json:"status"`
	JumlahSub    int             `gorm:"column:jumlah_sub" json:"jumlah_sub"`
	JumlahSegmen int             `gorm:"column:jumlah_segmen" json:"jumlah_segmen"`
	TglAwal      *datatypes.Date `gorm:"column:tgl_awal" json:"tgl_awal"`
	TglAkhir     *datatypes.Date `gorm:"column:tgl_akhir" json:"tgl_akhir"`
	Catatan      *string         `gorm:"column:catatan" json:"catatan"`

	// Flag isian formulir, disimpan apa adanya tanpa makna di sisi engine.
	Perubahan   *bool `gorm:"column:perubahan" json:"perubahan"`
	Memperbesar *bool `gorm:"column:memperbesar" json:"memperbesar"`
	Memperkecil *bool `gorm:"column:memperkecil" json:"memperkecil"`
	Menerima    *bool `gorm:"column:menerima" json:"menerima"`
	Cetak       *bool `gorm:"column:cetak" json:"cetak"`
}

func (InformasiSLSModel) TableName() string {
	return "informasiSLS"
}

// SLSLinkModel: lookup id → link peta, digabung di sisi aplikasi berdasarkan id.
type SLSLinkModel struct {
	IDSLS string `gorm:"column:idsls;primaryKey" json:"idsls"`
	Link  string `gorm:"column:link" json:"link"`
}

func (SLSLinkModel) TableName() string {
	return "sls_links"
}
