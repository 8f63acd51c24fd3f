package model

// InformasiSubSLSModel: rincian segmen milik satu SLS. Set baris per SLS
// selalu diganti utuh saat simpan, tidak ada update parsial.
type InformasiSubSLSModel struct {
	SLSID    string `gorm:"column:sls_id;primaryKey" json:"sls_id"`
	SegmenNo int    `gorm:"column:segmen_no;primaryKey" json:"segmen_no"`
	Sub      int    `gorm:"column:sub" json:"sub"`
	Muatan   int    `gorm:"column:muatan" json:"muatan"`
}

func (InformasiSubSLSModel) TableName() string {
	return "informasiSubSLS"
}
