package model

// DatabaseAwalModel: estimasi perencanaan per SLS, read-only bagi aplikasi ini.
type DatabaseAwalModel struct {
	ID             string `gorm:"column:id;primaryKey" json:"id"`
	EstimasiSub    int    `gorm:"column:estimasi_sub" json:"estimasi_sub"`
	EstimasiMuatan int    `gorm:"column:estimasi_muatan" json:"estimasi_muatan"`
}

func (DatabaseAwalModel) TableName() string {
	return "databaseAwal"
}
