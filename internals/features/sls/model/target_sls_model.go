package model

import "gorm.io/datatypes"

// TargetSLSModel: target harian per SLS, dipakai untuk rekap target vs realisasi.
type TargetSLSModel struct {
	ID      int            `gorm:"column:id;primaryKey" json:"id"`
	IDSLS   string         `gorm:"column:idsls" json:"idsls"`
	Tanggal datatypes.Date `gorm:"column:tanggal" json:"tanggal"`
	Target  int            `gorm:"column:target" json:"target"`
}

func (TargetSLSModel) TableName() string {
	return "targetSLS"
}
