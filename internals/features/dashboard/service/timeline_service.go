package service

import (
	"time"

	"gorm.io/datatypes"

	"petasan_backend/internals/constants"
	"petasan_backend/internals/features/sls/model"
)

type TimelineItem struct {
	ID        string `json:"id"`
	TglAwal   string `json:"tgl_awal"`
	TglAkhir  string `json:"tgl_akhir"`
	Status    string `json:"status"`
	Kecamatan string `json:"kecamatan"`
	Desa      string `json:"desa"`
}

type TimelineGroup struct {
	SLS    string         `json:"sls"`
	Pemeta string         `json:"pemeta"`
	Items  []TimelineItem `json:"items"`
}

// Timeline menyusun linimasa pengerjaan per SLS untuk satu pemeriksa/pemeta.
// Baris tanpa pasangan tanggal lengkap dilewati.
func Timeline(units []model.InformasiSLSModel, pemeriksa, pemeta string) []TimelineGroup {
	groups := map[string]*TimelineGroup{}
	order := []string{}

	for _, u := range units {
		if pemeriksa != "" && u.Pemeriksa != pemeriksa {
			continue
		}
		if pemeta != "" && u.Pemeta != pemeta {
			continue
		}

		nama := u.SLS
		if nama == "" {
			nama = "Tanpa Nama SLS"
		}
		g, ok := groups[nama]
		if !ok {
			g = &TimelineGroup{SLS: nama, Pemeta: u.Pemeta, Items: []TimelineItem{}}
			groups[nama] = g
			order = append(order, nama)
		}

		if u.TglAwal == nil || u.TglAkhir == nil {
			continue
		}
		g.Items = append(g.Items, TimelineItem{
			ID:        u.ID,
			TglAwal:   dateString(*u.TglAwal),
			TglAkhir:  dateString(*u.TglAkhir),
			Status:    constants.NormalizeStatus(u.Status),
			Kecamatan: u.Kecamatan,
			Desa:      u.Desa,
		})
	}

	out := make([]TimelineGroup, 0, len(order))
	for _, nama := range order {
		out = append(out, *groups[nama])
	}
	return out
}

func dateString(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}
