package service

import (
	"math"
	"sort"
	"strings"
	"time"

	"petasan_backend/internals/constants"
	"petasan_backend/internals/features/sls/model"
)

/* ===============================
   Agregasi per pemeriksa & pemeta
=================================*/

type PetugasAgg struct {
	Pemeriksa   string  `json:"pemeriksa"`
	Pemeta      string  `json:"pemeta"`
	JumlahSLS   int     `json:"jumlah_sls"`
	TotalMuatan int     `json:"total_muatan"`
	AvgMuatan   float64 `json:"avg_muatan"`
}

// AggregatePetugas mengelompokkan SLS per pasangan (pemeriksa, pemeta) dengan
// jumlah SLS dan total muatan segmen. Rata-rata diturunkan saat baca, bukan
// disimpan. Urutan default: pemeriksa lalu pemeta, naik.
func AggregatePetugas(units []model.InformasiSLSModel, muatanMap map[string]int) []PetugasAgg {
	type key struct{ pemeriksa, pemeta string }
	agg := map[key]*PetugasAgg{}
	order := []key{}

	for _, u := range units {
		k := key{u.Pemeriksa, u.Pemeta}
		row, ok := agg[k]
		if !ok {
			row = &PetugasAgg{Pemeriksa: u.Pemeriksa, Pemeta: u.Pemeta}
			agg[k] = row
			order = append(order, k)
		}
		row.JumlahSLS++
		row.TotalMuatan += muatanMap[u.ID]
	}

	out := make([]PetugasAgg, 0, len(order))
	for _, k := range order {
		row := *agg[k]
		if row.JumlahSLS > 0 {
			row.AvgMuatan = float64(row.TotalMuatan) / float64(row.JumlahSLS)
		}
		out = append(out, row)
	}

	SortPetugas(out, "pemeriksa", true)
	return out
}

// SortPetugas mengurutkan ulang hasil agregasi berdasarkan satu kolom.
// Sort stabil: urutan kunci sort sebelumnya jadi pemecah seri.
func SortPetugas(rows []PetugasAgg, key string, ascending bool) {
	less := func(a, b PetugasAgg) bool { return false }

	switch key {
	case "pemeta":
		less = func(a, b PetugasAgg) bool {
			return strings.ToLower(a.Pemeta) < strings.ToLower(b.Pemeta)
		}
	case "jumlah_sls":
		less = func(a, b PetugasAgg) bool { return a.JumlahSLS < b.JumlahSLS }
	case "total_muatan":
		less = func(a, b PetugasAgg) bool { return a.TotalMuatan < b.TotalMuatan }
	case "avg_muatan":
		less = func(a, b PetugasAgg) bool { return a.AvgMuatan < b.AvgMuatan }
	default: // pemeriksa, lalu pemeta sebagai pemecah seri bawaan
		less = func(a, b PetugasAgg) bool {
			pa, pb := strings.ToLower(a.Pemeriksa), strings.ToLower(b.Pemeriksa)
			if pa != pb {
				return pa < pb
			}
			return strings.ToLower(a.Pemeta) < strings.ToLower(b.Pemeta)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if ascending {
			return less(rows[i], rows[j])
		}
		return less(rows[j], rows[i])
	})
}

/* ===============================
   Agregasi per wilayah (kecamatan/desa)
=================================*/

type WilayahAgg struct {
	Kode  string `json:"kode"`
	Nama  string `json:"nama"`
	Total int    `json:"total"`

	Approve int `json:"approve"`
	Submit  int `json:"submit"`
	Proses  int `json:"proses"`
	Belum   int `json:"belum"`

	PersenApprove float64 `json:"persen_approve"`
	PersenSubmit  float64 `json:"persen_submit"`
	PersenProses  float64 `json:"persen_proses"`
	PersenBelum   float64 `json:"persen_belum"`
}

// Kode wilayah adalah prefiks id dengan panjang tetap:
// 7 karakter = kecamatan, 10 karakter = desa.
func KodeKecamatan(id string) string { return prefix(id, 7) }
func KodeDesa(id string) string      { return prefix(id, 10) }

func prefix(id string, n int) string {
	if len(id) < n {
		return id
	}
	return id[:n]
}

// AggregateWilayah menghitung sebaran status per wilayah. Tanpa filter
// kecamatan, grup per kecamatan; dengan filter, grup per desa di kecamatan itu.
// Status di luar {Approve, Submit, Proses} dihitung sebagai Belum.
func AggregateWilayah(units []model.InformasiSLSModel, kecamatanFilter string) []WilayahAgg {
	kodeOf := KodeKecamatan
	if kecamatanFilter != "" {
		kodeOf = KodeDesa
	}

	agg := map[string]*WilayahAgg{}
	order := []string{}

	for _, u := range units {
		if kecamatanFilter != "" && u.Kecamatan != kecamatanFilter {
			continue
		}
		kode := kodeOf(u.ID)
		row, ok := agg[kode]
		if !ok {
			nama := u.Kecamatan
			if kecamatanFilter != "" {
				nama = u.Desa
			}
			row = &WilayahAgg{Kode: kode, Nama: nama}
			agg[kode] = row
			order = append(order, kode)
		}

		row.Total++
		switch constants.NormalizeStatus(u.Status) {
		case constants.StatusApprove:
			row.Approve++
		case constants.StatusSubmit:
			row.Submit++
		case constants.StatusProses:
			row.Proses++
		default:
			row.Belum++
		}
	}

	sort.Strings(order)

	out := make([]WilayahAgg, 0, len(order))
	for _, kode := range order {
		row := *agg[kode]
		if row.Total > 0 {
			total := float64(row.Total)
			row.PersenApprove = round2(float64(row.Approve) / total * 100)
			row.PersenSubmit = round2(float64(row.Submit) / total * 100)
			row.PersenProses = round2(float64(row.Proses) / total * 100)
			row.PersenBelum = round2(float64(row.Belum) / total * 100)
		}
		out = append(out, row)
	}
	return out
}

/* ===============================
   Target harian vs realisasi
=================================*/

type TargetRealisasi struct {
	Kode          string  `json:"kode"`
	Nama          string  `json:"nama"`
	TargetHariIni int     `json:"target_hari_ini"`
	Realisasi     int     `json:"realisasi"`
	TotalTarget   int     `json:"total_target"`
	Persentase    float64 `json:"persentase"`
}

// TargetHarian merekap target hari ini (tanggal dihitung di zona WITA) dan
// realisasi (SLS berstatus Approve/Submit) per kecamatan. Persentase dihitung
// terhadap tabel total target statis per kecamatan.
func TargetHarian(units []model.InformasiSLSModel, targets []model.TargetSLSModel, now time.Time) []TargetRealisasi {
	loc, err := time.LoadLocation("Asia/Makassar")
	if err != nil {
		loc = time.UTC
	}
	today := now.In(loc).Format("2006-01-02")

	targetByKec := map[string]int{}
	for _, t := range targets {
		if time.Time(t.Tanggal).Format("2006-01-02") != today {
			continue
		}
		targetByKec[KodeKecamatan(t.IDSLS)] += t.Target
	}

	realisasiByKec := map[string]int{}
	for _, u := range units {
		if constants.IsRealisasi(u.Status) {
			realisasiByKec[KodeKecamatan(u.ID)]++
		}
	}

	kodeList := make([]string, 0, len(constants.TotalTargetKecamatan))
	for kode := range constants.TotalTargetKecamatan {
		kodeList = append(kodeList, kode)
	}
	sort.Strings(kodeList)

	out := make([]TargetRealisasi, 0, len(kodeList))
	for _, kode := range kodeList {
		total := constants.TotalTargetKecamatan[kode]
		row := TargetRealisasi{
			Kode:          kode,
			Nama:          constants.NamaKecamatan[kode],
			TargetHariIni: targetByKec[kode],
			Realisasi:     realisasiByKec[kode],
			TotalTarget:   total,
		}
		if total > 0 {
			row.Persentase = round2(float64(row.Realisasi) / float64(total) * 100)
		}
		out = append(out, row)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
