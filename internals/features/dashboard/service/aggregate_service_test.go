package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"petasan_backend/internals/features/sls/model"
)

func unitPetugas(id, pemeriksa, pemeta, status string) model.InformasiSLSModel {
	return model.InformasiSLSModel{
		ID:        id,
		Pemeriksa: pemeriksa,
		Pemeta:    pemeta,
		Status:    status,
	}
}

func TestAggregatePetugas(t *testing.T) {
	units := []model.InformasiSLSModel{
		unitPetugas("5102011001", "Wayan", "Kadek", "Proses"),
		unitPetugas("5102011002", "Wayan", "Kadek", "Belum"),
		unitPetugas("5102011003", "Made", "Komang", "Approve"),
	}
	muatan := map[string]int{
		"5102011001": 100,
		"5102011002": 50,
		"5102011003": 30,
	}

	rows := AggregatePetugas(units, muatan)
	require.Len(t, rows, 2)

	// Urutan default: pemeriksa naik.
	assert.Equal(t, "Made", rows[0].Pemeriksa)
	assert.Equal(t, "Wayan", rows[1].Pemeriksa)

	wayan := rows[1]
	assert.Equal(t, 2, wayan.JumlahSLS)
	assert.Equal(t, 150, wayan.TotalMuatan)
	assert.InDelta(t, 75.0, wayan.AvgMuatan, 0.001)
}

func TestAggregatePetugas_TotalMuatanKonsisten(t *testing.T) {
	// Total muatan seluruh grup harus sama dengan total muatan seluruh SLS,
	// apa pun pembagian grupnya.
	units := []model.InformasiSLSModel{
		unitPetugas("1", "A", "X", "Belum"),
		unitPetugas("2", "A", "Y", "Belum"),
		unitPetugas("3", "B", "X", "Belum"),
		unitPetugas("4", "B", "X", "Belum"),
	}
	muatan := map[string]int{"1": 7, "2": 11, "3": 13, "4": 17}

	rows := AggregatePetugas(units, muatan)

	sumGroups := 0
	for _, r := range rows {
		sumGroups += r.TotalMuatan
	}
	assert.Equal(t, 7+11+13+17, sumGroups)
}

func TestSortPetugas(t *testing.T) {
	rows := []PetugasAgg{
		{Pemeriksa: "B", Pemeta: "X", JumlahSLS: 2, TotalMuatan: 40, AvgMuatan: 20},
		{Pemeriksa: "A", Pemeta: "Z", JumlahSLS: 5, TotalMuatan: 50, AvgMuatan: 10},
		{Pemeriksa: "A", Pemeta: "Y", JumlahSLS: 2, TotalMuatan: 60, AvgMuatan: 30},
	}

	SortPetugas(rows, "jumlah_sls", true)
	assert.Equal(t, 2, rows[0].JumlahSLS)
	assert.Equal(t, 5, rows[2].JumlahSLS)

	SortPetugas(rows, "total_muatan", false)
	assert.Equal(t, 60, rows[0].TotalMuatan)
	assert.Equal(t, 40, rows[2].TotalMuatan)

	// Sort stabil: seri pada kunci baru mempertahankan urutan sebelumnya.
	// Setelah total_muatan turun: Y(2 sls), Z(5 sls), X(2 sls).
	SortPetugas(rows, "jumlah_sls", true)
	assert.Equal(t, "Y", rows[0].Pemeta)
	assert.Equal(t, "X", rows[1].Pemeta)
	assert.Equal(t, "Z", rows[2].Pemeta)
}

func TestAggregateWilayah(t *testing.T) {
	units := []model.InformasiSLSModel{
		{ID: "5102011001", Kecamatan: "Selemadeg Timur", Desa: "Desa A", Status: "Approve"},
		{ID: "5102011002", Kecamatan: "Selemadeg Timur", Desa: "Desa A", Status: "Submit"},
		{ID: "5102011003", Kecamatan: "Selemadeg Timur", Desa: "Desa A", Status: "Proses"},
		{ID: "5102012001", Kecamatan: "Selemadeg Barat", Desa: "Desa B", Status: "Mengambang"}, // status asing → Belum
		{ID: "5102012002", Kecamatan: "Selemadeg Barat", Desa: "Desa B", Status: "Selesai"},    // legacy → Approve
	}

	t.Run("grup per kecamatan (prefiks 7 karakter)", func(t *testing.T) {
		rows := AggregateWilayah(units, "")
		require.Len(t, rows, 2)

		timur := rows[0]
		assert.Equal(t, "5102011", timur.Kode)
		assert.Equal(t, 3, timur.Total)
		assert.Equal(t, 1, timur.Approve)
		assert.Equal(t, 1, timur.Submit)
		assert.Equal(t, 1, timur.Proses)
		assert.InDelta(t, 33.33, timur.PersenApprove, 0.001)

		barat := rows[1]
		assert.Equal(t, "5102012", barat.Kode)
		assert.Equal(t, 1, barat.Belum)
		assert.Equal(t, 1, barat.Approve) // "Selesai" dinormalisasi
	})

	t.Run("filter kecamatan → grup per desa (prefiks 10 karakter)", func(t *testing.T) {
		rows := AggregateWilayah(units, "Selemadeg Timur")
		require.Len(t, rows, 1)
		assert.Equal(t, "5102011001"[:10], rows[0].Kode)
		assert.Equal(t, "Desa A", rows[0].Nama)
		assert.Equal(t, 3, rows[0].Total)
	})
}

func TestTargetHarian(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Makassar")
	require.NoError(t, err)
	now := time.Date(2025, 8, 10, 9, 0, 0, 0, loc)

	hariIni := datatypes.Date(time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC))
	kemarin := datatypes.Date(time.Date(2025, 8, 9, 0, 0, 0, 0, time.UTC))

	targets := []model.TargetSLSModel{
		{IDSLS: "5102011001", Tanggal: hariIni, Target: 4},
		{IDSLS: "5102011002", Tanggal: hariIni, Target: 3},
		{IDSLS: "5102011003", Tanggal: kemarin, Target: 9}, // bukan hari ini
	}
	units := []model.InformasiSLSModel{
		{ID: "5102011001", Status: "Approve"},
		{ID: "5102011002", Status: "Submit"},
		{ID: "5102011003", Status: "Proses"}, // bukan realisasi
	}

	rows := TargetHarian(units, targets, now)
	require.Len(t, rows, 10) // satu baris per kecamatan di tabel target

	var timur *TargetRealisasi
	for i := range rows {
		if rows[i].Kode == "5102011" {
			timur = &rows[i]
			break
		}
	}
	require.NotNil(t, timur)
	assert.Equal(t, 7, timur.TargetHariIni)
	assert.Equal(t, 2, timur.Realisasi)
	assert.Equal(t, 152, timur.TotalTarget)
	assert.InDelta(t, float64(2)/152*100, timur.Persentase, 0.01)
}

func TestTimeline(t *testing.T) {
	tgl := func(y, m, d int) *datatypes.Date {
		v := datatypes.Date(time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC))
		return &v
	}

	units := []model.InformasiSLSModel{
		{ID: "1", SLS: "Banjar Anyar", Pemeriksa: "Wayan", Pemeta: "Kadek",
			Status: "Proses", TglAwal: tgl(2025, 8, 1), TglAkhir: tgl(2025, 8, 3)},
		{ID: "2", SLS: "Banjar Tengah", Pemeriksa: "Wayan", Pemeta: "Kadek",
			Status: "Belum"}, // tanpa tanggal → grup ada, item tidak
		{ID: "3", SLS: "Banjar Lain", Pemeriksa: "Made", Pemeta: "Komang",
			Status: "Approve", TglAwal: tgl(2025, 8, 2), TglAkhir: tgl(2025, 8, 4)},
	}

	rows := Timeline(units, "Wayan", "")
	require.Len(t, rows, 2)
	require.Len(t, rows[0].Items, 1)
	assert.Equal(t, "2025-08-01", rows[0].Items[0].TglAwal)
	assert.Empty(t, rows[1].Items)
}
