package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petasan_backend/internals/features/sls/model"
)

func TestNormalizeSegmenRows(t *testing.T) {
	asli := []SegmenItemRequest{
		{Sub: 1, Muatan: 10},
		{Sub: 2, Muatan: 20},
		{Sub: 1, Muatan: 30},
	}

	t.Run("memperbesar menambah baris kosong di belakang", func(t *testing.T) {
		out := NormalizeSegmenRows(asli, 5)
		require.Len(t, out, 5)
		assert.Equal(t, asli[0], out[0])
		assert.Equal(t, asli[1], out[1])
		assert.Equal(t, asli[2], out[2])
		assert.Equal(t, SegmenItemRequest{}, out[3])
		assert.Equal(t, SegmenItemRequest{}, out[4])
	})

	t.Run("memperkecil memotong dari belakang", func(t *testing.T) {
		out := NormalizeSegmenRows(asli, 2)
		require.Len(t, out, 2)
		assert.Equal(t, 10, out[0].Muatan)
		assert.Equal(t, 20, out[1].Muatan)
	})

	t.Run("jumlah sama tidak mengubah isi", func(t *testing.T) {
		out := NormalizeSegmenRows(asli, 3)
		assert.Equal(t, asli, out)
	})

	t.Run("tidak memodifikasi slice masukan", func(t *testing.T) {
		_ = NormalizeSegmenRows(asli, 5)
		assert.Len(t, asli, 3)
	})

	t.Run("total negatif diperlakukan nol", func(t *testing.T) {
		assert.Empty(t, NormalizeSegmenRows(asli, -1))
	})
}

func TestValidateCounts(t *testing.T) {
	t.Run("lolos untuk isian wajar", func(t *testing.T) {
		req := UpdateInformasiSLSRequest{
			Status:       "Proses",
			JumlahSub:    2,
			JumlahSegmen: 3,
			Segmen: []SegmenItemRequest{
				{Sub: 1, Muatan: 50},
				{Sub: 2, Muatan: 180},
				{Sub: 0, Muatan: 0},
			},
		}
		assert.Empty(t, req.ValidateCounts())
	})

	t.Run("jumlah sub melebihi jumlah segmen", func(t *testing.T) {
		req := UpdateInformasiSLSRequest{JumlahSub: 4, JumlahSegmen: 3}
		errs := req.ValidateCounts()
		assert.Contains(t, errs, "jumlah_sub")
	})

	t.Run("sub per segmen melebihi jumlah sub SLS", func(t *testing.T) {
		req := UpdateInformasiSLSRequest{
			JumlahSub:    1,
			JumlahSegmen: 2,
			Segmen:       []SegmenItemRequest{{Sub: 2, Muatan: 10}},
		}
		errs := req.ValidateCounts()
		assert.Contains(t, errs, "segmen.1.sub")
	})

	t.Run("muatan segmen melebihi batas", func(t *testing.T) {
		req := UpdateInformasiSLSRequest{
			JumlahSub:    1,
			JumlahSegmen: 1,
			Segmen:       []SegmenItemRequest{{Sub: 1, Muatan: MaxMuatanSegmen + 1}},
		}
		errs := req.ValidateCounts()
		assert.Contains(t, errs, "segmen.1.muatan")
	})
}

func TestToSubSLSModels(t *testing.T) {
	rows := []SegmenItemRequest{{Sub: 1, Muatan: 10}, {Sub: 0, Muatan: 0}, {Sub: 2, Muatan: 30}}

	out := ToSubSLSModels("5102011001", rows)
	require.Len(t, out, 3)

	// Penomoran selalu 1..N sesuai posisi, tanpa lubang.
	for i, m := range out {
		assert.Equal(t, "5102011001", m.SLSID)
		assert.Equal(t, i+1, m.SegmenNo)
	}
	assert.Equal(t, 30, out[2].Muatan)
}

func TestApplyToModel(t *testing.T) {
	awal := "2025-08-01"
	akhir := "2025-08-05"
	catatan := "revisi batas segmen"
	benar := true

	req := UpdateInformasiSLSRequest{
		Status:       "Submit",
		JumlahSub:    2,
		JumlahSegmen: 4,
		TglAwal:      &awal,
		TglAkhir:     &akhir,
		Catatan:      &catatan,
		Perubahan:    &benar,
	}

	var m model.InformasiSLSModel
	require.NoError(t, req.ApplyToModel(&m))

	assert.Equal(t, "Submit", m.Status)
	assert.Equal(t, 4, m.JumlahSegmen)
	require.NotNil(t, m.TglAwal)
	assert.Equal(t, "2025-08-01", time.Time(*m.TglAwal).Format("2006-01-02"))
	require.NotNil(t, m.Catatan)
	assert.Equal(t, catatan, *m.Catatan)
	require.NotNil(t, m.Perubahan)
	assert.True(t, *m.Perubahan)

	t.Run("tanggal tidak valid ditolak", func(t *testing.T) {
		salah := "01-08-2025"
		req := UpdateInformasiSLSRequest{Status: "Proses", JumlahSegmen: 1, TglAwal: &salah}
		var m model.InformasiSLSModel
		assert.Error(t, req.ApplyToModel(&m))
	})

	t.Run("tanggal nil berarti dikosongkan", func(t *testing.T) {
		req := UpdateInformasiSLSRequest{Status: "Belum", JumlahSegmen: 1}
		m := model.InformasiSLSModel{TglAwal: nil}
		require.NoError(t, req.ApplyToModel(&m))
		assert.Nil(t, m.TglAwal)
		assert.Nil(t, m.TglAkhir)
	})
}
