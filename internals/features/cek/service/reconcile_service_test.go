package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eformDTO "petasan_backend/internals/features/eform/dto"
	"petasan_backend/internals/features/sls/model"
)

func unit(id string, jumlahSub, jumlahSegmen int) model.InformasiSLSModel {
	return model.InformasiSLSModel{
		ID:           id,
		Kecamatan:    "Kerambitan",
		Desa:         "Baturiti",
		SLS:          "Banjar " + id,
		Pemeriksa:    "Made",
		Pemeta:       "Kadek",
		JumlahSub:    jumlahSub,
		JumlahSegmen: jumlahSegmen,
	}
}

func TestReconcile_SatuBarisPerSLS(t *testing.T) {
	units := []model.InformasiSLSModel{
		unit("5102011001", 2, 3),
		unit("5102011002", 1, 2),
	}
	// Hanya SLS pertama yang punya pasangan eform dan estimasi.
	eform := []eformDTO.EformSLSRow{
		{IDSLSEform: "5102011001", SegmenEform: 3, MuatanEform: 100},
	}
	awal := map[string]model.DatabaseAwalModel{
		"5102011001": {ID: "5102011001", EstimasiSub: 2, EstimasiMuatan: 90},
	}

	rows := Reconcile(units, map[string]int{"5102011001": 100}, awal, eform)
	require.Len(t, rows, 2)

	first := rows[0]
	require.NotNil(t, first.SegmenEform)
	assert.Equal(t, 3, *first.SegmenEform)
	assert.Equal(t, 100, first.MuatanPetasan)

	// Sisi eform dan estimasi yang tidak ada harus nil, bukan nol.
	second := rows[1]
	assert.Nil(t, second.SegmenEform)
	assert.Nil(t, second.MuatanEform)
	assert.Nil(t, second.EstimasiSub)
	assert.Nil(t, second.EstimasiMuatan)
	assert.Equal(t, 0, second.MuatanPetasan)

	// Tanpa pasangan data tidak boleh ada penanda selisih.
	assert.False(t, second.SegmenBeda)
	assert.False(t, second.SubKurang)
	assert.False(t, second.EstimasiLebih)
	assert.False(t, second.MuatanBeda)
}

func TestReconcile_UrutanNumerik(t *testing.T) {
	units := []model.InformasiSLSModel{unit("10", 1, 1), unit("9", 1, 1)}

	rows := Reconcile(units, nil, nil, nil)
	require.Len(t, rows, 2)
	assert.Equal(t, "9", rows[0].ID)
	assert.Equal(t, "10", rows[1].ID)
}

func TestReconcile_IDEformDenganSpasi(t *testing.T) {
	units := []model.InformasiSLSModel{unit("5102011", 1, 2)}
	eform := []eformDTO.EformSLSRow{
		{IDSLSEform: " 5102011 ", SegmenEform: 2, MuatanEform: 40},
	}

	rows := Reconcile(units, nil, nil, eform)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].SegmenEform)
	assert.Equal(t, 2, *rows[0].SegmenEform)
}

func TestReconcile_DuplikatEformBarisPertamaMenang(t *testing.T) {
	units := []model.InformasiSLSModel{unit("5102011", 1, 2)}
	eform := []eformDTO.EformSLSRow{
		{IDSLSEform: "5102011", SegmenEform: 2, MuatanEform: 40},
		{IDSLSEform: "5102.011", SegmenEform: 9, MuatanEform: 99},
	}

	rows := Reconcile(units, nil, nil, eform)
	require.NotNil(t, rows[0].MuatanEform)
	assert.Equal(t, 40, *rows[0].MuatanEform)
}

func TestPenandaSelisih(t *testing.T) {
	p := func(v int) *int { return &v }

	t.Run("nil di salah satu sisi berarti tanpa penanda", func(t *testing.T) {
		assert.False(t, SegmenBeda(nil, p(3)))
		assert.False(t, SegmenBeda(p(3), nil))
		assert.False(t, SubKurang(nil, nil))
		assert.False(t, EstimasiLebih(nil, p(10)))
		assert.False(t, MuatanBeda(p(10), nil))
	})

	t.Run("mengikuti pertidaksamaan masing-masing", func(t *testing.T) {
		assert.False(t, SegmenBeda(p(3), p(3)))
		assert.True(t, SegmenBeda(p(3), p(4)))

		assert.True(t, SubKurang(p(1), p(2)))
		assert.False(t, SubKurang(p(2), p(2)))
		assert.False(t, SubKurang(p(3), p(2)))

		assert.True(t, EstimasiLebih(p(100), p(90)))
		assert.False(t, EstimasiLebih(p(90), p(90)))

		assert.True(t, MuatanBeda(p(10), p(11)))
		assert.False(t, MuatanBeda(p(10), p(10)))
	})
}
