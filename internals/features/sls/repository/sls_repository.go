package repository

import (
	"context"
	"log"

	"gorm.io/gorm"

	"petasan_backend/internals/features/sls/model"
)

// Ukuran halaman range-request, mengikuti batas default PostgREST/Supabase.
const defaultPageSize = 1000

type SLSRepository struct {
	DB *gorm.DB
}

func NewSLSRepository(db *gorm.DB) *SLSRepository {
	return &SLSRepository{DB: db}
}

// fetchAllPaged mengambil seluruh isi tabel lewat offset/limit berulang sampai
// halaman terakhir (lebih pendek dari pageSize atau kosong).
// Fail-soft: kalau satu halaman gagal, log lalu kembalikan yang sudah terkumpul —
// pemanggil wajib memperlakukan baris yang hilang sebagai nol/kosong.
func fetchAllPaged[T any](db *gorm.DB, pageSize int) []T {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	var all []T
	from := 0
	for {
		var page []T
		if err := db.Offset(from).Limit(pageSize).Find(&page).Error; err != nil {
			log.Printf("[ERROR] fetchAllPaged %T offset=%d: %v", page, from, err)
			return all
		}
		if len(page) == 0 {
			break
		}
		all = append(all, page...)
		if len(page) < pageSize {
			break
		}
		from += pageSize
	}
	return all
}

// AllInformasiSLS: seluruh baris SLS.
func (r *SLSRepository) AllInformasiSLS(ctx context.Context) []model.InformasiSLSModel {
	return fetchAllPaged[model.InformasiSLSModel](r.DB.WithContext(ctx), defaultPageSize)
}

// AllSubSLS: seluruh rincian segmen. Tabel ini yang paling mungkin melewati
// satu halaman, makanya dipaging.
func (r *SLSRepository) AllSubSLS(ctx context.Context) []model.InformasiSubSLSModel {
	return fetchAllPaged[model.InformasiSubSLSModel](r.DB.WithContext(ctx), defaultPageSize)
}

// MuatanBySLS: total muatan segmen per sls_id.
func (r *SLSRepository) MuatanBySLS(ctx context.Context) map[string]int {
	rows := r.AllSubSLS(ctx)
	grouped := make(map[string]int, len(rows))
	for _, row := range rows {
		grouped[row.SLSID] += row.Muatan
	}
	return grouped
}

// DatabaseAwalMap: estimasi perencanaan, diindeks by id untuk lookup join O(1).
func (r *SLSRepository) DatabaseAwalMap(ctx context.Context) map[string]model.DatabaseAwalModel {
	rows := fetchAllPaged[model.DatabaseAwalModel](r.DB.WithContext(ctx), defaultPageSize)
	m := make(map[string]model.DatabaseAwalModel, len(rows))
	for _, row := range rows {
		m[row.ID] = row
	}
	return m
}

// AllTargetSLS: seluruh target harian.
func (r *SLSRepository) AllTargetSLS(ctx context.Context) []model.TargetSLSModel {
	return fetchAllPaged[model.TargetSLSModel](r.DB.WithContext(ctx), defaultPageSize)
}

// LinkMap: lookup idsls → link, digabung di sisi aplikasi.
func (r *SLSRepository) LinkMap(ctx context.Context) map[string]string {
	rows := fetchAllPaged[model.SLSLinkModel](r.DB.WithContext(ctx), defaultPageSize)
	m := make(map[string]string, len(rows))
	for _, row := range rows {
		m[row.IDSLS] = row.Link
	}
	return m
}

// SegmenBySLS: rincian segmen satu SLS, urut segmen_no.
func (r *SLSRepository) SegmenBySLS(ctx context.Context, slsID string) ([]model.InformasiSubSLSModel, error) {
	var rows []model.InformasiSubSLSModel
	err := r.DB.WithContext(ctx).
		Where("sls_id = ?", slsID).
		Order("segmen_no ASC").
		Find(&rows).Error
	return rows, err
}
