package constants

// Status pendataan SLS. "Selesai" adalah nilai lama yang masih ada di
// beberapa baris, dinormalisasi ke Approve saat dibaca.
const (
	StatusBelum   = "Belum"
	StatusProses  = "Proses"
	StatusSubmit  = "Submit"
	StatusApprove = "Approve"

	StatusSelesaiLegacy = "Selesai"
)

var ValidStatus = []string{StatusBelum, StatusProses, StatusSubmit, StatusApprove}

// NormalizeStatus memetakan nilai status lama ke nilai kanonik.
func NormalizeStatus(s string) string {
	if s == StatusSelesaiLegacy {
		return StatusApprove
	}
	return s
}

// IsRealisasi: status yang dihitung sebagai capaian lapangan.
func IsRealisasi(s string) bool {
	s = NormalizeStatus(s)
	return s == StatusApprove || s == StatusSubmit
}
