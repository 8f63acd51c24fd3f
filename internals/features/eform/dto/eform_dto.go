package dto

// EformSLSRow: angka pembanding per SLS yang dilaporkan lewat jalur eform.
type EformSLSRow struct {
	IDSLSEform  string `json:"idsls_eform"`
	SegmenEform int    `json:"segmen_eform"`
	MuatanEform int    `json:"muatan_eform"`
}

// EformWilayahRow: rekap per kecamatan yang persentasenya sudah dihitung di hulu.
type EformWilayahRow struct {
	Kode            string  `json:"kode"`
	Nama            string  `json:"nama"`
	PersentaseEform float64 `json:"persentase_eform"`
}
