package service

import (
	"context"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"petasan_backend/internals/features/eform/dto"
)

// Posisi kolom payload Metabase. Sumber hulu mengirim rows sebagai array
// posisional, jadi perubahan susunan kolom cukup diperbaiki di sini.
const (
	colID         = 1
	colJenisBaris = 2
	colKodeKab    = 5
	colSegmen     = 11
	colMuatan     = 12

	colKodeWilayah  = 1
	colNamaWilayah  = 2
	colPersenEform  = 13
	rowWilayahStart = 15
	rowWilayahEnd   = 25

	jenisBarisSLS = "sls"
	kodeKabupaten = "5102"
)

type MetabaseService struct {
	CardURL string
	Timeout time.Duration
}

func NewMetabaseService(cardURL string) *MetabaseService {
	return &MetabaseService{
		CardURL: cardURL,
		Timeout: 15 * time.Second,
	}
}

type metabasePayload struct {
	Data struct {
		Rows [][]any `json:"rows"`
	} `json:"data"`
}

// NormalizeID membuang semua karakter non-digit. Ini satu-satunya strategi
// pencocokan id di seluruh aplikasi: dua id yang hanya beda format non-digit
// dianggap sama.
func NormalizeID(raw any) string {
	s := toString(raw)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FetchMuatanSLS mengambil baris level SLS dari card Metabase.
// Gagal jaringan atau bentuk payload berubah → log dan kembalikan kosong;
// "tidak ada data eform" adalah keadaan normal, bukan error.
func (s *MetabaseService) FetchMuatanSLS(ctx context.Context) []dto.EformSLSRow {
	rows, ok := s.fetchRows(ctx)
	if !ok {
		return []dto.EformSLSRow{}
	}
	return MapMuatanRows(rows)
}

// MapMuatanRows menyaring dan memetakan baris posisional menjadi record bertipe.
func MapMuatanRows(rows [][]any) []dto.EformSLSRow {
	out := make([]dto.EformSLSRow, 0, len(rows))
	for _, row := range rows {
		if toString(col(row, colJenisBaris)) != jenisBarisSLS {
			continue
		}
		if toString(col(row, colKodeKab)) != kodeKabupaten {
			continue
		}
		out = append(out, dto.EformSLSRow{
			IDSLSEform:  NormalizeID(col(row, colID)),
			SegmenEform: toInt(col(row, colSegmen)),
			MuatanEform: toInt(col(row, colMuatan)),
		})
	}
	return out
}

// FetchPersentaseWilayah mengambil rekap per kecamatan dari slice baris tetap.
func (s *MetabaseService) FetchPersentaseWilayah(ctx context.Context) []dto.EformWilayahRow {
	rows, ok := s.fetchRows(ctx)
	if !ok {
		return []dto.EformWilayahRow{}
	}
	return MapWilayahRows(rows)
}

// MapWilayahRows memotong rentang baris wilayah (15–25) dan membaca kolom tetap.
// Persentase dari hulu berupa pecahan, dikali 100 dan dibulatkan 2 desimal.
func MapWilayahRows(rows [][]any) []dto.EformWilayahRow {
	if len(rows) < rowWilayahStart {
		return []dto.EformWilayahRow{}
	}
	end := rowWilayahEnd
	if end > len(rows) {
		end = len(rows)
	}

	out := make([]dto.EformWilayahRow, 0, end-rowWilayahStart)
	for _, row := range rows[rowWilayahStart:end] {
		persen := toFloat(col(row, colPersenEform)) * 100
		out = append(out, dto.EformWilayahRow{
			Kode:            NormalizeID(col(row, colKodeWilayah)),
			Nama:            toString(col(row, colNamaWilayah)),
			PersentaseEform: math.Round(persen*100) / 100,
		})
	}
	return out
}

func (s *MetabaseService) fetchRows(ctx context.Context) ([][]any, bool) {
	if s.CardURL == "" {
		log.Println("[WARN] metabase: CardURL kosong, lewati fetch eform")
		return nil, false
	}

	agent := fiber.Get(s.CardURL)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	agent.Timeout(s.Timeout)
	if deadline, ok := ctx.Deadline(); ok {
		if d := time.Until(deadline); d > 0 && d < s.Timeout {
			agent.Timeout(d)
		}
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		log.Printf("[ERROR] metabase: fetch gagal: %v", errs[0])
		return nil, false
	}
	if code != fiber.StatusOK {
		log.Printf("[ERROR] metabase: status %d", code)
		return nil, false
	}

	var payload metabasePayload
	if err := sonic.Unmarshal(body, &payload); err != nil {
		log.Printf("[ERROR] metabase: payload tidak bisa diparse: %v", err)
		return nil, false
	}
	return payload.Data.Rows, true
}

/* ===============================
   Pembaca kolom posisional
=================================*/

func col(row []any, idx int) any {
	if idx < 0 || idx >= len(row) {
		return nil
	}
	return row[idx]
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}

func toInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case int64:
		return int(t)
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(t))
		return n
	default:
		return 0
	}
}

func toFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f
	default:
		return 0
	}
}
