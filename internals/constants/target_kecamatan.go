package constants

// TotalTargetKecamatan: total target SLS per kecamatan se-Kabupaten Tabanan.
// Angka ini data referensi statis dari rencana pendataan, bukan hasil hitung.
var TotalTargetKecamatan = map[string]int{
	"5102010": 188, // Selemadeg
	"5102011": 152, // Selemadeg Timur
	"5102012": 149, // Selemadeg Barat
	"5102020": 212, // Kerambitan
	"5102030": 274, // Tabanan
	"5102040": 341, // Kediri
	"5102050": 296, // Marga
	"5102060": 283, // Baturiti
	"5102070": 319, // Penebel
	"5102080": 276, // Pupuan
}

// NamaKecamatan untuk label chart ketika tidak ada baris data yang membawa nama.
var NamaKecamatan = map[string]string{
	"5102010": "Selemadeg",
	"5102011": "Selemadeg Timur",
	"5102012": "Selemadeg Barat",
	"5102020": "Kerambitan",
	"5102030": "Tabanan",
	"5102040": "Kediri",
	"5102050": "Marga",
	"5102060": "Baturiti",
	"5102070": "Penebel",
	"5102080": "Pupuan",
}
