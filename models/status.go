package models

// Status presensi untuk tabel attendance_records (huruf kecil, ada CHECK di DB).
type RecordStatus string

const (
	RecordStatusHadir RecordStatus = "hadir"
	RecordStatusIzin  RecordStatus = "izin"
	RecordStatusSakit RecordStatus = "sakit"
	RecordStatusAlpha RecordStatus = "alpha"
)

// Valid mengembalikan true jika status termasuk nilai yang didukung.
func (s RecordStatus) Valid() bool {
	switch s {
	case RecordStatusHadir, RecordStatusIzin, RecordStatusSakit, RecordStatusAlpha:
		return true
	default:
		return false
	}
}

// Status untuk tabel absensi lama (kapital, teks bebas — jangan disamakan
// dengan RecordStatus).
type LegacyStatus string

const (
	LegacyStatusHadir LegacyStatus = "Hadir"
	LegacyStatusSakit LegacyStatus = "Sakit"
	LegacyStatusIzin  LegacyStatus = "Izin"
	LegacyStatusAlpha LegacyStatus = "Alpha"
)
