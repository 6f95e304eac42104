package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Afriels/presensi-new/models"
)

func strPtr(s string) *string { return &s }

func sampleRows() []models.AttendanceRecordView {
	return []models.AttendanceRecordView{
		{
			AttendanceRecord: models.AttendanceRecord{
				ID: 1, Status: models.RecordStatusHadir, Date: "2024-01-10",
			},
			StudentName: strPtr("Andi Pratama"),
			ClassName:   strPtr("A"),
			SubjectName: strPtr("Matematika"),
		},
		{
			AttendanceRecord: models.AttendanceRecord{
				ID: 2, Status: models.RecordStatusSakit, Date: "2024-01-11",
			},
			StudentName: strPtr("Citra Dewi"),
			ClassName:   strPtr("B"),
			SubjectName: strPtr("Fisika"),
		},
	}
}

func TestBuildReportEmpty(t *testing.T) {
	_, err := BuildReport(nil)
	assert.ErrorIs(t, err, ErrNoRows)

	_, err = ReportBytes([]models.AttendanceRecordView{})
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestBuildReport(t *testing.T) {
	f, err := BuildReport(sampleRows())
	assert.NoError(t, err)
	defer f.Close()

	// satu sheet bernama "Laporan Presensi"
	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	// baris header
	for i, want := range []string{"Tanggal", "Nama Siswa", "Kelas", "Mata Pelajaran", "Status"} {
		cell := string(rune('A'+i)) + "1"
		got, err := f.GetCellValue(SheetName, cell)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// baris data + status kapital
	got, err := f.GetCellValue(SheetName, "B2")
	assert.NoError(t, err)
	assert.Equal(t, "Andi Pratama", got)

	got, err = f.GetCellValue(SheetName, "E2")
	assert.NoError(t, err)
	assert.Equal(t, "HADIR", got)

	got, err = f.GetCellValue(SheetName, "E3")
	assert.NoError(t, err)
	assert.Equal(t, "SAKIT", got)

	// lebar kolom tetap
	w, err := f.GetColWidth(SheetName, "B")
	assert.NoError(t, err)
	assert.InDelta(t, 25, w, 0.01)
}

// Nama hasil join bisa NULL (referensi menggantung) — sel dibiarkan kosong.
func TestBuildReportNilNames(t *testing.T) {
	rows := []models.AttendanceRecordView{
		{
			AttendanceRecord: models.AttendanceRecord{
				ID: 1, Status: models.RecordStatusAlpha, Date: "2024-01-10",
			},
		},
	}
	f, err := BuildReport(rows)
	assert.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue(SheetName, "B2")
	assert.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = f.GetCellValue(SheetName, "E2")
	assert.NoError(t, err)
	assert.Equal(t, "ALPHA", got)
}

func TestFilename(t *testing.T) {
	assert.Equal(t,
		"Laporan_Presensi_2024-01-01_2024-01-31.xlsx",
		Filename("2024-01-01", "2024-01-31"))
}

func TestReportBytes(t *testing.T) {
	data, err := ReportBytes(sampleRows())
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
	// file xlsx = arsip zip, diawali "PK"
	assert.Equal(t, byte('P'), data[0])
	assert.Equal(t, byte('K'), data[1])
}
