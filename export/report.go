package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Afriels/presensi-new/models"
)

// ErrNoRows: tidak ada baris dalam rentang — tombol ekspor memang
// dinonaktifkan, bukan error pengguna.
var ErrNoRows = errors.New("export: no rows to export")

// SheetName adalah nama sheet laporan di file hasil ekspor.
const SheetName = "Laporan Presensi"

var (
	headers   = []string{"Tanggal", "Nama Siswa", "Kelas", "Mata Pelajaran", "Status"}
	colWidths = []float64{12, 25, 15, 20, 10}
)

// Filename membentuk nama file dengan rentang tanggal kueri.
func Filename(startDate, endDate string) string {
	return fmt.Sprintf("Laporan_Presensi_%s_%s.xlsx", startDate, endDate)
}

// BuildReport menyusun workbook laporan presensi: header tebal berlatar abu,
// lebar kolom tetap, status ditulis kapital.
func BuildReport(rows []models.AttendanceRecordView) (*excelize.File, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, err
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(SheetName, col, col, colWidths[i]); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"CCCCCC"}},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, "A1", "E1", headerStyle); err != nil {
		return nil, err
	}

	for i, r := range rows {
		rowNum := i + 2
		values := []any{
			r.Date,
			strDeref(r.StudentName),
			strDeref(r.ClassName),
			strDeref(r.SubjectName),
			strings.ToUpper(string(r.Status)),
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, rowNum)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// ReportBytes membangun laporan lalu menulisnya ke buffer (untuk diunduh).
func ReportBytes(rows []models.AttendanceRecordView) ([]byte, error) {
	f, err := BuildReport(rows)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
