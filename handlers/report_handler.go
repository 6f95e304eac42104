package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Afriels/presensi-new/export"
	"github.com/Afriels/presensi-new/repository"
)

// Handler laporan presensi: pencarian rentang tanggal + ekspor Excel.
type ReportHandler struct {
	records *repository.AttendanceRecordRepository
}

func NewReportHandler(records *repository.AttendanceRecordRepository) *ReportHandler {
	return &ReportHandler{records: records}
}

// Export melayani GET /reports/export?start=YYYY-MM-DD&end=YYYY-MM-DD dan
// mengirim file xlsx sebagai unduhan.
func (h *ReportHandler) Export(c echo.Context) error {
	start := strings.TrimSpace(c.QueryParam("start"))
	end := strings.TrimSpace(c.QueryParam("end"))
	if start == "" || end == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "MISSING_DATE_RANGE"})
	}

	rows, err := h.records.GetByDateRange(start, end)
	if err != nil {
		return repoError(c, err)
	}

	data, err := export.ReportBytes(rows)
	if err != nil {
		if errors.Is(err, export.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NO_ROWS"})
		}
		c.Logger().Errorf("export failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "EXPORT_FAILED"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, export.Filename(start, end)))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
