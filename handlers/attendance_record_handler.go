package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Afriels/presensi-new/models"
	"github.com/Afriels/presensi-new/repository"
)

type AttendanceRecordHandler struct {
	repo *repository.AttendanceRecordRepository
}

func NewAttendanceRecordHandler(repo *repository.AttendanceRecordRepository) *AttendanceRecordHandler {
	return &AttendanceRecordHandler{repo: repo}
}

type attendanceRecordCreatePayload struct {
	StudentID        uint   `json:"student_id"         validate:"required"`
	ClassID          uint   `json:"class_id"           validate:"required"`
	SubjectID        uint   `json:"subject_id"         validate:"required"`
	AttendanceTimeID uint   `json:"attendance_time_id" validate:"required"`
	Status           string `json:"status"             validate:"required"`
	Date             string `json:"date"               validate:"required"` // YYYY-MM-DD
}

// Payload update parsial: hanya status/tanggal yang bisa diganti.
type attendanceRecordUpdatePayload struct {
	Status *string `json:"status"`
	Date   *string `json:"date"`
}

func (h *AttendanceRecordHandler) List(c echo.Context) error {
	rows, err := h.repo.GetAll()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Range melayani GET /attendance-records/range?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *AttendanceRecordHandler) Range(c echo.Context) error {
	start := strings.TrimSpace(c.QueryParam("start"))
	end := strings.TrimSpace(c.QueryParam("end"))
	if start == "" || end == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "MISSING_DATE_RANGE"})
	}

	rows, err := h.repo.GetByDateRange(start, end)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *AttendanceRecordHandler) Create(c echo.Context) error {
	var p attendanceRecordCreatePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "VALIDATION_ERROR"})
	}

	status := models.RecordStatus(strings.ToLower(strings.TrimSpace(p.Status)))
	if !status.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":  "VALIDATION_ERROR",
			"fields": map[string]string{"status": "status harus hadir/izin/sakit/alpha"},
		})
	}

	rec := models.AttendanceRecord{
		StudentID:        p.StudentID,
		ClassID:          p.ClassID,
		SubjectID:        p.SubjectID,
		AttendanceTimeID: p.AttendanceTimeID,
		Status:           status,
		Date:             strings.TrimSpace(p.Date),
	}
	if err := h.repo.Create(&rec); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *AttendanceRecordHandler) Update(c echo.Context) error {
	var p attendanceRecordUpdatePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	var status *models.RecordStatus
	if p.Status != nil {
		s := models.RecordStatus(strings.ToLower(strings.TrimSpace(*p.Status)))
		if !s.Valid() {
			return c.JSON(http.StatusBadRequest, map[string]any{
				"error":  "VALIDATION_ERROR",
				"fields": map[string]string{"status": "status harus hadir/izin/sakit/alpha"},
			})
		}
		status = &s
	}

	err := h.repo.Update(parseID(c), repository.AttendanceRecordUpdate{Status: status, Date: p.Date})
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *AttendanceRecordHandler) Delete(c echo.Context) error {
	if err := h.repo.Delete(parseID(c)); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
