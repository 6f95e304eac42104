package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Afriels/presensi-new/models"
	"github.com/Afriels/presensi-new/repository"
)

// Handler tabel absensi lama (per jadwal, status kapital).
type AttendanceHandler struct {
	repo *repository.AttendanceRepository
}

func NewAttendanceHandler(repo *repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{repo: repo}
}

type attendancePayload struct {
	StudentID  *uint  `json:"student_id"`
	ScheduleID *uint  `json:"schedule_id"`
	Date       string `json:"date"   validate:"required"` // YYYY-MM-DD
	Status     string `json:"status" validate:"required"` // Hadir/Sakit/Izin/Alpha
}

func (p *attendancePayload) normalize() {
	p.Date = strings.TrimSpace(p.Date)
	p.Status = strings.TrimSpace(p.Status)
}

func (h *AttendanceHandler) List(c echo.Context) error {
	rows, err := h.repo.GetAll()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// ByDate melayani GET /attendance/by-date?date=YYYY-MM-DD.
func (h *AttendanceHandler) ByDate(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	if date == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "MISSING_DATE"})
	}

	rows, err := h.repo.GetByDate(date)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *AttendanceHandler) Create(c echo.Context) error {
	var p attendancePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "VALIDATION_ERROR"})
	}

	a := models.Attendance{
		StudentID:  p.StudentID,
		ScheduleID: p.ScheduleID,
		Date:       p.Date,
		Status:     models.LegacyStatus(p.Status),
	}
	if err := h.repo.Create(&a); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *AttendanceHandler) Update(c echo.Context) error {
	var p attendancePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "VALIDATION_ERROR"})
	}

	ok, err := h.repo.Update(parseID(c), repository.AttendanceUpdate{
		StudentID:  p.StudentID,
		ScheduleID: p.ScheduleID,
		Date:       p.Date,
		Status:     models.LegacyStatus(p.Status),
	})
	if err != nil {
		return repoError(c, err)
	}
	return updated(c, ok)
}

func (h *AttendanceHandler) Delete(c echo.Context) error {
	ok, err := h.repo.Delete(parseID(c))
	if err != nil {
		return repoError(c, err)
	}
	return updated(c, ok)
}
