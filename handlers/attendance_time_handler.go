package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Afriels/presensi-new/models"
	"github.com/Afriels/presensi-new/repository"
)

type AttendanceTimeHandler struct {
	repo *repository.AttendanceTimeRepository
}

func NewAttendanceTimeHandler(repo *repository.AttendanceTimeRepository) *AttendanceTimeHandler {
	return &AttendanceTimeHandler{repo: repo}
}

var reHHMM = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type attendanceTimeCreatePayload struct {
	Name      string `json:"name"       validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time"   validate:"required"`
}

func (p *attendanceTimeCreatePayload) normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.StartTime = strings.TrimSpace(p.StartTime)
	p.EndTime = strings.TrimSpace(p.EndTime)
}

// Payload update parsial: hanya field yang hadir yang ikut klausa SET.
type attendanceTimeUpdatePayload struct {
	Name      *string `json:"name"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

func validTimes(start, end string) map[string]string {
	errs := map[string]string{}
	if !reHHMM.MatchString(start) {
		errs["start_time"] = "format waktu harus HH:MM"
	}
	if !reHHMM.MatchString(end) {
		errs["end_time"] = "format waktu harus HH:MM"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (h *AttendanceTimeHandler) List(c echo.Context) error {
	rows, err := h.repo.GetAll()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *AttendanceTimeHandler) Create(c echo.Context) error {
	var p attendanceTimeCreatePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "VALIDATION_ERROR"})
	}
	if errs := validTimes(p.StartTime, p.EndTime); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	t := models.AttendanceTime{Name: p.Name, StartTime: p.StartTime, EndTime: p.EndTime}
	if err := h.repo.Create(&t); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

// validPartialTimes menjalankan cek HH:MM hanya pada field yang dikirim.
func validPartialTimes(start, end *string) map[string]string {
	errs := map[string]string{}
	if start != nil && !reHHMM.MatchString(*start) {
		errs["start_time"] = "format waktu harus HH:MM"
	}
	if end != nil && !reHHMM.MatchString(*end) {
		errs["end_time"] = "format waktu harus HH:MM"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (h *AttendanceTimeHandler) Update(c echo.Context) error {
	var p attendanceTimeUpdatePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if errs := validPartialTimes(p.StartTime, p.EndTime); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	err := h.repo.Update(parseID(c), repository.AttendanceTimeUpdate{
		Name: p.Name, StartTime: p.StartTime, EndTime: p.EndTime,
	})
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *AttendanceTimeHandler) Delete(c echo.Context) error {
	if err := h.repo.Delete(parseID(c)); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
