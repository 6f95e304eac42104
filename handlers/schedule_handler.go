package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Afriels/presensi-new/models"
	"github.com/Afriels/presensi-new/repository"
)

type ScheduleHandler struct {
	repo *repository.ScheduleRepository
}

func NewScheduleHandler(repo *repository.ScheduleRepository) *ScheduleHandler {
	return &ScheduleHandler{repo: repo}
}

type schedulePayload struct {
	ClassID   *uint  `json:"class_id"`
	SubjectID *uint  `json:"subject_id"`
	TeacherID *uint  `json:"teacher_id"`
	Day       string `json:"day"        validate:"required"` // Senin..Minggu
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time"   validate:"required"`
}

func (p *schedulePayload) normalize() {
	p.Day = strings.TrimSpace(p.Day)
	p.StartTime = strings.TrimSpace(p.StartTime)
	p.EndTime = strings.TrimSpace(p.EndTime)
}

func (h *ScheduleHandler) List(c echo.Context) error {
	rows, err := h.repo.GetAll()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ScheduleHandler) Get(c echo.Context) error {
	row, err := h.repo.GetByID(parseID(c))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, row)
}

func (h *ScheduleHandler) Create(c echo.Context) error {
	var p schedulePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "VALIDATION_ERROR"})
	}

	s := models.Schedule{
		ClassID:   p.ClassID,
		SubjectID: p.SubjectID,
		TeacherID: p.TeacherID,
		Day:       p.Day,
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
	}
	if err := h.repo.Create(&s); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *ScheduleHandler) Update(c echo.Context) error {
	var p schedulePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "VALIDATION_ERROR"})
	}

	ok, err := h.repo.Update(parseID(c), repository.ScheduleUpdate{
		ClassID:   p.ClassID,
		SubjectID: p.SubjectID,
		TeacherID: p.TeacherID,
		Day:       p.Day,
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
	})
	if err != nil {
		return repoError(c, err)
	}
	return updated(c, ok)
}

func (h *ScheduleHandler) Delete(c echo.Context) error {
	ok, err := h.repo.Delete(parseID(c))
	if err != nil {
		return repoError(c, err)
	}
	return updated(c, ok)
}
