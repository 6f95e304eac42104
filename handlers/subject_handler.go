package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Afriels/presensi-new/models"
	"github.com/Afriels/presensi-new/repository"
)

type SubjectHandler struct {
	repo *repository.SubjectRepository
}

func NewSubjectHandler(repo *repository.SubjectRepository) *SubjectHandler {
	return &SubjectHandler{repo: repo}
}

type subjectPayload struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"` // harus unik antar mapel
}

func (p *subjectPayload) normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
}

func (h *SubjectHandler) List(c echo.Context) error {
	rows, err := h.repo.GetAll()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *SubjectHandler) Get(c echo.Context) error {
	row, err := h.repo.GetByID(parseID(c))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, row)
}

func (h *SubjectHandler) Create(c echo.Context) error {
	var p subjectPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "VALIDATION_ERROR"})
	}

	s := models.Subject{Name: p.Name, Code: p.Code}
	if err := h.repo.Create(&s); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SubjectHandler) Update(c echo.Context) error {
	var p subjectPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "VALIDATION_ERROR"})
	}

	ok, err := h.repo.Update(parseID(c), repository.SubjectUpdate{Name: p.Name, Code: p.Code})
	if err != nil {
		return repoError(c, err)
	}
	return updated(c, ok)
}

func (h *SubjectHandler) Delete(c echo.Context) error {
	ok, err := h.repo.Delete(parseID(c))
	if err != nil {
		return repoError(c, err)
	}
	return updated(c, ok)
}
