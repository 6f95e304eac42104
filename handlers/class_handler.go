package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Afriels/presensi-new/models"
	"github.com/Afriels/presensi-new/repository"
)

type ClassHandler struct {
	repo *repository.ClassRepository
}

func NewClassHandler(repo *repository.ClassRepository) *ClassHandler {
	return &ClassHandler{repo: repo}
}

type classPayload struct {
	Name  string `json:"name"  validate:"required"`
	Grade string `json:"grade" validate:"required"`
	Year  string `json:"year"  validate:"required"`
}

func (p *classPayload) normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Grade = strings.TrimSpace(p.Grade)
	p.Year = strings.TrimSpace(p.Year)
}

func (h *ClassHandler) List(c echo.Context) error {
	rows, err := h.repo.GetAll()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ClassHandler) Get(c echo.Context) error {
	row, err := h.repo.GetByID(parseID(c))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, row)
}

func (h *ClassHandler) Create(c echo.Context) error {
	var p classPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "VALIDATION_ERROR"})
	}

	cls := models.Class{Name: p.Name, Grade: p.Grade, Year: p.Year}
	if err := h.repo.Create(&cls); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, cls)
}

func (h *ClassHandler) Update(c echo.Context) error {
	var p classPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "VALIDATION_ERROR"})
	}

	ok, err := h.repo.Update(parseID(c), repository.ClassUpdate{Name: p.Name, Grade: p.Grade, Year: p.Year})
	if err != nil {
		return repoError(c, err)
	}
	return updated(c, ok)
}

func (h *ClassHandler) Delete(c echo.Context) error {
	ok, err := h.repo.Delete(parseID(c))
	if err != nil {
		return repoError(c, err)
	}
	return updated(c, ok)
}
