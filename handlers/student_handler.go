package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Afriels/presensi-new/models"
	"github.com/Afriels/presensi-new/repository"
)

type StudentHandler struct {
	repo *repository.StudentRepository
}

func NewStudentHandler(repo *repository.StudentRepository) *StudentHandler {
	return &StudentHandler{repo: repo}
}

type studentCreatePayload struct {
	Name    string  `json:"name" validate:"required"`
	NIS     string  `json:"nis"  validate:"required"`
	ClassID *uint   `json:"class_id"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

func (p *studentCreatePayload) normalize() {
	p.Name = strings.Join(strings.Fields(p.Name), " ")
	p.NIS = strings.TrimSpace(p.NIS)
}

// Payload update seluruhnya opsional: field yang tidak dikirim mempertahankan
// nilai tersimpan (COALESCE di repositori).
type studentUpdatePayload struct {
	Name    *string `json:"name"`
	NIS     *string `json:"nis"`
	ClassID *uint   `json:"class_id"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

func (h *StudentHandler) List(c echo.Context) error {
	rows, err := h.repo.GetAll()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *StudentHandler) Get(c echo.Context) error {
	row, err := h.repo.GetByID(parseID(c))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, row)
}

func (h *StudentHandler) Create(c echo.Context) error {
	var p studentCreatePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "VALIDATION_ERROR"})
	}

	s := models.Student{Name: p.Name, NIS: p.NIS, ClassID: p.ClassID, Phone: p.Phone, Email: p.Email}
	if err := h.repo.Create(&s); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *StudentHandler) Update(c echo.Context) error {
	var p studentUpdatePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "VALIDATION_ERROR"})
	}

	ok, err := h.repo.Update(parseID(c), repository.StudentUpdate{
		Name: p.Name, NIS: p.NIS, ClassID: p.ClassID, Phone: p.Phone, Email: p.Email,
	})
	if err != nil {
		return repoError(c, err)
	}
	return updated(c, ok)
}

func (h *StudentHandler) Delete(c echo.Context) error {
	ok, err := h.repo.Delete(parseID(c))
	if err != nil {
		return repoError(c, err)
	}
	return updated(c, ok)
}
