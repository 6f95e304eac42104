package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Afriels/presensi-new/models"
	"github.com/Afriels/presensi-new/repository"
)

type TeacherHandler struct {
	repo *repository.TeacherRepository
}

func NewTeacherHandler(repo *repository.TeacherRepository) *TeacherHandler {
	return &TeacherHandler{repo: repo}
}

// NIP hanya angka, maksimal 30 digit.
var reNIP = regexp.MustCompile(`^[0-9]{1,30}$`)

type teacherPayload struct {
	Name      string `json:"name" validate:"required"`
	NIP       string `json:"nip"  validate:"required"`
	SubjectID *uint  `json:"subject_id"` // boleh kosong
}

func (p *teacherPayload) normalize() {
	p.Name = strings.Join(strings.Fields(p.Name), " ")
	p.NIP = strings.TrimSpace(p.NIP)
}

func (h *TeacherHandler) List(c echo.Context) error {
	rows, err := h.repo.GetAll()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *TeacherHandler) Get(c echo.Context) error {
	row, err := h.repo.GetByID(parseID(c))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, row)
}

func (h *TeacherHandler) Create(c echo.Context) error {
	var p teacherPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "VALIDATION_ERROR"})
	}
	if !reNIP.MatchString(p.NIP) {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":  "VALIDATION_ERROR",
			"fields": map[string]string{"nip": "NIP harus angka, maksimal 30 digit"},
		})
	}

	t := models.Teacher{Name: p.Name, NIP: p.NIP, SubjectID: p.SubjectID}
	if err := h.repo.Create(&t); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TeacherHandler) Update(c echo.Context) error {
	var p teacherPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "VALIDATION_ERROR"})
	}

	ok, err := h.repo.Update(parseID(c), repository.TeacherUpdate{
		Name: p.Name, NIP: p.NIP, SubjectID: p.SubjectID,
	})
	if err != nil {
		return repoError(c, err)
	}
	return updated(c, ok)
}

func (h *TeacherHandler) Delete(c echo.Context) error {
	ok, err := h.repo.Delete(parseID(c))
	if err != nil {
		return repoError(c, err)
	}
	return updated(c, ok)
}
