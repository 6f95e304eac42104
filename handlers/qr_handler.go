package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/Afriels/presensi-new/qrcode"
)

// Ukuran raster unduhan dalam piksel.
const qrImageSize = 512

// Handler halaman kode QR. Satu builder per proses — aplikasi ini dipakai
// satu pengguna, tapi echo melayani request dari goroutine berbeda, jadi
// akses builder diserialkan lewat mutex.
type QRHandler struct {
	mu      sync.Mutex
	builder *qrcode.Builder
}

func NewQRHandler(builder *qrcode.Builder) *QRHandler {
	return &QRHandler{builder: builder}
}

type qrSelectPayload struct {
	ID      string `json:"id"      validate:"required"`
	Name    string `json:"name"    validate:"required"`
	Teacher string `json:"teacher"`
}

type qrGeneratePayload struct {
	Type       string `json:"type"`
	Expiration string `json:"expiration"` // menit, string seperti di form
	CustomData string `json:"custom_data"`
}

// Select memilih kelas untuk QR (Idle → Configured).
func (h *QRHandler) Select(c echo.Context) error {
	var p qrSelectPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "VALIDATION_ERROR"})
	}

	h.mu.Lock()
	h.builder.Select(qrcode.ClassInfo{
		ID:      strings.TrimSpace(p.ID),
		Name:    strings.TrimSpace(p.Name),
		Teacher: strings.TrimSpace(p.Teacher),
	})
	h.mu.Unlock()
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Generate menyusun payload (Configured → Generated).
func (h *QRHandler) Generate(c echo.Context) error {
	var p qrGeneratePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.builder.Configure(qrcode.Type(p.Type), p.Expiration, p.CustomData); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_QR_TYPE"})
	}

	content, err := h.builder.Generate()
	if err != nil {
		if errors.Is(err, qrcode.ErrNoClass) {
			// Pesan untuk pengguna: pilih kelas dulu.
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "NO_CLASS_SELECTED"})
		}
		c.Logger().Errorf("qr generate failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "QR_GENERATION_FAILED"})
	}
	return c.JSONBlob(http.StatusOK, content)
}

// Image mengirim pratinjau PNG dari payload terakhir.
func (h *QRHandler) Image(c echo.Context) error {
	h.mu.Lock()
	png, err := h.builder.PNG(qrImageSize)
	h.mu.Unlock()
	if err != nil {
		return h.qrError(c, err)
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

// Download mengirim PNG sebagai unduhan dengan nama berpola
// qr-code-<nama kelas>-<epoch ms>.png.
func (h *QRHandler) Download(c echo.Context) error {
	h.mu.Lock()
	png, err := h.builder.PNG(qrImageSize)
	if err != nil {
		h.mu.Unlock()
		return h.qrError(c, err)
	}
	name, err := h.builder.Filename()
	h.mu.Unlock()
	if err != nil {
		return h.qrError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Blob(http.StatusOK, "image/png", png)
}

// Reset mengembalikan builder ke kondisi awal (→ Idle).
func (h *QRHandler) Reset(c echo.Context) error {
	h.mu.Lock()
	h.builder.Reset()
	h.mu.Unlock()
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *QRHandler) qrError(c echo.Context, err error) error {
	if errors.Is(err, qrcode.ErrNotGenerated) {
		return c.JSON(http.StatusConflict, map[string]string{"error": "QR_NOT_READY"})
	}
	c.Logger().Errorf("qr rasterize failed: %v", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "QR_GENERATION_FAILED"})
}
