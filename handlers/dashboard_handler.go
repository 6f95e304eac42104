package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Handler ringkasan dashboard: jumlah entitas + rekap status hari ini.
type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

func (h *DashboardHandler) Summary(c echo.Context) error {
	counts := map[string]int64{}
	for _, table := range []string{"classes", "subjects", "teachers", "students", "schedules"} {
		var n int64
		if err := h.db.Table(table).Count(&n).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
		}
		counts[table] = n
	}

	// Rekap status absensi hari ini dari tabel lama (yang diisi halaman absensi).
	today := time.Now().Format("2006-01-02")
	type statusCount struct {
		Status string `json:"status"`
		Total  int64  `json:"total"`
	}
	var todayStatus []statusCount
	err := h.db.Table("attendance").
		Select("status, COUNT(*) AS total").
		Where("date = ?", today).
		Group("status").
		Scan(&todayStatus).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"counts":       counts,
		"date":         today,
		"today_status": todayStatus,
	})
}
