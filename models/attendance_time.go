package models

import "time"

// Waktu presensi, mis. "Pagi" 07:00–08:00.
type AttendanceTime struct {
	ID        uint      `gorm:"primaryKey"       json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	StartTime string    `gorm:"size:5;not null"  json:"start_time"` // HH:MM
	EndTime   string    `gorm:"size:5;not null"  json:"end_time"`   // HH:MM
	CreatedAt time.Time `json:"created_at"`
}
