package models

import "time"

type Class struct {
	ID        uint      `gorm:"primaryKey"       json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Grade     string    `gorm:"size:20;not null" json:"grade"` // X / XI / XII
	Year      string    `gorm:"size:20;not null" json:"year"`  // tahun ajaran, mis. 2024/2025
	CreatedAt time.Time `json:"created_at"`
}
