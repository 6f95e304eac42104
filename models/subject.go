package models

import "time"

type Subject struct {
	ID        uint      `gorm:"primaryKey"                   json:"id"`
	Name      string    `gorm:"size:100;not null"            json:"name"`
	Code      string    `gorm:"size:20;uniqueIndex;not null" json:"code"` // kode mapel, mis. MTK
	CreatedAt time.Time `json:"created_at"`
}
