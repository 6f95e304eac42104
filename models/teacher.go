package models

import "time"

type Teacher struct {
	ID        uint      `gorm:"primaryKey"        json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	NIP       string    `gorm:"column:nip;size:30;uniqueIndex;not null" json:"nip"` // nomor induk pegawai
	SubjectID *uint     `gorm:"index"             json:"subject_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TeacherView adalah baris guru + nama mapel hasil LEFT JOIN (untuk tampilan).
type TeacherView struct {
	Teacher     `gorm:"embedded"`
	SubjectName *string `json:"subject_name"`
}
