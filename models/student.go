package models

import "time"

type Student struct {
	ID        uint      `gorm:"primaryKey"        json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	NIS       string    `gorm:"column:nis;size:30;uniqueIndex;not null" json:"nis"` // nomor induk siswa
	ClassID   *uint     `gorm:"index"             json:"class_id"`
	Phone     *string   `gorm:"size:20"           json:"phone,omitempty"`
	Email     *string   `gorm:"size:100"          json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StudentView adalah baris siswa + nama kelas & tingkat hasil LEFT JOIN.
type StudentView struct {
	Student   `gorm:"embedded"`
	ClassName *string `json:"class_name"`
	Grade     *string `json:"grade"`
}
