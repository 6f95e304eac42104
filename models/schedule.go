package models

import "time"

// Jadwal pelajaran mingguan (kelas + mapel + guru + slot waktu).
type Schedule struct {
	ID        uint      `gorm:"primaryKey"       json:"id"`
	ClassID   *uint     `gorm:"index"            json:"class_id"`
	SubjectID *uint     `gorm:"index"            json:"subject_id"`
	TeacherID *uint     `gorm:"index"            json:"teacher_id"`
	Day       string    `gorm:"size:10;not null" json:"day"`        // Senin..Minggu
	StartTime string    `gorm:"size:5;not null"  json:"start_time"` // HH:MM
	EndTime   string    `gorm:"size:5;not null"  json:"end_time"`   // HH:MM
	CreatedAt time.Time `json:"created_at"`
}

// ScheduleView adalah baris jadwal + nama kelas/mapel/guru.
type ScheduleView struct {
	Schedule    `gorm:"embedded"`
	ClassName   *string `json:"class_name"`
	SubjectName *string `json:"subject_name"`
	TeacherName *string `json:"teacher_name"`
}
