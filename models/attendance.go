package models

import "time"

// Absensi harian lama (per jadwal). Masih dipakai halaman absensi;
// tabelnya bernama tunggal "attendance".
type Attendance struct {
	ID         uint         `gorm:"primaryKey"       json:"id"`
	StudentID  *uint        `gorm:"index"            json:"student_id"`
	ScheduleID *uint        `gorm:"index"            json:"schedule_id"`
	Date       string       `gorm:"size:10;not null" json:"date"` // YYYY-MM-DD
	Status     LegacyStatus `gorm:"size:20;not null" json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
}

func (Attendance) TableName() string { return "attendance" }

// AttendanceView adalah baris absensi + nama siswa/kelas/mapel
// (kelas & mapel diambil lewat jadwalnya).
type AttendanceView struct {
	Attendance  `gorm:"embedded"`
	StudentName *string `json:"student_name"`
	ClassName   *string `json:"class_name"`
	SubjectName *string `json:"subject_name"`
}
