package models

import "time"

// Baris laporan presensi per siswa/mapel/waktu.
type AttendanceRecord struct {
	ID               uint         `gorm:"primaryKey"      json:"id"`
	StudentID        uint         `gorm:"index;not null"  json:"student_id"`
	ClassID          uint         `gorm:"index;not null"  json:"class_id"`
	SubjectID        uint         `gorm:"index;not null"  json:"subject_id"`
	AttendanceTimeID uint         `gorm:"index;not null"  json:"attendance_time_id"`
	Status           RecordStatus `gorm:"size:10;not null" json:"status"` // hadir|izin|sakit|alpha
	Date             string       `gorm:"size:10;not null" json:"date"`   // YYYY-MM-DD
	CreatedAt        time.Time    `json:"created_at"`
}

// AttendanceRecordView adalah baris laporan + nama siswa/kelas/mapel.
type AttendanceRecordView struct {
	AttendanceRecord `gorm:"embedded"`
	StudentName      *string `json:"student_name"`
	ClassName        *string `json:"class_name"`
	SubjectName      *string `json:"subject_name"`
}
