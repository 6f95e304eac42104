package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Seed mengisi data demo sekali saja. Penjaga pertama mengikuti layout lama
// (tabel attendance_times kosong); penjaga kedua (classes) mencegah data demo
// dobel karena seed lama tidak pernah mengisi attendance_times.
func Seed(db *gorm.DB) error {
	var n int64
	if err := db.Table("attendance_times").Count(&n).Error; err != nil {
		return fmt.Errorf("seed: count attendance_times: %w", err)
	}
	if n > 0 {
		return nil
	}
	if err := db.Table("classes").Count(&n).Error; err != nil {
		return fmt.Errorf("seed: count classes: %w", err)
	}
	if n > 0 {
		return nil
	}

	// Reset auto-increment. Tabel sqlite_sequence baru ada setelah insert
	// AUTOINCREMENT pertama, jadi error di sini boleh diabaikan.
	_ = db.Exec(`DELETE FROM sqlite_sequence`).Error

	// Kelas
	for _, c := range [][3]string{
		{"A", "X", "2024/2025"},
		{"B", "X", "2024/2025"},
		{"A", "XI", "2024/2025"},
		{"B", "XI", "2024/2025"},
		{"A", "XII", "2024/2025"},
		{"B", "XII", "2024/2025"},
	} {
		if err := db.Exec(`INSERT INTO classes (name, grade, year) VALUES (?, ?, ?)`, c[0], c[1], c[2]).Error; err != nil {
			return fmt.Errorf("seed classes: %w", err)
		}
	}

	// Mata pelajaran
	for _, s := range [][2]string{
		{"Matematika", "MTK"},
		{"Bahasa Indonesia", "BIN"},
		{"Bahasa Inggris", "BIG"},
		{"Fisika", "FIS"},
		{"Kimia", "KIM"},
		{"Biologi", "BIO"},
	} {
		if err := db.Exec(`INSERT INTO subjects (name, code) VALUES (?, ?)`, s[0], s[1]).Error; err != nil {
			return fmt.Errorf("seed subjects: %w", err)
		}
	}

	// Guru
	for _, t := range []struct {
		name, nip string
		subjectID uint
	}{
		{"Budi Santoso", "198501012010011001", 1},
		{"Siti Rahayu", "198601022010012002", 2},
		{"Ahmad Hidayat", "198701032010011003", 3},
		{"Dewi Sartika", "198801042010012004", 4},
		{"Rudi Hermawan", "198901052010011005", 5},
		{"Nina Wulandari", "199001062010012006", 6},
	} {
		if err := db.Exec(`INSERT INTO teachers (name, nip, subject_id) VALUES (?, ?, ?)`, t.name, t.nip, t.subjectID).Error; err != nil {
			return fmt.Errorf("seed teachers: %w", err)
		}
	}

	// Siswa
	for _, s := range []struct {
		name, nis string
		classID   uint
	}{
		{"Andi Pratama", "2024001", 1},
		{"Budi Setiawan", "2024002", 1},
		{"Citra Dewi", "2024003", 1},
		{"Dian Safitri", "2024004", 2},
		{"Eko Prasetyo", "2024005", 2},
		{"Fitri Handayani", "2024006", 2},
	} {
		if err := db.Exec(`INSERT INTO students (name, nis, class_id) VALUES (?, ?, ?)`, s.name, s.nis, s.classID).Error; err != nil {
			return fmt.Errorf("seed students: %w", err)
		}
	}

	// Jadwal
	for _, j := range []struct {
		classID, subjectID, teacherID uint
		day, start, end               string
	}{
		{1, 1, 1, "Senin", "07:00", "08:30"},
		{1, 2, 2, "Senin", "08:30", "10:00"},
		{2, 3, 3, "Selasa", "07:00", "08:30"},
		{2, 4, 4, "Selasa", "08:30", "10:00"},
		{3, 5, 5, "Rabu", "07:00", "08:30"},
		{3, 6, 6, "Rabu", "08:30", "10:00"},
	} {
		if err := db.Exec(
			`INSERT INTO schedules (class_id, subject_id, teacher_id, day, start_time, end_time) VALUES (?, ?, ?, ?, ?, ?)`,
			j.classID, j.subjectID, j.teacherID, j.day, j.start, j.end,
		).Error; err != nil {
			return fmt.Errorf("seed schedules: %w", err)
		}
	}

	// Absensi hari ini
	today := time.Now().Format("2006-01-02")
	for _, a := range []struct {
		studentID, scheduleID uint
		status                string
	}{
		{1, 1, "Hadir"},
		{2, 1, "Hadir"},
		{3, 1, "Izin"},
		{4, 2, "Hadir"},
		{5, 2, "Sakit"},
		{6, 2, "Hadir"},
	} {
		if err := db.Exec(
			`INSERT INTO attendance (student_id, schedule_id, date, status) VALUES (?, ?, ?, ?)`,
			a.studentID, a.scheduleID, today, a.status,
		).Error; err != nil {
			return fmt.Errorf("seed attendance: %w", err)
		}
	}

	return nil
}
