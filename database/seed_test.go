package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presensi.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func count(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	if err := db.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestInitIdempotent(t *testing.T) {
	db := openTestDB(t)

	assert.NoError(t, Init(db))
	assert.NoError(t, Init(db))

	for _, table := range []string{
		"classes", "subjects", "teachers", "students",
		"attendance_times", "attendance_records", "schedules", "attendance",
	} {
		assert.True(t, db.Migrator().HasTable(table), "tabel %s harus ada", table)
	}
}

func TestSeedOnce(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, Init(db))
	assert.NoError(t, Seed(db))

	assert.EqualValues(t, 6, count(t, db, "classes"))
	assert.EqualValues(t, 6, count(t, db, "subjects"))
	assert.EqualValues(t, 6, count(t, db, "teachers"))
	assert.EqualValues(t, 6, count(t, db, "students"))
	assert.EqualValues(t, 6, count(t, db, "schedules"))
	assert.EqualValues(t, 6, count(t, db, "attendance"))

	// absensi demo bertanggal hari ini
	today := time.Now().Format("2006-01-02")
	var n int64
	assert.NoError(t, db.Table("attendance").Where("date = ?", today).Count(&n).Error)
	assert.EqualValues(t, 6, n)
}

// Dua pemanggilan berturut-turut = tetap satu kali isi demo.
func TestSeedIdempotent(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, Init(db))

	assert.NoError(t, Seed(db))
	classes := count(t, db, "classes")
	times := count(t, db, "attendance_times")

	assert.NoError(t, Seed(db))
	assert.Equal(t, classes, count(t, db, "classes"))
	assert.Equal(t, times, count(t, db, "attendance_times"))
}

// Tabel attendance_times terisi = dianggap bukan first run.
func TestSeedSkipsWhenAttendanceTimesExist(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, Init(db))

	err := db.Exec(
		`INSERT INTO attendance_times (name, start_time, end_time) VALUES (?, ?, ?)`,
		"Pagi", "07:00", "08:00",
	).Error
	assert.NoError(t, err)

	assert.NoError(t, Seed(db))
	assert.EqualValues(t, 0, count(t, db, "classes"))
}

func TestStatusCheckConstraint(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, Init(db))

	err := db.Exec(
		`INSERT INTO attendance_records (student_id, class_id, subject_id, attendance_time_id, status, date)
		 VALUES (1, 1, 1, 1, 'bolos', '2024-01-10')`,
	).Error
	assert.Error(t, err, "status di luar enum harus ditolak CHECK")
}
