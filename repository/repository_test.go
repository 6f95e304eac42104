package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Afriels/presensi-new/database"
	"github.com/Afriels/presensi-new/models"
)

// setupDB membuka file SQLite sekali pakai per test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presensi.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := database.Init(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func strPtr(s string) *string { return &s }
func uintPtr(n uint) *uint    { return &n }

func TestClassCRUD(t *testing.T) {
	repo := NewClassRepository(setupDB(t))

	c := models.Class{Name: "A", Grade: "X", Year: "2024/2025"}
	assert.NoError(t, repo.Create(&c))
	assert.NotZero(t, c.ID)

	got, err := repo.GetByID(c.ID)
	assert.NoError(t, err)
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, "X", got.Grade)
	assert.Equal(t, "2024/2025", got.Year)

	ok, err := repo.Update(c.ID, ClassUpdate{Name: "B", Grade: "XI", Year: "2025/2026"})
	assert.NoError(t, err)
	assert.True(t, ok)

	got, err = repo.GetByID(c.ID)
	assert.NoError(t, err)
	assert.Equal(t, "B", got.Name)
	assert.Equal(t, "XI", got.Grade)

	ok, err = repo.Delete(c.ID)
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.GetByID(c.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	rows, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestClassOrdering(t *testing.T) {
	repo := NewClassRepository(setupDB(t))

	for _, c := range []models.Class{
		{Name: "B", Grade: "XI", Year: "2024/2025"},
		{Name: "B", Grade: "X", Year: "2024/2025"},
		{Name: "A", Grade: "X", Year: "2024/2025"},
	} {
		cc := c
		assert.NoError(t, repo.Create(&cc))
	}

	rows, err := repo.GetAll()
	assert.NoError(t, err)
	if assert.Len(t, rows, 3) {
		// urut grade lalu name
		assert.Equal(t, "X", rows[0].Grade)
		assert.Equal(t, "A", rows[0].Name)
		assert.Equal(t, "X", rows[1].Grade)
		assert.Equal(t, "B", rows[1].Name)
		assert.Equal(t, "XI", rows[2].Grade)
	}
}

func TestSubjectUniqueCode(t *testing.T) {
	repo := NewSubjectRepository(setupDB(t))

	assert.NoError(t, repo.Create(&models.Subject{Name: "Matematika", Code: "MTK"}))

	err := repo.Create(&models.Subject{Name: "Matematika Lanjut", Code: "MTK"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestTeacherUniqueNIPAndJoin(t *testing.T) {
	db := setupDB(t)
	subjects := NewSubjectRepository(db)
	teachers := NewTeacherRepository(db)

	sub := models.Subject{Name: "Fisika", Code: "FIS"}
	assert.NoError(t, subjects.Create(&sub))

	tch := models.Teacher{Name: "Budi Santoso", NIP: "198501012010011001", SubjectID: uintPtr(sub.ID)}
	assert.NoError(t, teachers.Create(&tch))

	err := teachers.Create(&models.Teacher{Name: "Orang Lain", NIP: "198501012010011001"})
	assert.ErrorIs(t, err, ErrDuplicate)

	got, err := teachers.GetByID(tch.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, got.SubjectName) {
		assert.Equal(t, "Fisika", *got.SubjectName)
	}

	// guru tanpa mapel: subject_name NULL di LEFT JOIN
	noSub := models.Teacher{Name: "Tanpa Mapel", NIP: "199901012020011001"}
	assert.NoError(t, teachers.Create(&noSub))
	got, err = teachers.GetByID(noSub.ID)
	assert.NoError(t, err)
	assert.Nil(t, got.SubjectName)
}

func TestStudentPartialUpdate(t *testing.T) {
	db := setupDB(t)
	classes := NewClassRepository(db)
	students := NewStudentRepository(db)

	cls := models.Class{Name: "A", Grade: "X", Year: "2024/2025"}
	assert.NoError(t, classes.Create(&cls))

	s := models.Student{
		Name:    "Andi Pratama",
		NIS:     "2024001",
		ClassID: uintPtr(cls.ID),
		Phone:   strPtr("0811111111"),
		Email:   strPtr("andi@example.com"),
	}
	assert.NoError(t, students.Create(&s))

	// ganti telepon saja; field lain harus tetap
	ok, err := students.Update(s.ID, StudentUpdate{Phone: strPtr("0822222222")})
	assert.NoError(t, err)
	assert.True(t, ok)

	got, err := students.GetByID(s.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Andi Pratama", got.Name)
	assert.Equal(t, "2024001", got.NIS)
	if assert.NotNil(t, got.ClassID) {
		assert.Equal(t, cls.ID, *got.ClassID)
	}
	if assert.NotNil(t, got.Phone) {
		assert.Equal(t, "0822222222", *got.Phone)
	}
	if assert.NotNil(t, got.Email) {
		assert.Equal(t, "andi@example.com", *got.Email)
	}
	if assert.NotNil(t, got.ClassName) {
		assert.Equal(t, "A", *got.ClassName)
	}
	if assert.NotNil(t, got.Grade) {
		assert.Equal(t, "X", *got.Grade)
	}
}

func TestStudentUniqueNIS(t *testing.T) {
	repo := NewStudentRepository(setupDB(t))

	assert.NoError(t, repo.Create(&models.Student{Name: "Andi", NIS: "2024001"}))
	err := repo.Create(&models.Student{Name: "Budi", NIS: "2024001"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestAttendanceTimePartialUpdate(t *testing.T) {
	repo := NewAttendanceTimeRepository(setupDB(t))

	tm := models.AttendanceTime{Name: "Pagi", StartTime: "07:00", EndTime: "08:00"}
	assert.NoError(t, repo.Create(&tm))

	// hanya nama yang diganti
	assert.NoError(t, repo.Update(tm.ID, AttendanceTimeUpdate{Name: strPtr("Pagi Awal")}))

	rows, err := repo.GetAll()
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, "Pagi Awal", rows[0].Name)
		assert.Equal(t, "07:00", rows[0].StartTime)
		assert.Equal(t, "08:00", rows[0].EndTime)
	}

	// tanpa field sama sekali = no-op
	assert.NoError(t, repo.Update(tm.ID, AttendanceTimeUpdate{}))

	rows, err = repo.GetAll()
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, "Pagi Awal", rows[0].Name)
	}
}

// Skenario ujung-ke-ujung §laporan: satu record dengan nama hasil join.
func TestAttendanceRecordJoinedView(t *testing.T) {
	db := setupDB(t)
	classes := NewClassRepository(db)
	subjects := NewSubjectRepository(db)
	teachers := NewTeacherRepository(db)
	students := NewStudentRepository(db)
	times := NewAttendanceTimeRepository(db)
	records := NewAttendanceRecordRepository(db)

	cls := models.Class{Name: "A", Grade: "X", Year: "2024/2025"}
	assert.NoError(t, classes.Create(&cls))
	sub := models.Subject{Name: "Matematika", Code: "MTK"}
	assert.NoError(t, subjects.Create(&sub))
	assert.NoError(t, teachers.Create(&models.Teacher{
		Name: "Budi Santoso", NIP: "198501012010011001", SubjectID: uintPtr(sub.ID),
	}))
	std := models.Student{Name: "Andi Pratama", NIS: "2024001", ClassID: uintPtr(cls.ID)}
	assert.NoError(t, students.Create(&std))
	tm := models.AttendanceTime{Name: "Pagi", StartTime: "07:00", EndTime: "08:00"}
	assert.NoError(t, times.Create(&tm))

	today := time.Now().Format("2006-01-02")
	rec := models.AttendanceRecord{
		StudentID:        std.ID,
		ClassID:          cls.ID,
		SubjectID:        sub.ID,
		AttendanceTimeID: tm.ID,
		Status:           models.RecordStatusHadir,
		Date:             today,
	}
	assert.NoError(t, records.Create(&rec))
	assert.NotZero(t, rec.ID)

	rows, err := records.GetAll()
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		r := rows[0]
		assert.Equal(t, models.RecordStatusHadir, r.Status)
		assert.Equal(t, today, r.Date)
		if assert.NotNil(t, r.StudentName) {
			assert.Equal(t, "Andi Pratama", *r.StudentName)
		}
		if assert.NotNil(t, r.ClassName) {
			assert.Equal(t, "A", *r.ClassName)
		}
		if assert.NotNil(t, r.SubjectName) {
			assert.Equal(t, "Matematika", *r.SubjectName)
		}
	}
}

func TestAttendanceRecordDateRange(t *testing.T) {
	db := setupDB(t)
	records := NewAttendanceRecordRepository(db)

	for _, d := range []string{"2024-01-15", "2024-01-01", "2024-02-01", "2024-01-31"} {
		rec := models.AttendanceRecord{
			StudentID: 1, ClassID: 1, SubjectID: 1, AttendanceTimeID: 1,
			Status: models.RecordStatusHadir, Date: d,
		}
		assert.NoError(t, records.Create(&rec))
	}

	rows, err := records.GetByDateRange("2024-01-01", "2024-01-31")
	assert.NoError(t, err)
	if assert.Len(t, rows, 3) {
		// batas inklusif, urutan kronologis
		assert.Equal(t, "2024-01-01", rows[0].Date)
		assert.Equal(t, "2024-01-15", rows[1].Date)
		assert.Equal(t, "2024-01-31", rows[2].Date)
	}

	// rentang tanpa record
	rows, err = records.GetByDateRange("2023-01-01", "2023-12-31")
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAttendanceRecordPartialUpdate(t *testing.T) {
	records := NewAttendanceRecordRepository(setupDB(t))

	rec := models.AttendanceRecord{
		StudentID: 1, ClassID: 1, SubjectID: 1, AttendanceTimeID: 1,
		Status: models.RecordStatusHadir, Date: "2024-01-10",
	}
	assert.NoError(t, records.Create(&rec))

	sakit := models.RecordStatusSakit
	assert.NoError(t, records.Update(rec.ID, AttendanceRecordUpdate{Status: &sakit}))

	rows, err := records.GetAll()
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, models.RecordStatusSakit, rows[0].Status)
		assert.Equal(t, "2024-01-10", rows[0].Date) // tanggal tidak ikut berubah
	}

	// tanpa field = no-op
	assert.NoError(t, records.Update(rec.ID, AttendanceRecordUpdate{}))
}

func TestAttendanceLegacyByDate(t *testing.T) {
	db := setupDB(t)
	classes := NewClassRepository(db)
	subjects := NewSubjectRepository(db)
	students := NewStudentRepository(db)
	schedules := NewScheduleRepository(db)
	att := NewAttendanceRepository(db)

	cls := models.Class{Name: "A", Grade: "X", Year: "2024/2025"}
	assert.NoError(t, classes.Create(&cls))
	sub := models.Subject{Name: "Kimia", Code: "KIM"}
	assert.NoError(t, subjects.Create(&sub))
	std := models.Student{Name: "Citra Dewi", NIS: "2024003", ClassID: uintPtr(cls.ID)}
	assert.NoError(t, students.Create(&std))
	sch := models.Schedule{
		ClassID: uintPtr(cls.ID), SubjectID: uintPtr(sub.ID),
		Day: "Senin", StartTime: "07:00", EndTime: "08:30",
	}
	assert.NoError(t, schedules.Create(&sch))

	a := models.Attendance{
		StudentID: uintPtr(std.ID), ScheduleID: uintPtr(sch.ID),
		Date: "2024-01-15", Status: models.LegacyStatusHadir,
	}
	assert.NoError(t, att.Create(&a))

	rows, err := att.GetByDate("2024-01-15")
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, models.LegacyStatusHadir, rows[0].Status)
		// kolom DATE harus dibaca kembali apa adanya, bukan format RFC3339
		assert.Equal(t, "2024-01-15", rows[0].Date)
		if assert.NotNil(t, rows[0].StudentName) {
			assert.Equal(t, "Citra Dewi", *rows[0].StudentName)
		}
		// kelas/mapel dilewatkan lewat jadwal
		if assert.NotNil(t, rows[0].ClassName) {
			assert.Equal(t, "A", *rows[0].ClassName)
		}
		if assert.NotNil(t, rows[0].SubjectName) {
			assert.Equal(t, "Kimia", *rows[0].SubjectName)
		}
	}

	rows, err = att.GetByDate("2024-01-16")
	assert.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = att.GetAll()
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, "2024-01-15", rows[0].Date)
	}
}

func TestScheduleOrderingAndJoin(t *testing.T) {
	db := setupDB(t)
	schedules := NewScheduleRepository(db)

	for _, s := range []models.Schedule{
		{Day: "Senin", StartTime: "08:30", EndTime: "10:00"},
		{Day: "Senin", StartTime: "07:00", EndTime: "08:30"},
	} {
		ss := s
		assert.NoError(t, schedules.Create(&ss))
	}

	rows, err := schedules.GetAll()
	assert.NoError(t, err)
	if assert.Len(t, rows, 2) {
		assert.Equal(t, "07:00", rows[0].StartTime)
		assert.Equal(t, "08:30", rows[1].StartTime)
		// tanpa relasi, nama hasil join NULL
		assert.Nil(t, rows[0].ClassName)
	}
}

// Hapus induk tidak berjenjang: siswa yang menunjuk kelas terhapus tetap ada
// dengan class_name NULL.
func TestDeleteLeavesDanglingReference(t *testing.T) {
	db := setupDB(t)
	classes := NewClassRepository(db)
	students := NewStudentRepository(db)

	cls := models.Class{Name: "A", Grade: "X", Year: "2024/2025"}
	assert.NoError(t, classes.Create(&cls))
	std := models.Student{Name: "Andi", NIS: "2024001", ClassID: uintPtr(cls.ID)}
	assert.NoError(t, students.Create(&std))

	ok, err := classes.Delete(cls.ID)
	assert.NoError(t, err)
	assert.True(t, ok)

	got, err := students.GetByID(std.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, got.ClassID) {
		assert.Equal(t, cls.ID, *got.ClassID)
	}
	assert.Nil(t, got.ClassName)
}
