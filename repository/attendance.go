package repository

import (
	"gorm.io/gorm"

	"github.com/Afriels/presensi-new/models"
)

// Repositori tabel absensi lama. Kelas & mapel diambil lewat jadwal,
// bukan kolom langsung.
type AttendanceRepository struct{ db *gorm.DB }

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

type AttendanceUpdate struct {
	StudentID  *uint
	ScheduleID *uint
	Date       string
	Status     models.LegacyStatus
}

// Kolom date dipilih lewat strftime: decltype DATE membuat driver membaca
// nilainya sebagai time.Time, padahal API mengembalikan string YYYY-MM-DD
// persis seperti yang tersimpan.
func (r *AttendanceRepository) joined() *gorm.DB {
	return r.db.Table("attendance a").
		Select("a.id, a.student_id, a.schedule_id, strftime('%Y-%m-%d', a.date) AS date, a.status, a.created_at, "+
			"st.name AS student_name, c.name AS class_name, su.name AS subject_name").
		Joins("LEFT JOIN students st ON a.student_id = st.id").
		Joins("LEFT JOIN schedules sch ON a.schedule_id = sch.id").
		Joins("LEFT JOIN classes c ON sch.class_id = c.id").
		Joins("LEFT JOIN subjects su ON sch.subject_id = su.id")
}

func (r *AttendanceRepository) GetAll() ([]models.AttendanceView, error) {
	var rows []models.AttendanceView
	err := r.joined().
		Order("a.date DESC, st.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByDate mengembalikan absensi satu tanggal, urut nama siswa.
func (r *AttendanceRepository) GetByDate(date string) ([]models.AttendanceView, error) {
	var rows []models.AttendanceView
	err := r.joined().
		Where("a.date = ?", date).
		Order("st.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AttendanceRepository) Create(a *models.Attendance) error {
	return translate(r.db.Create(a).Error)
}

func (r *AttendanceRepository) Update(id uint, in AttendanceUpdate) (bool, error) {
	res := r.db.Model(&models.Attendance{}).Where("id = ?", id).Updates(map[string]any{
		"student_id":  in.StudentID,
		"schedule_id": in.ScheduleID,
		"date":        in.Date,
		"status":      in.Status,
	})
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *AttendanceRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Attendance{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
