package repository

import (
	"gorm.io/gorm"

	"github.com/Afriels/presensi-new/models"
)

type AttendanceRecordRepository struct{ db *gorm.DB }

func NewAttendanceRecordRepository(db *gorm.DB) *AttendanceRecordRepository {
	return &AttendanceRecordRepository{db: db}
}

// AttendanceRecordUpdate: hanya field non-nil yang masuk klausa SET.
type AttendanceRecordUpdate struct {
	Status *models.RecordStatus
	Date   *string
}

func (r *AttendanceRecordRepository) joined() *gorm.DB {
	return r.db.Table("attendance_records ar").
		Select("ar.*, s.name AS student_name, c.name AS class_name, sub.name AS subject_name").
		Joins("LEFT JOIN students s ON ar.student_id = s.id").
		Joins("LEFT JOIN classes c ON ar.class_id = c.id").
		Joins("LEFT JOIN subjects sub ON ar.subject_id = sub.id")
}

// GetAll: terbaru dulu, untuk tampilan daftar.
func (r *AttendanceRecordRepository) GetAll() ([]models.AttendanceRecordView, error) {
	var rows []models.AttendanceRecordView
	err := r.joined().
		Order("ar.date DESC, ar.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByDateRange: batas inklusif, urutan kronologis (kebalikan GetAll)
// karena laporan dibaca maju.
func (r *AttendanceRecordRepository) GetByDateRange(startDate, endDate string) ([]models.AttendanceRecordView, error) {
	var rows []models.AttendanceRecordView
	err := r.joined().
		Where("ar.date BETWEEN ? AND ?", startDate, endDate).
		Order("ar.date ASC, ar.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AttendanceRecordRepository) Create(rec *models.AttendanceRecord) error {
	return translate(r.db.Create(rec).Error)
}

// Update menyusun SET hanya dari field yang dikirim; tanpa field = no-op.
func (r *AttendanceRecordRepository) Update(id uint, in AttendanceRecordUpdate) error {
	sets := map[string]any{}
	if in.Status != nil {
		sets["status"] = *in.Status
	}
	if in.Date != nil {
		sets["date"] = *in.Date
	}
	if len(sets) == 0 {
		return nil
	}
	return r.db.Model(&models.AttendanceRecord{}).Where("id = ?", id).Updates(sets).Error
}

func (r *AttendanceRecordRepository) Delete(id uint) error {
	return r.db.Delete(&models.AttendanceRecord{}, "id = ?", id).Error
}
