package repository

import (
	"gorm.io/gorm"

	"github.com/Afriels/presensi-new/models"
)

type AttendanceTimeRepository struct{ db *gorm.DB }

func NewAttendanceTimeRepository(db *gorm.DB) *AttendanceTimeRepository {
	return &AttendanceTimeRepository{db: db}
}

// AttendanceTimeUpdate: hanya field non-nil yang masuk klausa SET.
type AttendanceTimeUpdate struct {
	Name      *string
	StartTime *string
	EndTime   *string
}

func (r *AttendanceTimeRepository) GetAll() ([]models.AttendanceTime, error) {
	var rows []models.AttendanceTime
	if err := r.db.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AttendanceTimeRepository) Create(t *models.AttendanceTime) error {
	return translate(r.db.Create(t).Error)
}

// Update menyusun SET hanya dari field yang dikirim; tanpa field = no-op.
func (r *AttendanceTimeRepository) Update(id uint, in AttendanceTimeUpdate) error {
	sets := map[string]any{}
	if in.Name != nil {
		sets["name"] = *in.Name
	}
	if in.StartTime != nil {
		sets["start_time"] = *in.StartTime
	}
	if in.EndTime != nil {
		sets["end_time"] = *in.EndTime
	}
	if len(sets) == 0 {
		return nil
	}
	return r.db.Model(&models.AttendanceTime{}).Where("id = ?", id).Updates(sets).Error
}

func (r *AttendanceTimeRepository) Delete(id uint) error {
	return r.db.Delete(&models.AttendanceTime{}, "id = ?", id).Error
}
