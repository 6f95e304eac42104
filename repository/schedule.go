package repository

import (
	"gorm.io/gorm"

	"github.com/Afriels/presensi-new/models"
)

type ScheduleRepository struct{ db *gorm.DB }

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository { return &ScheduleRepository{db: db} }

type ScheduleUpdate struct {
	ClassID   *uint
	SubjectID *uint
	TeacherID *uint
	Day       string
	StartTime string
	EndTime   string
}

func (r *ScheduleRepository) joined() *gorm.DB {
	return r.db.Table("schedules sch").
		Select("sch.*, c.name AS class_name, s.name AS subject_name, t.name AS teacher_name").
		Joins("LEFT JOIN classes c ON sch.class_id = c.id").
		Joins("LEFT JOIN subjects s ON sch.subject_id = s.id").
		Joins("LEFT JOIN teachers t ON sch.teacher_id = t.id")
}

func (r *ScheduleRepository) GetAll() ([]models.ScheduleView, error) {
	var rows []models.ScheduleView
	err := r.joined().
		Order("sch.day, sch.start_time").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ScheduleRepository) GetByID(id uint) (*models.ScheduleView, error) {
	var row models.ScheduleView
	res := r.joined().
		Where("sch.id = ?", id).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (r *ScheduleRepository) Create(s *models.Schedule) error {
	return translate(r.db.Create(s).Error)
}

func (r *ScheduleRepository) Update(id uint, in ScheduleUpdate) (bool, error) {
	res := r.db.Model(&models.Schedule{}).Where("id = ?", id).Updates(map[string]any{
		"class_id":   in.ClassID,
		"subject_id": in.SubjectID,
		"teacher_id": in.TeacherID,
		"day":        in.Day,
		"start_time": in.StartTime,
		"end_time":   in.EndTime,
	})
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *ScheduleRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Schedule{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
