package repository

import (
	"gorm.io/gorm"

	"github.com/Afriels/presensi-new/models"
)

type TeacherRepository struct{ db *gorm.DB }

func NewTeacherRepository(db *gorm.DB) *TeacherRepository { return &TeacherRepository{db: db} }

type TeacherUpdate struct {
	Name      string
	NIP       string
	SubjectID *uint
}

// GetAll mengembalikan guru + nama mapel (LEFT JOIN, urut nama guru).
func (r *TeacherRepository) GetAll() ([]models.TeacherView, error) {
	var rows []models.TeacherView
	err := r.db.Table("teachers t").
		Select("t.*, s.name AS subject_name").
		Joins("LEFT JOIN subjects s ON t.subject_id = s.id").
		Order("t.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TeacherRepository) GetByID(id uint) (*models.TeacherView, error) {
	var row models.TeacherView
	res := r.db.Table("teachers t").
		Select("t.*, s.name AS subject_name").
		Joins("LEFT JOIN subjects s ON t.subject_id = s.id").
		Where("t.id = ?", id).
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

func (r *TeacherRepository) Create(t *models.Teacher) error {
	return translate(r.db.Create(t).Error)
}

func (r *TeacherRepository) Update(id uint, in TeacherUpdate) (bool, error) {
	res := r.db.Model(&models.Teacher{}).Where("id = ?", id).Updates(map[string]any{
		"name":       in.Name,
		"nip":        in.NIP,
		"subject_id": in.SubjectID,
	})
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *TeacherRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Teacher{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
