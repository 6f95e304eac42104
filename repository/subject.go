package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Afriels/presensi-new/models"
)

type SubjectRepository struct{ db *gorm.DB }

func NewSubjectRepository(db *gorm.DB) *SubjectRepository { return &SubjectRepository{db: db} }

type SubjectUpdate struct {
	Name string
	Code string
}

func (r *SubjectRepository) GetAll() ([]models.Subject, error) {
	var rows []models.Subject
	if err := r.db.Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SubjectRepository) GetByID(id uint) (*models.Subject, error) {
	var s models.Subject
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SubjectRepository) Create(s *models.Subject) error {
	return translate(r.db.Create(s).Error)
}

func (r *SubjectRepository) Update(id uint, in SubjectUpdate) (bool, error) {
	res := r.db.Model(&models.Subject{}).Where("id = ?", id).Updates(map[string]any{
		"name": in.Name,
		"code": in.Code,
	})
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *SubjectRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Subject{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
