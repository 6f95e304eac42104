package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Afriels/presensi-new/models"
)

type ClassRepository struct{ db *gorm.DB }

func NewClassRepository(db *gorm.DB) *ClassRepository { return &ClassRepository{db: db} }

type ClassUpdate struct {
	Name  string
	Grade string
	Year  string
}

func (r *ClassRepository) GetAll() ([]models.Class, error) {
	var rows []models.Class
	if err := r.db.Order("grade, name").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ClassRepository) GetByID(id uint) (*models.Class, error) {
	var c models.Class
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ClassRepository) Create(c *models.Class) error {
	return translate(r.db.Create(c).Error)
}

// Update mengganti seluruh field (name, grade, year) sekaligus.
func (r *ClassRepository) Update(id uint, in ClassUpdate) (bool, error) {
	res := r.db.Model(&models.Class{}).Where("id = ?", id).Updates(map[string]any{
		"name":  in.Name,
		"grade": in.Grade,
		"year":  in.Year,
	})
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete menghapus tanpa cek baris anak; referensi menggantung dibiarkan
// (kelas yang terhapus tampil NULL di LEFT JOIN).
func (r *ClassRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Class{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
