package repository

import (
	"gorm.io/gorm"

	"github.com/Afriels/presensi-new/models"
)

type StudentRepository struct{ db *gorm.DB }

func NewStudentRepository(db *gorm.DB) *StudentRepository { return &StudentRepository{db: db} }

// StudentUpdate: semua field pointer — nil berarti pertahankan nilai lama
// (COALESCE), bukan dikosongkan.
type StudentUpdate struct {
	Name    *string
	NIS     *string
	ClassID *uint
	Phone   *string
	Email   *string
}

// GetAll mengembalikan siswa + nama kelas & tingkat (LEFT JOIN, urut nama).
func (r *StudentRepository) GetAll() ([]models.StudentView, error) {
	var rows []models.StudentView
	err := r.db.Table("students s").
		Select("s.*, c.name AS class_name, c.grade AS grade").
		Joins("LEFT JOIN classes c ON s.class_id = c.id").
		Order("s.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *StudentRepository) GetByID(id uint) (*models.StudentView, error) {
	var row models.StudentView
	res := r.db.Table("students s").
		Select("s.*, c.name AS class_name, c.grade AS grade").
		Joins("LEFT JOIN classes c ON s.class_id = c.id").
		Where("s.id = ?", id).
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

func (r *StudentRepository) Create(s *models.Student) error {
	return translate(r.db.Create(s).Error)
}

// Update memakai COALESCE per kolom: field yang tidak dikirim jatuh kembali
// ke nilai tersimpan.
func (r *StudentRepository) Update(id uint, in StudentUpdate) (bool, error) {
	res := r.db.Exec(
		`UPDATE students SET
			name = COALESCE(?, name),
			nis = COALESCE(?, nis),
			class_id = COALESCE(?, class_id),
			phone = COALESCE(?, phone),
			email = COALESCE(?, email)
		WHERE id = ?`,
		in.Name, in.NIS, in.ClassID, in.Phone, in.Email, id,
	)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *StudentRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Student{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
