package repository

import (
	"lingo_edu_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	return &lesson, err
}

// FindActiveByModule 按顺序返回模块下的上架课程
func (r *LessonRepository) FindActiveByModule(moduleID uint) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Where("module_id = ? AND active = ?", moduleID, true).
		Order("`order`").
		Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) CountActiveByModule(moduleID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Lesson{}).
		Where("module_id = ? AND active = ?", moduleID, true).
		Count(&count).Error
	return count, err
}
