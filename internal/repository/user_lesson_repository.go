package repository

import (
	"lingo_edu_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserLessonRepository struct {
	DB *gorm.DB
}

func NewUserLessonRepository(db *gorm.DB) *UserLessonRepository {
	return &UserLessonRepository{DB: db}
}

func (r *UserLessonRepository) FindByUserAndLesson(userID, lessonID uint) (*model.UserLesson, error) {
	var ul model.UserLesson
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&ul).Error
	if err != nil {
		return nil, err
	}
	return &ul, nil
}

// Save 联合主键无法用 gorm.Save 的主键判断走插入，这里显式 upsert
func (r *UserLessonRepository) Save(ul *model.UserLesson) error {
	return r.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(ul).Error
}

// CountCompletedByUser 用户已完成课程总数
func (r *UserLessonRepository) CountCompletedByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserLesson{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&count).Error
	return count, err
}

// CountCompletedInModule 模块进度级联重算用：统计用户在模块内完成的上架课程数
func (r *UserLessonRepository) CountCompletedInModule(userID, moduleID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserLesson{}).
		Joins("JOIN lessons ON lessons.id = user_lessons.lesson_id AND lessons.deleted_at IS NULL").
		Where("user_lessons.user_id = ? AND user_lessons.completed = ? AND lessons.module_id = ? AND lessons.active = ?",
			userID, true, moduleID, true).
		Count(&count).Error
	return count, err
}
