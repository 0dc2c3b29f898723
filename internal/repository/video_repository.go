package repository

import (
	"lingo_edu_backend/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	DB *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{DB: db}
}

// WordRow 词典条目：视频连同所属课程和模块
type WordRow struct {
	VideoID     uint   `json:"id"`
	Title       string `json:"titulo"`
	URL         string `json:"url"`
	DurationSec int    `json:"duracion_seg"`
	LessonID    uint   `json:"leccion_id"`
	LessonTitle string `json:"leccion_nombre"`
	ModuleID    uint   `json:"modulo_id"`
	ModuleTitle string `json:"modulo_nombre"`
}

func (r *VideoRepository) FindByID(id uint) (*model.Video, error) {
	var video model.Video
	err := r.DB.First(&video, id).Error
	return &video, err
}

// FindActiveByLesson 按顺序返回课程下的上架视频
func (r *VideoRepository) FindActiveByLesson(lessonID uint) ([]model.Video, error) {
	var videos []model.Video
	err := r.DB.Where("lesson_id = ? AND active = ?", lessonID, true).
		Order("`order`").
		Find(&videos).Error
	return videos, err
}

func (r *VideoRepository) CountActiveByLesson(lessonID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Video{}).
		Where("lesson_id = ? AND active = ?", lessonID, true).
		Count(&count).Error
	return count, err
}

// FindByLessonAndTitle 校验答案用：按标题在课程内查找视频
func (r *VideoRepository) FindByLessonAndTitle(lessonID uint, title string) (*model.Video, error) {
	var video model.Video
	err := r.DB.Where("lesson_id = ? AND title = ? AND active = ?", lessonID, title, true).
		First(&video).Error
	return &video, err
}

// FindActiveExcludingLesson 跨课程补充干扰项
func (r *VideoRepository) FindActiveExcludingLesson(lessonID uint, limit int) ([]model.Video, error) {
	var videos []model.Video
	err := r.DB.Where("lesson_id <> ? AND active = ?", lessonID, true).
		Limit(limit).
		Find(&videos).Error
	return videos, err
}

const wordSelect = "videos.id AS video_id, videos.title, videos.url, videos.duration_sec, " +
	"lessons.id AS lesson_id, lessons.title AS lesson_title, " +
	"modules.id AS module_id, modules.title AS module_title"

// SearchWords 词典检索：视频连同课程/模块标题，按内容顺序排序
func (r *VideoRepository) SearchWords(search string) ([]WordRow, error) {
	query := r.DB.Model(&model.Video{}).
		Select(wordSelect).
		Joins("JOIN lessons ON lessons.id = videos.lesson_id AND lessons.deleted_at IS NULL").
		Joins("JOIN modules ON modules.id = lessons.module_id AND modules.deleted_at IS NULL").
		Where("videos.active = ?", true)

	if search != "" {
		query = query.Where("videos.title LIKE ?", "%"+search+"%")
	}

	var rows []WordRow
	err := query.Order("modules.`order`, lessons.`order`, videos.`order`").Scan(&rows).Error
	return rows, err
}

func (r *VideoRepository) FindWordByID(videoID uint) (*WordRow, error) {
	var row WordRow
	err := r.DB.Model(&model.Video{}).
		Select(wordSelect).
		Joins("JOIN lessons ON lessons.id = videos.lesson_id AND lessons.deleted_at IS NULL").
		Joins("JOIN modules ON modules.id = lessons.module_id AND modules.deleted_at IS NULL").
		Where("videos.id = ?", videoID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.VideoID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
