package service

import (
	"errors"
	"math"
	"time"

	"lingo_edu_backend/internal/model"

	"gorm.io/gorm"
)

// UserLessonStore 课程进度存取接口，由 repository.UserLessonRepository 实现
type UserLessonStore interface {
	FindByUserAndLesson(userID, lessonID uint) (*model.UserLesson, error)
	Save(ul *model.UserLesson) error
	CountCompletedByUser(userID uint) (int64, error)
	CountCompletedInModule(userID, moduleID uint) (int64, error)
}

// UserModuleStore 模块进度存取接口，由 repository.UserModuleRepository 实现
type UserModuleStore interface {
	FindByUser(userID uint) ([]model.UserModule, error)
	FindByUserAndModule(userID, moduleID uint) (*model.UserModule, error)
	Save(um *model.UserModule) error
}

// VideoCountStore 课程下上架视频计数
type VideoCountStore interface {
	CountActiveByLesson(lessonID uint) (int64, error)
}

// LessonCountStore 模块下上架课程计数
type LessonCountStore interface {
	CountActiveByModule(moduleID uint) (int64, error)
}

// ProgressService 进度聚合：模块、课程与总体进度的只读口径。
// DisplayMax 是模块列表页进度条的满格值，来自配置。
type ProgressService struct {
	userLessons UserLessonStore
	userModules UserModuleStore
	videos      VideoCountStore
	DisplayMax  int
}

func NewProgressService(userLessons UserLessonStore, userModules UserModuleStore, videos VideoCountStore, displayMax int) *ProgressService {
	return &ProgressService{
		userLessons: userLessons,
		userModules: userModules,
		videos:      videos,
		DisplayMax:  displayMax,
	}
}

// OverallProgress 所有模块进度的平均值，保留一位小数，没有记录时为 0.0
func (s *ProgressService) OverallProgress(userID uint) (float64, error) {
	ums, err := s.userModules.FindByUser(userID)
	if err != nil {
		return 0, err
	}
	if len(ums) == 0 {
		return 0, nil
	}

	var sum float64
	for _, um := range ums {
		sum += um.ProgressPct
	}
	return math.Round(sum/float64(len(ums))*10) / 10, nil
}

// ModuleProgress 单个模块进度百分比，截断为整数，无记录时为 0
func (s *ProgressService) ModuleProgress(userID, moduleID uint) (int, error) {
	um, err := s.userModules.FindByUserAndModule(userID, moduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	pct := int(um.ProgressPct)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct, nil
}

// ScaledModuleProgress 模块列表页进度条的刻度值：百分比折算到 [0, DisplayMax]
func (s *ProgressService) ScaledModuleProgress(userID, moduleID uint) (int, error) {
	um, err := s.userModules.FindByUserAndModule(userID, moduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return int(um.ProgressPct / 100 * float64(s.DisplayMax)), nil
}

// LessonProgress 课程进度单位数：已完成按全部视频计，
// 未完成按成绩占比折算视频数向下取整，无记录时为 0。
func (s *ProgressService) LessonProgress(userID, lessonID uint) (int, error) {
	total, err := s.videos.CountActiveByLesson(lessonID)
	if err != nil {
		return 0, err
	}

	ul, err := s.userLessons.FindByUserAndLesson(userID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	if ul.Completed {
		return int(total), nil
	}
	return int(ul.GradeValue() / 100 * float64(total)), nil
}

// CompletedLessonCount 用户已完成课程总数
func (s *ProgressService) CompletedLessonCount(userID uint) (int64, error) {
	return s.userLessons.CountCompletedByUser(userID)
}

// RecomputeModuleProgress 课程完成后级联重算模块进度并回写 UserModule。
// 答题流程在事务内用事务绑定的仓库调用，保证与课程记录一起提交。
// 返回模块是否在本次重算中首次达到完成。
func RecomputeModuleProgress(userLessons UserLessonStore, lessons LessonCountStore, userModules UserModuleStore, userID, moduleID uint, now time.Time) (bool, error) {
	total, err := lessons.CountActiveByModule(moduleID)
	if err != nil {
		return false, err
	}

	var pct float64
	if total > 0 {
		done, err := userLessons.CountCompletedInModule(userID, moduleID)
		if err != nil {
			return false, err
		}
		pct = float64(done) / float64(total) * 100
	}

	um, err := userModules.FindByUserAndModule(userID, moduleID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, err
		}
		um = &model.UserModule{UserID: userID, ModuleID: moduleID}
	}

	wasCompleted := um.Completed
	um.ProgressPct = pct
	um.Completed = total > 0 && pct >= 100
	um.UpdatedAt = now
	if err := userModules.Save(um); err != nil {
		return false, err
	}
	return um.Completed && !wasCompleted, nil
}
