package service

import (
	"errors"

	"lingo_edu_backend/internal/repository"
	"lingo_edu_backend/internal/util"

	"gorm.io/gorm"
)

// ModuleInfo 模块列表项，current/max 是客户端进度条的刻度
type ModuleInfo struct {
	Name    string `json:"name"`
	Current int    `json:"current"`
	Max     int    `json:"max"`
	ID      uint   `json:"id"`
}

// LessonInfo 课程列表项，current/max 以视频数为单位
type LessonInfo struct {
	Name    string `json:"name"`
	Current int    `json:"current"`
	Max     int    `json:"max"`
	ID      uint   `json:"id"`
}

// LessonList 某模块下的课程列表
type LessonList struct {
	ModuleID   uint         `json:"modulo_id"`
	ModuleName string       `json:"modulo_nombre"`
	Lessons    []LessonInfo `json:"lecciones"`
}

// ModuleService 模块与课程列表
type ModuleService struct {
	users    *repository.UserRepository
	modules  *repository.ModuleRepository
	lessons  *repository.LessonRepository
	videos   *repository.VideoRepository
	progress *ProgressService
}

func NewModuleService(users *repository.UserRepository, modules *repository.ModuleRepository,
	lessons *repository.LessonRepository, videos *repository.VideoRepository, progress *ProgressService) *ModuleService {
	return &ModuleService{
		users:    users,
		modules:  modules,
		lessons:  lessons,
		videos:   videos,
		progress: progress,
	}
}

// ListModules 上架模块列表及用户进度
func (s *ModuleService) ListModules(userID uint) ([]ModuleInfo, error) {
	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	modules, err := s.modules.FindActive()
	if err != nil {
		return nil, err
	}

	infos := make([]ModuleInfo, 0, len(modules))
	for _, m := range modules {
		current, err := s.progress.ScaledModuleProgress(userID, m.ID)
		if err != nil {
			return nil, err
		}
		infos = append(infos, ModuleInfo{
			Name:    m.Title,
			Current: current,
			Max:     s.progress.DisplayMax,
			ID:      m.ID,
		})
	}
	return infos, nil
}

// ListLessons 模块下的上架课程及用户进度
func (s *ModuleService) ListLessons(userID, moduleID uint) (*LessonList, error) {
	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	module, err := s.modules.FindByID(moduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}

	lessons, err := s.lessons.FindActiveByModule(moduleID)
	if err != nil {
		return nil, err
	}

	infos := make([]LessonInfo, 0, len(lessons))
	for _, l := range lessons {
		total, err := s.videos.CountActiveByLesson(l.ID)
		if err != nil {
			return nil, err
		}
		current, err := s.progress.LessonProgress(userID, l.ID)
		if err != nil {
			return nil, err
		}
		infos = append(infos, LessonInfo{
			Name:    l.Title,
			Current: current,
			Max:     int(total),
			ID:      l.ID,
		})
	}

	return &LessonList{
		ModuleID:   module.ID,
		ModuleName: module.Title,
		Lessons:    infos,
	}, nil
}
