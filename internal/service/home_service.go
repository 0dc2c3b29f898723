package service

import (
	"errors"

	"lingo_edu_backend/internal/model"
	"lingo_edu_backend/internal/util"

	"gorm.io/gorm"
)

// UserStore 首页聚合依赖的用户查询接口，由 repository.UserRepository 实现
type UserStore interface {
	FindByID(id uint) (*model.User, error)
}

// HomeData 首页聚合响应，字段名是客户端约定的一部分，不要改
type HomeData struct {
	User            *model.User     `json:"Usuario"`
	Days            map[string]bool `json:"Dias"`
	Missions        int             `json:"Misiones"`
	Progress        float64         `json:"Progreso"`
	Streak          int             `json:"Racha"`
	ProgressModule1 int             `json:"ProgresoModulo1"`
	ProgressModule2 int             `json:"ProgresoModulo2"`
	ProgressModule3 int             `json:"ProgresoModulo3"`
	Total           int64           `json:"Total"`
}

// HomeService 首页聚合：用户信息、周日历、任务计数、进度与连续打卡
type HomeService struct {
	users    UserStore
	streak   *StreakService
	progress *ProgressService
}

func NewHomeService(users UserStore, streak *StreakService, progress *ProgressService) *HomeService {
	return &HomeService{
		users:    users,
		streak:   streak,
		progress: progress,
	}
}

func (s *HomeService) GetHome(userID uint) (*HomeData, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	ch, err := s.streak.GetOrCreateToday(userID)
	if err != nil {
		return nil, err
	}

	days, err := s.streak.WeeklyCalendar(userID)
	if err != nil {
		return nil, err
	}

	streak, err := s.streak.CurrentStreak(userID)
	if err != nil {
		return nil, err
	}

	overall, err := s.progress.OverallProgress(userID)
	if err != nil {
		return nil, err
	}

	moduleProgress := [3]int{}
	for i := range moduleProgress {
		pct, err := s.progress.ModuleProgress(userID, uint(i+1))
		if err != nil {
			return nil, err
		}
		moduleProgress[i] = pct
	}

	total, err := s.progress.CompletedLessonCount(userID)
	if err != nil {
		return nil, err
	}

	return &HomeData{
		User:            user,
		Days:            days,
		Missions:        ch.LessonsCompleted,
		Progress:        overall,
		Streak:          streak,
		ProgressModule1: moduleProgress[0],
		ProgressModule2: moduleProgress[1],
		ProgressModule3: moduleProgress[2],
		Total:           total,
	}, nil
}
