package service

import (
	"errors"
	"math/rand"
	"time"

	"lingo_edu_backend/internal/model"
	"lingo_edu_backend/internal/repository"
	"lingo_edu_backend/internal/util"

	"gorm.io/gorm"
)

// 完成一节课入账的经验值
const lessonCompletionXP = 50

// 题目最多带的干扰项数量
const maxWrongAnswers = 3

// LessonDetail 课程详情响应
type LessonDetail struct {
	LessonID  uint          `json:"id_leccion"`
	Title     string        `json:"titulo"`
	ModuleID  uint          `json:"id_modulo"`
	Order     int           `json:"orden"`
	Completed bool          `json:"completado"`
	Videos    []model.Video `json:"videos"`
}

// Question 随机选词题：正确答案是某个视频的词，干扰项来自其它视频
type Question struct {
	LessonID     uint     `json:"id_leccion"`
	Prompt       string   `json:"pregunta"`
	Answer       string   `json:"respuesta_correcta"`
	WrongAnswers []string `json:"respuestas_incorrectas"`
	ImageURL     *string  `json:"imagen_url"`
	VideoURL     *string  `json:"video_url"`
}

// AnswerResult 答题结果
type AnswerResult struct {
	Correct         bool   `json:"correcto"`
	Message         string `json:"mensaje"`
	LessonCompleted bool   `json:"leccion_completada"`
}

// LessonService 课程详情、出题与答题流程。
// 答题写入在一个事务里提交：课程记录、模块进度级联、任务入账一起生效。
// Rand 可注入固定种子方便测试。
type LessonService struct {
	db          *gorm.DB
	lessons     *repository.LessonRepository
	videos      *repository.VideoRepository
	userLessons *repository.UserLessonRepository
	missions    *MissionService
	Rand        *rand.Rand
	Now         func() time.Time
}

func NewLessonService(db *gorm.DB, lessons *repository.LessonRepository, videos *repository.VideoRepository,
	userLessons *repository.UserLessonRepository, missions *MissionService) *LessonService {
	return &LessonService{
		db:          db,
		lessons:     lessons,
		videos:      videos,
		userLessons: userLessons,
		missions:    missions,
		Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
		Now:         time.Now,
	}
}

// GetDetail 课程详情及视频列表，带用户完成状态
func (s *LessonService) GetDetail(userID, lessonID uint) (*LessonDetail, error) {
	lesson, err := s.lessons.FindByID(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	videos, err := s.videos.FindActiveByLesson(lessonID)
	if err != nil {
		return nil, err
	}

	completed := false
	ul, err := s.userLessons.FindByUserAndLesson(userID, lessonID)
	if err == nil {
		completed = ul.Completed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &LessonDetail{
		LessonID:  lesson.ID,
		Title:     lesson.Title,
		ModuleID:  lesson.ModuleID,
		Order:     lesson.Order,
		Completed: completed,
		Videos:    videos,
	}, nil
}

// GetQuestion 从课程的视频里随机抽一个词出题，
// 本课干扰项不足三个时从其它课程补齐。
func (s *LessonService) GetQuestion(lessonID uint) (*Question, error) {
	if _, err := s.lessons.FindByID(lessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	videos, err := s.videos.FindActiveByLesson(lessonID)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, util.ErrNoVideosInLesson
	}

	correct := videos[s.Rand.Intn(len(videos))]

	others := make([]model.Video, 0, len(videos)-1)
	for _, v := range videos {
		if v.ID != correct.ID {
			others = append(others, v)
		}
	}
	if len(others) < maxWrongAnswers {
		extra, err := s.videos.FindActiveExcludingLesson(lessonID, maxWrongAnswers-len(others))
		if err != nil {
			return nil, err
		}
		others = append(others, extra...)
	}

	s.Rand.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})

	n := len(others)
	if n > maxWrongAnswers {
		n = maxWrongAnswers
	}
	wrong := make([]string, 0, n)
	for _, v := range others[:n] {
		wrong = append(wrong, v.Title)
	}

	videoURL := correct.URL
	return &Question{
		LessonID:     lessonID,
		Prompt:       "¿Qué palabra representa este video?",
		Answer:       correct.Title,
		WrongAnswers: wrong,
		ImageURL:     nil,
		VideoURL:     &videoURL,
	}, nil
}

// SubmitAnswer 提交答案：次数加一，答对则课程完成、成绩记满并级联重算模块进度。
// 答错时客户端可附带本次练习得分作为部分成绩，已完成的课程不回退。
// 课程记录、模块进度与当天任务入账在同一个事务里提交，任何一步失败整体回滚。
func (s *LessonService) SubmitAnswer(userID, lessonID uint, answer string, partialGrade *float64) (*AnswerResult, error) {
	if partialGrade != nil && (*partialGrade < 0 || *partialGrade > 100) {
		return nil, util.ErrInvalidGrade
	}

	lesson, err := s.lessons.FindByID(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	_, err = s.videos.FindByLessonAndTitle(lessonID, answer)
	correct := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		userLessons := repository.NewUserLessonRepository(tx)
		userModules := repository.NewUserModuleRepository(tx)
		lessonRepo := repository.NewLessonRepository(tx)
		challenges := repository.NewChallengeRepository(tx)

		ul, err := userLessons.FindByUserAndLesson(userID, lessonID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			ul = &model.UserLesson{UserID: userID, LessonID: lessonID}
		}

		wasCompleted := ul.Completed
		ul.Attempts++
		if correct {
			ul.Completed = true
			grade := 100.0
			ul.Grade = &grade
		} else if partialGrade != nil && !ul.Completed {
			ul.Grade = partialGrade
		}
		ul.UpdatedAt = s.Now()
		if err := userLessons.Save(ul); err != nil {
			return err
		}

		if correct && !wasCompleted {
			moduleCompleted, err := RecomputeModuleProgress(userLessons, lessonRepo, userModules, userID, lesson.ModuleID, s.Now())
			if err != nil {
				return err
			}
			if err := s.missions.RecordLessonCompleted(challenges, userID, lessonCompletionXP, moduleCompleted); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if correct {
		return &AnswerResult{
			Correct:         true,
			Message:         "¡Correcto! Has completado esta leccion.",
			LessonCompleted: true,
		}, nil
	}
	return &AnswerResult{
		Correct:         false,
		Message:         "Respuesta incorrecta. Intenta de nuevo.",
		LessonCompleted: false,
	}, nil
}
