package service

import (
	"errors"
	"time"

	"lingo_edu_backend/internal/model"

	"gorm.io/gorm"
)

// ChallengeStore 连续打卡引擎依赖的挑战记录存取接口，由 repository.ChallengeRepository 实现
type ChallengeStore interface {
	FindByUserAndDay(userID uint, day time.Time) (*model.DailyChallenge, error)
	GetOrCreate(userID uint, day time.Time) (*model.DailyChallenge, error)
	Save(ch *model.DailyChallenge) error
	SaveWithCoins(ch *model.DailyChallenge, userID uint, coins int) error
	FindCompletedBetween(userID uint, from, to time.Time) ([]model.DailyChallenge, error)
}

// 连续打卡回溯上限，防止异常数据导致无界查询
const maxStreakDays = 365

// 周日历固定从周一开始
var weekdayNames = []string{"Lunes", "Martes", "Miercoles", "Jueves", "Viernes", "Sabado", "Domingo"}

// StreakService 连续打卡与周日历引擎。
// 所有日期都从注入的时钟取一次“今天”再截断到日粒度，保证一次请求内口径一致。
type StreakService struct {
	challenges ChallengeStore
	Now        func() time.Time
}

func NewStreakService(challenges ChallengeStore) *StreakService {
	return &StreakService{
		challenges: challenges,
		Now:        time.Now,
	}
}

// dateOnly 截断到日粒度，丢弃时区外的时分秒
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// GetOrCreateToday 取出或创建用户当天的挑战记录，可重复调用
func (s *StreakService) GetOrCreateToday(userID uint) (*model.DailyChallenge, error) {
	return s.challenges.GetOrCreate(userID, dateOnly(s.Now()))
}

// WeeklyCalendar 本周打卡日历：周一到周日的西语星期名映射到是否完成，
// 只统计挑战记录的完成位，今天之后的日子一律为 false。
func (s *StreakService) WeeklyCalendar(userID uint) (map[string]bool, error) {
	today := dateOnly(s.Now())

	// time.Weekday 以周日为 0，换算成周一为 0 的偏移
	offset := (int(today.Weekday()) + 6) % 7
	monday := today.AddDate(0, 0, -offset)

	rows, err := s.challenges.FindCompletedBetween(userID, monday, today)
	if err != nil {
		return nil, err
	}

	done := make(map[time.Time]bool, len(rows))
	for _, row := range rows {
		done[dateOnly(row.Day)] = true
	}

	calendar := make(map[string]bool, len(weekdayNames))
	for i, name := range weekdayNames {
		day := monday.AddDate(0, 0, i)
		calendar[name] = !day.After(today) && done[day]
	}
	return calendar, nil
}

// CurrentStreak 从今天往回数连续完成的天数。
// 今天还没完成不打断连续：跳过今天从昨天继续数，该规则只用一次。
func (s *StreakService) CurrentStreak(userID uint) (int, error) {
	day := dateOnly(s.Now())

	completed, err := s.dayCompleted(userID, day)
	if err != nil {
		return 0, err
	}
	if !completed {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for streak < maxStreakDays {
		completed, err := s.dayCompleted(userID, day)
		if err != nil {
			return 0, err
		}
		if !completed {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}

func (s *StreakService) dayCompleted(userID uint, day time.Time) (bool, error) {
	ch, err := s.challenges.FindByUserAndDay(userID, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return ch.Completed, nil
}
