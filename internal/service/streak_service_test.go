package service

import (
	"fmt"
	"testing"
	"time"

	"lingo_edu_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeChallengeStore 内存版挑战记录存储，按 (用户, 日期) 建键
type fakeChallengeStore struct {
	rows    map[string]*model.DailyChallenge
	credits map[uint]int
	nextID  uint
}

func newFakeChallengeStore() *fakeChallengeStore {
	return &fakeChallengeStore{
		rows:    make(map[string]*model.DailyChallenge),
		credits: make(map[uint]int),
	}
}

func (f *fakeChallengeStore) key(userID uint, day time.Time) string {
	return fmt.Sprintf("%d|%s", userID, day.Format("2006-01-02"))
}

func (f *fakeChallengeStore) FindByUserAndDay(userID uint, day time.Time) (*model.DailyChallenge, error) {
	ch, ok := f.rows[f.key(userID, day)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ch
	return &cp, nil
}

func (f *fakeChallengeStore) GetOrCreate(userID uint, day time.Time) (*model.DailyChallenge, error) {
	if ch, err := f.FindByUserAndDay(userID, day); err == nil {
		return ch, nil
	}
	f.nextID++
	ch := &model.DailyChallenge{ID: f.nextID, UserID: userID, Day: day}
	f.rows[f.key(userID, day)] = ch
	cp := *ch
	return &cp, nil
}

func (f *fakeChallengeStore) Save(ch *model.DailyChallenge) error {
	cp := *ch
	f.rows[f.key(ch.UserID, ch.Day)] = &cp
	return nil
}

func (f *fakeChallengeStore) SaveWithCoins(ch *model.DailyChallenge, userID uint, coins int) error {
	if err := f.Save(ch); err != nil {
		return err
	}
	f.credits[userID] += coins
	return nil
}

func (f *fakeChallengeStore) FindCompletedBetween(userID uint, from, to time.Time) ([]model.DailyChallenge, error) {
	var out []model.DailyChallenge
	for _, ch := range f.rows {
		if ch.UserID == userID && ch.Completed && !ch.Day.Before(from) && !ch.Day.After(to) {
			out = append(out, *ch)
		}
	}
	return out, nil
}

func (f *fakeChallengeStore) addCompleted(userID uint, day time.Time) {
	f.nextID++
	f.rows[f.key(userID, day)] = &model.DailyChallenge{
		ID:        f.nextID,
		UserID:    userID,
		Day:       day,
		Completed: true,
	}
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixedClock(s string) func() time.Time {
	// 带上时分秒，验证服务内部会截断到日粒度
	t := day(s).Add(15*time.Hour + 42*time.Minute)
	return func() time.Time { return t }
}

func TestGetOrCreateTodayIdempotent(t *testing.T) {
	store := newFakeChallengeStore()
	svc := NewStreakService(store)
	svc.Now = fixedClock("2026-01-07")

	first, err := svc.GetOrCreateToday(7)
	require.NoError(t, err)

	first.LessonsCompleted = 2
	require.NoError(t, store.Save(first))

	second, err := svc.GetOrCreateToday(7)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.LessonsCompleted, "再次读取不能重置计数器")
	assert.Len(t, store.rows, 1)
}

func TestCurrentStreakThreeDaysBack(t *testing.T) {
	store := newFakeChallengeStore()
	store.addCompleted(7, day("2026-01-06"))
	store.addCompleted(7, day("2026-01-05"))
	store.addCompleted(7, day("2026-01-04"))

	svc := NewStreakService(store)
	svc.Now = fixedClock("2026-01-07")

	// 今天的记录存在但未完成，跳过今天从昨天开始数
	_, err := svc.GetOrCreateToday(7)
	require.NoError(t, err)

	streak, err := svc.CurrentStreak(7)
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
}

func TestCurrentStreakTodayOnly(t *testing.T) {
	store := newFakeChallengeStore()
	store.addCompleted(7, day("2026-01-07"))

	svc := NewStreakService(store)
	svc.Now = fixedClock("2026-01-07")

	streak, err := svc.CurrentStreak(7)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestCurrentStreakSkipTodayAppliedOnce(t *testing.T) {
	store := newFakeChallengeStore()
	// 昨天没完成，前天完成了：跳过规则只对今天生效，连续数应为 0
	store.addCompleted(7, day("2026-01-05"))

	svc := NewStreakService(store)
	svc.Now = fixedClock("2026-01-07")

	streak, err := svc.CurrentStreak(7)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestCurrentStreakNoHistory(t *testing.T) {
	store := newFakeChallengeStore()
	svc := NewStreakService(store)
	svc.Now = fixedClock("2026-01-07")

	streak, err := svc.CurrentStreak(7)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestCurrentStreakCappedAt365(t *testing.T) {
	store := newFakeChallengeStore()
	today := day("2026-01-07")
	for i := 0; i < 400; i++ {
		store.addCompleted(7, today.AddDate(0, 0, -i))
	}

	svc := NewStreakService(store)
	svc.Now = fixedClock("2026-01-07")

	streak, err := svc.CurrentStreak(7)
	require.NoError(t, err)
	assert.Equal(t, 365, streak)
}

func TestWeeklyCalendarMidweek(t *testing.T) {
	store := newFakeChallengeStore()
	// 2026-01-07 是周三，本周周一是 2026-01-05
	store.addCompleted(7, day("2026-01-05"))
	store.addCompleted(7, day("2026-01-07"))
	// 未来日期即使有完成记录也不算
	store.addCompleted(7, day("2026-01-09"))

	svc := NewStreakService(store)
	svc.Now = fixedClock("2026-01-07")

	calendar, err := svc.WeeklyCalendar(7)
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{
		"Lunes":     true,
		"Martes":    false,
		"Miercoles": true,
		"Jueves":    false,
		"Viernes":   false,
		"Sabado":    false,
		"Domingo":   false,
	}, calendar)
}

func TestWeeklyCalendarIgnoresOtherUsers(t *testing.T) {
	store := newFakeChallengeStore()
	store.addCompleted(8, day("2026-01-05"))

	svc := NewStreakService(store)
	svc.Now = fixedClock("2026-01-07")

	calendar, err := svc.WeeklyCalendar(7)
	require.NoError(t, err)
	for name, done := range calendar {
		assert.False(t, done, name)
	}
}
