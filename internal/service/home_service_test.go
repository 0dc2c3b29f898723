package service

import (
	"encoding/json"
	"testing"

	"lingo_edu_backend/internal/model"
	"lingo_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserStore struct {
	users map[uint]*model.User
}

func (f *fakeUserStore) FindByID(id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func TestGetHomeAggregates(t *testing.T) {
	users := &fakeUserStore{users: map[uint]*model.User{
		7: {Name: "Ana", Email: "ana@example.com", Coins: 120},
	}}

	challenges := newFakeChallengeStore()
	// 今天（周三）完成，昨天也完成：连续 2 天
	challenges.addCompleted(7, day("2026-01-07"))
	challenges.addCompleted(7, day("2026-01-06"))
	today := challenges.rows[challenges.key(7, day("2026-01-07"))]
	today.LessonsCompleted = 2

	streak := NewStreakService(challenges)
	streak.Now = fixedClock("2026-01-07")

	ums := newFakeUserModuleStore()
	ums.set(7, 1, 50)
	ums.set(7, 2, 25.5)

	uls := newFakeUserLessonStore()
	require.NoError(t, uls.Save(&model.UserLesson{UserID: 7, LessonID: 10, Completed: true}))
	require.NoError(t, uls.Save(&model.UserLesson{UserID: 7, LessonID: 11, Completed: true}))

	progress := NewProgressService(uls, ums, fakeVideoCounts{}, 50)

	svc := NewHomeService(users, streak, progress)

	home, err := svc.GetHome(7)
	require.NoError(t, err)

	assert.Equal(t, "Ana", home.User.Name)
	assert.Equal(t, 2, home.Missions)
	assert.Equal(t, 37.8, home.Progress, "(50+25.5)/2 保留一位小数")
	assert.Equal(t, 2, home.Streak)
	assert.Equal(t, 50, home.ProgressModule1)
	assert.Equal(t, 25, home.ProgressModule2)
	assert.Equal(t, 0, home.ProgressModule3)
	assert.Equal(t, int64(2), home.Total)

	assert.True(t, home.Days["Lunes"] == false && home.Days["Martes"] == true && home.Days["Miercoles"] == true)
}

func TestGetHomeWireKeys(t *testing.T) {
	users := &fakeUserStore{users: map[uint]*model.User{7: {Name: "Ana"}}}

	streak := NewStreakService(newFakeChallengeStore())
	streak.Now = fixedClock("2026-01-07")
	progress := NewProgressService(newFakeUserLessonStore(), newFakeUserModuleStore(), fakeVideoCounts{}, 50)

	home, err := NewHomeService(users, streak, progress).GetHome(7)
	require.NoError(t, err)

	raw, err := json.Marshal(home)
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &payload))

	// 客户端约定的字段名
	for _, key := range []string{"Usuario", "Dias", "Misiones", "Progreso", "Racha",
		"ProgresoModulo1", "ProgresoModulo2", "ProgresoModulo3", "Total"} {
		assert.Contains(t, payload, key)
	}
}

func TestGetHomeUserNotFound(t *testing.T) {
	users := &fakeUserStore{users: map[uint]*model.User{}}

	streak := NewStreakService(newFakeChallengeStore())
	streak.Now = fixedClock("2026-01-07")
	progress := NewProgressService(newFakeUserLessonStore(), newFakeUserModuleStore(), fakeVideoCounts{}, 50)

	_, err := NewHomeService(users, streak, progress).GetHome(7)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}
