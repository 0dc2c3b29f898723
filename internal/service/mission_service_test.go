package service

import (
	"errors"
	"testing"

	"lingo_edu_backend/internal/model"
	"lingo_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMissionService(store ChallengeStore) *MissionService {
	svc := NewMissionService(store)
	svc.Now = fixedClock("2026-01-07")
	return svc
}

// failingChallengeStore 写入阶段必败的存储，验证错误会向上传递触发回滚
type failingChallengeStore struct {
	*fakeChallengeStore
}

func (f *failingChallengeStore) SaveWithCoins(ch *model.DailyChallenge, userID uint, coins int) error {
	return errors.New("conexión perdida")
}

func TestListDailyMissionsCreatesTodayRow(t *testing.T) {
	store := newFakeChallengeStore()
	svc := newMissionService(store)

	missions, err := svc.ListDailyMissions(7)
	require.NoError(t, err)
	require.Len(t, missions, 3)
	assert.Len(t, store.rows, 1)

	assert.Equal(t, "Completa 3 lecciones", missions[0].Name)
	assert.Equal(t, 3, missions[0].Goal)
	assert.Equal(t, 50, missions[0].RewardXP)
	assert.Equal(t, "Completa 1 modulo", missions[1].Name)
	assert.Equal(t, "Gana 100 XP", missions[2].Name)

	for _, m := range missions {
		assert.Equal(t, 0, m.Progress)
		assert.False(t, m.Completed)
	}
}

func TestListDailyMissionsClampsProgress(t *testing.T) {
	store := newFakeChallengeStore()
	svc := newMissionService(store)

	ch, err := store.GetOrCreate(7, dateOnly(svc.Now()))
	require.NoError(t, err)
	ch.XPEarned = 150
	require.NoError(t, store.Save(ch))

	missions, err := svc.ListDailyMissions(7)
	require.NoError(t, err)

	xpMission := missions[2]
	assert.Equal(t, 100, xpMission.Progress, "进度值不超过目标")
	assert.True(t, xpMission.Completed)
}

func TestUpdateMissionInvalidID(t *testing.T) {
	svc := newMissionService(newFakeChallengeStore())

	_, err := svc.UpdateMission(7, 9, 1)
	assert.ErrorIs(t, err, util.ErrInvalidMission)
}

func TestUpdateMissionPaysRewardExactlyOnce(t *testing.T) {
	store := newFakeChallengeStore()
	svc := newMissionService(store)

	ch, err := svc.UpdateMission(7, 1, 3)
	require.NoError(t, err)
	assert.True(t, ch.Completed)
	assert.Equal(t, 3, ch.LessonsCompleted)
	assert.Equal(t, 50, store.credits[7])

	// 同一天再报同样的进度不能重复发奖
	ch, err = svc.UpdateMission(7, 1, 3)
	require.NoError(t, err)
	assert.True(t, ch.Completed)
	assert.Equal(t, 50, store.credits[7])
}

func TestUpdateMissionCounterIsAbsolute(t *testing.T) {
	store := newFakeChallengeStore()
	svc := newMissionService(store)

	_, err := svc.UpdateMission(7, 3, 40)
	require.NoError(t, err)

	ch, err := svc.UpdateMission(7, 3, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, ch.XPEarned)
	assert.Equal(t, 25, store.credits[7])

	// 进度回落不回退完成位，也不退奖励
	ch, err = svc.UpdateMission(7, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, ch.XPEarned)
	assert.True(t, ch.Completed)
	assert.Equal(t, 25, store.credits[7])
}

func TestRecordLessonCompletedAccumulates(t *testing.T) {
	store := newFakeChallengeStore()
	svc := newMissionService(store)

	require.NoError(t, svc.RecordLessonCompleted(store, 7, 50, false))
	require.NoError(t, svc.RecordLessonCompleted(store, 7, 50, false))

	ch, err := store.FindByUserAndDay(7, day("2026-01-07"))
	require.NoError(t, err)
	assert.Equal(t, 2, ch.LessonsCompleted)
	assert.Equal(t, 100, ch.XPEarned)
	// 100 XP 任务达标
	assert.True(t, ch.Completed)
	assert.Equal(t, 25, store.credits[7])

	// 第三节课同时满足“完成3节课”任务
	require.NoError(t, svc.RecordLessonCompleted(store, 7, 50, false))
	assert.Equal(t, 25+50, store.credits[7])
}

func TestRecordLessonCompletedWithModule(t *testing.T) {
	store := newFakeChallengeStore()
	svc := newMissionService(store)

	require.NoError(t, svc.RecordLessonCompleted(store, 7, 50, true))

	ch, err := store.FindByUserAndDay(7, day("2026-01-07"))
	require.NoError(t, err)
	assert.Equal(t, 1, ch.ModulesCompleted)
	assert.True(t, ch.Completed)
	// 完成1个模块的任务奖励 100
	assert.Equal(t, 100, store.credits[7])
}

func TestRecordLessonCompletedWritesToGivenStore(t *testing.T) {
	serviceStore := newFakeChallengeStore()
	txStore := newFakeChallengeStore()
	svc := newMissionService(serviceStore)

	require.NoError(t, svc.RecordLessonCompleted(txStore, 7, 50, false))

	// 入账必须落在调用方给的存储上，答题事务才能带着它一起提交
	assert.Empty(t, serviceStore.rows)
	assert.Len(t, txStore.rows, 1)
}

func TestRecordLessonCompletedPropagatesStoreError(t *testing.T) {
	store := &failingChallengeStore{fakeChallengeStore: newFakeChallengeStore()}
	svc := newMissionService(store)

	err := svc.RecordLessonCompleted(store, 7, 50, false)
	assert.Error(t, err)
}
