package service

import (
	"strconv"
	"time"

	"lingo_edu_backend/internal/model"
	"lingo_edu_backend/internal/util"
	"lingo_edu_backend/pkg/monitoring"
)

// missionDef 固定任务目录中的一项
type missionDef struct {
	ID          int
	Name        string
	Description string
	Goal        int
	RewardXP    int
	counter     func(ch *model.DailyChallenge) int
}

// 每日任务目录是固定的，客户端按 id 识别
var missionCatalogue = []missionDef{
	{
		ID:          1,
		Name:        "Completa 3 lecciones",
		Description: "Termina 3 lecciones de cualquier modulo",
		Goal:        3,
		RewardXP:    50,
		counter:     func(ch *model.DailyChallenge) int { return ch.LessonsCompleted },
	},
	{
		ID:          2,
		Name:        "Completa 1 modulo",
		Description: "Termina todas las lecciones de un modulo",
		Goal:        1,
		RewardXP:    100,
		counter:     func(ch *model.DailyChallenge) int { return ch.ModulesCompleted },
	},
	{
		ID:          3,
		Name:        "Gana 100 XP",
		Description: "Acumula 100 puntos de experiencia",
		Goal:        100,
		RewardXP:    25,
		counter:     func(ch *model.DailyChallenge) int { return ch.XPEarned },
	},
}

// Mission 任务列表响应项
type Mission struct {
	ID          int    `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Progress    int    `json:"progreso_actual"`
	Goal        int    `json:"meta"`
	Completed   bool   `json:"completada"`
	RewardXP    int    `json:"xp_recompensa"`
}

// MissionService 每日任务：列表、进度更新与奖励发放。
// 奖励按任务每天最多发一次，由挑战记录上的发放位控制。
type MissionService struct {
	challenges ChallengeStore
	Now        func() time.Time
}

func NewMissionService(challenges ChallengeStore) *MissionService {
	return &MissionService{
		challenges: challenges,
		Now:        time.Now,
	}
}

// ListDailyMissions 当天任务列表，进度值不超过目标值
func (s *MissionService) ListDailyMissions(userID uint) ([]Mission, error) {
	ch, err := s.challenges.GetOrCreate(userID, dateOnly(s.Now()))
	if err != nil {
		return nil, err
	}

	missions := make([]Mission, 0, len(missionCatalogue))
	for _, def := range missionCatalogue {
		current := def.counter(ch)
		progress := current
		if progress > def.Goal {
			progress = def.Goal
		}
		missions = append(missions, Mission{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Progress:    progress,
			Goal:        def.Goal,
			Completed:   current >= def.Goal,
			RewardXP:    def.RewardXP,
		})
	}
	return missions, nil
}

// UpdateMission 把任务计数器设为给定值并结算奖励
func (s *MissionService) UpdateMission(userID uint, missionID, progress int) (*model.DailyChallenge, error) {
	def, ok := findMission(missionID)
	if !ok {
		return nil, util.ErrInvalidMission
	}

	ch, err := s.challenges.GetOrCreate(userID, dateOnly(s.Now()))
	if err != nil {
		return nil, err
	}

	switch def.ID {
	case 1:
		ch.LessonsCompleted = progress
	case 2:
		ch.ModulesCompleted = progress
	case 3:
		ch.XPEarned = progress
	}

	coins := settleRewards(ch)
	ch.UpdatedAt = s.Now()
	if err := s.challenges.SaveWithCoins(ch, userID, coins); err != nil {
		return nil, err
	}
	return ch, nil
}

// RecordLessonCompleted 答题流程完成一节课后累计当天计数并结算奖励。
// challenges 由调用方传入：答题事务里传事务绑定的仓库，任务入账与课程写入一起提交或一起回滚。
// moduleCompleted 为 true 时模块完成数同步加一。
func (s *MissionService) RecordLessonCompleted(challenges ChallengeStore, userID uint, xp int, moduleCompleted bool) error {
	ch, err := challenges.GetOrCreate(userID, dateOnly(s.Now()))
	if err != nil {
		return err
	}

	ch.LessonsCompleted++
	ch.XPEarned += xp
	if moduleCompleted {
		ch.ModulesCompleted++
	}

	coins := settleRewards(ch)
	ch.UpdatedAt = s.Now()
	return challenges.SaveWithCoins(ch, userID, coins)
}

func findMission(missionID int) (missionDef, bool) {
	for _, def := range missionCatalogue {
		if def.ID == missionID {
			return def, true
		}
	}
	return missionDef{}, false
}

// settleRewards 重算完成位并返回本次应入账的奖励总额。
// 完成位当天只置位不回退；已发放过的任务不再计酬。
func settleRewards(ch *model.DailyChallenge) int {
	coins := 0
	for _, def := range missionCatalogue {
		if def.counter(ch) < def.Goal {
			continue
		}
		ch.Completed = true
		if ch.Rewarded(def.ID) {
			continue
		}
		ch.MarkRewarded(def.ID)
		coins += def.RewardXP
		monitoring.MissionRewardCounter.WithLabelValues(strconv.Itoa(def.ID)).Inc()
	}
	return coins
}
