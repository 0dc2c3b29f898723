package model

import "time"

// DailyChallenge 每用户每天一条的挑战记录，(UserID, Day) 唯一。
// 计数器由答题流程和任务更新接口写入；Completed 一旦在当天被置位就不再回退。
// RewardedMask 按任务ID记录当天已发放过奖励的任务，防止重复加币。
// swagger:model DailyChallenge
type DailyChallenge struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           uint      `gorm:"not null;uniqueIndex:idx_challenge_user_day" json:"id_usuario"`
	Day              time.Time `gorm:"type:date;not null;uniqueIndex:idx_challenge_user_day" json:"fecha_dia"`
	LessonsCompleted int       `gorm:"default:0" json:"lecciones_completadas"`
	ModulesCompleted int       `gorm:"default:0" json:"modulos_completados"`
	XPEarned         int       `gorm:"default:0" json:"xp_ganado"`
	Completed        bool      `gorm:"default:false" json:"completado"`
	RewardedMask     uint8     `gorm:"default:0" json:"-"`
	UpdatedAt        time.Time `json:"actualizado_en"`
}

func (DailyChallenge) TableName() string {
	return "daily_challenges"
}

// Rewarded 该任务当天是否已发放过奖励
func (c *DailyChallenge) Rewarded(missionID int) bool {
	if missionID < 1 || missionID > 8 {
		return false
	}
	return c.RewardedMask&(1<<uint(missionID-1)) != 0
}

// MarkRewarded 记录该任务当天已发放奖励
func (c *DailyChallenge) MarkRewarded(missionID int) {
	if missionID < 1 || missionID > 8 {
		return
	}
	c.RewardedMask |= 1 << uint(missionID-1)
}
