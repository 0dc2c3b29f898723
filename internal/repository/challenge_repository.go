package repository

import (
	"errors"
	"lingo_edu_backend/internal/model"
	"strings"
	"time"

	"gorm.io/gorm"
)

const dayLayout = "2006-01-02"

type ChallengeRepository struct {
	DB *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{DB: db}
}

func (r *ChallengeRepository) FindByUserAndDay(userID uint, day time.Time) (*model.DailyChallenge, error) {
	var ch model.DailyChallenge
	err := r.DB.Where("user_id = ? AND day = ?", userID, day.Format(dayLayout)).First(&ch).Error
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// GetOrCreate 取出当天记录，不存在则插入清零的一条。
// (user_id, day) 上有唯一索引：并发插入撞到重复键时回读已有记录，不产生重复行。
func (r *ChallengeRepository) GetOrCreate(userID uint, day time.Time) (*model.DailyChallenge, error) {
	ch, err := r.FindByUserAndDay(userID, day)
	if err == nil {
		return ch, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := &model.DailyChallenge{
		UserID: userID,
		Day:    day,
	}
	if err := r.DB.Create(fresh).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return r.FindByUserAndDay(userID, day)
		}
		return nil, err
	}
	return fresh, nil
}

func (r *ChallengeRepository) Save(ch *model.DailyChallenge) error {
	return r.DB.Save(ch).Error
}

// SaveWithCoins 挑战记录与奖励入账在同一事务内提交
func (r *ChallengeRepository) SaveWithCoins(ch *model.DailyChallenge, userID uint, coins int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ch).Error; err != nil {
			return err
		}
		if coins > 0 {
			if err := tx.Model(&model.User{}).
				Where("id = ?", userID).
				Update("coins", gorm.Expr("coins + ?", coins)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindCompletedBetween 周日历用：区间内（含两端）已完成的挑战记录
func (r *ChallengeRepository) FindCompletedBetween(userID uint, from, to time.Time) ([]model.DailyChallenge, error) {
	var rows []model.DailyChallenge
	err := r.DB.Where("user_id = ? AND completed = ? AND day BETWEEN ? AND ?",
		userID, true, from.Format(dayLayout), to.Format(dayLayout)).
		Order("day").
		Find(&rows).Error
	return rows, err
}
