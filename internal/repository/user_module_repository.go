package repository

import (
	"lingo_edu_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserModuleRepository struct {
	DB *gorm.DB
}

func NewUserModuleRepository(db *gorm.DB) *UserModuleRepository {
	return &UserModuleRepository{DB: db}
}

func (r *UserModuleRepository) FindByUser(userID uint) ([]model.UserModule, error) {
	var ums []model.UserModule
	err := r.DB.Where("user_id = ?", userID).Find(&ums).Error
	return ums, err
}

func (r *UserModuleRepository) FindByUserAndModule(userID, moduleID uint) (*model.UserModule, error) {
	var um model.UserModule
	err := r.DB.Where("user_id = ? AND module_id = ?", userID, moduleID).First(&um).Error
	if err != nil {
		return nil, err
	}
	return &um, nil
}

// Save 联合主键无法用 gorm.Save 的主键判断走插入，这里显式 upsert
func (r *UserModuleRepository) Save(um *model.UserModule) error {
	return r.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(um).Error
}
