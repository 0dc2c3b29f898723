package repository

import (
	"lingo_edu_backend/internal/model"

	"gorm.io/gorm"
)

type ModuleRepository struct {
	DB *gorm.DB
}

func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{DB: db}
}

func (r *ModuleRepository) FindByID(id uint) (*model.Module, error) {
	var module model.Module
	err := r.DB.First(&module, id).Error
	return &module, err
}

// FindActive 按展示顺序返回所有上架模块
func (r *ModuleRepository) FindActive() ([]model.Module, error) {
	var modules []model.Module
	err := r.DB.Where("active = ?", true).Order("`order`").Find(&modules).Error
	return modules, err
}
