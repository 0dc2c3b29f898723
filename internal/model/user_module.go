package model

import "time"

// UserModule 用户与模块的进度汇总，(UserID, ModuleID) 为联合主键。
// ProgressPct 由课程完成级联重算得出，范围 0-100。
// swagger:model UserModule
type UserModule struct {
	UserID      uint      `gorm:"primaryKey;autoIncrement:false" json:"id_usuario"`
	ModuleID    uint      `gorm:"primaryKey;autoIncrement:false" json:"id_modulo"`
	ProgressPct float64   `gorm:"type:decimal(5,2);default:0" json:"progreso_pct"`
	Completed   bool      `gorm:"default:false" json:"completado"`
	UpdatedAt   time.Time `json:"actualizado_en"`
}

func (UserModule) TableName() string {
	return "user_modules"
}
