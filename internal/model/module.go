package model

// Module 学习模块（内容层级的顶层），Order 决定展示顺序
// swagger:model Module
type Module struct {
	BaseModel
	Title  string `gorm:"size:150;not null" json:"titulo"`
	Order  int    `gorm:"not null" json:"orden"`
	Active bool   `gorm:"default:true" json:"activo"`
}

func (Module) TableName() string {
	return "modules"
}
