package model

// Lesson 模块下的课程
// swagger:model Lesson
type Lesson struct {
	BaseModel
	ModuleID uint   `gorm:"index;not null" json:"id_modulo"`
	Title    string `gorm:"size:150;not null" json:"titulo"`
	Order    int    `gorm:"not null" json:"orden"`
	Active   bool   `gorm:"default:true" json:"activo"`
}

func (Lesson) TableName() string {
	return "lessons"
}
