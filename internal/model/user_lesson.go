package model

import "time"

// UserLesson 用户与课程的学习进度，(UserID, LessonID) 为联合主键。
// 完成状态与成绩由答题流程写入：Completed 为 true 时 Grade 必为 100。
// swagger:model UserLesson
type UserLesson struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"id_usuario"`
	LessonID  uint      `gorm:"primaryKey;autoIncrement:false" json:"id_leccion"`
	Completed bool      `gorm:"default:false" json:"completado"`
	Attempts  int       `gorm:"default:0" json:"intentos"`
	Grade     *float64  `gorm:"type:decimal(5,2)" json:"calificacion"`
	UpdatedAt time.Time `json:"actualizado_en"`
}

func (UserLesson) TableName() string {
	return "user_lessons"
}

// GradeValue 返回成绩，未记录时视为 0
func (ul *UserLesson) GradeValue() float64 {
	if ul.Grade == nil {
		return 0
	}
	return *ul.Grade
}
