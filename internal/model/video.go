package model

// Video 课程内的词汇视频，Title 即词条本身
// swagger:model Video
type Video struct {
	BaseModel
	LessonID    uint   `gorm:"index;not null" json:"id_leccion"`
	Title       string `gorm:"size:150;not null" json:"titulo"`
	URL         string `gorm:"size:500;not null" json:"url"`
	DurationSec int    `json:"duracion_seg"`
	Order       int    `gorm:"not null" json:"orden"`
	Active      bool   `gorm:"default:true" json:"activo"`
}

func (Video) TableName() string {
	return "videos"
}
