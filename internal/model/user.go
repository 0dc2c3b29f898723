package model

// User 应用用户，Coins 为每日任务的奖励余额
// swagger:model User
type User struct {
	BaseModel
	Name     string `gorm:"size:100;not null" json:"nombre"`
	Email    string `gorm:"size:100;unique;not null" json:"correo"`
	Password string `gorm:"size:100;not null" json:"-"`
	Coins    int    `gorm:"default:0" json:"monedas"`
	Avatar   string `gorm:"size:255" json:"avatar"`
	IsAdmin  bool   `gorm:"default:false" json:"es_admin"`
}

func (User) TableName() string {
	return "users"
}
