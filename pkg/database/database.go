package database

import (
	"fmt"
	"lingo_edu_backend/internal/config"
	"lingo_edu_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Module{},
		&model.Lesson{},
		&model.Video{},
		&model.UserLesson{},
		&model.UserModule{},
		&model.DailyChallenge{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedContent(db)

	return db, nil
}

// seedContent 内容表为空时写入默认的模块/课程/词汇视频
func seedContent(db *gorm.DB) {
	var count int64
	db.Model(&model.Module{}).Count(&count)
	if count > 0 {
		return
	}

	modules := []struct {
		title   string
		lessons []struct {
			title  string
			videos []string
		}
	}{
		{
			title: "Abecedario",
			lessons: []struct {
				title  string
				videos []string
			}{
				{title: "Vocales", videos: []string{"A", "E", "I", "O", "U"}},
				{title: "Consonantes", videos: []string{"B", "C", "D", "F", "G"}},
			},
		},
		{
			title: "Saludos",
			lessons: []struct {
				title  string
				videos []string
			}{
				{title: "Saludos básicos", videos: []string{"Hola", "Buenos días", "Buenas noches", "Adiós"}},
				{title: "Cortesía", videos: []string{"Gracias", "Por favor", "Perdón"}},
			},
		},
		{
			title: "Familia",
			lessons: []struct {
				title  string
				videos []string
			}{
				{title: "Familia cercana", videos: []string{"Mamá", "Papá", "Hermano", "Hermana"}},
			},
		},
	}

	for mi, m := range modules {
		mod := model.Module{Title: m.title, Order: mi + 1, Active: true}
		if err := db.Create(&mod).Error; err != nil {
			log.Printf("seed module %q failed: %v", m.title, err)
			continue
		}
		for li, l := range m.lessons {
			lesson := model.Lesson{ModuleID: mod.ID, Title: l.title, Order: li + 1, Active: true}
			if err := db.Create(&lesson).Error; err != nil {
				log.Printf("seed lesson %q failed: %v", l.title, err)
				continue
			}
			for vi, title := range l.videos {
				video := model.Video{
					LessonID:    lesson.ID,
					Title:       title,
					URL:         fmt.Sprintf("https://cdn.lingoedu.app/videos/%d/%d.mp4", lesson.ID, vi+1),
					DurationSec: 8,
					Order:       vi + 1,
					Active:      true,
				}
				db.Create(&video)
			}
		}
	}

	log.Println("Default content seeded")
}
