package database

import (
	"fmt"
	"log"
	"micro_learning_backend/internal/config"
	"micro_learning_backend/internal/model"

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
		&model.Topic{},
		&model.LearningContent{},
		&model.UserProgress{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认主题（表为空时插入初始数据）
	var count int64
	db.Model(&model.Topic{}).Count(&count)
	if count == 0 {
		if err := SeedDefaultTopics(db); err != nil {
			return nil, err
		}
		log.Println("Initial topics seeded successfully")
	}

	return db, nil
}

// SeedDefaultTopics inserts any default topic not already present, keyed by
// title. Safe to run repeatedly; existing rows are never touched.
func SeedDefaultTopics(db *gorm.DB) error {
	defaultTopics := []model.Topic{
		{Title: "Artificial Intelligence", Description: "Explore the world of AI, machine learning, and neural networks.", Icon: "🧠", Color: "blue"},
		{Title: "Web Development", Description: "Master modern web technologies, frameworks, and best practices.", Icon: "💻", Color: "green"},
		{Title: "Data Science", Description: "Understand data analysis, visualization, and statistical methods.", Icon: "📊", Color: "purple"},
		{Title: "Design Principles", Description: "Learn about UX/UI design, visual hierarchy, and user-centered design methods.", Icon: "🎨", Color: "yellow"},
		{Title: "Productivity", Description: "Discover techniques to improve focus, time management, and efficiency.", Icon: "⏱️", Color: "orange"},
	}
	for _, t := range defaultTopics {
		var existing int64
		db.Model(&model.Topic{}).Where("title = ?", t.Title).Count(&existing)
		if existing > 0 {
			continue
		}
		if err := db.Create(&t).Error; err != nil {
			return err
		}
	}
	return nil
}
