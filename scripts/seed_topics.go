// 手动补种默认主题脚本
//
// 应用启动时仅在 topics 表为空时播种。若默认主题被误删，
// 可用本脚本按标题补齐缺失的默认主题，已有数据不受影响。
//
// 用法: go run scripts/seed_topics.go

package main

import (
	"log"
	"micro_learning_backend/internal/config"
	"micro_learning_backend/pkg/database"
	"os"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	log.Println("补种默认主题...")
	if err := database.SeedDefaultTopics(db); err != nil {
		log.Fatalf("播种失败: %v", err)
	}
	log.Println("完成！")
}
