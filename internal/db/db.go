package db

import (
	"log"

	"canopy/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init 建立数据库连接并迁移表结构。连接显式返回给调用方，
// 由调用方注入到各操作上下文，不暴露包级全局。
func Init(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=canopy port=5432 sslmode=disable TimeZone=Asia/Shanghai"
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(conn); err != nil {
		return nil, err
	}
	log.Println("Database migration completed")

	if err := SeedCategories(conn); err != nil {
		return nil, err
	}

	return conn, nil
}

// Migrate 迁移全部模型，测试里也会对内存库调用
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.User{},
		&models.Site{},
		&models.Category{},
		&models.Community{},
		&models.Post{},
		&models.Comment{},
		&models.Vote{},
		// 审核日志表
		&models.ModRemovePost{},
		&models.ModLockPost{},
		&models.ModStickyPost{},
		&models.ModRemoveComment{},
		&models.ModRemoveCommunity{},
		&models.ModBanFromCommunity{},
		&models.ModBan{},
		&models.ModAddCommunity{},
		&models.ModAdd{},
	)
}

// SeedCategories 预置固定分类，已有数据时跳过
func SeedCategories(conn *gorm.DB) error {
	// 检查是否已有分类数据
	var count int64
	if err := conn.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Categories already seeded, skipping")
		return nil
	}

	// 创建预设分类
	categories := []models.Category{
		{Name: "Discussion"},
		{Name: "Technology"},
		{Name: "Programming"},
		{Name: "Gaming"},
		{Name: "Music"},
		{Name: "Art"},
		{Name: "News"},
		{Name: "Science"},
		{Name: "Meta"},
		{Name: "Other"},
	}

	for _, category := range categories {
		if err := conn.Create(&category).Error; err != nil {
			log.Printf("Failed to create category %s: %v", category.Name, err)
			return err
		}
	}
	log.Println("Initial categories created successfully")
	return nil
}
