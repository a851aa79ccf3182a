package repo

import (
	"FileHub/config"
	"FileHub/model"
	"fmt"
	"log"
	"time"

	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// autoMigrateAll migrates all database models.
func autoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(&model.User{}, &model.FileNode{})
}

// OpenMysql opens the MySQL connection and runs migrations.
func OpenMysql() *gorm.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.AppConfig.DBUser,
		config.AppConfig.DBPass,
		config.AppConfig.DBHost,
		config.AppConfig.DBPort,
		config.AppConfig.DBName,
	)
	db, err := gorm.Open(gormMysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("init mysql fail", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("get sql db fail", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := autoMigrateAll(db); err != nil {
		log.Fatal("migrate fail", err)
	}
	log.Println("init mysql success")
	return db
}

// Migrate runs migrations on an already opened database handle. Tests
// use it with the sqlite driver.
func Migrate(db *gorm.DB) error {
	return autoMigrateAll(db)
}
