package database

import (
	"fmt"
	"log"

	"timesheet-service/internal/model"
	"timesheet-service/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance
var DB *gorm.DB

// Initialize opens the database connection and migrates the models
func Initialize(dbConfig *config.DBConfig) error {
	var err error

	// DisableAutoPrepare prevents "prepared statement already exists" errors
	pgConfig := postgres.Config{
		DSN:                  dbConfig.GetDSN(),
		PreferSimpleProtocol: true,
	}

	DB, err = gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: logger.Default.LogMode(dbConfig.LogLevel),
	})
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("Failed to get database object: %v", err)
		return err
	}

	// Connection pool settings from config
	sqlDB.SetMaxIdleConns(dbConfig.MaxIdleConns)
	sqlDB.SetMaxOpenConns(dbConfig.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(dbConfig.ConnMaxLifetime)

	err = DB.AutoMigrate(
		&model.Tenant{},
		&model.Client{},
		&model.Member{},
		&model.Project{},
		&model.Task{},
		&model.TimeLog{},
		&model.ApprovalType{},
		&model.Attendance{},
	)
	if err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	fmt.Println("Database connected and migrated successfully")
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
