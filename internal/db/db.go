package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AtrioImoveis/realty-scheduler/internal/config"
	"github.com/AtrioImoveis/realty-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Agency{},
		&models.Agent{},
		&models.Client{},
		&models.Currency{},
		&models.Development{},
		&models.Property{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE agencies
        SET timezone = 'America/Sao_Paulo'
        WHERE timezone IS NULL OR timezone = ''
    `)

	seedCurrencies(db)

	return db
}

func seedCurrencies(db *gorm.DB) {
	defaults := []models.Currency{
		{Code: "BRL", Name: "Real", Symbol: "R$"},
		{Code: "USD", Name: "Dólar americano", Symbol: "$"},
		{Code: "EUR", Name: "Euro", Symbol: "€"},
	}

	for _, cur := range defaults {
		var count int64
		db.Model(&models.Currency{}).Where("code = ?", cur.Code).Count(&count)
		if count == 0 {
			db.Create(&cur)
		}
	}
}
