package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"givebridge-be/internal/model"
	"givebridge-be/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting GORM migration")

	color.Yellow("Step 1: Extensions")
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Red("Warn: setup SQL failed: %v. Continuing.", err)
		}
	}

	color.Yellow("Step 2: AutoMigrate")
	models := []interface{}{
		&model.User{},
		&model.DonorProfile{},
		&model.NGOProfile{},
		&model.ContactMessage{},

		&model.Category{},
		&model.CampaignCategory{},

		&model.DonationItem{},
		&model.DonationImage{},
		&model.DonationClaim{},
		&model.DonationReview{},

		&model.RequestItem{},
		&model.RequestDonation{},

		&model.Campaign{},
		&model.CampaignUpdate{},
		&model.CampaignDonation{},

		&model.RewardTier{},
		&model.UserReward{},

		&model.Notification{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	color.Green("Migration completed: %d tables", len(models))
}
