package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

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

	color.Cyan("Starting seeder")

	seedRewardTiers(db)
	seedItemCategories(db)
	seedCampaignCategories(db)

	color.Green("Seeding completed")
}

func seedRewardTiers(db *gorm.DB) {
	color.Yellow("Seeding reward tiers")

	tiers := []model.RewardTier{
		{Name: "Silver", PointsRequired: 50, TierOrder: 1},
		{Name: "Gold", PointsRequired: 200, TierOrder: 2},
		{Name: "Diamond", PointsRequired: 500, TierOrder: 3},
	}

	for _, tier := range tiers {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&tier).Error
		if err != nil {
			color.Red("Failed to seed tier %s: %v", tier.Name, err)
		}
	}
}

func seedItemCategories(db *gorm.DB) {
	color.Yellow("Seeding item categories")

	categories := []model.Category{
		{Name: "Clothing", Description: "Clothes, shoes and accessories", Icon: "shirt"},
		{Name: "Food", Description: "Non-perishable food and groceries", Icon: "utensils"},
		{Name: "Furniture", Description: "Furniture and home goods", Icon: "armchair"},
		{Name: "Electronics", Description: "Phones, laptops and appliances", Icon: "laptop"},
		{Name: "Books", Description: "Books and study material", Icon: "book"},
		{Name: "Medical", Description: "Medical supplies and equipment", Icon: "stethoscope"},
		{Name: "Toys", Description: "Toys and games for children", Icon: "puzzle"},
		{Name: "Other", Description: "Everything else", Icon: "box"},
	}

	for _, category := range categories {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&category).Error
		if err != nil {
			color.Red("Failed to seed category %s: %v", category.Name, err)
		}
	}
}

func seedCampaignCategories(db *gorm.DB) {
	color.Yellow("Seeding campaign categories")

	categories := []model.CampaignCategory{
		{Name: "Education", Description: "Schools, scholarships and learning", Icon: "graduation-cap"},
		{Name: "Health", Description: "Medical treatment and public health", Icon: "heart-pulse"},
		{Name: "Disaster Relief", Description: "Emergency and disaster response", Icon: "life-buoy"},
		{Name: "Environment", Description: "Conservation and climate work", Icon: "leaf"},
		{Name: "Poverty", Description: "Food security and basic needs", Icon: "hand-heart"},
		{Name: "Animal Welfare", Description: "Shelters and animal rescue", Icon: "paw-print"},
	}

	for _, category := range categories {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&category).Error
		if err != nil {
			color.Red("Failed to seed campaign category %s: %v", category.Name, err)
		}
	}
}
