package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skillswap-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
		// Duplicate-key violations must surface as gorm.ErrDuplicatedKey so
		// the swap workflow can report a concurrency conflict.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.Profile{},
		&models.SwapRequest{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Swap history queries scan by participant and recency
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_swap_requests_sender_created ON swap_requests(sender_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for swap_requests sender: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_swap_requests_receiver_created ON swap_requests(receiver_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for swap_requests receiver: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_skills_name ON skills(name)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for skills name: %v\n", err)
	}

	return nil
}

// SeedData populates the database with initial data for development/testing
func SeedData(db *gorm.DB) error {
	var skillCount int64
	db.Model(&models.Skill{}).Count(&skillCount)

	if skillCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	seedSkills := []models.Skill{
		{Name: "Python Programming", Description: "Scripting, automation and backend development", Category: "Technology"},
		{Name: "Graphic Design", Description: "Logos, branding and digital illustration", Category: "Design"},
		{Name: "Guitar", Description: "Acoustic and electric guitar lessons", Category: "Music"},
		{Name: "Spanish", Description: "Conversational Spanish practice", Category: "Languages"},
		{Name: "Photography", Description: "Portrait and landscape photography basics", Category: "Arts"},
		{Name: "Cooking", Description: "Everyday meals and meal prep", Category: "Lifestyle"},
	}

	for _, skill := range seedSkills {
		if err := db.Create(&skill).Error; err != nil {
			fmt.Printf("Warning: Could not create seed skill %s: %v\n", skill.Name, err)
		}
	}

	fmt.Println("Database seeded with starter skill catalog")
	return nil
}
