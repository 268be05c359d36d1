package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"careercompass/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

// AutoMigrate keeps the schema in step with the model structs.
func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&db_models.TestType{},
		&db_models.Test{},
		&db_models.Question{},
		&db_models.AnswerOption{},
		&db_models.CompletedEvaluation{},
		&db_models.UserAnswer{},
		&db_models.EvaluationResult{},
		&db_models.VocationalArea{},
		&db_models.AreaResult{},
		&db_models.Career{},
		&db_models.SpecializationArea{},
		&db_models.CareerRecommendation{},
		&db_models.SpecializationRecommendation{},
		&db_models.FavoriteCareer{},
		&db_models.FavoriteSpecialization{},
	)
	if err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
