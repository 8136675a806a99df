package migration

import (
	"Wanderpass-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.TokenTransaction{}); err != nil {
		log.Fatalf("Error migrating token transaction table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Attraction{}); err != nil {
		log.Fatalf("Error migrating attraction table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Review{}); err != nil {
		log.Fatalf("Error migrating review table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Trip{}); err != nil {
		log.Fatalf("Error migrating trip table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserTrip{}); err != nil {
		log.Fatalf("Error migrating user trip table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Coupon{}); err != nil {
		log.Fatalf("Error migrating coupon table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserCoupon{}); err != nil {
		log.Fatalf("Error migrating user coupon table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.TreePlanting{}); err != nil {
		log.Fatalf("Error migrating tree planting table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
