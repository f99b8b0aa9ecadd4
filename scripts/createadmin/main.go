package main

import (
	"log"
	"os"

	"coursehub-backend/config"
	"coursehub-backend/database"
	"coursehub-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Creates (or resets the password of) the admin account.
// Usage: ADMIN_EMAIL=... ADMIN_NAME=... ADMIN_PASSWORD=... go run ./scripts/createadmin
func main() {
	config.LoadConfig()
	database.ConnectDb()

	email := os.Getenv("ADMIN_EMAIL")
	name := os.Getenv("ADMIN_NAME")
	password := os.Getenv("ADMIN_PASSWORD")

	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}
	if name == "" {
		name = "Admin"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	hashedStr := string(hashed)

	db := database.Database.Db

	var user models.User
	err = db.Where("email = ?", email).First(&user).Error
	if err == nil {
		user.Name = name
		user.Password = &hashedStr
		user.Role = models.RoleAdmin
		user.Status = "Active"
		if err := db.Save(&user).Error; err != nil {
			log.Fatalf("Failed to update admin: %v", err)
		}
		log.Printf("Admin %s updated", email)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to look up admin: %v", err)
	}

	user = models.User{
		Name:     name,
		Email:    email,
		Password: &hashedStr,
		Role:     models.RoleAdmin,
		Status:   "Active",
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("Admin %s created with id %d", email, user.ID)
}
