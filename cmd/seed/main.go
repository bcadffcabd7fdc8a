package main

import (
	"carexpert-service/internal/app/config"
	"carexpert-service/internal/app/drivers/database"
	"carexpert-service/internal/app/drivers/logger"
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/app/services/core/users"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/utils"
	"context"
	"time"
)

// Seeds the initial admin account. Safe to run repeatedly: an existing
// admin with the same email is left untouched.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig)

	adminName := utils.GetEnvString("ADMIN_NAME", "Administrator")
	adminEmail := utils.GetEnvString("ADMIN_EMAIL", "admin@carexpert.local")
	adminUsername := utils.GetEnvString("ADMIN_USERNAME", "admin")
	adminPassword := utils.GetEnvString("ADMIN_PASSWORD", "")
	if adminPassword == "" {
		log.Fatal("ADMIN_PASSWORD must be set")
	}

	mongoDB := database.NewMongoDB(driverConfig)
	userRepository := users.NewUserMongoRepository(mongoDB, driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := userRepository.FindByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatalf("failed to look up admin user: %v", err)
	}
	if existing != nil {
		log.Infof("admin user %s already exists, nothing to do", adminEmail)
		return
	}

	hashed, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	admin := &models.User{
		Name:     adminName,
		Email:    adminEmail,
		Username: adminUsername,
		Password: hashed,
		Role:     constvars.RoleAdmin,
	}
	admin.SetCreatedAtUpdatedAt()

	adminID, err := userRepository.CreateUser(ctx, admin)
	if err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	log.Infof("admin user created with id %s", adminID)
}
