// Command create-admin generates a dashboard account with a random username and password.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"

	"gorm.io/gorm"

	"corpsite-backend/internal/config"
	"corpsite-backend/internal/database"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/utilities"
)

// generateRandomString creates a random hex string of length 2n
func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal(err)
	}
	return hex.EncodeToString(bytes)
}

// generateUniqueUsername tries until a unique username is found
func generateUniqueUsername(ctx context.Context, db *gorm.DB, prefix string) (string, error) {
	for {
		username := prefix + "_" + generateRandomString(4)
		var count int64
		if err := db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return username, nil
		}
	}
}

func main() {
	role := flag.String("role", model.RoleAdmin, "role of the new account: admin or hr")
	flag.Parse()
	if *role != model.RoleAdmin && *role != model.RoleHR {
		log.Fatalf("unknown role %q", *role)
	}

	ctx := context.Background()
	cfg := config.MustLoad()
	db, err := database.NewDBInstance(ctx, cfg.Database, config.AdminConfig{})
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}
	defer db.Close()

	username, err := generateUniqueUsername(ctx, db.DB, *role)
	if err != nil {
		log.Fatalf("failed to pick username: %v", err)
	}
	password := generateRandomString(8)

	var user model.User
	if *role == model.RoleAdmin {
		user, err = utilities.CreateAdmin(ctx, db.DB, username, password)
	} else {
		user, err = createHR(ctx, db.DB, username, password)
	}
	if err != nil {
		log.Fatal(err)
	}

	// Print credentials (only show plain password here!)
	fmt.Println("Credentials generated successfully!")
	fmt.Println("======================================")
	fmt.Printf("Role:     %s\n", user.Role)
	fmt.Printf("Username: %s\n", user.Username)
	fmt.Printf("Password: %s\n", password)
	fmt.Println("======================================")
}

func createHR(ctx context.Context, db *gorm.DB, username, password string) (model.User, error) {
	hashed, err := utilities.HashPassword(password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user := model.User{Username: username, Password: hashed, Role: model.RoleHR, FullName: "HR"}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return model.User{}, fmt.Errorf("failed to create hr user: %w", err)
	}
	return user, nil
}
