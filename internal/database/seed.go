package database

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"sport-predict/internal/models"
	"sport-predict/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	adminUsername = "admin"
	adminPassword = "admin"
	userPassword  = "password"
	seedUserCount = 10
)

// PasswordHasher hashes seed user passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// SeedMockData upserts the reference data inside a single transaction.
// Either every row is written or none is.
func SeedMockData(ctx context.Context, db *gorm.DB, hasher PasswordHasher) error {
	users, err := mockUsers(hasher)
	if err != nil {
		return fmt.Errorf("building seed users: %w", err)
	}

	sports := append([]models.Sport(nil), mockSports...)
	teams := append([]models.Team(nil), mockTeams...)
	matches := mockMatches(time.Now())

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := clause.OnConflict{UpdateAll: true}

		if err := tx.Clauses(upsert).Create(&sports).Error; err != nil {
			return fmt.Errorf("seeding sports: %w", err)
		}
		if err := tx.Clauses(upsert).Create(&teams).Error; err != nil {
			return fmt.Errorf("seeding teams: %w", err)
		}
		if err := tx.Clauses(upsert).Create(&matches).Error; err != nil {
			return fmt.Errorf("seeding matches: %w", err)
		}
		if err := tx.Clauses(upsert).Create(&users).Error; err != nil {
			return fmt.Errorf("seeding users: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("[Seed] Seeded %d sports, %d teams, %d matches, %d users",
		len(sports), len(teams), len(matches), len(users))
	return nil
}

// ClearMockData removes the seeded fixtures and reference data
func ClearMockData(ctx context.Context, db *gorm.DB) error {
	sportIDs := make([]uint, len(mockSports))
	for i, s := range mockSports {
		sportIDs[i] = s.ID
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, q := range []string{
			"DELETE FROM predictions",
			"DELETE FROM matches",
			"DELETE FROM teams",
		} {
			if err := tx.Exec(q).Error; err != nil {
				return fmt.Errorf("executing %q: %w", q, err)
			}
		}
		if err := tx.Where("id IN ?", sportIDs).Delete(&models.Sport{}).Error; err != nil {
			return fmt.Errorf("deleting sports: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Println("[Seed] Mock data cleared successfully")
	return nil
}

// ResetMockData clears then re-seeds the reference data
func ResetMockData(ctx context.Context, db *gorm.DB, hasher PasswordHasher) error {
	if err := ClearMockData(ctx, db); err != nil {
		return err
	}
	return SeedMockData(ctx, db, hasher)
}

func mockUsers(hasher PasswordHasher) ([]models.User, error) {
	adminHash, err := hasher.Hash(adminPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	users := []models.User{{
		ID:           1,
		Username:     adminUsername,
		Email:        "admin@example.com",
		PasswordHash: adminHash,
		CreatedAt:    now,
	}}

	seen := map[string]bool{adminUsername: true}
	for id := uint(2); id <= seedUserCount; id++ {
		username, err := uniqueUsername(seen)
		if err != nil {
			return nil, err
		}
		hash, err := hasher.Hash(userPassword)
		if err != nil {
			return nil, err
		}
		daysAgo, err := utils.RandomInt(730)
		if err != nil {
			return nil, err
		}

		users = append(users, models.User{
			ID:           id,
			Username:     username,
			Email:        strings.ToLower(username) + "@example.com",
			PasswordHash: hash,
			CreatedAt:    now.AddDate(0, 0, -daysAgo),
		})
	}
	return users, nil
}

func uniqueUsername(seen map[string]bool) (string, error) {
	for {
		username, err := utils.GenerateUsername()
		if err != nil {
			return "", err
		}
		if !seen[username] {
			seen[username] = true
			return username, nil
		}
	}
}
