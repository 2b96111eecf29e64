package repository

import (
	"context"
	"fmt"

	"sport-predict/internal/models"
)

// ListSports returns every sport ordered by name
func (r *Repository) ListSports(ctx context.Context) ([]models.Sport, error) {
	sports := []models.Sport{}
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&sports).Error; err != nil {
		return nil, fmt.Errorf("failed to list sports: %w", err)
	}
	return sports, nil
}

// GetSportByID retrieves a sport by ID
func (r *Repository) GetSportByID(ctx context.Context, id uint) (*models.Sport, error) {
	var sport models.Sport
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&sport).Error; err != nil {
		return nil, translate(err)
	}
	return &sport, nil
}

// GetSportByName retrieves a sport by case-insensitive name
func (r *Repository) GetSportByName(ctx context.Context, name string) (*models.Sport, error) {
	var sport models.Sport
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&sport).Error; err != nil {
		return nil, translate(err)
	}
	return &sport, nil
}
