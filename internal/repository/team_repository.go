package repository

import (
	"context"
	"fmt"

	"sport-predict/internal/models"

	"gorm.io/gorm"
)

const teamColumns = "t.id, t.name, t.sport_id, s.name AS sport_name, t.logo_url, t.created_at"

func (r *Repository) teamsWithSport(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("teams AS t").
		Select(teamColumns).
		Joins("JOIN sports s ON t.sport_id = s.id")
}

func scanTeams(q *gorm.DB) ([]models.TeamRow, error) {
	teams := []models.TeamRow{}
	if err := q.Scan(&teams).Error; err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []models.TeamRow{}
	}
	return teams, nil
}

// ListTeams returns every team ordered by sport then team name
func (r *Repository) ListTeams(ctx context.Context) ([]models.TeamRow, error) {
	teams, err := scanTeams(r.teamsWithSport(ctx).Order("s.name ASC").Order("t.name ASC"))
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// GetTeamByID retrieves a team by ID
func (r *Repository) GetTeamByID(ctx context.Context, id uint) (*models.TeamRow, error) {
	teams, err := scanTeams(r.teamsWithSport(ctx).Where("t.id = ?", id).Limit(1))
	if err != nil {
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}
	if len(teams) == 0 {
		return nil, ErrNotFound
	}
	return &teams[0], nil
}

// ListTeamsBySport returns the teams of a sport ordered by name
func (r *Repository) ListTeamsBySport(ctx context.Context, sportID uint) ([]models.TeamRow, error) {
	teams, err := scanTeams(r.teamsWithSport(ctx).Where("t.sport_id = ?", sportID).Order("t.name ASC"))
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for sport %d: %w", sportID, err)
	}
	return teams, nil
}
