package repository

import (
	"context"
	"fmt"

	"sport-predict/internal/models"

	"gorm.io/gorm"
)

const matchColumns = `
	m.id,
	m.sport_id,
	s.name AS sport_name,
	m.home_team_id,
	ht.name AS home_team_name,
	m.away_team_id,
	awt.name AS away_team_name,
	m.match_date,
	m.status,
	m.home_score,
	m.away_score,
	m.created_at`

// matchesWithNames joins matches to their sport and both teams
func (r *Repository) matchesWithNames(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("matches AS m").
		Joins("JOIN sports s ON m.sport_id = s.id").
		Joins("JOIN teams ht ON m.home_team_id = ht.id").
		Joins("JOIN teams awt ON m.away_team_id = awt.id")
}

// applyMatchFilters adds the AND-ed WHERE conditions shared by the listing
// and count queries
func applyMatchFilters(q *gorm.DB, filters models.MatchFilters) *gorm.DB {
	if filters.Sport != "" {
		q = q.Where("LOWER(s.name) = LOWER(?)", filters.Sport)
	}
	if filters.Status != "" {
		q = q.Where("m.status = ?", filters.Status)
	}
	if filters.TeamID != 0 {
		q = q.Where("(m.home_team_id = ? OR m.away_team_id = ?)", filters.TeamID, filters.TeamID)
	}
	return q
}

// ListMatches returns denormalized matches satisfying filters, earliest first.
// OFFSET is only applied when a LIMIT is also present.
func (r *Repository) ListMatches(ctx context.Context, filters models.MatchFilters) ([]models.MatchRow, error) {
	q := applyMatchFilters(r.matchesWithNames(ctx).Select(matchColumns), filters).
		Order("m.match_date ASC").
		Order("m.id ASC")

	if filters.Limit > 0 {
		q = q.Limit(filters.Limit)
		if filters.Offset > 0 {
			q = q.Offset(filters.Offset)
		}
	}

	rows := []models.MatchRow{}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	if rows == nil {
		rows = []models.MatchRow{}
	}
	return rows, nil
}

// CountMatches counts the matches satisfying filters, ignoring pagination
func (r *Repository) CountMatches(ctx context.Context, filters models.MatchFilters) (int64, error) {
	var total int64
	q := r.db.WithContext(ctx).
		Table("matches AS m").
		Joins("JOIN sports s ON m.sport_id = s.id")
	if err := applyMatchFilters(q, filters).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return total, nil
}

// GetMatchByID returns a single denormalized match
func (r *Repository) GetMatchByID(ctx context.Context, id uint) (*models.MatchRow, error) {
	var rows []models.MatchRow
	err := r.matchesWithNames(ctx).
		Select(matchColumns).
		Where("m.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get match %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}
