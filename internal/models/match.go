package models

import (
	"time"
)

type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "scheduled"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusCompleted  MatchStatus = "completed"
)

// MatchStatuses lists every valid status in display order
var MatchStatuses = []MatchStatus{
	MatchStatusScheduled,
	MatchStatusInProgress,
	MatchStatusCompleted,
}

// Valid reports whether s is one of the known statuses
func (s MatchStatus) Valid() bool {
	for _, status := range MatchStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Match is a fixture between two teams of a sport.
// Home and away teams are expected to belong to SportID; this is not enforced.
type Match struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	SportID    uint        `gorm:"not null;index" json:"sport_id"`
	HomeTeamID uint        `gorm:"not null;index" json:"home_team_id"`
	AwayTeamID uint        `gorm:"not null;index" json:"away_team_id"`
	MatchDate  time.Time   `gorm:"not null;index" json:"match_date"`
	Status     MatchStatus `gorm:"size:20;default:scheduled;index" json:"status"`
	HomeScore  int         `gorm:"default:0" json:"home_score"`
	AwayScore  int         `gorm:"default:0" json:"away_score"`
	CreatedAt  time.Time   `json:"created_at"`
}

// TableName specifies the table name for Match model
func (Match) TableName() string {
	return "matches"
}

// MatchRow is the denormalized shape returned by the API: a match joined
// with its sport and both team names.
type MatchRow struct {
	ID           uint        `json:"id"`
	SportID      uint        `json:"sport_id"`
	SportName    string      `json:"sport_name"`
	HomeTeamID   uint        `json:"home_team_id"`
	HomeTeamName string      `json:"home_team_name"`
	AwayTeamID   uint        `json:"away_team_id"`
	AwayTeamName string      `json:"away_team_name"`
	MatchDate    time.Time   `json:"match_date"`
	Status       MatchStatus `json:"status"`
	HomeScore    int         `json:"home_score"`
	AwayScore    int         `json:"away_score"`
	CreatedAt    time.Time   `json:"created_at"`
}

// MatchFilters are the optional predicates of a match listing.
// A zero Limit means no limit; Offset is only honoured together with a Limit.
type MatchFilters struct {
	Sport  string
	Status MatchStatus
	TeamID uint
	Limit  int
	Offset int
}
