package models

import (
	"time"
)

// Prediction is a user's forecast for a match. The table is migrated but no
// route reads or writes it; client predictions live in local storage.
type Prediction struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"not null;uniqueIndex:idx_predictions_user_match" json:"user_id"`
	MatchID            uint      `gorm:"not null;uniqueIndex:idx_predictions_user_match" json:"match_id"`
	PredictedWinner    string    `gorm:"size:20;not null" json:"predicted_winner"`
	PredictedHomeScore *int      `json:"predicted_home_score,omitempty"`
	PredictedAwayScore *int      `json:"predicted_away_score,omitempty"`
	Confidence         int       `gorm:"default:50" json:"confidence"`
	CreatedAt          time.Time `json:"created_at"`
}

// TableName specifies the table name for Prediction model
func (Prediction) TableName() string {
	return "predictions"
}
