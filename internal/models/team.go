package models

import (
	"time"
)

// Team belongs to exactly one sport
type Team struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	SportID   uint      `gorm:"not null;index" json:"sport_id"`
	LogoURL   *string   `gorm:"size:255" json:"logo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Team model
func (Team) TableName() string {
	return "teams"
}

// TeamRow is a team joined with the name of its sport
type TeamRow struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	SportID   uint      `json:"sport_id"`
	SportName string    `json:"sport_name"`
	LogoURL   *string   `json:"logo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
