package models

import (
	"time"
)

// Sport is immutable reference data seeded at startup
type Sport struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for Sport model
func (Sport) TableName() string {
	return "sports"
}
