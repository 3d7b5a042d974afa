package models

import "time"

// StandardDescription is a predefined complaint text a resident can pick
// instead of writing a custom description
type StandardDescription struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	IssueType   string    `gorm:"type:varchar(50);index;not null" json:"issueType,omitempty"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
