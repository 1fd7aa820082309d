package model

import "time"

type Folder struct {
	ID     string `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"index;not null" json:"-"`
	Name   string `gorm:"not null" json:"name"`

	// Self-referential, nil means the folder sits at the user's root
	ParentID *string `gorm:"index" json:"parent_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
