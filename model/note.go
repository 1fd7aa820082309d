package model

import "time"

type Note struct {
	ID     string `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"index;not null" json:"-"`
	Title  string `gorm:"not null" json:"title"`

	// May carry HTML and LaTeX fragments, stored as-is
	Content string `json:"content"`

	// Nil means the note lives at the user's root level
	FolderID *string `gorm:"index" json:"folder_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
