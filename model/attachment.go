package model

import "time"

// Attachment is reserved schema. It is migrated so note attachments can
// land without a schema change, but no endpoint operates on it yet.
type Attachment struct {
	ID       string `gorm:"primaryKey" json:"id"`
	NoteID   string `gorm:"index;not null" json:"note_id"`
	Filename string `gorm:"not null" json:"filename"`
	Path     string `gorm:"not null" json:"-"`
	FileType string `json:"file_type"`

	CreatedAt time.Time `json:"created_at"`
}
