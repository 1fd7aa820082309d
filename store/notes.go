package store

import (
	gonanoid "github.com/matoous/go-nanoid/v2"

	"notedeck/notes-api/model"
)

// ListNotes returns the caller's notes for one location. With folderID
// set it lists that folder, without it lists root-level notes only
// (folder_id IS NULL) - never the whole account.
func (s *Store) ListNotes(userID string, folderID *string) ([]model.Note, error) {
	notes := []model.Note{}

	q := s.DB.Where("user_id = ?", userID)

	if folderID != nil {
		q = q.Where("folder_id = ?", *folderID)
	} else {
		q = q.Where("folder_id IS NULL")
	}

	err := q.Order("created_at asc").Find(&notes).Error
	if err != nil {
		return nil, err
	}

	return notes, nil
}

func (s *Store) CreateNote(userID, title, content string, folderID *string) (*model.Note, error) {
	if folderID != nil {
		owned, err := s.folderOwned(userID, *folderID)
		if err != nil {
			return nil, err
		}

		if !owned {
			return nil, ErrNotFound
		}
	}

	id, err := gonanoid.Generate(idCharset, idLength)
	if err != nil {
		return nil, err
	}

	note := model.Note{
		ID:       id,
		UserID:   userID,
		Title:    title,
		Content:  content,
		FolderID: folderID,
	}

	if err := s.DB.Create(&note).Error; err != nil {
		return nil, err
	}

	return &note, nil
}

// UpdateNote mutates title and/or content of one of the caller's notes.
// Ownership sits inside the match predicate, so a foreign note and a
// nonexistent one both come back as ErrNotFound with zero rows touched.
// gorm refreshes updated_at on every successful match.
func (s *Store) UpdateNote(userID, noteID string, title, content *string) error {
	updates := map[string]any{}

	if title != nil {
		updates["title"] = *title
	}

	if content != nil {
		updates["content"] = *content
	}

	r := s.DB.Model(&model.Note{}).
		Where("id = ? AND user_id = ?", noteID, userID).
		Updates(updates)
	if r.Error != nil {
		return r.Error
	}

	if r.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
