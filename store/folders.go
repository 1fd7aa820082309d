package store

import (
	gonanoid "github.com/matoous/go-nanoid/v2"

	"notedeck/notes-api/model"
)

func (s *Store) ListFolders(userID string) ([]model.Folder, error) {
	folders := []model.Folder{}

	err := s.DB.
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&folders).
		Error
	if err != nil {
		return nil, err
	}

	return folders, nil
}

// CreateFolder creates a folder for userID. A parent, when given, must
// be one of the caller's own folders. A parent belonging to another
// user is indistinguishable from a missing one.
func (s *Store) CreateFolder(userID, name string, parentID *string) (*model.Folder, error) {
	if parentID != nil {
		owned, err := s.folderOwned(userID, *parentID)
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

	folder := model.Folder{
		ID:       id,
		UserID:   userID,
		Name:     name,
		ParentID: parentID,
	}

	if err := s.DB.Create(&folder).Error; err != nil {
		return nil, err
	}

	return &folder, nil
}

func (s *Store) folderOwned(userID, folderID string) (bool, error) {
	var count int64

	err := s.DB.Model(&model.Folder{}).
		Where("id = ? AND user_id = ?", folderID, userID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
