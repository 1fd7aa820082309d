package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"notedeck/notes-api/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = conn.AutoMigrate(model.User{}, model.Folder{}, model.Note{}, model.Attachment{})
	require.NoError(t, err)

	return New(conn)
}

func mustCreateUser(t *testing.T, s *Store, email string) *model.User {
	t.Helper()

	user, err := s.CreateUser(email, "hash")
	require.NoError(t, err)

	return user
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateUser("test@x.com", "hash1")
	require.NoError(t, err)

	_, err = s.CreateUser("test@x.com", "hash2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestFindUserByEmail(t *testing.T) {
	s := newTestStore(t)

	created := mustCreateUser(t, s, "test@x.com")

	found, err := s.FindUserByEmail("test@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = s.FindUserByEmail("nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFoldersOrderedByCreation(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "a@b.com")

	for _, name := range []string{"first", "second", "third"} {
		_, err := s.CreateFolder(user.ID, name, nil)
		require.NoError(t, err)

		// sqlite timestamps have limited resolution
		time.Sleep(5 * time.Millisecond)
	}

	folders, err := s.ListFolders(user.ID)
	require.NoError(t, err)
	require.Len(t, folders, 3)

	assert.Equal(t, "first", folders[0].Name)
	assert.Equal(t, "second", folders[1].Name)
	assert.Equal(t, "third", folders[2].Name)
}

func TestListFoldersScopedToOwner(t *testing.T) {
	s := newTestStore(t)
	alice := mustCreateUser(t, s, "alice@x.com")
	bob := mustCreateUser(t, s, "bob@x.com")

	_, err := s.CreateFolder(alice.ID, "private", nil)
	require.NoError(t, err)

	folders, err := s.ListFolders(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, folders)
}

func TestCreateFolderWithParent(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "a@b.com")

	parent, err := s.CreateFolder(user.ID, "parent", nil)
	require.NoError(t, err)

	child, err := s.CreateFolder(user.ID, "child", &parent.ID)
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, parent.ID, *child.ParentID)
}

func TestCreateFolderRejectsForeignParent(t *testing.T) {
	s := newTestStore(t)
	alice := mustCreateUser(t, s, "alice@x.com")
	bob := mustCreateUser(t, s, "bob@x.com")

	parent, err := s.CreateFolder(alice.ID, "alices", nil)
	require.NoError(t, err)

	_, err = s.CreateFolder(bob.ID, "sneaky", &parent.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNotesRootLevelOnly(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "a@b.com")

	folder, err := s.CreateFolder(user.ID, "math", nil)
	require.NoError(t, err)

	rootNote, err := s.CreateNote(user.ID, "at root", "", nil)
	require.NoError(t, err)

	filed, err := s.CreateNote(user.ID, "in folder", "", &folder.ID)
	require.NoError(t, err)

	// No folder filter means root-level notes only
	notes, err := s.ListNotes(user.ID, nil)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, rootNote.ID, notes[0].ID)

	// The filed note shows up only when its folder is asked for
	notes, err = s.ListNotes(user.ID, &folder.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, filed.ID, notes[0].ID)
}

func TestCreateNoteRejectsForeignFolder(t *testing.T) {
	s := newTestStore(t)
	alice := mustCreateUser(t, s, "alice@x.com")
	bob := mustCreateUser(t, s, "bob@x.com")

	folder, err := s.CreateFolder(alice.ID, "alices", nil)
	require.NoError(t, err)

	_, err = s.CreateNote(bob.ID, "sneaky", "", &folder.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateNote(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "a@b.com")

	note, err := s.CreateNote(user.ID, "old title", "old content", nil)
	require.NoError(t, err)

	title := "new title"
	err = s.UpdateNote(user.ID, note.ID, &title, nil)
	require.NoError(t, err)

	var got model.Note
	require.NoError(t, s.DB.First(&got, "id = ?", note.ID).Error)

	assert.Equal(t, "new title", got.Title)
	assert.Equal(t, "old content", got.Content)
	assert.False(t, got.UpdatedAt.Before(note.UpdatedAt))
}

func TestUpdateNoteForeignOwnerUntouched(t *testing.T) {
	s := newTestStore(t)
	alice := mustCreateUser(t, s, "alice@x.com")
	bob := mustCreateUser(t, s, "bob@x.com")

	note, err := s.CreateNote(alice.ID, "alices note", "original", nil)
	require.NoError(t, err)

	title := "defaced"
	err = s.UpdateNote(bob.ID, note.ID, &title, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	var got model.Note
	require.NoError(t, s.DB.First(&got, "id = ?", note.ID).Error)
	assert.Equal(t, "alices note", got.Title)
	assert.Equal(t, "original", got.Content)
}

func TestUpdateNoteMissing(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "a@b.com")

	title := "whatever"
	err := s.UpdateNote(user.ID, "no-such-note", &title, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
