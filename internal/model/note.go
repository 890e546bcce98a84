package model

import "time"

type Note struct {
	ID              int64     `json:"id"`
	OrganizationID  int64     `json:"organization_id"`
	AuthorID        int64     `json:"author_id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	IsShared        bool      `json:"is_shared"`
	SharedWithRoles []Role    `json:"shared_with_roles"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Author is populated on list and get paths.
	Author *User `json:"author,omitempty"`
}

// NoteEdit is a snapshot of a note's title and content taken immediately
// before an update, forming the note's edit history.
type NoteEdit struct {
	ID       int64     `json:"id"`
	NoteID   int64     `json:"note_id"`
	EditorID int64     `json:"editor_id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	EditedAt time.Time `json:"edited_at"`

	Editor *User `json:"editor,omitempty"`
}
