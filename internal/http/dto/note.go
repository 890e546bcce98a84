package dto

import (
	"time"

	"syncnotes.app/api-server/internal/model"
)

type CreateNoteRequest struct {
	Title           string       `json:"title" binding:"required,min=1,max=500"`
	Content         string       `json:"content"`
	IsShared        bool         `json:"is_shared"`
	SharedWithRoles []model.Role `json:"shared_with_roles,omitempty"`
}

type UpdateNoteRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=500"`
	Content string `json:"content"`
}

type SetSharingRequest struct {
	IsShared        bool         `json:"is_shared"`
	SharedWithRoles []model.Role `json:"shared_with_roles,omitempty"`
}

type NoteResponse struct {
	ID              int64         `json:"id,string"`
	OrganizationID  int64         `json:"organization_id,string"`
	AuthorID        int64         `json:"author_id,string"`
	Title           string        `json:"title"`
	Content         string        `json:"content"`
	IsShared        bool          `json:"is_shared"`
	SharedWithRoles []model.Role  `json:"shared_with_roles"`
	Author          *UserResponse `json:"author,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func ToNoteResponse(note *model.Note) *NoteResponse {
	resp := &NoteResponse{
		ID:              note.ID,
		OrganizationID:  note.OrganizationID,
		AuthorID:        note.AuthorID,
		Title:           note.Title,
		Content:         note.Content,
		IsShared:        note.IsShared,
		SharedWithRoles: note.SharedWithRoles,
		CreatedAt:       note.CreatedAt,
		UpdatedAt:       note.UpdatedAt,
	}
	if resp.SharedWithRoles == nil {
		resp.SharedWithRoles = []model.Role{}
	}
	if note.Author != nil {
		resp.Author = ToUserResponse(note.Author)
	}
	return resp
}

func ToNoteResponses(notes []model.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, *ToNoteResponse(&notes[i]))
	}
	return out
}

type NoteEditResponse struct {
	ID       int64         `json:"id,string"`
	NoteID   int64         `json:"note_id,string"`
	EditorID int64         `json:"editor_id,string"`
	Title    string        `json:"title"`
	Content  string        `json:"content"`
	Editor   *UserResponse `json:"editor,omitempty"`
	EditedAt time.Time     `json:"edited_at"`
}

func ToNoteEditResponses(edits []model.NoteEdit) []NoteEditResponse {
	out := make([]NoteEditResponse, 0, len(edits))
	for i := range edits {
		edit := &edits[i]
		resp := NoteEditResponse{
			ID:       edit.ID,
			NoteID:   edit.NoteID,
			EditorID: edit.EditorID,
			Title:    edit.Title,
			Content:  edit.Content,
			EditedAt: edit.EditedAt,
		}
		if edit.Editor != nil {
			resp.Editor = ToUserResponse(edit.Editor)
		}
		out = append(out, resp)
	}
	return out
}
