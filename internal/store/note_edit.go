package store

import (
	"context"

	"syncnotes.app/api-server/core/db/sqlc"
	"syncnotes.app/api-server/internal/model"
)

type noteEditStore struct {
	queries *sqlc.Queries
}

func newNoteEditStore(queries *sqlc.Queries) NoteEditStore {
	return &noteEditStore{queries: queries}
}

func (s *noteEditStore) Create(ctx context.Context, edit *model.NoteEdit) error {
	row, err := s.queries.CreateNoteEdit(ctx, sqlc.CreateNoteEditParams{
		ID:       edit.ID,
		NoteID:   edit.NoteID,
		EditorID: edit.EditorID,
		Title:    edit.Title,
		Content:  edit.Content,
	})
	if err != nil {
		return err
	}
	*edit = *toNoteEditModel(row)
	return nil
}

func (s *noteEditStore) ListByNote(ctx context.Context, noteID int64) ([]model.NoteEdit, error) {
	rows, err := s.queries.ListNoteEditsByNote(ctx, noteID)
	if err != nil {
		return nil, err
	}
	result := make([]model.NoteEdit, len(rows))
	for i, row := range rows {
		edit := toNoteEditModel(row.NoteEdit)
		edit.Editor = toUserModel(row.User)
		result[i] = *edit
	}
	return result, nil
}

func toNoteEditModel(row sqlc.NoteEdit) *model.NoteEdit {
	return &model.NoteEdit{
		ID:       row.ID,
		NoteID:   row.NoteID,
		EditorID: row.EditorID,
		Title:    row.Title,
		Content:  row.Content,
		EditedAt: row.EditedAt.Time,
	}
}
