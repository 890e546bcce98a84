package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"syncnotes.app/api-server/core/db/sqlc"
	"syncnotes.app/api-server/internal/model"
)

type noteStore struct {
	queries *sqlc.Queries
}

func newNoteStore(queries *sqlc.Queries) NoteStore {
	return &noteStore{queries: queries}
}

func (s *noteStore) Create(ctx context.Context, note *model.Note) error {
	row, err := s.queries.CreateNote(ctx, sqlc.CreateNoteParams{
		ID:              note.ID,
		OrganizationID:  note.OrganizationID,
		AuthorID:        note.AuthorID,
		Title:           note.Title,
		Content:         note.Content,
		IsShared:        note.IsShared,
		SharedWithRoles: rolesToStrings(note.SharedWithRoles),
	})
	if err != nil {
		return err
	}
	*note = *toNoteModel(row)
	return nil
}

func (s *noteStore) GetByID(ctx context.Context, id int64) (*model.Note, error) {
	row, err := s.queries.GetNoteByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	note := toNoteModel(row.Note)
	note.Author = toUserModel(row.User)
	return note, nil
}

func (s *noteStore) Update(ctx context.Context, id int64, title, content string) (*model.Note, error) {
	row, err := s.queries.UpdateNote(ctx, sqlc.UpdateNoteParams{
		ID:      id,
		Title:   title,
		Content: content,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toNoteModel(row), nil
}

func (s *noteStore) UpdateSharing(ctx context.Context, id int64, isShared bool, roles []model.Role) (*model.Note, error) {
	row, err := s.queries.UpdateNoteSharing(ctx, sqlc.UpdateNoteSharingParams{
		ID:              id,
		IsShared:        isShared,
		SharedWithRoles: rolesToStrings(roles),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toNoteModel(row), nil
}

func (s *noteStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteNote(ctx, id)
}

func (s *noteStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.Note, error) {
	rows, err := s.queries.ListNotesByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Note, len(rows))
	for i, row := range rows {
		note := toNoteModel(row.Note)
		note.Author = toUserModel(row.User)
		result[i] = *note
	}
	return result, nil
}

func toNoteModel(row sqlc.Note) *model.Note {
	return &model.Note{
		ID:              row.ID,
		OrganizationID:  row.OrganizationID,
		AuthorID:        row.AuthorID,
		Title:           row.Title,
		Content:         row.Content,
		IsShared:        row.IsShared,
		SharedWithRoles: stringsToRoles(row.SharedWithRoles),
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}

func rolesToStrings(roles []model.Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

func stringsToRoles(values []string) []model.Role {
	out := make([]model.Role, len(values))
	for i, v := range values {
		out[i] = model.Role(v)
	}
	return out
}
