package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"syncnotes.app/api-server/common/id"
	"syncnotes.app/api-server/common/logger"
	"syncnotes.app/api-server/internal/cache"
	"syncnotes.app/api-server/internal/model"
	"syncnotes.app/api-server/internal/policy"
	"syncnotes.app/api-server/internal/store"
)

// ErrNoteNotFound covers both missing notes and notes the caller may not
// see, so a response never reveals whether a hidden note exists.
var ErrNoteNotFound = errors.New("note not found")

type NoteService interface {
	Create(ctx context.Context, orgID, callerID int64, title, content string, isShared bool, roles []model.Role) (*model.Note, error)
	Get(ctx context.Context, noteID, callerID int64) (*model.Note, error)
	List(ctx context.Context, orgID, callerID int64) ([]model.Note, error)
	Update(ctx context.Context, noteID, callerID int64, title, content string) (*model.Note, error)
	SetSharing(ctx context.Context, noteID, callerID int64, isShared bool, roles []model.Role) (*model.Note, error)
	Delete(ctx context.Context, noteID, callerID int64) error
	History(ctx context.Context, noteID, callerID int64) ([]model.NoteEdit, error)
}

type noteService struct {
	noteStore       store.NoteStore
	noteEditStore   store.NoteEditStore
	membershipStore store.MembershipStore
	noteCache       cache.NoteCache
	txRunner        TxRunner
}

func NewNoteService(
	noteStore store.NoteStore,
	noteEditStore store.NoteEditStore,
	membershipStore store.MembershipStore,
	noteCache cache.NoteCache,
	txRunner TxRunner,
) NoteService {
	return &noteService{
		noteStore:       noteStore,
		noteEditStore:   noteEditStore,
		membershipStore: membershipStore,
		noteCache:       noteCache,
		txRunner:        txRunner,
	}
}

func (s *noteService) Create(ctx context.Context, orgID, callerID int64, title, content string, isShared bool, roles []model.Role) (*model.Note, error) {
	m, err := s.membership(ctx, callerID, orgID)
	if err != nil {
		return nil, err
	}
	if !policy.CanCreateNote(m) {
		return nil, ErrForbidden
	}

	sharedRoles, shared := normalizeSharing(isShared, roles)
	note := &model.Note{
		ID:              id.New(),
		OrganizationID:  orgID,
		AuthorID:        callerID,
		Title:           title,
		Content:         content,
		IsShared:        shared,
		SharedWithRoles: sharedRoles,
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Notes().Create(ctx, note); err != nil {
			return fmt.Errorf("creating note: %w", err)
		}

		entry := &model.ActivityLog{
			ID:             id.New(),
			OrganizationID: orgID,
			UserID:         callerID,
			Action:         "Created Note",
			Details:        logger.Ptr(note.Title),
		}
		if err := stores.ActivityLogs().Create(ctx, entry); err != nil {
			return fmt.Errorf("recording activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.noteCache.Invalidate(ctx, orgID)

	slog.InfoContext(ctx, "note created",
		"note_id", note.ID,
		"organization_id", orgID,
		"author_id", callerID,
	)

	return note, nil
}

func (s *noteService) Get(ctx context.Context, noteID, callerID int64) (*model.Note, error) {
	note, _, err := s.visibleNote(ctx, noteID, callerID)
	if err != nil {
		return nil, err
	}
	return note, nil
}

// List returns the notes of the organization that are visible to the caller.
// The unfiltered organization listing is cached; visibility is applied per
// caller after the cache.
func (s *noteService) List(ctx context.Context, orgID, callerID int64) ([]model.Note, error) {
	m, err := s.membership(ctx, callerID, orgID)
	if err != nil {
		return nil, err
	}

	notes, ok := s.noteCache.Get(ctx, orgID)
	if !ok {
		notes, err = s.noteStore.ListByOrganization(ctx, orgID)
		if err != nil {
			return nil, fmt.Errorf("listing notes: %w", err)
		}
		s.noteCache.Set(ctx, orgID, notes)
	}

	visible := make([]model.Note, 0, len(notes))
	for i := range notes {
		if policy.CanViewNote(m, &notes[i]) {
			visible = append(visible, notes[i])
		}
	}
	return visible, nil
}

// Update saves the note's prior title and content as an edit snapshot before
// applying the new values, in the same transaction.
func (s *noteService) Update(ctx context.Context, noteID, callerID int64, title, content string) (*model.Note, error) {
	note, m, err := s.visibleNote(ctx, noteID, callerID)
	if err != nil {
		return nil, err
	}
	if !policy.CanEditNote(m, note) {
		return nil, ErrForbidden
	}

	var updated *model.Note
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		snapshot := &model.NoteEdit{
			ID:       id.New(),
			NoteID:   note.ID,
			EditorID: callerID,
			Title:    note.Title,
			Content:  note.Content,
		}
		if err := stores.NoteEdits().Create(ctx, snapshot); err != nil {
			return fmt.Errorf("saving edit snapshot: %w", err)
		}

		updated, err = stores.Notes().Update(ctx, note.ID, title, content)
		if err != nil {
			return fmt.Errorf("updating note: %w", err)
		}

		entry := &model.ActivityLog{
			ID:             id.New(),
			OrganizationID: note.OrganizationID,
			UserID:         callerID,
			Action:         "Updated Note",
			Details:        logger.Ptr(updated.Title),
		}
		if err := stores.ActivityLogs().Create(ctx, entry); err != nil {
			return fmt.Errorf("recording activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.noteCache.Invalidate(ctx, note.OrganizationID)

	slog.InfoContext(ctx, "note updated", "note_id", note.ID, "editor_id", callerID)
	return updated, nil
}

func (s *noteService) SetSharing(ctx context.Context, noteID, callerID int64, isShared bool, roles []model.Role) (*model.Note, error) {
	note, m, err := s.visibleNote(ctx, noteID, callerID)
	if err != nil {
		return nil, err
	}
	if !policy.CanSetSharing(m, note) {
		return nil, ErrForbidden
	}

	sharedRoles, shared := normalizeSharing(isShared, roles)

	var updated *model.Note
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		updated, err = stores.Notes().UpdateSharing(ctx, note.ID, shared, sharedRoles)
		if err != nil {
			return fmt.Errorf("updating sharing: %w", err)
		}

		entry := &model.ActivityLog{
			ID:             id.New(),
			OrganizationID: note.OrganizationID,
			UserID:         callerID,
			Action:         "Updated Note Sharing",
			Details:        logger.Ptr(updated.Title),
		}
		if err := stores.ActivityLogs().Create(ctx, entry); err != nil {
			return fmt.Errorf("recording activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.noteCache.Invalidate(ctx, note.OrganizationID)
	return updated, nil
}

func (s *noteService) Delete(ctx context.Context, noteID, callerID int64) error {
	note, m, err := s.visibleNote(ctx, noteID, callerID)
	if err != nil {
		return err
	}
	if !policy.CanDeleteNote(m, note) {
		return ErrForbidden
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Notes().Delete(ctx, note.ID); err != nil {
			return fmt.Errorf("deleting note: %w", err)
		}

		entry := &model.ActivityLog{
			ID:             id.New(),
			OrganizationID: note.OrganizationID,
			UserID:         callerID,
			Action:         "Deleted Note",
			Details:        logger.Ptr(note.Title),
		}
		if err := stores.ActivityLogs().Create(ctx, entry); err != nil {
			return fmt.Errorf("recording activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.noteCache.Invalidate(ctx, note.OrganizationID)

	slog.InfoContext(ctx, "note deleted", "note_id", note.ID, "caller_id", callerID)
	return nil
}

func (s *noteService) History(ctx context.Context, noteID, callerID int64) ([]model.NoteEdit, error) {
	note, _, err := s.visibleNote(ctx, noteID, callerID)
	if err != nil {
		return nil, err
	}

	edits, err := s.noteEditStore.ListByNote(ctx, note.ID)
	if err != nil {
		return nil, fmt.Errorf("listing edits: %w", err)
	}
	return edits, nil
}

// visibleNote loads the note and the caller's membership in its organization,
// reporting ErrNoteNotFound when either is missing or the note is hidden
// from the caller.
func (s *noteService) visibleNote(ctx context.Context, noteID, callerID int64) (*model.Note, *model.Membership, error) {
	note, err := s.noteStore.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrNoteNotFound
		}
		return nil, nil, fmt.Errorf("getting note: %w", err)
	}

	m, err := s.membershipStore.Get(ctx, callerID, note.OrganizationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrNoteNotFound
		}
		return nil, nil, fmt.Errorf("getting membership: %w", err)
	}

	if !policy.CanViewNote(m, note) {
		return nil, nil, ErrNoteNotFound
	}

	return note, m, nil
}

func (s *noteService) membership(ctx context.Context, userID, orgID int64) (*model.Membership, error) {
	m, err := s.membershipStore.Get(ctx, userID, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotMember
		}
		return nil, fmt.Errorf("getting membership: %w", err)
	}
	return m, nil
}

// normalizeSharing drops invalid and duplicate roles, clears the list when
// sharing is off, and derives the stored flag from the effective role set so
// the pair can never disagree. Sharing with no valid roles is not shared.
func normalizeSharing(isShared bool, roles []model.Role) ([]model.Role, bool) {
	if !isShared {
		return []model.Role{}, false
	}
	normalized := model.ValidRoles(roles)
	return normalized, len(normalized) > 0
}
