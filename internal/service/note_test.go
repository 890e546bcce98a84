package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"syncnotes.app/api-server/common/id"
	"syncnotes.app/api-server/internal/model"
	"syncnotes.app/api-server/internal/service"
	"syncnotes.app/api-server/internal/store"
)

var _ = Describe("NoteService", func() {
	const orgID = int64(10)

	var (
		svc         service.NoteService
		notes       *mockNoteStore
		noteEdits   *mockNoteEditStore
		memberships *mockMembershipStore
		noteCache   *mockNoteCache
		txNotes     *mockNoteStore
		txEdits     *mockNoteEditStore
		txActivity  *mockActivityLogStore
		ctx         context.Context
	)

	withRole := func(role model.Role) {
		memberships.getFn = func(_ context.Context, userID, oID int64) (*model.Membership, error) {
			if oID != orgID {
				return nil, store.ErrNotFound
			}
			return &model.Membership{ID: userID * 10, UserID: userID, OrganizationID: oID, Role: role}, nil
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		notes = &mockNoteStore{}
		noteEdits = &mockNoteEditStore{}
		memberships = &mockMembershipStore{}
		noteCache = &mockNoteCache{}
		txNotes = &mockNoteStore{}
		txEdits = &mockNoteEditStore{}
		txActivity = &mockActivityLogStore{}
		txRunner := &mockTxRunner{
			withTxFn: func(ctx context.Context, fn func(stores service.StoreProvider) error) error {
				return fn(&mockStoreProvider{notes: txNotes, noteEdits: txEdits, activity: txActivity})
			},
		}
		svc = service.NewNoteService(notes, noteEdits, memberships, noteCache, txRunner)
		Expect(id.Init(1)).To(Succeed())
	})

	Describe("Create", func() {
		It("forbids viewers", func() {
			withRole(model.RoleViewer)

			_, err := svc.Create(ctx, orgID, 1, "t", "c", false, nil)
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("creates the note, records activity, and invalidates the cache", func() {
			withRole(model.RoleMember)

			var created *model.Note
			txNotes.createFn = func(_ context.Context, note *model.Note) error {
				created = note
				return nil
			}
			var entry *model.ActivityLog
			txActivity.createFn = func(_ context.Context, e *model.ActivityLog) error {
				entry = e
				return nil
			}
			invalidated := false
			noteCache.invalidateFn = func(_ context.Context, oID int64) {
				Expect(oID).To(Equal(orgID))
				invalidated = true
			}

			note, err := svc.Create(ctx, orgID, 1, "Roadmap", "Q3 plan", true, []model.Role{model.RoleViewer})
			Expect(err).NotTo(HaveOccurred())
			Expect(created).NotTo(BeNil())
			Expect(note.AuthorID).To(Equal(int64(1)))
			Expect(note.SharedWithRoles).To(Equal([]model.Role{model.RoleViewer}))
			Expect(entry.Action).To(Equal("Created Note"))
			Expect(invalidated).To(BeTrue())
		})

		It("clears the role list when sharing is off", func() {
			withRole(model.RoleMember)

			note, err := svc.Create(ctx, orgID, 1, "t", "c", false, []model.Role{model.RoleViewer})
			Expect(err).NotTo(HaveOccurred())
			Expect(note.IsShared).To(BeFalse())
			Expect(note.SharedWithRoles).To(BeEmpty())
		})

		It("drops invalid and duplicate roles", func() {
			withRole(model.RoleAdmin)

			note, err := svc.Create(ctx, orgID, 1, "t", "c", true,
				[]model.Role{model.RoleViewer, model.Role("OWNER"), model.RoleViewer, model.RoleMember})
			Expect(err).NotTo(HaveOccurred())
			Expect(note.SharedWithRoles).To(Equal([]model.Role{model.RoleViewer, model.RoleMember}))
		})

		It("stores the note unshared when the flag is set but no roles survive", func() {
			withRole(model.RoleMember)

			note, err := svc.Create(ctx, orgID, 1, "t", "c", true, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(note.IsShared).To(BeFalse())
			Expect(note.SharedWithRoles).To(BeEmpty())

			note, err = svc.Create(ctx, orgID, 1, "t", "c", true, []model.Role{model.Role("OWNER")})
			Expect(err).NotTo(HaveOccurred())
			Expect(note.IsShared).To(BeFalse())
			Expect(note.SharedWithRoles).To(BeEmpty())
		})
	})

	Describe("Get", func() {
		It("hides unshared notes of other authors behind not-found", func() {
			withRole(model.RoleMember)
			notes.getByIDFn = func(_ context.Context, noteID int64) (*model.Note, error) {
				return &model.Note{ID: noteID, OrganizationID: orgID, AuthorID: 2, IsShared: false}, nil
			}

			_, err := svc.Get(ctx, 500, 1)
			Expect(err).To(MatchError(service.ErrNoteNotFound))
		})

		It("shows a shared note to a listed role", func() {
			withRole(model.RoleViewer)
			notes.getByIDFn = func(_ context.Context, noteID int64) (*model.Note, error) {
				return &model.Note{
					ID: noteID, OrganizationID: orgID, AuthorID: 2,
					IsShared: true, SharedWithRoles: []model.Role{model.RoleViewer},
				}, nil
			}

			note, err := svc.Get(ctx, 500, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(note.ID).To(Equal(int64(500)))
		})

		It("hides notes from non-members", func() {
			notes.getByIDFn = func(_ context.Context, noteID int64) (*model.Note, error) {
				return &model.Note{ID: noteID, OrganizationID: orgID, AuthorID: 2, IsShared: true}, nil
			}

			_, err := svc.Get(ctx, 500, 1)
			Expect(err).To(MatchError(service.ErrNoteNotFound))
		})
	})

	Describe("List", func() {
		orgNotes := []model.Note{
			{ID: 1, OrganizationID: orgID, AuthorID: 1, IsShared: false},
			{ID: 2, OrganizationID: orgID, AuthorID: 2, IsShared: false},
			{ID: 3, OrganizationID: orgID, AuthorID: 2, IsShared: true, SharedWithRoles: []model.Role{model.RoleMember}},
		}

		It("filters the listing to what the caller may see", func() {
			withRole(model.RoleMember)
			notes.listByOrgFn = func(_ context.Context, _ int64) ([]model.Note, error) {
				return orgNotes, nil
			}

			visible, err := svc.List(ctx, orgID, 1)
			Expect(err).NotTo(HaveOccurred())
			// own private note plus the one shared with MEMBER
			Expect(visible).To(HaveLen(2))
			Expect(visible[0].ID).To(Equal(int64(1)))
			Expect(visible[1].ID).To(Equal(int64(3)))
		})

		It("serves from the cache without hitting the store", func() {
			withRole(model.RoleAdmin)
			noteCache.getFn = func(_ context.Context, _ int64) ([]model.Note, bool) {
				return orgNotes, true
			}
			notes.listByOrgFn = func(_ context.Context, _ int64) ([]model.Note, error) {
				Fail("cached listing must not hit the store")
				return nil, nil
			}

			visible, err := svc.List(ctx, orgID, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(visible).To(HaveLen(3))
		})

		It("caches the unfiltered listing on a miss", func() {
			withRole(model.RoleViewer)
			notes.listByOrgFn = func(_ context.Context, _ int64) ([]model.Note, error) {
				return orgNotes, nil
			}

			var cached []model.Note
			noteCache.setFn = func(_ context.Context, _ int64, ns []model.Note) {
				cached = ns
			}

			visible, err := svc.List(ctx, orgID, 1)
			Expect(err).NotTo(HaveOccurred())
			// the cache stores everything, the caller sees nothing
			Expect(cached).To(HaveLen(3))
			Expect(visible).To(BeEmpty())
		})
	})

	Describe("Update", func() {
		existing := &model.Note{ID: 500, OrganizationID: orgID, AuthorID: 1, Title: "Old", Content: "Old body"}

		BeforeEach(func() {
			notes.getByIDFn = func(_ context.Context, noteID int64) (*model.Note, error) {
				n := *existing
				n.ID = noteID
				return &n, nil
			}
		})

		It("snapshots the prior content before applying the new one", func() {
			withRole(model.RoleMember)

			var snapshot *model.NoteEdit
			txEdits.createFn = func(_ context.Context, edit *model.NoteEdit) error {
				snapshot = edit
				return nil
			}
			txNotes.updateFn = func(_ context.Context, noteID int64, title, content string) (*model.Note, error) {
				Expect(snapshot).NotTo(BeNil(), "snapshot must be written before the update")
				return &model.Note{ID: noteID, OrganizationID: orgID, AuthorID: 1, Title: title, Content: content}, nil
			}

			invalidated := false
			noteCache.invalidateFn = func(_ context.Context, _ int64) { invalidated = true }

			updated, err := svc.Update(ctx, 500, 1, "New", "New body")
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.Title).To(Equal("Old"))
			Expect(snapshot.Content).To(Equal("Old body"))
			Expect(snapshot.EditorID).To(Equal(int64(1)))
			Expect(updated.Title).To(Equal("New"))
			Expect(invalidated).To(BeTrue())
		})

		It("forbids members editing someone else's note", func() {
			withRole(model.RoleMember)
			notes.getByIDFn = func(_ context.Context, noteID int64) (*model.Note, error) {
				return &model.Note{
					ID: noteID, OrganizationID: orgID, AuthorID: 2,
					IsShared: true, SharedWithRoles: []model.Role{model.RoleMember},
				}, nil
			}

			_, err := svc.Update(ctx, 500, 1, "New", "New body")
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("lets admins edit any note", func() {
			withRole(model.RoleAdmin)
			notes.getByIDFn = func(_ context.Context, noteID int64) (*model.Note, error) {
				return &model.Note{ID: noteID, OrganizationID: orgID, AuthorID: 2, Title: "Old", Content: "Old body"}, nil
			}
			txNotes.updateFn = func(_ context.Context, noteID int64, title, content string) (*model.Note, error) {
				return &model.Note{ID: noteID, OrganizationID: orgID, AuthorID: 2, Title: title, Content: content}, nil
			}

			updated, err := svc.Update(ctx, 500, 1, "New", "New body")
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Title).To(Equal("New"))
		})
	})

	Describe("SetSharing", func() {
		It("normalizes the role list and records activity", func() {
			withRole(model.RoleMember)
			notes.getByIDFn = func(_ context.Context, noteID int64) (*model.Note, error) {
				return &model.Note{ID: noteID, OrganizationID: orgID, AuthorID: 1, Title: "Roadmap"}, nil
			}

			var gotRoles []model.Role
			txNotes.updateSharingFn = func(_ context.Context, noteID int64, isShared bool, roles []model.Role) (*model.Note, error) {
				gotRoles = roles
				return &model.Note{ID: noteID, OrganizationID: orgID, AuthorID: 1, Title: "Roadmap", IsShared: isShared, SharedWithRoles: roles}, nil
			}
			var entry *model.ActivityLog
			txActivity.createFn = func(_ context.Context, e *model.ActivityLog) error {
				entry = e
				return nil
			}

			_, err := svc.SetSharing(ctx, 500, 1, true, []model.Role{model.Role("OWNER"), model.RoleViewer})
			Expect(err).NotTo(HaveOccurred())
			Expect(gotRoles).To(Equal([]model.Role{model.RoleViewer}))
			Expect(entry.Action).To(Equal("Updated Note Sharing"))
		})

		It("turns sharing off when every supplied role is invalid", func() {
			withRole(model.RoleMember)
			notes.getByIDFn = func(_ context.Context, noteID int64) (*model.Note, error) {
				return &model.Note{ID: noteID, OrganizationID: orgID, AuthorID: 1, Title: "Roadmap"}, nil
			}

			var gotShared bool
			var gotRoles []model.Role
			txNotes.updateSharingFn = func(_ context.Context, noteID int64, isShared bool, roles []model.Role) (*model.Note, error) {
				gotShared = isShared
				gotRoles = roles
				return &model.Note{ID: noteID, OrganizationID: orgID, AuthorID: 1, Title: "Roadmap", IsShared: isShared, SharedWithRoles: roles}, nil
			}

			_, err := svc.SetSharing(ctx, 500, 1, true, []model.Role{model.Role("OWNER")})
			Expect(err).NotTo(HaveOccurred())
			Expect(gotShared).To(BeFalse())
			Expect(gotRoles).To(BeEmpty())
		})
	})

	Describe("Delete", func() {
		It("forbids a shared-role viewer deleting the note", func() {
			withRole(model.RoleViewer)
			notes.getByIDFn = func(_ context.Context, noteID int64) (*model.Note, error) {
				return &model.Note{
					ID: noteID, OrganizationID: orgID, AuthorID: 2,
					IsShared: true, SharedWithRoles: []model.Role{model.RoleViewer},
				}, nil
			}

			err := svc.Delete(ctx, 500, 1)
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("deletes the author's own note and invalidates the cache", func() {
			withRole(model.RoleMember)
			notes.getByIDFn = func(_ context.Context, noteID int64) (*model.Note, error) {
				return &model.Note{ID: noteID, OrganizationID: orgID, AuthorID: 1, Title: "Roadmap"}, nil
			}

			deleted := false
			txNotes.deleteFn = func(_ context.Context, _ int64) error {
				deleted = true
				return nil
			}
			invalidated := false
			noteCache.invalidateFn = func(_ context.Context, _ int64) { invalidated = true }

			Expect(svc.Delete(ctx, 500, 1)).To(Succeed())
			Expect(deleted).To(BeTrue())
			Expect(invalidated).To(BeTrue())
		})
	})

	Describe("History", func() {
		It("hides history of notes the caller cannot see", func() {
			withRole(model.RoleMember)
			notes.getByIDFn = func(_ context.Context, noteID int64) (*model.Note, error) {
				return &model.Note{ID: noteID, OrganizationID: orgID, AuthorID: 2, IsShared: false}, nil
			}

			_, err := svc.History(ctx, 500, 1)
			Expect(err).To(MatchError(service.ErrNoteNotFound))
		})

		It("returns the edit trail of a visible note", func() {
			withRole(model.RoleAdmin)
			notes.getByIDFn = func(_ context.Context, noteID int64) (*model.Note, error) {
				return &model.Note{ID: noteID, OrganizationID: orgID, AuthorID: 2}, nil
			}
			noteEdits.listByNoteFn = func(_ context.Context, noteID int64) ([]model.NoteEdit, error) {
				return []model.NoteEdit{{ID: 1, NoteID: noteID, Title: "Old"}}, nil
			}

			edits, err := svc.History(ctx, 500, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(edits).To(HaveLen(1))
		})
	})
})
