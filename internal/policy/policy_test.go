package policy_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"syncnotes.app/api-server/internal/model"
	"syncnotes.app/api-server/internal/policy"
)

func membership(userID, orgID int64, role model.Role) *model.Membership {
	return &model.Membership{ID: 1, UserID: userID, OrganizationID: orgID, Role: role}
}

var _ = Describe("Note policy", func() {
	const (
		orgID    = int64(100)
		authorID = int64(10)
		otherID  = int64(20)
	)

	var note *model.Note

	BeforeEach(func() {
		note = &model.Note{
			ID:             1,
			OrganizationID: orgID,
			AuthorID:       authorID,
			Title:          "Quarterly plan",
			Content:        "draft",
		}
	})

	Describe("CanViewNote", func() {
		It("denies non-members", func() {
			Expect(policy.CanViewNote(nil, note)).To(BeFalse())
		})

		It("denies members of a different organization", func() {
			m := membership(otherID, orgID+1, model.RoleAdmin)
			Expect(policy.CanViewNote(m, note)).To(BeFalse())
		})

		It("allows admins regardless of sharing", func() {
			m := membership(otherID, orgID, model.RoleAdmin)
			Expect(policy.CanViewNote(m, note)).To(BeTrue())
		})

		It("allows the author even when unshared", func() {
			m := membership(authorID, orgID, model.RoleMember)
			Expect(policy.CanViewNote(m, note)).To(BeTrue())
		})

		It("denies other members when the note is not shared", func() {
			m := membership(otherID, orgID, model.RoleMember)
			Expect(policy.CanViewNote(m, note)).To(BeFalse())
		})

		It("denies when shared but the role list is empty", func() {
			note.IsShared = true
			m := membership(otherID, orgID, model.RoleMember)
			Expect(policy.CanViewNote(m, note)).To(BeFalse())
		})

		It("allows a member when MEMBER is in the shared roles", func() {
			note.IsShared = true
			note.SharedWithRoles = []model.Role{model.RoleMember}
			m := membership(otherID, orgID, model.RoleMember)
			Expect(policy.CanViewNote(m, note)).To(BeTrue())
		})

		It("denies a viewer when only MEMBER is in the shared roles", func() {
			note.IsShared = true
			note.SharedWithRoles = []model.Role{model.RoleMember}
			m := membership(otherID, orgID, model.RoleViewer)
			Expect(policy.CanViewNote(m, note)).To(BeFalse())
		})

		It("allows a viewer when VIEWER is in the shared roles", func() {
			note.IsShared = true
			note.SharedWithRoles = []model.Role{model.RoleMember, model.RoleViewer}
			m := membership(otherID, orgID, model.RoleViewer)
			Expect(policy.CanViewNote(m, note)).To(BeTrue())
		})

		It("ignores the role list when is_shared is false", func() {
			note.SharedWithRoles = []model.Role{model.RoleViewer}
			m := membership(otherID, orgID, model.RoleViewer)
			Expect(policy.CanViewNote(m, note)).To(BeFalse())
		})

		It("denies a viewer their own unshared note after a demotion", func() {
			m := membership(authorID, orgID, model.RoleViewer)
			Expect(policy.CanViewNote(m, note)).To(BeFalse())
		})

		It("allows a demoted author only through VIEWER sharing", func() {
			note.IsShared = true
			note.SharedWithRoles = []model.Role{model.RoleViewer}
			m := membership(authorID, orgID, model.RoleViewer)
			Expect(policy.CanViewNote(m, note)).To(BeTrue())
		})
	})

	Describe("CanCreateNote", func() {
		It("allows admins and members but not viewers", func() {
			Expect(policy.CanCreateNote(membership(otherID, orgID, model.RoleAdmin))).To(BeTrue())
			Expect(policy.CanCreateNote(membership(otherID, orgID, model.RoleMember))).To(BeTrue())
			Expect(policy.CanCreateNote(membership(otherID, orgID, model.RoleViewer))).To(BeFalse())
			Expect(policy.CanCreateNote(nil)).To(BeFalse())
		})
	})

	Describe("CanEditNote", func() {
		It("allows admins on any note", func() {
			m := membership(otherID, orgID, model.RoleAdmin)
			Expect(policy.CanEditNote(m, note)).To(BeTrue())
		})

		It("allows members on their own notes only", func() {
			Expect(policy.CanEditNote(membership(authorID, orgID, model.RoleMember), note)).To(BeTrue())
			Expect(policy.CanEditNote(membership(otherID, orgID, model.RoleMember), note)).To(BeFalse())
		})

		It("denies viewers even on shared notes", func() {
			note.IsShared = true
			note.SharedWithRoles = []model.Role{model.RoleViewer}
			Expect(policy.CanEditNote(membership(otherID, orgID, model.RoleViewer), note)).To(BeFalse())
		})

		It("denies a viewer who authored the note before a role change", func() {
			Expect(policy.CanEditNote(membership(authorID, orgID, model.RoleViewer), note)).To(BeFalse())
		})

		It("denies across organizations", func() {
			Expect(policy.CanEditNote(membership(authorID, orgID+1, model.RoleAdmin), note)).To(BeFalse())
		})
	})

	Describe("CanDeleteNote and CanSetSharing", func() {
		It("follow the edit rule", func() {
			admin := membership(otherID, orgID, model.RoleAdmin)
			author := membership(authorID, orgID, model.RoleMember)
			stranger := membership(otherID, orgID, model.RoleMember)

			Expect(policy.CanDeleteNote(admin, note)).To(BeTrue())
			Expect(policy.CanDeleteNote(author, note)).To(BeTrue())
			Expect(policy.CanDeleteNote(stranger, note)).To(BeFalse())

			Expect(policy.CanSetSharing(admin, note)).To(BeTrue())
			Expect(policy.CanSetSharing(author, note)).To(BeTrue())
			Expect(policy.CanSetSharing(stranger, note)).To(BeFalse())
		})
	})

	Describe("CanManageMembers", func() {
		It("is admin-only", func() {
			Expect(policy.CanManageMembers(membership(otherID, orgID, model.RoleAdmin))).To(BeTrue())
			Expect(policy.CanManageMembers(membership(otherID, orgID, model.RoleMember))).To(BeFalse())
			Expect(policy.CanManageMembers(membership(otherID, orgID, model.RoleViewer))).To(BeFalse())
			Expect(policy.CanManageMembers(nil)).To(BeFalse())
		})
	})
})
