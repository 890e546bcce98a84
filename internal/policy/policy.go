// Package policy holds the pure access-control decisions for notes. Every
// function takes the caller's membership in the note's organization (nil when
// the caller is not a member) and returns a plain bool; persistence and
// transport concerns live elsewhere.
package policy

import "syncnotes.app/api-server/internal/model"

// CanViewNote reports whether the member may read the note.
//
// Admins see every note in the organization. Members always see their own
// notes. Otherwise the note must be shared and the member's role must appear
// in the note's shared-with list. Viewers get no author exception: a viewer
// who once authored a note sees it only while it is shared with VIEWER.
func CanViewNote(m *model.Membership, note *model.Note) bool {
	if m == nil || note == nil {
		return false
	}
	if m.OrganizationID != note.OrganizationID {
		return false
	}
	if m.Role == model.RoleAdmin {
		return true
	}
	if m.Role == model.RoleMember && note.AuthorID == m.UserID {
		return true
	}
	return note.IsShared && model.ContainsRole(note.SharedWithRoles, m.Role)
}

// CanCreateNote reports whether the member may create notes in the
// organization. Viewers are read-only.
func CanCreateNote(m *model.Membership) bool {
	if m == nil {
		return false
	}
	return m.Role == model.RoleAdmin || m.Role == model.RoleMember
}

// CanEditNote reports whether the member may change the note's title and
// content. Admins may edit any note; members only their own.
func CanEditNote(m *model.Membership, note *model.Note) bool {
	if m == nil || note == nil {
		return false
	}
	if m.OrganizationID != note.OrganizationID {
		return false
	}
	if m.Role == model.RoleAdmin {
		return true
	}
	return m.Role == model.RoleMember && note.AuthorID == m.UserID
}

// CanDeleteNote mirrors CanEditNote: admins delete any note, members delete
// their own.
func CanDeleteNote(m *model.Membership, note *model.Note) bool {
	return CanEditNote(m, note)
}

// CanSetSharing reports whether the member may change the note's sharing
// flags. The rule matches editing: admins on any note, members on their own.
func CanSetSharing(m *model.Membership, note *model.Note) bool {
	return CanEditNote(m, note)
}

// CanManageMembers reports whether the member may change roles, remove
// members, or send and revoke invitations.
func CanManageMembers(m *model.Membership) bool {
	return m != nil && m.Role == model.RoleAdmin
}
