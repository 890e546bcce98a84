package store

import (
	"context"
	"errors"
	"time"

	"syncnotes.app/api-server/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	SetPassword(ctx context.Context, id int64, name string, passwordHash string) (*model.User, error)
	SetOTP(ctx context.Context, id int64, otp string, expiry time.Time) (*model.User, error)
	ClearOTP(ctx context.Context, id int64) (*model.User, error)
	ConsumeOTP(ctx context.Context, id int64) (*model.User, error)
}

// OrganizationStore defines the contract for organization data access
type OrganizationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*model.Organization, error)
	Create(ctx context.Context, org *model.Organization) error
	Update(ctx context.Context, org *model.Organization) error
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID int64) ([]model.Organization, error)
}

// MembershipStore defines the contract for membership data access
type MembershipStore interface {
	GetByID(ctx context.Context, id int64) (*model.Membership, error)
	Get(ctx context.Context, userID, orgID int64) (*model.Membership, error)
	Create(ctx context.Context, m *model.Membership) error
	UpdateRole(ctx context.Context, id int64, role model.Role) (*model.Membership, error)
	Delete(ctx context.Context, id int64) error
	ListByOrganization(ctx context.Context, orgID int64) ([]model.Member, error)
	CountAdmins(ctx context.Context, orgID int64) (int64, error)
}

// NoteStore defines the contract for note data access
type NoteStore interface {
	GetByID(ctx context.Context, id int64) (*model.Note, error)
	Create(ctx context.Context, note *model.Note) error
	Update(ctx context.Context, id int64, title, content string) (*model.Note, error)
	UpdateSharing(ctx context.Context, id int64, isShared bool, roles []model.Role) (*model.Note, error)
	Delete(ctx context.Context, id int64) error
	ListByOrganization(ctx context.Context, orgID int64) ([]model.Note, error)
}

// NoteEditStore defines the contract for note edit history access
type NoteEditStore interface {
	Create(ctx context.Context, edit *model.NoteEdit) error
	ListByNote(ctx context.Context, noteID int64) ([]model.NoteEdit, error)
}

// InvitationStore defines the contract for invitation data access
type InvitationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Invitation, error)
	GetPending(ctx context.Context, orgID int64, email string) (*model.Invitation, error)
	Create(ctx context.Context, inv *model.Invitation) error
	UpdateStatus(ctx context.Context, id int64, status model.InvitationStatus) (*model.Invitation, error)
	Delete(ctx context.Context, id int64) error
	ListByOrganization(ctx context.Context, orgID int64) ([]model.Invitation, error)
	ListPendingByEmail(ctx context.Context, email string) ([]model.Invitation, error)
}

// ActivityLogStore defines the contract for activity log access
type ActivityLogStore interface {
	Create(ctx context.Context, entry *model.ActivityLog) error
	ListByOrganization(ctx context.Context, orgID int64, limit, offset int32) ([]model.ActivityLog, error)
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	GetByID(ctx context.Context, id int64) (*model.Session, error)
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) error
}
