package service

import (
	"time"

	"syncnotes.app/api-server/internal/cache"
	"syncnotes.app/api-server/internal/mail"
	"syncnotes.app/api-server/internal/store"
)

type Services struct {
	stores        *store.Stores
	txRunner      TxRunner
	mailer        mail.Mailer
	noteCache     cache.NoteCache
	sessionTTL    time.Duration
	invitationTTL time.Duration
}

func NewServices(
	stores *store.Stores,
	txRunner TxRunner,
	mailer mail.Mailer,
	noteCache cache.NoteCache,
	sessionTTL time.Duration,
	invitationTTL time.Duration,
) *Services {
	return &Services{
		stores:        stores,
		txRunner:      txRunner,
		mailer:        mailer,
		noteCache:     noteCache,
		sessionTTL:    sessionTTL,
		invitationTTL: invitationTTL,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.stores.Sessions(), s.mailer, s.txRunner, s.sessionTTL)
}

func (s *Services) Organizations() OrganizationService {
	return NewOrganizationService(s.stores.Organizations(), s.stores.Memberships(), s.txRunner)
}

func (s *Services) Members() MemberService {
	return NewMemberService(s.stores.Memberships(), s.txRunner)
}

func (s *Services) Notes() NoteService {
	return NewNoteService(s.stores.Notes(), s.stores.NoteEdits(), s.stores.Memberships(), s.noteCache, s.txRunner)
}

func (s *Services) Invitations() InvitationService {
	return NewInvitationService(
		s.stores.Invitations(),
		s.stores.Users(),
		s.stores.Memberships(),
		s.stores.Organizations(),
		s.mailer,
		s.txRunner,
		s.invitationTTL,
	)
}

func (s *Services) Activity() ActivityService {
	return NewActivityService(s.stores.ActivityLogs(), s.stores.Memberships())
}
