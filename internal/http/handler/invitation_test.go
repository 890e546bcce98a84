package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"syncnotes.app/api-server/internal/http/handler"
	"syncnotes.app/api-server/internal/model"
	"syncnotes.app/api-server/internal/service"
)

var _ = Describe("InvitationHandler", func() {
	var (
		router *gin.Engine
		svc    *mockInvitationService
	)

	caller := &model.User{ID: 42, Name: "Ada", Email: "ada@example.com"}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		router.Use(authenticatedAs(caller))
		svc = &mockInvitationService{}
		h := handler.NewInvitationHandler(svc)
		router.POST("/organizations/:orgID/invitations", h.Create)
		router.GET("/organizations/:orgID/invitations", h.ListForOrganization)
		router.DELETE("/organizations/:orgID/invitations/:invitationID", h.Revoke)
		router.GET("/invitations", h.ListMine)
		router.POST("/invitations/:invitationID/accept", h.Accept)
		router.POST("/invitations/:invitationID/reject", h.Reject)
	})

	do := func(method, path string, payload map[string]any) *httptest.ResponseRecorder {
		var req *http.Request
		if payload != nil {
			body, err := json.Marshal(payload)
			Expect(err).NotTo(HaveOccurred())
			req = httptest.NewRequest(method, path, bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(method, path, nil)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("Create", func() {
		It("returns 201 with the invitation", func() {
			svc.createFn = func(_ context.Context, orgID, callerID int64, email string, role model.Role) (*model.Invitation, error) {
				Expect(orgID).To(Equal(int64(10)))
				Expect(callerID).To(Equal(int64(42)))
				return &model.Invitation{
					ID: 900, OrganizationID: orgID, Email: email,
					Role: role, Status: model.InvitationPending, InvitedByID: callerID,
				}, nil
			}

			w := do(http.MethodPost, "/organizations/10/invitations", map[string]any{
				"email": "new@example.com",
				"role":  "MEMBER",
			})

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["status"]).To(Equal("PENDING"))
		})

		It("returns 409 when a pending invitation already exists", func() {
			svc.createFn = func(_ context.Context, _, _ int64, _ string, _ model.Role) (*model.Invitation, error) {
				return nil, service.ErrInvitePendingExists
			}

			w := do(http.MethodPost, "/organizations/10/invitations", map[string]any{
				"email": "new@example.com",
				"role":  "MEMBER",
			})

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("returns 400 for an invalid role", func() {
			svc.createFn = func(_ context.Context, _, _ int64, _ string, _ model.Role) (*model.Invitation, error) {
				return nil, service.ErrInvalidRole
			}

			w := do(http.MethodPost, "/organizations/10/invitations", map[string]any{
				"email": "new@example.com",
				"role":  "OWNER",
			})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Accept", func() {
		It("returns the accepted invitation", func() {
			svc.acceptFn = func(_ context.Context, invitationID, callerID int64) (*model.Invitation, error) {
				Expect(invitationID).To(Equal(int64(900)))
				Expect(callerID).To(Equal(int64(42)))
				return &model.Invitation{ID: invitationID, OrganizationID: 10, Status: model.InvitationAccepted}, nil
			}

			w := do(http.MethodPost, "/invitations/900/accept", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["status"]).To(Equal("ACCEPTED"))
		})

		It("returns 410 for a lapsed invitation", func() {
			svc.acceptFn = func(_ context.Context, _, _ int64) (*model.Invitation, error) {
				return nil, service.ErrInviteExpired
			}

			w := do(http.MethodPost, "/invitations/900/accept", nil)

			Expect(w.Code).To(Equal(http.StatusGone))
		})

		It("returns 404 for an invitation addressed to someone else", func() {
			svc.acceptFn = func(_ context.Context, _, _ int64) (*model.Invitation, error) {
				return nil, service.ErrInviteNotFound
			}

			w := do(http.MethodPost, "/invitations/900/accept", nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("ListMine", func() {
		It("returns the caller's pending invitations", func() {
			svc.listForUserFn = func(_ context.Context, callerID int64) ([]model.Invitation, error) {
				Expect(callerID).To(Equal(int64(42)))
				return []model.Invitation{{ID: 900, OrganizationID: 10, Status: model.InvitationPending}}, nil
			}

			w := do(http.MethodGet, "/invitations", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp struct {
				Invitations []map[string]any `json:"invitations"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Invitations).To(HaveLen(1))
		})
	})

	Describe("Revoke", func() {
		It("returns 409 for a resolved invitation", func() {
			svc.revokeFn = func(_ context.Context, _, _, _ int64) error {
				return service.ErrInviteNotPending
			}

			w := do(http.MethodDelete, "/organizations/10/invitations/900", nil)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("returns 200 on success", func() {
			revoked := false
			svc.revokeFn = func(_ context.Context, orgID, invitationID, _ int64) error {
				Expect(orgID).To(Equal(int64(10)))
				Expect(invitationID).To(Equal(int64(900)))
				revoked = true
				return nil
			}

			w := do(http.MethodDelete, "/organizations/10/invitations/900", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(revoked).To(BeTrue())
		})
	})
})
