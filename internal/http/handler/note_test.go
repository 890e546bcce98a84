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
	"syncnotes.app/api-server/internal/http/middleware"
	"syncnotes.app/api-server/internal/model"
	"syncnotes.app/api-server/internal/service"
)

func authenticatedAs(user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(middleware.WithUser(c.Request.Context(), user))
		c.Next()
	}
}

var _ = Describe("NoteHandler", func() {
	var (
		router *gin.Engine
		svc    *mockNoteService
	)

	caller := &model.User{ID: 42, Name: "Ada", Email: "ada@example.com"}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		router.Use(authenticatedAs(caller))
		svc = &mockNoteService{}
		h := handler.NewNoteHandler(svc)
		router.POST("/organizations/:orgID/notes", h.Create)
		router.GET("/organizations/:orgID/notes", h.List)
		router.GET("/notes/:noteID", h.Get)
		router.PUT("/notes/:noteID", h.Update)
		router.PUT("/notes/:noteID/sharing", h.SetSharing)
		router.DELETE("/notes/:noteID", h.Delete)
		router.GET("/notes/:noteID/history", h.History)
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
		It("returns 201 with the caller as author", func() {
			svc.createFn = func(_ context.Context, orgID, callerID int64, title, content string, isShared bool, roles []model.Role) (*model.Note, error) {
				Expect(orgID).To(Equal(int64(10)))
				Expect(callerID).To(Equal(int64(42)))
				return &model.Note{
					ID: 500, OrganizationID: orgID, AuthorID: callerID,
					Title: title, Content: content, IsShared: isShared, SharedWithRoles: roles,
				}, nil
			}

			w := do(http.MethodPost, "/organizations/10/notes", map[string]any{
				"title":             "Roadmap",
				"content":           "Q3 plan",
				"is_shared":         true,
				"shared_with_roles": []string{"VIEWER"},
			})

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["id"]).To(Equal("500"))
			Expect(resp["author_id"]).To(Equal("42"))
		})

		It("returns 403 for viewers", func() {
			svc.createFn = func(_ context.Context, _, _ int64, _, _ string, _ bool, _ []model.Role) (*model.Note, error) {
				return nil, service.ErrForbidden
			}

			w := do(http.MethodPost, "/organizations/10/notes", map[string]any{"title": "Roadmap"})

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 400 for a missing title", func() {
			w := do(http.MethodPost, "/organizations/10/notes", map[string]any{"content": "body"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 for a non-numeric organization id", func() {
			w := do(http.MethodPost, "/organizations/abc/notes", map[string]any{"title": "Roadmap"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Get", func() {
		It("returns 404 when the note is hidden from the caller", func() {
			svc.getFn = func(_ context.Context, _, _ int64) (*model.Note, error) {
				return nil, service.ErrNoteNotFound
			}

			w := do(http.MethodGet, "/notes/500", nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns the note with an empty role list instead of null", func() {
			svc.getFn = func(_ context.Context, noteID, _ int64) (*model.Note, error) {
				return &model.Note{ID: noteID, OrganizationID: 10, AuthorID: 42, Title: "Roadmap"}, nil
			}

			w := do(http.MethodGet, "/notes/500", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["shared_with_roles"]).To(Equal([]any{}))
		})
	})

	Describe("List", func() {
		It("returns the visible notes", func() {
			svc.listFn = func(_ context.Context, orgID, callerID int64) ([]model.Note, error) {
				Expect(orgID).To(Equal(int64(10)))
				Expect(callerID).To(Equal(int64(42)))
				return []model.Note{{ID: 1, OrganizationID: orgID, AuthorID: 42, Title: "Mine"}}, nil
			}

			w := do(http.MethodGet, "/organizations/10/notes", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp struct {
				Notes []map[string]any `json:"notes"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Notes).To(HaveLen(1))
		})
	})

	Describe("Update", func() {
		It("returns 403 when the caller may not edit", func() {
			svc.updateFn = func(_ context.Context, _, _ int64, _, _ string) (*model.Note, error) {
				return nil, service.ErrForbidden
			}

			w := do(http.MethodPut, "/notes/500", map[string]any{"title": "New", "content": "body"})

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("SetSharing", func() {
		It("passes the sharing flag and roles through", func() {
			svc.setSharingFn = func(_ context.Context, noteID, _ int64, isShared bool, roles []model.Role) (*model.Note, error) {
				Expect(isShared).To(BeTrue())
				Expect(roles).To(Equal([]model.Role{model.RoleMember}))
				return &model.Note{ID: noteID, OrganizationID: 10, AuthorID: 42, IsShared: isShared, SharedWithRoles: roles}, nil
			}

			w := do(http.MethodPut, "/notes/500/sharing", map[string]any{
				"is_shared":         true,
				"shared_with_roles": []string{"MEMBER"},
			})

			Expect(w.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("Delete", func() {
		It("returns 200 on success", func() {
			deleted := false
			svc.deleteFn = func(_ context.Context, noteID, _ int64) error {
				Expect(noteID).To(Equal(int64(500)))
				deleted = true
				return nil
			}

			w := do(http.MethodDelete, "/notes/500", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(deleted).To(BeTrue())
		})
	})

	Describe("History", func() {
		It("returns the edit snapshots", func() {
			svc.historyFn = func(_ context.Context, noteID, _ int64) ([]model.NoteEdit, error) {
				return []model.NoteEdit{{ID: 1, NoteID: noteID, EditorID: 42, Title: "Old"}}, nil
			}

			w := do(http.MethodGet, "/notes/500/history", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp struct {
				Edits []map[string]any `json:"edits"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Edits).To(HaveLen(1))
			Expect(resp.Edits[0]["title"]).To(Equal("Old"))
		})
	})
})
