package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"syncnotes.app/api-server/internal/http/dto"
	"syncnotes.app/api-server/internal/http/middleware"
	"syncnotes.app/api-server/internal/service"
)

type NoteHandler struct {
	noteService service.NoteService
}

func NewNoteHandler(noteService service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (h *NoteHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	orgID, ok := pathID(c, "orgID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.noteService.Create(ctx, orgID, caller.ID, req.Title, req.Content, req.IsShared, req.SharedWithRoles)
	if err != nil {
		h.respondError(c, err, "failed to create note")
		return
	}

	c.JSON(http.StatusCreated, dto.ToNoteResponse(note))
}

func (h *NoteHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	orgID, ok := pathID(c, "orgID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}

	notes, err := h.noteService.List(ctx, orgID, caller.ID)
	if err != nil {
		h.respondError(c, err, "failed to list notes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": dto.ToNoteResponses(notes)})
}

func (h *NoteHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	noteID, ok := pathID(c, "noteID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note id"})
		return
	}

	note, err := h.noteService.Get(ctx, noteID, caller.ID)
	if err != nil {
		h.respondError(c, err, "failed to get note")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

func (h *NoteHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	noteID, ok := pathID(c, "noteID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note id"})
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.noteService.Update(ctx, noteID, caller.ID, req.Title, req.Content)
	if err != nil {
		h.respondError(c, err, "failed to update note")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

func (h *NoteHandler) SetSharing(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	noteID, ok := pathID(c, "noteID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note id"})
		return
	}

	var req dto.SetSharingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.noteService.SetSharing(ctx, noteID, caller.ID, req.IsShared, req.SharedWithRoles)
	if err != nil {
		h.respondError(c, err, "failed to update sharing")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

func (h *NoteHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	noteID, ok := pathID(c, "noteID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note id"})
		return
	}

	if err := h.noteService.Delete(ctx, noteID, caller.ID); err != nil {
		h.respondError(c, err, "failed to delete note")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "note deleted"})
}

func (h *NoteHandler) History(c *gin.Context) {
	ctx := c.Request.Context()
	caller := middleware.GetUser(ctx)

	noteID, ok := pathID(c, "noteID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note id"})
		return
	}

	edits, err := h.noteService.History(ctx, noteID, caller.ID)
	if err != nil {
		h.respondError(c, err, "failed to get note history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"edits": dto.ToNoteEditResponses(edits)})
}

func (h *NoteHandler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotMember), errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), fallback, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
