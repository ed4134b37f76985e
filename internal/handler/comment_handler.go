package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"event-management-api/internal/apperr"
	"event-management-api/internal/model"
)

func (h *Handler) ListComments(c *gin.Context) {
	comments, err := h.store.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]commentResponse, len(comments))
	for i := range comments {
		out[i] = toCommentResponse(&comments[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateComment(c *gin.Context) {
	var in struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || strings.TrimSpace(in.Content) == "" {
		fail(c, apperr.Validation("comment content is required"))
		return
	}

	ctx := c.Request.Context()
	e, err := h.store.GetEvent(ctx, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	u, err := h.store.UserByID(ctx, uid(c))
	if err != nil {
		fail(c, err)
		return
	}

	cm := &model.Comment{
		ID:       uuid.New().String(),
		UserID:   u.ID,
		EventID:  e.ID,
		Content:  in.Content,
		UserName: u.Name,
	}
	if err := h.store.CreateComment(ctx, cm); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment added successfully",
		"comment": toCommentResponse(cm),
	})
}

// DeleteComment is allowed for the comment's author and for the organizer
// of the comment's event; nobody else.
func (h *Handler) DeleteComment(c *gin.Context) {
	ctx := c.Request.Context()
	cm, organizerID, err := h.store.GetComment(ctx, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	requester := uid(c)
	if requester != cm.UserID && requester != organizerID {
		fail(c, apperr.Forbidden("only the author or the event organizer may delete this comment"))
		return
	}

	if err := h.store.DeleteComment(ctx, cm.ID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
