package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"event-management-api/internal/apperr"
	"event-management-api/internal/model"
	"event-management-api/internal/monitoring"
)

func (h *Handler) CreateRSVP(c *gin.Context) {
	var in struct {
		EventID string `json:"event_id"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.EventID == "" {
		fail(c, apperr.Validation("event_id is required"))
		return
	}

	ctx := c.Request.Context()
	e, err := h.store.GetEvent(ctx, in.EventID)
	if err != nil {
		fail(c, err)
		return
	}

	status := model.PaymentPending
	if e.Price.IsZero() {
		status = model.PaymentFree
	}
	r := &model.RSVP{
		ID:            uuid.New().String(),
		UserID:        uid(c),
		EventID:       e.ID,
		PaymentStatus: status,
	}
	if err := h.store.CreateRSVP(ctx, r); err != nil {
		monitoring.RecordRSVP("create", string(apperr.From(err).Code))
		fail(c, err)
		return
	}
	monitoring.RecordRSVP("create", "ok")

	c.JSON(http.StatusCreated, gin.H{
		"message":        "RSVP created successfully",
		"payment_status": r.PaymentStatus,
	})
}

func (h *Handler) CancelRSVP(c *gin.Context) {
	if err := h.store.DeleteRSVP(c.Request.Context(), uid(c), c.Param("eventId")); err != nil {
		monitoring.RecordRSVP("cancel", string(apperr.From(err).Code))
		fail(c, err)
		return
	}
	monitoring.RecordRSVP("cancel", "ok")
	c.JSON(http.StatusOK, gin.H{"message": "RSVP cancelled successfully"})
}

func (h *Handler) RSVPStatus(c *gin.Context) {
	r, err := h.store.GetRSVP(c.Request.Context(), uid(c), c.Param("eventId"))
	if err != nil {
		if apperr.From(err).Code == apperr.CodeNotFound {
			c.JSON(http.StatusOK, gin.H{"rsvp_status": "not_rsvpd"})
			return
		}
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"rsvp_status":    "rsvpd",
		"payment_status": r.PaymentStatus,
	})
}
