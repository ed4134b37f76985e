package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"event-management-api/internal/apperr"
	"event-management-api/internal/model"
)

func (h *Handler) CreateEvent(c *gin.Context) {
	var in struct {
		Title       string          `json:"title"`
		Description string          `json:"description"`
		Date        string          `json:"date"`
		Location    string          `json:"location"`
		Price       decimal.Decimal `json:"price"`
		Banner      *string         `json:"banner"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	if in.Title == "" || in.Description == "" || in.Date == "" || in.Location == "" {
		fail(c, apperr.Validation("title, description, date and location are required"))
		return
	}
	date, err := time.Parse(time.RFC3339, in.Date)
	if err != nil {
		fail(c, apperr.Validation("date must be RFC 3339"))
		return
	}
	if !date.After(time.Now()) {
		fail(c, apperr.Validation("date must be in the future"))
		return
	}
	if in.Price.IsNegative() {
		fail(c, apperr.Validation("price cannot be negative"))
		return
	}

	e := &model.Event{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Date:        date,
		Location:    in.Location,
		Price:       in.Price,
		Banner:      in.Banner,
		OrganizerID: uid(c),
	}
	if err := h.store.CreateEvent(c.Request.Context(), e); err != nil {
		fail(c, err)
		return
	}

	created, err := h.store.GetEvent(c.Request.Context(), e.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully",
		"event":   toEventResponse(created),
	})
}

func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.store.ListEvents(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]eventResponse, len(events))
	for i := range events {
		out[i] = toEventResponse(&events[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetEvent(c *gin.Context) {
	e, err := h.store.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(e))
}

// ownedEvent loads the event and enforces that the caller is its organizer.
func (h *Handler) ownedEvent(c *gin.Context, id string) (*model.Event, error) {
	e, err := h.store.GetEvent(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	if e.OrganizerID != uid(c) {
		return nil, apperr.Forbidden("only the organizer of this event may do that")
	}
	return e, nil
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	e, err := h.ownedEvent(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	var in struct {
		Title       *string          `json:"title"`
		Description *string          `json:"description"`
		Date        *string          `json:"date"`
		Location    *string          `json:"location"`
		Price       *decimal.Decimal `json:"price"`
		Banner      *string          `json:"banner"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}

	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Date != nil {
		date, err := time.Parse(time.RFC3339, *in.Date)
		if err != nil {
			fail(c, apperr.Validation("date must be RFC 3339"))
			return
		}
		e.Date = date
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			fail(c, apperr.Validation("price cannot be negative"))
			return
		}
		e.Price = *in.Price
	}
	if in.Banner != nil {
		e.Banner = in.Banner
	}

	if err := h.store.UpdateEvent(c.Request.Context(), e); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully",
		"event":   toEventResponse(e),
	})
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	e, err := h.ownedEvent(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.store.DeleteEvent(c.Request.Context(), e.ID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

func (h *Handler) OrganizerEvents(c *gin.Context) {
	events, err := h.store.ListEventsByOrganizer(c.Request.Context(), uid(c))
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]eventResponse, len(events))
	for i := range events {
		out[i] = toEventResponse(&events[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) EventRSVPs(c *gin.Context) {
	e, err := h.ownedEvent(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	rsvps, err := h.store.ListRSVPsForEvent(c.Request.Context(), e.ID)
	if err != nil {
		fail(c, err)
		return
	}

	type rosterEntry struct {
		ID            string `json:"id"`
		UserName      string `json:"user_name"`
		UserEmail     string `json:"user_email"`
		PaymentStatus string `json:"payment_status"`
		CreatedAt     string `json:"created_at"`
	}
	out := make([]rosterEntry, len(rsvps))
	for i, r := range rsvps {
		out[i] = rosterEntry{
			ID:            r.ID,
			UserName:      r.UserName,
			UserEmail:     r.UserEmail,
			PaymentStatus: r.PaymentStatus,
			CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	c.JSON(http.StatusOK, out)
}
