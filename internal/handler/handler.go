package handler

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"event-management-api/internal/apperr"
	"event-management-api/internal/middleware"
	"event-management-api/internal/model"
	"event-management-api/internal/store"
)

type Handler struct {
	store      *store.Store
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func New(st *store.Store, secret string, accessTTL, refreshTTL time.Duration) *Handler {
	return &Handler{store: st, secret: secret, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func uid(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}

// fail maps any error onto the {code,message} payload; unrecognized errors
// are logged server-side and reach the client only as internal.
func fail(c *gin.Context, err error) {
	e := apperr.From(err)
	if e.Code == apperr.CodeInternal {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(apperr.HTTPStatus(e.Code), e)
}

type userResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	ProfilePhoto *string `json:"profile_photo,omitempty"`
}

func toUserResponse(u *model.User) userResponse {
	return userResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		ProfilePhoto: u.ProfilePhoto,
	}
}

type eventResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Date          string  `json:"date"`
	Location      string  `json:"location"`
	Price         float64 `json:"price"`
	Banner        *string `json:"banner,omitempty"`
	OrganizerName string  `json:"organizer_name"`
	RSVPCount     int     `json:"rsvp_count"`
}

func toEventResponse(e *model.Event) eventResponse {
	return eventResponse{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		Date:          e.Date.UTC().Format(time.RFC3339),
		Location:      e.Location,
		Price:         e.Price.InexactFloat64(),
		Banner:        e.Banner,
		OrganizerName: e.OrganizerName,
		RSVPCount:     e.AttendeeCount,
	}
}

type commentResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	UserName  string `json:"user_name"`
	UserID    string `json:"user_id"`
}

func toCommentResponse(cm *model.Comment) commentResponse {
	return commentResponse{
		ID:        cm.ID,
		Content:   cm.Content,
		Timestamp: cm.CreatedAt.UTC().Format(time.RFC3339),
		UserName:  cm.UserName,
		UserID:    cm.UserID,
	}
}
