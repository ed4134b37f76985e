package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"event-management-api/internal/apperr"
	"event-management-api/internal/auth"
	"event-management-api/internal/model"
)

type tokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// issueTokens mints the access token and persists a hashed refresh token.
func (h *Handler) issueTokens(c *gin.Context, userID, role string) (tokenPair, error) {
	access, err := auth.MakeToken(userID, role, h.secret, h.accessTTL)
	if err != nil {
		return tokenPair{}, err
	}
	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return tokenPair{}, err
	}
	if _, err := h.store.CreateRefreshToken(c.Request.Context(), userID, hash, time.Now().Add(h.refreshTTL)); err != nil {
		return tokenPair{}, err
	}
	return tokenPair{Token: access, RefreshToken: raw}, nil
}

func (h *Handler) Register(c *gin.Context) {
	var in struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		fail(c, apperr.Validation("name, email and password are required"))
		return
	}
	if len(in.Password) < 8 {
		fail(c, apperr.Validation("password must be at least 8 characters"))
		return
	}
	if in.Role == "" {
		in.Role = model.RoleStudent
	}
	if in.Role != model.RoleStudent && in.Role != model.RoleOrganizer {
		fail(c, apperr.Validation("role must be student or organizer"))
		return
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		fail(c, err)
		return
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	}
	if err := h.store.CreateUser(c.Request.Context(), u); err != nil {
		fail(c, err)
		return
	}

	pair, err := h.issueTokens(c, u.ID, u.Role)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "User registered successfully",
		"token":         pair.Token,
		"refresh_token": pair.RefreshToken,
		"user":          toUserResponse(u),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.Email == "" || in.Password == "" {
		fail(c, apperr.Validation("email and password are required"))
		return
	}

	u, err := h.store.UserByEmail(c.Request.Context(), in.Email)
	if err != nil || !auth.CheckPassword(u.PasswordHash, in.Password) {
		// same answer for unknown email and wrong password
		fail(c, apperr.Unauthenticated("invalid email or password"))
		return
	}

	pair, err := h.issueTokens(c, u.ID, u.Role)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Login successful",
		"token":         pair.Token,
		"refresh_token": pair.RefreshToken,
		"user":          toUserResponse(u),
	})
}

func (h *Handler) Refresh(c *gin.Context) {
	var in struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.RefreshToken == "" {
		fail(c, apperr.Validation("refresh_token is required"))
		return
	}

	ctx := c.Request.Context()
	rt, err := h.store.RefreshTokenByHash(ctx, auth.HashRefreshToken(in.RefreshToken))
	if err != nil {
		fail(c, err)
		return
	}
	if rt.Revoked {
		// reuse of a rotated token: assume theft, revoke the family
		_ = h.store.RevokeAllRefreshTokens(ctx, rt.UserID)
		fail(c, apperr.Unauthenticated("refresh token revoked"))
		return
	}
	if time.Now().After(rt.ExpiresAt) {
		fail(c, apperr.Unauthenticated("refresh token expired"))
		return
	}

	u, err := h.store.UserByID(ctx, rt.UserID)
	if err != nil {
		fail(c, apperr.Unauthenticated("unknown user"))
		return
	}

	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		fail(c, err)
		return
	}
	newID := uuid.New().String()
	if err := h.store.RotateRefreshToken(ctx, rt.ID, newID, u.ID, hash, time.Now().Add(h.refreshTTL)); err != nil {
		fail(c, err)
		return
	}

	access, err := auth.MakeToken(u.ID, u.Role, h.secret, h.accessTTL)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenPair{Token: access, RefreshToken: raw})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.store.RevokeAllRefreshTokens(c.Request.Context(), uid(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *Handler) GetProfile(c *gin.Context) {
	u, err := h.store.UserByID(c.Request.Context(), uid(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(u))
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var in struct {
		Name         *string `json:"name"`
		ProfilePhoto *string `json:"profile_photo"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}

	ctx := c.Request.Context()
	u, err := h.store.UserByID(ctx, uid(c))
	if err != nil {
		fail(c, err)
		return
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			fail(c, apperr.Validation("name cannot be blank"))
			return
		}
		u.Name = *in.Name
	}
	if in.ProfilePhoto != nil {
		u.ProfilePhoto = in.ProfilePhoto
	}

	if err := h.store.UpdateProfile(ctx, u.ID, u.Name, u.ProfilePhoto); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(u))
}
