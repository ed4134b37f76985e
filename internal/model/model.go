package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleStudent   = "student"
	RoleOrganizer = "organizer"
)

const (
	PaymentFree    = "free"
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	ProfilePhoto *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Event struct {
	ID            string
	Title         string
	Description   string
	Date          time.Time
	Location      string
	Price         decimal.Decimal
	Banner        *string
	OrganizerID   string
	AttendeeCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// joined from users, not stored on the row
	OrganizerName string
}

type RSVP struct {
	ID            string
	UserID        string
	EventID       string
	PaymentStatus string
	CreatedAt     time.Time

	// joined for the organizer roster
	UserName  string
	UserEmail string
}

type Comment struct {
	ID        string
	UserID    string
	EventID   string
	Content   string
	CreatedAt time.Time

	// joined from users
	UserName string
}
