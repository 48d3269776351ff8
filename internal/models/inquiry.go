package models

import (
	"time"
)

// Inquiry is a buyer/renter message about a listing, delivered to the owner.
type Inquiry struct {
	ID          int       `json:"id"`
	PropertyID  int       `json:"property_id"`
	UserID      int       `json:"user_id"`
	SenderName  string    `json:"sender_name,omitempty"`
	SenderPhone string    `json:"sender_phone,omitempty"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}
