package model

import (
	"errors"
	"time"
)

// Status is the delivery state of a notification.
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Kind is the delivery channel of a notification.
type Kind string

const (
	KindEmail Kind = "email"
	KindSMS   Kind = "sms"
	KindPush  Kind = "push"
)

// ErrInvalidTransition is returned when a status change is not allowed by the lifecycle.
var ErrInvalidTransition = errors.New("invalid status transition")

// transitions lists the allowed status changes. Sent is terminal.
var transitions = map[Status][]Status{
	StatusPending: {StatusSent, StatusFailed},
	StatusFailed:  {StatusPending},
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusSent, StatusFailed:
		return true
	}
	return false
}

// CanTransition reports whether a notification in status s may move to next.
func (s Status) CanTransition(next Status) bool {
	for _, to := range transitions[s] {
		if to == next {
			return true
		}
	}
	return false
}

// Notification represents a notification entity in the system.
type Notification struct {
	ID             int64      `json:"id"`                // unique identifier assigned by storage
	RecipientEmail string     `json:"recipient_email"`   // destination address
	Subject        string     `json:"subject"`           // short subject line
	Message        string     `json:"message"`           // plain text body
	Kind           Kind       `json:"notification_type"` // delivery channel, only email has a transport
	ServiceSource  *string    `json:"service_source"`    // producing service, e.g. "material_service"
	EventType      *string    `json:"event_type"`        // producing event, e.g. "material_created"
	Status         Status     `json:"status"`            // current lifecycle state
	CreatedAt      time.Time  `json:"created_at"`        // timestamp when the notification was created
	SentAt         *time.Time `json:"sent_at"`           // set only while status is sent
	ErrorMessage   *string    `json:"error_message"`     // set only while status is failed
}

// Filter narrows a notification listing. Empty fields are ignored; set fields are AND-ed.
type Filter struct {
	RecipientEmail string
	Status         Status
	ServiceSource  string
}
