package model

import (
	"time"

	"github.com/google/uuid"
)

// DispatchTask asks a worker to deliver a notification. NotificationID is the correlation key; TaskID
// identifies this particular attempt cycle in logs.
type DispatchTask struct {
	TaskID         uuid.UUID `json:"task_id"`
	NotificationID int64     `json:"notification_id"`
	EnqueuedAt     time.Time `json:"enqueued_at"`
}

// NewDispatchTask creates a task for the notification with the given id.
func NewDispatchTask(notificationID int64) DispatchTask {
	return DispatchTask{
		TaskID:         uuid.New(),
		NotificationID: notificationID,
		EnqueuedAt:     time.Now().UTC(),
	}
}
