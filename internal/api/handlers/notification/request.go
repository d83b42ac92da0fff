package notification

import "github.com/mati-tech/microservices1112/internal/model"

// CreateRequest is the body of both send endpoints.
type CreateRequest struct {
	RecipientEmail string  `json:"recipient_email" validate:"required,email,max=255"`
	Subject        string  `json:"subject" validate:"required,max=255"`
	Message        string  `json:"message" validate:"required"`
	Type           string  `json:"notification_type" validate:"omitempty,oneof=email sms push"`
	ServiceSource  *string `json:"service_source" validate:"omitempty,max=100"`
	EventType      *string `json:"event_type" validate:"omitempty,max=100"`
}

func (r CreateRequest) toModel() model.Notification {
	kind := model.Kind(r.Type)
	if kind == "" {
		kind = model.KindEmail
	}

	return model.Notification{
		RecipientEmail: r.RecipientEmail,
		Subject:        r.Subject,
		Message:        r.Message,
		Kind:           kind,
		ServiceSource:  r.ServiceSource,
		EventType:      r.EventType,
	}
}

// StatusResponse is returned by the status endpoint.
type StatusResponse struct {
	ID     int64        `json:"id"`
	Status model.Status `json:"status"`
}

// MessageResponse carries a human readable outcome.
type MessageResponse struct {
	Message string `json:"message"`
}
