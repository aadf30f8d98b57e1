package core

import "time"

// Notification is an in-app message pushed to connected dashboards.
type Notification struct {
	Audience string    `json:"audience"` // role the notification targets
	Type     string    `json:"type"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	SentAt   time.Time `json:"sentAt"`
}

// NotificationService is any service that can deliver in-app notifications.
type NotificationService interface {
	Publish(n Notification) error
}
