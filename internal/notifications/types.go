package notifications

import "time"

// Severity indicates how a notification is styled.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityError   Severity = "error"
)

// Notification is a transient, toast-style message. Notifications with an
// empty Session are broadcast to everyone.
type Notification struct {
	ID        string    `json:"id"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	Session   string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
