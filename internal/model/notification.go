package model

// NotificationType classifies a notification for styling.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationAlert   NotificationType = "alert"
)

// AllNotificationTypes returns every notification type.
func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		NotificationInfo,
		NotificationSuccess,
		NotificationWarning,
		NotificationAlert,
	}
}

// Notification is an alert surfaced in the bell dropdown and the
// notifications view.
type Notification struct {
	// ID is unique within a feed.
	ID string `json:"id"`

	Title   string `json:"title"`
	Message string `json:"message"`

	// Time is a pre-rendered relative label such as "Hace 10 min".
	Time string `json:"time"`

	// Read only ever flips from false to true.
	Read bool `json:"read"`

	Type NotificationType `json:"type"`
}
