// api/model/notification.go
package model

// Notification types drawn from a closed set.
const (
	NotificationTypeStudy   = "ST"
	NotificationTypeGateway = "GT"
)

// NotificationRequest names a study (internal and external id), an app and a
// notification type.
type NotificationRequest struct {
	StudyID           string `json:"studyId"`
	CustomStudyID     string `json:"customStudyId"`
	AppID             string `json:"appId"`
	NotificationTitle string `json:"notificationTitle"`
	NotificationText  string `json:"notificationText"`
	NotificationType  string `json:"notificationType"`
}

type NotificationForm struct {
	Notifications []NotificationRequest `json:"notifications"`
}

// PushResult is a single delivery outcome reported by the push gateway.
type PushResult struct {
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// PushNotificationResponse is the gateway's multicast response, returned to
// the caller verbatim.
type PushNotificationResponse struct {
	MulticastID int64        `json:"multicast_id"`
	Success     int          `json:"success"`
	Failure     int          `json:"failure"`
	Results     []PushResult `json:"results"`
}
