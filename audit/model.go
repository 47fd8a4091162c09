// api/audit/model.go
package audit

import "time"

// AuditLogEventRequest is the audit record dispatched to the audit sink.
// Request-derived fields are populated first by FromHTTPRequest; the event
// definition fields are merged in by WithEvent. Immutable once dispatched.
type AuditLogEventRequest struct {
	AppID                         string    `json:"appId,omitempty"`
	AppVersion                    string    `json:"appVersion,omitempty"`
	CorrelationID                 string    `json:"correlationId,omitempty"`
	UserID                        string    `json:"userId,omitempty"`
	Source                        string    `json:"source,omitempty"`
	MobilePlatform                string    `json:"mobilePlatform,omitempty"`
	UserIP                        string    `json:"userIp,omitempty"`
	EventCode                     string    `json:"eventCode"`
	Destination                   string    `json:"destination"`
	UserAccessLevel               string    `json:"userAccessLevel,omitempty"`
	ResourceServer                string    `json:"resourceServer,omitempty"`
	SourceApplicationVersion      string    `json:"sourceApplicationVersion,omitempty"`
	DestinationApplicationVersion string    `json:"destinationApplicationVersion,omitempty"`
	PlatformVersion               string    `json:"platformVersion,omitempty"`
	Occurred                      time.Time `json:"occurred"`
}

// AuditLogEvent is a static event definition: a fixed event code and
// destination, plus optional source, user access level and resource server.
// Definitions are read-only and registered at process start.
type AuditLogEvent struct {
	EventCode       string
	Destination     PlatformComponent
	Source          *PlatformComponent
	UserAccessLevel *UserAccessLevel
	ResourceServer  *PlatformComponent
}
