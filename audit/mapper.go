// api/audit/mapper.go
package audit

import (
	"net"
	"net/http"
	"time"

	api_errors "github.com/trialdesk/participant-manager/api/errors"
)

// Canonical names used for both header and cookie lookup.
const (
	headerAppID          = "appId"
	headerAppVersion     = "appVersion"
	headerCorrelationID  = "correlationId"
	headerUserID         = "userId"
	headerMobilePlatform = "mobilePlatform"
	headerSource         = "source"
	headerForwardedFor   = "X-FORWARDED-FOR"
)

// FromHTTPRequest builds an AuditLogEventRequest from the inbound request.
// Each field is read from a header of the same name, falling back to a
// same-named cookie. A non-empty source that is not a known platform
// component fails with InvalidSourceName. The mobile platform defaults to
// UNKNOWN and never fails. The request is not mutated.
func FromHTTPRequest(r *http.Request) (AuditLogEventRequest, error) {
	auditRequest := AuditLogEventRequest{
		AppID:         headerOrCookie(r, headerAppID),
		AppVersion:    headerOrCookie(r, headerAppVersion),
		CorrelationID: headerOrCookie(r, headerCorrelationID),
		UserID:        headerOrCookie(r, headerUserID),
	}

	source := headerOrCookie(r, headerSource)
	if source != "" {
		if _, ok := PlatformComponentFromValue(source); !ok {
			return AuditLogEventRequest{}, api_errors.InvalidSourceName
		}
		auditRequest.Source = source
	}

	auditRequest.UserIP = userIP(r)
	auditRequest.MobilePlatform = string(MobilePlatformFromValue(headerOrCookie(r, headerMobilePlatform)))
	return auditRequest, nil
}

// AddAuditEventHeaderParams writes the six extractable fields into headers
// under their canonical names. Existing headers are never overwritten.
func AddAuditEventHeaderParams(headers http.Header, auditRequest AuditLogEventRequest) {
	setIfAbsent(headers, headerUserID, auditRequest.UserID)
	setIfAbsent(headers, headerAppVersion, auditRequest.AppVersion)
	setIfAbsent(headers, headerSource, auditRequest.Source)
	setIfAbsent(headers, headerCorrelationID, auditRequest.CorrelationID)
	setIfAbsent(headers, headerMobilePlatform, auditRequest.MobilePlatform)
	setIfAbsent(headers, headerAppID, auditRequest.AppID)
}

// WithEvent merges a static event definition and the configured application
// version into the request context. Event code and destination are copied
// verbatim; source, user access level and resource server only when the
// definition supplies them. All three version fields receive the same
// configured value, and Occurred is stamped with the assembly time.
func WithEvent(event AuditLogEvent, appVersion string, auditRequest AuditLogEventRequest) AuditLogEventRequest {
	auditRequest.EventCode = event.EventCode
	if event.Source != nil {
		auditRequest.Source = string(*event.Source)
	}
	auditRequest.Destination = string(event.Destination)
	if event.UserAccessLevel != nil {
		auditRequest.UserAccessLevel = string(*event.UserAccessLevel)
	}
	if event.ResourceServer != nil {
		auditRequest.ResourceServer = string(*event.ResourceServer)
	}
	auditRequest.SourceApplicationVersion = appVersion
	auditRequest.DestinationApplicationVersion = appVersion
	auditRequest.PlatformVersion = appVersion
	auditRequest.Occurred = time.Now()
	return auditRequest
}

func headerOrCookie(r *http.Request, name string) string {
	if value := r.Header.Get(name); value != "" {
		return value
	}
	if cookie, err := r.Cookie(name); err == nil {
		return cookie.Value
	}
	return ""
}

func userIP(r *http.Request) string {
	if forwarded := r.Header.Get(headerForwardedFor); forwarded != "" {
		return forwarded
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func setIfAbsent(headers http.Header, name, value string) {
	if headers.Get(name) == "" {
		headers.Set(name, value)
	}
}
