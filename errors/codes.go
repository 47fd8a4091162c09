// api/errors/codes.go
package errors

import "net/http"

// ErrorCode is a typed failure carrying a machine-readable code, the HTTP
// status it maps to at the boundary, and a human-readable description. The
// HTTP layer translates code -> status uniformly; nothing is retried.
type ErrorCode struct {
	Code        string `json:"code"`
	Status      int    `json:"-"`
	Description string `json:"error_description"`
}

func (e ErrorCode) Error() string {
	return e.Description
}

var (
	BadRequest = ErrorCode{
		Code:        "EC_0001",
		Status:      http.StatusBadRequest,
		Description: "Invalid entries found in the submitted form",
	}

	InvalidSourceName = ErrorCode{
		Code:        "EC_0002",
		Status:      http.StatusBadRequest,
		Description: "Invalid 'source' value",
	}

	Unauthorized = ErrorCode{
		Code:        "EC_0003",
		Status:      http.StatusUnauthorized,
		Description: "User is not authenticated",
	}

	UserNotFound = ErrorCode{
		Code:        "EC_0004",
		Status:      http.StatusNotFound,
		Description: "User not found",
	}

	LocationAccessDenied = ErrorCode{
		Code:        "EC_0010",
		Status:      http.StatusForbidden,
		Description: "You do not have permission to manage locations",
	}

	LocationNotFound = ErrorCode{
		Code:        "EC_0011",
		Status:      http.StatusNotFound,
		Description: "Location not found",
	}

	DefaultSiteModifyDenied = ErrorCode{
		Code:        "EC_0012",
		Status:      http.StatusBadRequest,
		Description: "Default site cannot be modified",
	}

	CannotReactivate = ErrorCode{
		Code:        "EC_0013",
		Status:      http.StatusBadRequest,
		Description: "Cannot reactivate an already active location",
	}

	AlreadyDecommissioned = ErrorCode{
		Code:        "EC_0014",
		Status:      http.StatusBadRequest,
		Description: "Location already decomissioned",
	}

	CustomIDExists = ErrorCode{
		Code:        "EC_0015",
		Status:      http.StatusBadRequest,
		Description: "Location ID already used by another location",
	}

	SiteNotFound = ErrorCode{
		Code:        "EC_0020",
		Status:      http.StatusNotFound,
		Description: "Site not found",
	}

	SitePermissionAccessDenied = ErrorCode{
		Code:        "EC_0021",
		Status:      http.StatusForbidden,
		Description: "You do not have permission to manage this site",
	}

	NoNotificationTypeFound = ErrorCode{
		Code:        "EC_0030",
		Status:      http.StatusBadRequest,
		Description: "Notification type is missing or unrecognized",
	}

	NotificationListEmpty = ErrorCode{
		Code:        "EC_0031",
		Status:      http.StatusBadRequest,
		Description: "Notification list is empty",
	}

	PushGatewayFailure = ErrorCode{
		Code:        "EC_0032",
		Status:      http.StatusInternalServerError,
		Description: "Push notification gateway request failed",
	}

	DatabaseOperation = ErrorCode{
		Code:        "EC_0098",
		Status:      http.StatusInternalServerError,
		Description: "Database operation failed",
	}

	InternalServer = ErrorCode{
		Code:        "EC_0099",
		Status:      http.StatusInternalServerError,
		Description: "Internal server error",
	}
)
