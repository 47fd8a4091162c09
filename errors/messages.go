// api/errors/messages.go
package errors

// MessageCode is the success counterpart of ErrorCode, echoed in response
// bodies so the caller can distinguish transition outcomes.
type MessageCode struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var (
	AddLocationSuccess       = MessageCode{Code: "MSG_0001", Message: "New location added successfully"}
	LocationUpdateSuccess    = MessageCode{Code: "MSG_0002", Message: "Location updated successfully"}
	ReactivateSuccess        = MessageCode{Code: "MSG_0003", Message: "Location activated successfully"}
	DecommissionSuccess      = MessageCode{Code: "MSG_0004", Message: "Location decomissioned successfully"}
	StudyMetadataSuccess     = MessageCode{Code: "MSG_0010", Message: "Study metadata saved successfully"}
	ParticipantInviteSuccess = MessageCode{Code: "MSG_0020", Message: "Invitation sent successfully"}
)
