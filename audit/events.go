// api/audit/events.go
package audit

func pc(v PlatformComponent) *PlatformComponent { return &v }
func al(v UserAccessLevel) *UserAccessLevel     { return &v }

// Event definitions emitted by this service. The catalog is populated once
// at init and read-only thereafter.
var (
	SiteAdded = AuditLogEvent{
		EventCode:       "SITE_ADDED_FOR_STUDY",
		Destination:     ParticipantDatastore,
		Source:          pc(ParticipantManager),
		UserAccessLevel: al(AccessLevelStudyAdmin),
	}

	LocationAdded = AuditLogEvent{
		EventCode:       "NEW_LOCATION_ADDED",
		Destination:     ParticipantDatastore,
		Source:          pc(ParticipantManager),
		UserAccessLevel: al(AccessLevelStudyAdmin),
	}

	LocationEdited = AuditLogEvent{
		EventCode:       "LOCATION_EDITED",
		Destination:     ParticipantDatastore,
		Source:          pc(ParticipantManager),
		UserAccessLevel: al(AccessLevelStudyAdmin),
	}

	LocationActivated = AuditLogEvent{
		EventCode:       "LOCATION_ACTIVATED",
		Destination:     ParticipantDatastore,
		Source:          pc(ParticipantManager),
		UserAccessLevel: al(AccessLevelStudyAdmin),
	}

	LocationDecommissioned = AuditLogEvent{
		EventCode:       "LOCATION_DECOMMISSIONED",
		Destination:     ParticipantDatastore,
		Source:          pc(ParticipantManager),
		UserAccessLevel: al(AccessLevelStudyAdmin),
	}

	StudyMetadataReceived = AuditLogEvent{
		EventCode:      "STUDY_METADATA_RECEIVED",
		Destination:    ParticipantDatastore,
		Source:         pc(StudyBuilder),
		ResourceServer: pc(StudyDatastore),
	}

	NotificationDispatched = AuditLogEvent{
		EventCode:   "STUDY_NOTIFICATION_DISPATCHED",
		Destination: ParticipantDatastore,
	}

	ParticipantInvited = AuditLogEvent{
		EventCode:       "PARTICIPANT_INVITATION_EMAIL_SENT",
		Destination:     ParticipantDatastore,
		Source:          pc(ParticipantManager),
		UserAccessLevel: al(AccessLevelStudyAdmin),
	}
)

var eventCatalog = map[string]AuditLogEvent{
	"SiteAdded":              SiteAdded,
	"LocationAdded":          LocationAdded,
	"LocationEdited":         LocationEdited,
	"LocationActivated":      LocationActivated,
	"LocationDecommissioned": LocationDecommissioned,
	"StudyMetadataReceived":  StudyMetadataReceived,
	"NotificationDispatched": NotificationDispatched,
	"ParticipantInvited":     ParticipantInvited,
}

// EventByName looks an event definition up by its registered name.
func EventByName(name string) (AuditLogEvent, bool) {
	ev, ok := eventCatalog[name]
	return ev, ok
}
