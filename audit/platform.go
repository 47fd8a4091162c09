// api/audit/platform.go
package audit

// PlatformComponent identifies a known component of the platform. The
// 'source' header is validated against this closed set.
type PlatformComponent string

const (
	MobileApps             PlatformComponent = "MOBILE APPS"
	ParticipantManager     PlatformComponent = "PARTICIPANT MANAGER"
	ParticipantDatastore   PlatformComponent = "PARTICIPANT DATASTORE"
	ResponseDatastore      PlatformComponent = "RESPONSE DATASTORE"
	StudyBuilder           PlatformComponent = "STUDY BUILDER"
	StudyDatastore         PlatformComponent = "STUDY DATASTORE"
	AuthServer             PlatformComponent = "SCIM AUTH SERVER"
	AuditLogService        PlatformComponent = "AUDIT LOG SERVICE"
	CloudStorage           PlatformComponent = "CLOUD STORAGE"
	ParticipantUserService PlatformComponent = "PARTICIPANT USER DATASTORE"
)

var platformComponents = map[string]PlatformComponent{
	string(MobileApps):             MobileApps,
	string(ParticipantManager):     ParticipantManager,
	string(ParticipantDatastore):   ParticipantDatastore,
	string(ResponseDatastore):      ResponseDatastore,
	string(StudyBuilder):           StudyBuilder,
	string(StudyDatastore):         StudyDatastore,
	string(AuthServer):             AuthServer,
	string(AuditLogService):        AuditLogService,
	string(CloudStorage):           CloudStorage,
	string(ParticipantUserService): ParticipantUserService,
}

// PlatformComponentFromValue reports whether v names a known component.
func PlatformComponentFromValue(v string) (PlatformComponent, bool) {
	pc, ok := platformComponents[v]
	return pc, ok
}

// MobilePlatform is the mobile OS reported by the caller. Parsing never
// fails; anything unrecognized maps to MobilePlatformUnknown.
type MobilePlatform string

const (
	MobilePlatformAndroid MobilePlatform = "ANDROID"
	MobilePlatformIOS     MobilePlatform = "IOS"
	MobilePlatformUnknown MobilePlatform = "UNKNOWN"
)

func MobilePlatformFromValue(v string) MobilePlatform {
	switch MobilePlatform(v) {
	case MobilePlatformAndroid:
		return MobilePlatformAndroid
	case MobilePlatformIOS:
		return MobilePlatformIOS
	default:
		return MobilePlatformUnknown
	}
}

// UserAccessLevel is the coarse access level recorded on audit events.
type UserAccessLevel string

const (
	AccessLevelAppUser    UserAccessLevel = "App User"
	AccessLevelStudyAdmin UserAccessLevel = "Study Admin"
	AccessLevelSuperAdmin UserAccessLevel = "Super Admin"
)
