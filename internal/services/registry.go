package services

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	RegistrationService RegistrationService
	MentorshipService   MentorshipService
	AwardService        AwardService
	SpeakerService      SpeakerService
	ProgramService      ProgramService
	BlogService         BlogService
	ContactService      ContactService
	ShowcaseService     ShowcaseService
	DashboardService    DashboardService
	MediaService        MediaService
}
