package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	RegistrationHandler *RegistrationHandler
	MentorshipHandler   *MentorshipHandler
	AwardHandler        *AwardHandler
	SpeakerHandler      *SpeakerHandler
	ProgramHandler      *ProgramHandler
	BlogHandler         *BlogHandler
	ContactHandler      *ContactHandler
	ShowcaseHandler     *ShowcaseHandler
	DashboardHandler    *DashboardHandler
	FileHandler         *FileHandler
}
