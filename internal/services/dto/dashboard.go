package dto

// DashboardMetrics backs the admin landing page cards.
type DashboardMetrics struct {
	TotalRegistrations          int64 `json:"total_registrations"`
	TotalMentorshipApplications int64 `json:"total_mentorship_applications"`
	TotalSpeakers               int64 `json:"total_speakers"`
	TotalAwardNominations       int64 `json:"total_award_nominations"`
	PendingApplications         int64 `json:"pending_applications"`
}
