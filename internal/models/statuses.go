package models

type ApplicationStatus string
type ContactStatus string
type SessionType string
type AdminRole string

const (
	// Review workflow shared by mentorship applications and award nominations.
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusArchived ContactStatus = "archived"

	SessionTypeKeynote    SessionType = "keynote"
	SessionTypeWorkshop   SessionType = "workshop"
	SessionTypePanel      SessionType = "panel"
	SessionTypeNetworking SessionType = "networking"
	SessionTypeBreak      SessionType = "break"

	AdminRoleAdmin AdminRole = "admin"
)
