package models

import "time"

// ProgramSession is one agenda slot. The speaker reference, when present,
// is a plain string and is not validated against the speakers table.
type ProgramSession struct {
	BaseModel
	Title       string      `gorm:"not null" json:"title"`
	SessionType SessionType `gorm:"not null;index" json:"session_type"`
	StartTime   time.Time   `gorm:"not null;index" json:"start_time"`
	EndTime     time.Time   `gorm:"not null" json:"end_time"`
	Location    string      `json:"location,omitempty"`
	Description string      `gorm:"type:text" json:"description,omitempty"`
	SpeakerName string      `json:"speaker_name,omitempty"`
}

func (ProgramSession) TableName() string {
	return "program_sessions"
}
