package models

import "time"

// InterviewType classifies an interview round.
type InterviewType string

const (
	InterviewTypeScreening InterviewType = "screening"
	InterviewTypeTechnical InterviewType = "technical"
	InterviewTypeCultural  InterviewType = "cultural"
	InterviewTypeFinal     InterviewType = "final"
)

// Valid reports whether t is a recognized interview type.
func (t InterviewType) Valid() bool {
	switch t {
	case InterviewTypeScreening, InterviewTypeTechnical, InterviewTypeCultural, InterviewTypeFinal:
		return true
	}
	return false
}

// DefaultDuration returns the default length in minutes for an interview of this type.
func (t InterviewType) DefaultDuration() int {
	switch t {
	case InterviewTypeScreening:
		return 30
	case InterviewTypeTechnical:
		return 60
	case InterviewTypeCultural:
		return 45
	case InterviewTypeFinal:
		return 90
	default:
		return 60
	}
}

// InterviewStatus is the lifecycle label of an interview.
type InterviewStatus string

const (
	StatusScheduled   InterviewStatus = "scheduled"
	StatusCompleted   InterviewStatus = "completed"
	StatusCancelled   InterviewStatus = "cancelled"
	StatusRescheduled InterviewStatus = "rescheduled"
)

func (s InterviewStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusRescheduled:
		return true
	}
	return false
}

// MeetingType describes how the interview is conducted.
type MeetingType string

const (
	MeetingVideo    MeetingType = "video"
	MeetingPhone    MeetingType = "phone"
	MeetingInPerson MeetingType = "in-person"
)

func (m MeetingType) Valid() bool {
	switch m {
	case MeetingVideo, MeetingPhone, MeetingInPerson:
		return true
	}
	return false
}

// MeetingDetails holds the logistics of the interview. Link and Location are
// nullable: a video interview may be scheduled before its link is generated.
type MeetingDetails struct {
	Type     MeetingType `bson:"type" json:"type"`
	Link     *string     `bson:"link" json:"link"`
	Location *string     `bson:"location" json:"location"`
}

// InterviewMetadata carries bookkeeping fields. Records are never hard-deleted;
// deletion flips IsActive to false and stamps DeletedAt/DeletedBy.
type InterviewMetadata struct {
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
	CreatedBy string     `bson:"createdBy" json:"createdBy"`
	IsActive  bool       `bson:"isActive" json:"isActive"`
	DeletedAt *time.Time `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
	DeletedBy string     `bson:"deletedBy,omitempty" json:"deletedBy,omitempty"`
}

// Interview is the persisted scheduling record. CandidateName and JobTitle are
// denormalized snapshots captured at creation time so the record stays
// displayable even if the referenced candidate or job is later removed.
type Interview struct {
	ID             string            `bson:"id" json:"id"`
	CandidateID    string            `bson:"candidateId" json:"candidateId"`
	JobID          string            `bson:"jobId" json:"jobId"`
	CandidateName  string            `bson:"candidateName" json:"candidateName"`
	JobTitle       string            `bson:"jobTitle" json:"jobTitle"`
	ScheduledDate  time.Time         `bson:"scheduledDate" json:"scheduledDate"`
	Duration       int               `bson:"duration" json:"duration"`
	Type           InterviewType     `bson:"type" json:"type"`
	Interviewers   []string          `bson:"interviewers" json:"interviewers"`
	MeetingDetails MeetingDetails    `bson:"meetingDetails" json:"meetingDetails"`
	Notes          string            `bson:"notes" json:"notes"`
	Status         InterviewStatus   `bson:"status" json:"status"`
	Metadata       InterviewMetadata `bson:"metadata" json:"metadata"`
}
