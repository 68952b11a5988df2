package models

import "time"

// CandidateSummary is the live candidate overlay attached to a read.
type CandidateSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Stage string `json:"stage"`
}

// JobSummary is the live job overlay attached to a read.
type JobSummary struct {
	Title      string `json:"title"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

// InterviewView is the display projection returned to callers. ScheduledDate
// is split back into the date and time strings the client submitted; the
// round trip through the stored instant is lossless.
type InterviewView struct {
	ID             string          `json:"id"`
	CandidateID    string          `json:"candidateId"`
	JobID          string          `json:"jobId"`
	CandidateName  string          `json:"candidateName"`
	JobTitle       string          `json:"jobTitle"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	Duration       string          `json:"duration"` // "<n> minutes"
	Type           InterviewType   `json:"type"`
	Interviewers   []string        `json:"interviewers"`
	MeetingDetails MeetingDetails  `json:"meetingDetails"`
	Notes          string          `json:"notes"`
	Status         InterviewStatus `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`

	// Enrichment overlay. A nil summary with the deleted flag set means the
	// reference no longer resolves; the snapshot fields above still render.
	CurrentCandidateInfo *CandidateSummary `json:"currentCandidateInfo"`
	CurrentJobInfo       *JobSummary       `json:"currentJobInfo"`
	CandidateDeleted     bool              `json:"candidateDeleted"`
	JobDeleted           bool              `json:"jobDeleted"`
}

// InterviewPage is one page of a filtered listing.
type InterviewPage struct {
	Interviews []InterviewView `json:"interviews"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Total      int64           `json:"total"`
	HasNext    bool            `json:"hasNext"`
	HasPrev    bool            `json:"hasPrev"`
}

// DailyInterviewStats summarizes one calendar day of upcoming interviews.
type DailyInterviewStats struct {
	Date                string                `json:"date"`
	TotalInterviews     int                   `json:"totalInterviews"`
	InterviewerInitials []string              `json:"interviewerInitials"`
	InterviewsByType    map[InterviewType]int `json:"interviewsByType"`
}
