package models

// MeetingDetailsInput is the raw meeting-details payload on create.
type MeetingDetailsInput struct {
	Type     string  `json:"type"`
	Link     *string `json:"link"`
	Location *string `json:"location"`
}

// InterviewInput is the raw creation payload. Date and Time are kept as the
// two client-facing strings and merged into a single instant by the builder.
type InterviewInput struct {
	CandidateID    string              `json:"candidateId"`
	JobID          string              `json:"jobId"`
	CandidateName  string              `json:"candidateName"`
	JobTitle       string              `json:"jobTitle"`
	Date           string              `json:"date"` // YYYY-MM-DD
	Time           string              `json:"time"` // HH:MM, 24h
	Duration       *int                `json:"duration"`
	Type           string              `json:"type"`
	Interviewers   []string            `json:"interviewers"`
	MeetingDetails MeetingDetailsInput `json:"meetingDetails"`
	Notes          string              `json:"notes"`
	Status         string              `json:"status"`
}

// MeetingDetailsPatch carries partial meeting-details changes; fields left nil
// keep their stored values.
type MeetingDetailsPatch struct {
	Type     *string `json:"type"`
	Link     *string `json:"link"`
	Location *string `json:"location"`
}

// InterviewPatch is a partial update: only non-nil fields are applied.
type InterviewPatch struct {
	CandidateID    *string              `json:"candidateId"`
	Date           *string              `json:"date"`
	Time           *string              `json:"time"`
	Duration       *int                 `json:"duration"`
	Type           *string              `json:"type"`
	Status         *string              `json:"status"`
	Interviewers   *[]string            `json:"interviewers"`
	MeetingDetails *MeetingDetailsPatch `json:"meetingDetails"`
	Notes          *string              `json:"notes"`
}

// TouchesSchedule reports whether the patch changes any field the conflict
// detector cares about.
func (p InterviewPatch) TouchesSchedule() bool {
	return p.Date != nil || p.Time != nil || p.CandidateID != nil
}
