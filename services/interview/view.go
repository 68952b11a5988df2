package interview

import (
	"fmt"

	"hireflow/models"
)

// formatView projects a persisted interview into its display shape, splitting
// the stored instant back into the date/time strings the client submitted.
func formatView(iv models.Interview) models.InterviewView {
	date, clock := SplitDateTime(iv.ScheduledDate)
	return models.InterviewView{
		ID:             iv.ID,
		CandidateID:    iv.CandidateID,
		JobID:          iv.JobID,
		CandidateName:  iv.CandidateName,
		JobTitle:       iv.JobTitle,
		Date:           date,
		Time:           clock,
		Duration:       fmt.Sprintf("%d minutes", iv.Duration),
		Type:           iv.Type,
		Interviewers:   iv.Interviewers,
		MeetingDetails: iv.MeetingDetails,
		Notes:          iv.Notes,
		Status:         iv.Status,
		CreatedAt:      iv.Metadata.CreatedAt,
		UpdatedAt:      iv.Metadata.UpdatedAt,
	}
}
