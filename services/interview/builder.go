package interview

import (
	"fmt"
	"strings"
	"time"

	"hireflow/models"
)

// CombineDateTime merges a calendar date and a wall-clock time into one local
// instant. The stored instant splits back into the same two strings.
func CombineDateTime(dateStr, timeStr string) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	clock, err := time.Parse(timeLayout, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", timeStr, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local), nil
}

// SplitDateTime is the inverse of CombineDateTime.
func SplitDateTime(t time.Time) (string, string) {
	local := t.In(time.Local)
	return local.Format(dateLayout), local.Format(timeLayout)
}

// buildInterview normalizes validated input into the canonical persisted
// shape: one scheduledDate instant, type-default duration when omitted,
// trimmed strings, notes never null.
func buildInterview(in models.InterviewInput, actorID string, now time.Time) (models.Interview, error) {
	scheduledDate, err := CombineDateTime(in.Date, in.Time)
	if err != nil {
		return models.Interview{}, err
	}

	interviewType := models.InterviewType(strings.TrimSpace(in.Type))
	duration := interviewType.DefaultDuration()
	if in.Duration != nil {
		duration = *in.Duration
	}

	status := models.StatusScheduled
	if in.Status != "" {
		status = models.InterviewStatus(in.Status)
	}

	interviewers := make([]string, 0, len(in.Interviewers))
	for _, name := range in.Interviewers {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			interviewers = append(interviewers, trimmed)
		}
	}

	return models.Interview{
		CandidateID:   strings.TrimSpace(in.CandidateID),
		JobID:         strings.TrimSpace(in.JobID),
		CandidateName: strings.TrimSpace(in.CandidateName),
		JobTitle:      strings.TrimSpace(in.JobTitle),
		ScheduledDate: scheduledDate,
		Duration:      duration,
		Type:          interviewType,
		Interviewers:  interviewers,
		MeetingDetails: models.MeetingDetails{
			Type:     models.MeetingType(strings.TrimSpace(in.MeetingDetails.Type)),
			Link:     normalizeOptional(in.MeetingDetails.Link),
			Location: normalizeOptional(in.MeetingDetails.Location),
		},
		Notes:  strings.TrimSpace(in.Notes),
		Status: status,
		Metadata: models.InterviewMetadata{
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: actorID,
			IsActive:  true,
		},
	}, nil
}

// normalizeOptional trims an optional string; empty becomes nil.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
