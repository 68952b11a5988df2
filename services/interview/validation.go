package interview

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"hireflow/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	minDuration  = 15
	maxDuration  = 480
	durationStep = 15

	// Business hours, minutes from midnight. 18:00 exactly is allowed.
	businessDayStart = 8 * 60
	businessDayEnd   = 18 * 60

	maxAdvanceDays  = 365
	maxInterviewers = 10
	maxNameLen      = 100
	maxLinkLen      = 500
	maxLocationLen  = 200
	maxNotesLen     = 2000
)

// Validator runs the multi-stage validation pipeline. Every facet is checked
// independently so the caller gets the full list of violations in one pass.
// nowFn is a plain field so tests can pin the clock.
type Validator struct {
	nowFn func() time.Time
}

func NewValidator() *Validator {
	return &Validator{nowFn: time.Now}
}

// ValidateCreate checks a raw creation payload. Returns nil or a ServiceError
// with every violated field.
func (v *Validator) ValidateCreate(in models.InterviewInput) error {
	var fields []FieldError

	fields = append(fields, checkReferenceID("candidateId", in.CandidateID)...)
	fields = append(fields, checkReferenceID("jobId", in.JobID)...)
	fields = append(fields, checkDisplayName("candidateName", in.CandidateName)...)
	fields = append(fields, checkDisplayName("jobTitle", in.JobTitle)...)
	fields = append(fields, checkInterviewType("type", in.Type)...)
	fields = append(fields, v.checkSchedule("date", "time", in.Date, in.Time)...)
	fields = append(fields, checkDuration("duration", in.Duration)...)
	fields = append(fields, checkInterviewers("interviewers", in.Interviewers)...)
	fields = append(fields, checkMeetingDetails(in.MeetingDetails)...)
	fields = append(fields, checkNotes("notes", in.Notes)...)
	fields = append(fields, checkStatus("status", in.Status)...)

	if len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}

// ValidatePatch checks only the fields present in a partial update. The
// effective date/time pair is validated by the service after merging the
// patch over the stored record.
func (v *Validator) ValidatePatch(p models.InterviewPatch) error {
	var fields []FieldError

	if p.CandidateID != nil {
		fields = append(fields, checkReferenceID("candidateId", *p.CandidateID)...)
	}
	if p.Type != nil {
		fields = append(fields, checkInterviewType("type", *p.Type)...)
	}
	if p.Duration != nil {
		fields = append(fields, checkDuration("duration", p.Duration)...)
	}
	if p.Status != nil {
		fields = append(fields, checkStatus("status", *p.Status)...)
	}
	if p.Interviewers != nil {
		fields = append(fields, checkInterviewers("interviewers", *p.Interviewers)...)
	}
	if p.Notes != nil {
		fields = append(fields, checkNotes("notes", *p.Notes)...)
	}
	if p.MeetingDetails != nil {
		md := p.MeetingDetails
		if md.Type != nil && !models.MeetingType(*md.Type).Valid() {
			fields = append(fields, FieldError{"meetingDetails.type", fmt.Sprintf("unrecognized meeting type %q", *md.Type)})
		}
		fields = append(fields, checkLink(md.Link)...)
		fields = append(fields, checkLocation(md.Location)...)
	}

	if len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}

// ValidateSchedule re-runs the date/time facet for an effective (merged)
// schedule during updates.
func (v *Validator) ValidateSchedule(dateStr, timeStr string) error {
	if fields := v.checkSchedule("date", "time", dateStr, timeStr); len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}

func checkReferenceID(field, id string) []FieldError {
	if _, err := uuid.Parse(id); err != nil {
		return []FieldError{{field, fmt.Sprintf("%s must be a valid reference id", field)}}
	}
	return nil
}

// checkDisplayName validates length only when a name is supplied; an absent
// name is substituted from the resolved entity later.
func checkDisplayName(field, name string) []FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	if len(name) > maxNameLen {
		return []FieldError{{field, fmt.Sprintf("%s must be at most %d characters", field, maxNameLen)}}
	}
	return nil
}

func checkInterviewType(field, t string) []FieldError {
	if !models.InterviewType(t).Valid() {
		return []FieldError{{field, fmt.Sprintf("unrecognized interview type %q", t)}}
	}
	return nil
}

// checkSchedule covers the date-only window, the time-only business-hour
// window, and the stricter combined future-instant check. The combined check
// is intentional defense in depth: it rejects "today at an already-past hour"
// which neither single-field check catches on its own.
func (v *Validator) checkSchedule(dateField, timeField, dateStr, timeStr string) []FieldError {
	var fields []FieldError
	now := v.nowFn()

	date, dateErr := time.ParseInLocation(dateLayout, dateStr, time.Local)
	if dateErr != nil {
		fields = append(fields, FieldError{dateField, "date must be a valid calendar date in YYYY-MM-DD format"})
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		if date.Before(today) {
			fields = append(fields, FieldError{dateField, "date must not be in the past"})
		}
		if date.After(today.AddDate(0, 0, maxAdvanceDays)) {
			fields = append(fields, FieldError{dateField, fmt.Sprintf("date must not be more than %d days ahead", maxAdvanceDays)})
		}
	}

	clock, timeErr := time.Parse(timeLayout, timeStr)
	if timeErr != nil {
		fields = append(fields, FieldError{timeField, "time must be a valid 24h time in HH:MM format"})
	} else {
		minutes := clock.Hour()*60 + clock.Minute()
		if minutes < businessDayStart || minutes > businessDayEnd {
			fields = append(fields, FieldError{timeField, "time must be between 08:00 and 18:00"})
		}
	}

	if dateErr == nil && timeErr == nil {
		instant := time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)
		if !instant.After(now) {
			fields = append(fields, FieldError{timeField, "scheduled date and time must be in the future"})
		}
	}

	return fields
}

func checkDuration(field string, d *int) []FieldError {
	if d == nil {
		return nil
	}
	if *d < minDuration || *d > maxDuration {
		return []FieldError{{field, fmt.Sprintf("duration must be between %d and %d minutes", minDuration, maxDuration)}}
	}
	if *d%durationStep != 0 {
		return []FieldError{{field, fmt.Sprintf("duration must be a multiple of %d minutes", durationStep)}}
	}
	return nil
}

func checkInterviewers(field string, names []string) []FieldError {
	var fields []FieldError
	if len(names) > maxInterviewers {
		fields = append(fields, FieldError{field, fmt.Sprintf("at most %d interviewers are allowed", maxInterviewers)})
	}
	seen := make(map[string]bool, len(names))
	for i, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			fields = append(fields, FieldError{fmt.Sprintf("%s[%d]", field, i), "interviewer name must not be empty"})
			continue
		}
		if len(name) > maxNameLen {
			fields = append(fields, FieldError{fmt.Sprintf("%s[%d]", field, i), fmt.Sprintf("interviewer name must be at most %d characters", maxNameLen)})
		}
		key := strings.ToLower(name)
		if seen[key] {
			fields = append(fields, FieldError{fmt.Sprintf("%s[%d]", field, i), fmt.Sprintf("duplicate interviewer %q", name)})
		}
		seen[key] = true
	}
	return fields
}

func checkMeetingDetails(md models.MeetingDetailsInput) []FieldError {
	var fields []FieldError
	meetingType := models.MeetingType(md.Type)
	if !meetingType.Valid() {
		fields = append(fields, FieldError{"meetingDetails.type", fmt.Sprintf("unrecognized meeting type %q", md.Type)})
	}
	fields = append(fields, checkLink(md.Link)...)
	fields = append(fields, checkLocation(md.Location)...)

	// In-person interviews need a location; video/phone links may be filled
	// in after the meeting is generated, so they are not required here.
	if meetingType == models.MeetingInPerson {
		if md.Location == nil || strings.TrimSpace(*md.Location) == "" {
			fields = append(fields, FieldError{"meetingDetails.location", "location is required for in-person interviews"})
		}
	}
	return fields
}

func checkLink(link *string) []FieldError {
	if link == nil || strings.TrimSpace(*link) == "" {
		return nil
	}
	value := strings.TrimSpace(*link)
	if len(value) > maxLinkLen {
		return []FieldError{{"meetingDetails.link", fmt.Sprintf("link must be at most %d characters", maxLinkLen)}}
	}
	parsed, err := url.Parse(value)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return []FieldError{{"meetingDetails.link", "link must be a valid URL"}}
	}
	return nil
}

func checkLocation(location *string) []FieldError {
	if location == nil {
		return nil
	}
	if len(strings.TrimSpace(*location)) > maxLocationLen {
		return []FieldError{{"meetingDetails.location", fmt.Sprintf("location must be at most %d characters", maxLocationLen)}}
	}
	return nil
}

func checkNotes(field, notes string) []FieldError {
	if len(notes) > maxNotesLen {
		return []FieldError{{field, fmt.Sprintf("notes must be at most %d characters", maxNotesLen)}}
	}
	return nil
}

func checkStatus(field, status string) []FieldError {
	if status == "" {
		return nil
	}
	if !models.InterviewStatus(status).Valid() {
		return []FieldError{{field, fmt.Sprintf("unrecognized status %q", status)}}
	}
	return nil
}
