package interview

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hireflow/models"
)

func pinnedValidator(now time.Time) *Validator {
	return &Validator{nowFn: func() time.Time { return now }}
}

func baseInput() models.InterviewInput {
	duration := 60
	return models.InterviewInput{
		CandidateID:   uuid.New().String(),
		JobID:         uuid.New().String(),
		CandidateName: "Ada Lovelace",
		JobTitle:      "Backend Engineer",
		Date:          "2026-03-02",
		Time:          "10:00",
		Duration:      &duration,
		Type:          "technical",
		Interviewers:  []string{"John Doe", "Mary Major"},
		MeetingDetails: models.MeetingDetailsInput{
			Type: "video",
		},
	}
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	svcErr, ok := AsServiceError(err)
	require.True(t, ok, "expected a ServiceError, got %v", err)
	require.Equal(t, CodeValidation, svcErr.Code)
	names := make([]string, 0, len(svcErr.Fields))
	for _, f := range svcErr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidateCreate_Valid(t *testing.T) {
	v := pinnedValidator(time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local))
	assert.NoError(t, v.ValidateCreate(baseInput()))
}

func TestValidateCreate_BoundaryTimes(t *testing.T) {
	v := pinnedValidator(time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local))

	tests := []struct {
		clock string
		ok    bool
	}{
		{"07:59", false},
		{"08:00", true},
		{"18:00", true},
		{"18:01", false},
	}
	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			in := baseInput()
			in.Time = tt.clock
			err := v.ValidateCreate(in)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Contains(t, fieldNames(t, err), "time")
			}
		})
	}
}

func TestValidateCreate_SameDayPastHour(t *testing.T) {
	// 09:00 today when it is already 09:01: the date-only and time-only
	// checks both pass, only the combined future-instant check rejects.
	now := time.Date(2026, 3, 2, 9, 1, 0, 0, time.Local)
	v := pinnedValidator(now)

	in := baseInput()
	in.Date = "2026-03-02"
	in.Time = "09:00"

	err := v.ValidateCreate(in)
	svcErr, ok := AsServiceError(err)
	require.True(t, ok)
	require.Len(t, svcErr.Fields, 1)
	assert.Equal(t, "time", svcErr.Fields[0].Field)
	assert.Contains(t, svcErr.Fields[0].Message, "future")
}

func TestValidateCreate_DateWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)
	v := pinnedValidator(now)

	t.Run("past date rejected", func(t *testing.T) {
		in := baseInput()
		in.Date = "2026-02-28"
		assert.Contains(t, fieldNames(t, v.ValidateCreate(in)), "date")
	})

	t.Run("today allowed by the date check", func(t *testing.T) {
		in := baseInput()
		in.Date = "2026-03-01"
		in.Time = "14:00" // still in the future relative to noon
		assert.NoError(t, v.ValidateCreate(in))
	})

	t.Run("365 days ahead allowed", func(t *testing.T) {
		in := baseInput()
		in.Date = "2027-03-01"
		assert.NoError(t, v.ValidateCreate(in))
	})

	t.Run("366 days ahead rejected", func(t *testing.T) {
		in := baseInput()
		in.Date = "2027-03-02"
		assert.Contains(t, fieldNames(t, v.ValidateCreate(in)), "date")
	})
}

func TestValidateCreate_Duration(t *testing.T) {
	v := pinnedValidator(time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local))

	tests := []struct {
		name     string
		duration int
		ok       bool
	}{
		{"minimum", 15, true},
		{"maximum", 480, true},
		{"below minimum", 10, false},
		{"above maximum", 495, false},
		{"not a multiple of 15", 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			in.Duration = &tt.duration
			err := v.ValidateCreate(in)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Contains(t, fieldNames(t, err), "duration")
			}
		})
	}
}

func TestValidateCreate_Interviewers(t *testing.T) {
	v := pinnedValidator(time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local))

	t.Run("case-insensitive duplicates rejected", func(t *testing.T) {
		in := baseInput()
		in.Interviewers = []string{"John Doe", "john doe"}
		assert.Contains(t, fieldNames(t, v.ValidateCreate(in)), "interviewers[1]")
	})

	t.Run("whitespace-only name rejected", func(t *testing.T) {
		in := baseInput()
		in.Interviewers = []string{"   "}
		assert.Contains(t, fieldNames(t, v.ValidateCreate(in)), "interviewers[0]")
	})

	t.Run("eleven interviewers rejected", func(t *testing.T) {
		in := baseInput()
		in.Interviewers = nil
		for i := 0; i < 11; i++ {
			in.Interviewers = append(in.Interviewers, fmt.Sprintf("Interviewer %d", i))
		}
		assert.Contains(t, fieldNames(t, v.ValidateCreate(in)), "interviewers")
	})
}

func TestValidateCreate_MeetingDetails(t *testing.T) {
	v := pinnedValidator(time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local))

	t.Run("in-person requires location", func(t *testing.T) {
		in := baseInput()
		in.MeetingDetails = models.MeetingDetailsInput{Type: "in-person"}
		assert.Contains(t, fieldNames(t, v.ValidateCreate(in)), "meetingDetails.location")
	})

	t.Run("video does not require a link", func(t *testing.T) {
		in := baseInput()
		in.MeetingDetails = models.MeetingDetailsInput{Type: "video"}
		assert.NoError(t, v.ValidateCreate(in))
	})

	t.Run("malformed link rejected", func(t *testing.T) {
		link := "not a url"
		in := baseInput()
		in.MeetingDetails.Link = &link
		assert.Contains(t, fieldNames(t, v.ValidateCreate(in)), "meetingDetails.link")
	})

	t.Run("unknown meeting type rejected", func(t *testing.T) {
		in := baseInput()
		in.MeetingDetails.Type = "hologram"
		assert.Contains(t, fieldNames(t, v.ValidateCreate(in)), "meetingDetails.type")
	})
}

func TestValidateCreate_AggregatesAllViolations(t *testing.T) {
	v := pinnedValidator(time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local))

	badDuration := 7
	in := models.InterviewInput{
		CandidateID:    "not-a-uuid",
		JobID:          "also-not-a-uuid",
		Date:           "03/02/2026",
		Time:           "25:00",
		Duration:       &badDuration,
		Type:           "casual",
		Interviewers:   []string{""},
		MeetingDetails: models.MeetingDetailsInput{Type: "hologram"},
		Notes:          strings.Repeat("x", maxNotesLen+1),
		Status:         "paused",
	}

	err := v.ValidateCreate(in)
	svcErr, ok := AsServiceError(err)
	require.True(t, ok)
	// Every independent rule must be reported, not just the first.
	assert.GreaterOrEqual(t, len(svcErr.Fields), 9)
}

func TestValidatePatch_OnlySuppliedFields(t *testing.T) {
	v := pinnedValidator(time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local))

	t.Run("empty patch is valid", func(t *testing.T) {
		assert.NoError(t, v.ValidatePatch(models.InterviewPatch{}))
	})

	t.Run("bad status rejected", func(t *testing.T) {
		status := "paused"
		err := v.ValidatePatch(models.InterviewPatch{Status: &status})
		assert.Contains(t, fieldNames(t, err), "status")
	})

	t.Run("bad duration rejected", func(t *testing.T) {
		duration := 13
		err := v.ValidatePatch(models.InterviewPatch{Duration: &duration})
		assert.Contains(t, fieldNames(t, err), "duration")
	})
}
