package interview

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hireflow/models"
)

func TestCombineDateTime_RoundTrip(t *testing.T) {
	tests := []struct {
		date  string
		clock string
	}{
		{"2026-03-10", "10:00"},
		{"2026-12-31", "08:00"},
		{"2027-01-01", "18:00"},
		{"2026-06-15", "09:45"},
	}
	for _, tt := range tests {
		t.Run(tt.date+" "+tt.clock, func(t *testing.T) {
			instant, err := CombineDateTime(tt.date, tt.clock)
			require.NoError(t, err)
			gotDate, gotClock := SplitDateTime(instant)
			assert.Equal(t, tt.date, gotDate)
			assert.Equal(t, tt.clock, gotClock)
		})
	}
}

func TestCombineDateTime_Invalid(t *testing.T) {
	_, err := CombineDateTime("10-03-2026", "10:00")
	assert.Error(t, err)
	_, err = CombineDateTime("2026-03-10", "10:00:30")
	assert.Error(t, err)
}

func TestBuildInterview_DefaultDurations(t *testing.T) {
	tests := []struct {
		interviewType string
		want          int
	}{
		{"screening", 30},
		{"technical", 60},
		{"cultural", 45},
		{"final", 90},
	}
	for _, tt := range tests {
		t.Run(tt.interviewType, func(t *testing.T) {
			in := models.InterviewInput{
				CandidateID:  uuid.New().String(),
				JobID:        uuid.New().String(),
				Date:         "2026-03-10",
				Time:         "10:00",
				Type:         tt.interviewType,
				Interviewers: []string{"John Doe"},
			}
			iv, err := buildInterview(in, "recruiter-1", time.Now())
			require.NoError(t, err)
			assert.Equal(t, tt.want, iv.Duration)
		})
	}
}

func TestBuildInterview_ExplicitDurationWins(t *testing.T) {
	duration := 120
	in := models.InterviewInput{
		CandidateID: uuid.New().String(),
		JobID:       uuid.New().String(),
		Date:        "2026-03-10",
		Time:        "10:00",
		Type:        "screening",
		Duration:    &duration,
	}
	iv, err := buildInterview(in, "recruiter-1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 120, iv.Duration)
}

func TestBuildInterview_Normalization(t *testing.T) {
	link := "  https://meet.example.com/abc  "
	location := "   "
	now := time.Now()
	in := models.InterviewInput{
		CandidateID:   uuid.New().String(),
		JobID:         uuid.New().String(),
		CandidateName: "  Ada Lovelace  ",
		JobTitle:      " Backend Engineer ",
		Date:          "2026-03-10",
		Time:          "10:00",
		Type:          "technical",
		Interviewers:  []string{" John Doe ", "", "Mary Major"},
		MeetingDetails: models.MeetingDetailsInput{
			Type:     "video",
			Link:     &link,
			Location: &location,
		},
		Notes: "  ",
	}

	iv, err := buildInterview(in, "recruiter-1", now)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", iv.CandidateName)
	assert.Equal(t, "Backend Engineer", iv.JobTitle)
	assert.Equal(t, []string{"John Doe", "Mary Major"}, iv.Interviewers)
	require.NotNil(t, iv.MeetingDetails.Link)
	assert.Equal(t, "https://meet.example.com/abc", *iv.MeetingDetails.Link)
	assert.Nil(t, iv.MeetingDetails.Location, "blank location becomes nil")
	assert.Equal(t, "", iv.Notes, "notes default to empty, never null")
	assert.Equal(t, models.StatusScheduled, iv.Status)
	assert.True(t, iv.Metadata.IsActive)
	assert.Equal(t, "recruiter-1", iv.Metadata.CreatedBy)
	assert.Equal(t, now, iv.Metadata.CreatedAt)
}
