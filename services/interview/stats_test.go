package interview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hireflow/models"
)

func TestInterviewerInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"John Doe", "JD"},
		{"John", "J"},
		{"", ""},
		{"   ", ""},
		{"Jean-Pierre Dupont", "JD"},
		{"mary ann van der berg", "MB"},
		{"  Ada   Lovelace  ", "AL"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InterviewerInitials(tt.name), "name %q", tt.name)
	}
}

func TestUserInitials_Fallback(t *testing.T) {
	assert.Equal(t, "JD", UserInitials("John Doe"))
	assert.Equal(t, "U", UserInitials(""))
	assert.Equal(t, "U", UserInitials("   "))
}

func TestStatsForDate(t *testing.T) {
	repo := newFakeInterviewRepo()
	svc := newTestService(repo, &fakeCandidateLookup{}, &fakeJobLookup{})
	ctx := context.Background()

	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.Local)
	at := func(hour, min int) time.Time {
		return time.Date(2026, 9, 14, hour, min, 0, 0, time.Local)
	}
	seed := func(iv models.Interview) {
		iv.Metadata.IsActive = true
		_, err := repo.Insert(ctx, iv)
		require.NoError(t, err)
	}

	seed(models.Interview{
		ScheduledDate: at(9, 0),
		Type:          models.InterviewTypeTechnical,
		Status:        models.StatusScheduled,
		Interviewers:  []string{"John Doe", "Mary Major"},
	})
	seed(models.Interview{
		ScheduledDate: at(11, 0),
		Type:          models.InterviewTypeTechnical,
		Status:        models.StatusRescheduled,
		Interviewers:  []string{"john doe", ""},
	})
	seed(models.Interview{
		ScheduledDate: at(14, 0),
		Type:          models.InterviewTypeScreening,
		Status:        models.StatusScheduled,
		Interviewers:  []string{"Ada"},
	})
	// Completed interviews are not upcoming and stay out of the stats.
	seed(models.Interview{
		ScheduledDate: at(16, 0),
		Type:          models.InterviewTypeFinal,
		Status:        models.StatusCompleted,
		Interviewers:  []string{"Zed Zulu"},
	})
	// Neighboring days stay out too.
	seed(models.Interview{
		ScheduledDate: day.AddDate(0, 0, 1),
		Type:          models.InterviewTypeCultural,
		Status:        models.StatusScheduled,
		Interviewers:  []string{"Nia North"},
	})

	stats, err := svc.StatsForDate(ctx, "2026-09-14")
	require.NoError(t, err)

	assert.Equal(t, "2026-09-14", stats.Date)
	assert.Equal(t, 3, stats.TotalInterviews)
	// Initials deduplicate case-insensitively through uppercasing and skip
	// unnamed entries.
	assert.Equal(t, []string{"A", "JD", "MM"}, stats.InterviewerInitials)
	assert.Equal(t, map[models.InterviewType]int{
		models.InterviewTypeTechnical: 2,
		models.InterviewTypeScreening: 1,
	}, stats.InterviewsByType)
}

func TestStatsForDate_EmptyDay(t *testing.T) {
	svc := newTestService(newFakeInterviewRepo(), &fakeCandidateLookup{}, &fakeJobLookup{})

	stats, err := svc.StatsForDate(context.Background(), "2026-09-14")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalInterviews)
	assert.Empty(t, stats.InterviewerInitials)
	assert.Empty(t, stats.InterviewsByType)
}

func TestStatsForDate_BadDate(t *testing.T) {
	svc := newTestService(newFakeInterviewRepo(), &fakeCandidateLookup{}, &fakeJobLookup{})

	_, err := svc.StatsForDate(context.Background(), "14-09-2026")
	svcErr, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, svcErr.Code)
}
