package interview

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"hireflow/models"
)

// StatsForDate aggregates the given calendar day (local boundaries,
// 00:00:00.000 to 23:59:59.999): total upcoming interviews, the set of unique
// interviewer initials, and a per-type histogram. Only active interviews in
// scheduled or rescheduled status count.
func (s *DefaultSchedulingService) StatsForDate(ctx context.Context, date string) (*models.DailyInterviewStats, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, NewValidationError([]FieldError{{"date", "date must be a valid date in YYYY-MM-DD format"}})
	}
	start := day
	end := endOfDay(day)
	statuses := []models.InterviewStatus{models.StatusScheduled, models.StatusRescheduled}

	records, err := s.Repo.FindActiveInRange(ctx, start, end, statuses)
	if err != nil {
		s.Logger.Error("failed to gather daily interviews", zap.String("date", date), zap.Error(err))
		return nil, NewInternalError(err)
	}

	histogram, err := s.Repo.TypeHistogram(ctx, start, end, statuses)
	if err != nil {
		s.Logger.Error("failed to aggregate type histogram", zap.String("date", date), zap.Error(err))
		return nil, NewInternalError(err)
	}

	initialsSet := make(map[string]bool)
	for _, iv := range records {
		for _, name := range iv.Interviewers {
			if initials := InterviewerInitials(name); initials != "" {
				initialsSet[initials] = true
			}
		}
	}
	initials := make([]string, 0, len(initialsSet))
	for key := range initialsSet {
		initials = append(initials, key)
	}
	sort.Strings(initials)

	return &models.DailyInterviewStats{
		Date:                date,
		TotalInterviews:     len(records),
		InterviewerInitials: initials,
		InterviewsByType:    histogram,
	}, nil
}

// InterviewerInitials derives display initials from a name: first character
// of the first and last whitespace-separated parts, uppercased. One part
// yields a single letter; an unnamed entry yields "".
func InterviewerInitials(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return strings.ToUpper(firstRune(parts[0]))
	default:
		return strings.ToUpper(firstRune(parts[0]) + firstRune(parts[len(parts)-1]))
	}
}

// UserInitials is the single-user variant with an "unknown user" fallback.
func UserInitials(name string) string {
	if initials := InterviewerInitials(name); initials != "" {
		return initials
	}
	return "U"
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
