package interview

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	interviewRepo "hireflow/database/repository/interview"
	"hireflow/models"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Create runs the full write pipeline: validate, resolve references,
// normalize, conflict-check, persist, enrich.
func (s *DefaultSchedulingService) Create(ctx context.Context, in models.InterviewInput, actorID string) (*models.InterviewView, error) {
	if err := s.Validator.ValidateCreate(in); err != nil {
		return nil, err
	}

	candidate, job, err := s.resolveReferences(ctx, strings.TrimSpace(in.CandidateID), strings.TrimSpace(in.JobID))
	if err != nil {
		return nil, err
	}

	iv, err := buildInterview(in, actorID, time.Now())
	if err != nil {
		return nil, NewInternalError(err)
	}
	// Snapshot names default to the resolved entities when the caller did not
	// supply them.
	if iv.CandidateName == "" {
		iv.CandidateName = candidate.FullName()
	}
	if iv.JobTitle == "" {
		iv.JobTitle = job.Title
	}

	conflict, err := s.hasConflict(ctx, iv.CandidateID, iv.ScheduledDate, "")
	if err != nil {
		s.Logger.Error("conflict check failed", zap.String("candidateId", iv.CandidateID), zap.Error(err))
		return nil, NewInternalError(err)
	}
	if conflict {
		return nil, NewConflictError(iv.CandidateID)
	}

	id, err := s.Repo.Insert(ctx, iv)
	if err != nil {
		s.Logger.Error("failed to insert interview", zap.Error(err))
		return nil, NewInternalError(err)
	}
	iv.ID = id

	s.scheduleReminder(ctx, iv)

	s.Logger.Info("interview created",
		zap.String("interviewId", iv.ID),
		zap.String("candidateId", iv.CandidateID),
		zap.Time("scheduledDate", iv.ScheduledDate))

	view := formatView(iv)
	s.enrich(ctx, &view)
	return &view, nil
}

// GetByID fetches one active interview. Absent or soft-deleted records come
// back as a not-found error.
func (s *DefaultSchedulingService) GetByID(ctx context.Context, id string) (*models.InterviewView, error) {
	iv, err := s.Repo.GetActiveByID(ctx, id)
	if err != nil {
		s.Logger.Error("failed to fetch interview", zap.String("interviewId", id), zap.Error(err))
		return nil, NewInternalError(err)
	}
	if iv == nil {
		return nil, NewNotFoundError("interview")
	}
	view := formatView(*iv)
	s.enrich(ctx, &view)
	return &view, nil
}

// List returns a filtered page of active interviews sorted ascending by
// scheduled date.
func (s *DefaultSchedulingService) List(ctx context.Context, q ListQuery) (*models.InterviewPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	filter := interviewRepo.ListFilter{
		Status:      q.Status,
		Type:        q.Type,
		CandidateID: q.CandidateID,
		JobID:       q.JobID,
		Search:      q.Search,
	}
	if q.DateFrom != "" {
		from, err := time.ParseInLocation(dateLayout, q.DateFrom, time.Local)
		if err != nil {
			return nil, NewValidationError([]FieldError{{"dateFrom", "dateFrom must be a valid date in YYYY-MM-DD format"}})
		}
		filter.DateFrom = &from
	}
	if q.DateTo != "" {
		to, err := time.ParseInLocation(dateLayout, q.DateTo, time.Local)
		if err != nil {
			return nil, NewValidationError([]FieldError{{"dateTo", "dateTo must be a valid date in YYYY-MM-DD format"}})
		}
		endOfDay := endOfDay(to)
		filter.DateTo = &endOfDay
	}

	records, total, err := s.Repo.Find(ctx, filter, int64(page-1)*int64(limit), int64(limit))
	if err != nil {
		s.Logger.Error("failed to list interviews", zap.Error(err))
		return nil, NewInternalError(err)
	}

	views := make([]models.InterviewView, 0, len(records))
	for i := range records {
		view := formatView(records[i])
		s.enrich(ctx, &view)
		views = append(views, view)
	}

	return &models.InterviewPage{
		Interviews: views,
		Page:       page,
		Limit:      limit,
		Total:      total,
		HasNext:    int64(page)*int64(limit) < total,
		HasPrev:    page > 1,
	}, nil
}

// Update applies a partial patch. Conflict detection re-runs only when the
// patch touches date, time or candidate; meeting details merge field by
// field over the stored values.
func (s *DefaultSchedulingService) Update(ctx context.Context, id string, patch models.InterviewPatch, actorID string) (*models.InterviewView, error) {
	existing, err := s.Repo.GetActiveByID(ctx, id)
	if err != nil {
		s.Logger.Error("failed to fetch interview for update", zap.String("interviewId", id), zap.Error(err))
		return nil, NewInternalError(err)
	}
	if existing == nil {
		return nil, NewNotFoundError("interview")
	}

	if err := s.Validator.ValidatePatch(patch); err != nil {
		return nil, err
	}

	updated := *existing
	scheduleChanged := patch.Date != nil || patch.Time != nil
	if scheduleChanged {
		dateStr, timeStr := SplitDateTime(existing.ScheduledDate)
		if patch.Date != nil {
			dateStr = *patch.Date
		}
		if patch.Time != nil {
			timeStr = *patch.Time
		}
		// Re-validate the effective merged schedule, not just the patched half.
		if err := s.Validator.ValidateSchedule(dateStr, timeStr); err != nil {
			return nil, err
		}
		instant, err := CombineDateTime(dateStr, timeStr)
		if err != nil {
			return nil, NewInternalError(err)
		}
		updated.ScheduledDate = instant
	}

	if patch.CandidateID != nil {
		updated.CandidateID = *patch.CandidateID
	}
	if patch.Duration != nil {
		updated.Duration = *patch.Duration
	}
	if patch.Type != nil {
		updated.Type = models.InterviewType(*patch.Type)
	}
	if patch.Interviewers != nil {
		interviewers := make([]string, 0, len(*patch.Interviewers))
		for _, name := range *patch.Interviewers {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				interviewers = append(interviewers, trimmed)
			}
		}
		updated.Interviewers = interviewers
	}
	if patch.Notes != nil {
		updated.Notes = strings.TrimSpace(*patch.Notes)
	}
	if patch.MeetingDetails != nil {
		if patch.MeetingDetails.Type != nil {
			updated.MeetingDetails.Type = models.MeetingType(*patch.MeetingDetails.Type)
		}
		if patch.MeetingDetails.Link != nil {
			updated.MeetingDetails.Link = normalizeOptional(patch.MeetingDetails.Link)
		}
		if patch.MeetingDetails.Location != nil {
			updated.MeetingDetails.Location = normalizeOptional(patch.MeetingDetails.Location)
		}
	}

	// Status transitions are unguarded but audited. A fresh date/time on a
	// rescheduled interview implicitly flips it back to scheduled.
	if patch.Status != nil {
		next := models.InterviewStatus(*patch.Status)
		if next != existing.Status {
			s.logTransition(id, existing.Status, next, actorID)
		}
		updated.Status = next
	} else if scheduleChanged && existing.Status == models.StatusRescheduled {
		s.logTransition(id, existing.Status, models.StatusScheduled, actorID)
		updated.Status = models.StatusScheduled
	}

	if patch.TouchesSchedule() {
		conflict, err := s.hasConflict(ctx, updated.CandidateID, updated.ScheduledDate, id)
		if err != nil {
			s.Logger.Error("conflict check failed", zap.String("candidateId", updated.CandidateID), zap.Error(err))
			return nil, NewInternalError(err)
		}
		if conflict {
			return nil, NewConflictError(updated.CandidateID)
		}
	}

	updated.Metadata.UpdatedAt = time.Now()
	if err := s.Repo.Replace(ctx, updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("interview")
		}
		s.Logger.Error("failed to update interview", zap.String("interviewId", id), zap.Error(err))
		return nil, NewInternalError(err)
	}

	if scheduleChanged {
		s.scheduleReminder(ctx, updated)
	}

	view := formatView(updated)
	s.enrich(ctx, &view)
	return &view, nil
}

// Delete soft-deletes an interview; deleting an already-deleted record is a
// not-found, never a second success.
func (s *DefaultSchedulingService) Delete(ctx context.Context, id, actorID string) error {
	ok, err := s.Repo.SoftDelete(ctx, id, actorID, time.Now())
	if err != nil {
		s.Logger.Error("failed to delete interview", zap.String("interviewId", id), zap.Error(err))
		return NewInternalError(err)
	}
	if !ok {
		return NewNotFoundError("interview")
	}
	s.Logger.Info("interview deleted", zap.String("interviewId", id), zap.String("deletedBy", actorID))
	return nil
}

func (s *DefaultSchedulingService) logTransition(id string, from, to models.InterviewStatus, actorID string) {
	s.Logger.Info("interview status transition",
		zap.String("interviewId", id),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.String("actor", actorID))
}

// endOfDay returns the last represented millisecond of the given day.
func endOfDay(day time.Time) time.Time {
	return day.Add(24*time.Hour - time.Millisecond)
}
