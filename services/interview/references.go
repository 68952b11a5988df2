package interview

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"hireflow/models"
)

// resolveReferences confirms the candidate and job exist before an interview
// is created. Both lookups run concurrently; when both references dangle the
// error reports both, not just the first. Transport failures are fatal here,
// unlike during read-time enrichment.
func (s *DefaultSchedulingService) resolveReferences(ctx context.Context, candidateID, jobID string) (*models.Candidate, *models.Job, error) {
	var (
		candidate *models.Candidate
		job       *models.Job
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		candidate, err = s.Candidates.GetByID(gctx, candidateID)
		return err
	})
	g.Go(func() error {
		var err error
		job, err = s.Jobs.GetByID(gctx, jobID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.Logger.Error("reference lookup failed", zap.Error(err))
		return nil, nil, NewInternalError(err)
	}

	var missing []FieldError
	if candidate == nil {
		missing = append(missing, FieldError{"candidateId", "candidate " + candidateID + " does not exist"})
	}
	if job == nil {
		missing = append(missing, FieldError{"jobId", "job " + jobID + " does not exist"})
	}
	if len(missing) > 0 {
		return nil, nil, NewReferenceError(missing)
	}
	return candidate, job, nil
}

// enrich overlays live candidate/job summaries onto a view. A reference that
// no longer resolves sets the corresponding Deleted flag; lookup failures are
// logged and swallowed. A read never fails because a snapshot went stale.
func (s *DefaultSchedulingService) enrich(ctx context.Context, view *models.InterviewView) {
	if summary, deleted, ok := s.candidateSummary(ctx, view.CandidateID); ok {
		view.CurrentCandidateInfo = summary
		view.CandidateDeleted = deleted
	}
	if summary, deleted, ok := s.jobSummary(ctx, view.JobID); ok {
		view.CurrentJobInfo = summary
		view.JobDeleted = deleted
	}
}

// candidateSummary resolves the live candidate overlay. ok is false only on a
// transport failure, in which case the view keeps its zero overlay.
func (s *DefaultSchedulingService) candidateSummary(ctx context.Context, id string) (*models.CandidateSummary, bool, bool) {
	cacheKey := "enrich:candidate:" + id
	var cached models.CandidateSummary
	if s.Cache.get(ctx, cacheKey, &cached) {
		return &cached, false, true
	}

	candidate, err := s.Candidates.GetByID(ctx, id)
	if err != nil {
		s.Logger.Warn("candidate enrichment failed", zap.String("candidateId", id), zap.Error(err))
		return nil, false, false
	}
	if candidate == nil {
		s.Cache.invalidate(ctx, cacheKey)
		return nil, true, true
	}

	summary := &models.CandidateSummary{
		Name:  candidate.FullName(),
		Email: candidate.PersonalInfo.Email,
		Stage: candidate.PipelineInfo.CurrentStage,
	}
	s.Cache.set(ctx, cacheKey, summary)
	return summary, false, true
}

func (s *DefaultSchedulingService) jobSummary(ctx context.Context, id string) (*models.JobSummary, bool, bool) {
	cacheKey := "enrich:job:" + id
	var cached models.JobSummary
	if s.Cache.get(ctx, cacheKey, &cached) {
		return &cached, false, true
	}

	job, err := s.Jobs.GetByID(ctx, id)
	if err != nil {
		s.Logger.Warn("job enrichment failed", zap.String("jobId", id), zap.Error(err))
		return nil, false, false
	}
	if job == nil {
		s.Cache.invalidate(ctx, cacheKey)
		return nil, true, true
	}

	summary := &models.JobSummary{
		Title:      job.Title,
		Department: job.Department,
		Status:     job.Status,
	}
	s.Cache.set(ctx, cacheKey, summary)
	return summary, false, true
}
