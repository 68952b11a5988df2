package interview

import (
	"context"

	"go.uber.org/zap"

	candidateRepo "hireflow/database/repository/candidate"
	interviewRepo "hireflow/database/repository/interview"
	jobRepo "hireflow/database/repository/job"
	"hireflow/models"
)

// ListQuery carries the raw listing parameters from the transport layer.
// DateFrom/DateTo are YYYY-MM-DD strings; the upper bound is end-of-day
// inclusive.
type ListQuery struct {
	Status      string
	Type        string
	CandidateID string
	JobID       string
	DateFrom    string
	DateTo      string
	Search      string
	Page        int
	Limit       int
}

// SchedulingService is the only surface exposed to HTTP handlers.
type SchedulingService interface {
	Create(ctx context.Context, in models.InterviewInput, actorID string) (*models.InterviewView, error)
	GetByID(ctx context.Context, id string) (*models.InterviewView, error)
	List(ctx context.Context, q ListQuery) (*models.InterviewPage, error)
	Update(ctx context.Context, id string, patch models.InterviewPatch, actorID string) (*models.InterviewView, error)
	Delete(ctx context.Context, id, actorID string) error
	StatsForDate(ctx context.Context, date string) (*models.DailyInterviewStats, error)
}

// DefaultSchedulingService implements SchedulingService.
type DefaultSchedulingService struct {
	Repo       interviewRepo.InterviewRepository
	Candidates candidateRepo.CandidateLookup
	Jobs       jobRepo.JobLookup
	Cache      *EnrichmentCache   // optional; nil disables caching
	Reminders  ReminderScheduler  // optional; nil disables reminders
	Validator  *Validator
	Logger     *zap.Logger
}
