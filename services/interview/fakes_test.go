package interview

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	interviewRepo "hireflow/database/repository/interview"
	"hireflow/models"
)

// fakeInterviewRepo is an in-memory stand-in for the Mongo repository,
// mirroring its filter semantics.
type fakeInterviewRepo struct {
	interviews map[string]models.Interview
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{interviews: make(map[string]models.Interview)}
}

func (r *fakeInterviewRepo) Insert(_ context.Context, iv models.Interview) (string, error) {
	if iv.ID == "" {
		iv.ID = uuid.New().String()
	}
	r.interviews[iv.ID] = iv
	return iv.ID, nil
}

func (r *fakeInterviewRepo) GetActiveByID(_ context.Context, id string) (*models.Interview, error) {
	iv, ok := r.interviews[id]
	if !ok || !iv.Metadata.IsActive {
		return nil, nil
	}
	copied := iv
	return &copied, nil
}

func (r *fakeInterviewRepo) Find(_ context.Context, f interviewRepo.ListFilter, skip, limit int64) ([]models.Interview, int64, error) {
	var matched []models.Interview
	for _, iv := range r.interviews {
		if !iv.Metadata.IsActive {
			continue
		}
		if f.Status != "" && string(iv.Status) != f.Status {
			continue
		}
		if f.Type != "" && string(iv.Type) != f.Type {
			continue
		}
		if f.CandidateID != "" && iv.CandidateID != f.CandidateID {
			continue
		}
		if f.JobID != "" && iv.JobID != f.JobID {
			continue
		}
		if f.DateFrom != nil && iv.ScheduledDate.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && iv.ScheduledDate.After(*f.DateTo) {
			continue
		}
		matched = append(matched, iv)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ScheduledDate.Before(matched[j].ScheduledDate)
	})
	total := int64(len(matched))
	if skip >= total {
		return nil, total, nil
	}
	end := skip + limit
	if end > total {
		end = total
	}
	return matched[skip:end], total, nil
}

func (r *fakeInterviewRepo) Replace(_ context.Context, iv models.Interview) error {
	existing, ok := r.interviews[iv.ID]
	if !ok || !existing.Metadata.IsActive {
		return mongo.ErrNoDocuments
	}
	r.interviews[iv.ID] = iv
	return nil
}

func (r *fakeInterviewRepo) SoftDelete(_ context.Context, id, actorID string, at time.Time) (bool, error) {
	iv, ok := r.interviews[id]
	if !ok || !iv.Metadata.IsActive {
		return false, nil
	}
	iv.Metadata.IsActive = false
	iv.Metadata.UpdatedAt = at
	iv.Metadata.DeletedAt = &at
	iv.Metadata.DeletedBy = actorID
	r.interviews[id] = iv
	return true, nil
}

func (r *fakeInterviewRepo) CountConflicts(_ context.Context, candidateID string, windowStart, windowEnd time.Time, excludeID string) (int64, error) {
	var count int64
	for _, iv := range r.interviews {
		if iv.ID == excludeID || iv.CandidateID != candidateID || !iv.Metadata.IsActive {
			continue
		}
		if iv.Status != models.StatusScheduled && iv.Status != models.StatusRescheduled {
			continue
		}
		if iv.ScheduledDate.Before(windowStart) || iv.ScheduledDate.After(windowEnd) {
			continue
		}
		count++
	}
	return count, nil
}

func (r *fakeInterviewRepo) FindActiveInRange(_ context.Context, start, end time.Time, statuses []models.InterviewStatus) ([]models.Interview, error) {
	statusSet := make(map[models.InterviewStatus]bool, len(statuses))
	for _, s := range statuses {
		statusSet[s] = true
	}
	var matched []models.Interview
	for _, iv := range r.interviews {
		if !iv.Metadata.IsActive {
			continue
		}
		if len(statuses) > 0 && !statusSet[iv.Status] {
			continue
		}
		if iv.ScheduledDate.Before(start) || iv.ScheduledDate.After(end) {
			continue
		}
		matched = append(matched, iv)
	}
	return matched, nil
}

func (r *fakeInterviewRepo) TypeHistogram(ctx context.Context, start, end time.Time, statuses []models.InterviewStatus) (map[models.InterviewType]int, error) {
	records, err := r.FindActiveInRange(ctx, start, end, statuses)
	if err != nil {
		return nil, err
	}
	histogram := make(map[models.InterviewType]int)
	for _, iv := range records {
		if iv.Type.Valid() {
			histogram[iv.Type]++
		}
	}
	return histogram, nil
}

func (r *fakeInterviewRepo) EnsureIndexes() error { return nil }

type fakeCandidateLookup struct {
	candidates map[string]models.Candidate
	err        error
}

func (f *fakeCandidateLookup) GetByID(_ context.Context, id string) (*models.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.candidates[id]
	if !ok {
		return nil, nil
	}
	copied := c
	return &copied, nil
}

type fakeJobLookup struct {
	jobs map[string]models.Job
	err  error
}

func (f *fakeJobLookup) GetByID(_ context.Context, id string) (*models.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	j, ok := f.jobs[id]
	if !ok {
		return nil, nil
	}
	copied := j
	return &copied, nil
}

func newTestService(repo *fakeInterviewRepo, candidates *fakeCandidateLookup, jobs *fakeJobLookup) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		Repo:       repo,
		Candidates: candidates,
		Jobs:       jobs,
		Validator:  NewValidator(),
		Logger:     zap.NewNop(),
	}
}
