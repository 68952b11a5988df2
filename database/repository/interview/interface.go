// File: database/repository/interview/interface.go
package interviewRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"hireflow/database"
	"hireflow/models"
)

// ListFilter narrows a paged interview listing. Zero values mean "no filter".
// Every query is additionally scoped to metadata.isActive = true.
type ListFilter struct {
	Status      string
	Type        string
	CandidateID string
	JobID       string
	DateFrom    *time.Time
	DateTo      *time.Time
	Search      string
}

type InterviewRepository interface {
	Insert(ctx context.Context, iv models.Interview) (string, error)
	GetActiveByID(ctx context.Context, id string) (*models.Interview, error)
	Find(ctx context.Context, filter ListFilter, skip, limit int64) ([]models.Interview, int64, error)
	Replace(ctx context.Context, iv models.Interview) error
	SoftDelete(ctx context.Context, id, actorID string, at time.Time) (bool, error)
	CountConflicts(ctx context.Context, candidateID string, windowStart, windowEnd time.Time, excludeID string) (int64, error)
	FindActiveInRange(ctx context.Context, start, end time.Time, statuses []models.InterviewStatus) ([]models.Interview, error)
	TypeHistogram(ctx context.Context, start, end time.Time, statuses []models.InterviewStatus) (map[models.InterviewType]int, error)
	EnsureIndexes() error
}

type mongoInterviewRepo struct {
	coll *mongo.Collection
}

// NewMongoInterviewRepo constructs a new MongoDB InterviewRepository.
func NewMongoInterviewRepo() InterviewRepository {
	return &mongoInterviewRepo{
		coll: database.Database().Collection("interviews"),
	}
}
