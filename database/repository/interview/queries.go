// File: database/repository/interview/queries.go
package interviewRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hireflow/models"
)

func (f ListFilter) toBSON() bson.M {
	filter := bson.M{"metadata.isActive": true}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.CandidateID != "" {
		filter["candidateId"] = f.CandidateID
	}
	if f.JobID != "" {
		filter["jobId"] = f.JobID
	}
	if f.DateFrom != nil || f.DateTo != nil {
		rangeFilter := bson.M{}
		if f.DateFrom != nil {
			rangeFilter["$gte"] = *f.DateFrom
		}
		if f.DateTo != nil {
			rangeFilter["$lte"] = *f.DateTo
		}
		filter["scheduledDate"] = rangeFilter
	}
	if f.Search != "" {
		filter["$text"] = bson.M{"$search": f.Search}
	}
	return filter
}

// Find returns one page of active interviews sorted ascending by scheduled
// date, plus the total match count for pagination.
func (r *mongoInterviewRepo) Find(ctx context.Context, f ListFilter, skip, limit int64) ([]models.Interview, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := f.toBSON()
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count interviews: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "scheduledDate", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch interviews: %w", err)
	}
	defer cursor.Close(ctx)

	var interviews []models.Interview
	if err := cursor.All(ctx, &interviews); err != nil {
		return nil, 0, fmt.Errorf("error decoding interviews: %w", err)
	}
	return interviews, total, nil
}

// CountConflicts counts active scheduled/rescheduled interviews for the
// candidate whose scheduledDate falls inside [windowStart, windowEnd],
// excluding excludeID when updating an existing booking.
func (r *mongoInterviewRepo) CountConflicts(ctx context.Context, candidateID string, windowStart, windowEnd time.Time, excludeID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"candidateId":       candidateID,
		"metadata.isActive": true,
		"status":            bson.M{"$in": []models.InterviewStatus{models.StatusScheduled, models.StatusRescheduled}},
		"scheduledDate":     bson.M{"$gte": windowStart, "$lte": windowEnd},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count conflicting interviews: %w", err)
	}
	return count, nil
}

// FindActiveInRange returns the active interviews in [start, end] restricted
// to the given statuses, used by the daily statistics aggregator.
func (r *mongoInterviewRepo) FindActiveInRange(ctx context.Context, start, end time.Time, statuses []models.InterviewStatus) ([]models.Interview, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"metadata.isActive": true,
		"scheduledDate":     bson.M{"$gte": start, "$lte": end},
	}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch interviews in range: %w", err)
	}
	defer cursor.Close(ctx)

	var interviews []models.Interview
	if err := cursor.All(ctx, &interviews); err != nil {
		return nil, fmt.Errorf("error decoding interviews: %w", err)
	}
	return interviews, nil
}
