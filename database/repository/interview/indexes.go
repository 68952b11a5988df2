// File: database/repository/interview/indexes.go
package interviewRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the interviews collection.
// An index-already-exists race (another instance winning the creation) is not
// fatal and is ignored.
func (r *mongoInterviewRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "scheduledDate", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("scheduled_status_idx"),
		},
		{
			Keys:    bson.D{{Key: "candidateId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("candidate_status_idx"),
		},
		{
			Keys:    bson.D{{Key: "jobId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("job_status_idx"),
		},
		// Backstop for the conflict window query; the check-then-insert race
		// itself is accepted, this only keeps the count cheap.
		{
			Keys:    bson.D{{Key: "candidateId", Value: 1}, {Key: "scheduledDate", Value: 1}},
			Options: options.Index().SetName("candidate_scheduled_idx"),
		},
		{
			Keys:    bson.D{{Key: "type", Value: 1}},
			Options: options.Index().SetName("type_idx"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("status_idx"),
		},
		{
			Keys:    bson.D{{Key: "scheduledDate", Value: 1}},
			Options: options.Index().SetName("scheduled_idx"),
		},
		{
			Keys:    bson.D{{Key: "metadata.isActive", Value: 1}},
			Options: options.Index().SetName("is_active_idx"),
		},
		{
			Keys:    bson.D{{Key: "metadata.createdAt", Value: -1}},
			Options: options.Index().SetName("created_desc_idx"),
		},
		{
			Keys: bson.D{
				{Key: "candidateName", Value: "text"},
				{Key: "jobTitle", Value: "text"},
				{Key: "notes", Value: "text"},
			},
			Options: options.Index().
				SetName("interview_text_idx").
				SetWeights(bson.M{"candidateName": 10, "jobTitle": 8, "notes": 3}),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		if isIndexConflict(err) {
			return nil
		}
		return fmt.Errorf("failed to create interview indexes: %w", err)
	}
	return nil
}

func isIndexConflict(err error) bool {
	return strings.Contains(err.Error(), "IndexOptionsConflict") ||
		strings.Contains(err.Error(), "IndexKeySpecsConflict") ||
		strings.Contains(err.Error(), "already exists")
}
