// File: database/repository/interview/interviewMongoCrud.go
package interviewRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hireflow/models"
)

func (r *mongoInterviewRepo) Insert(ctx context.Context, iv models.Interview) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if iv.ID == "" {
		iv.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, iv); err != nil {
		return "", err
	}
	return iv.ID, nil
}

// GetActiveByID returns the active interview with the given id, or (nil, nil)
// when it is absent or soft-deleted.
func (r *mongoInterviewRepo) GetActiveByID(ctx context.Context, id string) (*models.Interview, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "metadata.isActive": true}
	var iv models.Interview
	err := r.coll.FindOne(ctx, filter).Decode(&iv)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *mongoInterviewRepo) Replace(ctx context.Context, iv models.Interview) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": iv.ID, "metadata.isActive": true}, iv)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SoftDelete marks the interview inactive and stamps the deletion metadata.
// Returns false when no active record matched, so a repeated delete reads as
// not found rather than a second success.
func (r *mongoInterviewRepo) SoftDelete(ctx context.Context, id, actorID string, at time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "metadata.isActive": true}
	update := bson.M{
		"$set": bson.M{
			"metadata.isActive":  false,
			"metadata.updatedAt": at,
			"metadata.deletedAt": at,
			"metadata.deletedBy": actorID,
		},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
