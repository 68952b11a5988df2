// File: database/repository/job/job_mongo.go
package jobRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hireflow/database"
	"hireflow/models"
)

// JobLookup resolves job references. Not-found is (nil, nil); an error means
// the store round trip itself failed.
type JobLookup interface {
	GetByID(ctx context.Context, id string) (*models.Job, error)
}

type mongoJobRepo struct {
	coll *mongo.Collection
}

// NewMongoJobRepo constructs a JobLookup backed by the jobs collection.
func NewMongoJobRepo() JobLookup {
	return &mongoJobRepo{
		coll: database.Database().Collection("jobs"),
	}
}

func (r *mongoJobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var job models.Job
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&job)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job %s: %w", id, err)
	}
	return &job, nil
}
