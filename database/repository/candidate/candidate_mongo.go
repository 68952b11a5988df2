// File: database/repository/candidate/candidate_mongo.go
package candidateRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hireflow/database"
	"hireflow/models"
)

// CandidateLookup resolves candidate references for existence checks and
// display enrichment. Not-found is (nil, nil); an error means the store round
// trip itself failed.
type CandidateLookup interface {
	GetByID(ctx context.Context, id string) (*models.Candidate, error)
}

type mongoCandidateRepo struct {
	coll *mongo.Collection
}

// NewMongoCandidateRepo constructs a CandidateLookup backed by the candidates
// collection.
func NewMongoCandidateRepo() CandidateLookup {
	return &mongoCandidateRepo{
		coll: database.Database().Collection("candidates"),
	}
}

func (r *mongoCandidateRepo) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var candidate models.Candidate
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&candidate)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate %s: %w", id, err)
	}
	return &candidate, nil
}
