// File: database/repository/interview/aggregates.go
package interviewRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hireflow/models"
)

// TypeHistogram groups active interviews in [start, end] by interview type.
// Only recognized type values appear in the result; documents with unknown or
// missing types are excluded by the $match stage rather than bucketed as
// "other".
func (r *mongoInterviewRepo) TypeHistogram(ctx context.Context, start, end time.Time, statuses []models.InterviewStatus) (map[models.InterviewType]int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	recognized := []models.InterviewType{
		models.InterviewTypeScreening,
		models.InterviewTypeTechnical,
		models.InterviewTypeCultural,
		models.InterviewTypeFinal,
	}

	match := bson.M{
		"metadata.isActive": true,
		"scheduledDate":     bson.M{"$gte": start, "$lte": end},
		"type":              bson.M{"$in": recognized},
	}
	if len(statuses) > 0 {
		match["status"] = bson.M{"$in": statuses}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$type",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate type histogram: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Type  models.InterviewType `bson:"_id"`
		Count int                  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding type histogram: %w", err)
	}

	histogram := make(map[models.InterviewType]int, len(rows))
	for _, row := range rows {
		histogram[row.Type] = row.Count
	}
	return histogram, nil
}
