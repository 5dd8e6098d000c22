// FILE: database/repository/meeting/indexes.go
package meetingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the meetings collection.
func (r *mongoMeetingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Candidate lookups for conflict detection.
		{
			Keys:    bson.D{{Key: "tutorid", Value: 1}, {Key: "meetingstartdate", Value: 1}, {Key: "meetingenddate", Value: 1}},
			Options: options.Index().SetName("tutor_start_end_idx"),
		},
		{
			Keys:    bson.D{{Key: "meetingrecurringid", Value: 1}},
			Options: options.Index().SetName("recurring_id_idx").SetSparse(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create meeting indexes: %w", err)
	}
	return nil
}
