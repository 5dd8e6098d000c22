package meetingRepo

import (
	"context"
	"fmt"
	"time"

	"tutorsched/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateMany inserts a recurring series inside a single transaction so a failure part-way
// through leaves no occurrences behind.
func (r *mongoMeetingRepo) CreateMany(ctx context.Context, meetings []models.Meeting) error {
	if len(meetings) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now().UTC()
	docs := make([]interface{}, len(meetings))
	for i := range meetings {
		stamp(&meetings[i], now)
		docs[i] = meetings[i]
	}

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if _, err := r.coll.InsertMany(sc, docs, options.InsertMany().SetOrdered(true)); err != nil {
			_ = sc.AbortTransaction(sc)
			return fmt.Errorf("insert meetings failed: %w", err)
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("meeting series transaction failed: %w", err)
	}
	return nil
}
