// File: database/repository/meeting/crud.go
package meetingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tutorsched/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoMeetingRepo) Create(ctx context.Context, meeting *models.Meeting) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	stamp(meeting, time.Now().UTC())
	if _, err := r.coll.InsertOne(ctx, meeting); err != nil {
		return fmt.Errorf("error creating meeting: %w", err)
	}
	return nil
}

func (r *mongoMeetingRepo) GetByID(ctx context.Context, id string) (*models.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var meeting models.Meeting
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&meeting)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching meeting with id %s: %w", id, err)
	}
	return &meeting, nil
}

// Update replaces the stored document with meeting, refreshing updatedAt.
func (r *mongoMeetingRepo) Update(ctx context.Context, meeting *models.Meeting) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	meeting.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": meeting.ID}, meeting)
	if err != nil {
		return fmt.Errorf("error updating meeting %s: %w", meeting.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoMeetingRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting meeting %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoMeetingRepo) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("error deleting meetings: %w", err)
	}
	return res.DeletedCount, nil
}

// stamp assigns an id when missing and sets both timestamps.
func stamp(meeting *models.Meeting, now time.Time) {
	if meeting.ID == "" {
		meeting.ID = uuid.New().String()
	}
	meeting.CreatedAt = now
	meeting.UpdatedAt = now
}
