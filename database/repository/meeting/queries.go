// File: database/repository/meeting/queries.go
package meetingRepo

import (
	"context"
	"fmt"
	"time"

	"tutorsched/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoMeetingRepo) GetByTutor(ctx context.Context, tutorID string) ([]models.Meeting, error) {
	return r.find(ctx, bson.M{"tutorid": tutorID})
}

func (r *mongoMeetingRepo) GetBySeriesID(ctx context.Context, recurringID string) ([]models.Meeting, error) {
	return r.find(ctx, bson.M{"meetingrecurringid": recurringID})
}

func (r *mongoMeetingRepo) FindCandidates(ctx context.Context, tutorID, startDate, endDate, excludeID string) ([]models.Meeting, error) {
	return r.find(ctx, CandidateFilter(tutorID, startDate, endDate, excludeID))
}

// CandidateFilter selects meetings whose stored [start date, end date] range intersects
// [startDate, endDate]. Dates are ISO strings, so lexical order is calendar order. This
// covers same-start-day, same-end-day and spanning meetings as well as meetings that begin
// inside a multi-day target.
func CandidateFilter(tutorID, startDate, endDate, excludeID string) bson.M {
	filter := bson.M{
		"tutorid":          tutorID,
		"meetingstartdate": bson.M{"$lte": endDate},
		"meetingenddate":   bson.M{"$gte": startDate},
	}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

func (r *mongoMeetingRepo) find(ctx context.Context, filter bson.M) ([]models.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meetings: %w", err)
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, fmt.Errorf("error decoding meetings: %w", err)
	}
	return meetings, nil
}
