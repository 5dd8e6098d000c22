// File: database/repository/meeting/interface.go
package meetingRepo

import (
	"context"
	"errors"
	"fmt"

	"tutorsched/database"
	"tutorsched/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no meeting matches the requested id.
var ErrNotFound = errors.New("meeting not found")

type MeetingRepository interface {
	Create(ctx context.Context, meeting *models.Meeting) error
	// CreateMany inserts every meeting or none of them.
	CreateMany(ctx context.Context, meetings []models.Meeting) error
	GetByID(ctx context.Context, id string) (*models.Meeting, error)
	GetByTutor(ctx context.Context, tutorID string) ([]models.Meeting, error)
	GetBySeriesID(ctx context.Context, recurringID string) ([]models.Meeting, error)
	// FindCandidates returns the tutor's meetings whose stored date range touches
	// [startDate, endDate]. excludeID, when non-empty, is left out of the result.
	FindCandidates(ctx context.Context, tutorID, startDate, endDate, excludeID string) ([]models.Meeting, error)
	Update(ctx context.Context, meeting *models.Meeting) error
	DeleteByID(ctx context.Context, id string) error
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}

type mongoMeetingRepo struct {
	coll *mongo.Collection
}

// NewMongoMeetingRepo constructs a new MongoDB MeetingRepository.
func NewMongoMeetingRepo() MeetingRepository {
	repo := &mongoMeetingRepo{
		coll: database.Database().Collection("meetings"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		fmt.Printf("failed to create meeting indexes: %v\n", err)
	}
	return repo
}
