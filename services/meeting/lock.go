package meeting

import (
	"context"
	"errors"

	"tutorsched/utils"
)

// lockTutor takes the tutor's schedule lock. A nil Locker runs unguarded.
func (s *DefaultMeetingService) lockTutor(ctx context.Context, tutorID string) (func(), error) {
	if s.Locker == nil {
		return func() {}, nil
	}
	release, err := s.Locker.Lock(ctx, tutorID)
	if err != nil {
		if errors.Is(err, utils.ErrLockTimeout) {
			return nil, &LockTimeoutError{TutorID: tutorID}
		}
		return nil, err
	}
	return release, nil
}
