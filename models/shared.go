package models

// ReminderPayload is the body of a queued meeting reminder task.
type ReminderPayload struct {
	MeetingID string `json:"meetingId"`
	TutorID   string `json:"tutorId"`
	// Canonical start at enqueue time; the worker skips reminders whose meeting has moved since.
	StartDate string `json:"startDate"`
	StartTime string `json:"startTime"`
}
