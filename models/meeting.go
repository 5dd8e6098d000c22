package models

import "time"

// Recurrence rules accepted on meeting creation.
const (
	RecurrenceNone     = "none"
	RecurrenceDaily    = "daily"
	RecurrenceWeekly   = "weekly"
	RecurrenceMonthly  = "monthly"
	RecurrenceAnnually = "annually"
)

// CanonicalTimezone is the zone every persisted meeting date/time is expressed in.
const CanonicalTimezone = "UTC"

// Meeting is one scheduled tutoring session. Dates are "YYYY-MM-DD" and times "HH:mm", both in UTC.
type Meeting struct {
	ID               string    `bson:"_id" json:"_id"`
	Name             string    `bson:"meetingname,omitempty" json:"meetingname,omitempty"`
	Type             string    `bson:"meetingtype" json:"meetingtype"`
	StartDate        string    `bson:"meetingstartdate" json:"meetingstartdate"`
	StartTime        string    `bson:"meetingstarttime" json:"meetingstarttime"`
	EndDate          string    `bson:"meetingenddate" json:"meetingenddate"`
	EndTime          string    `bson:"meetingendtime" json:"meetingendtime"`
	TutorID          string    `bson:"tutorid" json:"tutorid"`
	StudentName      string    `bson:"meetingstudent" json:"meetingstudent"`
	StudentID        string    `bson:"meetingstudentid" json:"meetingstudentid"`
	StudentPhone     string    `bson:"meetingstudentphonenumber,omitempty" json:"meetingstudentphonenumber,omitempty"`
	Link             string    `bson:"meetinglink,omitempty" json:"meetinglink,omitempty"`
	Notes            string    `bson:"meetingnotes,omitempty" json:"meetingnotes,omitempty"`
	StudentTimezone  string    `bson:"meetingstudenttimezone" json:"meetingstudenttimezone"`
	ScheduleTimezone string    `bson:"meetingscheduletimezone" json:"meetingscheduletimezone"`
	Recurring        string    `bson:"meetingrecurring" json:"meetingrecurring"`
	RecurringNumber  int       `bson:"meetingrecurringnumber" json:"meetingrecurringnumber"`
	RecurringID      string    `bson:"meetingrecurringid,omitempty" json:"meetingrecurringid,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// MeetingRequest is the create payload. Dates and times are local to ScheduleTimezone.
type MeetingRequest struct {
	Name             string `json:"meetingname"`
	Type             string `json:"meetingtype"`
	StartDate        string `json:"meetingstartdate"`
	StartTime        string `json:"meetingstarttime"`
	EndDate          string `json:"meetingenddate"`
	EndTime          string `json:"meetingendtime"`
	TutorID          string `json:"tutorid"`
	StudentName      string `json:"meetingstudent"`
	StudentID        string `json:"meetingstudentid"`
	StudentPhone     string `json:"meetingstudentphonenumber"`
	Link             string `json:"meetinglink"`
	Notes            string `json:"meetingnotes"`
	StudentTimezone  string `json:"meetingstudenttimezone"`
	ScheduleTimezone string `json:"meetingscheduletimezone"`
	Recurring        string `json:"meetingrecurring"`
	RecurringNumber  int    `json:"meetingrecurringnumber"`
}

// MeetingPatch lists the fields a caller may change on an existing meeting.
// A nil field is left untouched.
type MeetingPatch struct {
	Name             *string `json:"meetingname"`
	Type             *string `json:"meetingtype"`
	StartDate        *string `json:"meetingstartdate"`
	StartTime        *string `json:"meetingstarttime"`
	EndDate          *string `json:"meetingenddate"`
	EndTime          *string `json:"meetingendtime"`
	StudentName      *string `json:"meetingstudent"`
	StudentID        *string `json:"meetingstudentid"`
	StudentPhone     *string `json:"meetingstudentphonenumber"`
	Link             *string `json:"meetinglink"`
	Notes            *string `json:"meetingnotes"`
	StudentTimezone  *string `json:"meetingstudenttimezone"`
	ScheduleTimezone *string `json:"meetingscheduletimezone"`
}

// TouchesTime reports whether the patch changes anything that moves the meeting interval.
func (p MeetingPatch) TouchesTime() bool {
	for _, f := range []*string{p.StartDate, p.StartTime, p.EndDate, p.EndTime, p.ScheduleTimezone} {
		if f != nil && *f != "" {
			return true
		}
	}
	return false
}

// SeriesDeleteResult summarizes a recurring-series deletion.
type SeriesDeleteResult struct {
	RecurringID string `json:"meetingrecurringid"`
	Matched     int    `json:"matched"`
	Deleted     int    `json:"deleted"`
}
