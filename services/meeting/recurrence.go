package meeting

import (
	"time"

	"tutorsched/models"
)

// Occurrence is one concrete instance produced from a create request.
type Occurrence struct {
	Index     int
	LocalDate string // start date in the scheduling zone
	Start     time.Time
	End       time.Time
}

func validRule(rule string) bool {
	switch rule {
	case models.RecurrenceNone, models.RecurrenceDaily, models.RecurrenceWeekly,
		models.RecurrenceMonthly, models.RecurrenceAnnually:
		return true
	}
	return false
}

// ExpandOccurrences turns a create request into its ordered occurrences in UTC. A request
// with rule "none" yields exactly one occurrence; any other rule yields RecurringNumber of them.
// Each occurrence keeps the request's wall-clock times and its start-to-end day offset.
func ExpandOccurrences(req models.MeetingRequest, maxCount int) ([]Occurrence, error) {
	if !validRule(req.Recurring) {
		return nil, &InvalidRecurrenceRuleError{Rule: req.Recurring}
	}

	count := 1
	if req.Recurring != models.RecurrenceNone {
		count = req.RecurringNumber
		if count < 1 {
			return nil, NewValidationError("meetingrecurringnumber", "must be at least 1 for a recurring meeting")
		}
		if maxCount > 0 && count > maxCount {
			return nil, NewValidationError("meetingrecurringnumber", "exceeds the maximum number of occurrences")
		}
	}

	loc, err := LoadZone(req.ScheduleTimezone)
	if err != nil {
		return nil, err
	}
	firstStart, err := civilDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	firstEnd, err := civilDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	dayOffset := int(firstEnd.Sub(firstStart).Hours() / 24)

	out := make([]Occurrence, 0, count)
	for i := 0; i < count; i++ {
		day := AdvanceDate(firstStart, req.Recurring, i)
		startDate := day.Format(DateLayout)
		endDate := day.AddDate(0, 0, dayOffset).Format(DateLayout)

		start, err := parseIn(startDate, req.StartTime, loc)
		if err != nil {
			return nil, err
		}
		end, err := parseIn(endDate, req.EndTime, loc)
		if err != nil {
			return nil, err
		}
		if !start.Before(end) {
			return nil, &InvalidTimeInputError{
				Input:  startDate + " " + req.StartTime,
				Reason: "meeting must end after it starts",
			}
		}
		out = append(out, Occurrence{Index: i, LocalDate: startDate, Start: start, End: end})
	}
	return out, nil
}

// AdvanceDate moves a calendar date forward n steps of rule. Month and year steps land on the
// last day of the target month when the source day does not exist there (Jan 31 + 1 month is
// the end of February).
func AdvanceDate(date time.Time, rule string, n int) time.Time {
	switch rule {
	case models.RecurrenceDaily:
		return date.AddDate(0, 0, n)
	case models.RecurrenceWeekly:
		return date.AddDate(0, 0, 7*n)
	case models.RecurrenceMonthly:
		return addMonthsClamped(date, n)
	case models.RecurrenceAnnually:
		return addMonthsClamped(date, 12*n)
	}
	return date
}

func addMonthsClamped(date time.Time, months int) time.Time {
	y, m, d := date.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, date.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, date.Location())
}

// civilDate parses a date with no zone attached; arithmetic on it is pure calendar math.
func civilDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, &InvalidTimeInputError{Input: date, Reason: "expected YYYY-MM-DD"}
	}
	return t, nil
}
