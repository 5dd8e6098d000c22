package meeting

import (
	"time"

	"tutorsched/models"
)

const (
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
	dateTimeLayout = DateLayout + " " + ClockLayout
)

// LoadZone resolves an IANA zone name. The empty name is rejected rather than read as UTC.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return nil, &InvalidTimeInputError{Input: name, Reason: "timezone is required"}
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &InvalidTimeInputError{Input: name, Reason: "unknown timezone"}
	}
	return loc, nil
}

// ToCanonical reads date and clock as wall time in zone and returns the UTC instant.
func ToCanonical(date, clock, zone string) (time.Time, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return time.Time{}, err
	}
	return parseIn(date, clock, loc)
}

// FormatCanonical renders an instant as the stored UTC date and clock strings.
func FormatCanonical(t time.Time) (string, string) {
	u := t.UTC()
	return u.Format(DateLayout), u.Format(ClockLayout)
}

// ParseCanonical rebuilds a stored UTC date and clock pair.
func ParseCanonical(date, clock string) (time.Time, error) {
	return parseIn(date, clock, time.UTC)
}

func parseIn(date, clock string, loc *time.Location) (time.Time, error) {
	input := date + " " + clock
	t, err := time.ParseInLocation(dateTimeLayout, input, loc)
	if err != nil {
		return time.Time{}, &InvalidTimeInputError{Input: input, Reason: "expected YYYY-MM-DD HH:mm"}
	}
	return t.UTC(), nil
}

// storedInterval returns the UTC [start, end) of a persisted meeting.
func storedInterval(m models.Meeting) (time.Time, time.Time, error) {
	start, err := ParseCanonical(m.StartDate, m.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseCanonical(m.EndDate, m.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func applyCanonical(m *models.Meeting, start, end time.Time) {
	m.StartDate, m.StartTime = FormatCanonical(start)
	m.EndDate, m.EndTime = FormatCanonical(end)
	m.ScheduleTimezone = models.CanonicalTimezone
}
