package meeting

import (
	"errors"
	"testing"
	"time"
)

func TestToCanonical(t *testing.T) {
	cases := []struct {
		name  string
		date  string
		clock string
		zone  string
		want  string
	}{
		{"utc passthrough", "2024-01-01", "09:00", "UTC", "2024-01-01T09:00:00Z"},
		{"colombo", "2024-01-01", "09:00", "Asia/Colombo", "2024-01-01T03:30:00Z"},
		{"colombo crosses midnight", "2024-01-01", "02:00", "Asia/Colombo", "2023-12-31T20:30:00Z"},
		{"new york winter", "2024-01-15", "09:00", "America/New_York", "2024-01-15T14:00:00Z"},
		{"new york summer", "2024-07-15", "09:00", "America/New_York", "2024-07-15T13:00:00Z"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToCanonical(tc.date, tc.clock, tc.zone)
			if err != nil {
				t.Fatalf("ToCanonical: %v", err)
			}
			if got.Format(time.RFC3339) != tc.want {
				t.Fatalf("ToCanonical() = %s, want %s", got.Format(time.RFC3339), tc.want)
			}
			if got.Location() != time.UTC {
				t.Fatalf("location = %v, want UTC", got.Location())
			}
		})
	}
}

func TestToCanonicalRejectsBadInput(t *testing.T) {
	cases := []struct {
		name              string
		date, clock, zone string
	}{
		{"unknown zone", "2024-01-01", "09:00", "Mars/Olympus"},
		{"empty zone", "2024-01-01", "09:00", ""},
		{"bad date", "2024-13-01", "09:00", "UTC"},
		{"bad clock", "2024-01-01", "9am", "UTC"},
		{"seconds", "2024-01-01", "09:00:00", "UTC"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ToCanonical(tc.date, tc.clock, tc.zone)
			var tErr *InvalidTimeInputError
			if !errors.As(err, &tErr) {
				t.Fatalf("err = %v, want InvalidTimeInputError", err)
			}
		})
	}
}

func TestFormatAndParseCanonical(t *testing.T) {
	ny, _ := time.LoadLocation("America/New_York")
	instant := time.Date(2024, 3, 10, 22, 15, 0, 0, ny)

	date, clock := FormatCanonical(instant)
	if date != "2024-03-11" || clock != "02:15" {
		t.Fatalf("FormatCanonical() = %s %s", date, clock)
	}
	back, err := ParseCanonical(date, clock)
	if err != nil {
		t.Fatalf("ParseCanonical: %v", err)
	}
	if !back.Equal(instant) {
		t.Fatalf("round trip = %v, want %v", back, instant)
	}
}
