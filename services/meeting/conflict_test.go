package meeting

import (
	"testing"
	"time"

	"tutorsched/models"
)

func at(h, m int) time.Time {
	return time.Date(2024, 1, 1, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"partial", at(9, 0), at(10, 0), at(9, 30), at(10, 30), true},
		{"touching", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"disjoint", at(9, 0), at(10, 0), at(11, 0), at(12, 0), false},
		{"contains", at(8, 0), at(12, 0), at(9, 0), at(10, 0), true},
		{"identical", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.s1, tc.e1, tc.s2, tc.e2); got != tc.want {
				t.Fatalf("Overlaps(a, b) = %v, want %v", got, tc.want)
			}
			if got := Overlaps(tc.s2, tc.e2, tc.s1, tc.e1); got != tc.want {
				t.Fatalf("Overlaps(b, a) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOverlapsSelf(t *testing.T) {
	for _, d := range []time.Duration{time.Minute, time.Hour, 36 * time.Hour} {
		s := at(9, 0)
		if !Overlaps(s, s.Add(d), s, s.Add(d)) {
			t.Fatalf("interval of %v does not overlap itself", d)
		}
	}
}

func TestClassifyOverlap(t *testing.T) {
	es, ee := at(9, 0), at(11, 0)
	cases := []struct {
		name       string
		start, end time.Time
		want       string
	}{
		{"covers existing", at(8, 0), at(12, 0), OverlapContains},
		{"inside existing", at(9, 30), at(10, 30), OverlapWithin},
		{"starts inside", at(10, 0), at(12, 0), OverlapStartsInside},
		{"ends inside", at(8, 0), at(10, 0), OverlapEndsInside},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyOverlap(es, ee, tc.start, tc.end); got != tc.want {
				t.Fatalf("ClassifyOverlap() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestFirstConflict(t *testing.T) {
	candidates := []models.Meeting{
		{ID: "early", StartDate: "2024-01-01", StartTime: "07:00", EndDate: "2024-01-01", EndTime: "08:00"},
		{ID: "a", StartDate: "2024-01-01", StartTime: "09:00", EndDate: "2024-01-01", EndTime: "10:00"},
		{ID: "b", StartDate: "2024-01-01", StartTime: "09:30", EndDate: "2024-01-01", EndTime: "11:00"},
	}

	hit, err := FirstConflict(candidates, at(9, 45), at(10, 15))
	if err != nil {
		t.Fatalf("FirstConflict: %v", err)
	}
	if hit == nil || hit.ID != "a" {
		t.Fatalf("FirstConflict() = %v, want meeting a", hit)
	}

	hit, err = FirstConflict(candidates, at(8, 0), at(9, 0))
	if err != nil || hit != nil {
		t.Fatalf("FirstConflict() = %v, %v; want no conflict", hit, err)
	}

	bad := []models.Meeting{{ID: "x", StartDate: "garbage", StartTime: "09:00", EndDate: "2024-01-01", EndTime: "10:00"}}
	if _, err := FirstConflict(bad, at(9, 0), at(10, 0)); err == nil {
		t.Fatal("expected error for unreadable stored meeting")
	}
}
