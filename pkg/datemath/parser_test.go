package datemath_test

import (
	"testing"
	"time"

	"nl-task-parser/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Kolkata")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Local")
	if err != nil {
		t.Fatalf("unexpected error creating local parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2025, 6, 13, 15, 30, 0, 0, time.UTC) // Friday
	startOfBase := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Tomorrow", relative: "Tomorrow ", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Next Monday (from Fri)", relative: "next monday", want: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)},
		{name: "Next Wednesday (from Fri)", relative: "next wednesday", want: time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)},
		{name: "Next Friday (from Fri)", relative: "next friday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Unknown fallback", relative: "some random day", want: startOfBase},
		{name: "Invalid Next Weekday", relative: "next funday", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTodayTomorrow(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	tests := []struct {
		name         string
		now          time.Time
		wantToday    string
		wantTomorrow string
	}{
		{"Mid day", time.Date(2025, 6, 13, 12, 0, 0, 0, time.UTC), "2025-06-13", "2025-06-14"},
		{"Month end", time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC), "2025-06-30", "2025-07-01"},
		{"Year end", time.Date(2025, 12, 31, 8, 0, 0, 0, time.UTC), "2025-12-31", "2026-01-01"},
		{"Other zone", time.Date(2025, 6, 13, 23, 30, 0, 0, time.FixedZone("X", -3*3600)), "2025-06-14", "2025-06-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.Today(tt.now); got != tt.wantToday {
				t.Errorf("Today() = %s, want %s", got, tt.wantToday)
			}
			if got := parser.Tomorrow(tt.now); got != tt.wantTomorrow {
				t.Errorf("Tomorrow() = %s, want %s", got, tt.wantTomorrow)
			}
		})
	}
}

func TestShapes(t *testing.T) {
	dates := map[string]bool{
		"2025-06-20": true,
		"2024-02-29": true,
		"2025-02-29": false,
		"2025-13-01": false,
		"2025-6-1":   false,
		"":           false,
		"not-a-date": false,
	}
	for in, want := range dates {
		if got := datemath.IsCalendarDate(in); got != want {
			t.Errorf("IsCalendarDate(%q) = %v, want %v", in, got, want)
		}
	}
	if !datemath.HasDateShape("2025-02-30") {
		t.Errorf("HasDateShape should accept shape-valid but calendar-invalid dates")
	}

	times := map[string]bool{
		"17:00": true,
		"00:00": true,
		"23:59": true,
		"24:00": false,
		"25:99": false,
		"9:00":  false,
		"":      false,
	}
	for in, want := range times {
		if got := datemath.IsClockTime(in); got != want {
			t.Errorf("IsClockTime(%q) = %v, want %v", in, got, want)
		}
	}
	if !datemath.HasTimeShape("25:99") {
		t.Errorf("HasTimeShape should accept shape-valid but out-of-range times")
	}
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2025, 6, 13, 9, 0, 0, 0, time.UTC)
	var c datemath.Clock = datemath.FixedClock(at)
	if !c.Now().Equal(at) {
		t.Errorf("FixedClock.Now() = %v, want %v", c.Now(), at)
	}
}
