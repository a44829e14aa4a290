package datemath

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// DateLayout is the wire format of task due dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format of task due times (24-hour clock).
	TimeLayout = "15:04"
)

var (
	dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeShape = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// "Local" selects the host timezone.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	// Unknown phrases resolve to today.
	return p.startOfDay(baseTime), nil
}

// Today formats the calendar day of now as YYYY-MM-DD.
func (p *Parser) Today(now time.Time) string {
	d, _ := p.Parse("today", now)
	return d.Format(DateLayout)
}

// Tomorrow formats the calendar day after now as YYYY-MM-DD.
func (p *Parser) Tomorrow(now time.Time) string {
	d, _ := p.Parse("tomorrow", now)
	return d.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string as midnight in the parser's timezone.
func (p *Parser) ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, p.location)
}

// IsCalendarDate reports whether s has the YYYY-MM-DD shape and names a real day.
func IsCalendarDate(s string) bool {
	if !dateShape.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// HasDateShape reports whether s looks like YYYY-MM-DD without checking the calendar.
func HasDateShape(s string) bool {
	return dateShape.MatchString(s)
}

// IsClockTime reports whether s has the HH:MM shape and is a valid time of day.
func IsClockTime(s string) bool {
	if !timeShape.MatchString(s) {
		return false
	}
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

// HasTimeShape reports whether s looks like HH:MM without checking ranges.
func HasTimeShape(s string) bool {
	return timeShape.MatchString(s)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
// The same weekday as baseTime resolves to one week later.
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	base := baseTime.In(p.location)
	daysUntil := int(targetWeekday - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(base.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
