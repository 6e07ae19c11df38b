package civil

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// Normalizer converts timestamps arriving at the API or storage boundary
// into calendar dates of the business time zone. Date-only strings are
// taken as already local.
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer loads the named IANA zone. An empty name means UTC.
func NewNormalizer(zone string) (Normalizer, error) {
	if strings.TrimSpace(zone) == "" {
		return Normalizer{loc: time.UTC}, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Normalizer{}, fmt.Errorf("load time zone %q: %w", zone, err)
	}
	return Normalizer{loc: loc}, nil
}

// NormalizerIn wraps an already loaded location.
func NormalizerIn(loc *time.Location) Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return Normalizer{loc: loc}
}

func (n Normalizer) Location() *time.Location {
	if n.loc == nil {
		return time.UTC
	}
	return n.loc
}

// NormalizeDate returns the business-zone date t falls on.
func (n Normalizer) NormalizeDate(t time.Time) Date {
	return DateOf(t.In(n.Location()))
}

// ParseDate accepts YYYY-MM-DD or an RFC3339 timestamp.
func (n Normalizer) ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if d, err := ParseDate(s); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
	}
	return n.NormalizeDate(t), nil
}

// Today returns the current business-zone date.
func (n Normalizer) Today() Date {
	return n.NormalizeDate(time.Now())
}
