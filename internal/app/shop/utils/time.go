package utils

import "time"

// ParseTimePtr parses an RFC3339 string pointer, the shape timestamps
// take in read-model DTOs, into *time.Time in UTC. Nil, empty and
// unparseable inputs all come back nil.
func ParseTimePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	tt := t.UTC()
	return &tt
}

// TimeOrZero dereferences p, falling back to the zero time for nil.
func TimeOrZero(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}
