package ginserver

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"stellarstay/internal/app/dto"
)

var errInvalidDate = errors.New("dates must be calendar dates in YYYY-MM-DD form")

// parseDate accepts a calendar date, or an RFC3339 timestamp whose
// time-of-day component is discarded. An empty value yields the zero time
// so that draft validation can report the missing field.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dto.DateLayout, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", errInvalidDate, raw)
}

func parseInt(raw string) int {
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseInt64(raw string) int64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseBoolPtr(raw string) *bool {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
