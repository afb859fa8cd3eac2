package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewRejectsInvalidOrder(t *testing.T) {
	_, err := New(date(2026, time.March, 10), date(2026, time.March, 10))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = New(date(2026, time.March, 10), date(2026, time.March, 9))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = New(time.Time{}, date(2026, time.March, 10))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNewTruncatesTimeOfDay(t *testing.T) {
	dr, err := New(
		time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC),
		time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC),
	)
	assert.NoError(t, err)
	assert.Equal(t, date(2026, time.March, 10), dr.CheckIn)
	assert.Equal(t, date(2026, time.March, 12), dr.CheckOut)
	assert.Equal(t, 2, dr.Nights())
}

func TestNights(t *testing.T) {
	dr, err := New(date(2026, time.January, 2), date(2026, time.January, 5))
	assert.NoError(t, err)
	assert.Equal(t, 3, dr.Nights())
}

func TestEachDayCoversHalfOpenInterval(t *testing.T) {
	dr, err := New(date(2026, time.January, 2), date(2026, time.January, 5))
	assert.NoError(t, err)

	var days []time.Time
	dr.EachDay(func(day time.Time) { days = append(days, day) })

	assert.Len(t, days, 3)
	assert.Equal(t, date(2026, time.January, 2), days[0])
	assert.Equal(t, date(2026, time.January, 4), days[2])
}

func TestContainsDate(t *testing.T) {
	dr, err := New(date(2026, time.January, 2), date(2026, time.January, 5))
	assert.NoError(t, err)

	assert.True(t, dr.ContainsDate(date(2026, time.January, 2)))
	assert.True(t, dr.ContainsDate(date(2026, time.January, 4)))
	assert.False(t, dr.ContainsDate(date(2026, time.January, 5)))
	assert.False(t, dr.ContainsDate(date(2026, time.January, 1)))
}
