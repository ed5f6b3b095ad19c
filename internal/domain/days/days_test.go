package days

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount_Inclusive(t *testing.T) {
	from := MustParse("2024-03-01")

	assert.Equal(t, 1, Count(from, from))
	assert.Equal(t, 10, Count(from, MustParse("2024-03-10")))
	assert.Equal(t, 0, Count(from, MustParse("2024-02-28")))
}

func TestBetween_AcrossLeapDayAndMonths(t *testing.T) {
	assert.Equal(t, 2, Between(MustParse("2024-02-28"), MustParse("2024-03-01")))
	assert.Equal(t, -2, Between(MustParse("2024-03-01"), MustParse("2024-02-28")))
	assert.Equal(t, 366, Between(MustParse("2024-01-01"), MustParse("2025-01-01")))
}

func TestCount_Centuries(t *testing.T) {
	from, to := MustParse("2000-01-01"), MustParse("2400-01-01")
	assert.Equal(t, 146098, Count(from, to))
	assert.Equal(t, -146097, Between(to, from))
}

func TestInRange(t *testing.T) {
	from := MustParse("2024-03-10")
	to := MustParse("2024-03-12")

	assert.True(t, InRange(from, from, to))
	assert.True(t, InRange(to, from, to))
	assert.True(t, InRange(MustParse("2024-03-11"), from, to))
	assert.False(t, InRange(MustParse("2024-03-09"), from, to))
	assert.False(t, InRange(MustParse("2024-03-13"), from, to))
}

func TestOf_UsesInstantLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	// 23:30 UTC del 14 ya es el 15 en UTC+3
	instant := time.Date(2024, 3, 15, 2, 30, 0, 0, loc)

	assert.Equal(t, "2024-03-15", Of(instant).String())
	assert.Equal(t, "2024-03-14", Of(instant.UTC()).String())
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(MustParse("2024-02-17"))
	assert.Equal(t, "2024-02-01", first.String())
	assert.Equal(t, "2024-02-29", last.String())

	first, last = MonthBounds(MustParse("2023-12-31"))
	assert.Equal(t, "2023-12-01", first.String())
	assert.Equal(t, "2023-12-31", last.String())
}

func TestWeekAndYearBounds(t *testing.T) {
	// 2024-03-14 es jueves
	first, last := WeekBounds(MustParse("2024-03-14"))
	assert.Equal(t, "2024-03-11", first.String())
	assert.Equal(t, "2024-03-17", last.String())

	first, last = YearBounds(MustParse("2024-03-14"))
	assert.Equal(t, "2024-01-01", first.String())
	assert.Equal(t, "2024-12-31", last.String())
}

func TestEach(t *testing.T) {
	got := Each(MustParse("2024-02-28"), MustParse("2024-03-01"))
	require.Len(t, got, 3)
	assert.Equal(t, "2024-02-29", got[1].String())
	assert.Empty(t, Each(MustParse("2024-03-02"), MustParse("2024-03-01")))
}

func TestJSON(t *testing.T) {
	var v struct {
		D Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2024-03-15"}`), &v))
	assert.True(t, v.D.Equal(New(2024, time.March, 15)))

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2024-03-15"}`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`{"d":"15/03/2024"}`), &v))
}

func TestScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-15", d.String())

	require.NoError(t, d.Scan("2024-04-01"))
	assert.Equal(t, "2024-04-01", d.String())

	assert.Error(t, d.Scan(42))
}
