package civil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TimeOfDay
		ok    bool
	}{
		{"seconds", "09:15:30", TimeOfDay{9, 15, 30}, true},
		{"minutes only", "18:00", TimeOfDay{18, 0, 0}, true},
		{"trimmed", " 08:59 ", TimeOfDay{8, 59, 0}, true},
		{"just after midnight", "00:00:01", TimeOfDay{0, 0, 1}, true},
		{"empty", "", TimeOfDay{}, false},
		{"zero sentinel short", "00:00", TimeOfDay{}, false},
		{"zero sentinel long", "00:00:00", TimeOfDay{}, false},
		{"single digit hour", "9:00", TimeOfDay{}, false},
		{"hour out of range", "24:00", TimeOfDay{}, false},
		{"minute out of range", "10:60", TimeOfDay{}, false},
		{"garbage", "abc", TimeOfDay{}, false},
		{"too many parts", "10:00:00:00", TimeOfDay{}, false},
		{"sign", "-1:00", TimeOfDay{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimeOfDay(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDaySub(t *testing.T) {
	in := MustParseTimeOfDay("09:00:30")
	out := MustParseTimeOfDay("17:00")

	assert.Equal(t, 7*time.Hour+59*time.Minute+30*time.Second, out.Sub(in))
	assert.Equal(t, -(7*time.Hour + 59*time.Minute + 30*time.Second), in.Sub(out))
	assert.Equal(t, "09:00:30", in.String())
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2024, time.January, 31)

	assert.Equal(t, Date{2024, time.February, 1}, d.AddDays(1))
	assert.Equal(t, Date{2024, time.February, 29}, d.AddDays(29))
	assert.Equal(t, time.Wednesday, d.Weekday())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.After(d.AddDays(-1)))
	assert.Equal(t, 0, d.Compare(NewDate(2024, time.January, 31)))
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2023, time.February))
	assert.Len(t, MonthDates(2024, time.April), 30)

	first, last := MonthBounds(2024, time.June)
	assert.Equal(t, "2024-06-01", first.String())
	assert.Equal(t, "2024-06-30", last.String())
}

func TestRangeContainsIsInclusive(t *testing.T) {
	r := Range{From: NewDate(2024, time.June, 3), To: NewDate(2024, time.June, 5)}

	assert.True(t, r.Contains(r.From))
	assert.True(t, r.Contains(NewDate(2024, time.June, 4)))
	assert.True(t, r.Contains(r.To))
	assert.False(t, r.Contains(NewDate(2024, time.June, 2)))
	assert.False(t, r.Contains(NewDate(2024, time.June, 6)))
}

func TestDateTextRoundTripAsMapKey(t *testing.T) {
	m := map[Date]string{NewDate(2024, time.March, 5): "P"}

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"2024-03-05":"P"}`, string(b))

	var back map[Date]string
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, m, back)
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("2024-13-01")
	assert.Error(t, err)
}

func TestNormalizer(t *testing.T) {
	n, err := NewNormalizer("Asia/Dubai")
	require.NoError(t, err)

	// 22:30 UTC on the 1st is already the 2nd in Dubai (UTC+4).
	ts := time.Date(2024, time.March, 1, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, NewDate(2024, time.March, 2), n.NormalizeDate(ts))

	d, err := n.ParseDate("2024-03-01T22:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.March, 2), d)

	d, err = n.ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.March, 1), d)

	_, err = n.ParseDate("yesterday")
	assert.Error(t, err)

	_, err = NewNormalizer("Not/AZone")
	assert.Error(t, err)

	utc, err := NewNormalizer("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, utc.Location())
}
