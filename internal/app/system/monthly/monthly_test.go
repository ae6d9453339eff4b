package monthly

import (
	"testing"
	"time"

	"github.com/learnercafe/learnercafe/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func rawValue(t *testing.T, v any) bson.RawValue {
	t.Helper()
	typ, data, err := bson.MarshalValue(v)
	require.NoError(t, err)
	return bson.RawValue{Type: typ, Value: data}
}

func TestCounts_Example(t *testing.T) {
	tally := NewTally()
	for _, d := range []string{"2024-01-05", "2024-01-20", "2024-03-02"} {
		tally.AddValue(rawValue(t, d))
	}

	want := []models.MonthlyCount{
		{Year: 2024, Month: "January", Count: 2},
		{Year: 2024, Month: "March", Count: 1},
	}
	assert.Equal(t, want, tally.Counts())
	assert.Zero(t, tally.Skipped())
}

func TestCounts_SortedByYearThenMonth(t *testing.T) {
	tally := NewTally()
	dates := []time.Time{
		time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.December, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2024, time.November, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		tally.Add(d)
	}

	got := tally.Counts()
	require.Len(t, got, 5)
	assert.Equal(t, models.MonthlyCount{Year: 2023, Month: "December", Count: 1}, got[0])
	assert.Equal(t, models.MonthlyCount{Year: 2024, Month: "February", Count: 1}, got[1])
	assert.Equal(t, models.MonthlyCount{Year: 2024, Month: "November", Count: 1}, got[2])
	assert.Equal(t, models.MonthlyCount{Year: 2025, Month: "January", Count: 1}, got[3])
	assert.Equal(t, models.MonthlyCount{Year: 2025, Month: "February", Count: 1}, got[4])
}

func TestAddValue_SkipsUnreadable(t *testing.T) {
	tally := NewTally()
	tally.AddValue(rawValue(t, "2024-05-06T10:00:00.000Z"))
	tally.AddValue(rawValue(t, "not a date"))
	tally.AddValue(rawValue(t, ""))
	tally.AddValue(rawValue(t, true))
	tally.AddValue(bson.RawValue{}) // missing field

	total := 0
	for _, c := range tally.Counts() {
		total += c.Count
	}
	assert.Equal(t, 1, total)
	assert.Equal(t, 4, tally.Skipped())
}

func TestAddValue_DateTimeAndMillis(t *testing.T) {
	ts := time.Date(2024, time.August, 14, 12, 0, 0, 0, time.UTC)

	tally := NewTally()
	tally.AddValue(rawValue(t, primitive.NewDateTimeFromTime(ts)))
	tally.AddValue(rawValue(t, ts.UnixMilli()))
	tally.AddValue(rawValue(t, float64(ts.UnixMilli())))

	assert.Equal(t, []models.MonthlyCount{{Year: 2024, Month: "August", Count: 3}}, tally.Counts())
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in    string
		year  int
		month time.Month
	}{
		{"2024-01-05", 2024, time.January},
		{"2024-03-02T08:15:00Z", 2024, time.March},
		{"2024-03-02T08:15:00.123Z", 2024, time.March},
		{"2024-07-09T10:11:12", 2024, time.July},
		{"Tue Oct 15 2024 21:40:02 GMT+0000 (Coordinated Universal Time)", 2024, time.October},
		{"Tue, 15 Oct 2024 21:40:02 GMT", 2024, time.October},
		{"10/15/2024, 9:40:02 PM", 2024, time.October},
		{"10/15/2024", 2024, time.October},
		{"2024-1-5", 2024, time.January},
		{"2024/11/5", 2024, time.November},
		{"Jan 5, 2024", 2024, time.January},
		{"January 5, 2024", 2024, time.January},
		{"Sep 30, 2023, 11:59:00 PM", 2023, time.September},
		{"Sep 30, 2023 23:59:00", 2023, time.September},
		{"Sat, Sep 30, 2023", 2023, time.September},
		{"Saturday, September 30, 2023", 2023, time.September},
		{"5 Jan 2024", 2024, time.January},
		{"5 January 2024", 2024, time.January},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.year, got.UTC().Year())
			assert.Equal(t, tt.month, got.UTC().Month())
		})
	}

	for _, bad := range []string{"", "   ", "yesterday", "2024-13-01", "NaN", "31/12/2024", "Janu 5, 2024"} {
		_, ok := ParseTimestamp(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", MonthName(0))
	assert.Equal(t, "December", MonthName(11))
	assert.Equal(t, "", MonthName(12))
	assert.Equal(t, "", MonthName(-1))
}

func TestAddValue_UsesBSONType(t *testing.T) {
	v := rawValue(t, "2024-02-10")
	assert.Equal(t, bsontype.String, v.Type)
}
