// Package monthly buckets registration timestamps by calendar month.
//
// Buckets are keyed by (year, month) in UTC. Values that cannot be read as
// a timestamp are not bucketed; they are counted as skipped so callers can
// report them.
package monthly

import (
	"sort"
	"strings"
	"time"

	"github.com/learnercafe/learnercafe/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English name of a zero-based month index.
func MonthName(i int) string {
	if i < 0 || i >= len(monthNames) {
		return ""
	}
	return monthNames[i]
}

// layouts are tried in order by ParseTimestamp. They cover ISO-8601 as
// produced by JSON.stringify(new Date()), numeric dates with or without
// zero padding, written-out English month dates, and the Date.toString /
// toUTCString / en-US locale forms browsers emit. Month-first is assumed
// for slash dates; day-first strings such as "31/12/2024" are skipped.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-1-2",
	"2006/1/2",
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	time.RFC1123,
	time.RFC1123Z,
	"1/2/2006, 3:04:05 PM",
	"1/2/2006",
	"Jan 2, 2006, 3:04:05 PM",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"Mon, Jan 2, 2006",
	"Monday, January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// ParseTimestamp reads s using the accepted layouts. Layouts without a zone
// are taken as UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	// Date.toString appends a parenthesized zone name: "... GMT+0600 (Bangladesh Standard Time)".
	if i := strings.Index(s, " ("); i > 0 && strings.HasSuffix(s, ")") {
		s = s[:i]
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type key struct {
	year  int
	month int // 0-based
}

// Tally accumulates per-month counts. The zero value is not usable; call
// NewTally.
type Tally struct {
	counts  map[key]int
	skipped int
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[key]int)}
}

// Add counts one registration at ts.
func (t *Tally) Add(ts time.Time) {
	ts = ts.UTC()
	t.counts[key{year: ts.Year(), month: int(ts.Month()) - 1}]++
}

// AddValue counts one stored date value. Strings go through
// ParseTimestamp, BSON datetimes are used directly and numbers are read as
// milliseconds since the epoch. Anything else, including a missing value,
// is skipped.
func (t *Tally) AddValue(v bson.RawValue) {
	if ts, ok := timeOf(v); ok {
		t.Add(ts)
		return
	}
	t.skipped++
}

// Skipped is the number of values that could not be bucketed.
func (t *Tally) Skipped() int { return t.skipped }

// Counts returns the buckets sorted by year, then month.
func (t *Tally) Counts() []models.MonthlyCount {
	keys := make([]key, 0, len(t.counts))
	for k := range t.counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	out := make([]models.MonthlyCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.MonthlyCount{
			Year:  k.year,
			Month: MonthName(k.month),
			Count: t.counts[k],
		})
	}
	return out
}

func timeOf(v bson.RawValue) (time.Time, bool) {
	switch v.Type {
	case bsontype.String:
		s, ok := v.StringValueOK()
		if !ok {
			return time.Time{}, false
		}
		return ParseTimestamp(s)
	case bsontype.DateTime:
		ms, ok := v.DateTimeOK()
		if !ok {
			return time.Time{}, false
		}
		return time.UnixMilli(ms), true
	case bsontype.Int64:
		ms, ok := v.Int64OK()
		return time.UnixMilli(ms), ok
	case bsontype.Int32:
		ms, ok := v.Int32OK()
		return time.UnixMilli(int64(ms)), ok
	case bsontype.Double:
		ms, ok := v.DoubleOK()
		return time.UnixMilli(int64(ms)), ok
	default:
		return time.Time{}, false
	}
}
