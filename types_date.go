package costbasis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the ISO-8601 format used to write dates.
const DateFormat = "2006-01-02"

// readDateFormat also accepts single digit months and days: "2025-7-1".
const readDateFormat = "2006-1-2"

// Date is a calendar day.
//
// Activities, splits and lots are all dated at the day level: two events on the
// same day are simultaneous for the calculator.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date: NewDate(2024, 1, 32) is 2024-02-01.
func NewDate(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{y, m, d}
}

// EndOfYear returns December 31st of year.
func EndOfYear(year int) Date { return Date{year, time.December, 31} }

// Today returns the current date, in the local time zone.
func Today() Date { return NewDate(time.Now().Date()) }

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

// IsZero returns true for the zero Date, used for a missing date.
func (d Date) IsZero() bool { return d == Date{} }

// time is midnight UTC of that day.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) String() string { return d.time().Format(DateFormat) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after x.
func (d Date) Compare(x Date) int {
	switch {
	case d.y != x.y:
		return cmpInt(d.y, x.y)
	case d.m != x.m:
		return cmpInt(int(d.m), int(x.m))
	default:
		return cmpInt(d.d, x.d)
	}
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }
func (d Date) After(x Date) bool  { return d.Compare(x) > 0 }

// DaysSince returns the number of days elapsed from x to d. It is the holding
// period of a lot bought on x and sold on d.
func (d Date) DaysSince(x Date) int { return int(d.time().Sub(x.time()) / (24 * time.Hour)) }

// Add returns the date i days after d.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

var (
	yearRE     = regexp.MustCompile(`^\d{4}$`)
	relativeRE = regexp.MustCompile(`^([+-])(\d+)([dwmy])$`)
)

// ParseDate parses a date given on the command line. Besides "2025-07-01" and
// "2025-7-1", it accepts:
//
//   - "today"
//   - a year, "2024", meaning the last day of that year,
//   - a date relative to today, "-1d", "+2w", "-3m" or "-1y".
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	switch {
	case str == "today":
		return Today(), nil

	case yearRE.MatchString(str):
		year, _ := strconv.Atoi(str)
		return EndOfYear(year), nil

	case relativeRE.MatchString(str):
		match := relativeRE.FindStringSubmatch(str)
		n, err := strconv.Atoi(match[2])
		if err != nil {
			return Date{}, fmt.Errorf("invalid relative date %q: %w", str, err)
		}
		if match[1] == "-" {
			n = -n
		}
		today := Today()
		switch match[3] {
		case "w":
			return today.Add(7 * n), nil
		case "m":
			return NewDate(today.y, today.m+time.Month(n), today.d), nil
		case "y":
			return NewDate(today.y+n, today.m, today.d), nil
		default:
			return today.Add(n), nil
		}
	}
	return parseDataDate(str)
}

// parseDataDate parses the dates of data files, only accepting the absolute format.
func parseDataDate(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	on, err := parseDataDate(str)
	if err != nil {
		return err
	}
	*d = on
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }
