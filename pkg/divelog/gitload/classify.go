package gitload

import "strconv"

// outcome is the result kind of classifying a directory name.
type outcome int

const (
	// outcomeSkip marks a directory that is not dive data. It is not
	// recursed into.
	outcomeSkip outcome = iota

	// outcomeDescend marks a bare year or month directory. It is recursed
	// into with no side effect; its value reaches descendants through the
	// accumulated ancestor segments.
	outcomeDescend

	// outcomeTrip marks a trip directory.
	outcomeTrip

	// outcomeDive marks a dive directory.
	outcomeDive
)

// classification carries the outcome of classifying a directory together
// with the date and time fields extracted from its name and ancestors.
type classification struct {
	kind outcome

	year  int
	month int
	day   int

	hour   int
	minute int
	second int
}

var skip = classification{kind: outcomeSkip}

// classifyDirectory decides what a directory represents from its bare name
// and the ordered ancestor segment names. The cases are:
//
//   - A bare date entry, all numeric (either a year or a month): recurse
//     into it, nothing else.
//
//   - A trip directory, "dd-name[~hex]": 'dd' is the day of the month; year
//     and month are encoded in the ancestor segments.
//
//   - A dive directory, "[[yyyy-]mm-]dd-suffix-hh:mm:ss[~hex]": the day is
//     always in the name itself; year and month may be local or inherited
//     from the ancestor segments, with local values taking precedence.
//
//   - Anything else is not dive data and is not recursed into.
func classifyDirectory(parents []string, name string) classification {
	digits := leadingDigits(name)

	// Doesn't start with two or four digits? Skip.
	if digits != 2 && digits != 4 {
		return skip
	}

	// Only digits? Do nothing, but recurse into it.
	if digits == len(name) {
		return classification{kind: outcomeDescend}
	}

	// All remaining cases need a dash after the digit run.
	if name[digits] != '-' {
		return skip
	}

	n := nonuniqueLength(name)

	// A time-of-day field ends the non-unique part of every dive name.
	// We know n is at least 3: two digits and a dash.
	if name[n-3] == ':' {
		return classifyDive(parents, name, n)
	}

	if digits != 2 {
		return skip
	}

	return classifyTrip(parents, name)
}

// classifyDive parses a dive directory name. n is the non-unique length;
// the "hh:mm:ss" field occupies the last 8 characters before it.
func classifyDive(parents []string, name string, n int) classification {
	timeoff := n - 8
	if timeoff < 3 {
		return skip
	}
	if name[timeoff-1] != '-' {
		return skip
	}

	hour, ok1 := twoDigits(name, timeoff)
	minute, ok2 := twoDigits(name, timeoff+3)
	second, ok3 := twoDigits(name, timeoff+6)
	if !ok1 || !ok2 || !ok3 || name[timeoff+2] != ':' || name[timeoff+5] != ':' {
		return skip
	}
	if !validTime(hour, minute, second) {
		return skip
	}

	year, month, day, ok := datePrefix(name, timeoff)
	if !ok {
		return skip
	}
	if year == 0 || month == 0 {
		py, pm, ok := parentDate(parents)
		if !ok {
			return skip
		}
		if year == 0 {
			year = py
		}
		if month == 0 {
			month = pm
		}
	}
	if !validDate(year, month, day) {
		return skip
	}

	return classification{
		kind:   outcomeDive,
		year:   year,
		month:  month,
		day:    day,
		hour:   hour,
		minute: minute,
		second: second,
	}
}

// classifyTrip parses a trip directory name, "dd-name[~hex]". The day of
// the month is the leading digit run; year and month come from the
// ancestor segments.
func classifyTrip(parents []string, name string) classification {
	year, month, ok := parentDate(parents)
	if !ok {
		return skip
	}
	day, _ := twoDigits(name, 0)
	if !validDate(year, month, day) {
		return skip
	}
	return classification{kind: outcomeTrip, year: year, month: month, day: day}
}

// datePrefix parses the leading "[[yyyy-]mm-]dd-" date fragment of a dive
// directory name. A digit run counts as a date component only when it is
// immediately followed by a dash and ends before limit (the start of the
// time field). Year and month are zero when the name carries only a day.
func datePrefix(name string, limit int) (year, month, day int, ok bool) {
	first, pos := dateRun(name, 0, limit)
	if pos < 0 {
		return 0, 0, 0, false
	}

	if len(name[:pos-1]) == 4 {
		// "yyyy-mm-dd-": a four digit year must be followed by both a
		// month and a day run.
		year = first
		month, pos = dateRun(name, pos, limit)
		if pos < 0 {
			return 0, 0, 0, false
		}
		day, pos = dateRun(name, pos, limit)
		if pos < 0 {
			return 0, 0, 0, false
		}
		return year, month, day, true
	}

	// A two digit leading run is the day, unless another two digit run
	// with a trailing dash follows; then it is the month.
	if next, npos := dateRun(name, pos, limit); npos >= 0 {
		return 0, first, next, true
	}
	return 0, 0, first, true
}

// dateRun parses a two or four digit run starting at pos that is followed
// by a dash and ends before limit. It returns the run's value and the
// position after the dash, or -1 when there is no such run.
func dateRun(name string, pos, limit int) (int, int) {
	start := pos
	for pos < limit && isDigit(name[pos]) {
		pos++
	}
	runLen := pos - start
	if runLen != 2 && runLen != 4 {
		return 0, -1
	}
	if pos >= limit || name[pos] != '-' {
		return 0, -1
	}
	value, err := strconv.Atoi(name[start:pos])
	if err != nil {
		return 0, -1
	}
	return value, pos + 1
}

// parentDate recovers the year and month from the ordered ancestor segment
// names. The dive log layout roots every trip and dive under "yyyy/mm", so
// the first two segments must both be purely numeric.
func parentDate(parents []string) (year, month int, ok bool) {
	if len(parents) < 2 {
		return 0, 0, false
	}
	year, ok = allDigits(parents[0])
	if !ok {
		return 0, 0, false
	}
	month, ok = allDigits(parents[1])
	if !ok {
		return 0, 0, false
	}
	return year, month, true
}

// nonuniqueLength returns the length of the name without the tilde
// delimited disambiguation suffix appended on name collisions.
func nonuniqueLength(name string) int {
	for i := 0; i < len(name); i++ {
		if name[i] == '~' {
			return i
		}
	}
	return len(name)
}

// leadingDigits counts the run of decimal digits at the start of the name.
func leadingDigits(name string) int {
	n := 0
	for n < len(name) && isDigit(name[n]) {
		n++
	}
	return n
}

func validDate(year, month, day int) bool {
	return year > 1970 && year < 3000 &&
		month > 0 && month < 13 &&
		day > 0 && day < 32
}

// validTime accepts seconds up to 60, matching the recorded data set.
func validTime(hour, minute, second int) bool {
	return hour >= 0 && hour < 24 &&
		minute >= 0 && minute < 60 &&
		second >= 0 && second <= 60
}

// twoDigits parses exactly two decimal digits at pos.
func twoDigits(s string, pos int) (int, bool) {
	if pos+2 > len(s) || !isDigit(s[pos]) || !isDigit(s[pos+1]) {
		return 0, false
	}
	return int(s[pos]-'0')*10 + int(s[pos+1]-'0'), true
}

// allDigits parses s as a purely numeric string.
func allDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
	}
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return value, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
