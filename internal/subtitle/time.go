package subtitle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// SpanSeparator sits between the start and end timestamp of a timing line.
const SpanSeparator = " --> "

// Time is an SRT timestamp split into its HH:MM:SS,mmm fields.
type Time struct {
	Hours   int
	Minutes int
	Seconds int
	Millis  int
}

// Milliseconds flattens t into a single millisecond count.
func (t Time) Milliseconds() int64 {
	return int64(t.Hours)*msPerHour +
		int64(t.Minutes)*msPerMinute +
		int64(t.Seconds)*msPerSecond +
		int64(t.Millis)
}

func (t Time) Duration() time.Duration {
	return time.Duration(t.Milliseconds()) * time.Millisecond
}

// String renders t as HH:MM:SS,mmm. Hours widen past two digits.
func (t Time) String() string {
	return fmt.Sprintf(
		"%02d:%02d:%02d,%03d",
		t.Hours,
		t.Minutes,
		t.Seconds,
		t.Millis,
	)
}

// FromMilliseconds is the inverse of Time.Milliseconds. Negative counts
// clamp to zero.
func FromMilliseconds(ms int64) Time {
	if ms < 0 {
		ms = 0
	}
	return Time{
		Hours:   int(ms / msPerHour),
		Minutes: int((ms % msPerHour) / msPerMinute),
		Seconds: int((ms % msPerMinute) / msPerSecond),
		Millis:  int(ms % msPerSecond),
	}
}

func FromDuration(d time.Duration) Time {
	return FromMilliseconds(d.Milliseconds())
}

// ParseTimestamp parses HH:MM:SS,mmm. The comma is split first, then the
// remainder on colons. Exactly three colon fields are accepted; a fourth
// field is an error rather than ignored. Values whose millisecond total
// would not fit in an int64 are rejected.
func ParseTimestamp(text string) (Time, error) {
	hmsMillis := strings.Split(text, ",")
	if len(hmsMillis) != 2 {
		return Time{}, &FormatError{Content: text, Err: ErrMissingMillis}
	}
	hms := strings.Split(hmsMillis[0], ":")
	if len(hms) != 3 {
		return Time{}, &FormatError{Content: text, Err: ErrFieldCount}
	}

	fields := [4]string{hms[0], hms[1], hms[2], hmsMillis[1]}
	var values [4]int
	for i, field := range fields {
		v, err := parseField(field)
		if err != nil {
			return Time{}, &FormatError{Content: text, Err: err}
		}
		values[i] = v
	}
	if err := checkTotal(values); err != nil {
		return Time{}, &FormatError{Content: text, Err: err}
	}

	return Time{
		Hours:   values[0],
		Minutes: values[1],
		Seconds: values[2],
		Millis:  values[3],
	}, nil
}

// hours, minutes, seconds, millis must sum to a representable count
func checkTotal(values [4]int) error {
	units := [4]int64{msPerHour, msPerMinute, msPerSecond, 1}
	var total int64
	for i, v := range values {
		if int64(v) > (math.MaxInt64-total)/units[i] {
			return fmt.Errorf("%w: millisecond total overflows", ErrInvalidField)
		}
		total += int64(v) * units[i]
	}
	return nil
}

// digits only; strconv alone would accept signs
func parseField(field string) (int, error) {
	if field == "" {
		return 0, fmt.Errorf("%w: empty field", ErrInvalidField)
	}
	for _, r := range field {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidField, field)
		}
	}
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidField, err)
	}
	return v, nil
}

// ParseSpan parses a "start --> end" timing line.
func ParseSpan(line string) (Span, error) {
	parts := strings.Split(line, SpanSeparator)
	if len(parts) != 2 {
		return Span{}, &FormatError{Content: line, Err: ErrMissingSeparator}
	}

	start, err := ParseTimestamp(parts[0])
	if err != nil {
		return Span{}, fmt.Errorf("start time: %w", err)
	}
	end, err := ParseTimestamp(parts[1])
	if err != nil {
		return Span{}, fmt.Errorf("end time: %w", err)
	}

	return Span{Start: start, End: end}, nil
}
