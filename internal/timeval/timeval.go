// Package timeval models a wall-clock time of day as the picker stores it:
// zero-padded two-digit text fields with the hour always kept in 24h form.
package timeval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format selects how a time is displayed and whether seconds are in play.
type Format string

const (
	Format24   Format = "HH:mm"
	Format24S  Format = "HH:mm:ss"
	Format12   Format = "hh:mm"
	Format12S  Format = "hh:mm:ss"
	DefaultFmt        = Format24
)

var (
	ErrHourRange   = errors.New("hour out of range")
	ErrMinuteRange = errors.New("minute out of range")
	ErrSecondRange = errors.New("second out of range")
	ErrSyntax      = errors.New("malformed time")
	ErrFormat      = errors.New("unknown time format")
)

// ParseFormat accepts the four supported layouts; empty means HH:mm.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.TrimSpace(s)); f {
	case "":
		return DefaultFmt, nil
	case Format24, Format24S, Format12, Format12S:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, s)
	}
}

func (f Format) HasSeconds() bool { return f == Format24S || f == Format12S }

func (f Format) Is12Hour() bool { return f == Format12 || f == Format12S }

// Value is a time of day. Second is empty when the format has no seconds.
type Value struct {
	Hour   string
	Minute string
	Second string
}

// New builds a Value from numeric parts. A negative second means "no seconds".
func New(hour, minute, second int) (Value, error) {
	if hour < 0 || hour > 23 {
		return Value{}, fmt.Errorf("%w: %d", ErrHourRange, hour)
	}
	if minute < 0 || minute > 59 {
		return Value{}, fmt.Errorf("%w: %d", ErrMinuteRange, minute)
	}
	if second > 59 {
		return Value{}, fmt.Errorf("%w: %d", ErrSecondRange, second)
	}
	v := Value{Hour: pad2(hour), Minute: pad2(minute)}
	if second >= 0 {
		v.Second = pad2(second)
	}
	return v, nil
}

// MustNew is New for literals known to be valid.
func MustNew(hour, minute, second int) Value {
	v, err := New(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse reads "HH:mm" or "HH:mm:ss" (24h). A seconds field is only accepted
// when the format has seconds; a missing one then defaults to 00.
func Parse(s string, format Format) (Value, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Value{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if len(parts) == 3 && !format.HasSeconds() {
		return Value{}, fmt.Errorf("%w: %q has seconds", ErrSyntax, s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		nums[i] = n
	}
	sec := -1
	if format.HasSeconds() {
		sec = nums[2]
		if sec < 0 {
			return Value{}, fmt.Errorf("%w: %d", ErrSecondRange, sec)
		}
	}
	return New(nums[0], nums[1], sec)
}

// Now is the wall-clock time of now rounded down to the minute and second
// steps. Steps below one count as one.
func Now(now time.Time, format Format, minuteStep, secondStep int) Value {
	minuteStep = max(1, minuteStep)
	secondStep = max(1, secondStep)
	sec := -1
	if format.HasSeconds() {
		sec = now.Second() / secondStep * secondStep
	}
	return MustNew(now.Hour(), now.Minute()/minuteStep*minuteStep, sec)
}

// Ints returns the numeric fields; an empty or garbled field reads as 0.
func (v Value) Ints() (hour, minute, second int) {
	return atoi(v.Hour), atoi(v.Minute), atoi(v.Second)
}

// IsZero reports an unset value.
func (v Value) IsZero() bool { return v == Value{} }

// Valid reports whether every present field is in range.
func (v Value) Valid() bool {
	if len(v.Hour) != 2 || len(v.Minute) != 2 {
		return false
	}
	h, err := strconv.Atoi(v.Hour)
	if err != nil || h < 0 || h > 23 {
		return false
	}
	m, err := strconv.Atoi(v.Minute)
	if err != nil || m < 0 || m > 59 {
		return false
	}
	if v.Second == "" {
		return true
	}
	s, err := strconv.Atoi(v.Second)
	return err == nil && len(v.Second) == 2 && s >= 0 && s <= 59
}

// ForFormat adds or strips the seconds field to match format.
func (v Value) ForFormat(format Format) Value {
	if format.HasSeconds() {
		if v.Second == "" {
			v.Second = "00"
		}
		return v
	}
	v.Second = ""
	return v
}

// Changed compares hour and minute, and the second only when format has
// seconds.
func (v Value) Changed(other Value, format Format) bool {
	vh, vm, vs := v.Ints()
	oh, om, os := other.Ints()
	if vh != oh || vm != om {
		return true
	}
	return format.HasSeconds() && vs != os
}

// Compare orders by hour, minute then second.
func (v Value) Compare(other Value) int {
	return v.seconds() - other.seconds()
}

func (v Value) seconds() int {
	h, m, s := v.Ints()
	return h*3600 + m*60 + s
}

// String is the 24h storage form.
func (v Value) String() string {
	if v.Second != "" {
		return v.Hour + ":" + v.Minute + ":" + v.Second
	}
	return v.Hour + ":" + v.Minute
}

// Display renders v in format. 12h formats return the hour on a 01-12 clock
// with the meridiem reported separately.
func (v Value) Display(format Format) (text string, pm bool) {
	h, m, s := v.Ints()
	pm = h >= 12
	if format.Is12Hour() {
		h = Hour12(h)
	}
	text = pad2(h) + ":" + pad2(m)
	if format.HasSeconds() {
		text += ":" + pad2(s)
	}
	return text, pm
}

// Hour12 maps 0-23 onto a 12-hour clock face.
func Hour12(h int) int {
	h %= 12
	if h == 0 {
		return 12
	}
	return h
}

// Hour24 maps a 12-hour face value and meridiem back to 0-23.
func Hour24(h12 int, pm bool) int {
	h := h12 % 12
	if pm {
		h += 12
	}
	return h
}

// Bounds limits selectable times; a zero side is open.
type Bounds struct {
	Min Value
	Max Value
}

// ParseBounds reads minTime/maxTime strings; empty strings are open ends.
func ParseBounds(minTime, maxTime string) (Bounds, error) {
	var b Bounds
	if strings.TrimSpace(minTime) != "" {
		v, err := Parse(minTime, Format24S)
		if err != nil {
			return Bounds{}, fmt.Errorf("min time: %w", err)
		}
		b.Min = v
	}
	if strings.TrimSpace(maxTime) != "" {
		v, err := Parse(maxTime, Format24S)
		if err != nil {
			return Bounds{}, fmt.Errorf("max time: %w", err)
		}
		b.Max = v
	}
	return b, nil
}

// Allows reports whether v lies inside the bounds.
func (b Bounds) Allows(v Value) bool {
	if !b.Min.IsZero() && v.Compare(b.Min) < 0 {
		return false
	}
	if !b.Max.IsZero() && v.Compare(b.Max) > 0 {
		return false
	}
	return true
}

// AllowsRange reports whether any second in [lo, hi] (seconds since midnight)
// is allowed.
func (b Bounds) AllowsRange(lo, hi int) bool {
	if !b.Min.IsZero() && hi < b.Min.seconds() {
		return false
	}
	if !b.Max.IsZero() && lo > b.Max.seconds() {
		return false
	}
	return true
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
