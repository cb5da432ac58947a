// Package locale resolves the text tables the picker renders: month and
// weekday names, button labels and header wording.
package locale

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"
	"golang.org/x/text/language"
)

// DefaultKey is used when no locale is configured or the key is unknown.
const DefaultKey = "ko"

// Texts is one complete text table. Weekdays start on Sunday.
type Texts struct {
	Months      [12]string
	Weekdays    [7]string
	Today       string
	Confirm     string
	Cancel      string
	Close       string
	SelectYear  string
	SelectMonth string
	YearSuffix  string
	YearFirst   bool
	AM          string
	PM          string
}

// Month returns the name for m.
func (t Texts) Month(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return t.Months[m-1]
}

// Year renders a year with the locale suffix ("2025년").
func (t Texts) Year(year int) string {
	return strconv.Itoa(year) + t.YearSuffix
}

// Title is the day-grid header ("2025년 6월" / "June 2025").
func (t Texts) Title(year int, month time.Month) string {
	if t.YearFirst {
		return t.Year(year) + " " + t.Month(month)
	}
	return t.Month(month) + " " + t.Year(year)
}

// MonthHeader is the month-grid header for the anchor year.
func (t Texts) MonthHeader(year int) string {
	return t.Year(year) + " - " + t.SelectMonth
}

var keys, matcher = buildMatcher()

func buildMatcher() ([]string, language.Matcher) {
	ks := make([]string, 0, len(bundled))
	for k := range bundled {
		if k != DefaultKey {
			ks = append(ks, k)
		}
	}
	sort.Strings(ks)
	// The default goes first so the matcher falls back to it.
	ks = append([]string{DefaultKey}, ks...)
	tags := make([]language.Tag, len(ks))
	for i, k := range ks {
		tags[i] = language.Make(k)
	}
	return ks, language.NewMatcher(tags)
}

// Keys lists the bundled locale keys, default first.
func Keys() []string {
	return append([]string(nil), keys...)
}

// Lookup returns the bundled table for an exact key.
func Lookup(key string) (Texts, bool) {
	t, ok := bundled[key]
	return t, ok
}

// Resolve returns the table best matching key, a BCP 47 tag such as "en",
// "en-US" or "zh-Hant". Unknown or empty keys resolve to the default table.
func Resolve(key string) Texts {
	t, _ := ResolveKey(key)
	return t
}

// ResolveKey is Resolve that also reports which bundled key was chosen.
func ResolveKey(key string) (Texts, string) {
	key = strings.TrimSpace(key)
	if key == "" {
		return bundled[DefaultKey], DefaultKey
	}
	if t, ok := bundled[key]; ok {
		return t, key
	}
	tag, err := language.Parse(key)
	if err != nil {
		return bundled[DefaultKey], DefaultKey
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return bundled[DefaultKey], DefaultKey
	}
	return bundled[keys[idx]], keys[idx]
}

// Suggest returns the bundled key closest to key by edit distance, for
// "did you mean" messages. ok is false when nothing is reasonably close.
func Suggest(key string) (string, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return "", false
	}
	best, bestDist := "", -1
	for _, k := range keys {
		d := levenshtein.ComputeDistance(key, strings.ToLower(k))
		if bestDist < 0 || d < bestDist {
			best, bestDist = k, d
		}
	}
	if bestDist < 0 || bestDist > 2 {
		return "", false
	}
	return best, true
}

// Overrides replaces parts of a table. Empty strings and nil slices keep the
// base text.
type Overrides struct {
	Base        string   `toml:"base"`
	Months      []string `toml:"months"`
	Weekdays    []string `toml:"weekdays"`
	Today       string   `toml:"today"`
	Confirm     string   `toml:"confirm"`
	Cancel      string   `toml:"cancel"`
	Close       string   `toml:"close"`
	SelectYear  string   `toml:"select_year"`
	SelectMonth string   `toml:"select_month"`
	YearSuffix  string   `toml:"year_suffix"`
	YearFirst   *bool    `toml:"year_first"`
	AM          string   `toml:"am"`
	PM          string   `toml:"pm"`
}

// Merge applies o over t.
func (t Texts) Merge(o Overrides) Texts {
	if len(o.Months) == len(t.Months) {
		copy(t.Months[:], o.Months)
	}
	if len(o.Weekdays) == len(t.Weekdays) {
		copy(t.Weekdays[:], o.Weekdays)
	}
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&t.Today, o.Today)
	set(&t.Confirm, o.Confirm)
	set(&t.Cancel, o.Cancel)
	set(&t.Close, o.Close)
	set(&t.SelectYear, o.SelectYear)
	set(&t.SelectMonth, o.SelectMonth)
	set(&t.YearSuffix, o.YearSuffix)
	set(&t.AM, o.AM)
	set(&t.PM, o.PM)
	if o.YearFirst != nil {
		t.YearFirst = *o.YearFirst
	}
	return t
}

// Validate reports override slices with the wrong length.
func (o Overrides) Validate() error {
	if o.Months != nil && len(o.Months) != 12 {
		return fmt.Errorf("months: want 12 names, got %d", len(o.Months))
	}
	if o.Weekdays != nil && len(o.Weekdays) != 7 {
		return fmt.Errorf("weekdays: want 7 names, got %d", len(o.Weekdays))
	}
	return nil
}

// LoadFile reads a custom table from TOML. The optional `base` key names the
// bundled table the file's entries are merged over.
func LoadFile(path string) (Texts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Texts{}, fmt.Errorf("read locale file: %w", err)
	}
	return Decode(string(data))
}

// Decode parses a TOML text table.
func Decode(data string) (Texts, error) {
	var o Overrides
	if _, err := toml.Decode(data, &o); err != nil {
		return Texts{}, fmt.Errorf("parse locale file: %w", err)
	}
	if err := o.Validate(); err != nil {
		return Texts{}, fmt.Errorf("locale file: %w", err)
	}
	return Resolve(o.Base).Merge(o), nil
}
