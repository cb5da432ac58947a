// Package calendar holds the calendar's view-state machine and the Bubble Tea
// model that renders it.
//
// All selection logic lives in Transition, a pure function from a State and
// an Event to the next State plus the Effects the host should observe. The
// Model only translates keys into events, dispatches effects and renders.
package calendar

import (
	"time"

	"github.com/jask/calpick/internal/dates"
	"github.com/jask/calpick/internal/locale"
	"github.com/jask/calpick/internal/timeval"
)

type ViewMode int

const (
	ViewDays ViewMode = iota
	ViewYears
	ViewMonths
)

func (v ViewMode) String() string {
	switch v {
	case ViewDays:
		return "days"
	case ViewYears:
		return "years"
	case ViewMonths:
		return "months"
	}
	return "unknown"
}

// Config is everything the host configures on a calendar. Zero dates are
// open bounds.
type Config struct {
	MinDate  time.Time
	MaxDate  time.Time
	Holidays []time.Time

	ShowToday  bool
	ShowFooter bool
	AutoApply  bool
	MonthOnly  bool
	YearOnly   bool

	// CloseOnSelect closes an auto-apply calendar after a day commit. The
	// date-only popover sets it.
	CloseOnSelect bool

	ShowTime         bool
	TimeFormat       timeval.Format
	TimeBounds       timeval.Bounds
	MinuteStep       int
	SecondStep       int
	HideDisabledTime bool

	Texts locale.Texts
	Now   func() time.Time
}

// DefaultConfig shows the today shortcut and footer, in manual mode.
func DefaultConfig() Config {
	return Config{
		ShowToday:  true,
		ShowFooter: true,
		TimeFormat: timeval.DefaultFmt,
		MinuteStep: 1,
		SecondStep: 1,
		Texts:      locale.Resolve(""),
	}
}

func (c Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c Config) today() time.Time {
	return dates.DateOnly(c.now())
}

func (c Config) format() timeval.Format {
	if c.TimeFormat == "" {
		return timeval.DefaultFmt
	}
	return c.TimeFormat
}

func (c Config) singlePurpose() bool { return c.YearOnly || c.MonthOnly }

func (c Config) dayDisabled(d time.Time) bool {
	return dates.Disabled(d, c.MinDate, c.MaxDate)
}

func (c Config) holidays() []time.Time { return dates.ValidDates(c.Holidays) }

// Committed mirrors the value the host owns. A zero Date is "no date";
// HasTime is false when the host supplied no time.
type Committed struct {
	Date    time.Time
	Time    timeval.Value
	HasTime bool
}

// State is the calendar's transient view and staged selection.
type State struct {
	Committed Committed

	View         ViewMode
	DisplayYear  int
	DisplayMonth time.Month
	// AnchorYear is the year the year and month grids work in.
	AnchorYear int

	StagedDate  time.Time
	StagedYear  int
	YearStaged  bool
	StagedMonth time.Month // 0 when none
	StagedTime  timeval.Value
}

// NewState builds the state a freshly shown calendar starts in.
func NewState(cfg Config, committed Committed) State {
	now := cfg.now()
	ref := committed.Date
	if ref.IsZero() {
		ref = now
	}
	s := State{
		Committed:    committed,
		View:         ViewDays,
		DisplayYear:  ref.Year(),
		DisplayMonth: ref.Month(),
		AnchorYear:   ref.Year(),
		StagedDate:   dates.DateOnly(committed.Date),
	}
	if cfg.singlePurpose() {
		s.View = ViewYears
		s.StagedDate = time.Time{}
	}
	if committed.HasTime && committed.Time.Valid() {
		s.StagedTime = committed.Time.ForFormat(cfg.format())
	} else {
		s.StagedTime = timeval.Now(now, cfg.format(), cfg.MinuteStep, cfg.SecondStep)
	}
	return s
}

// ResetStaged discards every staged edit and navigation, rebuilding the
// state from its committed slot.
func ResetStaged(s State, cfg Config) State {
	return NewState(cfg, s.Committed)
}

// SelectedDate is the date the day grid highlights.
func (s State) SelectedDate(cfg Config) time.Time {
	if cfg.AutoApply {
		return s.Committed.Date
	}
	return s.StagedDate
}

// compareDate is the reference for "did the year/month/week change" checks.
func (s State) compareDate(cfg Config) time.Time {
	if s.Committed.Date.IsZero() {
		return cfg.today()
	}
	return s.Committed.Date
}

func (s State) timeChanged(v timeval.Value, cfg Config) bool {
	if !s.Committed.HasTime {
		return true
	}
	return v.Changed(s.Committed.Time, cfg.format())
}
