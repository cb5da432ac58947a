package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/jask/calpick/internal/dates"
	"github.com/jask/calpick/internal/timeval"
)

// Event is one user interaction or host update fed to Transition.
type Event interface {
	event()
}

type (
	PrevMonth    struct{}
	NextMonth    struct{}
	TitleClick   struct{}
	SelectYear   struct{ Year int }
	SelectMonth  struct{ Month time.Month }
	Back         struct{}
	SelectDay    struct{ Date time.Time }
	Today        struct{}
	TimeChange   struct{ Value timeval.Value }
	Confirm      struct{}
	Cancel       struct{}
	Close        struct{}
	SetCommitted struct{ Committed Committed }
)

func (PrevMonth) event()    {}
func (NextMonth) event()    {}
func (TitleClick) event()   {}
func (SelectYear) event()   {}
func (SelectMonth) event()  {}
func (Back) event()         {}
func (SelectDay) event()    {}
func (Today) event()        {}
func (TimeChange) event()   {}
func (Confirm) event()      {}
func (Cancel) event()       {}
func (Close) event()        {}
func (SetCommitted) event() {}

// EffectKind values are declared in dispatch order.
type EffectKind int

const (
	DateChanged EffectKind = iota + 1
	YearChanged
	MonthChanged
	WeekChanged
	TimeChanged
	CloseRequested
	CenterYear
)

func (k EffectKind) String() string {
	switch k {
	case DateChanged:
		return "date"
	case YearChanged:
		return "year"
	case MonthChanged:
		return "month"
	case WeekChanged:
		return "week"
	case TimeChanged:
		return "time"
	case CloseRequested:
		return "close"
	case CenterYear:
		return "center-year"
	}
	return "unknown"
}

// Effect describes one callback the host should run. Only the fields of its
// Kind are set: Date for DateChanged, Year for YearChanged and CenterYear,
// Year and Month for MonthChanged, Week for WeekChanged, Time for
// TimeChanged. Index is the CenterYear position in the year list.
type Effect struct {
	Kind  EffectKind
	Date  time.Time
	Year  int
	Month time.Month
	Week  dates.WeekInfo
	Time  timeval.Value
	Index int
}

func (e Effect) String() string {
	switch e.Kind {
	case DateChanged:
		return "date " + e.Date.Format("2006-01-02")
	case YearChanged:
		return fmt.Sprintf("year %d", e.Year)
	case MonthChanged:
		return fmt.Sprintf("month %d-%02d", e.Year, int(e.Month))
	case WeekChanged:
		return fmt.Sprintf("week %d %s..%s", e.Week.WeekOfMonth, e.Week.Start.Format("01-02"), e.Week.End.Format("01-02"))
	case TimeChanged:
		return "time " + e.Time.String()
	case CloseRequested:
		return "close"
	case CenterYear:
		return fmt.Sprintf("center %d", e.Year)
	}
	return e.Kind.String()
}

func dateEffect(d time.Time) Effect { return Effect{Kind: DateChanged, Date: d} }

func yearEffect(y int) Effect { return Effect{Kind: YearChanged, Year: y} }

func monthEffect(y int, m time.Month) Effect {
	return Effect{Kind: MonthChanged, Year: y, Month: m}
}

func weekEffect(d time.Time) Effect { return Effect{Kind: WeekChanged, Week: dates.Week(d)} }

func timeEffect(v timeval.Value) Effect { return Effect{Kind: TimeChanged, Time: v} }

func closeEffect() Effect { return Effect{Kind: CloseRequested} }

func sortEffects(effects []Effect) []Effect {
	sort.SliceStable(effects, func(i, j int) bool { return effects[i].Kind < effects[j].Kind })
	return effects
}

// Has reports whether effects contain one of kind.
func Has(effects []Effect, kind EffectKind) bool {
	for _, e := range effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
