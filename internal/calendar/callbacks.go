package calendar

import (
	"time"

	"github.com/jask/calpick/internal/timeval"
)

// Callbacks are the host hooks effects are delivered to. Nil hooks are
// skipped. Scroller and Metrics serve CenterYear; both must be set for the
// year grid to be centered.
type Callbacks struct {
	OnDateChange  func(date time.Time)
	OnMonthChange func(year int, month time.Month)
	OnYearChange  func(year int)
	OnWeekChange  func(weekOfMonth int, start, end time.Time)
	// OnTimeChange gets a Value whose Second is empty for formats without
	// seconds.
	OnTimeChange func(v timeval.Value)
	OnClose      func()

	Scroller Scroller
	Metrics  LayoutMetrics
}

// Dispatch runs effects in order, synchronously.
func (c Callbacks) Dispatch(effects []Effect) {
	for _, e := range effects {
		switch e.Kind {
		case DateChanged:
			if c.OnDateChange != nil {
				c.OnDateChange(e.Date)
			}
		case YearChanged:
			if c.OnYearChange != nil {
				c.OnYearChange(e.Year)
			}
		case MonthChanged:
			if c.OnMonthChange != nil {
				c.OnMonthChange(e.Year, e.Month)
			}
		case WeekChanged:
			if c.OnWeekChange != nil {
				c.OnWeekChange(e.Week.WeekOfMonth, e.Week.Start, e.Week.End)
			}
		case TimeChanged:
			if c.OnTimeChange != nil {
				c.OnTimeChange(e.Time)
			}
		case CloseRequested:
			if c.OnClose != nil {
				c.OnClose()
			}
		case CenterYear:
			c.center(e)
		}
	}
}

func (c Callbacks) center(e Effect) {
	if c.Scroller == nil || c.Metrics == nil || e.Index < 0 {
		return
	}
	rowHeight, viewport, ok := c.Metrics()
	if !ok {
		return
	}
	c.Scroller.ScrollTo(CenterOffset(e.Index, YearColumns, rowHeight, viewport))
}
