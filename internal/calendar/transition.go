package calendar

import (
	"time"

	"github.com/jask/calpick/internal/dates"
)

// Transition applies ev to s. It never mutates its inputs; the returned
// effects are ordered date, year, month, week, time, close, then scroll.
func Transition(s State, ev Event, cfg Config) (State, []Effect) {
	var out []Effect
	switch ev := ev.(type) {
	case PrevMonth:
		s, out = stepMonth(s, cfg, -1)
	case NextMonth:
		s, out = stepMonth(s, cfg, 1)
	case TitleClick:
		if s.View != ViewDays || cfg.singlePurpose() {
			break
		}
		s.AnchorYear = s.DisplayYear
		s.View = ViewYears
		out = append(out, centerEffect(s, cfg))
	case SelectYear:
		s, out = selectYear(s, cfg, ev.Year)
	case SelectMonth:
		s, out = selectMonth(s, cfg, ev.Month)
	case Back:
		s, out = back(s, cfg)
	case SelectDay:
		s, out = selectDay(s, cfg, ev.Date)
	case Today:
		s, out = today(s, cfg)
	case TimeChange:
		s, out = changeTime(s, cfg, ev)
	case Confirm:
		s, out = confirm(s, cfg)
	case Cancel:
		if !cfg.singlePurpose() && s.View != ViewDays {
			s, out = returnToDays(s)
			break
		}
		out = append(out, closeEffect())
	case Close:
		out = append(out, closeEffect())
	case SetCommitted:
		s.Committed = ev.Committed
	}
	return s, sortEffects(out)
}

func stepMonth(s State, cfg Config, delta int) (State, []Effect) {
	if s.View != ViewDays || cfg.singlePurpose() {
		return s, nil
	}
	s.DisplayYear, s.DisplayMonth = dates.AddMonths(s.DisplayYear, s.DisplayMonth, delta)
	s.AnchorYear = s.DisplayYear
	s.StagedDate = time.Time{}
	return s, []Effect{monthEffect(s.DisplayYear, s.DisplayMonth)}
}

func selectYear(s State, cfg Config, year int) (State, []Effect) {
	if s.View != ViewYears || !yearListed(cfg, year) {
		return s, nil
	}
	var out []Effect
	switch {
	case cfg.YearOnly:
		if !cfg.AutoApply {
			s.StagedYear, s.YearStaged = year, true
			return s, nil
		}
		if s.compareDate(cfg).Year() != year {
			out = append(out, yearEffect(year))
		}
		out = append(out, closeEffect())
	case cfg.MonthOnly:
		s.AnchorYear = year
		s.View = ViewMonths
	default:
		if s.DisplayYear != year {
			out = append(out, yearEffect(year))
		}
		s.AnchorYear = year
		s.View = ViewMonths
	}
	return s, out
}

func selectMonth(s State, cfg Config, month time.Month) (State, []Effect) {
	if s.View != ViewMonths || month < time.January || month > time.December {
		return s, nil
	}
	var out []Effect
	if cfg.MonthOnly {
		if !cfg.AutoApply {
			s.StagedMonth = month
			return s, nil
		}
		out = append(out, yearMonthEffects(s, cfg, s.AnchorYear, month)...)
		return s, append(out, closeEffect())
	}
	if s.DisplayYear != s.AnchorYear || s.DisplayMonth != month {
		out = append(out, monthEffect(s.AnchorYear, month))
	}
	s.DisplayYear, s.DisplayMonth = s.AnchorYear, month
	s.View = ViewDays
	s.StagedDate = time.Time{}
	return s, out
}

// yearMonthEffects reports a month-only pick against the committed date.
func yearMonthEffects(s State, cfg Config, year int, month time.Month) []Effect {
	ref := s.compareDate(cfg)
	var out []Effect
	if ref.Year() != year {
		out = append(out, yearEffect(year))
	}
	if ref.Year() != year || ref.Month() != month {
		out = append(out, monthEffect(year, month))
	}
	return out
}

func back(s State, cfg Config) (State, []Effect) {
	switch s.View {
	case ViewYears:
		if cfg.singlePurpose() {
			return s, nil
		}
		return returnToDays(s)
	case ViewMonths:
		s.View = ViewYears
		if cfg.MonthOnly {
			s.StagedMonth = 0
		}
		return s, []Effect{centerEffect(s, cfg)}
	}
	return s, nil
}

// returnToDays leaves the year or month grid of a normal calendar. The
// anchor reverts to the displayed year and a year change emitted on the way
// in is undone.
func returnToDays(s State) (State, []Effect) {
	var out []Effect
	if s.AnchorYear != s.DisplayYear {
		out = append(out, yearEffect(s.DisplayYear))
	}
	s.AnchorYear = s.DisplayYear
	s.View = ViewDays
	return s, out
}

func selectDay(s State, cfg Config, d time.Time) (State, []Effect) {
	if s.View != ViewDays || cfg.singlePurpose() || d.IsZero() || cfg.dayDisabled(d) {
		return s, nil
	}
	d = dates.DateOnly(d)
	if !cfg.AutoApply {
		s.StagedDate = d
		return s, nil
	}
	s.StagedDate = d
	return commitDay(s, cfg, d)
}

// commitDay emits the date, week and time effects of an auto-applied day.
func commitDay(s State, cfg Config, d time.Time) (State, []Effect) {
	var out []Effect
	ref := s.compareDate(cfg)
	dateEmitted := false
	if !dates.SameDay(s.Committed.Date, d) {
		out = append(out, dateEffect(d))
		if !dates.SameWeek(d, ref) {
			out = append(out, weekEffect(d))
		}
		s.Committed.Date = d
		dateEmitted = true
	}
	s, out = commitTime(s, cfg, out)
	if dateEmitted && cfg.CloseOnSelect {
		out = append(out, closeEffect())
	}
	return s, out
}

func commitTime(s State, cfg Config, out []Effect) (State, []Effect) {
	if !cfg.ShowTime || !s.timeChanged(s.StagedTime, cfg) {
		return s, out
	}
	v := s.StagedTime.ForFormat(cfg.format())
	s.Committed.Time, s.Committed.HasTime = v, true
	return s, append(out, timeEffect(v))
}

func today(s State, cfg Config) (State, []Effect) {
	t := cfg.today()
	if s.View != ViewDays || cfg.singlePurpose() || !cfg.ShowToday || cfg.dayDisabled(t) {
		return s, nil
	}
	var out []Effect
	if cfg.AutoApply {
		if s.DisplayYear != t.Year() {
			out = append(out, yearEffect(t.Year()))
		}
		if s.DisplayYear != t.Year() || s.DisplayMonth != t.Month() {
			out = append(out, monthEffect(t.Year(), t.Month()))
		}
		var more []Effect
		s, more = commitDay(s, cfg, t)
		out = append(out, more...)
	}
	s.StagedDate = t
	s.DisplayYear, s.DisplayMonth = t.Year(), t.Month()
	s.AnchorYear = s.DisplayYear
	return s, out
}

func changeTime(s State, cfg Config, ev TimeChange) (State, []Effect) {
	if !cfg.ShowTime || !ev.Value.Valid() {
		return s, nil
	}
	s.StagedTime = ev.Value.ForFormat(cfg.format())
	if !cfg.AutoApply {
		return s, nil
	}
	return commitTime(s, cfg, nil)
}

// ConfirmEnabled reports whether a Confirm would commit anything.
func ConfirmEnabled(s State, cfg Config) bool {
	if cfg.AutoApply {
		return false
	}
	switch {
	case cfg.YearOnly:
		return s.YearStaged
	case cfg.MonthOnly:
		return s.StagedMonth != 0
	}
	return s.View == ViewDays && !s.StagedDate.IsZero()
}

func confirm(s State, cfg Config) (State, []Effect) {
	if !ConfirmEnabled(s, cfg) {
		return s, nil
	}
	var out []Effect
	switch {
	case cfg.YearOnly:
		if s.compareDate(cfg).Year() != s.StagedYear {
			out = append(out, yearEffect(s.StagedYear))
		}
	case cfg.MonthOnly:
		out = append(out, yearMonthEffects(s, cfg, s.AnchorYear, s.StagedMonth)...)
	default:
		d := s.StagedDate
		if !dates.SameDay(s.Committed.Date, d) {
			out = append(out, dateEffect(d))
			if !dates.SameWeek(d, s.compareDate(cfg)) {
				out = append(out, weekEffect(d))
			}
			s.Committed.Date = d
		}
		s, out = commitTime(s, cfg, out)
	}
	return s, append(out, closeEffect())
}

func yearListed(cfg Config, year int) bool {
	span := dates.YearSpan(cfg.today())
	return year >= span[0] && year <= span[len(span)-1]
}

// YearIndex is the position of year in the year grid, or -1.
func YearIndex(cfg Config, year int) int {
	span := dates.YearSpan(cfg.today())
	if year < span[0] || year > span[len(span)-1] {
		return -1
	}
	return year - span[0]
}

func centerEffect(s State, cfg Config) Effect {
	return Effect{Kind: CenterYear, Year: s.AnchorYear, Index: YearIndex(cfg, s.AnchorYear)}
}
