package calendar

import (
	"reflect"
	"testing"
	"time"

	"github.com/jask/calpick/internal/dates"
	"github.com/jask/calpick/internal/timeval"
)

var fixedNow = time.Date(2025, time.June, 18, 10, 30, 45, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testConfig(mut ...func(*Config)) Config {
	cfg := DefaultConfig()
	cfg.Now = func() time.Time { return fixedNow }
	for _, f := range mut {
		f(&cfg)
	}
	return cfg
}

func autoApply(c *Config) { c.AutoApply = true }
func withTime(c *Config)  { c.ShowTime = true }
func yearOnly(c *Config)  { c.YearOnly = true }
func monthOnly(c *Config) { c.MonthOnly = true }

func committedOn(d time.Time) Committed { return Committed{Date: d} }

// run feeds events in order and collects every effect.
func run(s State, cfg Config, events ...Event) (State, []Effect) {
	var all []Effect
	for _, ev := range events {
		var out []Effect
		s, out = Transition(s, ev, cfg)
		all = append(all, out...)
	}
	return s, all
}

func kinds(effects []Effect) []EffectKind {
	out := make([]EffectKind, 0, len(effects))
	for _, e := range effects {
		out = append(out, e.Kind)
	}
	return out
}

func requireKinds(t *testing.T, effects []Effect, want ...EffectKind) {
	t.Helper()
	got := kinds(effects)
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("effects = %v, want %v (%v)", got, want, effects)
	}
}

func TestNewStateInitialView(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		committed Committed
		view      ViewMode
		year      int
		month     time.Month
	}{
		{name: "normal", cfg: testConfig(), committed: committedOn(day(2024, time.February, 29)), view: ViewDays, year: 2024, month: time.February},
		{name: "null date shows today", cfg: testConfig(), view: ViewDays, year: 2025, month: time.June},
		{name: "year only", cfg: testConfig(yearOnly), committed: committedOn(day(2020, time.May, 1)), view: ViewYears, year: 2020, month: time.May},
		{name: "month only", cfg: testConfig(monthOnly), view: ViewYears, year: 2025, month: time.June},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(tt.cfg, tt.committed)
			if s.View != tt.view || s.DisplayYear != tt.year || s.DisplayMonth != tt.month || s.AnchorYear != tt.year {
				t.Fatalf("state = %v %d-%d anchor %d, want %v %d-%d", s.View, s.DisplayYear, s.DisplayMonth, s.AnchorYear, tt.view, tt.year, tt.month)
			}
		})
	}
}

func TestNewStateDefaultsTimeToRoundedNow(t *testing.T) {
	cfg := testConfig(withTime, func(c *Config) { c.MinuteStep = 20; c.TimeFormat = timeval.Format24S; c.SecondStep = 30 })
	s := NewState(cfg, Committed{})
	if got := s.StagedTime.String(); got != "10:20:30" {
		t.Fatalf("staged time = %q, want 10:20:30", got)
	}

	s = NewState(cfg, Committed{Time: timeval.MustNew(8, 5, -1), HasTime: true})
	if got := s.StagedTime.String(); got != "08:05:00" {
		t.Fatalf("staged time = %q, want 08:05:00", got)
	}
}

func TestManualConfirmSameWeek(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg, committedOn(day(2025, time.June, 15)))

	s, effects := run(s, cfg, SelectDay{Date: day(2025, time.June, 20)})
	requireKinds(t, effects)
	if !s.StagedDate.Equal(day(2025, time.June, 20)) {
		t.Fatalf("staged = %v", s.StagedDate)
	}

	s, effects = run(s, cfg, Confirm{})
	requireKinds(t, effects, DateChanged, CloseRequested)
	if !effects[0].Date.Equal(day(2025, time.June, 20)) {
		t.Fatalf("date effect = %v", effects[0].Date)
	}
	if got := dates.Week(effects[0].Date).WeekOfMonth; got != 3 {
		t.Fatalf("week of month = %d, want 3", got)
	}
	if !s.Committed.Date.Equal(day(2025, time.June, 20)) {
		t.Fatalf("committed = %v", s.Committed.Date)
	}
}

func TestManualConfirmOtherWeek(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg, committedOn(day(2025, time.June, 15)))
	_, effects := run(s, cfg, SelectDay{Date: day(2025, time.June, 25)}, Confirm{})
	requireKinds(t, effects, DateChanged, WeekChanged, CloseRequested)
	w := effects[1].Week
	if w.WeekOfMonth != 4 || !w.Start.Equal(day(2025, time.June, 22)) || w.End.Day() != 28 {
		t.Fatalf("week = %+v", w)
	}
}

func TestManualModeEmitsNothingBeforeConfirm(t *testing.T) {
	cfg := testConfig(withTime)
	s := NewState(cfg, Committed{Date: day(2025, time.June, 1), Time: timeval.MustNew(9, 0, -1), HasTime: true})

	s, effects := run(s, cfg,
		SelectDay{Date: day(2025, time.June, 3)},
		TimeChange{Value: timeval.MustNew(11, 0, -1)},
		SelectDay{Date: day(2025, time.June, 4)},
		TimeChange{Value: timeval.MustNew(12, 45, -1)},
	)
	requireKinds(t, effects)

	_, effects = run(s, cfg, Confirm{})
	requireKinds(t, effects, DateChanged, TimeChanged, CloseRequested)
	if got := effects[1].Time.String(); got != "12:45" {
		t.Fatalf("time effect = %q", got)
	}
}

func TestConfirmWithoutChangesOnlyCloses(t *testing.T) {
	cfg := testConfig(withTime)
	s := NewState(cfg, Committed{Date: day(2025, time.June, 1), Time: timeval.MustNew(9, 0, -1), HasTime: true})
	_, effects := run(s, cfg, Confirm{})
	requireKinds(t, effects, CloseRequested)
}

func TestConfirmDisabledWithoutStagedDate(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg, Committed{})
	s2, effects := run(s, cfg, Confirm{})
	requireKinds(t, effects)
	if !reflect.DeepEqual(s, s2) {
		t.Fatal("confirm changed state while disabled")
	}
}

func TestAutoApplyDayClick(t *testing.T) {
	cfg := testConfig(autoApply)
	s := NewState(cfg, committedOn(day(2025, time.June, 15)))

	s, effects := run(s, cfg, SelectDay{Date: day(2025, time.June, 16)})
	requireKinds(t, effects, DateChanged)

	_, effects = run(s, cfg, SelectDay{Date: day(2025, time.June, 16)})
	requireKinds(t, effects)

	_, effects = run(s, cfg, SelectDay{Date: day(2025, time.June, 3)})
	requireKinds(t, effects, DateChanged, WeekChanged)
}

func TestAutoApplyNullCommittedUsesToday(t *testing.T) {
	cfg := testConfig(autoApply)
	s := NewState(cfg, Committed{})
	_, effects := run(s, cfg, SelectDay{Date: day(2025, time.June, 19)})
	requireKinds(t, effects, DateChanged)

	_, effects = run(s, cfg, SelectDay{Date: day(2025, time.June, 18)})
	requireKinds(t, effects, DateChanged)
}

func TestAutoApplyCloseOnSelect(t *testing.T) {
	cfg := testConfig(autoApply, func(c *Config) { c.CloseOnSelect = true })
	s := NewState(cfg, committedOn(day(2025, time.June, 15)))

	_, effects := run(s, cfg, SelectDay{Date: day(2025, time.June, 16)})
	requireKinds(t, effects, DateChanged, CloseRequested)

	_, effects = run(s, cfg, SelectDay{Date: day(2025, time.June, 15)})
	requireKinds(t, effects)
}

func TestAutoApplyTime(t *testing.T) {
	cfg := testConfig(autoApply, withTime)
	s := NewState(cfg, Committed{Date: day(2025, time.June, 15), Time: timeval.MustNew(9, 0, -1), HasTime: true})

	s, effects := run(s, cfg, TimeChange{Value: timeval.MustNew(9, 15, -1)})
	requireKinds(t, effects, TimeChanged)

	s, effects = run(s, cfg, TimeChange{Value: timeval.MustNew(9, 15, 30)})
	requireKinds(t, effects)
	if s.StagedTime.Second != "" {
		t.Fatalf("seconds kept for HH:mm: %+v", s.StagedTime)
	}

	_, effects = run(s, cfg, SelectDay{Date: day(2025, time.June, 16)})
	requireKinds(t, effects, DateChanged)
}

func TestAutoApplyDayClickWithoutCommittedTime(t *testing.T) {
	cfg := testConfig(autoApply, withTime)
	s := NewState(cfg, committedOn(day(2025, time.June, 15)))
	_, effects := run(s, cfg, SelectDay{Date: day(2025, time.June, 15)})
	requireKinds(t, effects, TimeChanged)
	if got := effects[0].Time.String(); got != "10:30" {
		t.Fatalf("time = %q, want 10:30", got)
	}
}

func TestSecondsComparedOnlyWithSecondsFormat(t *testing.T) {
	cfg := testConfig(autoApply, withTime, func(c *Config) { c.TimeFormat = timeval.Format24S })
	s := NewState(cfg, Committed{Date: day(2025, time.June, 15), Time: timeval.MustNew(9, 0, 0), HasTime: true})
	_, effects := run(s, cfg, TimeChange{Value: timeval.MustNew(9, 0, 30)})
	requireKinds(t, effects, TimeChanged)
	if effects[0].Time.Second != "30" {
		t.Fatalf("time effect = %+v", effects[0].Time)
	}
}

func TestInvalidTimeIsInert(t *testing.T) {
	cfg := testConfig(autoApply, withTime)
	s := NewState(cfg, Committed{})
	s2, effects := run(s, cfg, TimeChange{Value: timeval.Value{Hour: "25", Minute: "00"}})
	requireKinds(t, effects)
	if s2.StagedTime != s.StagedTime || !s2.StagedTime.Valid() {
		t.Fatalf("staged time = %+v", s2.StagedTime)
	}
}

func TestDisabledDayIsInert(t *testing.T) {
	for _, auto := range []bool{false, true} {
		cfg := testConfig(func(c *Config) {
			c.AutoApply = auto
			c.MinDate = day(2025, time.January, 10)
			c.MaxDate = day(2025, time.January, 20)
		})
		s := NewState(cfg, committedOn(day(2025, time.January, 15)))
		for _, d := range []time.Time{day(2025, time.January, 5), day(2025, time.January, 21), {}} {
			s2, effects := run(s, cfg, SelectDay{Date: d})
			requireKinds(t, effects)
			if !reflect.DeepEqual(s, s2) {
				t.Fatalf("auto=%v click %v changed state", auto, d)
			}
		}
		_, effects := run(s, cfg, SelectDay{Date: time.Date(2025, time.January, 10, 23, 0, 0, 0, time.UTC)})
		if auto {
			requireKinds(t, effects, DateChanged, WeekChanged)
		} else {
			requireKinds(t, effects)
		}
	}
}

func TestPrevNextMonth(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg, committedOn(day(2025, time.January, 15)))

	s, effects := run(s, cfg, PrevMonth{})
	requireKinds(t, effects, MonthChanged)
	if effects[0].Year != 2024 || effects[0].Month != time.December {
		t.Fatalf("month effect = %v", effects[0])
	}
	if !s.StagedDate.IsZero() {
		t.Fatal("month change kept the staged date")
	}

	s, effects = run(s, cfg, NextMonth{}, NextMonth{})
	requireKinds(t, effects, MonthChanged, MonthChanged)
	if s.DisplayYear != 2025 || s.DisplayMonth != time.February {
		t.Fatalf("display = %d-%d", s.DisplayYear, s.DisplayMonth)
	}
}

func TestNormalYearMonthNavigation(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg, committedOn(day(2025, time.June, 15)))

	s, effects := run(s, cfg, TitleClick{})
	requireKinds(t, effects, CenterYear)
	if s.View != ViewYears || effects[0].Index != 50 {
		t.Fatalf("view %v, center index %d", s.View, effects[0].Index)
	}

	s, effects = run(s, cfg, SelectYear{Year: 2027})
	requireKinds(t, effects, YearChanged)
	if s.View != ViewMonths || s.AnchorYear != 2027 || s.DisplayYear != 2025 {
		t.Fatalf("after year: view %v anchor %d display %d", s.View, s.AnchorYear, s.DisplayYear)
	}

	s, effects = run(s, cfg, SelectMonth{Month: time.February})
	requireKinds(t, effects, MonthChanged)
	if s.View != ViewDays || s.DisplayYear != 2027 || s.DisplayMonth != time.February || !s.StagedDate.IsZero() {
		t.Fatalf("after month: %+v", s)
	}

	// Same year and month: no events.
	_, effects = run(s, cfg, TitleClick{}, SelectYear{Year: 2027}, SelectMonth{Month: time.February})
	requireKinds(t, effects, CenterYear)
}

func TestBackRevertsYear(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg, committedOn(day(2025, time.June, 15)))

	s, effects := run(s, cfg, TitleClick{}, SelectYear{Year: 2030}, Back{})
	requireKinds(t, effects, CenterYear, YearChanged, CenterYear)
	if s.View != ViewYears || s.AnchorYear != 2030 {
		t.Fatalf("after back: view %v anchor %d", s.View, s.AnchorYear)
	}

	s, effects = run(s, cfg, Back{})
	requireKinds(t, effects, YearChanged)
	if effects[0].Year != 2025 || s.View != ViewDays || s.AnchorYear != 2025 {
		t.Fatalf("revert = %v, view %v", effects[0], s.View)
	}
}

func TestCancelInGridsReturnsToDays(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg, committedOn(day(2025, time.June, 15)))

	s, effects := run(s, cfg, TitleClick{}, Cancel{})
	requireKinds(t, effects, CenterYear)
	if s.View != ViewDays {
		t.Fatalf("view = %v", s.View)
	}

	s, effects = run(s, cfg, TitleClick{}, SelectYear{Year: 2026}, Cancel{})
	requireKinds(t, effects, CenterYear, YearChanged, YearChanged)
	if s.View != ViewDays || s.DisplayYear != 2025 {
		t.Fatalf("after cancel: %v %d", s.View, s.DisplayYear)
	}

	_, effects = run(s, cfg, Cancel{})
	requireKinds(t, effects, CloseRequested)
	_, effects = run(s, cfg, Close{})
	requireKinds(t, effects, CloseRequested)
}

func TestYearOnly(t *testing.T) {
	t.Run("auto apply", func(t *testing.T) {
		cfg := testConfig(yearOnly, autoApply)
		s := NewState(cfg, committedOn(day(2025, time.June, 15)))
		_, effects := run(s, cfg, SelectYear{Year: 2030})
		requireKinds(t, effects, YearChanged, CloseRequested)
		_, effects = run(s, cfg, SelectYear{Year: 2025})
		requireKinds(t, effects, CloseRequested)
	})
	t.Run("manual", func(t *testing.T) {
		cfg := testConfig(yearOnly)
		s := NewState(cfg, committedOn(day(2025, time.June, 15)))
		_, effects := run(s, cfg, Confirm{})
		requireKinds(t, effects)

		s, effects = run(s, cfg, SelectYear{Year: 2001}, SelectYear{Year: 2030})
		requireKinds(t, effects)
		if !s.YearStaged || s.StagedYear != 2030 {
			t.Fatalf("staged year = %d", s.StagedYear)
		}
		_, effects = run(s, cfg, Confirm{})
		requireKinds(t, effects, YearChanged, CloseRequested)
	})
	t.Run("no day events", func(t *testing.T) {
		cfg := testConfig(yearOnly, autoApply)
		s := NewState(cfg, Committed{})
		_, effects := run(s, cfg, SelectDay{Date: day(2025, time.June, 1)}, Today{}, TitleClick{}, PrevMonth{}, Back{})
		requireKinds(t, effects)
	})
	t.Run("unlisted year", func(t *testing.T) {
		cfg := testConfig(yearOnly, autoApply)
		_, effects := run(NewState(cfg, Committed{}), cfg, SelectYear{Year: 1900})
		requireKinds(t, effects)
	})
}

func TestMonthOnly(t *testing.T) {
	t.Run("auto apply", func(t *testing.T) {
		cfg := testConfig(monthOnly, autoApply)
		s := NewState(cfg, committedOn(day(2025, time.June, 15)))
		s, effects := run(s, cfg, SelectYear{Year: 2027})
		requireKinds(t, effects)
		if s.View != ViewMonths {
			t.Fatalf("view = %v", s.View)
		}
		_, effects = run(s, cfg, SelectMonth{Month: time.March})
		requireKinds(t, effects, YearChanged, MonthChanged, CloseRequested)

		_, effects = run(NewState(cfg, committedOn(day(2025, time.June, 15))), cfg, SelectYear{Year: 2025}, SelectMonth{Month: time.June})
		requireKinds(t, effects, CloseRequested)
	})
	t.Run("manual", func(t *testing.T) {
		cfg := testConfig(monthOnly)
		s := NewState(cfg, Committed{})
		s, effects := run(s, cfg, SelectYear{Year: 2025}, SelectMonth{Month: time.August})
		requireKinds(t, effects)
		if s.StagedMonth != time.August {
			t.Fatalf("staged month = %v", s.StagedMonth)
		}

		s, effects = run(s, cfg, Back{})
		requireKinds(t, effects, CenterYear)
		if s.StagedMonth != 0 || s.View != ViewYears {
			t.Fatalf("back kept month %v view %v", s.StagedMonth, s.View)
		}
		_, effects = run(s, cfg, Confirm{})
		requireKinds(t, effects)

		_, effects = run(s, cfg, SelectYear{Year: 2025}, SelectMonth{Month: time.August}, Confirm{})
		requireKinds(t, effects, MonthChanged, CloseRequested)
		if effects[0].Year != 2025 || effects[0].Month != time.August {
			t.Fatalf("month effect = %v", effects[0])
		}
	})
	t.Run("never emits a date", func(t *testing.T) {
		cfg := testConfig(monthOnly, autoApply)
		_, effects := run(NewState(cfg, Committed{}), cfg, SelectYear{Year: 2026}, SelectMonth{Month: time.May})
		if Has(effects, DateChanged) || Has(effects, WeekChanged) {
			t.Fatalf("effects = %v", effects)
		}
	})
}

func TestToday(t *testing.T) {
	t.Run("manual stages today", func(t *testing.T) {
		cfg := testConfig()
		s := NewState(cfg, committedOn(day(2024, time.March, 5)))
		s, effects := run(s, cfg, Today{})
		requireKinds(t, effects)
		if !s.StagedDate.Equal(day(2025, time.June, 18)) || s.DisplayYear != 2025 || s.DisplayMonth != time.June {
			t.Fatalf("state = %+v", s)
		}
	})
	t.Run("auto apply from another month", func(t *testing.T) {
		cfg := testConfig(autoApply)
		s := NewState(cfg, committedOn(day(2024, time.March, 5)))
		s, effects := run(s, cfg, Today{})
		requireKinds(t, effects, DateChanged, YearChanged, MonthChanged, WeekChanged)
		if effects[2].Month != time.June || s.DisplayMonth != time.June {
			t.Fatalf("month effect %v display %v", effects[2], s.DisplayMonth)
		}
		_, effects = run(s, cfg, Today{})
		requireKinds(t, effects)
	})
	t.Run("disabled when out of bounds", func(t *testing.T) {
		cfg := testConfig(autoApply, func(c *Config) { c.MaxDate = day(2025, time.June, 1) })
		s := NewState(cfg, committedOn(day(2025, time.May, 5)))
		s2, effects := run(s, cfg, Today{})
		requireKinds(t, effects)
		if !reflect.DeepEqual(s, s2) {
			t.Fatal("disabled today changed state")
		}
	})
}

func TestResetStagedRestoresCommitted(t *testing.T) {
	cfg := testConfig(withTime)
	committed := Committed{Date: day(2025, time.June, 15), Time: timeval.MustNew(9, 0, -1), HasTime: true}
	s := NewState(cfg, committed)
	s, _ = run(s, cfg,
		SelectDay{Date: day(2025, time.June, 20)},
		TimeChange{Value: timeval.MustNew(17, 0, -1)},
		NextMonth{},
		TitleClick{},
	)
	s = ResetStaged(s, cfg)
	want := NewState(cfg, committed)
	if !reflect.DeepEqual(s, want) {
		t.Fatalf("reset = %+v, want %+v", s, want)
	}
}

func TestSetCommittedKeepsStaged(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg, committedOn(day(2025, time.June, 15)))
	s, _ = run(s, cfg, SelectDay{Date: day(2025, time.June, 20)})
	s, effects := run(s, cfg, SetCommitted{Committed: committedOn(day(2025, time.June, 1))})
	requireKinds(t, effects)
	if !s.Committed.Date.Equal(day(2025, time.June, 1)) || !s.StagedDate.Equal(day(2025, time.June, 20)) {
		t.Fatalf("state = %+v", s)
	}
}

func TestSortEffectsOrder(t *testing.T) {
	in := []Effect{{Kind: CenterYear}, {Kind: CloseRequested}, {Kind: TimeChanged}, {Kind: WeekChanged}, {Kind: MonthChanged}, {Kind: YearChanged}, {Kind: DateChanged}}
	requireKinds(t, sortEffects(in), DateChanged, YearChanged, MonthChanged, WeekChanged, TimeChanged, CloseRequested, CenterYear)
}
