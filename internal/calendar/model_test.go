package calendar

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/calpick/internal/keys"
	"github.com/jask/calpick/internal/locale"
	"github.com/jask/calpick/internal/timeval"
)

func press(m *Model, names ...string) []Effect {
	var all []Effect
	for _, n := range names {
		all = append(all, m.HandleKey(n)...)
	}
	return all
}

func TestModelManualConfirmByKeys(t *testing.T) {
	var got []time.Time
	closed := 0
	m := New(testConfig(), committedOn(day(2025, time.June, 15)), WithCallbacks(Callbacks{
		OnDateChange: func(d time.Time) { got = append(got, d) },
		OnClose:      func() { closed++ },
	}))
	if !m.Cursor().Equal(day(2025, time.June, 15)) {
		t.Fatalf("cursor = %v", m.Cursor())
	}

	effects := press(m, "right", "right", "right", "right", "right", "enter")
	requireKinds(t, effects)
	if len(got) != 0 {
		t.Fatalf("date callback fired before confirm: %v", got)
	}

	effects = press(m, "ctrl+s")
	requireKinds(t, effects, DateChanged, CloseRequested)
	if len(got) != 1 || !got[0].Equal(day(2025, time.June, 20)) || closed != 1 {
		t.Fatalf("callbacks: dates %v closed %d", got, closed)
	}
}

func TestModelUpdateEmitsEffectsMsg(t *testing.T) {
	m := New(testConfig(autoApply), committedOn(day(2025, time.June, 15)))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	if cmd != nil {
		t.Fatal("cursor move should not produce a command")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command for the day commit")
	}
	msg, ok := cmd().(EffectsMsg)
	if !ok {
		t.Fatalf("cmd returned %T", cmd())
	}
	if msg.Source != m.ID() {
		t.Fatalf("source = %v, want %v", msg.Source, m.ID())
	}
	requireKinds(t, msg.Effects, DateChanged)
	if !msg.Effects[0].Date.Equal(day(2025, time.June, 16)) {
		t.Fatalf("date = %v", msg.Effects[0].Date)
	}

	if _, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24}); cmd != nil {
		t.Fatal("non-key messages should be ignored")
	}
}

func TestModelYearAndMonthGrids(t *testing.T) {
	var years []int
	m := New(testConfig(), committedOn(day(2025, time.June, 15)), WithCallbacks(Callbacks{
		OnYearChange: func(y int) { years = append(years, y) },
	}))

	press(m, "v")
	if m.State().View != ViewYears || m.Scope() != keys.ScopeYears {
		t.Fatalf("view = %v scope = %s", m.State().View, m.Scope())
	}
	if m.YearOffset() != 9 {
		t.Fatalf("year offset = %d, want 9", m.YearOffset())
	}

	effects := press(m, "down", "enter")
	requireKinds(t, effects, YearChanged)
	if effects[0].Year != 2029 || len(years) != 1 || m.State().View != ViewMonths {
		t.Fatalf("year effect %v callbacks %v view %v", effects[0], years, m.State().View)
	}

	effects = press(m, "right", "enter")
	requireKinds(t, effects, MonthChanged)
	if effects[0].Month != time.February || m.State().DisplayYear != 2029 {
		t.Fatalf("month effect %v", effects[0])
	}
	if !m.Cursor().Equal(day(2029, time.February, 15)) {
		t.Fatalf("cursor = %v", m.Cursor())
	}
}

func TestModelYearCursorScrolls(t *testing.T) {
	m := New(testConfig(yearOnly), Committed{}, WithYearRows(4))
	start := m.YearOffset()
	for i := 0; i < 4; i++ {
		press(m, "down")
	}
	if m.YearOffset() <= start {
		t.Fatalf("offset %d did not follow the cursor from %d", m.YearOffset(), start)
	}
	for i := 0; i < 200; i++ {
		press(m, "up")
	}
	if m.YearOffset() != 0 {
		t.Fatalf("offset = %d at the top", m.YearOffset())
	}
}

func TestModelTimePanel(t *testing.T) {
	var times []string
	cfg := testConfig(autoApply, withTime)
	m := New(cfg, Committed{Date: day(2025, time.June, 15), Time: timeval.MustNew(9, 0, -1), HasTime: true}, WithCallbacks(Callbacks{
		OnTimeChange: func(v timeval.Value) { times = append(times, v.String()) },
	}))

	press(m, "tab")
	if !m.TimeFocused() || m.Scope() != keys.ScopeTime {
		t.Fatal("tab should focus the time panel")
	}
	effects := press(m, "up")
	requireKinds(t, effects, TimeChanged)
	if len(times) != 1 || times[0] != "10:00" {
		t.Fatalf("times = %v", times)
	}
	press(m, "tab")
	if m.TimeFocused() {
		t.Fatal("tab should leave the time panel")
	}
}

func TestModelCursorStaysInGrid(t *testing.T) {
	m := New(testConfig(), committedOn(day(2025, time.June, 15)))
	for i := 0; i < 10; i++ {
		press(m, "down")
	}
	if !m.Cursor().Equal(day(2025, time.July, 6)) {
		t.Fatalf("cursor = %v, want last row", m.Cursor())
	}
	for i := 0; i < 60; i++ {
		press(m, "left")
	}
	if !m.Cursor().Equal(day(2025, time.June, 1)) {
		t.Fatalf("cursor = %v, want first cell", m.Cursor())
	}
}

func TestModelResetDiscardsEdits(t *testing.T) {
	m := New(testConfig(), committedOn(day(2025, time.June, 15)))
	press(m, "right", "enter", "]")
	m.Reset()
	s := m.State()
	if !s.StagedDate.Equal(day(2025, time.June, 15)) || s.DisplayMonth != time.June {
		t.Fatalf("after reset: %+v", s)
	}
	if !m.Cursor().Equal(day(2025, time.June, 15)) {
		t.Fatalf("cursor = %v", m.Cursor())
	}
}

func TestModelKeyOverrides(t *testing.T) {
	r := keys.NewRegistry()
	if err := r.ApplyOverrides([]keys.Override{{Scope: keys.ScopeDays, Action: "today", Keys: []string{"n"}}}); err != nil {
		t.Fatalf("override: %v", err)
	}
	m := New(testConfig(), committedOn(day(2024, time.January, 2)), WithKeys(r))
	press(m, "t")
	if m.State().DisplayYear != 2024 {
		t.Fatal("t should no longer jump to today")
	}
	press(m, "n")
	if !m.State().StagedDate.Equal(day(2025, time.June, 18)) || !m.Cursor().Equal(day(2025, time.June, 18)) {
		t.Fatalf("staged %v cursor %v", m.State().StagedDate, m.Cursor())
	}
}

func TestModelView(t *testing.T) {
	m := New(testConfig(), committedOn(day(2025, time.June, 15)))
	out := m.View()
	for _, want := range []string{"2025년 6월", "일", "토", "30", "오늘", "확인", "ctrl+s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("day view missing %q:\n%s", want, out)
		}
	}

	press(m, "v")
	out = m.View()
	for _, want := range []string{"연도 선택", "2025년", "취소"} {
		if !strings.Contains(out, want) {
			t.Fatalf("year view missing %q:\n%s", want, out)
		}
	}

	cfg := testConfig(withTime)
	cfg.Texts = locale.Resolve("en")
	cfg.TimeFormat = timeval.Format12
	en := New(cfg, Committed{Date: day(2025, time.June, 15), Time: timeval.MustNew(15, 5, -1), HasTime: true})
	out = en.View()
	for _, want := range []string{"June 2025", "Su", "03", "05", "PM", "OK"} {
		if !strings.Contains(out, want) {
			t.Fatalf("datetime view missing %q:\n%s", want, out)
		}
	}

	en.HandleKey("v")
	en.HandleKey("enter")
	if out := en.View(); !strings.Contains(out, "2025 - Select month") || !strings.Contains(out, "September") {
		t.Fatalf("month view:\n%s", out)
	}
}
