package calendar

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/calpick/internal/dates"
	"github.com/jask/calpick/internal/keys"
	"github.com/jask/calpick/internal/theme"
	"github.com/jask/calpick/internal/timesel"
)

// EffectsMsg carries the effects of one interaction to message-driven hosts.
type EffectsMsg struct {
	Source  uuid.UUID
	Effects []Effect
}

// defaultYearRows is how many year rows are visible at once.
const defaultYearRows = 6

// Model is a Bubble Tea component around the state machine.
type Model struct {
	id        uuid.UUID
	cfg       Config
	state     State
	keys      *keys.Registry
	styles    theme.Styles
	callbacks Callbacks

	cursor      time.Time
	yearCursor  int
	monthCursor time.Month
	timeSel     *timesel.Selector
	timeFocus   bool

	yearOffset int
	yearRows   int
}

type Option func(*Model)

func WithKeys(r *keys.Registry) Option {
	return func(m *Model) {
		if r != nil {
			m.keys = r
		}
	}
}

func WithStyles(st theme.Styles) Option {
	return func(m *Model) { m.styles = st }
}

func WithCallbacks(cb Callbacks) Option {
	return func(m *Model) { m.callbacks = cb }
}

func WithID(id uuid.UUID) Option {
	return func(m *Model) { m.id = id }
}

// WithYearRows sets the height of the year viewport in rows.
func WithYearRows(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.yearRows = n
		}
	}
}

func New(cfg Config, committed Committed, opts ...Option) *Model {
	m := &Model{
		id:       uuid.New(),
		cfg:      cfg,
		keys:     keys.NewRegistry(),
		styles:   theme.Default(),
		yearRows: defaultYearRows,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.state = NewState(cfg, committed)
	m.resync()
	m.centerIfYears()
	return m
}

func (m *Model) ID() uuid.UUID     { return m.id }
func (m *Model) State() State      { return m.state }
func (m *Model) Config() Config    { return m.cfg }
func (m *Model) Cursor() time.Time { return m.cursor }
func (m *Model) TimeFocused() bool { return m.timeFocus }

// YearOffset is the first visible row of the year grid.
func (m *Model) YearOffset() int { return m.yearOffset }

// Reset rebuilds the staged state from the committed slot.
func (m *Model) Reset() {
	if m == nil {
		return
	}
	m.state = ResetStaged(m.state, m.cfg)
	m.timeFocus = false
	m.yearOffset = 0
	m.resync()
	m.centerIfYears()
}

// centerIfYears centers the year grid when a calendar opens on it.
func (m *Model) centerIfYears() {
	if m.state.View == ViewYears {
		m.dispatch([]Effect{centerEffect(m.state, m.cfg)})
	}
}

// SetCommitted pushes a new host value without touching staged edits.
func (m *Model) SetCommitted(c Committed) {
	m.Send(SetCommitted{Committed: c})
}

// Send runs ev through Transition, dispatches the callbacks and returns the
// effects.
func (m *Model) Send(ev Event) []Effect {
	if m == nil {
		return nil
	}
	before := m.state
	var effects []Effect
	m.state, effects = Transition(m.state, ev, m.cfg)
	m.follow(before)
	m.dispatch(effects)
	return effects
}

func (m *Model) dispatch(effects []Effect) {
	cb := m.callbacks
	if cb.Scroller == nil {
		cb.Scroller = m
	}
	if cb.Metrics == nil {
		cb.Metrics = m.metrics
	}
	cb.Dispatch(effects)
}

// ScrollTo implements Scroller for the year viewport. Rows are one line.
func (m *Model) ScrollTo(offset int) {
	maxOffset := max(0, (len(m.years())+YearColumns-1)/YearColumns-m.yearRows)
	m.yearOffset = min(max(0, offset), maxOffset)
}

func (m *Model) metrics() (int, int, bool) {
	return 1, m.yearRows, m.yearRows > 0
}

func (m *Model) years() []int { return dates.YearSpan(m.cfg.today()) }

// resync points every cursor at the current state.
func (m *Model) resync() {
	s := m.state
	m.cursor = m.dayCursorFor(s)
	m.yearCursor = s.AnchorYear
	if s.YearStaged {
		m.yearCursor = s.StagedYear
	}
	m.monthCursor = s.DisplayMonth
	if s.StagedMonth != 0 {
		m.monthCursor = s.StagedMonth
	}
	if m.cfg.ShowTime {
		m.timeSel = timesel.New(timesel.Config{
			Format:       m.cfg.format(),
			Bounds:       m.cfg.TimeBounds,
			MinuteStep:   m.cfg.MinuteStep,
			SecondStep:   m.cfg.SecondStep,
			HideDisabled: m.cfg.HideDisabledTime,
			AM:           m.cfg.Texts.AM,
			PM:           m.cfg.Texts.PM,
			Keys:         m.keys,
		}, s.StagedTime)
	}
}

// follow moves cursors after a transition changed the view or month.
func (m *Model) follow(before State) {
	s := m.state
	if s.DisplayYear != before.DisplayYear || s.DisplayMonth != before.DisplayMonth {
		m.cursor = m.dayCursorFor(s)
	}
	if s.View != before.View {
		switch s.View {
		case ViewYears:
			m.yearCursor = s.AnchorYear
		case ViewMonths:
			m.monthCursor = s.DisplayMonth
			if s.AnchorYear != s.DisplayYear {
				m.monthCursor = time.January
			}
		}
	}
	if m.timeSel != nil && s.StagedTime != m.timeSel.Value() {
		m.timeSel.SetValue(s.StagedTime)
	}
}

func (m *Model) dayCursorFor(s State) time.Time {
	inMonth := func(d time.Time) bool {
		return !d.IsZero() && d.Year() == s.DisplayYear && d.Month() == s.DisplayMonth
	}
	for _, d := range []time.Time{s.StagedDate, s.Committed.Date, m.cfg.today()} {
		if inMonth(d) {
			return dates.DateOnly(d)
		}
	}
	day := 1
	if !m.cursor.IsZero() {
		day = min(m.cursor.Day(), dates.DaysInMonth(s.DisplayYear, s.DisplayMonth))
	}
	return time.Date(s.DisplayYear, s.DisplayMonth, day, 0, 0, 0, 0, m.cfg.now().Location())
}

// Scope is the key scope the model currently reads keys in.
func (m *Model) Scope() string {
	if m.timeFocus && m.state.View == ViewDays {
		return keys.ScopeTime
	}
	switch m.state.View {
	case ViewYears:
		return keys.ScopeYears
	case ViewMonths:
		return keys.ScopeMonths
	}
	return keys.ScopeDays
}

// HandleKey maps a key to a cursor move or an event and returns the effects.
func (m *Model) HandleKey(keyName string) []Effect {
	if m == nil {
		return nil
	}
	scope := m.Scope()
	if scope == keys.ScopeTime {
		return m.handleTimeKey(keyName)
	}
	action := m.keys.ActionFor(keyName, scope)
	switch m.state.View {
	case ViewYears:
		return m.handleYearKey(action)
	case ViewMonths:
		return m.handleMonthKey(action)
	}
	return m.handleDayKey(action)
}

func (m *Model) handleDayKey(action keys.Action) []Effect {
	switch action {
	case keys.ActionLeft:
		m.moveDay(-1)
	case keys.ActionRight:
		m.moveDay(1)
	case keys.ActionUp:
		m.moveDay(-7)
	case keys.ActionDown:
		m.moveDay(7)
	case keys.ActionPrevMonth:
		return m.Send(PrevMonth{})
	case keys.ActionNextMonth:
		return m.Send(NextMonth{})
	case keys.ActionSelect:
		return m.Send(SelectDay{Date: m.cursor})
	case keys.ActionTitle:
		return m.Send(TitleClick{})
	case keys.ActionToday:
		effects := m.Send(Today{})
		if m.cfg.ShowToday && !m.cfg.dayDisabled(m.cfg.today()) && m.state.View == ViewDays {
			m.cursor = m.cfg.today()
		}
		return effects
	case keys.ActionFocusTime:
		if m.timeSel != nil {
			m.timeFocus = true
		}
	case keys.ActionConfirm:
		return m.Send(Confirm{})
	case keys.ActionCancel:
		return m.Send(Cancel{})
	}
	return nil
}

// moveDay keeps the cursor inside the 42 visible cells.
func (m *Model) moveDay(delta int) {
	grid := dates.MonthGrid(m.state.DisplayYear, m.state.DisplayMonth, m.cfg.now().Location())
	next := m.cursor.AddDate(0, 0, delta)
	if next.Before(grid[0]) || next.After(grid[len(grid)-1]) {
		return
	}
	m.cursor = next
}

func (m *Model) handleYearKey(action keys.Action) []Effect {
	years := m.years()
	move := func(delta int) {
		y := m.yearCursor + delta
		if y < years[0] || y > years[len(years)-1] {
			return
		}
		m.yearCursor = y
		m.keepYearVisible()
	}
	switch action {
	case keys.ActionLeft:
		move(-1)
	case keys.ActionRight:
		move(1)
	case keys.ActionUp:
		move(-YearColumns)
	case keys.ActionDown:
		move(YearColumns)
	case keys.ActionSelect:
		return m.Send(SelectYear{Year: m.yearCursor})
	case keys.ActionBack:
		return m.Send(Back{})
	case keys.ActionConfirm:
		return m.Send(Confirm{})
	case keys.ActionCancel:
		return m.Send(Cancel{})
	}
	return nil
}

func (m *Model) keepYearVisible() {
	idx := YearIndex(m.cfg, m.yearCursor)
	if idx < 0 {
		return
	}
	row := idx / YearColumns
	switch {
	case row < m.yearOffset:
		m.ScrollTo(row)
	case row >= m.yearOffset+m.yearRows:
		m.ScrollTo(row - m.yearRows + 1)
	}
}

func (m *Model) handleMonthKey(action keys.Action) []Effect {
	move := func(delta int) {
		next := m.monthCursor + time.Month(delta)
		if next < time.January || next > time.December {
			return
		}
		m.monthCursor = next
	}
	switch action {
	case keys.ActionLeft:
		move(-1)
	case keys.ActionRight:
		move(1)
	case keys.ActionUp:
		move(-MonthColumns)
	case keys.ActionDown:
		move(MonthColumns)
	case keys.ActionSelect:
		return m.Send(SelectMonth{Month: m.monthCursor})
	case keys.ActionBack:
		return m.Send(Back{})
	case keys.ActionConfirm:
		return m.Send(Confirm{})
	case keys.ActionCancel:
		return m.Send(Cancel{})
	}
	return nil
}

func (m *Model) handleTimeKey(keyName string) []Effect {
	res := m.timeSel.HandleKey(keyName)
	switch res.Action {
	case timesel.ActionChanged:
		return m.Send(TimeChange{Value: res.Value})
	case timesel.ActionConfirm:
		return m.Send(Confirm{})
	case timesel.ActionCancel:
		return m.Send(Cancel{})
	case timesel.ActionLeave:
		m.timeFocus = false
	}
	return nil
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	effects := m.HandleKey(km.String())
	return m, m.EffectsCmd(effects)
}

// EffectsCmd wraps effects in an EffectsMsg, or returns nil when empty.
func (m *Model) EffectsCmd(effects []Effect) tea.Cmd {
	if len(effects) == 0 {
		return nil
	}
	msg := EffectsMsg{Source: m.id, Effects: effects}
	return func() tea.Msg { return msg }
}
