// Package timesel is the spinner-style time selector embedded next to the
// calendar grid. It edits a timeval.Value one column at a time and never
// produces an out-of-range value.
package timesel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/calpick/internal/keys"
	"github.com/jask/calpick/internal/theme"
	"github.com/jask/calpick/internal/timeval"
)

type Column int

const (
	ColHour Column = iota
	ColMinute
	ColSecond
	ColMeridiem
)

func (c Column) String() string {
	switch c {
	case ColHour:
		return "hour"
	case ColMinute:
		return "minute"
	case ColSecond:
		return "second"
	case ColMeridiem:
		return "meridiem"
	}
	return "unknown"
}

type Option struct {
	Value    int
	Label    string
	Disabled bool
}

type Config struct {
	Format       timeval.Format
	Bounds       timeval.Bounds
	MinuteStep   int
	SecondStep   int
	HideDisabled bool
	AM           string
	PM           string
	Keys         *keys.Registry
}

type Action int

const (
	ActionNone Action = iota
	ActionMoved
	ActionChanged
	ActionConfirm
	ActionCancel
	ActionLeave
)

type Result struct {
	Action Action
	Value  timeval.Value
}

type Selector struct {
	cfg   Config
	value timeval.Value
	focus int
}

// New builds a selector showing v. An invalid or zero v starts at 00:00.
func New(cfg Config, v timeval.Value) *Selector {
	if cfg.Format == "" {
		cfg.Format = timeval.DefaultFmt
	}
	cfg.MinuteStep = max(1, cfg.MinuteStep)
	cfg.SecondStep = max(1, cfg.SecondStep)
	if cfg.AM == "" {
		cfg.AM = "AM"
	}
	if cfg.PM == "" {
		cfg.PM = "PM"
	}
	if cfg.Keys == nil {
		cfg.Keys = keys.NewRegistry()
	}
	s := &Selector{cfg: cfg}
	if !s.SetValue(v) {
		s.value = timeval.MustNew(0, 0, s.secondArg(0))
	}
	return s
}

func (s *Selector) Value() timeval.Value {
	if s == nil {
		return timeval.Value{}
	}
	return s.value
}

func (s *Selector) Format() timeval.Format {
	if s == nil {
		return timeval.DefaultFmt
	}
	return s.cfg.Format
}

// SetValue replaces the value; invalid values are rejected.
func (s *Selector) SetValue(v timeval.Value) bool {
	if s == nil || !v.Valid() {
		return false
	}
	s.value = v.ForFormat(s.cfg.Format)
	return true
}

func (s *Selector) Columns() []Column {
	cols := []Column{ColHour, ColMinute}
	if s.cfg.Format.HasSeconds() {
		cols = append(cols, ColSecond)
	}
	if s.cfg.Format.Is12Hour() {
		cols = append(cols, ColMeridiem)
	}
	return cols
}

func (s *Selector) Focus() Column {
	if s == nil {
		return ColHour
	}
	return s.Columns()[s.focus]
}

func (s *Selector) FocusNext() bool {
	if s == nil || s.focus >= len(s.Columns())-1 {
		return false
	}
	s.focus++
	return true
}

func (s *Selector) FocusPrev() bool {
	if s == nil || s.focus == 0 {
		return false
	}
	s.focus--
	return true
}

// SetHour sets the 24h hour, rejecting anything outside 0-23.
func (s *Selector) SetHour(h int) bool {
	if s == nil || h < 0 || h > 23 {
		return false
	}
	_, m, sec := s.value.Ints()
	return s.set(h, m, sec)
}

func (s *Selector) SetMinute(m int) bool {
	if s == nil || m < 0 || m > 59 {
		return false
	}
	h, _, sec := s.value.Ints()
	return s.set(h, m, sec)
}

func (s *Selector) SetSecond(sec int) bool {
	if s == nil || !s.cfg.Format.HasSeconds() || sec < 0 || sec > 59 {
		return false
	}
	h, m, _ := s.value.Ints()
	return s.set(h, m, sec)
}

// SetPM moves the hour across noon keeping the 12h face value.
func (s *Selector) SetPM(pm bool) bool {
	if s == nil {
		return false
	}
	h, _, _ := s.value.Ints()
	return s.SetHour(timeval.Hour24(timeval.Hour12(h), pm))
}

func (s *Selector) set(h, m, sec int) bool {
	v, err := timeval.New(h, m, s.secondArg(sec))
	if err != nil {
		return false
	}
	changed := v != s.value
	s.value = v
	return changed
}

func (s *Selector) secondArg(sec int) int {
	if s.cfg.Format.HasSeconds() {
		return sec
	}
	return -1
}

// Options lists the choices of col for the current value. Disabled options
// are dropped when HideDisabled is set.
func (s *Selector) Options(col Column) []Option {
	if s == nil {
		return nil
	}
	h, m, _ := s.value.Ints()
	b := s.cfg.Bounds
	var out []Option
	add := func(o Option) {
		if o.Disabled && s.cfg.HideDisabled {
			return
		}
		out = append(out, o)
	}
	switch col {
	case ColHour:
		base := 0
		if s.cfg.Format.Is12Hour() && h >= 12 {
			base = 12
		}
		n := 24
		if s.cfg.Format.Is12Hour() {
			n = 12
		}
		for i := 0; i < n; i++ {
			hh := base + i
			label := pad2(hh)
			if s.cfg.Format.Is12Hour() {
				label = pad2(timeval.Hour12(hh))
			}
			add(Option{Value: hh, Label: label, Disabled: !b.AllowsRange(hh*3600, hh*3600+3599)})
		}
	case ColMinute:
		for mm := 0; mm < 60; mm += s.cfg.MinuteStep {
			lo := h*3600 + mm*60
			add(Option{Value: mm, Label: pad2(mm), Disabled: !b.AllowsRange(lo, lo+59)})
		}
	case ColSecond:
		if !s.cfg.Format.HasSeconds() {
			return nil
		}
		for ss := 0; ss < 60; ss += s.cfg.SecondStep {
			at := h*3600 + m*60 + ss
			add(Option{Value: ss, Label: pad2(ss), Disabled: !b.AllowsRange(at, at)})
		}
	case ColMeridiem:
		if !s.cfg.Format.Is12Hour() {
			return nil
		}
		add(Option{Value: 0, Label: s.cfg.AM, Disabled: !b.AllowsRange(0, 12*3600-1)})
		add(Option{Value: 1, Label: s.cfg.PM, Disabled: !b.AllowsRange(12*3600, 24*3600-1)})
	}
	return out
}

// Current is the value of col as the Options of that column express it.
func (s *Selector) Current(col Column) int {
	h, m, sec := s.value.Ints()
	switch col {
	case ColHour:
		return h
	case ColMinute:
		return m
	case ColSecond:
		return sec
	case ColMeridiem:
		if h >= 12 {
			return 1
		}
	}
	return 0
}

// Step moves the focused column |delta| enabled options forward or back,
// wrapping around the column.
func (s *Selector) Step(delta int) bool {
	if s == nil || delta == 0 {
		return false
	}
	col := s.Focus()
	opts := s.Options(col)
	if len(opts) == 0 {
		return false
	}
	idx := position(opts, s.Current(col))
	dir := 1
	if delta < 0 {
		dir = -1
		delta = -delta
	}
	target := idx
	for ; delta > 0; delta-- {
		next, ok := nextEnabled(opts, target, dir)
		if !ok {
			break
		}
		target = next
	}
	if target == idx && opts[idx].Value == s.Current(col) {
		return false
	}
	v := opts[target].Value
	switch col {
	case ColHour:
		return s.SetHour(v)
	case ColMinute:
		return s.SetMinute(v)
	case ColSecond:
		return s.SetSecond(v)
	case ColMeridiem:
		return s.SetPM(v == 1)
	}
	return false
}

// position finds the option holding cur, or the last option below it when cur
// is off the step grid.
func position(opts []Option, cur int) int {
	idx := 0
	for i, o := range opts {
		if o.Value == cur {
			return i
		}
		if o.Value < cur {
			idx = i
		}
	}
	return idx
}

func nextEnabled(opts []Option, from, dir int) (int, bool) {
	n := len(opts)
	for i := 1; i < n; i++ {
		j := ((from+dir*i)%n + n) % n
		if !opts[j].Disabled {
			return j, true
		}
	}
	return from, false
}

func (s *Selector) HandleKey(keyName string) Result {
	if s == nil {
		return Result{Action: ActionNone}
	}
	switch s.cfg.Keys.ActionFor(keyName, keys.ScopeTime) {
	case keys.ActionLeft:
		if s.FocusPrev() {
			return Result{Action: ActionMoved, Value: s.value}
		}
	case keys.ActionRight:
		if s.FocusNext() {
			return Result{Action: ActionMoved, Value: s.value}
		}
	case keys.ActionIncrement:
		if s.Step(1) {
			return Result{Action: ActionChanged, Value: s.value}
		}
	case keys.ActionDecrement:
		if s.Step(-1) {
			return Result{Action: ActionChanged, Value: s.value}
		}
	case keys.ActionConfirm:
		return Result{Action: ActionConfirm, Value: s.value}
	case keys.ActionCancel:
		return Result{Action: ActionCancel, Value: s.value}
	case keys.ActionFocusTime:
		return Result{Action: ActionLeave, Value: s.value}
	}
	return Result{Action: ActionNone, Value: s.value}
}

// View renders one spinner per column: previous option, current, next.
// active marks the focused column.
func (s *Selector) View(st theme.Styles, active bool) string {
	if s == nil {
		return ""
	}
	cols := s.Columns()
	rendered := make([]string, 0, len(cols)*2)
	for i, col := range cols {
		if i > 0 {
			sep := " "
			if col == ColMinute || col == ColSecond {
				sep = ":"
			}
			rendered = append(rendered, lipgloss.JoinVertical(lipgloss.Center, " ", st.TimeCell.Render(sep), " "))
		}
		rendered = append(rendered, s.renderColumn(st, col, active && i == s.focus))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (s *Selector) renderColumn(st theme.Styles, col Column, focused bool) string {
	opts := s.Options(col)
	if len(opts) == 0 {
		return ""
	}
	idx := position(opts, s.Current(col))
	width := 0
	for _, o := range opts {
		width = max(width, lipgloss.Width(o.Label))
	}
	cell := func(o Option, style lipgloss.Style) string {
		return style.Width(width).Align(lipgloss.Center).Render(o.Label)
	}
	neighbor := func(dir int) string {
		j, ok := nextEnabled(opts, idx, dir)
		if !ok || len(opts) < 3 {
			return strings.Repeat(" ", width)
		}
		return cell(opts[j], st.TimeDisabled)
	}

	cur := opts[idx]
	curStyle := st.TimeCell
	switch {
	case focused:
		curStyle = st.TimeFocused
	case cur.Disabled:
		curStyle = st.TimeDisabled
	}
	current := cur
	if col == ColHour || col == ColMinute || col == ColSecond {
		if cur.Value != s.Current(col) {
			current = Option{Label: pad2(s.Current(col))}
			if col == ColHour && s.cfg.Format.Is12Hour() {
				current.Label = pad2(timeval.Hour12(s.Current(col)))
			}
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center, neighbor(-1), cell(current, curStyle), neighbor(1))
}

func pad2(n int) string { return fmt.Sprintf("%02d", n) }
