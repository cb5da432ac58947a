package popover

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/calpick/internal/calendar"
	"github.com/jask/calpick/internal/timeval"
)

// Size is a popover box in terminal cells.
type Size struct {
	Width, Height int
}

const (
	calendarWidth      = 36
	calendarHeight     = 12
	noFooterHeight     = 10
	timePanelWidth     = 12
	timePanelWidthSecs = 16
)

// Geometry returns the fixed box a picker occupies. A date-only picker is
// always calendarWidth x calendarHeight; the time panel widens it and a
// hidden footer shortens it.
func Geometry(showTime, hasSeconds, showFooter bool) Size {
	if !showTime {
		return Size{Width: calendarWidth, Height: calendarHeight}
	}
	size := Size{Width: calendarWidth + timePanelWidth, Height: calendarHeight}
	if hasSeconds {
		size.Width = calendarWidth + timePanelWidthSecs
	}
	if !showFooter {
		size.Height = noFooterHeight
	}
	return size
}

// popover holds what both pickers share: the open flag, the committed value
// and the calendar that edits it.
type popover struct {
	id        uuid.UUID
	anchor    any
	open      bool
	committed calendar.Committed
	cal       *calendar.Model
	size      Size
}

func newPopover(cfg calendar.Config, committed calendar.Committed, anchor any, opts []calendar.Option) popover {
	id := uuid.New()
	all := append(append([]calendar.Option(nil), opts...), calendar.WithID(id))
	return popover{
		id:        id,
		anchor:    anchor,
		committed: committed,
		cal:       calendar.New(cfg, committed, all...),
		size:      Geometry(cfg.ShowTime, cfg.TimeFormat.HasSeconds(), cfg.ShowFooter),
	}
}

// ID identifies the picker in calendar.EffectsMsg.Source.
func (p *popover) ID() uuid.UUID { return p.id }

func (p *popover) Size() Size { return p.size }

func (p *popover) IsVisible() bool { return p.open }

// Calendar exposes the wrapped model, mostly for tests.
func (p *popover) Calendar() *calendar.Model { return p.cal }

// SetOpen shows or hides the picker. Opening discards anything staged while
// it was last open so the calendar starts from the committed value.
func (p *popover) SetOpen(open bool) {
	if open && !p.open {
		p.cal.SetCommitted(p.committed)
		p.cal.Reset()
	}
	p.open = open
}

func (p *popover) Show() { p.SetOpen(true) }
func (p *popover) Hide() { p.SetOpen(false) }

func (p *popover) SetAnchor(anchor any) { p.anchor = anchor }

// Anchor resolves the anchor as it is right now.
func (p *popover) Anchor() Element { return ResolveAnchor(p.anchor) }

// SetCommitted replaces the host value. Staged edits are kept until the next
// open.
func (p *popover) SetCommitted(c calendar.Committed) {
	p.committed = c
	p.cal.SetCommitted(c)
}

func (p *popover) Committed() calendar.Committed { return p.committed }

func (p *popover) Date() time.Time { return p.committed.Date }

// HandleKey forwards a key while open. A close request hides the picker.
func (p *popover) HandleKey(keyName string) []calendar.Effect {
	if !p.open {
		return nil
	}
	effects := p.cal.HandleKey(keyName)
	p.committed = p.cal.State().Committed
	if calendar.Has(effects, calendar.CloseRequested) {
		p.open = false
	}
	return effects
}

// Update handles key messages while open and reports effects as a
// calendar.EffectsMsg command.
func (p *popover) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !p.open {
		return nil
	}
	return p.cal.EffectsCmd(p.HandleKey(km.String()))
}

// View renders the calendar fitted to the picker's box, or "" when closed.
func (p *popover) View() string {
	if !p.open {
		return ""
	}
	return Fit(p.cal.View(), p.size.Width, p.size.Height)
}

// Render draws the open picker over base, a width x height host view.
func (p *popover) Render(base string, width, height int) string {
	if !p.open {
		return base
	}
	return Overlay(base, p.View(), p.Anchor(), width, height)
}

// DatePicker edits a date. With AutoApply a day click commits and closes.
type DatePicker struct {
	popover
}

func NewDatePicker(cfg calendar.Config, date time.Time, anchor any, opts ...calendar.Option) *DatePicker {
	cfg.ShowTime = false
	cfg.CloseOnSelect = true
	return &DatePicker{popover: newPopover(cfg, calendar.Committed{Date: date}, anchor, opts)}
}

func (p *DatePicker) SetDate(d time.Time) {
	p.SetCommitted(calendar.Committed{Date: d})
}

// DateTimePicker edits a date and a time of day side by side.
type DateTimePicker struct {
	popover
}

func NewDateTimePicker(cfg calendar.Config, date time.Time, tv *timeval.Value, anchor any, opts ...calendar.Option) *DateTimePicker {
	cfg.ShowTime = true
	cfg.CloseOnSelect = false
	cfg.MonthOnly, cfg.YearOnly = false, false
	committed := calendar.Committed{Date: date}
	if tv != nil {
		committed.Time, committed.HasTime = *tv, true
	}
	return &DateTimePicker{popover: newPopover(cfg, committed, anchor, opts)}
}

// Time returns the committed time, if any.
func (p *DateTimePicker) Time() (timeval.Value, bool) {
	return p.committed.Time, p.committed.HasTime
}

func (p *DateTimePicker) SetValue(d time.Time, tv *timeval.Value) {
	c := calendar.Committed{Date: d}
	if tv != nil {
		c.Time, c.HasTime = *tv, true
	}
	p.SetCommitted(c)
}
