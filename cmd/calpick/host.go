package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jask/calpick/internal/calendar"
	"github.com/jask/calpick/internal/keys"
	"github.com/jask/calpick/internal/popover"
	"github.com/jask/calpick/internal/theme"
)

const (
	fieldTop   = 2
	maxLogRows = 100
)

type fieldKind int

const (
	kindDate fieldKind = iota
	kindDateTime
	kindMonth
	kindYear
)

// picker is what the host needs from both popover pickers.
type picker interface {
	ID() uuid.UUID
	IsVisible() bool
	SetOpen(bool)
	SetCommitted(calendar.Committed)
	Committed() calendar.Committed
	Update(tea.Msg) tea.Cmd
	Render(base string, width, height int) string
}

type field struct {
	label  string
	kind   fieldKind
	input  textinput.Model
	anchor *popover.Ref
	picker picker
}

// text formats the committed value the way the field shows it.
func (f *field) text() string {
	c := f.picker.Committed()
	if c.Date.IsZero() {
		return ""
	}
	switch f.kind {
	case kindDateTime:
		if c.HasTime {
			return c.Date.Format("2006-01-02") + " " + c.Time.String()
		}
	case kindMonth:
		return c.Date.Format("2006-01")
	case kindYear:
		return c.Date.Format("2006")
	}
	return c.Date.Format("2006-01-02")
}

func (f *field) refresh() { f.input.SetValue(f.text()) }

// host is a form of anchor fields, each opening its own picker, above a log
// of every effect the pickers report.
type host struct {
	fields []*field
	focus  int
	keys   *keys.Registry
	styles theme.Styles
	log    table.Model
	logf   func(format string, args ...any)

	// saveKeys persists the keymap as keybinding overrides.
	saveKeys func([]keys.Override) error

	width, height int
}

func newHost(cfg calendar.Config, reg *keys.Registry, styles theme.Styles, logf func(string, ...any), saveKeys func([]keys.Override) error) *host {
	if reg == nil {
		reg = keys.NewRegistry()
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}
	opts := []calendar.Option{calendar.WithKeys(reg), calendar.WithStyles(styles)}

	monthCfg, yearCfg := cfg, cfg
	monthCfg.MonthOnly = true
	yearCfg.YearOnly = true

	h := &host{keys: reg, styles: styles, logf: logf, saveKeys: saveKeys, width: 80, height: 24}
	add := func(label, placeholder string, kind fieldKind, build func(anchor *popover.Ref) picker) {
		in := textinput.New()
		in.Prompt = lipgloss.NewStyle().Width(13).Render(label)
		in.Placeholder = placeholder
		in.Width = 20
		ref := &popover.Ref{}
		f := &field{label: label, kind: kind, input: in, anchor: ref, picker: build(ref)}
		f.refresh()
		h.fields = append(h.fields, f)
	}
	add("Date", "YYYY-MM-DD", kindDate, func(a *popover.Ref) picker {
		return popover.NewDatePicker(cfg, time.Time{}, a, opts...)
	})
	add("Date & time", "YYYY-MM-DD HH:mm", kindDateTime, func(a *popover.Ref) picker {
		return popover.NewDateTimePicker(cfg, time.Time{}, nil, a, opts...)
	})
	add("Month", "YYYY-MM", kindMonth, func(a *popover.Ref) picker {
		return popover.NewDatePicker(monthCfg, time.Time{}, a, opts...)
	})
	add("Year", "YYYY", kindYear, func(a *popover.Ref) picker {
		return popover.NewDatePicker(yearCfg, time.Time{}, a, opts...)
	})
	h.fields[0].input.Focus()

	cols := []table.Column{
		{Title: "Field", Width: 12},
		{Title: "Effect", Width: 12},
		{Title: "Detail", Width: 28},
	}
	t := table.New(table.WithColumns(cols), table.WithHeight(8))
	ts := table.DefaultStyles()
	ts.Header = ts.Header.Bold(true)
	t.SetStyles(ts)
	h.log = t
	return h
}

func (h *host) Init() tea.Cmd { return textinput.Blink }

func (h *host) openPicker() picker {
	for _, f := range h.fields {
		if f.picker.IsVisible() {
			return f.picker
		}
	}
	return nil
}

func (h *host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height
		h.log.SetWidth(max(20, msg.Width-2))
		return h, nil
	case calendar.EffectsMsg:
		h.applyEffects(msg)
		return h, nil
	case tea.KeyMsg:
		name := msg.String()
		if h.keys.ActionFor(name, keys.ScopeGlobal) == keys.ActionQuit {
			return h, tea.Quit
		}
		if p := h.openPicker(); p != nil {
			return h, p.Update(msg)
		}
		switch h.keys.ActionFor(name, keys.ScopeHost) {
		case keys.ActionNavigate:
			dir := 1
			if name == "k" || name == "up" {
				dir = -1
			}
			h.moveFocus(dir)
		case keys.ActionOpen:
			f := h.fields[h.focus]
			h.logf("open %s", f.label)
			f.picker.SetOpen(true)
		case keys.ActionSaveKeys:
			h.saveKeymap()
		case keys.ActionQuit:
			return h, tea.Quit
		}
		return h, nil
	}
	var cmd tea.Cmd
	f := h.fields[h.focus]
	f.input, cmd = f.input.Update(msg)
	return h, cmd
}

func (h *host) moveFocus(dir int) {
	h.fields[h.focus].input.Blur()
	h.focus = (h.focus + dir + len(h.fields)) % len(h.fields)
	h.fields[h.focus].input.Focus()
}

// applyEffects logs a batch and mirrors it into the owning field. Month and
// year pickers never commit a date themselves, so the host pins one.
func (h *host) applyEffects(msg calendar.EffectsMsg) {
	var f *field
	for _, candidate := range h.fields {
		if candidate.picker.ID() == msg.Source {
			f = candidate
			break
		}
	}
	if f == nil {
		return
	}
	for _, e := range msg.Effects {
		h.logf("%s: %s", f.label, e)
		h.pushRow(table.Row{f.label, e.Kind.String(), e.String()})

		c := f.picker.Committed()
		switch {
		case f.kind == kindMonth && e.Kind == calendar.MonthChanged:
			c.Date = time.Date(e.Year, e.Month, 1, 0, 0, 0, 0, time.Local)
			f.picker.SetCommitted(c)
		case f.kind == kindYear && e.Kind == calendar.YearChanged:
			c.Date = time.Date(e.Year, time.January, 1, 0, 0, 0, 0, time.Local)
			f.picker.SetCommitted(c)
		}
	}
	f.refresh()
}

// saveKeymap writes every current binding back to the config file.
func (h *host) saveKeymap() {
	if h.saveKeys == nil {
		return
	}
	overrides := h.keys.Export()
	if err := h.saveKeys(overrides); err != nil {
		h.logf("save keys: %v", err)
		h.pushRow(table.Row{"Keys", "error", err.Error()})
		return
	}
	h.logf("saved %d key bindings", len(overrides))
	h.pushRow(table.Row{"Keys", "saved", fmt.Sprintf("%d bindings", len(overrides))})
}

// pushRow adds row to the top of the log.
func (h *host) pushRow(row table.Row) {
	rows := append([]table.Row{row}, h.log.Rows()...)
	if len(rows) > maxLogRows {
		rows = rows[:maxLogRows]
	}
	h.log.SetRows(rows)
}

func (h *host) View() string {
	title := h.styles.Header.Render("calpick") + "  " + h.styles.KeyDesc.Render("date picker demo")
	lines := []string{title, ""}
	for i, f := range h.fields {
		line := f.input.View()
		f.anchor.Current = popover.Rect{X: 0, Y: fieldTop + i, Width: lipgloss.Width(line), Height: 1}
		lines = append(lines, line)
	}
	lines = append(lines, "", h.help(), "", h.log.View())
	base := strings.Join(lines, "\n")

	if p := h.openPicker(); p != nil {
		return p.Render(base, h.width, h.height)
	}
	return base
}

func (h *host) help() string {
	var parts []string
	for _, b := range h.keys.HelpBindings(keys.ScopeHost) {
		parts = append(parts, h.styles.KeyHint.Render(b.Help().Key)+" "+h.styles.KeyDesc.Render(b.Help().Desc))
	}
	return strings.Join(parts, "  ")
}
