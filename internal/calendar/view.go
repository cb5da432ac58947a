package calendar

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/calpick/internal/dates"
	"github.com/jask/calpick/internal/keys"
)

const (
	dayCellWidth  = 4
	yearCellWidth = 7
)

func (m *Model) View() string {
	if m == nil {
		return ""
	}
	var body string
	switch m.state.View {
	case ViewYears:
		body = m.viewYears()
	case ViewMonths:
		body = m.viewMonths()
	default:
		body = m.viewDays()
		if m.timeSel != nil {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", "\n"+m.timeSel.View(m.styles, m.timeFocus))
		}
	}
	parts := []string{m.viewHeader(lipgloss.Width(body)), body}
	if f := FooterFor(m.state, m.cfg); f.Visible {
		parts = append(parts, "", m.viewFooter(f))
	}
	return m.styles.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) viewHeader(width int) string {
	st, t, s := m.styles, m.cfg.Texts, m.state
	arrow := st.HeaderArrow.Render
	var title string
	left, right := arrow("‹"), arrow("›")
	switch s.View {
	case ViewYears:
		title = t.SelectYear
		right = " "
		if m.cfg.singlePurpose() {
			left = " "
		}
	case ViewMonths:
		title = t.MonthHeader(s.AnchorYear)
		right = " "
	default:
		title = t.Title(s.DisplayYear, s.DisplayMonth)
	}
	inner := max(0, width-2)
	return left + lipgloss.PlaceHorizontal(inner, lipgloss.Center, st.Header.Render(title)) + right
}

func (m *Model) viewDays() string {
	st, s := m.styles, m.state
	grid := dates.MonthGrid(s.DisplayYear, s.DisplayMonth, m.cfg.now().Location())
	today := m.cfg.today()
	selected := s.SelectedDate(m.cfg)
	holidays := m.cfg.holidays()

	cell := func(style lipgloss.Style, text string) string {
		return style.Width(dayCellWidth).Align(lipgloss.Right).Render(text)
	}

	rows := make([]string, 0, 7)
	var head strings.Builder
	for i, name := range m.cfg.Texts.Weekdays {
		style := st.Weekday
		switch time.Weekday(i) {
		case time.Sunday:
			style = st.DayHoliday
		case time.Saturday:
			style = st.DaySaturday
		}
		head.WriteString(cell(style, name))
	}
	rows = append(rows, head.String())

	for r := 0; r < dates.GridCells/7; r++ {
		var line strings.Builder
		for c := 0; c < 7; c++ {
			d := grid[r*7+c]
			style := st.Day
			switch {
			case d.Month() != s.DisplayMonth:
				style = st.DayOutside
			case m.cfg.dayDisabled(d):
				style = st.DayDisabled
			case d.Weekday() == time.Sunday || dates.ContainsDay(holidays, d):
				style = st.DayHoliday
			case d.Weekday() == time.Saturday:
				style = st.DaySaturday
			}
			if dates.SameDay(d, today) {
				style = st.DayToday.Inherit(style)
			}
			if dates.SameDay(d, selected) {
				style = st.DaySelected
			}
			if !m.timeFocus && dates.SameDay(d, m.cursor) {
				style = st.Cursor.Inherit(style)
			}
			line.WriteString(cell(style, strconv.Itoa(d.Day())))
		}
		rows = append(rows, line.String())
	}
	return strings.Join(rows, "\n")
}

func (m *Model) viewYears() string {
	st, s := m.styles, m.state
	years := m.years()
	current := m.cfg.today().Year()
	selected := s.DisplayYear
	switch {
	case m.cfg.YearOnly && s.YearStaged:
		selected = s.StagedYear
	case m.cfg.singlePurpose():
		selected = s.compareDate(m.cfg).Year()
	}

	var rows []string
	for r := m.yearOffset; r < m.yearOffset+m.yearRows; r++ {
		var line strings.Builder
		for c := 0; c < YearColumns; c++ {
			i := r*YearColumns + c
			if i >= len(years) {
				line.WriteString(strings.Repeat(" ", yearCellWidth))
				continue
			}
			y := years[i]
			style := st.Item
			if y == current {
				style = st.ItemCurrent
			}
			if y == selected {
				style = st.ItemSelected
			}
			if y == m.yearCursor {
				style = st.Cursor.Inherit(style)
			}
			line.WriteString(style.Width(yearCellWidth).Align(lipgloss.Center).Render(m.cfg.Texts.Year(y)))
		}
		rows = append(rows, line.String())
	}
	return strings.Join(rows, "\n")
}

func (m *Model) viewMonths() string {
	st, s, t := m.styles, m.state, m.cfg.Texts
	width := 9
	for _, name := range t.Months {
		width = max(width, lipgloss.Width(name)+2)
	}

	var selected time.Month
	switch {
	case m.cfg.MonthOnly && s.StagedMonth != 0:
		selected = s.StagedMonth
	case m.cfg.MonthOnly:
		if ref := s.compareDate(m.cfg); ref.Year() == s.AnchorYear {
			selected = ref.Month()
		}
	case s.AnchorYear == s.DisplayYear:
		selected = s.DisplayMonth
	}
	today := m.cfg.today()

	var rows []string
	for r := 0; r < 12/MonthColumns; r++ {
		var line strings.Builder
		for c := 0; c < MonthColumns; c++ {
			month := time.Month(r*MonthColumns + c + 1)
			style := st.Item
			if today.Year() == s.AnchorYear && today.Month() == month {
				style = st.ItemCurrent
			}
			if month == selected {
				style = st.ItemSelected
			}
			if month == m.monthCursor {
				style = st.Cursor.Inherit(style)
			}
			line.WriteString(style.Width(width).Align(lipgloss.Center).Render(t.Month(month)))
		}
		rows = append(rows, line.String())
	}
	return strings.Join(rows, "\n")
}

func (m *Model) viewFooter(f Footer) string {
	st := m.styles
	scope := m.Scope()
	if scope == keys.ScopeTime {
		scope = keys.ScopeDays
	}
	parts := make([]string, 0, len(f.Buttons))
	for _, b := range f.Buttons {
		label := st.Button
		switch {
		case !b.Enabled:
			label = st.ButtonOff
		case b.Kind == ButtonConfirm:
			label = st.ButtonMain
		}
		hint := m.keys.KeyFor(buttonAction(b.Kind), scope)
		part := label.Render(b.Label)
		if hint != "" {
			part = st.KeyHint.Render(hint) + " " + part
		}
		parts = append(parts, part)
	}
	return st.Footer.Render(strings.Join(parts, "  "))
}

func buttonAction(k ButtonKind) keys.Action {
	switch k {
	case ButtonToday:
		return keys.ActionToday
	case ButtonConfirm:
		return keys.ActionConfirm
	}
	return keys.ActionCancel
}
