package calendar

type ButtonKind int

const (
	ButtonToday ButtonKind = iota
	ButtonClose
	ButtonCancel
	ButtonConfirm
	// ButtonBack is the cancel-labelled button of the year and month grids
	// that returns to the day grid.
	ButtonBack
)

type Button struct {
	Kind    ButtonKind
	Label   string
	Enabled bool
}

// Event is what pressing the button feeds to Transition.
func (b Button) Event() Event {
	switch b.Kind {
	case ButtonToday:
		return Today{}
	case ButtonConfirm:
		return Confirm{}
	case ButtonClose:
		return Close{}
	}
	return Cancel{}
}

type Footer struct {
	Visible bool
	Buttons []Button
}

// FooterFor derives the footer from the state; it is never stored.
func FooterFor(s State, cfg Config) Footer {
	if !cfg.ShowFooter {
		return Footer{}
	}
	t := cfg.Texts
	if cfg.singlePurpose() {
		if cfg.AutoApply {
			return Footer{}
		}
		return Footer{Visible: true, Buttons: []Button{
			{Kind: ButtonCancel, Label: t.Cancel, Enabled: true},
			{Kind: ButtonConfirm, Label: t.Confirm, Enabled: ConfirmEnabled(s, cfg)},
		}}
	}
	if s.View != ViewDays {
		return Footer{Visible: true, Buttons: []Button{
			{Kind: ButtonBack, Label: t.Cancel, Enabled: true},
		}}
	}

	var buttons []Button
	if cfg.ShowToday {
		buttons = append(buttons, Button{Kind: ButtonToday, Label: t.Today, Enabled: !cfg.dayDisabled(cfg.today())})
	}
	if cfg.AutoApply {
		buttons = append(buttons, Button{Kind: ButtonClose, Label: t.Close, Enabled: true})
	} else {
		buttons = append(buttons,
			Button{Kind: ButtonCancel, Label: t.Cancel, Enabled: true},
			Button{Kind: ButtonConfirm, Label: t.Confirm, Enabled: ConfirmEnabled(s, cfg)},
		)
	}
	return Footer{Visible: true, Buttons: buttons}
}
