package keys

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

// Override rebinds one action in one scope; it is the config file shape.
type Override struct {
	Scope  string   `mapstructure:"scope" toml:"scope"`
	Action string   `mapstructure:"action" toml:"action"`
	Keys   []string `mapstructure:"keys" toml:"keys"`
}

type Registry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	ScopeGlobal = "global"
	ScopeDays   = "calendar_days"
	ScopeYears  = "calendar_years"
	ScopeMonths = "calendar_months"
	ScopeTime   = "calendar_time"
	ScopeHost   = "host"
)

const (
	ActionQuit      Action = "quit"
	ActionLeft      Action = "left"
	ActionRight     Action = "right"
	ActionUp        Action = "up"
	ActionDown      Action = "down"
	ActionPrevMonth Action = "prev_month"
	ActionNextMonth Action = "next_month"
	ActionSelect    Action = "select"
	ActionTitle     Action = "title"
	ActionToday     Action = "today"
	ActionConfirm   Action = "confirm"
	ActionCancel    Action = "cancel"
	ActionBack      Action = "back"
	ActionFocusTime Action = "focus_time"
	ActionIncrement Action = "increment"
	ActionDecrement Action = "decrement"
	ActionOpen      Action = "open"
	ActionNavigate  Action = "navigate"
	ActionSaveKeys  Action = "save_keys"
)

func NewRegistry() *Registry {
	r := &Registry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	// Global fallback lookup.
	reg(ScopeGlobal, ActionQuit, []string{"ctrl+c"}, "quit")

	// Day grid.
	reg(ScopeDays, ActionLeft, []string{"h", "left"}, "prev day")
	reg(ScopeDays, ActionRight, []string{"l", "right"}, "next day")
	reg(ScopeDays, ActionUp, []string{"k", "up"}, "prev week")
	reg(ScopeDays, ActionDown, []string{"j", "down"}, "next week")
	reg(ScopeDays, ActionPrevMonth, []string{"[", "pgup"}, "prev month")
	reg(ScopeDays, ActionNextMonth, []string{"]", "pgdown"}, "next month")
	reg(ScopeDays, ActionSelect, []string{"enter", "space"}, "select")
	reg(ScopeDays, ActionTitle, []string{"v"}, "year")
	reg(ScopeDays, ActionToday, []string{"t"}, "today")
	reg(ScopeDays, ActionFocusTime, []string{"tab"}, "time")
	reg(ScopeDays, ActionConfirm, []string{"ctrl+s"}, "confirm")
	reg(ScopeDays, ActionCancel, []string{"esc"}, "cancel")

	// Year grid.
	reg(ScopeYears, ActionLeft, []string{"h", "left"}, "prev")
	reg(ScopeYears, ActionRight, []string{"l", "right"}, "next")
	reg(ScopeYears, ActionUp, []string{"k", "up"}, "up")
	reg(ScopeYears, ActionDown, []string{"j", "down"}, "down")
	reg(ScopeYears, ActionSelect, []string{"enter", "space"}, "select")
	reg(ScopeYears, ActionBack, []string{"backspace"}, "back")
	reg(ScopeYears, ActionConfirm, []string{"ctrl+s"}, "confirm")
	reg(ScopeYears, ActionCancel, []string{"esc"}, "cancel")

	// Month grid.
	reg(ScopeMonths, ActionLeft, []string{"h", "left"}, "prev")
	reg(ScopeMonths, ActionRight, []string{"l", "right"}, "next")
	reg(ScopeMonths, ActionUp, []string{"k", "up"}, "up")
	reg(ScopeMonths, ActionDown, []string{"j", "down"}, "down")
	reg(ScopeMonths, ActionSelect, []string{"enter", "space"}, "select")
	reg(ScopeMonths, ActionBack, []string{"backspace"}, "back")
	reg(ScopeMonths, ActionConfirm, []string{"ctrl+s"}, "confirm")
	reg(ScopeMonths, ActionCancel, []string{"esc"}, "cancel")

	// Time panel.
	reg(ScopeTime, ActionLeft, []string{"h", "left"}, "prev field")
	reg(ScopeTime, ActionRight, []string{"l", "right"}, "next field")
	reg(ScopeTime, ActionIncrement, []string{"k", "up"}, "later")
	reg(ScopeTime, ActionDecrement, []string{"j", "down"}, "earlier")
	reg(ScopeTime, ActionFocusTime, []string{"tab", "shift+tab"}, "calendar")
	reg(ScopeTime, ActionConfirm, []string{"ctrl+s", "enter"}, "confirm")
	reg(ScopeTime, ActionCancel, []string{"esc"}, "cancel")

	// Demo host.
	reg(ScopeHost, ActionNavigate, []string{"j/k", "j", "k", "up", "down"}, "navigate")
	reg(ScopeHost, ActionOpen, []string{"enter", "space"}, "open picker")
	reg(ScopeHost, ActionSaveKeys, []string{"w"}, "save keys")
	reg(ScopeHost, ActionQuit, []string{"q"}, "quit")

	return r
}

func (r *Registry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" {
			continue
		}
		if len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.bindingsByScope[scope]; !ok {
			r.bindingsByScope[scope] = nil
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 {
			continue
		}
		if r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *Registry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup resolves keyName in scope, then in the global scope.
func (r *Registry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = NormalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != ScopeGlobal {
		if b := r.lookupInScope(keyName, ScopeGlobal); b != nil {
			return b
		}
	}
	return nil
}

// ActionFor is Lookup returning just the action, or "" when unbound.
func (r *Registry) ActionFor(keyName, scope string) Action {
	if b := r.Lookup(keyName, scope); b != nil {
		return b.Action
	}
	return ""
}

// KeyFor returns the first key bound to action in scope.
func (r *Registry) KeyFor(action Action, scope string) string {
	for _, b := range r.BindingsForScope(scope) {
		if b.Action == action && len(b.Keys) > 0 {
			return b.Keys[0]
		}
	}
	return ""
}

func (r *Registry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 {
			continue
		}
		helpKey := b.Keys[0]
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(helpKey, b.Help)))
	}
	return out
}

func (r *Registry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *Registry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := NormalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// NormalizeKeyName maps tea.KeyMsg strings and config spellings onto one form.
func NormalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Preserve single uppercase rune so uppercase/lowercase bindings
			// can be distinct actions within the same scope.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "spacebar", "space")
	s = strings.ReplaceAll(s, "pageup", "pgup")
	s = strings.ReplaceAll(s, "pagedown", "pgdown")
	return s
}

func (r *Registry) ApplyOverrides(items []Override) error {
	if r == nil || len(items) == 0 {
		return nil
	}
	type pair struct {
		scope  string
		action Action
	}
	seenPair := make(map[pair]bool)
	for _, o := range items {
		scope := strings.TrimSpace(o.Scope)
		if scope == "" {
			return fmt.Errorf("keybinding override: scope is required")
		}
		action := Action(strings.TrimSpace(o.Action))
		if action == "" {
			return fmt.Errorf("keybinding override scope=%q: action is required", scope)
		}
		keys := normalizeKeyList(o.Keys)
		if len(keys) == 0 {
			return fmt.Errorf("keybinding override scope=%q action=%q: keys are required", scope, action)
		}

		bindings := r.bindingsByScope[scope]
		if len(bindings) == 0 {
			return fmt.Errorf("keybinding override scope=%q action=%q: unknown scope", scope, action)
		}
		var target *Binding
		for _, b := range bindings {
			if b.Action == action {
				target = b
				break
			}
		}
		if target == nil {
			return fmt.Errorf("keybinding override scope=%q action=%q: unknown action in scope", scope, action)
		}
		p := pair{scope: scope, action: action}
		if seenPair[p] {
			return fmt.Errorf("keybinding override scope=%q action=%q: duplicated override entry", scope, action)
		}
		seenPair[p] = true
		target.Keys = keys
	}

	r.rebuildIndex()
	for scope, bindings := range r.bindingsByScope {
		seen := make(map[string]Action)
		for _, b := range bindings {
			for _, k := range b.Keys {
				if prev, ok := seen[k]; ok {
					return fmt.Errorf("keybinding override conflict in scope=%q: key %q used by both %q and %q", scope, k, prev, b.Action)
				}
				seen[k] = b.Action
			}
		}
	}
	return nil
}

// Export lists every binding as an override, sorted by scope then action.
// Applying the result to a fresh registry reproduces r.
func (r *Registry) Export() []Override {
	if r == nil {
		return nil
	}
	var out []Override
	for scope, bindings := range r.bindingsByScope {
		for _, b := range bindings {
			out = append(out, Override{
				Scope:  scope,
				Action: string(b.Action),
				Keys:   append([]string(nil), b.Keys...),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Scope != out[j].Scope {
			return out[i].Scope < out[j].Scope
		}
		return out[i].Action < out[j].Action
	})
	return out
}

func (r *Registry) rebuildIndex() {
	r.indexByScope = make(map[string]map[string]*Binding, len(r.bindingsByScope))
	for scope, bindings := range r.bindingsByScope {
		r.indexByScope[scope] = make(map[string]*Binding)
		for _, b := range bindings {
			for _, k := range b.Keys {
				r.indexByScope[scope][k] = b
			}
		}
	}
}
