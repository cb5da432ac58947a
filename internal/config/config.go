package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/calpick/internal/calendar"
	"github.com/jask/calpick/internal/keys"
	"github.com/jask/calpick/internal/locale"
	"github.com/jask/calpick/internal/theme"
	"github.com/jask/calpick/internal/timeval"
)

// DateLayout is how dates are written in the config file.
const DateLayout = "2006-01-02"

// Config holds the demo host configuration.
type Config struct {
	Picker     PickerConfig    `mapstructure:"picker"`
	Theme      ThemeConfig     `mapstructure:"theme"`
	Keybinding []keys.Override `mapstructure:"keybinding"`
	Log        LogConfig       `mapstructure:"log"`
}

// PickerConfig holds the calendar options shared by every picker.
type PickerConfig struct {
	Locale           string   `mapstructure:"locale"`
	LocaleFile       string   `mapstructure:"locale_file"`
	AutoApply        bool     `mapstructure:"auto_apply"`
	ShowToday        bool     `mapstructure:"show_today"`
	ShowFooter       bool     `mapstructure:"show_footer"`
	TimeFormat       string   `mapstructure:"time_format"`
	MinTime          string   `mapstructure:"min_time"`
	MaxTime          string   `mapstructure:"max_time"`
	MinuteStep       int      `mapstructure:"minute_step"`
	SecondStep       int      `mapstructure:"second_step"`
	HideDisabledTime bool     `mapstructure:"hide_disabled_time"`
	MinDate          string   `mapstructure:"min_date"`
	MaxDate          string   `mapstructure:"max_date"`
	Holidays         []string `mapstructure:"holidays"`
}

// ThemeConfig holds hex color overrides.
type ThemeConfig struct {
	Selected    string `mapstructure:"selected"`
	TodayBorder string `mapstructure:"today_border"`
	Holiday     string `mapstructure:"holiday"`
	Saturday    string `mapstructure:"saturday"`
}

// LogConfig holds debug log settings. An empty File disables logging.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Path is the config file location: $CALPICK_CONFIG or
// ~/.config/calpick/config.toml.
func Path() string {
	if p := os.Getenv("CALPICK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "calpick", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix CALPICK_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("picker.locale", locale.DefaultKey)
	v.SetDefault("picker.locale_file", "")
	v.SetDefault("picker.auto_apply", false)
	v.SetDefault("picker.show_today", true)
	v.SetDefault("picker.show_footer", true)
	v.SetDefault("picker.time_format", string(timeval.DefaultFmt))
	v.SetDefault("picker.min_time", "")
	v.SetDefault("picker.max_time", "")
	v.SetDefault("picker.minute_step", 1)
	v.SetDefault("picker.second_step", 1)
	v.SetDefault("picker.hide_disabled_time", false)
	v.SetDefault("picker.min_date", "")
	v.SetDefault("picker.max_date", "")
	v.SetDefault("picker.holidays", []string{})
	v.SetDefault("theme.selected", "")
	v.SetDefault("theme.today_border", "")
	v.SetDefault("theme.holiday", "")
	v.SetDefault("theme.saturday", "")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")
	if p := os.Getenv("CALPICK_CONFIG"); p != "" {
		v.SetConfigFile(p)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "calpick"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CALPICK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg to Path, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	p := cfg.Picker
	v.Set("picker.locale", p.Locale)
	v.Set("picker.locale_file", p.LocaleFile)
	v.Set("picker.auto_apply", p.AutoApply)
	v.Set("picker.show_today", p.ShowToday)
	v.Set("picker.show_footer", p.ShowFooter)
	v.Set("picker.time_format", p.TimeFormat)
	v.Set("picker.min_time", p.MinTime)
	v.Set("picker.max_time", p.MaxTime)
	v.Set("picker.minute_step", p.MinuteStep)
	v.Set("picker.second_step", p.SecondStep)
	v.Set("picker.hide_disabled_time", p.HideDisabledTime)
	v.Set("picker.min_date", p.MinDate)
	v.Set("picker.max_date", p.MaxDate)
	v.Set("picker.holidays", p.Holidays)
	v.Set("theme.selected", cfg.Theme.Selected)
	v.Set("theme.today_border", cfg.Theme.TodayBorder)
	v.Set("theme.holiday", cfg.Theme.Holiday)
	v.Set("theme.saturday", cfg.Theme.Saturday)
	v.Set("log.file", cfg.Log.File)
	if len(cfg.Keybinding) > 0 {
		bindings := make([]map[string]any, 0, len(cfg.Keybinding))
		for _, o := range cfg.Keybinding {
			bindings = append(bindings, map[string]any{"scope": o.Scope, "action": o.Action, "keys": o.Keys})
		}
		v.Set("keybinding", bindings)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Calendar converts the [picker] section into a calendar configuration. Dates
// are read in loc.
func (c Config) Calendar(loc *time.Location) (calendar.Config, error) {
	if loc == nil {
		loc = time.Local
	}
	p := c.Picker
	out := calendar.DefaultConfig()
	out.AutoApply = p.AutoApply
	out.ShowToday = p.ShowToday
	out.ShowFooter = p.ShowFooter
	out.HideDisabledTime = p.HideDisabledTime
	out.MinuteStep = max(1, p.MinuteStep)
	out.SecondStep = max(1, p.SecondStep)

	format, err := timeval.ParseFormat(p.TimeFormat)
	if err != nil {
		return calendar.Config{}, fmt.Errorf("time_format: %w", err)
	}
	out.TimeFormat = format
	if out.TimeBounds, err = timeval.ParseBounds(p.MinTime, p.MaxTime); err != nil {
		return calendar.Config{}, fmt.Errorf("time bounds: %w", err)
	}

	if out.MinDate, err = parseDate(p.MinDate, loc); err != nil {
		return calendar.Config{}, fmt.Errorf("min_date: %w", err)
	}
	if out.MaxDate, err = parseDate(p.MaxDate, loc); err != nil {
		return calendar.Config{}, fmt.Errorf("max_date: %w", err)
	}
	for _, h := range p.Holidays {
		d, err := parseDate(h, loc)
		if err != nil {
			return calendar.Config{}, fmt.Errorf("holiday %q: %w", h, err)
		}
		out.Holidays = append(out.Holidays, d)
	}

	out.Texts = locale.Resolve(p.Locale)
	if p.LocaleFile != "" {
		if out.Texts, err = locale.LoadFile(p.LocaleFile); err != nil {
			return calendar.Config{}, err
		}
	}
	return out, nil
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(DateLayout, s, loc)
}

// Styles builds the theme from the [theme] section.
func (c Config) Styles() theme.Styles {
	return theme.New(theme.Colors{
		Selected:    c.Theme.Selected,
		TodayBorder: c.Theme.TodayBorder,
		Holiday:     c.Theme.Holiday,
		Saturday:    c.Theme.Saturday,
	})
}

// Keys builds the key registry with the [[keybinding]] overrides applied.
func (c Config) Keys() (*keys.Registry, error) {
	r := keys.NewRegistry()
	if err := r.ApplyOverrides(c.Keybinding); err != nil {
		return nil, fmt.Errorf("keybinding: %w", err)
	}
	return r, nil
}

// Validate returns warnings for settings the picker accepts but that are
// probably mistakes. It never fails.
func (c Config) Validate() []string {
	var warnings []string
	p := c.Picker
	if key := strings.TrimSpace(p.Locale); key != "" && p.LocaleFile == "" {
		if _, ok := locale.Lookup(key); !ok {
			if _, chosen := locale.ResolveKey(key); chosen == locale.DefaultKey && !strings.HasPrefix(strings.ToLower(key), locale.DefaultKey) {
				msg := fmt.Sprintf("unknown locale %q, using %q", key, locale.DefaultKey)
				if s, ok := locale.Suggest(key); ok {
					msg += fmt.Sprintf(" (did you mean %q?)", s)
				}
				warnings = append(warnings, msg)
			}
		}
	}
	minDate, errMin := parseDate(p.MinDate, time.UTC)
	maxDate, errMax := parseDate(p.MaxDate, time.UTC)
	if errMin == nil && errMax == nil && !minDate.IsZero() && !maxDate.IsZero() && minDate.After(maxDate) {
		warnings = append(warnings, fmt.Sprintf("min_date %s is after max_date %s; every day is disabled", p.MinDate, p.MaxDate))
	}
	if b, err := timeval.ParseBounds(p.MinTime, p.MaxTime); err == nil && !b.Min.IsZero() && !b.Max.IsZero() && b.Min.Compare(b.Max) > 0 {
		warnings = append(warnings, fmt.Sprintf("min_time %s is after max_time %s; every time is disabled", p.MinTime, p.MaxTime))
	}
	if p.MinuteStep < 1 || p.MinuteStep > 59 || p.SecondStep < 1 || p.SecondStep > 59 {
		warnings = append(warnings, "minute_step and second_step should be between 1 and 59")
	}
	return warnings
}
