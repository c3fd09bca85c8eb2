// Package options holds the tunables that change scraping behavior.
// Values resolve through three layers: session-level changes override
// saved preferences, which override the built-in defaults. Preferences
// persist to a json file between sessions.
package options

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"sync"

	"brstats/lib/configutil"
)

const (
	AddNoHitters     = "add_no_hitters"
	UpdateTeamNames  = "update_team_names"
	UpdateVenueNames = "update_venue_names"
	RequestBuffer    = "request_buffer"
	TimeoutLimit     = "timeout_limit"
	MaxRetries       = "max_retries"
	PBDisable        = "pb_disable"
	PrintPages       = "print_pages"
	DevAlerts        = "dev_alerts"
	Quiet            = "quiet"
)

// Settings is a fully resolved view of every option.
type Settings struct {
	// Whether no-hitter annotations are added by default.
	AddNoHitters bool
	// Whether team names are standardized across renames by default.
	UpdateTeamNames bool
	// Whether venue names are standardized across renames by default.
	UpdateVenueNames bool
	// Seconds between requests, set to stay under the site's rate
	// limit.
	RequestBuffer float64
	// Request timeout in seconds.
	TimeoutLimit int
	// Retries to attempt on failed requests.
	MaxRetries int
	// Whether to disable the progress bar.
	PBDisable bool
	// Whether to log descriptions of visited pages.
	PrintPages bool
	// Whether to log alerts about unexpected page contents.
	DevAlerts bool
	// Whether to mute most log output.
	Quiet bool
}

func defaults() map[string]any {
	return map[string]any{
		AddNoHitters:     false,
		UpdateTeamNames:  false,
		UpdateVenueNames: false,
		RequestBuffer:    2.015,
		TimeoutLimit:     10,
		MaxRetries:       2,
		PBDisable:        false,
		PrintPages:       false,
		DevAlerts:        false,
		Quiet:            false,
	}
}

type Options struct {
	mu       sync.Mutex
	file     string
	defaults map[string]any
	prefs    map[string]any
	session  map[string]any
}

// Open loads saved preferences from the given file. A missing file
// just means no preferences; unknown or mistyped entries are dropped
// with a warning, matching how a hand-edited file should degrade.
func Open(file string) *Options {
	o := &Options{
		file:     file,
		defaults: defaults(),
		prefs:    map[string]any{},
		session:  map[string]any{},
	}

	saved, err := configutil.ReadConfig[map[string]any](file)
	if os.IsNotExist(err) {
		return o
	}
	if err != nil {
		slog.Warn("ignoring preferences file", "file", file, "err", err)
		return o
	}
	for name, value := range saved {
		coerced, err := o.coerce(name, value)
		if err != nil {
			slog.Warn("ignoring preference", "file", file, "err", err)
			continue
		}
		o.prefs[name] = coerced
	}
	return o
}

// coerce validates an option name and value, converting json's
// float64 numbers to the option's real type.
func (o *Options) coerce(name string, value any) (any, error) {
	def, ok := o.defaults[name]
	if !ok {
		return nil, fmt.Errorf("unknown option %q", name)
	}
	switch def.(type) {
	case bool:
		v, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("option %q must be a bool", name)
		}
		return v, nil
	case int:
		var v int
		switch n := value.(type) {
		case int:
			v = n
		case float64:
			if n != math.Trunc(n) {
				return nil, fmt.Errorf("option %q must be an integer", name)
			}
			v = int(n)
		default:
			return nil, fmt.Errorf("option %q must be an integer", name)
		}
		if v < 0 {
			return nil, fmt.Errorf("option %q cannot be negative", name)
		}
		return v, nil
	case float64:
		var v float64
		switch n := value.(type) {
		case float64:
			v = n
		case int:
			v = float64(n)
		default:
			return nil, fmt.Errorf("option %q must be a number", name)
		}
		if v < 0 {
			return nil, fmt.Errorf("option %q cannot be negative", name)
		}
		return v, nil
	}
	return nil, fmt.Errorf("unknown option %q", name)
}

// Set changes an option for the current session only.
func (o *Options) Set(name string, value any) error {
	coerced, err := o.coerce(name, value)
	if err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.session[name] = coerced
	return nil
}

// Unset removes a session-level change, falling back to the saved
// preference or the default.
func (o *Options) Unset(name string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.session, name)
}

// SetPreference changes an option's default for current and future
// sessions. Session-level changes still win over preferences.
func (o *Options) SetPreference(name string, value any) error {
	coerced, err := o.coerce(name, value)
	if err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.prefs[name] = coerced
	return o.save()
}

// RemovePreference deletes a saved preference.
func (o *Options) RemovePreference(name string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.prefs[name]; !ok {
		return fmt.Errorf("no preference set for %q", name)
	}
	delete(o.prefs, name)
	return o.save()
}

// ClearPreferences resets all saved preferences.
func (o *Options) ClearPreferences() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.prefs = map[string]any{}
	return o.save()
}

func (o *Options) save() error {
	if o.file == "" {
		return nil
	}
	return configutil.WriteConfig(o.file, o.prefs)
}

func (o *Options) resolve(name string) any {
	if v, ok := o.session[name]; ok {
		return v
	}
	if v, ok := o.prefs[name]; ok {
		return v
	}
	return o.defaults[name]
}

// Current resolves every option through the session, preference, and
// default layers.
func (o *Options) Current() Settings {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Settings{
		AddNoHitters:     o.resolve(AddNoHitters).(bool),
		UpdateTeamNames:  o.resolve(UpdateTeamNames).(bool),
		UpdateVenueNames: o.resolve(UpdateVenueNames).(bool),
		RequestBuffer:    o.resolve(RequestBuffer).(float64),
		TimeoutLimit:     o.resolve(TimeoutLimit).(int),
		MaxRetries:       o.resolve(MaxRetries).(int),
		PBDisable:        o.resolve(PBDisable).(bool),
		PrintPages:       o.resolve(PrintPages).(bool),
		DevAlerts:        o.resolve(DevAlerts).(bool),
		Quiet:            o.resolve(Quiet).(bool),
	}
}

// Write logs a user-facing message unless quiet is set.
func (o *Options) Write(msg string, args ...any) {
	if !o.Current().Quiet {
		slog.Info(msg, args...)
	}
}

// PrintPage logs a visited page when print_pages is set.
func (o *Options) PrintPage(description string, args ...any) {
	if o.Current().PrintPages {
		slog.Info(description, args...)
	}
}

// DevAlert logs unexpected page contents when dev_alerts is set.
// These flag markup the extractors do not recognize.
func (o *Options) DevAlert(msg string, args ...any) {
	if o.Current().DevAlerts {
		slog.Warn(msg, args...)
	}
}
