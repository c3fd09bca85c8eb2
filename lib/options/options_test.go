package options_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"brstats/lib/options"
)

func TestDefaults(t *testing.T) {
	o := options.Open("")
	s := o.Current()
	require.False(t, s.AddNoHitters)
	require.Equal(t, 2.015, s.RequestBuffer)
	require.Equal(t, 10, s.TimeoutLimit)
	require.Equal(t, 2, s.MaxRetries)
	require.False(t, s.Quiet)
}

func TestSessionOverridesPreference(t *testing.T) {
	file := filepath.Join(t.TempDir(), "preferences.json")
	o := options.Open(file)

	require.NoError(t, o.Set(options.MaxRetries, 3))
	require.NoError(t, o.SetPreference(options.MaxRetries, 5))
	require.Equal(t, 3, o.Current().MaxRetries)

	o.Unset(options.MaxRetries)
	require.Equal(t, 5, o.Current().MaxRetries)
}

func TestPreferencesPersist(t *testing.T) {
	file := filepath.Join(t.TempDir(), "preferences.json")

	o := options.Open(file)
	require.NoError(t, o.SetPreference(options.AddNoHitters, true))

	reopened := options.Open(file)
	require.True(t, reopened.Current().AddNoHitters)

	require.NoError(t, reopened.ClearPreferences())
	require.False(t, options.Open(file).Current().AddNoHitters)
}

func TestRemovePreference(t *testing.T) {
	file := filepath.Join(t.TempDir(), "preferences.json")
	o := options.Open(file)

	require.Error(t, o.RemovePreference(options.PrintPages))
	require.NoError(t, o.SetPreference(options.PrintPages, true))
	require.True(t, o.Current().PrintPages)
	require.NoError(t, o.RemovePreference(options.PrintPages))
	require.False(t, o.Current().PrintPages)
}

func TestValidation(t *testing.T) {
	o := options.Open("")
	require.Error(t, o.Set("no_such_option", true))
	require.Error(t, o.Set(options.MaxRetries, -1))
	require.Error(t, o.Set(options.RequestBuffer, "fast"))
	require.Error(t, o.Set(options.Quiet, 1))
}

func TestIgnoresBadSavedPreferences(t *testing.T) {
	file := filepath.Join(t.TempDir(), "preferences.json")
	contents := `{"max_retries": 4, "unknown_option": true, "quiet": "yes"}`
	require.NoError(t, os.WriteFile(file, []byte(contents), 0o644))

	o := options.Open(file)
	s := o.Current()
	require.Equal(t, 4, s.MaxRetries)
	require.False(t, s.Quiet)
}
