package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"mathgraph/graph/plot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "mathgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, plot.DefaultView(), cfg.ViewConfig())
	assert.Len(t, cfg.Palette, 5)
	assert.Len(t, cfg.Examples, 8)
	assert.Equal(t, "#3498db", cfg.View.Color.String())
	assert.Equal(t, defaultWindowWidth, cfg.Window.Width)
	assert.Equal(t, 1.0, cfg.Window.Zoom)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
view:
  xmin: 0
  xmax: 6.5
  expression: "Math.cos(x) * 2"
  color: "#e74c3c"
palette:
  - name: black
    color: "#000"
examples:
  - label: line
    expr: "2*x+1"
window:
  width: 1024
`)

	cfg, got, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	v := cfg.ViewConfig()
	assert.Equal(t, 0.0, v.DomainMin)
	assert.Equal(t, 6.5, v.DomainMax)
	assert.Equal(t, -5.0, v.RangeMin, "unset bounds keep their defaults")
	assert.Equal(t, 5.0, v.RangeMax)
	assert.Equal(t, "Math.cos(x) * 2", v.Expression)
	assert.Equal(t, color.RGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 0xFF}, v.Stroke)

	require.Len(t, cfg.Palette, 1)
	assert.Equal(t, color.RGBA{A: 0xFF}, cfg.Palette[0].Color.RGBA)
	require.Len(t, cfg.Examples, 1)
	assert.Equal(t, "2*x+1", cfg.Examples[0].Expression)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, defaultWindowHeight, cfg.Window.Height)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromPath_ColorDefaultsToPalette(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
palette:
  - name: green
    color: "#2ecc71"
`)
	cfg, _, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "#2ecc71", cfg.View.Color.String())
}

func TestLoadFromPath_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := LoadFromPath(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")

	path := writeConfig(t, dir, "view:\n  color: \"#12345\"\n")
	_, _, err = LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
	assert.Contains(t, err.Error(), "invalid colour")

	path = writeConfig(t, dir, "view: [1, 2\n")
	_, _, err = LoadFromPath(path)
	require.Error(t, err)
}

func TestValidate_RejectsDegenerateView(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "view:\n  xmin: 3\n  xmax: 3\n")
	cfg, _, err := LoadFromPath(path)
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.True(t, errors.Is(err, plot.ErrInvalidView))

	var ve *plot.ViewError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "domain", ve.Field)
}

func TestValidate_RejectsEmptyExample(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Examples = append(cfg.Examples, Example{Label: "blank"})
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blank")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.View.Expression = "x^3"

	require.NoError(t, cfg.Save(path))

	loaded, _, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.ViewConfig(), loaded.ViewConfig())
	assert.Equal(t, cfg.Palette, loaded.Palette)
	assert.Equal(t, cfg.Examples, loaded.Examples)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#3498db", want: color.RGBA{R: 0x34, G: 0x98, B: 0xDB, A: 0xFF}},
		{in: "9b59b6", want: color.RGBA{R: 0x9B, G: 0x59, B: 0xB6, A: 0xFF}},
		{in: "#fff", want: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
		{in: " #E74C3C ", want: color.RGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 0xFF}},
		{in: "#12345", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFindConfigPath(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", filepath.Join(dir, "home"))
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv(EnvConfigPath, "")

	assert.Equal(t, "", FindConfigPath())

	home := filepath.Join(dir, "home", ".config", ConfigDirName, "config.yaml")
	require.NoError(t, EnsureConfigDir(home))
	require.NoError(t, os.WriteFile(home, []byte("{}\n"), 0644))
	assert.Equal(t, home, FindConfigPath())

	local := writeConfig(t, dir, "{}\n")
	got := FindConfigPath()
	assert.Equal(t, filepath.Base(local), filepath.Base(got))

	explicit := filepath.Join(dir, "explicit.yaml")
	require.NoError(t, os.WriteFile(explicit, []byte("{}\n"), 0644))
	t.Setenv(EnvConfigPath, explicit)
	assert.Equal(t, explicit, FindConfigPath())
}
